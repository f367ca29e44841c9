// Package webui serves the booking form for bookctl serve.
package webui

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"serviceBooker/internal/client"
	"serviceBooker/internal/http-server/middleware/mwlogger"
	"serviceBooker/internal/lib/api/response"
	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/lib/validate"
	"serviceBooker/internal/models"
	"strconv"
)

type FieldStateResponse struct {
	response.Response
	State client.FieldState `json:"state"`
}

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

type Server struct {
	log      *slog.Logger
	handler  *client.Handler
	simulate bool
}

// New builds the web form router. With simulate set, submissions run the
// offline demo flow instead of contacting the booking service.
func New(log *slog.Logger, h *client.Handler, simulate bool) http.Handler {
	s := &Server{
		log:      log,
		handler:  h,
		simulate: simulate,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(s.log))
	router.Use(middleware.Recoverer)

	router.Get("/", s.index)
	router.Post("/book", s.book)
	router.Post("/panel/close", s.closePanel)
	router.Get("/validate", s.validateField)
	router.Get("/bookings", s.listBookings)
	router.Delete("/bookings", s.clearBookings)
	router.Post("/bookings/clear", s.clearBookings)

	return router
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, client.Form{}, nil)
}

func (s *Server) book(w http.ResponseWriter, r *http.Request) {
	const op = "webui.book"

	log := s.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := client.Form{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Service: r.PostForm.Get("service"),
		Date:    r.PostForm.Get("date"),
		Time:    r.PostForm.Get("time"),
		Notes:   r.PostForm.Get("notes"),
	}
	submitted := form

	var err error
	if s.simulate {
		_, err = s.handler.Simulate(r.Context(), &form)
	} else {
		_, err = s.handler.Submit(r.Context(), &form)
	}

	var verr *client.ValidationError
	if errors.As(err, &verr) {
		log.Info("booking form rejected", slog.Any("fields", verr.Fields))

		invalid := make(map[string]bool, len(verr.Fields))
		for _, f := range verr.Fields {
			invalid[f] = true
		}

		s.renderPage(w, r, http.StatusBadRequest, submitted, invalid)
		return
	}
	if err != nil {
		log.Error("failed to submit booking", sl.Err(err))
		http.Error(w, "failed to submit booking", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) closePanel(w http.ResponseWriter, r *http.Request) {
	s.handler.Panel().Hide()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) validateField(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	required, _ := strconv.ParseBool(q.Get("required"))
	state := client.ValidateField(client.FieldKind(q.Get("field")), q.Get("value"), required, s.handler.Clock().Now())

	render.JSON(w, r, FieldStateResponse{
		Response: response.OK(),
		State:    state,
	})
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	const op = "webui.listBookings"

	bookings, err := s.handler.Bookings(r.Context())
	if err != nil {
		s.log.Error("failed to read local bookings", slog.String("op", op), sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read bookings"))
		return
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}

func (s *Server) clearBookings(w http.ResponseWriter, r *http.Request) {
	const op = "webui.clearBookings"

	if err := s.handler.ClearBookings(r.Context()); err != nil {
		s.log.Error("failed to clear local bookings", slog.String("op", op), sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to clear bookings"))
		return
	}

	if r.Method == http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render.JSON(w, r, response.OK())
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, form client.Form, invalid map[string]bool) {
	if invalid == nil {
		invalid = map[string]bool{}
	}

	data := pageData{
		Form: formValues{
			Name:    form.Name,
			Email:   form.Email,
			Phone:   form.Phone,
			Service: form.Service,
			Date:    form.Date,
			Time:    form.Time,
			Notes:   form.Notes,
			Today:   s.handler.Clock().Now().Format(validate.DateLayout),
		},
		Invalid: invalid,
	}

	if st := s.handler.Panel().State(); st.Visible {
		data.Panel = panelData{
			Visible: true,
			Error:   st.View.Kind == client.PanelError,
			Text:    client.RenderText(st.View),
		}
	}

	if all, err := s.handler.Bookings(r.Context()); err == nil {
		data.Bookings = len(all)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := pageTmpl.Execute(w, data); err != nil {
		s.log.Error("failed to render page", sl.Err(err))
	}
}
