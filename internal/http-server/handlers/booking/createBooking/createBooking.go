package createBooking

import (
	"context"
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"serviceBooker/internal/booking"
	"serviceBooker/internal/lib/api/response"
	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/lib/metrics"
	"serviceBooker/internal/lib/validate"
	"serviceBooker/internal/models"
	"time"
)

type BookingRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,bkemail"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string    `json:"time" validate:"required,datetime=15:04"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

type BookingResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Book(ctx context.Context, b models.Booking) (booking.Outcome, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			metrics.IncBookingRequest("invalid")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("booking_id", req.ID))

		if err = v.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			metrics.IncBookingRequest("invalid")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		outcome, err := creator.Book(r.Context(), req.toBooking())
		if err != nil {
			log.Error("failed to save booking", sl.Err(err))
			metrics.IncBookingRequest("failed")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save booking"))
			return
		}

		log.Info("booking request handled",
			slog.String("booking_id", req.ID),
			slog.String("outcome", outcome.String()),
		)
		metrics.IncBookingRequest(outcome.String())

		responseOK(w, r, outcome.Message())
	}
}

func (req BookingRequest) toBooking() models.Booking {
	b := models.Booking{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   req.Service,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		Timestamp: req.Timestamp,
		Status:    req.Status,
	}

	if b.Status == "" {
		b.Status = models.StatusPending
	}

	if b.Timestamp.IsZero() {
		b.Timestamp = time.Now().UTC()
	}

	return b
}

func responseOK(w http.ResponseWriter, r *http.Request, message string) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Message:  message,
	})
}
