package httpserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"serviceBooker/internal/booking"
	"serviceBooker/internal/config"
	"serviceBooker/internal/http-server/handlers/booking/createBooking"
	"serviceBooker/internal/http-server/handlers/booking/exportBookings"
	"serviceBooker/internal/http-server/handlers/booking/getAllBookings"
	"serviceBooker/internal/http-server/handlers/booking/getBooking"
	"serviceBooker/internal/http-server/middleware/mwlogger"
	"serviceBooker/internal/lib/api"
)

func NewRouter(log *slog.Logger, ledger *booking.Ledger, corsCfg config.CORS) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Post(api.BookPath, createBooking.New(log, ledger))
	router.Get(api.BookingsPath, getAllBookings.New(log, ledger))
	router.Get(api.BookingsPath+"/export", exportBookings.New(log, ledger))
	router.Get(api.BookingsPath+"/{id}", getBooking.New(log, ledger))

	return router
}
