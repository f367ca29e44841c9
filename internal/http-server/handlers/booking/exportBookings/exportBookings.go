package exportBookings

import (
	"bytes"
	"context"
	"fmt"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"serviceBooker/internal/export"
	"serviceBooker/internal/lib/api/response"
	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/lib/metrics"
	"serviceBooker/internal/models"
	"time"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	List(ctx context.Context) ([]models.Booking, error)
}

func New(log *slog.Logger, lister BookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.exportBookings.New"

		log := log.With(slog.String("op", op))

		bookings, err := lister.List(r.Context())
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		var buf bytes.Buffer
		if err = export.WriteXLSX(&buf, bookings); err != nil {
			log.Error("failed to build spreadsheet", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export bookings"))
			return
		}

		filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", contentTypeXLSX)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if _, err = buf.WriteTo(w); err != nil {
			log.Error("failed to write spreadsheet", sl.Err(err))
			return
		}

		metrics.IncExport()
		log.Info("bookings exported", slog.Int("count", len(bookings)))
	}
}
