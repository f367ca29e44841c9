package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sync"
)

var (
	once sync.Once

	bookingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "service_booker",
			Name:      "booking_requests_total",
			Help:      "Count of booking create requests by outcome.",
		},
		[]string{"outcome"},
	)

	exports = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "service_booker",
			Name:      "booking_exports_total",
			Help:      "Count of generated booking spreadsheets.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingRequests, exports)
	})
}

func IncBookingRequest(outcome string) {
	bookingRequests.WithLabelValues(outcome).Inc()
}

func IncExport() {
	exports.Inc()
}
