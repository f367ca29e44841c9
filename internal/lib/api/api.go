// Package api holds the paths shared by the booking service and its clients.
package api

const (
	BookPath     = "/api/book"
	BookingsPath = "/api/bookings"
)
