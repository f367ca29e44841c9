package models

import "time"

const StatusPending = "pending"

type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// SameSlot reports whether both bookings claim the same date and time.
func (b Booking) SameSlot(other Booking) bool {
	return b.Date == other.Date && b.Time == other.Time
}
