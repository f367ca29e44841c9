package storage

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUnknownDriver   = errors.New("unknown storage driver")
	// ErrUnreadable marks a collection whose content cannot be read back.
	// The booking service starts over from an empty collection on it.
	ErrUnreadable = errors.New("stored bookings are unreadable")
)
