package client

import (
	"serviceBooker/internal/models"
	"strings"
	"time"
)

// Form holds the raw field values of the booking form.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,bkemail"`
	Phone   string `json:"phone"`
	Service string `json:"service" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02,notpast"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
	Notes   string `json:"notes"`
}

// Reset empties every field.
func (f *Form) Reset() {
	*f = Form{}
}

func (f Form) trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Service: strings.TrimSpace(f.Service),
		Date:    strings.TrimSpace(f.Date),
		Time:    strings.TrimSpace(f.Time),
		Notes:   strings.TrimSpace(f.Notes),
	}
}

func (f Form) booking(id string, now time.Time) models.Booking {
	return models.Booking{
		ID:        id,
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Service:   f.Service,
		Date:      f.Date,
		Time:      f.Time,
		Notes:     f.Notes,
		Timestamp: now,
		Status:    models.StatusPending,
	}
}
