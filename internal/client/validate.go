package client

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"serviceBooker/internal/lib/clock"
	"serviceBooker/internal/lib/validate"
	"strings"
	"time"
)

const RejectionMessage = "Please fill in all required fields correctly."

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid booking form: " + strings.Join(e.Fields, ", ")
}

type FieldKind string

const (
	FieldText  FieldKind = "text"
	FieldEmail FieldKind = "email"
	FieldDate  FieldKind = "date"
)

type FieldState string

const (
	FieldNone    FieldState = ""
	FieldValid   FieldState = "valid"
	FieldInvalid FieldState = "invalid"
)

type formValidator struct {
	v *validator.Validate
}

func newFormValidator(clk clock.Clock) *formValidator {
	v := validate.New()

	_ = v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		return notBeforeToday(fl.Field().String(), clk.Now())
	})

	return &formValidator{v: v}
}

// Validate checks the trimmed form and returns a *ValidationError naming the
// offending fields. Callers build the booking from the same trimmed values.
func (fv *formValidator) Validate(f Form) error {
	err := fv.v.Struct(f.trimmed())
	if err == nil {
		return nil
	}

	var validateErr validator.ValidationErrors
	if !errors.As(err, &validateErr) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range validateErr {
		verr.Fields = append(verr.Fields, fe.Field())
	}

	return verr
}

// ValidateField is the live per-field check used while the user types. It
// only drives presentation.
func ValidateField(kind FieldKind, value string, required bool, now time.Time) FieldState {
	value = strings.TrimSpace(value)

	if !required && value == "" {
		return FieldNone
	}

	var ok bool

	switch kind {
	case FieldEmail:
		ok = validate.Email(value)
	case FieldDate:
		ok = notBeforeToday(value, now)
	default:
		ok = !required || value != ""
	}

	if ok {
		return FieldValid
	}

	return FieldInvalid
}

// notBeforeToday compares calendar days in the location of now.
func notBeforeToday(date string, now time.Time) bool {
	d, err := time.ParseInLocation(validate.DateLayout, date, now.Location())
	if err != nil {
		return false
	}

	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())

	return !d.Before(today)
}
