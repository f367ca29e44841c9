package validate

import (
	"github.com/go-playground/validator/v10"
	"reflect"
	"regexp"
	"strings"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// New returns a validator that reports json field names and knows the
// bkemail tag.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("bkemail", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	})

	return v
}
