package client

import (
	"fmt"
	"serviceBooker/internal/lib/validate"
	"strconv"
	"strings"
	"time"
)

const longDateLayout = "Monday, January 2, 2006"

// FormatTime turns a 24-hour HH:MM value into the 12-hour clock, e.g.
// 14:30 -> 2:30 PM. Values that do not parse are returned unchanged.
func FormatTime(hhmm string) string {
	hours, minutes, ok := strings.Cut(hhmm, ":")
	if !ok {
		return hhmm
	}

	h, err := strconv.Atoi(hours)
	if err != nil {
		return hhmm
	}

	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}

	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}

	return fmt.Sprintf("%d:%s %s", hour12, minutes, ampm)
}

// FormatDate renders YYYY-MM-DD as e.g. "Friday, January 10, 2025".
func FormatDate(date string) string {
	t, err := time.Parse(validate.DateLayout, date)
	if err != nil {
		return date
	}

	return t.Format(longDateLayout)
}
