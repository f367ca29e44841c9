package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"14:30": "2:30 PM",
		"00:15": "12:15 AM",
		"12:00": "12:00 PM",
		"09:05": "9:05 AM",
		"23:59": "11:59 PM",
		"11:00": "11:00 AM",
		"noon":  "noon",
		"xx:10": "xx:10",
	}

	for in, want := range testCases {
		assert.Equal(t, want, FormatTime(in), in)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Friday, January 10, 2025", FormatDate("2025-01-10"))
	assert.Equal(t, "Saturday, October 17, 2026", FormatDate("2026-10-17"))
	assert.Equal(t, "next week", FormatDate("next week"))
}
