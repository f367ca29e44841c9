package export

import (
	"bytes"
	"serviceBooker/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	bookings := []models.Booking{
		{
			ID:        "BK1",
			Name:      "Jane Doe",
			Email:     "jane@example.com",
			Service:   "appointment",
			Date:      "2025-01-10",
			Time:      "09:00",
			Timestamp: time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC),
			Status:    models.StatusPending,
		},
		{
			ID:      "BK2",
			Name:    "John Roe",
			Service: "gardening",
			Date:    "2025-01-11",
			Time:    "14:30",
			Notes:   "side gate",
			Status:  models.StatusPending,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, bookings))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, "BK1", rows[1][0])
	assert.Equal(t, "Car/Motorcycle Rescue and Services", rows[1][4])
	assert.Equal(t, "2025-01-05T08:00:00Z", rows[1][8])
	assert.Equal(t, "gardening", rows[2][4])
	assert.Equal(t, "side gate", rows[2][7])
}

func TestWriteXLSXEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
