package export

import (
	"fmt"
	"github.com/xuri/excelize/v2"
	"io"
	"serviceBooker/internal/models"
	"time"
)

const SheetName = "Bookings"

var headers = []string{"ID", "Name", "Email", "Phone", "Service", "Date", "Time", "Notes", "Submitted", "Status"}

// WriteXLSX writes bookings as a single-sheet spreadsheet, one row per
// booking in storage order.
func WriteXLSX(w io.Writer, bookings []models.Booking) error {
	const op = "export.WriteXLSX"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(SheetName, cell, h)
	}

	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err = f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, b := range bookings {
		row := []interface{}{
			b.ID,
			b.Name,
			b.Email,
			b.Phone,
			models.ServiceLabel(b.Service),
			b.Date,
			b.Time,
			b.Notes,
			b.Timestamp.UTC().Format(time.RFC3339),
			b.Status,
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err = f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = f.SetColWidth(SheetName, "A", "J", 18); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
