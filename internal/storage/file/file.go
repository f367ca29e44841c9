package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"serviceBooker/internal/models"
	"serviceBooker/internal/storage"
)

// Storage keeps the whole booking collection as a pretty-printed JSON array
// in a single file. Every save rewrites the file.
type Storage struct {
	path string
}

func New(path string) *Storage {
	return &Storage{path: path}
}

// LoadAll returns every stored booking. A missing or empty file is an empty
// collection; a file that cannot be read or decoded is storage.ErrUnreadable.
func (s *Storage) LoadAll(_ context.Context) ([]models.Booking, error) {
	const op = "storage.file.LoadAll"

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Booking{}, nil
		}
		return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrUnreadable, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Booking{}, nil
	}

	var bookings []models.Booking
	if err = json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrUnreadable, err)
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}

// SaveAll replaces the file content with bookings. The new content is written
// to a temporary file in the same directory and renamed over the old one.
func (s *Storage) SaveAll(_ context.Context, bookings []models.Booking) error {
	const op = "storage.file.SaveAll"

	if bookings == nil {
		bookings = []models.Booking{}
	}

	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return nil
}
