package localcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"serviceBooker/internal/models"
	"sync"
)

// File stores the cache in a JSON file on the device.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Append(_ context.Context, b models.Booking) error {
	const op = "localcache.File.Append"

	f.mu.Lock()
	defer f.mu.Unlock()

	bookings, err := f.read()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := json.Marshal(append(bookings, b))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = f.write(data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (f *File) ReadAll(_ context.Context) ([]models.Booking, error) {
	const op = "localcache.File.ReadAll"

	f.mu.Lock()
	defer f.mu.Unlock()

	bookings, err := f.read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (f *File) Clear(_ context.Context) error {
	const op = "localcache.File.Clear"

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (f *File) read() ([]models.Booking, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Booking{}, nil
		}
		return nil, err
	}

	return decode(data)
}

// write replaces the file through a temporary file in the same directory, so
// an interrupted write leaves the previous content in place.
func (f *File) write(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), f.path)
}
