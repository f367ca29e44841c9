package localcache

import (
	"context"
	"serviceBooker/internal/models"
	"sync"
)

type Memory struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(_ context.Context, b models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings = append(m.bookings, b)

	return nil
}

func (m *Memory) ReadAll(_ context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Booking{}, m.bookings...), nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings = nil

	return nil
}
