// Package localcache keeps the bookings submitted from this device. The cache
// is one key holding a JSON array, appended to in submission order.
package localcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"serviceBooker/internal/config"
	"serviceBooker/internal/models"
)

const DefaultKey = "bookings"

var ErrUnknownDriver = errors.New("unknown cache driver")

type Cache interface {
	Append(ctx context.Context, b models.Booking) error
	ReadAll(ctx context.Context) ([]models.Booking, error)
	Clear(ctx context.Context) error
}

// New builds the cache selected by cfg.Driver.
func New(cfg config.Cache) (Cache, error) {
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	switch cfg.Driver {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(cfg.Path), nil
	case "redis":
		return NewRedis(NewRedisClient(cfg.Redis), key), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func decode(data []byte) ([]models.Booking, error) {
	if len(data) == 0 {
		return []models.Booking{}, nil
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, err
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}
