package localcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"serviceBooker/internal/config"
	"serviceBooker/internal/models"
)

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// NewRedisClient creates a Redis client from the cache config.
func NewRedisClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// Redis keeps the cache under a single string key. Append uses an optimistic
// transaction so concurrent appends from the same device are not lost.
type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) Append(ctx context.Context, b models.Booking) error {
	const op = "localcache.Redis.Append"

	txf := func(tx *redis.Tx) error {
		bookings, err := r.read(ctx, tx)
		if err != nil {
			return err
		}

		data, err := json.Marshal(append(bookings, b))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.key, data, 0)
			return nil
		})
		return err
	}

	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		err := r.client.Watch(ctx, txf, r.key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w", op, redis.TxFailedErr)
}

func (r *Redis) ReadAll(ctx context.Context) ([]models.Booking, error) {
	const op = "localcache.Redis.ReadAll"

	bookings, err := r.read(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (r *Redis) Clear(ctx context.Context) error {
	const op = "localcache.Redis.Clear"

	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) read(ctx context.Context, c getter) ([]models.Booking, error) {
	data, err := c.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Booking{}, nil
		}
		return nil, err
	}

	return decode(data)
}
