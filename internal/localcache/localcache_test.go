package localcache

import (
	"context"
	"os"
	"path/filepath"
	"serviceBooker/internal/config"
	"serviceBooker/internal/models"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedis(client, DefaultKey), mr
}

func drivers(t *testing.T) map[string]Cache {
	t.Helper()

	rc, _ := newRedisCache(t)

	return map[string]Cache{
		"memory": NewMemory(),
		"file":   NewFile(filepath.Join(t.TempDir(), "local-bookings.json")),
		"redis":  rc,
	}
}

func TestCacheContract(t *testing.T) {
	t.Parallel()

	for name, cache := range drivers(t) {
		name, cache := name, cache
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()

			all, err := cache.ReadAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)

			require.NoError(t, cache.Append(ctx, models.Booking{ID: "BK1", Date: "2025-01-10", Time: "09:00"}))
			require.NoError(t, cache.Append(ctx, models.Booking{ID: "BK2", Date: "2025-01-10", Time: "09:00"}))
			require.NoError(t, cache.Append(ctx, models.Booking{ID: "BK1", Date: "2025-01-10", Time: "09:00"}))

			all, err = cache.ReadAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3, "the local cache never deduplicates")
			assert.Equal(t, "BK1", all[0].ID)
			assert.Equal(t, "BK2", all[1].ID)
			assert.Equal(t, "BK1", all[2].ID)

			require.NoError(t, cache.Clear(ctx))

			all, err = cache.ReadAll(ctx)
			require.NoError(t, err)
			assert.NotNil(t, all)
			assert.Empty(t, all)

			require.NoError(t, cache.Clear(ctx), "clearing an empty cache is fine")
		})
	}
}

func TestRedisStoresJSONArrayUnderKey(t *testing.T) {
	t.Parallel()

	cache, mr := newRedisCache(t)
	require.NoError(t, cache.Append(context.Background(), models.Booking{ID: "BK1"}))

	raw, err := mr.Get(DefaultKey)
	require.NoError(t, err)
	assert.True(t, len(raw) > 2 && raw[0] == '[')
	assert.Contains(t, raw, `"id":"BK1"`)
}

func TestRedisConcurrentAppends(t *testing.T) {
	t.Parallel()

	cache, _ := newRedisCache(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cache.Append(ctx, models.Booking{ID: "BK"}))
		}()
	}
	wg.Wait()

	all, err := cache.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestFileCorruptedReadFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "local-bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o600))

	cache := NewFile(path)

	_, err := cache.ReadAll(context.Background())
	require.Error(t, err)

	err = cache.Append(context.Background(), models.Booking{ID: "BK1"})
	require.Error(t, err)
}

func TestFileAppendLeavesOnlyCompleteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "local-bookings.json")

	// Leftover of an interrupted write.
	require.NoError(t, os.WriteFile(path+".123.tmp", []byte(`[{"id":"BK`), 0o600))

	cache := NewFile(path)
	ctx := context.Background()

	require.NoError(t, cache.Append(ctx, models.Booking{ID: "BK1"}))
	require.NoError(t, cache.Append(ctx, models.Booking{ID: "BK2"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"local-bookings.json", "local-bookings.json.123.tmp"}, names)

	all, err := cache.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "BK1", all[0].ID)
	assert.Equal(t, "BK2", all[1].ID)
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New(config.Cache{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)

	c, err = New(config.Cache{Driver: "file", Path: filepath.Join(t.TempDir(), "x.json")})
	require.NoError(t, err)
	assert.IsType(t, &File{}, c)

	c, err = New(config.Cache{Driver: "redis", Redis: config.Redis{Address: "localhost:0"}})
	require.NoError(t, err)
	require.IsType(t, &Redis{}, c)
	assert.Equal(t, DefaultKey, c.(*Redis).key)
	_ = c.(*Redis).Close()

	_, err = New(config.Cache{Driver: "indexeddb"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
