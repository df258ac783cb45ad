package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/feed-importer/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestUnitMemory(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		value   any
		dest    func() any
		elapsed time.Duration
		want    any
		wantErr error
	}{
		"struct": {
			value:   brand{ID: 42, Name: "Acme"},
			dest:    func() any { return &brand{} },
			elapsed: time.Minute,
			want:    &brand{ID: 42, Name: "Acme"},
		},
		"slice": {
			value:   []int64{1, 2, 3},
			dest:    func() any { return &[]int64{} },
			elapsed: time.Minute,
			want:    &[]int64{1, 2, 3},
		},
		"expired": {
			value:   "value",
			dest:    func() any { return new(string) },
			elapsed: time.Hour + time.Second,
			wantErr: cache.ErrCacheMiss,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			current := now
			c := cache.NewMemory(0, cache.WithNow(func() time.Time { return current }))
			defer c.Close()

			require.NoError(t, c.Set(context.TODO(), name, tt.value, time.Hour))

			current = now.Add(tt.elapsed)

			dest := tt.dest()
			err := c.Get(context.TODO(), name, dest)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, dest)
		})
	}
}

func TestUnitMemoryDelete(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory(0)
	defer c.Close()

	require.NoError(t, c.Set(context.TODO(), "key", 1, time.Minute))
	require.NoError(t, c.Delete(context.TODO(), "key"))

	var got int
	assert.ErrorIs(t, c.Get(context.TODO(), "key", &got), cache.ErrCacheMiss)
	assert.ErrorIs(t, c.Get(context.TODO(), "missing", &got), cache.ErrCacheMiss)
}

func TestUnitMemoryCleanup(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory(10 * time.Millisecond)
	defer c.Close()

	require.NoError(t, c.Set(context.TODO(), "short", 1, time.Millisecond))
	require.NoError(t, c.Set(context.TODO(), "long", 2, time.Hour))

	assert.Eventually(t, func() bool {
		return c.Len() == 1
	}, time.Second, 10*time.Millisecond, "expired entry should be removed")
}

func TestUnitOpenWithoutRedis(t *testing.T) {
	t.Parallel()

	c, closeCache, err := cache.Open(context.TODO(), "", "prefix", time.Minute)

	require.NoError(t, err, "shouldn't return any error")
	assert.IsType(t, &cache.Memory{}, c, "should fall back to in-memory cache")
	assert.NoError(t, closeCache(), "should close cache")
}

func TestUnitOpenInvalidRedisURL(t *testing.T) {
	t.Parallel()

	_, _, err := cache.Open(context.TODO(), "://redis", "prefix", time.Minute)

	assert.ErrorContains(t, err, "can't parse redis url", "should return url error")
}
