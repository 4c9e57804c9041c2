package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

func TestJSONRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "")
	require.NoError(t, err)
	defer adapter.Close()

	ctx := context.Background()

	_, ok, err := GetJSON[stats](ctx, adapter, "stats")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, SetJSON(ctx, adapter, "stats", stats{Total: 4, Active: 3}, time.Minute))

	got, ok, err := GetJSON[stats](ctx, adapter, "stats")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, stats{Total: 4, Active: 3}, got)
}

func TestGetJSON_CorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "")
	require.NoError(t, err)
	defer adapter.Close()

	require.NoError(t, mr.Set("stats", "{broken"))

	_, ok, err := GetJSON[stats](context.Background(), adapter, "stats")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNoop(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, c, "stats", stats{Total: 1}, time.Minute))

	_, ok, err := GetJSON[stats](ctx, c, "stats")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.Delete(ctx, "stats"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestRemember(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "admin")
	require.NoError(t, err)
	defer adapter.Close()

	ctx := context.Background()
	calls := 0
	load := func(context.Context) (stats, error) {
		calls++
		return stats{Total: calls}, nil
	}

	first, err := Remember(ctx, adapter, "coupon-stats", time.Minute, load)
	require.NoError(t, err)
	second, err := Remember(ctx, adapter, "coupon-stats", time.Minute, load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	mr.FastForward(2 * time.Minute)
	third, err := Remember(ctx, adapter, "coupon-stats", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, third.Total)
}

func TestRemember_LoadErrorNotCached(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")

	_, err := Remember(ctx, NewNoop(), "k", time.Minute, func(context.Context) (stats, error) {
		return stats{}, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRemember_CacheDownFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "")
	require.NoError(t, err)
	defer adapter.Close()
	mr.Close()

	got, err := Remember(context.Background(), adapter, "k", time.Minute, func(context.Context) (stats, error) {
		return stats{Active: 7}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Active)
}
