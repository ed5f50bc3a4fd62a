package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryResponseCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	c := NewInMemoryResponseCache()
	c.now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte(`{"score":0.9}`), time.Minute))
	val, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"score":0.9}`, string(val))

	val[0] = 'X'
	again, _, _ := c.Get(ctx, "k")
	assert.Equal(t, byte('{'), again[0], "returned slices must not alias the stored value")

	now = now.Add(2 * time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestInMemoryResponseCache_IgnoresZeroTTL(t *testing.T) {
	c := NewInMemoryResponseCache()
	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), 0))
	assert.Equal(t, 0, c.Len())
}
