package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	type payload struct {
		Category string
		Count    int
	}

	t.Run("equal inputs give equal keys", func(t *testing.T) {
		a, err := Key("forecast", payload{"Notebook", 3}, 90)
		require.NoError(t, err)
		b, err := Key("forecast", payload{"Notebook", 3}, 90)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Contains(t, a, "forecast:")
	})

	t.Run("different inputs give different keys", func(t *testing.T) {
		a, err := Key("forecast", payload{"Notebook", 3})
		require.NoError(t, err)
		b, err := Key("forecast", payload{"Notebook", 4})
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("namespace separates analyses", func(t *testing.T) {
		a, err := Key("forecast", payload{"Notebook", 3})
		require.NoError(t, err)
		b, err := Key("utilization", payload{"Notebook", 3})
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("unencodable part", func(t *testing.T) {
		_, err := Key("forecast", make(chan int))
		assert.Error(t, err)
	})
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("miss then hit", func(t *testing.T) {
		c, err := NewMemoryCache(0, 0)
		require.NoError(t, err)
		_, ok := c.Get(ctx, "k")
		assert.False(t, ok)

		require.NoError(t, c.Set(ctx, "k", "v"))
		val, ok := c.Get(ctx, "k")
		assert.True(t, ok)
		assert.Equal(t, "v", val)
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		c, err := NewMemoryCache(time.Minute, 0)
		require.NoError(t, err)
		c.clock = func() time.Time { return now }
		require.NoError(t, c.Set(ctx, "k", "v"))

		c.clock = func() time.Time { return now.Add(59 * time.Second) }
		_, ok := c.Get(ctx, "k")
		assert.True(t, ok)

		c.clock = func() time.Time { return now.Add(time.Minute) }
		_, ok = c.Get(ctx, "k")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("expired entries are dropped on write", func(t *testing.T) {
		c, err := NewMemoryCache(5*time.Minute, 10000)
		require.NoError(t, err)

		for i := 0; i < 1000; i++ {
			at := now.Add(time.Duration(i) * time.Minute)
			c.clock = func() time.Time { return at }
			require.NoError(t, c.Set(ctx, fmt.Sprintf("forecast:%d", i), "v"))
		}
		assert.LessOrEqual(t, c.Len(), 10)

		_, ok := c.Get(ctx, "forecast:999")
		assert.True(t, ok)
		_, ok = c.Get(ctx, "forecast:0")
		assert.False(t, ok)
	})

	t.Run("size bounds the entry count", func(t *testing.T) {
		c, err := NewMemoryCache(0, 3)
		require.NoError(t, err)

		for _, k := range []string{"a", "b", "c", "d", "e"} {
			require.NoError(t, c.Set(ctx, k, k))
		}
		assert.Equal(t, 3, c.Len())
		_, ok := c.Get(ctx, "a")
		assert.False(t, ok)
		val, ok := c.Get(ctx, "e")
		assert.True(t, ok)
		assert.Equal(t, "e", val)
	})
}

func TestRedisCache_UnreachableServerIsAMiss(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", time.Minute)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, "k", "v"))
}
