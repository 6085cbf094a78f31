package ormgen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	got, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	got, err = c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	require.NoError(t, c.Set(ctx, "k", []byte("v2"), 0))
	got, err = c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "short", []byte("v"), time.Millisecond))
	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))

	time.Sleep(10 * time.Millisecond)

	got, err := c.Get(ctx, "short")
	require.NoError(t, err)
	require.Nil(t, got, "expired entry reads as missing")

	got, err = c.Get(ctx, "forever")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c.Delete(ctx, "k"))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, c.Delete(ctx, "never-existed"))
}

func TestMemoryCache_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "gen:a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "gen:b", []byte("2"), 0))
	require.NoError(t, c.Set(ctx, "other", []byte("3"), 0))

	require.NoError(t, c.DeletePrefix(ctx, "gen:"))

	got, err := c.Get(ctx, "gen:a")
	require.NoError(t, err)
	require.Nil(t, got)
	got, err = c.Get(ctx, "other")
	require.NoError(t, err)
	require.Equal(t, []byte("3"), got)
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, c.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		got, err := c.Get(ctx, k)
		require.NoError(t, err)
		require.Nil(t, got)
	}
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = c.Set(ctx, "k", []byte("v"), 0)
		}
	}()
	for i := 0; i < 100; i++ {
		_, _ = c.Get(ctx, "k")
	}
	<-done
}
