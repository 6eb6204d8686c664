package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *MenuCache {
	mr := miniredis.RunT(t)
	c := NewMenuCache(mr.Addr(), time.Minute)
	require.NotNil(t, c)
	require.NoError(t, c.Ping(context.Background()))
	return c
}

func TestMenuCacheReturnsCachedPayloadUntilInvalidated(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var dest []string
	assert.False(t, c.Get(ctx, "r1", "categories", &dest), "empty cache must miss")

	c.Set(ctx, "r1", "categories", []string{"Rice Dishes", "Noodles"})

	require.True(t, c.Get(ctx, "r1", "categories", &dest))
	assert.Equal(t, []string{"Rice Dishes", "Noodles"}, dest)

	// A menu mutation bumps the version and orphans every cached listing
	c.Invalidate(ctx, "r1")

	dest = nil
	assert.False(t, c.Get(ctx, "r1", "categories", &dest), "invalidation must force a miss")

	// Fresh writes land under the new version and are served again
	c.Set(ctx, "r1", "categories", []string{"Rice Dishes"})
	require.True(t, c.Get(ctx, "r1", "categories", &dest))
	assert.Equal(t, []string{"Rice Dishes"}, dest)
}

func TestMenuCacheInvalidationScopedPerRestaurant(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "r1", "items", []string{"Pad Thai"})
	c.Set(ctx, "r2", "items", []string{"Green Curry"})

	c.Invalidate(ctx, "r1")

	var dest []string
	assert.False(t, c.Get(ctx, "r1", "items", &dest))
	require.True(t, c.Get(ctx, "r2", "items", &dest), "other restaurants keep their entries")
	assert.Equal(t, []string{"Green Curry"}, dest)
}

func TestMenuCacheEntriesExpire(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewMenuCache(mr.Addr(), time.Minute)
	require.NotNil(t, c)
	ctx := context.Background()

	c.Set(ctx, "r1", "banners", []string{"Lunch Special"})

	var dest []string
	require.True(t, c.Get(ctx, "r1", "banners", &dest))

	mr.FastForward(2 * time.Minute)

	dest = nil
	assert.False(t, c.Get(ctx, "r1", "banners", &dest), "entries past their TTL must miss")
}

func TestNilMenuCacheDisablesCaching(t *testing.T) {
	c := NewMenuCache("", time.Minute)
	require.Nil(t, c)
	ctx := context.Background()

	// All operations are safe no-ops on the nil receiver
	var dest []string
	assert.False(t, c.Get(ctx, "r1", "categories", &dest))
	c.Set(ctx, "r1", "categories", []string{"Drinks"})
	c.Invalidate(ctx, "r1")
	assert.NoError(t, c.Ping(ctx))
}
