package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/seojin-dev/as-human-being/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RecommendationsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRecommendationsCache(client, ttl, zap.NewNop()), mr
}

func TestRecommendationsCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, "viewer")
	assert.False(t, ok)

	c.Set(ctx, "viewer", &services.Recommendations{
		Type:        "personalized",
		BasedOnTags: []string{"창업"},
	})

	got, ok := c.Get(ctx, "viewer")
	require.True(t, ok)
	assert.Equal(t, "personalized", got.Type)
	assert.Equal(t, []string{"창업"}, got.BasedOnTags)
}

func TestRecommendationsCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "viewer", &services.Recommendations{Type: "recent"})
	c.Invalidate(ctx, "viewer")

	_, ok := c.Get(ctx, "viewer")
	assert.False(t, ok)
}

func TestRecommendationsCacheAnonymousKey(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "", &services.Recommendations{Type: "recent"})

	assert.True(t, mr.Exists("recommendations__anonymous"))
	got, ok := c.Get(ctx, "")
	require.True(t, ok)
	assert.Equal(t, "recent", got.Type)
}

func TestRecommendationsCacheEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "viewer", &services.Recommendations{Type: "recent"})
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "viewer")
	assert.False(t, ok)
}

func TestRecommendationsCacheDropsCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, mr.Set("recommendations__viewer", "{not json"))

	_, ok := c.Get(context.Background(), "viewer")
	assert.False(t, ok)
}
