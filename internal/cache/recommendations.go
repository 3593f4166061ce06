package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/seojin-dev/as-human-being/backend/internal/services"
	"go.uber.org/zap"
)

const anonymousKey = "anonymous"

// RecommendationsCache caches per-viewer recommendation results in Redis
// with a short TTL. Implements services.RecommendationCache.
type RecommendationsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	logger      *zap.Logger
}

// NewRecommendationsCache creates a new RecommendationsCache
func NewRecommendationsCache(redisClient *redis.Client, ttl time.Duration, logger *zap.Logger) *RecommendationsCache {
	return &RecommendationsCache{
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

func (c *RecommendationsCache) Get(ctx context.Context, viewerID string) (*services.Recommendations, bool) {
	data, err := c.redisClient.Get(ctx, c.redisKey(viewerID)).Bytes()
	if err != nil {
		return nil, false
	}
	var recs services.Recommendations
	if err := json.Unmarshal(data, &recs); err != nil {
		c.logger.Warn("dropping unreadable cached recommendations", zap.Error(err))
		return nil, false
	}
	return &recs, true
}

func (c *RecommendationsCache) Set(ctx context.Context, viewerID string, recs *services.Recommendations) {
	payload, err := json.Marshal(recs)
	if err != nil {
		return
	}
	if err := c.redisClient.Set(ctx, c.redisKey(viewerID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache recommendations", zap.Error(err))
	}
}

func (c *RecommendationsCache) Invalidate(ctx context.Context, viewerID string) {
	if err := c.redisClient.Del(ctx, c.redisKey(viewerID)).Err(); err != nil {
		c.logger.Warn("failed to invalidate cached recommendations", zap.Error(err))
	}
}

func (c *RecommendationsCache) redisKey(viewerID string) string {
	if viewerID == "" {
		viewerID = anonymousKey
	}
	return fmt.Sprintf("recommendations__%s", viewerID)
}
