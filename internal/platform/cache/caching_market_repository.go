// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stockr/internal/feature/quotes/domain/entity"
	"stockr/internal/feature/quotes/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// Daily bars for a past range never change, so fetched history is kept
// until the next UTC trading day instead of being re-fetched per request.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to the time until the next UTC midnight.
// If namespace is empty, it uses "quotes".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = TimeUntilMidnightUTC()
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetDailyHistory retrieves daily bars, checking cache first then falling
// back to the upstream provider.
func (c *CachingMarketRepository) GetDailyHistory(ctx context.Context, symbol, rng string) ([]entity.Quote, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetDailyHistory(ctx, symbol, rng)
	}

	key := c.cacheKey(symbol, rng)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.GetDailyHistory(ctx, symbol, rng)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific symbol and range.
func (c *CachingMarketRepository) cacheKey(symbol, rng string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(symbol), safe(rng))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
