// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"stockr/internal/feature/quotes/usecase"
	"stockr/internal/platform/cache"
	"stockr/internal/platform/externalapi/yahoo"
	platformhttp "stockr/internal/platform/http"
)

// NewMarket creates a fully configured Yahoo Finance market client.
func NewMarket() *yahoo.Market {
	cfg := yahoo.LoadConfig()
	httpClient := platformhttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewMarket(cfg, httpClient)
}

// NewFundamentals creates a fully configured Yahoo Finance fundamentals client.
func NewFundamentals() *yahoo.Fundamentals {
	cfg := yahoo.LoadConfig()
	httpClient := platformhttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewFundamentals(cfg, httpClient)
}

// NewCachedMarket はYahoo Financeクライアントをredisキャッシュで包んで返します。
// rdbがnilの場合でもデコレータはキャッシュをバイパスしてそのまま動作します。
func NewCachedMarket(rdb *redis.Client) usecase.MarketRepository {
	return cache.NewCachingMarketRepository(rdb, 0, NewMarket(), "quotes")
}
