package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"stockr/internal/app/di"
	quotesadapters "stockr/internal/feature/quotes/adapters"
	quotesusecase "stockr/internal/feature/quotes/usecase"
	watchlistadapters "stockr/internal/feature/watchlist/adapters"
	"stockr/internal/platform/db"
	"stockr/internal/shared/ratelimiter"
)

func main() {
	_ = godotenv.Load()

	gormDB := db.OpenDB()
	marketRepo := di.NewMarket()
	quoteStore := quotesadapters.NewQuoteStore(gormDB)
	watchlistRepo := watchlistadapters.NewWatchlistRepository(gormDB)

	// プロバイダの呼び出し頻度を抑える
	limiter := ratelimiter.NewRateLimiter(30, time.Minute)
	uc := quotesusecase.NewIngestUsecase(marketRepo, quoteStore, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	tickers, err := watchlistRepo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("failed to load watchlist:", err)
	}
	if len(tickers) == 0 {
		log.Fatal("watchlist is empty: add tickers via PUT /watchlist first")
	}

	if err := uc.IngestAll(ctx, tickers); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
