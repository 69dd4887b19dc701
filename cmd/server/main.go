package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stockr/internal/app/di"
	"stockr/internal/app/router"
	authadapters "stockr/internal/feature/auth/adapters"
	authhandler "stockr/internal/feature/auth/transport/handler"
	authusecase "stockr/internal/feature/auth/usecase"
	fundhandler "stockr/internal/feature/fundamentals/transport/handler"
	fundusecase "stockr/internal/feature/fundamentals/usecase"
	quotesadapters "stockr/internal/feature/quotes/adapters"
	quoteshandler "stockr/internal/feature/quotes/transport/handler"
	quotesusecase "stockr/internal/feature/quotes/usecase"
	watchlistadapters "stockr/internal/feature/watchlist/adapters"
	watchlisthandler "stockr/internal/feature/watchlist/transport/handler"
	watchlistusecase "stockr/internal/feature/watchlist/usecase"
	"stockr/internal/platform/db"
	jwtmw "stockr/internal/platform/jwt"
	platformredis "stockr/internal/platform/redis"
)

const jwtExpiration = 24 * time.Hour

func main() {
	// ローカル開発用の.env（無くても続行）
	_ = godotenv.Load()

	// db
	gormDB := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(gormDB)
	quoteStore := quotesadapters.NewQuoteStore(gormDB)
	watchlistRepo := watchlistadapters.NewWatchlistRepository(gormDB)
	market := di.NewCachedMarket(rdb)
	fundamentalsRepo := di.NewFundamentals()

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), jwtExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	quotesUC := quotesusecase.NewQuotesUsecase(market)
	storedUC := quotesusecase.NewStoredQuotesUsecase(quoteStore)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo)
	fundUC := fundusecase.NewFundamentalsUsecase(fundamentalsRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	quotesH := quoteshandler.NewQuotesHandler(quotesUC)
	storedH := quoteshandler.NewStoredQuotesHandler(storedUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)
	fundH := fundhandler.NewFundamentalsHandler(fundUC)

	// ルータ生成
	r := router.NewRouter(authH, quotesH, storedH, watchlistH, fundH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
