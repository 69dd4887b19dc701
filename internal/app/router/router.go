package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "stockr/internal/feature/auth/transport/handler"
	fundhandler "stockr/internal/feature/fundamentals/transport/handler"
	quoteshandler "stockr/internal/feature/quotes/transport/handler"
	watchlisthandler "stockr/internal/feature/watchlist/transport/handler"
	"stockr/internal/platform/http/handler"
	jwtmw "stockr/internal/platform/jwt"
)

// NewRouter はアプリケーションの全ルートを登録したginエンジンを返します。
func NewRouter(
	authHandler *authhandler.AuthHandler,
	quotes *quoteshandler.QuotesHandler,
	stored *quoteshandler.StoredQuotesHandler,
	watchlist *watchlisthandler.WatchlistHandler,
	fundamentals *fundhandler.FundamentalsHandler,
) *gin.Engine {
	r := gin.Default()

	// ブラウザのダッシュボードから呼ぶためCORSを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		// チャート用の日次リターン系列と統計
		auth.GET("/quotes/:ticker", quotes.GetObservations)
		auth.GET("/quotes/:ticker/summary", quotes.GetSummary)
		auth.GET("/quotes/:ticker/volume", quotes.GetVolume)
		auth.GET("/tickers", quotes.ListTickers)

		// 取り込み済みのローカル履歴
		auth.GET("/history/:ticker", stored.GetStoredQuotes)

		// ウォッチリスト
		auth.GET("/watchlist", watchlist.List)
		auth.PUT("/watchlist", watchlist.Replace)

		// 企業情報タブ
		auth.GET("/fundamentals/:ticker/statements/:kind", fundamentals.GetStatement)
		auth.GET("/fundamentals/:ticker/stats", fundamentals.GetKeyStats)
		auth.GET("/fundamentals/:ticker/dividends", fundamentals.GetDividends)
		auth.GET("/fundamentals/:ticker/splits", fundamentals.GetSplits)
		auth.GET("/fundamentals/:ticker/recommendations", fundamentals.GetRecommendations)
	}

	return r
}
