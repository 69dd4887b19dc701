package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockr/internal/feature/fundamentals/domain/entity"
	"stockr/internal/feature/fundamentals/transport/handler"
	"stockr/internal/feature/fundamentals/usecase"
)

// mockFundamentalsUsecase はFundamentalsUsecaseインターフェースのモック実装です。
type mockFundamentalsUsecase struct {
	GetStatementFunc       func(ctx context.Context, ticker, kind string) (entity.Statement, error)
	GetKeyStatsFunc        func(ctx context.Context, ticker string) (entity.KeyStats, error)
	GetDividendsFunc       func(ctx context.Context, ticker string) ([]entity.Dividend, error)
	GetSplitsFunc          func(ctx context.Context, ticker string) ([]entity.Split, error)
	GetRecommendationsFunc func(ctx context.Context, ticker string) ([]entity.RecommendationTrend, error)
}

func (m *mockFundamentalsUsecase) GetStatement(ctx context.Context, ticker, kind string) (entity.Statement, error) {
	return m.GetStatementFunc(ctx, ticker, kind)
}

func (m *mockFundamentalsUsecase) GetKeyStats(ctx context.Context, ticker string) (entity.KeyStats, error) {
	return m.GetKeyStatsFunc(ctx, ticker)
}

func (m *mockFundamentalsUsecase) GetDividends(ctx context.Context, ticker string) ([]entity.Dividend, error) {
	return m.GetDividendsFunc(ctx, ticker)
}

func (m *mockFundamentalsUsecase) GetSplits(ctx context.Context, ticker string) ([]entity.Split, error) {
	return m.GetSplitsFunc(ctx, ticker)
}

func (m *mockFundamentalsUsecase) GetRecommendations(ctx context.Context, ticker string) ([]entity.RecommendationTrend, error) {
	return m.GetRecommendationsFunc(ctx, ticker)
}

// newRouter はテスト用のginルーターを組み立てます。
func newRouter(uc handler.FundamentalsUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewFundamentalsHandler(uc)
	r := gin.New()
	r.GET("/fundamentals/:ticker/statements/:kind", h.GetStatement)
	r.GET("/fundamentals/:ticker/stats", h.GetKeyStats)
	r.GET("/fundamentals/:ticker/dividends", h.GetDividends)
	r.GET("/fundamentals/:ticker/splits", h.GetSplits)
	r.GET("/fundamentals/:ticker/recommendations", h.GetRecommendations)
	return r
}

// TestFundamentalsHandler_GetStatement は財務諸表エンドポイントをテストします。
func TestFundamentalsHandler_GetStatement(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mock           func(ctx context.Context, ticker, kind string) (entity.Statement, error)
		expectedStatus int
	}{
		{
			name: "success: passthrough records",
			url:  "/fundamentals/AAPL/statements/income",
			mock: func(ctx context.Context, ticker, kind string) (entity.Statement, error) {
				assert.Equal(t, "AAPL", ticker)
				assert.Equal(t, "income", kind)
				return entity.Statement{
					Ticker:  ticker,
					Kind:    kind,
					Records: []map[string]any{{"totalRevenue": 394328000000.0}},
				}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error: missing section maps to 404 placeholder",
			url:  "/fundamentals/AAPL/statements/balance",
			mock: func(ctx context.Context, ticker, kind string) (entity.Statement, error) {
				return entity.Statement{}, usecase.ErrMissingData
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "error: unknown kind maps to 400",
			url:  "/fundamentals/AAPL/statements/earnings",
			mock: func(ctx context.Context, ticker, kind string) (entity.Statement, error) {
				return entity.Statement{}, usecase.ErrUnknownStatement
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error: provider failure maps to 502",
			url:  "/fundamentals/AAPL/statements/cashflow",
			mock: func(ctx context.Context, ticker, kind string) (entity.Statement, error) {
				return entity.Statement{}, errors.New("connection refused")
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockFundamentalsUsecase{GetStatementFunc: tt.mock})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// TestFundamentalsHandler_GetKeyStats は主要指標エンドポイントをテストします。
func TestFundamentalsHandler_GetKeyStats(t *testing.T) {
	t.Run("success: available metrics plus null placeholders", func(t *testing.T) {
		marketCap := 2.8e12
		trailingPE := 29.4
		uc := &mockFundamentalsUsecase{
			GetKeyStatsFunc: func(ctx context.Context, ticker string) (entity.KeyStats, error) {
				assert.Equal(t, "AAPL", ticker)
				return entity.KeyStats{
					Ticker:     ticker,
					MarketCap:  &marketCap,
					TrailingPE: &trailingPE,
					Profile:    "Designs consumer electronics.",
				}, nil
			},
		}
		r := newRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/fundamentals/AAPL/stats", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var out map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, 2.8e12, out["market_cap"])
		assert.Equal(t, 29.4, out["trailing_pe"])
		assert.Nil(t, out["forward_pe"])
		assert.Nil(t, out["beta"])
		assert.Equal(t, "Designs consumer electronics.", out["profile"])
	})

	t.Run("error: missing stats map to 404 placeholder", func(t *testing.T) {
		uc := &mockFundamentalsUsecase{
			GetKeyStatsFunc: func(ctx context.Context, ticker string) (entity.KeyStats, error) {
				return entity.KeyStats{}, usecase.ErrMissingData
			},
		}
		r := newRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/fundamentals/DELISTED/stats", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestFundamentalsHandler_GetDividends は配当エンドポイントをテストします。
func TestFundamentalsHandler_GetDividends(t *testing.T) {
	uc := &mockFundamentalsUsecase{
		GetDividendsFunc: func(ctx context.Context, ticker string) ([]entity.Dividend, error) {
			return []entity.Dividend{
				{Date: time.Date(2023, 8, 11, 0, 0, 0, 0, time.UTC), Amount: 0.24},
			}, nil
		},
	}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/fundamentals/AAPL/dividends", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "2023-08-11", out[0]["date"])
	assert.Equal(t, 0.24, out[0]["amount"])
}

// TestFundamentalsHandler_GetRecommendations はアナリスト推奨エンドポイントをテストします。
func TestFundamentalsHandler_GetRecommendations(t *testing.T) {
	uc := &mockFundamentalsUsecase{
		GetRecommendationsFunc: func(ctx context.Context, ticker string) ([]entity.RecommendationTrend, error) {
			return []entity.RecommendationTrend{
				{Period: "0m", StrongBuy: 10, Buy: 21, Hold: 6, Sell: 0, StrongSell: 0},
			}, nil
		},
	}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/fundamentals/AAPL/recommendations", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, 21.0, out[0]["buy"])
}
