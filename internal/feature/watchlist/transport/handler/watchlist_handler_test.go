package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockr/internal/feature/watchlist/domain/entity"
	"stockr/internal/feature/watchlist/usecase"
)

// mockWatchlistUsecase はWatchlistUsecaseのテスト用モックです。
type mockWatchlistUsecase struct {
	listFunc    func(ctx context.Context) ([]entity.Entry, error)
	replaceFunc func(ctx context.Context, input string) ([]string, error)
}

func (m *mockWatchlistUsecase) ListActiveEntries(ctx context.Context) ([]entity.Entry, error) {
	return m.listFunc(ctx)
}

func (m *mockWatchlistUsecase) Replace(ctx context.Context, input string) ([]string, error) {
	return m.replaceFunc(ctx, input)
}

func setupRouter(uc WatchlistUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewWatchlistHandler(uc)
	r.GET("/watchlist", h.List)
	r.PUT("/watchlist", h.Replace)
	return r
}

func TestWatchlistHandler_List(t *testing.T) {
	t.Parallel()

	uc := &mockWatchlistUsecase{
		listFunc: func(ctx context.Context) ([]entity.Entry, error) {
			return []entity.Entry{
				{Code: "AAPL", SortKey: 0},
				{Code: "MSFT", SortKey: 1},
			}, nil
		},
	}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/watchlist", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "AAPL", body[0]["code"])
	assert.Equal(t, float64(1), body[1]["sort_key"])
}

func TestWatchlistHandler_List_Error(t *testing.T) {
	t.Parallel()

	uc := &mockWatchlistUsecase{
		listFunc: func(ctx context.Context) ([]entity.Entry, error) {
			return nil, errors.New("db down")
		},
	}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/watchlist", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWatchlistHandler_Replace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		replace    func(ctx context.Context, input string) ([]string, error)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"tickers": "aapl, msft"}`,
			replace: func(ctx context.Context, input string) ([]string, error) {
				return []string{"AAPL", "MSFT"}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing body",
			body:       `{}`,
			replace:    nil,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty after normalization",
			body: `{"tickers": " , ,"}`,
			replace: func(ctx context.Context, input string) ([]string, error) {
				return nil, usecase.ErrEmptyWatchlist
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "repository failure",
			body: `{"tickers": "AAPL"}`,
			replace: func(ctx context.Context, input string) ([]string, error) {
				return nil, errors.New("db down")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockWatchlistUsecase{replaceFunc: tt.replace}
			router := setupRouter(uc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/watchlist", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var body []map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				require.Len(t, body, 2)
				assert.Equal(t, "AAPL", body[0]["code"])
			}
		})
	}
}
