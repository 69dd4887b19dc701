// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockr/internal/api"
	"stockr/internal/feature/watchlist/domain/entity"
	"stockr/internal/feature/watchlist/transport/http/dto"
	"stockr/internal/feature/watchlist/usecase"
)

// WatchlistUsecase はウォッチリスト操作のユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	ListActiveEntries(ctx context.Context) ([]entity.Entry, error)
	Replace(ctx context.Context, input string) ([]string, error)
}

// WatchlistHandler はウォッチリストに関するHTTPリクエストを処理します。
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler は新しい WatchlistHandler を作成します。
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// List は現在のウォッチリストをsort_key順で返すAPIです。
func (h *WatchlistHandler) List(c *gin.Context) {
	entries, err := h.uc.ListActiveEntries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]dto.WatchlistItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.WatchlistItem{Code: e.Code, SortKey: e.SortKey})
	}
	c.JSON(http.StatusOK, out)
}

// Replace はウォッチリスト全体をリクエストのティッカー群で置き換えるAPIです。
// 正規化後に空になる入力は400を返します。
func (h *WatchlistHandler) Replace(c *gin.Context) {
	var req dto.ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	codes, err := h.uc.Replace(c.Request.Context(), req.Tickers)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyWatchlist) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.WatchlistItem, 0, len(codes))
	for i, code := range codes {
		out = append(out, dto.WatchlistItem{Code: code, SortKey: i})
	}
	c.JSON(http.StatusOK, out)
}
