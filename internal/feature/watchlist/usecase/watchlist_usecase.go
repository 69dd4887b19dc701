// Package usecase implements the business logic for watchlist operations.
package usecase

import (
	"context"
	"errors"

	"stockr/internal/feature/watchlist/domain/entity"
	"stockr/internal/shared/tickers"
)

// ErrEmptyWatchlist is returned when a replacement would leave the
// watchlist with no tickers.
var ErrEmptyWatchlist = errors.New("watchlist must contain at least one ticker")

// WatchlistRepository abstracts the persistence layer for watchlist entries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type WatchlistRepository interface {
	ListActive(ctx context.Context) ([]entity.Entry, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	Replace(ctx context.Context, codes []string) error
}

// WatchlistUsecase provides business logic for watchlist operations.
type WatchlistUsecase struct {
	repo WatchlistRepository
}

// NewWatchlistUsecase creates a new WatchlistUsecase with the given repository.
func NewWatchlistUsecase(r WatchlistRepository) *WatchlistUsecase {
	return &WatchlistUsecase{repo: r}
}

// ListActiveEntries returns all active watchlist entries in display order.
func (u *WatchlistUsecase) ListActiveEntries(ctx context.Context) ([]entity.Entry, error) {
	return u.repo.ListActive(ctx)
}

// ActiveCodes returns the active ticker codes in display order.
func (u *WatchlistUsecase) ActiveCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveCodes(ctx)
}

// Replace はカンマ区切りの自由入力でウォッチリスト全体を置き換えます。
// 入力は正規化（trim・大文字化・重複除去）され、空になる場合はエラーです。
func (u *WatchlistUsecase) Replace(ctx context.Context, input string) ([]string, error) {
	codes := tickers.ParseList(input)
	if len(codes) == 0 {
		return nil, ErrEmptyWatchlist
	}
	if err := u.repo.Replace(ctx, codes); err != nil {
		return nil, err
	}
	return codes, nil
}
