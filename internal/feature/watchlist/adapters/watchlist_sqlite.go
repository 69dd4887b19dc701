// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stockr/internal/feature/watchlist/domain/entity"
	"stockr/internal/feature/watchlist/usecase"
)

// WatchlistModel はwatchlist_entriesテーブルのGORMモデルです。
type WatchlistModel struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	SortKey   int       `gorm:"not null;default:0"`
	IsActive  bool      `gorm:"not null;default:true"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName はGORMが使用するテーブル名を指定します。
func (WatchlistModel) TableName() string { return "watchlist_entries" }

// watchlistSQLite はWatchlistRepositoryインターフェースのSQLite実装です。
type watchlistSQLite struct {
	db *gorm.DB
}

var _ usecase.WatchlistRepository = (*watchlistSQLite)(nil)

// NewWatchlistRepository は指定されたDB接続でwatchlistSQLiteリポジトリの新しいインスタンスを生成します。
func NewWatchlistRepository(db *gorm.DB) *watchlistSQLite {
	return &watchlistSQLite{db: db}
}

// ListActive はsort_key順にすべてのアクティブなエントリを返します。
func (r *watchlistSQLite) ListActive(ctx context.Context) ([]entity.Entry, error) {
	var models []WatchlistModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	entries := make([]entity.Entry, 0, len(models))
	for _, m := range models {
		entries = append(entries, entity.Entry{
			Code:      m.Code,
			SortKey:   m.SortKey,
			IsActive:  m.IsActive,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return entries, nil
}

// ListActiveCodes はsort_key順にアクティブなティッカーコードのみを返します。
func (r *watchlistSQLite) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&WatchlistModel{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Replace はウォッチリスト全体を指定コードで置き換えます。
// 削除と挿入を1トランザクションで行い、入力順をsort_keyとして保存します。
func (r *watchlistSQLite) Replace(ctx context.Context, codes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&WatchlistModel{}).Error; err != nil {
			return err
		}
		models := make([]WatchlistModel, 0, len(codes))
		for i, code := range codes {
			models = append(models, WatchlistModel{
				Code:     code,
				SortKey:  i,
				IsActive: true,
			})
		}
		if len(models) == 0 {
			return nil
		}
		return tx.Create(&models).Error
	})
}
