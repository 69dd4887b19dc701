// Package adapters はquotesフィーチャーの永続化実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockr/internal/feature/quotes/domain/entity"
	"stockr/internal/feature/quotes/usecase"
)

// quoteSQLite はQuoteStoreインターフェースのSQLite実装です。
type quoteSQLite struct {
	db *gorm.DB
}

// quoteSQLiteがQuoteStoreを実装していることをコンパイル時に検証します。
var _ usecase.QuoteStore = (*quoteSQLite)(nil)

// NewQuoteStore は指定されたgorm.DB接続でquoteSQLiteの新しいインスタンスを生成します。
func NewQuoteStore(db *gorm.DB) *quoteSQLite {
	return &quoteSQLite{db: db}
}

// QuoteModel はquotesテーブルのGORMモデルです。
// (ticker, date) がユニークキーです。
type QuoteModel struct {
	ID     uint      `gorm:"primaryKey"`
	Ticker string    `gorm:"size:32;not null;uniqueIndex:quote_ticker_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:quote_ticker_date,priority:2"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume int64   `gorm:"not null;default:0"`
}

func (QuoteModel) TableName() string {
	return "quotes"
}

func toModel(e entity.Quote) QuoteModel {
	return QuoteModel{
		Ticker: e.Ticker,
		Date:   e.Date,
		Open:   e.Open,
		High:   e.High,
		Low:    e.Low,
		Close:  e.Close,
		Volume: e.Volume,
	}
}

func toEntity(m QuoteModel) entity.Quote {
	return entity.Quote{
		Ticker: m.Ticker,
		Date:   m.Date,
		Open:   m.Open,
		High:   m.High,
		Low:    m.Low,
		Close:  m.Close,
		Volume: m.Volume,
	}
}

// UpsertBatch は(ticker, date)をユニークキーとして一括Upsertします。
func (r *quoteSQLite) UpsertBatch(ctx context.Context, quotes []entity.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	ms := make([]QuoteModel, 0, len(quotes))
	for _, e := range quotes {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&ms).Error
}

// Find は指定銘柄の日足を新しい順に最大outputsize件検索します。
func (r *quoteSQLite) Find(ctx context.Context, ticker string, outputsize int) ([]entity.Quote, error) {
	var rows []QuoteModel
	q := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("date DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Quote, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
