package usecase

import (
	"context"

	"stockr/internal/feature/quotes/domain/entity"
)

const (
	// DefaultOutputSize はローカルストアから返すデフォルトの行数です。
	DefaultOutputSize = 200
	// MaxOutputSize はローカルストアから返す最大行数です。
	MaxOutputSize = 5000
)

// QuoteStore はローカルに永続化された株価スナップショットの読み書きを
// 抽象化します。Goの慣例に従い、インターフェースは利用者（usecase）側で
// 定義します。
type QuoteStore interface {
	// Find は指定銘柄の日足を新しい順に最大outputsize件検索します。
	Find(ctx context.Context, ticker string, outputsize int) ([]entity.Quote, error)

	// UpsertBatch は(ticker, date)をユニークキーとしてUpsertします。
	UpsertBatch(ctx context.Context, quotes []entity.Quote) error
}

// storedQuotesUsecase はingestコマンドが永続化したスナップショットを
// 提供するユースケースです。プロバイダに到達できない環境（BIツール等の
// 外部利用）のための読み取り経路です。
type storedQuotesUsecase struct {
	store QuoteStore
}

// NewStoredQuotesUsecase はstoredQuotesUsecaseの新しいインスタンスを生成します。
func NewStoredQuotesUsecase(store QuoteStore) *storedQuotesUsecase {
	return &storedQuotesUsecase{store: store}
}

// GetStored は指定銘柄の永続化済み日足を取得します。
// outputsizeが範囲外の場合はデフォルト値を使用します。
func (u *storedQuotesUsecase) GetStored(ctx context.Context, ticker string, outputsize int) ([]entity.Quote, error) {
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}
	return u.store.Find(ctx, ticker, outputsize)
}
