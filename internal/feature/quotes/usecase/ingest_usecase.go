package usecase

import (
	"context"
	"log/slog"
)

// Pacer は外部プロバイダへの連続呼び出しの間隔を制御します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Pacer interface {
	WaitIfNeeded()
}

// IngestUsecase は外部プロバイダから全履歴を取得し、ローカルストアに
// 永続化するユースケースです。ingestコマンドから使用されます。
type IngestUsecase struct {
	market MarketRepository
	store  QuoteStore
	pacer  Pacer
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(market MarketRepository, store QuoteStore, pacer Pacer) *IngestUsecase {
	return &IngestUsecase{market: market, store: store, pacer: pacer}
}

// ingestOne は1銘柄の全履歴を取得してローカルストアにUpsertします。
func (iu *IngestUsecase) ingestOne(ctx context.Context, ticker string) error {
	qs, err := iu.market.GetDailyHistory(ctx, ticker, RangeMax)
	if err != nil {
		return err
	}
	// プロバイダによってはシンボルが空で返ることがあるため明示的に設定
	for i := range qs {
		qs[i].Ticker = ticker
	}
	return iu.store.UpsertBatch(ctx, qs)
}

// IngestAll はウォッチリストの全銘柄の履歴を取得し、ローカルストアに
// 永続化します。プロバイダのレートリミットを考慮して、リクエスト間に
// 適切な待機時間を設けます。
func (iu *IngestUsecase) IngestAll(ctx context.Context, tickers []string) error {
	for _, t := range tickers {
		iu.pacer.WaitIfNeeded()
		if err := iu.ingestOne(ctx, t); err != nil {
			// 1銘柄のエラーで処理全体を止めず、ログに出して次の銘柄へ進む
			slog.Error("failed to ingest quotes", "ticker", t, "error", err)
			continue
		}
	}
	return nil
}
