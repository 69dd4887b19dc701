package usecase

import (
	"context"
	"fmt"
	"time"

	"stockr/internal/feature/quotes/domain/entity"
)

// RangeMax は取得可能な全履歴を要求するレンジ指定です。ダッシュボードは
// 常に全履歴を取得し、表示期間の絞り込みは取得後に行います。
const RangeMax = "max"

// MarketRepository は外部プロバイダから株価データを取得するリポジトリの
// インターフェイスです。外部APIの実装を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetDailyHistory は指定レンジ（"1y"や"max"など）の日足OHLCVを取得します。
	GetDailyHistory(ctx context.Context, symbol, rng string) ([]entity.Quote, error)
}

// quotesUsecase はダッシュボードの1描画サイクル分の取得・変換を実装します。
// 各サイクルは取得したスナップショットのみを操作し、状態を持ちません。
type quotesUsecase struct {
	market MarketRepository
	now    func() time.Time // 表示期間の基準日。テストで差し替えます。
}

// NewQuotesUsecase はquotesUsecaseの新しいインスタンスを生成します。
func NewQuotesUsecase(market MarketRepository) *quotesUsecase {
	return &quotesUsecase{market: market, now: time.Now}
}

// History は要求された全銘柄の全履歴を取得し、正規化した観測列を返します。
// プロバイダとの通信に失敗した場合はErrDataUnavailableでラップして返します。
// リトライは行いません。
func (u *quotesUsecase) History(ctx context.Context, symbols []string) ([]entity.Observation, error) {
	all := make([]entity.Quote, 0)
	for _, s := range symbols {
		qs, err := u.market.GetDailyHistory(ctx, s, RangeMax)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, s, err)
		}
		all = append(all, qs...)
	}
	return Normalize(all)
}

// Observations は1銘柄の観測列を取得し、表示期間で絞り込んで返します。
func (u *quotesUsecase) Observations(ctx context.Context, symbol string, w Window) ([]entity.Observation, error) {
	obs, err := u.History(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	return FilterByWindow(obs, symbol, w, u.today()), nil
}

// Summary は1銘柄・1表示期間分のKPIサマリーを返します。
// 期間内に観測がない場合はErrNoDataを返します。
func (u *quotesUsecase) Summary(ctx context.Context, symbol string, w Window) (entity.Summary, error) {
	obs, err := u.Observations(ctx, symbol, w)
	if err != nil {
		return entity.Summary{}, err
	}
	return Summarize(obs)
}

// Volume は1銘柄・1表示期間分の出来高系列を返します。
func (u *quotesUsecase) Volume(ctx context.Context, symbol string, w Window) (entity.VolumeSeries, error) {
	obs, err := u.Observations(ctx, symbol, w)
	if err != nil {
		return entity.VolumeSeries{}, err
	}
	return BuildVolumeSeries(obs), nil
}

// Tickers は要求された銘柄のうち、実際にデータが取得できたものの一覧を
// 返します。銘柄選択ドロップダウンの選択肢として使用されます。
func (u *quotesUsecase) Tickers(ctx context.Context, symbols []string) ([]string, error) {
	obs, err := u.History(ctx, symbols)
	if err != nil {
		return nil, err
	}
	return AvailableTickers(obs), nil
}

// today は表示期間計算の基準日（UTCの0時）を返します。
func (u *quotesUsecase) today() time.Time {
	n := u.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
