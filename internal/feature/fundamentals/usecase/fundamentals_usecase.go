// Package usecase は企業情報（財務諸表・配当・分割・アナリスト推奨）の
// ビジネスロジックを実装します。この系統のデータはプロバイダのレコード構造を
// そのまま表示する読み取り専用ビューであり、正規化は行いません。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"stockr/internal/feature/fundamentals/domain/entity"
)

// 財務諸表の種別です。
const (
	StatementIncome   = "income"
	StatementBalance  = "balance"
	StatementCashflow = "cashflow"
)

// recommendationsLimit は返すアナリスト推奨の最大件数です。
const recommendationsLimit = 20

var (
	// ErrMissingData is returned when the provider has no records for
	// the requested section. The UI shows an informational placeholder
	// and continues; this is not a transport failure.
	ErrMissingData = errors.New("data is not available for this ticker")

	// ErrUnknownStatement is returned for an unrecognized statement kind.
	ErrUnknownStatement = errors.New("unknown statement kind")
)

// FundamentalsRepository は外部プロバイダから企業情報を取得するリポジトリの
// インターフェイスです。Goの慣例に従い、インターフェースは利用者（usecase）
// 側で定義します。
type FundamentalsRepository interface {
	GetStatement(ctx context.Context, ticker, kind string) (entity.Statement, error)
	GetKeyStats(ctx context.Context, ticker string) (entity.KeyStats, error)
	GetDividends(ctx context.Context, ticker string) ([]entity.Dividend, error)
	GetSplits(ctx context.Context, ticker string) ([]entity.Split, error)
	GetRecommendations(ctx context.Context, ticker string) ([]entity.RecommendationTrend, error)
}

// fundamentalsUsecase は企業情報のユースケースを定義します。
type fundamentalsUsecase struct {
	repo FundamentalsRepository
}

// NewFundamentalsUsecase はfundamentalsUsecaseの新しいインスタンスを生成します。
func NewFundamentalsUsecase(repo FundamentalsRepository) *fundamentalsUsecase {
	return &fundamentalsUsecase{repo: repo}
}

// GetStatement は指定種別の財務諸表を取得します。レコードが存在しない場合は
// ErrMissingDataを返します（UI側は情報プレースホルダを表示して継続します）。
func (u *fundamentalsUsecase) GetStatement(ctx context.Context, ticker, kind string) (entity.Statement, error) {
	switch kind {
	case StatementIncome, StatementBalance, StatementCashflow:
	default:
		return entity.Statement{}, fmt.Errorf("%w: %q", ErrUnknownStatement, kind)
	}

	st, err := u.repo.GetStatement(ctx, ticker, kind)
	if err != nil {
		return entity.Statement{}, err
	}
	if len(st.Records) == 0 {
		return entity.Statement{}, ErrMissingData
	}
	return st, nil
}

// GetKeyStats は主要指標と企業プロフィールを取得します。
// 全指標が欠損かつプロフィールも空の場合はErrMissingDataを返します。
func (u *fundamentalsUsecase) GetKeyStats(ctx context.Context, ticker string) (entity.KeyStats, error) {
	ks, err := u.repo.GetKeyStats(ctx, ticker)
	if err != nil {
		return entity.KeyStats{}, err
	}
	if ks.MarketCap == nil && ks.TrailingPE == nil && ks.ForwardPE == nil &&
		ks.Beta == nil && ks.Profile == "" {
		return entity.KeyStats{}, ErrMissingData
	}
	return ks, nil
}

// GetDividends は配当実績を新しい順で返します。
func (u *fundamentalsUsecase) GetDividends(ctx context.Context, ticker string) ([]entity.Dividend, error) {
	ds, err := u.repo.GetDividends(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, ErrMissingData
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Date.After(ds[j].Date) })
	return ds, nil
}

// GetSplits は株式分割の実績を新しい順で返します。
func (u *fundamentalsUsecase) GetSplits(ctx context.Context, ticker string) ([]entity.Split, error) {
	ss, err := u.repo.GetSplits(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if len(ss) == 0 {
		return nil, ErrMissingData
	}
	sort.Slice(ss, func(i, j int) bool { return ss[i].Date.After(ss[j].Date) })
	return ss, nil
}

// GetRecommendations はアナリスト推奨を新しい順で最大20件返します。
func (u *fundamentalsUsecase) GetRecommendations(ctx context.Context, ticker string) ([]entity.RecommendationTrend, error) {
	rs, err := u.repo.GetRecommendations(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if len(rs) == 0 {
		return nil, ErrMissingData
	}
	if len(rs) > recommendationsLimit {
		rs = rs[len(rs)-recommendationsLimit:]
	}
	// プロバイダは古い順で返すため表示用に反転
	out := make([]entity.RecommendationTrend, 0, len(rs))
	for i := len(rs) - 1; i >= 0; i-- {
		out = append(out, rs[i])
	}
	return out, nil
}
