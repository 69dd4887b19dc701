package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	fundentity "stockr/internal/feature/fundamentals/domain/entity"
	fundusecase "stockr/internal/feature/fundamentals/usecase"
	quotesusecase "stockr/internal/feature/quotes/usecase"
	"stockr/internal/platform/externalapi/yahoo/dto"
)

// statementModules は財務諸表の種別をquoteSummaryのモジュール名にマップします。
var statementModules = map[string]string{
	fundusecase.StatementIncome:   "incomeStatementHistory",
	fundusecase.StatementBalance:  "balanceSheetHistory",
	fundusecase.StatementCashflow: "cashflowStatementHistory",
}

// Fundamentals はYahoo Financeから企業情報を取得する
// FundamentalsRepository実装です。財務諸表とアナリスト推奨は
// quoteSummaryエンドポイント、配当・分割はチャートAPIのイベントから
// 取得します。
type Fundamentals struct {
	cfg    Config
	market *Market
	client *http.Client
}

// FundamentalsがFundamentalsRepositoryを実装していることをコンパイル時に検証します。
var _ fundusecase.FundamentalsRepository = (*Fundamentals)(nil)

// NewFundamentals は指定された設定とHTTPクライアントでFundamentalsの新しいインスタンスを生成します。
func NewFundamentals(cfg Config, client *http.Client) *Fundamentals {
	return &Fundamentals{cfg: cfg, market: NewMarket(cfg, client), client: client}
}

// GetStatement は指定種別の財務諸表レコードをプロバイダ構造のまま返します。
func (f *Fundamentals) GetStatement(ctx context.Context, ticker, kind string) (fundentity.Statement, error) {
	module, ok := statementModules[kind]
	if !ok {
		return fundentity.Statement{}, fmt.Errorf("unsupported statement kind %q", kind)
	}

	res, err := f.getQuoteSummary(ctx, ticker, module)
	if err != nil {
		return fundentity.Statement{}, err
	}

	st := fundentity.Statement{Ticker: ticker, Kind: kind}
	if res == nil {
		return st, nil
	}
	switch kind {
	case fundusecase.StatementIncome:
		if res.IncomeStatementHistory != nil {
			st.Records = res.IncomeStatementHistory.Statements
		}
	case fundusecase.StatementBalance:
		if res.BalanceSheetHistory != nil {
			st.Records = res.BalanceSheetHistory.Statements
		}
	case fundusecase.StatementCashflow:
		if res.CashflowStatementHistory != nil {
			st.Records = res.CashflowStatementHistory.Statements
		}
	}
	return st, nil
}

// keyStatsModules はGetKeyStatsが1リクエストでまとめて取得するモジュールです。
const keyStatsModules = "summaryDetail,defaultKeyStatistics,assetProfile"

// GetKeyStats は主要指標（時価総額・PER・ベータ）と企業プロフィールを返します。
// forwardPEとbetaはsummaryDetailを優先し、欠けていればdefaultKeyStatisticsで補完します。
func (f *Fundamentals) GetKeyStats(ctx context.Context, ticker string) (fundentity.KeyStats, error) {
	res, err := f.getQuoteSummary(ctx, ticker, keyStatsModules)
	if err != nil {
		return fundentity.KeyStats{}, err
	}

	ks := fundentity.KeyStats{Ticker: ticker}
	if res == nil {
		return ks, nil
	}
	if sd := res.SummaryDetail; sd != nil {
		ks.MarketCap = sd.MarketCap.Raw
		ks.TrailingPE = sd.TrailingPE.Raw
		ks.ForwardPE = sd.ForwardPE.Raw
		ks.Beta = sd.Beta.Raw
	}
	if dk := res.DefaultKeyStatistics; dk != nil {
		if ks.ForwardPE == nil {
			ks.ForwardPE = dk.ForwardPE.Raw
		}
		if ks.Beta == nil {
			ks.Beta = dk.Beta.Raw
		}
	}
	if ap := res.AssetProfile; ap != nil {
		ks.Profile = ap.LongBusinessSummary
	}
	return ks, nil
}

// GetRecommendations はアナリスト推奨の期間別集計を返します。
func (f *Fundamentals) GetRecommendations(ctx context.Context, ticker string) ([]fundentity.RecommendationTrend, error) {
	res, err := f.getQuoteSummary(ctx, ticker, "recommendationTrend")
	if err != nil {
		return nil, err
	}
	if res == nil || res.RecommendationTrend == nil {
		return nil, nil
	}

	out := make([]fundentity.RecommendationTrend, 0, len(res.RecommendationTrend.Trend))
	for _, t := range res.RecommendationTrend.Trend {
		out = append(out, fundentity.RecommendationTrend{
			Period:     t.Period,
			StrongBuy:  t.StrongBuy,
			Buy:        t.Buy,
			Hold:       t.Hold,
			Sell:       t.Sell,
			StrongSell: t.StrongSell,
		})
	}
	return out, nil
}

// GetDividends は全履歴の配当イベントを返します。
func (f *Fundamentals) GetDividends(ctx context.Context, ticker string) ([]fundentity.Dividend, error) {
	events, err := f.getChartEvents(ctx, ticker, "div")
	if err != nil || events == nil {
		return nil, err
	}
	out := make([]fundentity.Dividend, 0, len(events.Dividends))
	for _, d := range events.Dividends {
		out = append(out, fundentity.Dividend{
			Date:   time.Unix(d.Date, 0).UTC(),
			Amount: d.Amount,
		})
	}
	return out, nil
}

// GetSplits は全履歴の株式分割イベントを返します。
func (f *Fundamentals) GetSplits(ctx context.Context, ticker string) ([]fundentity.Split, error) {
	events, err := f.getChartEvents(ctx, ticker, "split")
	if err != nil || events == nil {
		return nil, err
	}
	out := make([]fundentity.Split, 0, len(events.Splits))
	for _, s := range events.Splits {
		out = append(out, fundentity.Split{
			Date:        time.Unix(s.Date, 0).UTC(),
			Numerator:   s.Numerator,
			Denominator: s.Denominator,
			Ratio:       s.SplitRatio,
		})
	}
	return out, nil
}

// getChartEvents は全履歴チャートからイベントセクションのみを取り出します。
func (f *Fundamentals) getChartEvents(ctx context.Context, ticker, eventType string) (*dto.ChartEvents, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", quotesusecase.RangeMax)
	q.Set("events", eventType)

	body, err := f.market.getChart(ctx, ticker, q)
	if err != nil {
		return nil, err
	}
	if len(body.Chart.Result) == 0 {
		return nil, nil
	}
	return body.Chart.Result[0].Events, nil
}

// getQuoteSummary はquoteSummaryエンドポイントから1モジュール分を取得します。
// 結果が空の場合はnilを返します（欠損データの扱いはusecase側で決めます）。
func (f *Fundamentals) getQuoteSummary(ctx context.Context, ticker, module string) (*dto.QuoteSummaryResult, error) {
	q := url.Values{}
	q.Set("modules", module)
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", f.cfg.BaseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 該当モジュールを持たない銘柄は404で返る。欠損データとして扱う。
	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.QuoteSummaryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo: %s: %s", body.QuoteSummary.Error.Code, body.QuoteSummary.Error.Description)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, nil
	}
	return &body.QuoteSummary.Result[0], nil
}
