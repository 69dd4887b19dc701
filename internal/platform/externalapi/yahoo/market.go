package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stockr/internal/feature/quotes/domain/entity"
	"stockr/internal/feature/quotes/usecase"
	"stockr/internal/platform/externalapi/yahoo/dto"
)

// Market はYahoo FinanceのチャートAPIから株価データを取得する
// MarketRepository実装です。
type Market struct {
	cfg    Config
	client *http.Client
}

// MarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket は指定された設定とHTTPクライアントでMarketの新しいインスタンスを生成します。
func NewMarket(cfg Config, client *http.Client) *Market {
	return &Market{cfg: cfg, client: client}
}

// GetDailyHistory は指定レンジ（"1mo"や"max"など）の日足OHLCVを取得します。
func (m *Market) GetDailyHistory(ctx context.Context, symbol, rng string) ([]entity.Quote, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", rng)
	return m.fetchChart(ctx, symbol, q)
}

// GetDailyHistoryBetween は指定期間（両端のUTC日付）の日足OHLCVを取得します。
// endは翌日0時を上限として渡すことで当日分を含めます。
func (m *Market) GetDailyHistoryBetween(ctx context.Context, symbol string, start, end time.Time) ([]entity.Quote, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	return m.fetchChart(ctx, symbol, q)
}

// fetchChart はチャートAPIを呼び出し、列指向のレスポンスを
// domainのQuoteスライスに変換します。
func (m *Market) fetchChart(ctx context.Context, symbol string, q url.Values) ([]entity.Quote, error) {
	body, err := m.getChart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}

	if len(body.Chart.Result) == 0 {
		return nil, nil
	}
	res := body.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return nil, nil
	}
	bars := res.Indicators.Quote[0]

	quotes := make([]entity.Quote, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		// 列配列の範囲外は不整合レスポンスとしてスキップ
		if i >= len(bars.Close) || i >= len(bars.Open) || i >= len(bars.High) || i >= len(bars.Low) {
			continue
		}
		// 休場日はnull（デコード後ゼロ値）で埋まるため除外
		if bars.Close[i] == 0 {
			continue
		}

		day := time.Unix(ts, 0).UTC()
		var volume int64
		if i < len(bars.Volume) {
			volume = bars.Volume[i]
		}
		quotes = append(quotes, entity.Quote{
			Ticker: symbol,
			Date:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Open:   bars.Open[i],
			High:   bars.High[i],
			Low:    bars.Low[i],
			Close:  bars.Close[i],
			Volume: volume,
		})
	}
	return quotes, nil
}

// getChart はチャートエンドポイントへのリクエストを実行し、レスポンスをデコードします。
func (m *Market) getChart(ctx context.Context, symbol string, q url.Values) (*dto.ChartResponse, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", m.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo FinanceはデフォルトのGo UAを拒否する
	req.Header.Set("User-Agent", userAgent)

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s: %s", body.Chart.Error.Code, body.Chart.Error.Description)
	}
	return &body, nil
}

const userAgent = "Mozilla/5.0 (compatible; stockr/1.0)"
