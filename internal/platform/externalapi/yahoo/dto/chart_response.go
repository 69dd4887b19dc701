// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// ChartResponse represents the JSON response from the Yahoo Finance
// v8 chart endpoint. Prices arrive as parallel columnar arrays indexed
// by the timestamp array.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"chart"`
}

// ChartResult は1銘柄分のチャートデータです。
type ChartResult struct {
	Meta struct {
		Symbol string `json:"symbol"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []ChartQuote `json:"quote"`
	} `json:"indicators"`
	Events *ChartEvents `json:"events,omitempty"`
}

// ChartQuote はOHLCVの列指向配列です。休場日はnull（ゼロ値）になります。
type ChartQuote struct {
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
}

// ChartEvents は配当・分割イベントです。キーはイベント日時のepoch秒です。
type ChartEvents struct {
	Dividends map[string]DividendEvent `json:"dividends,omitempty"`
	Splits    map[string]SplitEvent    `json:"splits,omitempty"`
}

// DividendEvent は配当1件です。
type DividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

// SplitEvent は株式分割1件です。
type SplitEvent struct {
	Date        int64  `json:"date"`
	Numerator   int    `json:"numerator"`
	Denominator int    `json:"denominator"`
	SplitRatio  string `json:"splitRatio"`
}

// APIError はYahoo Finance APIのエラーオブジェクトです。
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
