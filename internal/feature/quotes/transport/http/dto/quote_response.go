// Package dto はquotesフィーチャーのHTTPレスポンスDTOを定義します。
package dto

// ObservationResponse は正規化済み観測1件のレスポンスDTOです。
type ObservationResponse struct {
	Date        string  `json:"date"`         // 営業日（YYYY-MM-DD）
	Ticker      string  `json:"ticker"`       // 銘柄コード
	Open        float64 `json:"open"`         // 始値
	High        float64 `json:"high"`         // 高値
	Low         float64 `json:"low"`          // 安値
	Close       float64 `json:"close"`        // 終値
	Volume      int64   `json:"volume"`       // 出来高
	DailyReturn float64 `json:"daily_return"` // 日次リターン（%）
}

// SummaryResponse はKPIサマリーのレスポンスDTOです。
type SummaryResponse struct {
	Ticker       string  `json:"ticker"`
	LastClose    float64 `json:"last_close"`
	LastHigh     float64 `json:"last_high"`
	LastLow      float64 `json:"last_low"`
	LastReturn   float64 `json:"last_return"`
	MeanReturn   float64 `json:"mean_return"`
	StdDevReturn float64 `json:"stddev_return"`
	Count        int     `json:"count"`
}

// VolumePointResponse は出来高チャートの1点です。
type VolumePointResponse struct {
	Date   string `json:"date"`
	Volume int64  `json:"volume"`
}

// VolumeSeriesResponse は出来高チャート系列のレスポンスDTOです。
// granularityは"daily"または"monthly"です。
type VolumeSeriesResponse struct {
	Granularity string                `json:"granularity"`
	Points      []VolumePointResponse `json:"points"`
}

// StoredQuoteResponse はローカルストアの日足1件のレスポンスDTOです。
type StoredQuoteResponse struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
