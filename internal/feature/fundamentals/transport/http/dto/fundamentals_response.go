// Package dto はfundamentalsフィーチャーのHTTPレスポンスDTOを定義します。
package dto

// StatementResponse は財務諸表のレスポンスDTOです。
// recordsはプロバイダのレコード構造をそのまま通します。
type StatementResponse struct {
	Ticker  string           `json:"ticker"`
	Kind    string           `json:"kind"`
	Records []map[string]any `json:"records"`
}

// KeyStatsResponse は主要指標のレスポンスDTOです。
// プロバイダに無い指標はnullで返し、表示側が "N/A" に置き換えます。
type KeyStatsResponse struct {
	Ticker     string   `json:"ticker"`
	MarketCap  *float64 `json:"market_cap"`
	TrailingPE *float64 `json:"trailing_pe"`
	ForwardPE  *float64 `json:"forward_pe"`
	Beta       *float64 `json:"beta"`
	Profile    string   `json:"profile"`
}

// DividendResponse は配当1件のレスポンスDTOです。
type DividendResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// SplitResponse は株式分割1件のレスポンスDTOです。
type SplitResponse struct {
	Date  string `json:"date"`
	Ratio string `json:"ratio"`
}

// RecommendationResponse はアナリスト推奨1件のレスポンスDTOです。
type RecommendationResponse struct {
	Period     string `json:"period"`
	StrongBuy  int    `json:"strong_buy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strong_sell"`
}
