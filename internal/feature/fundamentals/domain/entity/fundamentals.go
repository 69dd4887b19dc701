// Package entity defines the domain models for the fundamentals feature.
package entity

import "time"

// Statement is one financial statement (income statement, balance sheet
// or cash-flow statement) for a ticker. Records carry the provider's
// native field structure untouched; the dashboard renders them as
// opaque tables and this system never normalizes them.
type Statement struct {
	Ticker  string
	Kind    string // "income", "balance" or "cashflow"
	Records []map[string]any
}

// KeyStats は銘柄の主要指標と企業プロフィールです。プロバイダが
// 公開していない指標はnilのまま保持します（表示側は "N/A" を出します）。
type KeyStats struct {
	Ticker     string
	MarketCap  *float64
	TrailingPE *float64
	ForwardPE  *float64
	Beta       *float64
	Profile    string
}

// Dividend は1回分の配当実績です。
type Dividend struct {
	Date   time.Time
	Amount float64
}

// Split は1回分の株式分割です。
type Split struct {
	Date        time.Time
	Numerator   int
	Denominator int
	Ratio       string // 表示用（例: "4:1"）
}

// RecommendationTrend はアナリスト推奨の期間別集計です。
type RecommendationTrend struct {
	Period     string // プロバイダ基準の相対期間（例: "0m", "-1m"）
	StrongBuy  int
	Buy        int
	Hold       int
	Sell       int
	StrongSell int
}
