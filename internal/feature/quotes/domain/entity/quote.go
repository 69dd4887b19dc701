// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Quote represents one raw daily OHLCV (Open, High, Low, Close, Volume)
// row for a ticker, exactly as received from the market data provider.
type Quote struct {
	Ticker string    // Stock ticker symbol (e.g., "AAPL", "GOOGL")
	Date   time.Time // Trading day (UTC, midnight)
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// Observation is a normalized daily observation: a Quote annotated with
// the percentage return of the close versus the previous trading day.
// The first trading day of a ticker has no previous close, so it never
// appears as an Observation.
type Observation struct {
	Ticker      string
	Date        time.Time
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      int64
	DailyReturn float64 // 前営業日の終値に対する変化率（%）
}

// Summary は1銘柄・1期間分のKPIサマリーです。
type Summary struct {
	Ticker       string
	LastClose    float64 // 直近の終値
	LastHigh     float64 // 直近の高値
	LastLow      float64 // 直近の安値
	LastReturn   float64 // 直近の日次リターン（%）
	MeanReturn   float64 // 日次リターンの平均（%）
	StdDevReturn float64 // 日次リターンの標本標準偏差（%）
	Count        int     // 集計対象の観測数
}

// VolumePoint は出来高チャートの1点です。Granularityに応じて
// Dateは営業日または月初を指します。
type VolumePoint struct {
	Date   time.Time
	Volume int64
}

// VolumeSeries はチャート描画用に導出された出来高の系列です。
// 観測期間が長い場合は月次に集約されます。
type VolumeSeries struct {
	Granularity string // "daily" または "monthly"
	Points      []VolumePoint
}
