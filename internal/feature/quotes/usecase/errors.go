// Package usecase は株価時系列データ操作のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrNoData is returned when the provider returned no rows for the
	// requested tickers. Callers show a warning and continue with an
	// empty view; this is not a transport failure.
	ErrNoData = errors.New("no data found for the given tickers")

	// ErrDataUnavailable is returned when communication with the market
	// data provider failed. The wrapped cause is human-readable; no
	// retries are performed.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrUnknownWindow is returned when a time window label cannot be
	// parsed.
	ErrUnknownWindow = errors.New("unknown time window")
)
