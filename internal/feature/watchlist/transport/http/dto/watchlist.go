// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

// WatchlistItem represents a watchlist entry in the API response.
type WatchlistItem struct {
	Code    string `json:"code"`
	SortKey int    `json:"sort_key"`
}

// ReplaceRequest is the request body for replacing the watchlist.
// Tickers is free text: comma-separated, case-insensitive.
type ReplaceRequest struct {
	Tickers string `json:"tickers" binding:"required"`
}
