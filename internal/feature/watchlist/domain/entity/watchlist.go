// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// Entry represents a ticker kept on the user's watchlist.
// The dashboard and the batch commands both read their default
// ticker set from here.
type Entry struct {
	Code      string
	SortKey   int
	IsActive  bool
	UpdatedAt time.Time
}
