package errors

import "errors"

var (
	// ErrInvalidTimeframe rejects timeframe values outside all/monthly/weekly.
	ErrInvalidTimeframe = errors.New("invalid timeframe")

	// ErrWatchUnavailable fires when no snapshot feed was wired.
	ErrWatchUnavailable = errors.New("leaderboard watch unavailable")
)
