package models

import "time"

// CandleTick is one closed candle from the feed, reduced to what the
// comparator consumes.
type CandleTick struct {
	InstID    string
	Timeframe string
	Close     float64
	Start     time.Time
}
