package models

import "time"

// DivergenceSample is one lockstep readout of both EMA engines for the
// same observation. Delta is Fast - Windowed; it is exactly zero on the
// first available readout and in general nonzero afterwards.
type DivergenceSample struct {
	InstID   string
	Seq      int64 // observations fed so far
	Close    float64
	Fast     float64
	Windowed float64
	Delta    float64
	At       time.Time
}
