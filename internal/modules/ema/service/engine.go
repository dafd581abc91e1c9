package service

// Engine consumes one observation at a time and reports the current
// EMA. Implementations are not safe for concurrent use: one engine, one
// caller, observations in order.
type Engine interface {
	// Update records one observation. Inputs are assumed finite; NaN
	// and ±Inf follow plain float64 arithmetic.
	Update(v float64)

	// Result returns the current EMA, or false while the engine has not
	// yet seen a full window of observations. Pure read: repeated calls
	// without an Update in between return the same value.
	Result() (float64, bool)
}
