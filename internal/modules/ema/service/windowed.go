package service

// Windowed recomputes the EMA from the current window contents on every
// update: O(window) per update, but the result depends only on the
// observations presently inside the window. This matches the literal
// reading of "moving average over the last N observations" and serves
// as the ground truth the Fast variant is compared against.
type Windowed struct {
	p      Params
	window []float64 // oldest first, newest last, len <= p.window
	result float64
	ready  bool
}

func NewWindowed(p Params) *Windowed {
	return &Windowed{
		p:      p,
		window: make([]float64, 0, p.window),
	}
}

func (w *Windowed) Update(v float64) {
	if len(w.window) == w.p.window {
		w.window = w.window[1:]
	}
	w.window = append(w.window, v)

	if len(w.window) < w.p.window {
		return
	}

	// same seeding rule as Fast: the oldest value in the window goes in
	// raw, everything after it is smoothed on top
	r := w.window[0]
	for _, x := range w.window[1:] {
		r = w.p.Step(r, x)
	}
	w.result = r
	w.ready = true
}

func (w *Windowed) Result() (float64, bool) {
	if !w.ready {
		return 0, false
	}
	return w.result, true
}
