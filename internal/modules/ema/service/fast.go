package service

// Fast keeps the running EMA as a single scalar: one Step per update,
// O(1) state. The price of that is that observations which left the
// nominal window keep an exponentially decaying but never-zero weight
// in the result forever. That leak is intentional and is exactly what
// Windowed exists to contrast against — do not "fix" it.
type Fast struct {
	p     Params
	last  float64
	count int
}

func NewFast(p Params) *Fast {
	return &Fast{p: p}
}

func (f *Fast) Update(v float64) {
	if f.count == 0 {
		// first observation seeds the average raw, no smoothing
		f.last = v
	} else {
		f.last = f.p.Step(f.last, v)
	}
	f.count++
}

func (f *Fast) Result() (float64, bool) {
	if f.count < f.p.window {
		return 0, false
	}
	return f.last, true
}
