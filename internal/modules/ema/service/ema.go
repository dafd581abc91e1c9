package service

// Reference defaults. Example configs use a smaller window to keep
// fixtures small and make the effect of evicted history visible sooner.
const (
	DefaultWindow    = 30
	DefaultSmoothing = 2.0
)

// Params carries the window size and smoothing factor shared by every
// engine variant. alpha is derived once at construction and never
// changes; both engines being compared must be built from the same
// Params value.
type Params struct {
	window    int
	smoothing float64
	alpha     float64
}

func NewParams(window int, smoothing float64) Params {
	if window < 1 {
		window = 1
	}
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}
	return Params{
		window:    window,
		smoothing: smoothing,
		alpha:     smoothing / (1 + float64(window)),
	}
}

func (p Params) Window() int    { return p.window }
func (p Params) Alpha() float64 { return p.alpha }

// Step is one exponential smoothing transition:
// prev + alpha*(v-prev). It knows nothing about windowing or warm-up;
// callers seed prev themselves.
func (p Params) Step(prev, v float64) float64 {
	return prev + p.alpha*(v-prev)
}
