package reel

import (
	"math"

	"github.com/tanema/gween/ease"
)

// TransitionFunc maps a time ratio in [0, 1] to a progress value. The result
// is not required to stay within [0, 1]; overshoot curves (back, elastic)
// exceed it on purpose.
type TransitionFunc func(ratio float64) float64

// Names of the built-in transitions.
const (
	Linear           = "linear"
	EaseIn           = "easeIn"
	EaseOut          = "easeOut"
	EaseInOut        = "easeInOut"
	EaseOutIn        = "easeOutIn"
	EaseInBack       = "easeInBack"
	EaseOutBack      = "easeOutBack"
	EaseInOutBack    = "easeInOutBack"
	EaseOutInBack    = "easeOutInBack"
	EaseInElastic    = "easeInElastic"
	EaseOutElastic   = "easeOutElastic"
	EaseInOutElastic = "easeInOutElastic"
	EaseOutInElastic = "easeOutInElastic"
	EaseInBounce     = "easeInBounce"
	EaseOutBounce    = "easeOutBounce"
	EaseInOutBounce  = "easeInOutBounce"
	EaseOutInBounce  = "easeOutInBounce"
)

// TransitionRegistry maps transition names to functions. Instances are
// independent, so tests can build their own; most code uses the package
// default [Transitions].
type TransitionRegistry struct {
	funcs map[string]TransitionFunc
}

// Transitions is the default registry consulted by [Tween.SetTransition]
// and the timeline loader.
var Transitions = NewTransitionRegistry()

// NewTransitionRegistry creates a registry pre-populated with the built-in
// transition set.
func NewTransitionRegistry() *TransitionRegistry {
	r := &TransitionRegistry{funcs: make(map[string]TransitionFunc, 20)}
	r.Register(Linear, linear)
	r.Register(EaseIn, easeIn)
	r.Register(EaseOut, easeOut)
	r.Register(EaseInOut, combine(easeIn, easeOut))
	r.Register(EaseOutIn, combine(easeOut, easeIn))
	r.Register(EaseInBack, easeInBack)
	r.Register(EaseOutBack, easeOutBack)
	r.Register(EaseInOutBack, combine(easeInBack, easeOutBack))
	r.Register(EaseOutInBack, combine(easeOutBack, easeInBack))
	r.Register(EaseInElastic, easeInElastic)
	r.Register(EaseOutElastic, easeOutElastic)
	r.Register(EaseInOutElastic, combine(easeInElastic, easeOutElastic))
	r.Register(EaseOutInElastic, combine(easeOutElastic, easeInElastic))
	r.Register(EaseInBounce, easeInBounce)
	r.Register(EaseOutBounce, easeOutBounce)
	r.Register(EaseInOutBounce, combine(easeInBounce, easeOutBounce))
	r.Register(EaseOutInBounce, combine(easeOutBounce, easeInBounce))
	return r
}

// Get returns the transition registered under name.
func (r *TransitionRegistry) Get(name string) (TransitionFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Register adds a transition under the given name, replacing any existing
// entry. Custom curves registered here become available to [Tween.SetTransition]
// and to timeline scripts.
func (r *TransitionRegistry) Register(name string, fn TransitionFunc) {
	if fn == nil {
		panic("reel: transition function must not be nil")
	}
	r.funcs[name] = fn
}

// FromEase adapts a gween easing function (Robert Penner signature) to a
// TransitionFunc, so curves from github.com/tanema/gween/ease can be
// registered as transitions:
//
//	reel.Transitions.Register("inQuad", reel.FromEase(ease.InQuad))
func FromEase(fn ease.TweenFunc) TransitionFunc {
	return func(ratio float64) float64 {
		return float64(fn(float32(ratio), 0, 1, 1))
	}
}

// combine builds an "InOut"-style transition: f shapes the first half,
// g the second.
func combine(f, g TransitionFunc) TransitionFunc {
	return func(ratio float64) float64 {
		if ratio < 0.5 {
			return 0.5 * f(ratio*2)
		}
		return 0.5*g((ratio-0.5)*2) + 0.5
	}
}

func linear(ratio float64) float64 {
	return ratio
}

func easeIn(ratio float64) float64 {
	return ratio * ratio * ratio
}

func easeOut(ratio float64) float64 {
	inv := ratio - 1
	return inv*inv*inv + 1
}

func easeInBack(ratio float64) float64 {
	const s = 1.70158
	return ratio * ratio * ((s+1)*ratio - s)
}

func easeOutBack(ratio float64) float64 {
	const s = 1.70158
	inv := ratio - 1
	return inv*inv*((s+1)*inv+s) + 1
}

func easeInElastic(ratio float64) float64 {
	if ratio == 0 || ratio == 1 {
		return ratio
	}
	const p = 0.3
	const s = p / 4
	inv := ratio - 1
	return -math.Pow(2, 10*inv) * math.Sin((inv-s)*(2*math.Pi)/p)
}

func easeOutElastic(ratio float64) float64 {
	if ratio == 0 || ratio == 1 {
		return ratio
	}
	const p = 0.3
	const s = p / 4
	return math.Pow(2, -10*ratio)*math.Sin((ratio-s)*(2*math.Pi)/p) + 1
}

func easeInBounce(ratio float64) float64 {
	return 1 - easeOutBounce(1-ratio)
}

func easeOutBounce(ratio float64) float64 {
	const s = 7.5625
	const p = 2.75
	switch {
	case ratio < 1/p:
		return s * ratio * ratio
	case ratio < 2/p:
		ratio -= 1.5 / p
		return s*ratio*ratio + 0.75
	case ratio < 2.5/p:
		ratio -= 2.25 / p
		return s*ratio*ratio + 0.9375
	default:
		ratio -= 2.625 / p
		return s*ratio*ratio + 0.984375
	}
}
