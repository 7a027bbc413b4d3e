package reel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const easeTolerance = 1e-9

func TestBuiltinTransitionsRegistered(t *testing.T) {
	names := []string{
		Linear, EaseIn, EaseOut, EaseInOut, EaseOutIn,
		EaseInBack, EaseOutBack, EaseInOutBack, EaseOutInBack,
		EaseInElastic, EaseOutElastic, EaseInOutElastic, EaseOutInElastic,
		EaseInBounce, EaseOutBounce, EaseInOutBounce, EaseOutInBounce,
	}
	for _, name := range names {
		if _, ok := Transitions.Get(name); !ok {
			t.Errorf("built-in transition %q not registered", name)
		}
	}
	if _, ok := Transitions.Get("nope"); ok {
		t.Error("Get(\"nope\") should not succeed")
	}
}

func TestTransitionExactValues(t *testing.T) {
	tests := []struct {
		name   string
		ratio  float64
		expect float64
	}{
		{Linear, 0.25, 0.25},
		{Linear, 1, 1},
		{EaseIn, 0.5, 0.125},
		{EaseIn, 1, 1},
		{EaseOut, 0.5, 0.875},
		{EaseOut, 0, 0},
		{EaseInOut, 0.25, 0.0625}, // 0.5 * easeIn(0.5)
		{EaseInOut, 0.75, 0.9375}, // 0.5 * easeOut(0.5) + 0.5
		{EaseOutIn, 0.25, 0.4375}, // 0.5 * easeOut(0.5)
		{EaseInBack, 1, 1},
		{EaseOutBack, 0, 0},
		{EaseOutBounce, 0.5, 0.765625},
		{EaseOutBounce, 1, 1},
		{EaseInBounce, 0.5, 0.234375}, // 1 - easeOutBounce(0.5)
		{EaseInElastic, 0, 0},
		{EaseInElastic, 1, 1},
		{EaseOutElastic, 0, 0},
		{EaseOutElastic, 1, 1},
	}
	for _, tt := range tests {
		fn, ok := Transitions.Get(tt.name)
		if !ok {
			t.Fatalf("transition %q not registered", tt.name)
		}
		got := fn(tt.ratio)
		if math.Abs(got-tt.expect) > easeTolerance {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.ratio, got, tt.expect)
		}
	}
}

func TestBackOvershoots(t *testing.T) {
	fn, _ := Transitions.Get(EaseInBack)
	if fn(0.5) >= 0 {
		t.Errorf("easeInBack(0.5) = %v, want negative overshoot", fn(0.5))
	}
	out, _ := Transitions.Get(EaseOutBack)
	if out(0.5) <= 1 {
		t.Errorf("easeOutBack(0.5) = %v, want overshoot beyond 1", out(0.5))
	}
}

func TestEaseInBackConstant(t *testing.T) {
	// s = 1.70158: easeInBack(0.5) = 0.25*((s+1)*0.5 - s) = 0.25*(0.5 - 0.5*s)
	fn, _ := Transitions.Get(EaseInBack)
	want := 0.25 * ((1.70158+1)*0.5 - 1.70158)
	if math.Abs(fn(0.5)-want) > easeTolerance {
		t.Errorf("easeInBack(0.5) = %v, want %v", fn(0.5), want)
	}
}

func TestRegisterCustomTransition(t *testing.T) {
	reg := NewTransitionRegistry()
	reg.Register("square", func(ratio float64) float64 { return ratio * ratio })
	fn, ok := reg.Get("square")
	if !ok {
		t.Fatal("custom transition not found after Register")
	}
	if got := fn(0.5); got != 0.25 {
		t.Errorf("square(0.5) = %v, want 0.25", got)
	}

	// Overwriting is allowed.
	reg.Register("square", func(ratio float64) float64 { return 0 })
	fn, _ = reg.Get("square")
	if got := fn(0.5); got != 0 {
		t.Errorf("overwritten square(0.5) = %v, want 0", got)
	}
}

func TestRegisterNilTransitionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil transition function")
		}
	}()
	NewTransitionRegistry().Register("bad", nil)
}

func TestFromEaseAdaptsGweenCurves(t *testing.T) {
	fn := FromEase(ease.Linear)
	if math.Abs(fn(0.5)-0.5) > 1e-6 {
		t.Errorf("adapted ease.Linear(0.5) = %v, want 0.5", fn(0.5))
	}

	// A registered gween curve behaves like any other transition.
	reg := NewTransitionRegistry()
	reg.Register("inQuad", FromEase(ease.InQuad))
	quad, _ := reg.Get("inQuad")
	if math.Abs(quad(0.5)-0.25) > 1e-6 {
		t.Errorf("adapted ease.InQuad(0.5) = %v, want 0.25", quad(0.5))
	}
}

func TestCombinedTransitionsMeetAtMidpoint(t *testing.T) {
	for _, name := range []string{EaseInOut, EaseOutIn, EaseInOutBack, EaseInOutBounce, EaseInOutElastic} {
		fn, _ := Transitions.Get(name)
		if math.Abs(fn(0.5)-0.5) > easeTolerance {
			t.Errorf("%s(0.5) = %v, want 0.5", name, fn(0.5))
		}
	}
}
