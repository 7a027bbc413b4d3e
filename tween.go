package reel

import (
	"fmt"
	"math"
	"strings"
)

// hintMarker separates a property name from its interpolation hint,
// e.g. "rotation#deg".
const hintMarker = "#"

// updateKind selects how a property track is interpolated.
type updateKind uint8

const (
	updateStandard updateKind = iota // plain lerp, optionally rounded
	updateRGB                        // packed 0xAARRGGBB, channelwise lerp
	updateRad                        // shortest angular path, half turn = pi
	updateDeg                        // shortest angular path, half turn = 180
)

// propertyTrack is one animated property. The start value is captured lazily
// from the target on the first advance; until then it is NaN.
type propertyTrack struct {
	name  string
	start float64
	end   float64
	kind  updateKind
}

// Tween animates named numeric properties on a Target over a duration,
// shaped by a transition curve. Create one with [NewTween] or draw one from
// a [TweenPool], configure it with [Tween.Animate] and the option fields,
// then either add it to a [Juggler] or call [Tween.AdvanceTime] yourself
// each frame.
//
// A Tween references its target while active but never owns it.
type Tween struct {
	// RepeatCount is the number of cycles to play: 1 (the default) runs
	// once, N runs N times, 0 repeats forever.
	RepeatCount int
	// RepeatDelay is the pause in seconds between repeat cycles.
	RepeatDelay float64
	// Reverse plays every other cycle backwards, so repeating tweens
	// swing back and forth instead of jumping to the start.
	Reverse bool
	// RoundToInt rounds interpolated values to the nearest integer
	// (standard and angle tracks only).
	RoundToInt bool
	// NextTween is started by the Juggler under this tween's id once this
	// tween completes.
	NextTween *Tween

	OnStart      Callback
	OnStartArgs  []any
	OnUpdate     Callback
	OnUpdateArgs []any
	OnRepeat     Callback
	OnRepeatArgs []any
	// OnComplete fires exactly once, when the final cycle ends. By that
	// point the tween already reports IsComplete, so the handler may Reset
	// it to run again in place.
	OnComplete     Callback
	OnCompleteArgs []any

	target         Target
	transitionName string
	transitionFunc TransitionFunc
	totalTime      float64
	currentTime    float64
	delay          float64
	progress       float64
	currentCycle   int
	props          []propertyTrack
}

// NewTween creates a tween over target lasting duration seconds, using the
// named transition from the default registry. Panics if the transition is
// unknown. The duration is clamped to a small epsilon so the progress ratio
// is always well defined.
func NewTween(target Target, duration float64, transition string) *Tween {
	t := &Tween{}
	return t.Reset(target, duration, transition)
}

// Reset re-initializes the tween as if freshly constructed, clearing all
// property tracks, callbacks, and options. Pooled tweens are revived through
// this path so no allocation is needed.
func (t *Tween) Reset(target Target, duration float64, transition string) *Tween {
	t.target = target
	t.totalTime = math.Max(minDuration, duration)
	t.currentTime = 0
	t.delay = 0
	t.progress = 0
	t.currentCycle = -1
	t.RepeatCount = 1
	t.RepeatDelay = 0
	t.Reverse = false
	t.RoundToInt = false
	t.NextTween = nil
	t.OnStart, t.OnUpdate, t.OnRepeat, t.OnComplete = nil, nil, nil, nil
	t.OnStartArgs, t.OnUpdateArgs, t.OnRepeatArgs, t.OnCompleteArgs = nil, nil, nil, nil
	t.props = t.props[:0]
	t.SetTransition(transition)
	return t
}

// Animate adds a property track moving the named property from its value at
// first advance to endValue. The name may carry an interpolation hint:
// "#rad" or "#deg" selects shortest-path angle interpolation, and any name
// containing "color" (in any case) is interpolated channelwise as a packed
// 0xAARRGGBB value. An unknown hint logs a warning and falls back to the
// standard lerp. No-op if the tween has no target.
//
// The start value is captured lazily, so a tween can be configured before
// the target's value is authoritative and retargeted up to its first advance.
func (t *Tween) Animate(property string, endValue float64) {
	if t.target == nil {
		return
	}
	name, kind := parseProperty(property)
	t.props = append(t.props, propertyTrack{
		name:  name,
		start: math.NaN(),
		end:   endValue,
		kind:  kind,
	})
}

// MoveTo animates the "x" and "y" properties to the given coordinates.
func (t *Tween) MoveTo(x, y float64) {
	t.Animate("x", x)
	t.Animate("y", y)
}

// ScaleTo animates "scaleX" and "scaleY" to the given factor.
func (t *Tween) ScaleTo(factor float64) {
	t.Animate("scaleX", factor)
	t.Animate("scaleY", factor)
}

// FadeTo animates the "alpha" property to the given value.
func (t *Tween) FadeTo(alpha float64) {
	t.Animate("alpha", alpha)
}

// RotateTo animates the "rotation" property to the given angle along the
// shortest path. The unit is "rad" or "deg"; an empty unit means radians.
func (t *Tween) RotateTo(angle float64, unit string) {
	if unit == "" {
		unit = "rad"
	}
	t.Animate("rotation"+hintMarker+unit, angle)
}

// AdvanceTime runs the tween's state machine for dt seconds and returns
// whether it completed. A dt beyond the current cycle's remaining time is
// carried over recursively, so one large delta can drive several repeat
// cycles (or a completion) in a single call.
//
// OnComplete runs after the tween is already marked complete; a handler
// that calls Reset keeps it running (its Juggler sees it as not done and
// leaves it registered). A Reset during OnComplete also cancels any pending
// carry-over, since the restarted tween should not be fast-forwarded. A
// handler that instead writes a non-zero current time leaves the carry-over
// in effect; that edge is inherited behavior and intentionally unspecified.
func (t *Tween) AdvanceTime(dt float64) Outcome {
	if dt == 0 || (t.RepeatCount == 1 && t.currentTime == t.totalTime) {
		return t.outcome()
	}

	previousTime := t.currentTime
	restTime := t.totalTime - t.currentTime
	carryOver := 0.0
	if dt > restTime {
		carryOver = dt - restTime
	}

	t.currentTime += dt
	if t.currentTime < 0 {
		return Outcome{} // the delay is not over yet
	}
	if t.currentTime > t.totalTime {
		t.currentTime = t.totalTime
	}

	if t.currentCycle < 0 && previousTime <= 0 && t.currentTime >= 0 {
		t.currentCycle++
		if t.OnStart != nil {
			t.OnStart(t.OnStartArgs...)
		}
	}

	ratio := t.currentTime / t.totalTime
	if t.Reverse && t.currentCycle%2 == 1 {
		ratio = 1 - ratio
	}
	t.progress = t.transitionFunc(ratio)

	for i := range t.props {
		p := &t.props[i]
		if math.IsNaN(p.start) {
			p.start = t.readTarget(p.name)
		}
		t.updateTrack(p)
	}

	if t.OnUpdate != nil {
		t.OnUpdate(t.OnUpdateArgs...)
	}

	if previousTime < t.totalTime && t.currentTime >= t.totalTime {
		if t.RepeatCount == 0 || t.RepeatCount > 1 {
			t.currentTime = -t.RepeatDelay
			t.currentCycle++
			if t.RepeatCount > 1 {
				t.RepeatCount--
			}
			if t.OnRepeat != nil {
				t.OnRepeat(t.OnRepeatArgs...)
			}
		} else {
			onComplete := t.OnComplete
			onCompleteArgs := t.OnCompleteArgs
			if onComplete != nil {
				onComplete(onCompleteArgs...)
			}
			if t.currentTime == 0 {
				carryOver = 0 // the handler restarted the tween
			}
		}
	}

	if carryOver > 0 {
		return t.AdvanceTime(carryOver)
	}
	return t.outcome()
}

func (t *Tween) outcome() Outcome {
	if t.IsComplete() {
		return Outcome{Done: true, Next: t.NextTween}
	}
	return Outcome{}
}

// readTarget captures the current value of a property from the target.
func (t *Tween) readTarget(name string) float64 {
	value, ok := t.target.Property(name)
	if !ok {
		panic(fmt.Sprintf("reel: target has no property %q", name))
	}
	return value
}

// updateTrack interpolates one property track at the current progress and
// writes the result to the target.
func (t *Tween) updateTrack(p *propertyTrack) {
	switch p.kind {
	case updateRGB:
		t.updateRGB(p)
	case updateRad:
		t.updateAngle(p, math.Pi)
	case updateDeg:
		t.updateAngle(p, 180)
	default:
		value := p.start + t.progress*(p.end-p.start)
		if t.RoundToInt {
			value = math.Round(value)
		}
		t.target.SetProperty(p.name, value)
	}
}

// updateRGB interpolates a packed 0xAARRGGBB color channel by channel.
func (t *Tween) updateRGB(p *propertyTrack) {
	start := uint32(p.start)
	end := uint32(p.end)
	channel := func(shift uint) uint32 {
		s := float64(start >> shift & 0xff)
		e := float64(end >> shift & 0xff)
		v := s + t.progress*(e-s)
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		return uint32(v)
	}
	combined := channel(24)<<24 | channel(16)<<16 | channel(8)<<8 | channel(0)
	t.target.SetProperty(p.name, float64(combined))
}

// updateAngle interpolates toward the end angle along the shortest path:
// the end value is shifted by full turns until it is within half a turn of
// the start value.
func (t *Tween) updateAngle(p *propertyTrack, halfTurn float64) {
	end := p.end
	for math.Abs(end-p.start) > halfTurn {
		if p.start < end {
			end -= 2 * halfTurn
		} else {
			end += 2 * halfTurn
		}
	}
	value := p.start + t.progress*(end-p.start)
	if t.RoundToInt {
		value = math.Round(value)
	}
	t.target.SetProperty(p.name, value)
}

// GetEndValue returns the end value configured for the named property.
// Panics if the property was never animated.
func (t *Tween) GetEndValue(property string) float64 {
	name := stripHint(property)
	for i := range t.props {
		if t.props[i].name == name {
			return t.props[i].end
		}
	}
	panic(fmt.Sprintf("reel: the property %q is not animated", property))
}

// AnimatesProperty reports whether the tween has a track for the named
// property.
func (t *Tween) AnimatesProperty(property string) bool {
	name := stripHint(property)
	for i := range t.props {
		if t.props[i].name == name {
			return true
		}
	}
	return false
}

// IsComplete reports whether the tween has played its final cycle to the end.
func (t *Tween) IsComplete() bool {
	return t.currentTime >= t.totalTime && t.RepeatCount == 1
}

// Target returns the object the tween animates.
func (t *Tween) Target() Target { return t.target }

// TotalTime returns the duration of one cycle in seconds.
func (t *Tween) TotalTime() float64 { return t.totalTime }

// CurrentTime returns the time elapsed into the current cycle. Negative
// values mean the initial delay or a repeat gap has not expired yet.
func (t *Tween) CurrentTime() float64 { return t.currentTime }

// Progress returns the transition-adjusted ratio of the last advance.
func (t *Tween) Progress() float64 { return t.progress }

// Transition returns the name of the current transition, or "custom" when a
// function was assigned directly.
func (t *Tween) Transition() string { return t.transitionName }

// TransitionFunc returns the current transition function.
func (t *Tween) TransitionFunc() TransitionFunc { return t.transitionFunc }

// SetTransition assigns the transition by name from the default registry.
// Panics if the name is unknown.
func (t *Tween) SetTransition(name string) {
	fn, ok := Transitions.Get(name)
	if !ok {
		panic(fmt.Sprintf("reel: unknown transition %q", name))
	}
	t.transitionName = name
	t.transitionFunc = fn
}

// SetTransitionFunc assigns the transition function directly and marks the
// transition name as "custom".
func (t *Tween) SetTransitionFunc(fn TransitionFunc) {
	if fn == nil {
		panic("reel: transition function must not be nil")
	}
	t.transitionName = "custom"
	t.transitionFunc = fn
}

// Delay returns the wait in seconds before the tween starts.
func (t *Tween) Delay() float64 { return t.delay }

// SetDelay changes the start delay. The current time is shifted by the
// difference, so adjusting the delay mid-wait behaves consistently.
func (t *Tween) SetDelay(delay float64) {
	t.currentTime = t.currentTime + t.delay - delay
	t.delay = delay
}

// clearExternalRefs drops every externally-owned reference so a pooled
// instance holds no dangling ownership while on the free list.
func (t *Tween) clearExternalRefs() {
	t.target = nil
	t.transitionFunc = nil
	t.NextTween = nil
	t.OnStart, t.OnUpdate, t.OnRepeat, t.OnComplete = nil, nil, nil, nil
	t.OnStartArgs, t.OnUpdateArgs, t.OnRepeatArgs, t.OnCompleteArgs = nil, nil, nil, nil
	t.props = t.props[:0]
}

// parseProperty splits a property name from its interpolation hint and
// resolves the update kind. Names containing "color" are always treated as
// packed colors, whatever their hint.
func parseProperty(property string) (string, updateKind) {
	name := property
	hint := ""
	if i := strings.Index(property, hintMarker); i >= 0 {
		name = property[:i]
		hint = property[i+1:]
	}
	if strings.Contains(strings.ToLower(property), "color") {
		return name, updateRGB
	}
	switch hint {
	case "":
		return name, updateStandard
	case "rad":
		return name, updateRad
	case "deg":
		return name, updateDeg
	default:
		warnf("ignoring unknown property hint %q", hint)
		return name, updateStandard
	}
}

// stripHint returns the property name with any hint suffix removed.
func stripHint(property string) string {
	if i := strings.Index(property, hintMarker); i >= 0 {
		return property[:i]
	}
	return property
}
