package reel

import (
	"math"
	"reflect"
)

// DelayedCall invokes a callback once a duration elapses, optionally
// repeating. It shares the Tween's time-accumulation model without property
// interpolation: negative-to-positive time does not apply here, the call
// simply fires whenever currentTime crosses totalTime.
type DelayedCall struct {
	// RepeatCount is the number of times the call fires: 1 (the default)
	// fires once, N fires N times, 0 repeats forever.
	RepeatCount int

	call        Callback
	callPtr     uintptr
	args        []any
	totalTime   float64
	currentTime float64
}

// NewDelayedCall creates a delayed call firing after delay seconds.
// Panics if the callback is nil.
func NewDelayedCall(call Callback, delay float64, args ...any) *DelayedCall {
	d := &DelayedCall{}
	return d.Reset(call, delay, args...)
}

// Reset re-initializes the delayed call as if freshly constructed. Pooled
// instances are revived through this path.
func (d *DelayedCall) Reset(call Callback, delay float64, args ...any) *DelayedCall {
	if call == nil {
		panic("reel: call must not be nil")
	}
	d.call = call
	d.callPtr = reflect.ValueOf(call).Pointer()
	d.args = args
	d.totalTime = math.Max(minDuration, delay)
	d.currentTime = 0
	d.RepeatCount = 1
	return d
}

// AdvanceTime accumulates dt toward the delay and fires the callback on the
// boundary crossing. Overflow beyond the boundary is replayed recursively,
// so one large delta can drive several repeats of a repeating call.
func (d *DelayedCall) AdvanceTime(dt float64) Outcome {
	previousTime := d.currentTime
	d.currentTime += dt
	if d.currentTime > d.totalTime {
		d.currentTime = d.totalTime
	}

	if previousTime < d.totalTime && d.currentTime >= d.totalTime {
		if d.RepeatCount == 0 || d.RepeatCount > 1 {
			d.call(d.args...)
			if d.RepeatCount > 0 {
				d.RepeatCount--
			}
			d.currentTime = 0
			return d.AdvanceTime(previousTime + dt - d.totalTime)
		}
		// Final firing: the call runs with the entity already marked
		// complete, so a handler that resets it in place observes a
		// consistent state. The outcome is computed afterwards, so a
		// reset call reports not-done and stays scheduled.
		call := d.call
		args := d.args
		call(args...)
	}

	if d.IsComplete() {
		return Outcome{Done: true}
	}
	return Outcome{}
}

// Complete force-advances by the remaining time, firing the callback
// immediately.
func (d *DelayedCall) Complete() Outcome {
	restTime := d.totalTime - d.currentTime
	if restTime > 0 {
		return d.AdvanceTime(restTime)
	}
	if d.IsComplete() {
		return Outcome{Done: true}
	}
	return Outcome{}
}

// IsComplete reports whether the final firing happened.
func (d *DelayedCall) IsComplete() bool {
	return d.currentTime >= d.totalTime && d.RepeatCount == 1
}

// TotalTime returns the configured delay (or repeat interval) in seconds.
func (d *DelayedCall) TotalTime() float64 { return d.totalTime }

// CurrentTime returns the time accumulated toward the next firing.
func (d *DelayedCall) CurrentTime() float64 { return d.currentTime }

// Callback returns the configured callback.
func (d *DelayedCall) Callback() Callback { return d.call }

// Args returns the configured callback arguments. The returned slice MUST
// NOT be mutated by the caller.
func (d *DelayedCall) Args() []any { return d.args }

// matches reports whether the configured callback is the given function.
// Go functions are not comparable with ==, so identity goes through the
// functions' code pointers.
func (d *DelayedCall) matches(call Callback) bool {
	return call != nil && d.callPtr == reflect.ValueOf(call).Pointer()
}

// clearExternalRefs drops the callback and arguments so a pooled instance
// holds no dangling ownership while on the free list.
func (d *DelayedCall) clearExternalRefs() {
	d.call = nil
	d.callPtr = 0
	d.args = nil
}
