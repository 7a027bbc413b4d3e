package reel

import (
	"fmt"
	"os"
)

// Callback is a function invoked by an animatable at lifecycle points
// (tween start/update/repeat/complete, delayed call firing). The args
// are the ones configured alongside the callback.
type Callback func(args ...any)

// Animatable is anything advanced by elapsed time once per external tick.
// AdvanceTime returns what happened during the advance so the owning
// Juggler can decide removal and chaining; standalone use may ignore it.
type Animatable interface {
	AdvanceTime(dt float64) Outcome
}

// Outcome reports the result of a single AdvanceTime call.
type Outcome struct {
	// Done is true once the entity has finished and should be removed
	// from its scheduler.
	Done bool
	// Next is the successor to schedule under the removed entity's id.
	// Only ever set by a completed Tween with a NextTween.
	Next *Tween
}

// minDuration is the smallest total time an entity can have. Durations are
// clamped to it so the progress ratio never divides by zero.
const minDuration = 0.0001

// warnf prints a non-fatal warning to stderr.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[reel] warning: "+format+"\n", args...)
}
