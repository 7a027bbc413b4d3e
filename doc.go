// Package reel is a frame-driven animation scheduler for numeric-property
// animation.
//
// Reel advances time-based animatables — interpolating tweens and
// delayed/repeated callbacks — once per external tick and coordinates their
// completion, chaining, and safe removal. There is no internal clock and no
// goroutine: progress is entirely a function of the deltas you pass in.
//
// # Quick start
//
// Create a [Juggler], schedule work on it, and advance it once per frame:
//
//	juggler := reel.NewJuggler()
//	box := reel.NewBox()
//
//	juggler.Tween(box, 1.0, map[string]any{
//		"x":          100.0,
//		"transition": "easeOut",
//	})
//	juggler.DelayCall(func(...any) { fmt.Println("done") }, 2.0)
//
//	// each frame:
//	juggler.AdvanceTime(deltaSeconds)
//
// With [Ebitengine], [Run] sets up the window and loop for you:
//
//	reel.Run(juggler, reel.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// # Targets
//
// A [Tween] animates any [Target] — an object exposing named numeric (or
// packed-color) values. [Box] covers the usual 2D transform properties and
// [Values] animates free-form keys; implement the two-method interface to
// animate your own types.
//
// # Transitions
//
// Easing curves are looked up by name in [Transitions]: "linear", the cubic
// "easeIn"/"easeOut" family, and the "back", "elastic", and "bounce"
// families in In/Out/InOut/OutIn variants. Register custom curves at
// runtime, or adapt [gween] easing functions with [FromEase].
//
// # Key features
//
// Tweens support start delays, repeat counts with repeat gaps, yoyo-style
// reverse playback, shortest-path angle interpolation ("rotation#deg"),
// channelwise color interpolation, integer rounding, per-event callbacks,
// and chaining via NextTween. Jugglers pool the instances they create, so
// steady-state animation does not allocate. YAML timeline scripts
// ([LoadTimeline]) declare whole tween sequences as data.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package reel
