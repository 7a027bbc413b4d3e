package reel

// Free lists for Tween and DelayedCall instances. The animation model is
// single-threaded, so these are plain slices with no locking; callers must
// not retain an instance after returning it, nor hold two live references
// to the same pooled instance.
//
// Return-to-pool is always an explicit Put — a Juggler only recycles the
// instances it drew from its pools itself, and only when they complete.

// TweenPool is a free list of reusable Tween instances. The zero value is
// ready to use.
type TweenPool struct {
	free []*Tween
}

// Get pops a reset instance from the free list, or allocates one when the
// list is empty.
func (p *TweenPool) Get(target Target, duration float64, transition string) *Tween {
	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return t.Reset(target, duration, transition)
	}
	return NewTween(target, duration, transition)
}

// Put clears the tween's external references (target, callbacks, arguments,
// successor) and returns it to the free list.
func (p *TweenPool) Put(t *Tween) {
	if t == nil {
		return
	}
	t.clearExternalRefs()
	p.free = append(p.free, t)
}

// Len returns the number of instances currently on the free list.
func (p *TweenPool) Len() int { return len(p.free) }

// Clear drops all pooled instances. Intended for test isolation.
func (p *TweenPool) Clear() {
	for i := range p.free {
		p.free[i] = nil
	}
	p.free = p.free[:0]
}

// DelayedCallPool is a free list of reusable DelayedCall instances. The zero
// value is ready to use.
type DelayedCallPool struct {
	free []*DelayedCall
}

// Get pops a reset instance from the free list, or allocates one when the
// list is empty.
func (p *DelayedCallPool) Get(call Callback, delay float64, args ...any) *DelayedCall {
	if n := len(p.free); n > 0 {
		d := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return d.Reset(call, delay, args...)
	}
	return NewDelayedCall(call, delay, args...)
}

// Put clears the delayed call's external references (callback, arguments)
// and returns it to the free list.
func (p *DelayedCallPool) Put(d *DelayedCall) {
	if d == nil {
		return
	}
	d.clearExternalRefs()
	p.free = append(p.free, d)
}

// Len returns the number of instances currently on the free list.
func (p *DelayedCallPool) Len() int { return len(p.free) }

// Clear drops all pooled instances. Intended for test isolation.
func (p *DelayedCallPool) Clear() {
	for i := range p.free {
		p.free[i] = nil
	}
	p.free = p.free[:0]
}

// Process-wide default pools picked up by NewJuggler. Jugglers wanting
// isolation can swap their pool fields for fresh instances.
var (
	sharedTweenPool       TweenPool
	sharedDelayedCallPool DelayedCallPool
)
