package reel

import "fmt"

// Juggler owns a collection of animatables and advances them all once per
// external tick. Entities are registered under unique, monotonically
// increasing non-zero ids; an id of 0 always means "not found" or "failed".
//
// The juggler is re-entrancy safe: callbacks fired during AdvanceTime may
// add or remove entities without any other entity being skipped or advanced
// twice in the same pass. Entities added during a pass are first advanced on
// the next call. Removal during a pass leaves a nil tombstone that is
// compacted away by the end of the pass.
type Juggler struct {
	// TimeScale multiplies every delta passed to AdvanceTime. 1 is normal
	// speed, 0 pauses the juggler entirely.
	TimeScale float64
	// TweenPool and CallPool supply the instances created by the Tween,
	// DelayCall, and RepeatCall convenience methods. NewJuggler wires them
	// to process-wide shared pools; swap in fresh ones for isolation.
	TweenPool *TweenPool
	CallPool  *DelayedCallPool

	entities    []Animatable
	ids         map[Animatable]uint32
	pooled      map[Animatable]struct{}
	elapsedTime float64
	lastID      uint32
	advancing   bool
	sweep       bool
}

// NewJuggler creates an empty juggler with TimeScale 1, drawing pooled
// instances from the process-wide shared pools.
func NewJuggler() *Juggler {
	return &Juggler{
		TimeScale: 1,
		TweenPool: &sharedTweenPool,
		CallPool:  &sharedDelayedCallPool,
		ids:       make(map[Animatable]uint32),
		pooled:    make(map[Animatable]struct{}),
	}
}

// ElapsedTime returns the total scaled time this juggler has advanced.
func (j *Juggler) ElapsedTime() float64 { return j.elapsedTime }

// Add registers an entity under a fresh id and returns it. Adding an entity
// that is already registered is a no-op returning 0.
func (j *Juggler) Add(entity Animatable) uint32 {
	return j.AddWithID(entity, j.nextID())
}

// AddWithID registers an entity under the given id. Returns 0 (without
// registering) if the entity is nil, already registered, or the id is 0.
func (j *Juggler) AddWithID(entity Animatable, id uint32) uint32 {
	if entity == nil || id == 0 {
		return 0
	}
	if _, exists := j.ids[entity]; exists {
		return 0
	}
	j.entities = append(j.entities, entity)
	j.ids[entity] = id
	if id > j.lastID {
		j.lastID = id
	}
	return id
}

// Remove unregisters an entity and returns its previous id, or 0 if it was
// not registered. A manually removed pooled instance is NOT recycled; only
// completion returns it to its pool. The pool-return on completion survives
// removal, so a re-added instance still recycles when it completes.
func (j *Juggler) Remove(entity Animatable) uint32 {
	if entity == nil {
		return 0
	}
	id, ok := j.ids[entity]
	if !ok {
		return 0
	}
	j.unregister(entity)
	return id
}

// RemoveByID unregisters the entity with the given id and returns the id,
// or 0 if no entity carries it.
func (j *Juggler) RemoveByID(id uint32) uint32 {
	if id == 0 {
		return 0
	}
	for entity, entityID := range j.ids {
		if entityID == id {
			j.unregister(entity)
			return id
		}
	}
	return 0
}

// RemoveTweens removes every tween animating the given target. The entries
// are tombstoned directly, bypassing completion handling, so no callbacks
// fire and no pooled instance is recycled.
func (j *Juggler) RemoveTweens(target Target) {
	if target == nil {
		return
	}
	// Tombstone during the scan; splicing mid-iteration would shift
	// entries under the loop.
	for i, entity := range j.entities {
		if t, ok := entity.(*Tween); ok && t.target == target {
			delete(j.ids, t)
			j.entities[i] = nil
			j.sweep = true
		}
	}
	if !j.advancing && j.sweep {
		j.sweep = false
		j.compact()
	}
}

// RemoveDelayedCalls removes every delayed call configured with the given
// callback, with the same direct-tombstoning semantics as RemoveTweens.
func (j *Juggler) RemoveDelayedCalls(call Callback) {
	if call == nil {
		return
	}
	for i, entity := range j.entities {
		if d, ok := entity.(*DelayedCall); ok && d.matches(call) {
			delete(j.ids, d)
			j.entities[i] = nil
			j.sweep = true
		}
	}
	if !j.advancing && j.sweep {
		j.sweep = false
		j.compact()
	}
}

// Contains reports whether the entity is registered.
func (j *Juggler) Contains(entity Animatable) bool {
	_, ok := j.ids[entity]
	return ok
}

// ContainsTweens reports whether any registered tween animates the target.
func (j *Juggler) ContainsTweens(target Target) bool {
	if target == nil {
		return false
	}
	for _, entity := range j.entities {
		if t, ok := entity.(*Tween); ok && t.target == target {
			return true
		}
	}
	return false
}

// ContainsDelayedCalls reports whether any registered delayed call is
// configured with the given callback.
func (j *Juggler) ContainsDelayedCalls(call Callback) bool {
	if call == nil {
		return false
	}
	for _, entity := range j.entities {
		if d, ok := entity.(*DelayedCall); ok && d.matches(call) {
			return true
		}
	}
	return false
}

// Purge unregisters every entry immediately. When called from inside an
// ongoing advance pass the entries are tombstoned and the list is compacted
// at the end of that pass, so the pass cannot be corrupted. Pooled instances
// are not recycled.
func (j *Juggler) Purge() {
	for i, entity := range j.entities {
		if entity == nil {
			continue
		}
		j.entities[i] = nil
		delete(j.ids, entity)
	}
	if j.advancing {
		j.sweep = true
	} else {
		j.entities = j.entities[:0]
	}
}

// DelayCall schedules call to fire once after delay seconds, drawing the
// instance from the juggler's pool. Returns the assigned id. Panics if call
// is nil.
func (j *Juggler) DelayCall(call Callback, delay float64, args ...any) uint32 {
	if call == nil {
		panic("reel: call must not be nil")
	}
	d := j.CallPool.Get(call, delay, args...)
	j.pooled[d] = struct{}{}
	return j.Add(d)
}

// RepeatCall schedules call to fire every interval seconds, repeatCount
// times (0 = forever), drawing the instance from the juggler's pool.
// Returns the assigned id. Panics if call is nil.
func (j *Juggler) RepeatCall(call Callback, interval float64, repeatCount int, args ...any) uint32 {
	if call == nil {
		panic("reel: call must not be nil")
	}
	d := j.CallPool.Get(call, interval, args...)
	d.RepeatCount = repeatCount
	j.pooled[d] = struct{}{}
	return j.Add(d)
}

// Tween creates, configures, and registers a pooled tween over the target in
// one call. Keys naming a tween option ("delay", "transition", "repeatCount",
// "repeatDelay", "reverse", "roundToInt", the callbacks and their arg lists,
// "nextTween") configure the tween; any other key must name a property the
// target exposes (hint suffixes allowed) and becomes an Animate track.
// Returns the assigned id.
//
// A key naming both a tween option and a target property resolves to the
// tween option; name target properties defensively.
//
// Panics on keys that are neither, and on option values of the wrong type.
func (j *Juggler) Tween(target Target, duration float64, config map[string]any) uint32 {
	if target == nil {
		panic("reel: target must not be nil")
	}
	t := j.TweenPool.Get(target, duration, Linear)
	for key, value := range config {
		if applyTweenOption(t, key, value) {
			continue
		}
		if _, ok := target.Property(stripHint(key)); ok {
			t.Animate(key, toFloat64(key, value))
			continue
		}
		panic(fmt.Sprintf("reel: invalid property %q", key))
	}
	j.pooled[t] = struct{}{}
	return j.Add(t)
}

// AdvanceTime advances every live entity by dt (multiplied by TimeScale) in
// a single compacting forward pass. Completed entities are removed in place;
// a completed tween carrying a NextTween has its successor re-added under
// the same id, inheriting its list slot.
func (j *Juggler) AdvanceTime(dt float64) {
	dt *= j.TimeScale
	numEntities := len(j.entities)
	if numEntities == 0 || dt == 0 {
		return
	}
	j.elapsedTime += dt
	j.advancing = true

	// Walk the list once, shifting live entries down into earlier
	// tombstoned slots. Entities appended by callbacks during this pass
	// land beyond numEntities and are reconciled at the end, unvisited.
	currentIndex := 0
	i := 0
	for ; i < numEntities; i++ {
		entity := j.entities[i]
		if entity == nil {
			continue
		}
		if currentIndex != i {
			j.entities[currentIndex] = entity
			j.entities[i] = nil
		}

		out := entity.AdvanceTime(dt)

		id, registered := j.ids[entity]
		switch {
		case !registered:
			// A callback removed this entity during its own advance;
			// its slot is already tombstoned.
			if j.entities[currentIndex] == entity {
				j.entities[currentIndex] = nil
			}
		case out.Done:
			delete(j.ids, entity)
			j.entities[currentIndex] = nil
			if next := out.Next; next != nil {
				if _, dup := j.ids[next]; !dup {
					// Chaining: the successor keeps the caller's handle
					// and inherits the slot, but is not advanced until
					// the next pass.
					j.ids[next] = id
					j.entities[currentIndex] = next
					currentIndex++
				}
			}
			j.recycle(entity)
		default:
			currentIndex++
		}
	}

	if currentIndex != i {
		// Close the gap left by completions, pulling any entities
		// appended during the pass down into place.
		total := len(j.entities)
		for i < total {
			j.entities[currentIndex] = j.entities[i]
			currentIndex++
			i++
		}
		for k := currentIndex; k < total; k++ {
			j.entities[k] = nil
		}
		j.entities = j.entities[:currentIndex]
	}

	j.advancing = false
	if j.sweep {
		// Reentrant removal behind the cursor left holes; compact them.
		j.sweep = false
		j.compact()
	}
}

// nextID returns a fresh non-zero id. Plain counter, no atomic — the
// juggler is single-threaded.
func (j *Juggler) nextID() uint32 {
	j.lastID++
	return j.lastID
}

// unregister drops an entity from the id map and its slot from the list.
// During an advance pass the slot is tombstoned and compacted later;
// outside a pass it is spliced out immediately so the list stays dense.
// The pooled marker is left alone: only recycle consumes it.
func (j *Juggler) unregister(entity Animatable) {
	delete(j.ids, entity)
	for i, e := range j.entities {
		if e != entity {
			continue
		}
		if j.advancing {
			j.entities[i] = nil
			j.sweep = true
		} else {
			copy(j.entities[i:], j.entities[i+1:])
			j.entities[len(j.entities)-1] = nil
			j.entities = j.entities[:len(j.entities)-1]
		}
		return
	}
}

// compact removes nil tombstones in place.
func (j *Juggler) compact() {
	live := 0
	for i, entity := range j.entities {
		if entity == nil {
			continue
		}
		if live != i {
			j.entities[live] = entity
			j.entities[i] = nil
		}
		live++
	}
	j.entities = j.entities[:live]
}

// recycle returns a completed entity to its pool, but only if this juggler
// drew it from the pool itself.
func (j *Juggler) recycle(entity Animatable) {
	if _, ok := j.pooled[entity]; !ok {
		return
	}
	delete(j.pooled, entity)
	switch v := entity.(type) {
	case *Tween:
		j.TweenPool.Put(v)
	case *DelayedCall:
		j.CallPool.Put(v)
	}
}

// applyTweenOption assigns a configuration key that names a tween option.
// Returns false when the key is not an option (and is therefore a property).
func applyTweenOption(t *Tween, key string, value any) bool {
	switch key {
	case "delay":
		t.SetDelay(toFloat64(key, value))
	case "transition":
		switch v := value.(type) {
		case string:
			t.SetTransition(v)
		case TransitionFunc:
			t.SetTransitionFunc(v)
		case func(float64) float64:
			t.SetTransitionFunc(v)
		default:
			panic(fmt.Sprintf("reel: transition must be a name or function, got %T", value))
		}
	case "repeatCount":
		t.RepeatCount = toInt(key, value)
	case "repeatDelay":
		t.RepeatDelay = toFloat64(key, value)
	case "reverse":
		t.Reverse = toBool(key, value)
	case "roundToInt":
		t.RoundToInt = toBool(key, value)
	case "onStart":
		t.OnStart = toCallback(key, value)
	case "onStartArgs":
		t.OnStartArgs = toArgs(key, value)
	case "onUpdate":
		t.OnUpdate = toCallback(key, value)
	case "onUpdateArgs":
		t.OnUpdateArgs = toArgs(key, value)
	case "onRepeat":
		t.OnRepeat = toCallback(key, value)
	case "onRepeatArgs":
		t.OnRepeatArgs = toArgs(key, value)
	case "onComplete":
		t.OnComplete = toCallback(key, value)
	case "onCompleteArgs":
		t.OnCompleteArgs = toArgs(key, value)
	case "nextTween":
		next, ok := value.(*Tween)
		if !ok {
			panic(fmt.Sprintf("reel: nextTween must be a *Tween, got %T", value))
		}
		t.NextTween = next
	default:
		return false
	}
	return true
}

func toFloat64(key string, value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		panic(fmt.Sprintf("reel: %q must be a number, got %T", key, value))
	}
}

func toInt(key string, value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		panic(fmt.Sprintf("reel: %q must be an integer, got %T", key, value))
	}
}

func toBool(key string, value any) bool {
	v, ok := value.(bool)
	if !ok {
		panic(fmt.Sprintf("reel: %q must be a bool, got %T", key, value))
	}
	return v
}

func toCallback(key string, value any) Callback {
	switch v := value.(type) {
	case Callback:
		return v
	case func(...any):
		return v
	case func():
		return func(...any) { v() }
	default:
		panic(fmt.Sprintf("reel: %q must be a callback, got %T", key, value))
	}
}

func toArgs(key string, value any) []any {
	v, ok := value.([]any)
	if !ok {
		panic(fmt.Sprintf("reel: %q must be a []any, got %T", key, value))
	}
	return v
}
