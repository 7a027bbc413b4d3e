package reel

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// timelineStep is one tween definition in a timeline script.
type timelineStep struct {
	Name        string             `yaml:"name"`
	Target      string             `yaml:"target"`
	Duration    float64            `yaml:"duration"`
	Transition  string             `yaml:"transition,omitempty"`
	Delay       float64            `yaml:"delay,omitempty"`
	RepeatCount *int               `yaml:"repeatCount,omitempty"`
	RepeatDelay float64            `yaml:"repeatDelay,omitempty"`
	Reverse     bool               `yaml:"reverse,omitempty"`
	RoundToInt  bool               `yaml:"roundToInt,omitempty"`
	Properties  map[string]float64 `yaml:"properties"`
	Next        string             `yaml:"next,omitempty"`
}

// timelineFile is the top-level YAML structure for a timeline script.
type timelineFile struct {
	Steps []timelineStep `yaml:"steps"`
}

// Timeline is a parsed, validated set of tween definitions. Steps referenced
// by another step's "next" become chained successors; the remaining steps
// start immediately when the timeline is started on a juggler.
//
// Script format:
//
//	steps:
//	  - name: slide
//	    target: hero
//	    duration: 0.5
//	    transition: easeOut
//	    properties: {x: 100, y: 40}
//	    next: fade
//	  - name: fade
//	    target: hero
//	    duration: 0.3
//	    properties: {alpha: 0}
type Timeline struct {
	steps  []timelineStep
	byName map[string]int
	roots  []int
}

// LoadTimeline parses and validates a YAML timeline script.
func LoadTimeline(data []byte) (*Timeline, error) {
	var file timelineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse timeline: no steps")
	}

	tl := &Timeline{
		steps:  file.Steps,
		byName: make(map[string]int, len(file.Steps)),
	}
	chained := make(map[int]bool, len(file.Steps))

	for i, step := range tl.steps {
		if step.Name == "" {
			return nil, fmt.Errorf("parse timeline: step %d has no name", i)
		}
		if _, dup := tl.byName[step.Name]; dup {
			return nil, fmt.Errorf("parse timeline: duplicate step %q", step.Name)
		}
		tl.byName[step.Name] = i
	}
	for _, step := range tl.steps {
		if step.Target == "" {
			return nil, fmt.Errorf("parse timeline: step %q has no target", step.Name)
		}
		if step.Duration <= 0 {
			return nil, fmt.Errorf("parse timeline: step %q has non-positive duration", step.Name)
		}
		if step.Transition != "" {
			if _, ok := Transitions.Get(step.Transition); !ok {
				return nil, fmt.Errorf("parse timeline: step %q uses unknown transition %q", step.Name, step.Transition)
			}
		}
		if len(step.Properties) == 0 {
			return nil, fmt.Errorf("parse timeline: step %q animates no properties", step.Name)
		}
		if step.Next != "" {
			next, ok := tl.byName[step.Next]
			if !ok {
				return nil, fmt.Errorf("parse timeline: step %q chains to unknown step %q", step.Name, step.Next)
			}
			if chained[next] {
				return nil, fmt.Errorf("parse timeline: step %q is chained to more than once", step.Next)
			}
			chained[next] = true
		}
	}

	// Chain cycles would build tweens forever.
	for i := range tl.steps {
		seen := map[int]bool{i: true}
		for at := i; tl.steps[at].Next != ""; {
			at = tl.byName[tl.steps[at].Next]
			if seen[at] {
				return nil, fmt.Errorf("parse timeline: chain through step %q forms a cycle", tl.steps[at].Name)
			}
			seen[at] = true
		}
	}

	for i := range tl.steps {
		if !chained[i] {
			tl.roots = append(tl.roots, i)
		}
	}
	return tl, nil
}

// Steps returns the number of tween definitions in the timeline.
func (tl *Timeline) Steps() int { return len(tl.steps) }

// Start builds the timeline's tweens against the named targets and adds the
// root tweens (those not chained from another step) to the juggler. Returns
// the assigned ids, one per root, in script order.
func (tl *Timeline) Start(j *Juggler, targets map[string]Target) ([]uint32, error) {
	ids := make([]uint32, 0, len(tl.roots))
	for _, root := range tl.roots {
		tween, err := tl.build(root, targets)
		if err != nil {
			return nil, err
		}
		ids = append(ids, j.Add(tween))
	}
	return ids, nil
}

// build constructs the tween for one step, recursing down its chain.
func (tl *Timeline) build(index int, targets map[string]Target) (*Tween, error) {
	step := &tl.steps[index]
	target, ok := targets[step.Target]
	if !ok || target == nil {
		return nil, fmt.Errorf("timeline: no target named %q for step %q", step.Target, step.Name)
	}

	transition := step.Transition
	if transition == "" {
		transition = Linear
	}
	tween := NewTween(target, step.Duration, transition)
	tween.SetDelay(step.Delay)
	if step.RepeatCount != nil {
		tween.RepeatCount = *step.RepeatCount
	}
	tween.RepeatDelay = step.RepeatDelay
	tween.Reverse = step.Reverse
	tween.RoundToInt = step.RoundToInt
	for name, end := range step.Properties {
		if _, ok := target.Property(stripHint(name)); !ok {
			return nil, fmt.Errorf("timeline: step %q animates unknown property %q", step.Name, name)
		}
		tween.Animate(name, end)
	}
	if step.Next != "" {
		next, err := tl.build(tl.byName[step.Next], targets)
		if err != nil {
			return nil, err
		}
		tween.NextTween = next
	}
	return tween, nil
}
