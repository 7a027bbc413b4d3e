package reel

import (
	"math"
	"strings"
	"testing"
)

const heroTimeline = `
steps:
  - name: slide
    target: hero
    duration: 0.5
    transition: easeOut
    properties: {x: 100}
    next: fade
  - name: fade
    target: hero
    duration: 0.5
    properties: {alpha: 0}
  - name: spin
    target: prop
    duration: 1.0
    properties: {rotation: 6.28}
`

func TestLoadTimeline(t *testing.T) {
	tl, err := LoadTimeline([]byte(heroTimeline))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}
	if tl.Steps() != 3 {
		t.Errorf("Steps = %d, want 3", tl.Steps())
	}
}

func TestTimelineStartRunsChain(t *testing.T) {
	tl, err := LoadTimeline([]byte(heroTimeline))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}

	j := NewJuggler()
	hero := NewBox()
	prop := NewBox()
	ids, err := tl.Start(j, map[string]Target{"hero": hero, "prop": prop})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Two roots: slide (heads a chain) and spin. fade is chained, not a root.
	if len(ids) != 2 {
		t.Fatalf("Start returned %d ids, want 2", len(ids))
	}
	for _, id := range ids {
		if id == 0 {
			t.Fatal("Start returned a zero id")
		}
	}

	j.AdvanceTime(0.5)
	if math.Abs(hero.X-100) > 1e-9 {
		t.Errorf("hero.X = %v after the slide step, want 100", hero.X)
	}
	if hero.Alpha != 1 {
		t.Errorf("hero.Alpha = %v before the fade step, want 1", hero.Alpha)
	}

	j.AdvanceTime(0.5)
	if math.Abs(hero.Alpha) > 1e-9 {
		t.Errorf("hero.Alpha = %v after the fade step, want 0", hero.Alpha)
	}
	if math.Abs(prop.Rotation-6.28) > 1e-9 {
		t.Errorf("prop.Rotation = %v, want 6.28", prop.Rotation)
	}
}

func TestTimelineChainKeepsRootID(t *testing.T) {
	tl, err := LoadTimeline([]byte(heroTimeline))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}

	j := NewJuggler()
	hero := NewBox()
	prop := NewBox()
	ids, err := tl.Start(j, map[string]Target{"hero": hero, "prop": prop})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	j.AdvanceTime(0.5) // slide completes, fade takes over its id
	if got := j.RemoveByID(ids[0]); got != ids[0] {
		t.Errorf("RemoveByID(%d) = %d, want the chain's root id", ids[0], got)
	}
	j.AdvanceTime(0.5)
	if hero.Alpha != 1 {
		t.Errorf("hero.Alpha = %v after removing the chain, want untouched 1", hero.Alpha)
	}
}

func TestTimelineStartMissingTarget(t *testing.T) {
	tl, err := LoadTimeline([]byte(heroTimeline))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}
	_, err = tl.Start(NewJuggler(), map[string]Target{"hero": NewBox()})
	if err == nil || !strings.Contains(err.Error(), "prop") {
		t.Errorf("Start = %v, want an error naming the missing target", err)
	}
}

func TestTimelineStartUnknownProperty(t *testing.T) {
	tl, err := LoadTimeline([]byte(`
steps:
  - name: bad
    target: hero
    duration: 0.5
    properties: {bogus: 1}
`))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}
	_, err = tl.Start(NewJuggler(), map[string]Target{"hero": NewBox()})
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Errorf("Start = %v, want an error naming the unknown property", err)
	}
}

func TestLoadTimelineErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "not yaml",
			yaml: "{steps: [",
			want: "parse timeline",
		},
		{
			name: "empty",
			yaml: "steps: []",
			want: "no steps",
		},
		{
			name: "missing name",
			yaml: `
steps:
  - target: hero
    duration: 1
    properties: {x: 1}
`,
			want: "no name",
		},
		{
			name: "duplicate name",
			yaml: `
steps:
  - {name: a, target: hero, duration: 1, properties: {x: 1}}
  - {name: a, target: hero, duration: 1, properties: {x: 2}}
`,
			want: "duplicate",
		},
		{
			name: "missing target",
			yaml: `
steps:
  - {name: a, duration: 1, properties: {x: 1}}
`,
			want: "no target",
		},
		{
			name: "zero duration",
			yaml: `
steps:
  - {name: a, target: hero, duration: 0, properties: {x: 1}}
`,
			want: "duration",
		},
		{
			name: "unknown transition",
			yaml: `
steps:
  - {name: a, target: hero, duration: 1, transition: wobble, properties: {x: 1}}
`,
			want: "wobble",
		},
		{
			name: "no properties",
			yaml: `
steps:
  - {name: a, target: hero, duration: 1}
`,
			want: "no properties",
		},
		{
			name: "unknown next",
			yaml: `
steps:
  - {name: a, target: hero, duration: 1, properties: {x: 1}, next: ghost}
`,
			want: "ghost",
		},
		{
			name: "double chain",
			yaml: `
steps:
  - {name: a, target: hero, duration: 1, properties: {x: 1}, next: c}
  - {name: b, target: hero, duration: 1, properties: {x: 1}, next: c}
  - {name: c, target: hero, duration: 1, properties: {x: 1}}
`,
			want: "more than once",
		},
		{
			name: "cycle",
			yaml: `
steps:
  - {name: a, target: hero, duration: 1, properties: {x: 1}, next: b}
  - {name: b, target: hero, duration: 1, properties: {x: 1}, next: a}
`,
			want: "cycle",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadTimeline([]byte(c.yaml))
			if err == nil {
				t.Fatal("LoadTimeline succeeded, want an error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error %q does not mention %q", err, c.want)
			}
		})
	}
}
