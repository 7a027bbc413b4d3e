package reel

import "testing"

func TestBoxPropertyMapping(t *testing.T) {
	b := NewBox()
	if b.ScaleX != 1 || b.ScaleY != 1 || b.Alpha != 1 || b.Color != 0xffffffff {
		t.Fatal("NewBox defaults are wrong")
	}

	b.SetProperty("x", 3)
	b.SetProperty("y", 4)
	b.SetProperty("scaleX", 2)
	b.SetProperty("scaleY", 0.5)
	b.SetProperty("rotation", 1.5)
	b.SetProperty("alpha", 0.25)
	b.SetProperty("color", float64(0xff336699))

	checks := []struct {
		name string
		want float64
	}{
		{"x", 3},
		{"y", 4},
		{"scaleX", 2},
		{"scaleY", 0.5},
		{"rotation", 1.5},
		{"alpha", 0.25},
		{"color", float64(0xff336699)},
	}
	for _, c := range checks {
		got, ok := b.Property(c.name)
		if !ok {
			t.Errorf("Property(%q) not found", c.name)
			continue
		}
		if got != c.want {
			t.Errorf("Property(%q) = %v, want %v", c.name, got, c.want)
		}
	}
	if b.Color != 0xff336699 {
		t.Errorf("Color = %#x, want 0xff336699", b.Color)
	}
}

func TestBoxUnknownProperty(t *testing.T) {
	b := NewBox()
	if _, ok := b.Property("bogus"); ok {
		t.Error("Property returned ok for an unknown name")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic writing an unknown property")
		}
	}()
	b.SetProperty("bogus", 1)
}

func TestValuesTarget(t *testing.T) {
	v := NewValues(map[string]float64{"hp": 100})

	got, ok := v.Property("hp")
	if !ok || got != 100 {
		t.Errorf("Property(hp) = %v, %v; want 100, true", got, ok)
	}
	if _, ok := v.Property("mp"); ok {
		t.Error("Property returned ok for a property that was never set")
	}

	v.SetProperty("mp", 50)
	if got := v.Get("mp"); got != 50 {
		t.Errorf("Get(mp) = %v after SetProperty, want 50", got)
	}
	if got := v.Get("missing"); got != 0 {
		t.Errorf("Get(missing) = %v, want 0", got)
	}
}

func TestValuesNilInitial(t *testing.T) {
	v := NewValues(nil)
	v.SetProperty("x", 1) // must not panic on a nil initial map
	if got := v.Get("x"); got != 1 {
		t.Errorf("Get(x) = %v, want 1", got)
	}
}
