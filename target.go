package reel

// Target is the property store a Tween reads from and writes to. Any object
// exposing named numeric (or packed-color) values can be animated; there is
// no reflection involved.
//
// Property returns the current value of the named property and whether the
// target exposes it. SetProperty writes a new value; implementations should
// panic on names they do not expose, since a write to a missing property is
// a programmer error.
type Target interface {
	Property(name string) (value float64, ok bool)
	SetProperty(name string, value float64)
}

// Values is a Target backed by a string-keyed map, for animating free-form
// properties that do not belong to a struct.
type Values struct {
	props map[string]float64
}

// NewValues creates a Values target. The initial map may be nil.
func NewValues(initial map[string]float64) *Values {
	props := make(map[string]float64, len(initial))
	for name, value := range initial {
		props[name] = value
	}
	return &Values{props: props}
}

// Property returns the named value, or ok=false if it was never set.
func (v *Values) Property(name string) (float64, bool) {
	value, ok := v.props[name]
	return value, ok
}

// SetProperty stores the named value, creating the property if needed.
func (v *Values) SetProperty(name string, value float64) {
	v.props[name] = value
}

// Get returns the named value, or 0 if it was never set.
func (v *Values) Get(name string) float64 {
	return v.props[name]
}

// Box is a ready-made Target with the usual 2D transform properties. Colors
// are packed 0xAARRGGBB values; the tween's rgb update kind interpolates the
// channels independently.
//
// Property names: "x", "y", "scaleX", "scaleY", "rotation", "alpha", "color".
type Box struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	Alpha          float64
	Color          uint32
}

// NewBox creates a Box with scale and alpha set to 1 and color set to
// opaque white.
func NewBox() *Box {
	return &Box{ScaleX: 1, ScaleY: 1, Alpha: 1, Color: 0xffffffff}
}

// Property implements Target.
func (b *Box) Property(name string) (float64, bool) {
	switch name {
	case "x":
		return b.X, true
	case "y":
		return b.Y, true
	case "scaleX":
		return b.ScaleX, true
	case "scaleY":
		return b.ScaleY, true
	case "rotation":
		return b.Rotation, true
	case "alpha":
		return b.Alpha, true
	case "color":
		return float64(b.Color), true
	default:
		return 0, false
	}
}

// SetProperty implements Target. Panics for unknown names.
func (b *Box) SetProperty(name string, value float64) {
	switch name {
	case "x":
		b.X = value
	case "y":
		b.Y = value
	case "scaleX":
		b.ScaleX = value
	case "scaleY":
		b.ScaleY = value
	case "rotation":
		b.Rotation = value
	case "alpha":
		b.Alpha = value
	case "color":
		b.Color = uint32(value)
	default:
		panic("reel: box has no property " + name)
	}
}
