package schem

import "math"

// PinKind classifies labels that mark connection points.
type PinKind uint8

// Pin kinds. Every kind except PinNone is invisible unless its object is
// the top-level view.
const (
	PinNone PinKind = iota
	PinLocal
	PinGlobal
	PinInfo
)

// Label is a text anchor. Text layout is external: Width and Height are
// the model-space box reported by the text collaborator, measured from
// Position before Scale and Rotation apply.
type Label struct {
	Base
	Text     string
	Position Point
	Width    int
	Height   int
	Rotation float64
	Scale    float64
	Pin      PinKind
}

// NewLabel creates a label with unit scale.
func NewLabel(text string, pos Point, width, height int) *Label {
	return &Label{Text: text, Position: pos, Width: width, Height: height, Scale: 1}
}

// Kind implements Element.
func (l *Label) Kind() Kind { return KindLabel }

// IsPin reports whether the label is an invisible pin.
func (l *Label) IsPin() bool { return l.Pin != PinNone }

// Calc implements Element. Labels have no derived geometry.
func (l *Label) Calc() {}

// Quad returns the label box corners in model space.
func (l *Label) Quad() [4]Point {
	scale := l.Scale
	if scale == 0 {
		scale = 1
	}
	m := Local(l.Position, scale, l.Rotation)
	return [4]Point{
		m.TransformPoint(Point{}),
		m.TransformPoint(Point{X: l.Width}),
		m.TransformPoint(Point{X: l.Width, Y: l.Height}),
		m.TransformPoint(Point{Y: l.Height}),
	}
}

// Extents implements Element.
func (l *Label) Extents(b *Bounds) {
	for _, p := range l.Quad() {
		b.Add(p)
	}
}

// Distance returns zero inside the label box and the distance to its
// outline elsewhere.
func (l *Label) Distance(p Point) float64 {
	return quadDistance(l.Quad(), p)
}

// Reverse implements Element. Labels have no point order.
func (l *Label) Reverse() {}

// Equal implements Element.
func (l *Label) Equal(other Element) bool {
	o, ok := other.(*Label)
	return ok && l.Text == o.Text && l.Position == o.Position &&
		l.Width == o.Width && l.Height == o.Height &&
		l.Rotation == o.Rotation && l.Scale == o.Scale && l.Pin == o.Pin
}

// Clone implements Element.
func (l *Label) Clone() Element {
	c := *l
	c.Base = l.cloneBase()
	return &c
}

// quadDistance returns zero for points inside quad and the distance to the
// nearest edge otherwise.
func quadDistance(q [4]Point, p Point) float64 {
	if TestInsideness(p, q) {
		return 0
	}
	pts := []FloatPoint{q[0].Float(), q[1].Float(), q[2].Float(), q[3].Float()}
	return math.Sqrt(polylineSqDistance(pts, p.Float(), true))
}
