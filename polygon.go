package schem

// Polygon is an open wire or closed outline over an ordered point list.
type Polygon struct {
	Base
	Points []Point
}

// NewPolygon creates a polygon. Pass Unclosed in style for an open wire.
func NewPolygon(style Style, pts ...Point) *Polygon {
	p := &Polygon{Points: append([]Point(nil), pts...)}
	p.Style = style
	return p
}

// Kind implements Element.
func (p *Polygon) Kind() Kind { return KindPolygon }

// Closed reports whether the outline returns to its first point.
func (p *Polygon) Closed() bool { return p.Style&Unclosed == 0 }

// Calc implements Element. Polygons have no derived geometry.
func (p *Polygon) Calc() {}

// Extents implements Element.
func (p *Polygon) Extents(b *Bounds) {
	for _, pt := range p.Points {
		b.Add(pt)
	}
}

// floats returns the points as sub-pixel samples.
func (p *Polygon) floats() []FloatPoint {
	out := make([]FloatPoint, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Float()
	}
	return out
}

// Distance implements Element.
func (p *Polygon) Distance(pt Point) float64 {
	return distanceFromSq(polylineSqDistance(p.floats(), pt.Float(), p.Closed()))
}

// Reverse reverses the point order in place.
func (p *Polygon) Reverse() {
	for i, j := 0, len(p.Points)-1; i < j; i, j = i+1, j-1 {
		p.Points[i], p.Points[j] = p.Points[j], p.Points[i]
	}
}

// Equal reports whether other is a polygon with the same attributes and
// point sequence. Order matters: a reversed polygon is not equal.
func (p *Polygon) Equal(other Element) bool {
	o, ok := other.(*Polygon)
	if !ok || !p.sameAttrs(&o.Base) || len(p.Points) != len(o.Points) {
		return false
	}
	for i := range p.Points {
		if p.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}

// Clone implements Element.
func (p *Polygon) Clone() Element {
	return &Polygon{Base: p.cloneBase(), Points: append([]Point(nil), p.Points...)}
}

// Dedup removes consecutive duplicate points, including a closing point
// that repeats the first point of a closed polygon.
func (p *Polygon) Dedup() {
	p.Points = dedupPoints(p.Points)
	if p.Closed() && len(p.Points) > 2 && p.Points[0] == p.Points[len(p.Points)-1] {
		p.Points = p.Points[:len(p.Points)-1]
	}
}

func dedupPoints(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := make([]Point, 1, len(pts))
	out[0] = pts[0]
	for _, pt := range pts[1:] {
		if pt != out[len(out)-1] {
			out = append(out, pt)
		}
	}
	return out
}
