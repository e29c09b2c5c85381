package schem

import "math"

// RSteps is the number of arc samples per full 360°.
const RSteps = 72

// Arc edit handles, addressed by cycle entry indices.
const (
	ArcRadius = iota // x radius; both radii when the arc is circular
	ArcAngle1        // start angle endpoint
	ArcAngle2        // end angle endpoint
	ArcYAxis         // y radius

	arcHandles
)

// Arc is a circular or elliptical arc. Angle1 < Angle2 is maintained by
// every mutator. A negative Radius winds the sampled points the other way;
// the rendered shape is unchanged.
type Arc struct {
	Base
	Position       Point
	Radius         int
	YAxis          int
	Angle1, Angle2 float64

	// Points holds the sampled polyline, recomputed by Calc.
	Points []FloatPoint
}

// NewArc creates an arc and samples it.
func NewArc(pos Point, radius, yaxis int, angle1, angle2 float64) *Arc {
	a := &Arc{Position: pos, Radius: radius, YAxis: yaxis, Angle1: angle1, Angle2: angle2}
	a.Calc()
	return a
}

// Kind implements Element.
func (a *Arc) Kind() Kind { return KindArc }

// at returns the point on the arc at the given angle in degrees.
func (a *Arc) at(angle float64) FloatPoint {
	sin, cos := math.Sincos(angle * degToRad)
	return FloatPoint{
		X: float64(a.Position.X) + math.Abs(float64(a.Radius))*cos,
		Y: float64(a.Position.Y) + float64(a.YAxis)*sin,
	}
}

// sampleCount returns ⌈span/360·RSteps⌉+1, the number of samples Calc
// produces.
func (a *Arc) sampleCount() int {
	span := a.Angle2 - a.Angle1
	if span <= 0 {
		return 1
	}
	return int(math.Ceil(span/360*RSteps)) + 1
}

// Calc resamples the arc. The last sample is computed from Angle2 directly
// so it never carries accumulated step error.
func (a *Arc) Calc() {
	number := a.sampleCount()
	if cap(a.Points) >= number {
		a.Points = a.Points[:number]
	} else {
		a.Points = make([]FloatPoint, number)
	}
	if number > 1 {
		step := (a.Angle2 - a.Angle1) / float64(number-1)
		for i := 0; i < number-1; i++ {
			a.Points[i] = a.at(a.Angle1 + float64(i)*step)
		}
	}
	a.Points[number-1] = a.at(a.Angle2)

	if a.Radius < 0 {
		for i, j := 0, number-1; i < j; i, j = i+1, j-1 {
			a.Points[i], a.Points[j] = a.Points[j], a.Points[i]
		}
	}
}

// Extents implements Element.
func (a *Arc) Extents(b *Bounds) {
	for _, p := range a.Points {
		b.Add(p.Round())
	}
}

// Distance implements Element.
func (a *Arc) Distance(p Point) float64 {
	return distanceFromSq(polylineSqDistance(a.Points, p.Float(), false))
}

// Reverse negates the radius. The point order changes on the next Calc.
func (a *Arc) Reverse() {
	a.Radius = -a.Radius
}

// Equal reports whether other is an arc with the same rendered shape. The
// sign of the radius is ignored.
func (a *Arc) Equal(other Element) bool {
	o, ok := other.(*Arc)
	if !ok {
		return false
	}
	return a.Position == o.Position && a.sameAttrs(&o.Base) &&
		abs(a.Radius) == abs(o.Radius) && a.YAxis == o.YAxis &&
		a.Angle1 == o.Angle1 && a.Angle2 == o.Angle2
}

// Clone implements Element.
func (a *Arc) Clone() Element {
	c := *a
	c.Base = a.cloneBase()
	c.Points = append([]FloatPoint(nil), a.Points...)
	return &c
}

// Handle returns the model position of an edit handle.
func (a *Arc) Handle(index int) Point {
	switch index {
	case ArcRadius:
		return Point{X: a.Position.X + abs(a.Radius), Y: a.Position.Y}
	case ArcYAxis:
		return Point{X: a.Position.X, Y: a.Position.Y + a.YAxis}
	case ArcAngle1:
		return a.at(a.Angle1).Round()
	case ArcAngle2:
		return a.at(a.Angle2).Round()
	}
	return a.Position
}

// moveHandle drags an edit handle to cursor. The radius handle lies on
// the x axis and changes only Radius, except on a circle dragged on both
// axes, where both radii follow. The y radius belongs to ArcYAxis.
func (a *Arc) moveHandle(index int, flags CycleFlags, cursor Point) {
	d := cursor.Sub(a.Position)
	sign := 1
	if a.Radius < 0 {
		sign = -1
	}
	switch index {
	case ArcRadius:
		if abs(a.Radius) == a.YAxis && flags&(EditX|EditY) == EditX|EditY {
			r := int(math.Round(math.Hypot(float64(d.X), float64(d.Y))))
			a.Radius, a.YAxis = sign*r, r
			break
		}
		if flags&EditX != 0 {
			a.Radius = sign * abs(d.X)
		}
	case ArcYAxis:
		a.YAxis = abs(d.Y)
	case ArcAngle1, ArcAngle2:
		rx, ry := math.Abs(float64(a.Radius)), float64(a.YAxis)
		if rx == 0 || ry == 0 {
			return
		}
		ang := math.Atan2(float64(d.Y)/ry, float64(d.X)/rx) / degToRad
		if index == ArcAngle1 {
			a.setAngle1(ang)
		} else {
			a.setAngle2(ang)
		}
	}
}

// setAngle1 moves the start angle, keeping Angle1 < Angle2 and a span of
// at most one turn.
func (a *Arc) setAngle1(ang float64) {
	a.Angle1 = ang
	for a.Angle1 >= a.Angle2 {
		a.Angle1 -= 360
	}
	for a.Angle2-a.Angle1 > 360 {
		a.Angle1 += 360
	}
	a.normalizeAngles()
}

// setAngle2 moves the end angle with the same constraints as setAngle1.
func (a *Arc) setAngle2(ang float64) {
	a.Angle2 = ang
	for a.Angle2 <= a.Angle1 {
		a.Angle2 += 360
	}
	for a.Angle2-a.Angle1 > 360 {
		a.Angle2 -= 360
	}
	a.normalizeAngles()
}

// normalizeAngles shifts both angles by whole turns into [-360, 360).
func (a *Arc) normalizeAngles() {
	for a.Angle1 < -360 {
		a.Angle1 += 360
		a.Angle2 += 360
	}
	for a.Angle1 >= 360 {
		a.Angle1 -= 360
		a.Angle2 -= 360
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
