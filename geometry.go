package schem

import "math"

// Scale-independent numeric helpers shared by the element, selection and
// editing code.

// SqDistance returns the squared distance between two points.
func SqDistance(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the distance between two points.
func Distance(a, b Point) float64 {
	return math.Sqrt(float64(SqDistance(a, b)))
}

// SegmentSqDistance returns the squared distance from p to the segment ab.
// The projection of p is clamped to the segment ends.
func SegmentSqDistance(a, b, p FloatPoint) float64 {
	seg := b.Sub(a)
	rel := p.Sub(a)
	l2 := seg.LengthSquared()
	if l2 == 0 {
		return rel.LengthSquared()
	}
	t := rel.Dot(seg) / l2
	switch {
	case t <= 0:
		return rel.LengthSquared()
	case t >= 1:
		return p.Sub(b).LengthSquared()
	}
	return p.Sub(a.Add(seg.Mul(t))).LengthSquared()
}

// SegmentDistance returns the distance from p to the segment ab.
func SegmentDistance(a, b, p Point) float64 {
	return math.Sqrt(SegmentSqDistance(a.Float(), b.Float(), p.Float()))
}

// polylineSqDistance returns the smallest squared distance from p to the
// polyline pts. A single point is treated as a zero-length segment.
func polylineSqDistance(pts []FloatPoint, p FloatPoint, closed bool) float64 {
	if len(pts) == 0 {
		return math.Inf(1)
	}
	if len(pts) == 1 {
		return p.Sub(pts[0]).LengthSquared()
	}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		best = math.Min(best, SegmentSqDistance(pts[i-1], pts[i], p))
	}
	if closed && len(pts) > 2 {
		best = math.Min(best, SegmentSqDistance(pts[len(pts)-1], pts[0], p))
	}
	return best
}

// BezierCoefficients converts four cubic Bezier control points into the
// polynomial form
//
//	x(t) = ax·t³ + bx·t² + cx·t + x0
//
// and likewise for y.
func BezierCoefficients(ctrl [4]Point) (ax, bx, cx, ay, by, cy float64) {
	p0, p1, p2, p3 := ctrl[0].Float(), ctrl[1].Float(), ctrl[2].Float(), ctrl[3].Float()
	cx = 3 * (p1.X - p0.X)
	bx = 3*(p2.X-p1.X) - cx
	ax = p3.X - p0.X - cx - bx
	cy = 3 * (p1.Y - p0.Y)
	by = 3*(p2.Y-p1.Y) - cy
	ay = p3.Y - p0.Y - cy - by
	return ax, bx, cx, ay, by, cy
}

// SplinePosition evaluates the Bezier curve at parameter t.
func SplinePosition(ctrl [4]Point, t float64) FloatPoint {
	ax, bx, cx, ay, by, cy := BezierCoefficients(ctrl)
	t2 := t * t
	t3 := t2 * t
	return FloatPoint{
		X: ax*t3 + bx*t2 + cx*t + float64(ctrl[0].X),
		Y: ay*t3 + by*t2 + cy*t + float64(ctrl[0].Y),
	}
}

// SplineTangent returns the direction of the curve at t in degrees. The
// derivative components are passed to atan2 as (dx, dy), which measures
// the angle from the +y axis the way screen-space label rotation expects.
func SplineTangent(ctrl [4]Point, t float64) float64 {
	ax, bx, cx, ay, by, cy := BezierCoefficients(ctrl)
	dx := 3*ax*t*t + 2*bx*t + cx
	dy := 3*ay*t*t + 2*by*t + cy
	return math.Atan2(dx, dy) / degToRad
}

// SnapValue rounds v to the nearest multiple of grid. Ties round away from
// zero. A non-positive grid leaves v rounded to an integer.
func SnapValue(v, grid float64) int {
	if grid <= 0 {
		return int(math.Round(v))
	}
	return int(math.Round(math.Round(v/grid) * grid))
}
