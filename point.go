package schem

import "math"

// Coordinate limits. Model and device coordinates must fit a signed
// 16-bit range.
const (
	CoordMin = math.MinInt16
	CoordMax = math.MaxInt16
)

// Point represents an integer position in model or device space.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Float converts the point to floating point.
func (p Point) Float() FloatPoint {
	return FloatPoint{X: float64(p.X), Y: float64(p.Y)}
}

// InRange reports whether both coordinates fit the 16-bit coordinate range.
func (p Point) InRange() bool {
	return p.X >= CoordMin && p.X <= CoordMax && p.Y >= CoordMin && p.Y <= CoordMax
}

// CheckBounds returns ErrCoordOverflow if any point lies outside the
// 16-bit coordinate range.
func CheckBounds(pts ...Point) error {
	for _, p := range pts {
		if !p.InRange() {
			return ErrCoordOverflow
		}
	}
	return nil
}

// FloatPoint represents a sub-pixel position. Arcs and splines are sampled
// into FloatPoints.
type FloatPoint struct {
	X, Y float64
}

// FPt is a convenience function to create a FloatPoint.
func FPt(x, y float64) FloatPoint {
	return FloatPoint{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p FloatPoint) Add(q FloatPoint) FloatPoint {
	return FloatPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p FloatPoint) Sub(q FloatPoint) FloatPoint {
	return FloatPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p FloatPoint) Mul(s float64) FloatPoint {
	return FloatPoint{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p FloatPoint) Dot(q FloatPoint) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p FloatPoint) Cross(q FloatPoint) float64 {
	return p.X*q.Y - p.Y*q.X
}

// LengthSquared returns the squared length of the vector.
func (p FloatPoint) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Round converts to integer coordinates, rounding half away from zero.
func (p FloatPoint) Round() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}
