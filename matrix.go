package schem

import (
	"fmt"
	"math"
)

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-10

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Model space is y-up. Positive rotation angles, always given in degrees,
// turn clockwise.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a clockwise rotation matrix (angle in degrees).
func Rotate(degrees float64) Matrix {
	sin, cos := math.Sincos(degrees * degToRad)
	return Matrix{
		A: cos, B: sin, C: 0,
		D: -sin, E: cos, F: 0,
	}
}

// Local returns the frame that scales, rotates and then translates to pos.
// A negative scale flips the x axis only; the y axis is always scaled by
// the magnitude.
func Local(pos Point, scale, rotation float64) Matrix {
	yscale := math.Abs(scale)
	sin, cos := math.Sincos(rotation * degToRad)
	return Matrix{
		A: scale * cos, B: yscale * sin, C: float64(pos.X),
		D: -scale * sin, E: yscale * cos, F: float64(pos.Y),
	}
}

// Multiply multiplies two matrices (m * other). The result applies other
// first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PreMultiply prepends a child frame. Points given in the child frame are
// mapped through the child placement first and then through m.
func (m Matrix) PreMultiply(pos Point, scale, rotation float64) Matrix {
	return m.Multiply(Local(pos, scale, rotation))
}

// PostMultiply appends a frame, placing a finished shape at a target frame.
func (m Matrix) PostMultiply(pos Point, scale, rotation float64) Matrix {
	return Local(pos, scale, rotation).Multiply(m)
}

// Determinant returns a*e - b*d.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix, or ErrSingularMatrix if the
// determinant is nearly zero.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon {
		return Matrix{}, fmt.Errorf("invert %+v: %w", m, ErrSingularMatrix)
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// TransformFloat applies the transformation to a sub-pixel point.
func (m Matrix) TransformFloat(p FloatPoint) FloatPoint {
	return FloatPoint{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformPoint applies the transformation to a point, rounding half away
// from zero.
func (m Matrix) TransformPoint(p Point) Point {
	return m.TransformFloat(p.Float()).Round()
}

// TransformPoints applies the transformation to every point of src.
func (m Matrix) TransformPoints(src []Point) []Point {
	dst := make([]Point, len(src))
	for i, p := range src {
		dst[i] = m.TransformPoint(p)
	}
	return dst
}

// TransformFloats applies the transformation to sub-pixel samples and
// rounds the results.
func (m Matrix) TransformFloats(src []FloatPoint) []Point {
	dst := make([]Point, len(src))
	for i, p := range src {
		dst[i] = m.TransformFloat(p).Round()
	}
	return dst
}

// TransformChecked is TransformPoints with an overflow check on the result.
func (m Matrix) TransformChecked(src []Point) ([]Point, error) {
	dst := make([]Point, len(src))
	for i, p := range src {
		q := m.TransformFloat(p.Float())
		if q.X < CoordMin || q.X > CoordMax || q.Y < CoordMin || q.Y > CoordMax {
			return nil, fmt.Errorf("transform %v: %w", p, ErrCoordOverflow)
		}
		dst[i] = q.Round()
	}
	return dst, nil
}

// ScaleFactor returns sqrt(a² + d²), the x-axis scale of the transform.
func (m Matrix) ScaleFactor() float64 {
	return math.Hypot(m.A, m.D)
}

// Rotation returns the clockwise rotation of the transform in degrees,
// in the range (-180, 180].
func (m Matrix) Rotation() float64 {
	return math.Atan2(-m.D, m.A) / degToRad
}

// Offset returns the translation part of the transform.
func (m Matrix) Offset() FloatPoint {
	return FloatPoint{X: m.C, Y: m.F}
}

// Flip records which axes Canonical had to mirror.
type Flip uint8

// Flip bits.
const (
	FlipX Flip = 1 << iota
	FlipY
)

// Canonical cancels mirroring and upside-down rotation so that downstream
// code (label placement) can assume a readable orientation. The returned
// flags tell the caller which justification axes were inverted.
func (m Matrix) Canonical() (Matrix, Flip) {
	var f Flip
	if m.Determinant() < 0 {
		m = m.Multiply(Scale(-1, 1))
		f |= FlipX
	}
	if m.A < 0 || (m.A == 0 && m.D > 0) {
		m = m.Multiply(Scale(-1, -1))
		f ^= FlipX | FlipY
	}
	return m, f
}
