package schem

import (
	"image/color"
	"math"
)

// Kind identifies an element variant. Kinds are bits so that selection
// filters can combine them.
type Kind uint8

// Element kinds.
const (
	KindArc Kind = 1 << iota
	KindPolygon
	KindSpline
	KindPath
	KindLabel
	KindInstance

	// KindAll matches every element kind.
	KindAll = KindArc | KindPolygon | KindSpline | KindPath | KindLabel | KindInstance
)

// String returns the element kind name.
func (k Kind) String() string {
	switch k {
	case KindArc:
		return "arc"
	case KindPolygon:
		return "polygon"
	case KindSpline:
		return "spline"
	case KindPath:
		return "path"
	case KindLabel:
		return "label"
	case KindInstance:
		return "instance"
	default:
		return "mixed"
	}
}

// Style is the stroke/fill bitmask handed to the renderer.
type Style uint16

// Style bits.
const (
	Unclosed Style = 1 << iota
	Dashed
	Dotted
	NoBorder
	Filled
	SquareCap
)

// ParamMode tells the bounding-box engine whether an element's geometry
// depends on instance parameters.
type ParamMode uint8

const (
	// ParamNone marks ordinary geometry.
	ParamNone ParamMode = iota
	// ParamDefault marks parameterized geometry whose stored value is the
	// active default.
	ParamDefault
	// ParamInstance marks parameterized geometry that is only meaningful per
	// instance; the object's own bounding box skips it.
	ParamInstance
)

// Base holds the attributes shared by every element.
type Base struct {
	Style Style
	Width float64
	// Color is the stroke/fill color; nil selects the renderer default.
	Color color.Color
	Param ParamMode

	// cycle is the edit overlay. It exists only while an edit is active.
	cycle *Cycle
}

func (b *Base) base() *Base { return b }

// EditCycle returns the active point cycle, or nil when the element is not
// being edited.
func (b *Base) EditCycle() *Cycle { return b.cycle }

// sameAttrs compares the attributes that take part in element equality.
func (b *Base) sameAttrs(o *Base) bool {
	return b.Style == o.Style && b.Width == o.Width
}

// cloneBase copies the attributes without the edit overlay.
func (b *Base) cloneBase() Base {
	return Base{Style: b.Style, Width: b.Width, Color: b.Color, Param: b.Param}
}

// Element is a drawable geometric element owned by an Object. The set of
// implementations is closed: *Arc, *Polygon, *Spline, *Path, *Label and
// *Instance.
type Element interface {
	// Kind returns the element variant.
	Kind() Kind
	// Calc recomputes derived geometry (sampled arc and spline polylines).
	Calc()
	// Extents folds the element's extent into b.
	Extents(b *Bounds)
	// Distance returns the distance from p to the element's outline.
	Distance(p Point) float64
	// Reverse reverses the element's point order.
	Reverse()
	// Equal reports whether two elements describe the same geometry.
	Equal(other Element) bool
	// Clone returns a deep copy without any edit cycle.
	Clone() Element

	base() *Base
}

// PointCount returns the number of editable points of e: vertices for a
// polygon, control points for a spline, the four handles of an arc and one
// anchor for labels and instances. Paths report the sum of their parts.
func PointCount(e Element) int {
	switch v := e.(type) {
	case *Polygon:
		return len(v.Points)
	case *Spline:
		return 4
	case *Arc:
		return arcHandles
	case *Path:
		n := 0
		for _, part := range v.Parts {
			n += PointCount(part)
		}
		return n
	default:
		return 1
	}
}

// Degenerate reports whether e has no visible extent and must not be
// stored when an interactive create or edit finishes.
func Degenerate(e Element) bool {
	switch v := e.(type) {
	case *Arc:
		return v.Radius == 0 || v.YAxis == 0 || v.Angle1 == v.Angle2
	case *Polygon:
		return len(dedupPoints(v.Points)) < 2
	case *Spline:
		return v.Ctrl[0] == v.Ctrl[1] && v.Ctrl[1] == v.Ctrl[2] && v.Ctrl[2] == v.Ctrl[3]
	case *Path:
		for _, part := range v.Parts {
			if !Degenerate(part) {
				return false
			}
		}
		return true
	case *Label:
		return v.Width == 0 && v.Height == 0
	default:
		return false
	}
}

// distanceFromSq converts a squared distance into a distance, keeping
// infinity for empty outlines.
func distanceFromSq(d float64) float64 {
	if math.IsInf(d, 1) {
		return d
	}
	return math.Sqrt(d)
}
