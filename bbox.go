package schem

import (
	"log/slog"
	"math"
)

// Bounds accumulates the extent of a set of points. The zero value is not
// empty; start from EmptyBounds.
type Bounds struct {
	Min, Max Point
}

// EmptyBounds returns the sentinel accumulator with Min > Max.
func EmptyBounds() Bounds {
	return Bounds{
		Min: Point{X: math.MaxInt, Y: math.MaxInt},
		Max: Point{X: math.MinInt, Y: math.MinInt},
	}
}

// IsEmpty reports whether nothing has been added.
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Add expands the bounds to include p.
func (b *Bounds) Add(p Point) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
}

// Union expands the bounds to include o.
func (b *Bounds) Union(o Bounds) {
	if o.IsEmpty() {
		return
	}
	b.Add(o.Min)
	b.Add(o.Max)
}

// StrictlyInside reports whether b lies inside o without touching any of
// its four sides.
func (b Bounds) StrictlyInside(o Bounds) bool {
	return b.Min.X > o.Min.X && b.Min.Y > o.Min.Y && b.Max.X < o.Max.X && b.Max.Y < o.Max.Y
}

// Contains reports whether o lies inside b, sides included.
func (b Bounds) Contains(o Bounds) bool {
	return o.Min.X >= b.Min.X && o.Min.Y >= b.Min.Y && o.Max.X <= b.Max.X && o.Max.Y <= b.Max.Y
}

// BBox converts the bounds to a box. Empty bounds give the zero box.
func (b Bounds) BBox() BBox {
	if b.IsEmpty() {
		return BBox{}
	}
	return BBox{LowerLeft: b.Min, Width: b.Max.X - b.Min.X, Height: b.Max.Y - b.Min.Y}
}

// BBox is an axis-aligned box given by its lower-left corner and size.
type BBox struct {
	LowerLeft     Point
	Width, Height int
}

// UpperRight returns the corner opposite LowerLeft.
func (b BBox) UpperRight() Point {
	return Point{X: b.LowerLeft.X + b.Width, Y: b.LowerLeft.Y + b.Height}
}

// Bounds converts the box back to an accumulator.
func (b BBox) Bounds() Bounds {
	return Bounds{Min: b.LowerLeft, Max: b.UpperRight()}
}

// Quad returns the four corners counter-clockwise from LowerLeft.
func (b BBox) Quad() [4]Point {
	ur := b.UpperRight()
	return [4]Point{
		b.LowerLeft,
		{X: ur.X, Y: b.LowerLeft.Y},
		ur,
		{X: b.LowerLeft.X, Y: ur.Y},
	}
}

// bboxQuad returns the corners of b mapped through m.
func bboxQuad(b BBox, m Matrix) [4]Point {
	q := b.Quad()
	for i := range q {
		q[i] = m.TransformPoint(q[i])
	}
	return q
}

// CalcExtents returns the extent of a single element.
func CalcExtents(e Element) Bounds {
	b := EmptyBounds()
	e.Extents(&b)
	return b
}

// CalcBBoxSingle folds one element into the object box b. Pin labels are
// kept out of b and folded into the schematic box sb instead.
func CalcBBoxSingle(e Element, b, sb *Bounds) {
	if l, ok := e.(*Label); ok && l.IsPin() {
		l.Extents(sb)
		return
	}
	e.Extents(b)
}

// skipInBBox reports whether e only has geometry per instance.
func skipInBBox(e Element) bool {
	return e.base().Param == ParamInstance
}

// CalcBBoxValues refreshes the bounding box of obj. With a nil changed
// element every element is folded again. Otherwise only the changed
// element is measured: if its extent lies strictly inside the current box
// the box is kept, else the whole object is recomputed because the box
// may have grown or shrunk. The shortcut cannot see an element that moved
// off the boundary toward the interior; callers that know the previous
// extent should use UpdateBBox, and Object.ExactBBox disables it.
func CalcBBoxValues(obj *Object, changed Element) {
	if changed != nil && obj.bboxValid && !obj.ExactBBox {
		if skipInBBox(changed) {
			return
		}
		nb, sb := EmptyBounds(), EmptyBounds()
		CalcBBoxSingle(changed, &nb, &sb)
		if incrementalFits(obj, nb, sb) {
			return
		}
		Logger().Debug("schem: bbox full recompute", slog.String("object", obj.Name))
	}
	recomputeBBox(obj)
}

// UpdateBBox refreshes the bounding box after changed was edited from an
// extent of previous. The incremental result is kept only when both the
// previous and the new extent lie strictly inside the current box, so the
// box can neither have grown nor shrunk.
func UpdateBBox(obj *Object, changed Element, previous Bounds) {
	if obj.bboxValid && !obj.ExactBBox && !skipInBBox(changed) {
		box := obj.BBox.Bounds()
		if l, ok := changed.(*Label); ok && l.IsPin() && obj.SchemBBox != nil {
			box = obj.SchemBBox.Bounds()
		}
		if previous.IsEmpty() || previous.StrictlyInside(box) {
			nb, sb := EmptyBounds(), EmptyBounds()
			CalcBBoxSingle(changed, &nb, &sb)
			if incrementalFits(obj, nb, sb) {
				return
			}
		}
	}
	recomputeBBox(obj)
}

// incrementalFits reports whether the new extents of a single element fit
// strictly inside the cached boxes.
func incrementalFits(obj *Object, nb, sb Bounds) bool {
	if !sb.IsEmpty() {
		return obj.SchemBBox != nil && sb.StrictlyInside(obj.SchemBBox.Bounds())
	}
	return !obj.bboxEmpty && !nb.IsEmpty() && nb.StrictlyInside(obj.BBox.Bounds())
}

// recomputeBBox folds every element of obj.
func recomputeBBox(obj *Object) {
	b, sb := EmptyBounds(), EmptyBounds()
	for _, e := range obj.Elements {
		if skipInBBox(e) {
			continue
		}
		CalcBBoxSingle(e, &b, &sb)
	}
	obj.BBox = b.BBox()
	obj.bboxEmpty = b.IsEmpty()
	obj.SchemBBox = nil
	if !sb.IsEmpty() {
		sb.Union(b)
		box := sb.BBox()
		obj.SchemBBox = &box
	}
	obj.bboxValid = true
}

// CalcBBoxInst returns the bounding box of one instance in its object's
// frame. Without instance-specific geometry this is the object's box;
// otherwise the elements carrying instance values (overrides and
// instance-parameterized elements) are folded on top of it.
func CalcBBoxInst(inst *Instance) BBox {
	obj := inst.Object
	if !obj.bboxValid {
		recomputeBBox(obj)
	}

	b := obj.BBox.Bounds()
	if obj.bboxEmpty {
		b = EmptyBounds()
	}
	extra := false
	for idx, e := range obj.Elements {
		_, overridden := inst.Overrides[idx]
		if !overridden && !skipInBBox(e) {
			continue
		}
		el := inst.Element(idx)
		if l, ok := el.(*Label); ok && l.IsPin() {
			continue
		}
		el.Extents(&b)
		extra = true
	}
	if !extra {
		return obj.BBox
	}
	return b.BBox()
}
