package schem

import "math"

// TestInsideness reports whether p lies inside the convex quad. The sign
// of the cross product of each edge with p is summed; p is inside when
// all four agree, whatever the winding direction of the quad.
func TestInsideness(p Point, quad [4]Point) bool {
	sum := 0
	for i := range quad {
		a, b := quad[i], quad[(i+1)%4]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		switch {
		case cross > 0:
			sum++
		case cross < 0:
			sum--
		}
	}
	return sum == 4 || sum == -4
}

// withinPolyline reports whether any segment of pts passes within the
// squared tolerance tol2 of p, stopping at the first hit.
func withinPolyline(pts []FloatPoint, p FloatPoint, closed bool, tol2 float64) bool {
	switch len(pts) {
	case 0:
		return false
	case 1:
		return p.Sub(pts[0]).LengthSquared() <= tol2
	}
	for i := 1; i < len(pts); i++ {
		if SegmentSqDistance(pts[i-1], pts[i], p) <= tol2 {
			return true
		}
	}
	return closed && len(pts) > 2 && SegmentSqDistance(pts[len(pts)-1], pts[0], p) <= tol2
}

// PathSelect reports whether p lies within tol of the outline of e. Only
// kinds in filter are considered; a path matches when KindPath is in the
// filter and any of its parts is hit.
func PathSelect(e Element, p Point, filter Kind, tol float64) bool {
	if e.Kind()&filter == 0 {
		return false
	}
	tol2 := tol * tol
	fp := p.Float()
	switch v := e.(type) {
	case *Polygon:
		return withinPolyline(v.floats(), fp, v.Closed(), tol2)
	case *Spline:
		return withinPolyline(v.polyline(), fp, v.Style&Unclosed == 0, tol2)
	case *Arc:
		return withinPolyline(v.Points, fp, false, tol2)
	case *Path:
		for _, part := range v.Parts {
			if PathSelect(part, p, KindPolygon|KindSpline, tol) {
				return true
			}
		}
		return false
	case *Label:
		return v.Distance(p) <= tol
	case *Instance:
		return v.Distance(p) <= tol
	}
	return false
}

// SelectNearest returns the index of the element of obj closest to p
// among those within the view's tolerance. Pins are only selectable when
// topLevel is set.
func SelectNearest(obj *Object, p Point, view *ViewContext, filter Kind, topLevel bool) (int, bool) {
	tol := view.WireLim()
	best, bestDist := -1, math.Inf(1)
	for i, e := range obj.Elements {
		if l, ok := e.(*Label); ok && l.IsPin() && !topLevel {
			continue
		}
		if !PathSelect(e, p, filter, tol) {
			continue
		}
		if d := e.Distance(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// controlPoints returns the points of e that area selection tests.
func controlPoints(e Element) []Point {
	switch v := e.(type) {
	case *Polygon:
		return v.Points
	case *Spline:
		return v.Ctrl[:]
	case *Arc:
		return []Point{v.Position}
	case *Label:
		return []Point{v.Position}
	case *Instance:
		return []Point{v.Position}
	}
	return nil
}

// AreaElement reports whether e has a control point inside quad. Polygon,
// spline and path points found inside are added to the element's edit
// cycle so a following drag moves only those points.
func AreaElement(e Element, quad [4]Point) bool {
	if p, ok := e.(*Path); ok {
		hit := false
		for _, part := range p.Parts {
			if AreaElement(part, quad) {
				hit = true
			}
		}
		if hit {
			UpdatePath(p)
		}
		return hit
	}

	_, editable := e.(*Polygon)
	if _, ok := e.(*Spline); ok {
		editable = true
	}
	hit := false
	for i, pt := range controlPoints(e) {
		if !TestInsideness(pt, quad) {
			continue
		}
		hit = true
		if !editable {
			break
		}
		AddCycle(e, i, editXY)
	}
	return hit
}

// SelectArea returns the indices of the elements of obj touched by quad,
// given in obj's frame. Instances are tested by mapping the quad into each
// nested frame through a matrix stack.
func SelectArea(obj *Object, quad [4]Point) []int {
	stack := NewMatrixStack(Identity())
	var sel []int
	for i, e := range obj.Elements {
		inst, ok := e.(*Instance)
		if !ok {
			if AreaElement(e, quad) {
				sel = append(sel, i)
			}
			continue
		}
		if instanceInArea(inst, quad, stack) {
			sel = append(sel, i)
		}
	}
	return sel
}

// instanceInArea enters inst's frame and reports whether any of its
// elements, at any depth, has a control point inside quad.
func instanceInArea(inst *Instance, quad [4]Point, stack *MatrixStack) bool {
	if inst.Object == nil {
		return false
	}
	stack.Push()
	defer func() { _ = stack.Pop() }()

	scale := inst.Scale
	if scale == 0 {
		scale = 1
	}
	stack.PreMultiply(inst.Position, scale, inst.Rotation)
	inv, err := stack.Top().Invert()
	if err != nil {
		Logger().Warn("schem: skipping degenerate instance in area select")
		return false
	}
	var local [4]Point
	for i, q := range quad {
		local[i] = inv.TransformPoint(q)
	}

	for idx := range inst.Object.Elements {
		el := inst.Element(idx)
		if child, ok := el.(*Instance); ok {
			if instanceInArea(child, quad, stack) {
				return true
			}
			continue
		}
		if elementInQuad(el, local) {
			return true
		}
	}
	return false
}

// elementInQuad is AreaElement without cycle side effects.
func elementInQuad(e Element, quad [4]Point) bool {
	if p, ok := e.(*Path); ok {
		for _, part := range p.Parts {
			if elementInQuad(part, quad) {
				return true
			}
		}
		return false
	}
	for _, pt := range controlPoints(e) {
		if TestInsideness(pt, quad) {
			return true
		}
	}
	return false
}
