package schem

// EditPoint returns the model position of editable point index of e. For
// a Path the index runs over all parts in order.
func EditPoint(e Element, index int) Point {
	switch v := e.(type) {
	case *Polygon:
		if index >= 0 && index < len(v.Points) {
			return v.Points[index]
		}
	case *Spline:
		if index >= 0 && index < 4 {
			return v.Ctrl[index]
		}
	case *Arc:
		return v.Handle(index)
	case *Path:
		if part, local, ok := v.Locate(index); ok {
			return EditPoint(part, local)
		}
	case *Label:
		return v.Position
	case *Instance:
		return v.Position
	}
	return Point{}
}

// MovePoint moves the point addressed by entry to target. Only the axes
// enabled by the entry's EditX and EditY flags change.
func MovePoint(e Element, entry CycleEntry, target Point) {
	set := func(p *Point) {
		if entry.Flags&EditX != 0 {
			p.X = target.X
		}
		if entry.Flags&EditY != 0 {
			p.Y = target.Y
		}
	}
	switch v := e.(type) {
	case *Polygon:
		if entry.Index >= 0 && entry.Index < len(v.Points) {
			set(&v.Points[entry.Index])
		}
	case *Spline:
		if entry.Index >= 0 && entry.Index < 4 {
			set(&v.Ctrl[entry.Index])
		}
	case *Arc:
		v.moveHandle(entry.Index, entry.Flags, target)
	case *Path:
		if part, local, ok := v.Locate(entry.Index); ok {
			MovePoint(part, CycleEntry{Index: local, Flags: entry.Flags}, target)
		}
	case *Label:
		set(&v.Position)
	case *Instance:
		set(&v.Position)
	}
}

// arcPickOrder lists arc handles so that angle endpoints win ties with the
// radius handle, which coincides with the start point of a 0° arc.
var arcPickOrder = []int{ArcAngle1, ArcAngle2, ArcRadius, ArcYAxis}

// nearestPoint returns the editable point of e closest to at.
func nearestPoint(e Element, at Point) int {
	var order []int
	if _, ok := e.(*Arc); ok {
		order = arcPickOrder
	} else {
		order = make([]int, PointCount(e))
		for i := range order {
			order[i] = i
		}
	}
	best, bestDist := 0, -1
	for _, i := range order {
		if d := SqDistance(EditPoint(e, i), at); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// moveCycle shifts every live point of e by delta.
func moveCycle(e Element, delta Point) {
	c := e.base().cycle
	if c == nil {
		return
	}
	for _, entry := range c.entries {
		MovePoint(e, entry, EditPoint(e, entry.Index).Add(delta))
	}
}

// snapshot is a copy of an element and its cycle state pushed on the edit
// stack.
type snapshot struct {
	elem   Element
	cycles []*Cycle
}

func takeSnapshot(e Element) snapshot {
	s := snapshot{elem: e.Clone()}
	if p, ok := e.(*Path); ok {
		for _, part := range p.Parts {
			s.cycles = append(s.cycles, part.base().cycle.clone())
		}
		return s
	}
	s.cycles = []*Cycle{e.base().cycle.clone()}
	return s
}

// restore returns the snapshot element with its cycles reattached.
func (s snapshot) restore() Element {
	if p, ok := s.elem.(*Path); ok {
		for i, part := range p.Parts {
			if i < len(s.cycles) {
				part.base().cycle = s.cycles[i]
			}
		}
		return p
	}
	if len(s.cycles) > 0 {
		s.elem.base().cycle = s.cycles[0]
	}
	return s.elem
}
