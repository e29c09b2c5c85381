package schem

import (
	"fmt"
	"log/slog"
	"math"
)

// EditSession drives one interactive edit of one element of an object.
// Every drag step runs in a fixed order: resolve the cycle, mutate the
// control data, recompute derived samples, refresh the bounding box.
//
// Before an edit starts a copy of the element is pushed on the session's
// edit stack; Cancel restores the first copy and UndoStep the latest.
// A session is not safe for concurrent use.
type EditSession struct {
	obj       *Object
	view      *ViewContext
	undo      UndoLog
	manhattan bool

	elem    Element
	isNew   bool
	refPart int // path part holding the picked point, or -1
	stack   []snapshot
}

// NewEditSession creates a session editing elements of obj.
func NewEditSession(obj *Object, opts ...SessionOption) *EditSession {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.view == nil {
		o.view = NewViewContext(0, 0)
	}
	return &EditSession{
		obj:       obj,
		view:      o.view,
		undo:      o.undo,
		manhattan: o.manhattan,
		refPart:   -1,
	}
}

// Active reports whether an edit is in progress.
func (s *EditSession) Active() bool { return s.elem != nil }

// Element returns the element being edited, or nil.
func (s *EditSession) Element() Element { return s.elem }

// Depth returns the number of snapshots on the edit stack.
func (s *EditSession) Depth() int { return len(s.stack) }

// BeginEdit starts editing element index at the editable point nearest to
// at (model space). If the element already carries a cycle, for example
// from an area selection, that cycle is kept.
func (s *EditSession) BeginEdit(index int, at Point) error {
	if s.Active() {
		s.end()
	}
	e, err := s.obj.At(index)
	if err != nil {
		return err
	}

	snap := takeSnapshot(e)
	s.stack = []snapshot{snap}
	s.elem, s.isNew, s.refPart = e, false, -1
	s.undo.RegisterForUndo(UndoEdit, PhaseBegin, snap.elem.Clone())

	if p, ok := e.(*Path); ok {
		s.beginPath(p, at)
		return nil
	}
	if e.base().cycle == nil {
		AddCycle(e, nearestPoint(e, at), editXY)
	}
	Logger().Debug("schem: begin edit", slog.String("kind", e.Kind().String()), slog.Int("index", index))
	return nil
}

// beginPath picks the part nearest to at, seeds a cycle on its nearest
// point and propagates it across joints.
func (s *EditSession) beginPath(p *Path, at Point) {
	for i, part := range p.Parts {
		if part.base().cycle != nil {
			s.refPart = i
			UpdatePath(p)
			return
		}
	}
	best, bestDist := -1, math.Inf(1)
	for i, part := range p.Parts {
		if d := part.Distance(at); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return
	}
	part := p.Parts[best]
	AddCycle(part, nearestPoint(part, at), editXY)
	s.refPart = best
	UpdatePath(p)
}

// BeginCreate appends a new element to the object and starts dragging its
// point index. A new element that is degenerate when the edit finishes is
// dropped without an undo record.
func (s *EditSession) BeginCreate(e Element, index int) error {
	if _, ok := e.(*Path); ok {
		return fmt.Errorf("create path: %w", ErrInvalidPathPart)
	}
	if s.Active() {
		s.end()
	}
	e.Calc()
	RemoveCycle(e)
	AddCycle(e, index, editXY)
	s.obj.Append(e)
	s.stack = []snapshot{takeSnapshot(e)}
	s.elem, s.isNew, s.refPart = e, true, -1
	return nil
}

// Drag moves the live points to a device-space cursor position.
func (s *EditSession) Drag(device Point) error {
	cursor, err := s.view.ToModel(device)
	if err != nil {
		return err
	}
	return s.DragTo(cursor)
}

// DragTo moves the live points so the reference point lands on cursor
// (model space). Other live points move by the same offset.
func (s *EditSession) DragTo(cursor Point) error {
	if !s.Active() {
		return ErrNoEdit
	}
	prev := CalcExtents(s.elem)

	target := s.elem
	if p, ok := s.elem.(*Path); ok {
		if s.refPart < 0 || s.refPart >= len(p.Parts) {
			return ErrNoCycle
		}
		target = p.Parts[s.refPart]
	}
	c := target.base().cycle
	if c == nil {
		Logger().Warn("schem: drag without cycle", slog.String("kind", target.Kind().String()))
		return ErrNoCycle
	}
	ref, _ := c.Reference()

	if poly, ok := target.(*Polygon); ok && s.manhattan && c.Len() == 1 {
		cursor = Manhattanize(cursor, poly, ref.Index, s.isNew)
	}
	delta := cursor.Sub(EditPoint(target, ref.Index))

	if p, ok := s.elem.(*Path); ok {
		for _, part := range p.Parts {
			moveCycle(part, delta)
		}
	} else {
		moveCycle(s.elem, delta)
	}

	s.elem.Calc()
	UpdateBBox(s.obj, s.elem, prev)
	return nil
}

// AppendPoint commits the current vertex of a polygon being drawn and
// starts a new one at the same position. The previous state is pushed so
// UndoStep can take the vertex back.
func (s *EditSession) AppendPoint() error {
	if !s.Active() {
		return ErrNoEdit
	}
	poly, ok := s.elem.(*Polygon)
	if !ok {
		return fmt.Errorf("append point to %s: %w", s.elem.Kind(), ErrInvalidPathPart)
	}
	if poly.cycle == nil {
		return ErrNoCycle
	}
	s.stack = append(s.stack, takeSnapshot(poly))
	ref, _ := poly.cycle.Reference()
	poly.Points = append(poly.Points, poly.Points[ref.Index])
	AdvanceCycle(poly, len(poly.Points)-1)
	return nil
}

// NextPoint moves the edit point to the next (dir > 0) or previous
// (dir < 0) point of the element.
func (s *EditSession) NextPoint(dir int) error {
	if !s.Active() {
		return ErrNoEdit
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}
	if p, ok := s.elem.(*Path); ok {
		return s.stepPath(p, dir)
	}
	return NextEditPoint(s.elem, dir)
}

// stepPath moves the path edit point by dir, crossing into the adjacent
// part at a joint. The shared joint is skipped on the far side since it
// was already visited.
func (s *EditSession) stepPath(p *Path, dir int) error {
	if s.refPart < 0 || s.refPart >= len(p.Parts) {
		return ErrNoCycle
	}
	part := p.Parts[s.refPart]
	c := part.base().cycle
	if c == nil {
		return ErrNoCycle
	}
	ref, _ := c.Reference()
	idx := ref.Index + dir

	if idx < 0 || idx > lastIndex(part) {
		n := len(p.Parts)
		s.refPart = ((s.refPart+dir)%n + n) % n
		part = p.Parts[s.refPart]
		if dir > 0 {
			idx = min(1, lastIndex(part))
		} else {
			idx = max(lastIndex(part)-1, 0)
		}
	}

	RemoveCycle(p)
	AddCycle(part, idx, editXY)
	UpdatePath(p)
	return nil
}

// UndoStep pops one level of the edit stack. With only the initial
// snapshot left it cancels the edit.
func (s *EditSession) UndoStep() error {
	if !s.Active() {
		return ErrNoEdit
	}
	if len(s.stack) <= 1 {
		return s.Cancel()
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.replace(top.restore())
	return nil
}

// Cancel restores the element as it was before the edit. A new element is
// removed.
func (s *EditSession) Cancel() error {
	if !s.Active() {
		return ErrNoEdit
	}
	if s.isNew {
		if idx := s.obj.Index(s.elem); idx >= 0 {
			if _, err := s.obj.RemoveAt(idx); err != nil {
				return err
			}
		}
		s.end()
		return nil
	}
	restored := s.stack[0].restore()
	s.replace(restored)
	RemoveCycle(restored)
	s.end()
	return nil
}

// Finish commits the edit. A degenerate result is not stored: a new
// element is dropped silently, an existing one is deleted with an undo
// record. ErrDegenerate reports either case.
func (s *EditSession) Finish() error {
	if !s.Active() {
		return ErrNoEdit
	}
	defer s.end()

	e := s.elem
	RemoveCycle(e)
	if poly, ok := e.(*Polygon); ok {
		poly.Dedup()
	}
	e.Calc()

	if Degenerate(e) {
		if !s.isNew {
			s.undo.RegisterForUndo(UndoDelete, PhaseEnd, s.stack[0].elem)
		}
		if idx := s.obj.Index(e); idx >= 0 {
			if _, err := s.obj.RemoveAt(idx); err != nil {
				return err
			}
		}
		Logger().Debug("schem: discarded degenerate element", slog.String("kind", e.Kind().String()))
		return fmt.Errorf("finish %s: %w", e.Kind(), ErrDegenerate)
	}

	if s.isNew {
		s.undo.RegisterForUndo(UndoCreate, PhaseEnd, nil)
	} else {
		s.undo.RegisterForUndo(UndoEdit, PhaseEnd, s.stack[0].elem)
	}
	CalcBBoxValues(s.obj, nil)
	return nil
}

// replace swaps the edited element for a restored snapshot.
func (s *EditSession) replace(e Element) {
	if idx := s.obj.Index(s.elem); idx >= 0 {
		s.obj.Elements[idx] = e
	}
	s.elem = e
	e.Calc()
	CalcBBoxValues(s.obj, nil)
}

// end clears the session state.
func (s *EditSession) end() {
	if s.elem != nil {
		RemoveCycle(s.elem)
	}
	s.elem = nil
	s.isNew = false
	s.refPart = -1
	s.stack = nil
}
