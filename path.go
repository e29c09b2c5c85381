package schem

import (
	"fmt"
	"math"
)

// Path is a connected sequence of polygon and spline parts drawn as one
// outline.
type Path struct {
	Base
	Parts []Element
}

// NewPath creates a path. Parts must be *Polygon or *Spline.
func NewPath(style Style, parts ...Element) (*Path, error) {
	for i, part := range parts {
		if err := checkPathPart(part); err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
	}
	p := &Path{Parts: parts}
	p.Style = style
	return p, nil
}

func checkPathPart(e Element) error {
	switch e.(type) {
	case *Polygon, *Spline:
		return nil
	}
	return fmt.Errorf("%s: %w", e.Kind(), ErrInvalidPathPart)
}

// Append adds a part to the end of the path.
func (p *Path) Append(part Element) error {
	if err := checkPathPart(part); err != nil {
		return err
	}
	p.Parts = append(p.Parts, part)
	return nil
}

// Kind implements Element.
func (p *Path) Kind() Kind { return KindPath }

// Closed reports whether the path wraps from its last part to its first.
func (p *Path) Closed() bool { return p.Style&Unclosed == 0 }

// Calc recomputes every part.
func (p *Path) Calc() {
	for _, part := range p.Parts {
		part.Calc()
	}
}

// Extents implements Element.
func (p *Path) Extents(b *Bounds) {
	for _, part := range p.Parts {
		part.Extents(b)
	}
}

// Distance implements Element.
func (p *Path) Distance(pt Point) float64 {
	best := math.Inf(1)
	for _, part := range p.Parts {
		best = math.Min(best, part.Distance(pt))
	}
	return best
}

// Reverse reverses the part order and every part.
func (p *Path) Reverse() {
	for i, j := 0, len(p.Parts)-1; i < j; i, j = i+1, j-1 {
		p.Parts[i], p.Parts[j] = p.Parts[j], p.Parts[i]
	}
	for _, part := range p.Parts {
		part.Reverse()
	}
}

// Equal implements Element.
func (p *Path) Equal(other Element) bool {
	o, ok := other.(*Path)
	if !ok || !p.sameAttrs(&o.Base) || len(p.Parts) != len(o.Parts) {
		return false
	}
	for i := range p.Parts {
		if !p.Parts[i].Equal(o.Parts[i]) {
			return false
		}
	}
	return true
}

// Clone implements Element.
func (p *Path) Clone() Element {
	c := &Path{Base: p.cloneBase(), Parts: make([]Element, len(p.Parts))}
	for i, part := range p.Parts {
		c.Parts[i] = part.Clone()
	}
	return c
}

// Locate maps a path-wide point index onto a part and its local index.
func (p *Path) Locate(index int) (part Element, local int, ok bool) {
	for _, part := range p.Parts {
		n := PointCount(part)
		if index < n {
			return part, index, true
		}
		index -= n
	}
	return nil, 0, false
}

// lastIndex returns the index of a part's trailing joint point.
func lastIndex(part Element) int {
	if poly, ok := part.(*Polygon); ok {
		return len(poly.Points) - 1
	}
	return 3
}

// endpoints returns a part's leading and trailing joint points.
func endpoints(part Element) (first, last Point) {
	switch v := part.(type) {
	case *Polygon:
		if len(v.Points) == 0 {
			return Point{}, Point{}
		}
		return v.Points[0], v.Points[len(v.Points)-1]
	case *Spline:
		return v.Ctrl[0], v.Ctrl[3]
	}
	return Point{}, Point{}
}

// UpdatePath keeps the path connected during an edit. Every cycle on a
// part's trailing point is mirrored onto the next part's leading point,
// and every cycle on a leading point onto the previous part's trailing
// point, with the same EditX/EditY flags. Joints propagate when the two
// points coincide; the wrap joint of a closed path always propagates.
// Both passes are needed because cycles can be seeded at any joint.
func UpdatePath(p *Path) {
	n := len(p.Parts)
	if n == 0 {
		return
	}

	joined := func(from, to int, wrap bool) bool {
		_, last := endpoints(p.Parts[from])
		first, _ := endpoints(p.Parts[to])
		return last == first || (wrap && p.Closed())
	}

	for i, part := range p.Parts {
		c := part.base().cycle
		if c == nil {
			continue
		}
		next, wrap := i+1, false
		if next == n {
			next, wrap = 0, true
		}
		if (wrap && !p.Closed()) || !joined(i, next, wrap) {
			continue
		}
		for _, entry := range append([]CycleEntry(nil), c.entries...) {
			if entry.Index == lastIndex(part) {
				AddCycle(p.Parts[next], 0, entry.Flags&editXY)
			}
		}
	}

	for i := n - 1; i >= 0; i-- {
		c := p.Parts[i].base().cycle
		if c == nil {
			continue
		}
		prev, wrap := i-1, false
		if prev < 0 {
			prev, wrap = n-1, true
		}
		if (wrap && !p.Closed()) || !joined(prev, i, wrap) {
			continue
		}
		for _, entry := range append([]CycleEntry(nil), c.entries...) {
			if entry.Index == 0 {
				AddCycle(p.Parts[prev], lastIndex(p.Parts[prev]), entry.Flags&editXY)
			}
		}
	}
}
