package schem

import "log/slog"

// CycleFlags describe how a cycle entry takes part in an interactive edit.
type CycleFlags uint8

// Cycle flag bits.
const (
	// EditX lets the entry's x coordinate follow the cursor.
	EditX CycleFlags = 1 << iota
	// EditY lets the entry's y coordinate follow the cursor.
	EditY
	// Reference marks the anchor entry used for next/previous navigation.
	Reference
	// LastEntry marks the tail entry.
	LastEntry

	editXY = EditX | EditY
)

// CycleEntry marks one point index of an element as live during an edit.
type CycleEntry struct {
	Index int
	Flags CycleFlags
}

// Cycle lists the points of one element that are under interactive
// control. A cycle is never empty: removing its last entry removes the
// cycle. Exactly one entry carries Reference and the tail carries
// LastEntry.
type Cycle struct {
	entries []CycleEntry
}

// Entries returns the entries in insertion order. The slice must not be
// modified.
func (c *Cycle) Entries() []CycleEntry {
	return c.entries
}

// Len returns the number of entries.
func (c *Cycle) Len() int {
	return len(c.entries)
}

// Find returns the entry for a point index.
func (c *Cycle) Find(index int) (CycleEntry, bool) {
	for _, e := range c.entries {
		if e.Index == index {
			return e, true
		}
	}
	return CycleEntry{}, false
}

// Reference returns the anchor entry.
func (c *Cycle) Reference() (CycleEntry, bool) {
	for _, e := range c.entries {
		if e.Flags&Reference != 0 {
			return e, true
		}
	}
	return CycleEntry{}, false
}

// markLast moves the LastEntry marker to the tail.
func (c *Cycle) markLast() {
	for i := range c.entries {
		c.entries[i].Flags &^= LastEntry
	}
	if n := len(c.entries); n > 0 {
		c.entries[n-1].Flags |= LastEntry
	}
}

// clone returns an independent copy.
func (c *Cycle) clone() *Cycle {
	if c == nil {
		return nil
	}
	return &Cycle{entries: append([]CycleEntry(nil), c.entries...)}
}

// AddCycle marks point index of e as live. Zero flags default to
// EditX|EditY. If the index already has an entry the flags are merged;
// otherwise a new entry is appended. The first entry of a new cycle is the
// reference. Paths carry their cycles on their parts, so AddCycle on a
// *Path is logged and ignored.
func AddCycle(e Element, index int, flags CycleFlags) {
	if _, ok := e.(*Path); ok {
		Logger().Warn("schem: AddCycle on path; use its parts", slog.Int("index", index))
		return
	}
	flags &= editXY
	if flags == 0 {
		flags = editXY
	}

	b := e.base()
	if b.cycle == nil {
		b.cycle = &Cycle{entries: []CycleEntry{{Index: index, Flags: flags | Reference | LastEntry}}}
		return
	}

	c := b.cycle
	for i := range c.entries {
		if c.entries[i].Index == index {
			c.entries[i].Flags |= flags
			return
		}
	}
	c.entries = append(c.entries, CycleEntry{Index: index, Flags: flags})
	c.markLast()
}

// MakeReferenceCycle moves the Reference flag to the entry for index. If
// no entry matches, the previous reference is kept.
func MakeReferenceCycle(c *Cycle, index int) {
	if c == nil || len(c.entries) == 0 {
		return
	}
	prev := -1
	for i := range c.entries {
		if c.entries[i].Flags&Reference != 0 && prev < 0 {
			prev = i
		}
		c.entries[i].Flags &^= Reference
	}
	for i := range c.entries {
		if c.entries[i].Index == index {
			c.entries[i].Flags |= Reference
			return
		}
	}
	if prev < 0 {
		prev = 0
	}
	c.entries[prev].Flags |= Reference
}

// AdvanceCycle prunes entries that edit neither axis, then either moves a
// lone remaining entry to newValue or promotes the most recently added
// entry to reference. A negative newValue removes the cycle. Advancing an
// element without a cycle is logged and ignored.
func AdvanceCycle(e Element, newValue int) {
	b := e.base()
	if b.cycle == nil {
		Logger().Warn("schem: AdvanceCycle without cycle", slog.String("kind", e.Kind().String()))
		return
	}
	if newValue < 0 {
		RemoveCycle(e)
		return
	}

	c := b.cycle
	kept := c.entries[:0]
	for _, entry := range c.entries {
		if entry.Flags&editXY != 0 {
			kept = append(kept, entry)
		}
	}
	c.entries = kept
	if len(kept) == 0 {
		b.cycle = nil
		return
	}

	if len(kept) == 1 {
		c.entries[0].Index = newValue
		c.entries[0].Flags |= Reference
	} else {
		MakeReferenceCycle(c, kept[len(kept)-1].Index)
	}
	c.markLast()
}

// RemoveCycle discards the edit cycle of e, or of every part of a Path.
func RemoveCycle(e Element) {
	if p, ok := e.(*Path); ok {
		for _, part := range p.Parts {
			RemoveCycle(part)
		}
		return
	}
	e.base().cycle = nil
}

// NextEditPoint steps the edit point of e by dir (+1 next, -1 previous)
// starting from the reference entry. A single-entry cycle moves to the
// neighbouring point, wrapping around; a multi-entry cycle rotates the
// reference through its entries. For a Path the first part holding a
// cycle is stepped.
func NextEditPoint(e Element, dir int) error {
	if p, ok := e.(*Path); ok {
		for _, part := range p.Parts {
			if part.base().cycle != nil {
				return NextEditPoint(part, dir)
			}
		}
		return ErrNoCycle
	}

	c := e.base().cycle
	if c == nil {
		return ErrNoCycle
	}
	ref, _ := c.Reference()

	if c.Len() == 1 {
		n := PointCount(e)
		if n == 0 {
			return nil
		}
		AdvanceCycle(e, ((ref.Index+dir)%n+n)%n)
		return nil
	}

	pos := 0
	for i, entry := range c.entries {
		if entry.Index == ref.Index {
			pos = i
		}
	}
	n := len(c.entries)
	MakeReferenceCycle(c, c.entries[((pos+dir)%n+n)%n].Index)
	return nil
}
