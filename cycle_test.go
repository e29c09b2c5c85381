package schem

import "testing"

// checkCycle verifies that exactly one entry is the reference and only the
// tail carries LastEntry.
func checkCycle(t *testing.T, c *Cycle) {
	t.Helper()
	if c == nil {
		return
	}
	if c.Len() == 0 {
		t.Fatal("empty cycle left attached")
	}
	refs := 0
	for i, e := range c.Entries() {
		if e.Flags&Reference != 0 {
			refs++
		}
		last := e.Flags&LastEntry != 0
		if last != (i == c.Len()-1) {
			t.Errorf("entry %d LastEntry = %v with %d entries", i, last, c.Len())
		}
	}
	if refs != 1 {
		t.Errorf("cycle has %d reference entries, want 1: %+v", refs, c.Entries())
	}
}

func TestAddThenAdvance(t *testing.T) {
	p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0))
	AddCycle(p, 2, editXY)
	AdvanceCycle(p, 4)

	c := p.EditCycle()
	checkCycle(t, c)
	want := CycleEntry{Index: 4, Flags: EditX | EditY | LastEntry | Reference}
	if c.Len() != 1 || c.Entries()[0] != want {
		t.Errorf("cycle = %+v, want [%+v]", c.Entries(), want)
	}
}

func TestAddCycle(t *testing.T) {
	t.Run("zero flags default to both axes", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1))
		AddCycle(p, 0, 0)
		if e := p.EditCycle().Entries()[0]; e.Flags&editXY != editXY {
			t.Errorf("flags = %b, want EditX|EditY", e.Flags)
		}
	})

	t.Run("merge keeps one entry", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1))
		AddCycle(p, 1, EditX)
		AddCycle(p, 1, EditY)
		c := p.EditCycle()
		checkCycle(t, c)
		if c.Len() != 1 || c.Entries()[0].Flags&editXY != editXY {
			t.Errorf("merged cycle = %+v", c.Entries())
		}
	})

	t.Run("append moves tail marker", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1), Pt(2, 2))
		AddCycle(p, 0, editXY)
		AddCycle(p, 2, EditY)
		c := p.EditCycle()
		checkCycle(t, c)
		if ref, _ := c.Reference(); ref.Index != 0 {
			t.Errorf("reference = %d, want first entry 0", ref.Index)
		}
		if got := c.Entries()[1]; got.Index != 2 || got.Flags != EditY|LastEntry {
			t.Errorf("tail = %+v", got)
		}
	})

	t.Run("path is ignored", func(t *testing.T) {
		path, err := NewPath(Unclosed, NewPolygon(Unclosed, Pt(0, 0), Pt(1, 0)))
		if err != nil {
			t.Fatal(err)
		}
		AddCycle(path, 0, editXY)
		if path.EditCycle() != nil {
			t.Error("AddCycle attached a cycle to a path")
		}
	})
}

func TestMakeReferenceCycle(t *testing.T) {
	p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1), Pt(2, 2))
	AddCycle(p, 0, editXY)
	AddCycle(p, 1, editXY)
	AddCycle(p, 2, editXY)
	c := p.EditCycle()

	MakeReferenceCycle(c, 2)
	checkCycle(t, c)
	if ref, _ := c.Reference(); ref.Index != 2 {
		t.Errorf("reference = %d, want 2", ref.Index)
	}

	// Unknown index keeps the previous reference.
	MakeReferenceCycle(c, 7)
	checkCycle(t, c)
	if ref, _ := c.Reference(); ref.Index != 2 {
		t.Errorf("reference after miss = %d, want 2", ref.Index)
	}

	MakeReferenceCycle(nil, 0)
}

func TestAdvanceCycle(t *testing.T) {
	t.Run("negative removes", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1))
		AddCycle(p, 0, editXY)
		AdvanceCycle(p, -1)
		if p.EditCycle() != nil {
			t.Error("cycle not removed")
		}
	})

	t.Run("missing cycle is ignored", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1))
		AdvanceCycle(p, 1)
		if p.EditCycle() != nil {
			t.Error("AdvanceCycle created a cycle")
		}
	})

	t.Run("prunes inert entries", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1), Pt(2, 2))
		p.cycle = &Cycle{entries: []CycleEntry{
			{Index: 0, Flags: Reference},
			{Index: 1, Flags: EditX},
			{Index: 2, Flags: LastEntry},
		}}
		AdvanceCycle(p, 2)
		c := p.EditCycle()
		checkCycle(t, c)
		want := CycleEntry{Index: 2, Flags: EditX | Reference | LastEntry}
		if c.Len() != 1 || c.Entries()[0] != want {
			t.Errorf("cycle = %+v, want [%+v]", c.Entries(), want)
		}
	})

	t.Run("all inert removes", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1))
		p.cycle = &Cycle{entries: []CycleEntry{{Index: 0, Flags: Reference | LastEntry}}}
		AdvanceCycle(p, 1)
		if p.EditCycle() != nil {
			t.Errorf("cycle = %+v, want nil", p.EditCycle().Entries())
		}
	})

	t.Run("multiple entries promote the newest", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1), Pt(2, 2))
		AddCycle(p, 0, editXY)
		AddCycle(p, 2, editXY)
		AdvanceCycle(p, 9)
		c := p.EditCycle()
		checkCycle(t, c)
		if ref, _ := c.Reference(); ref.Index != 2 {
			t.Errorf("reference = %d, want 2", ref.Index)
		}
		if _, ok := c.Find(9); ok {
			t.Error("newValue applied to a multi-entry cycle")
		}
	})
}

func TestRemoveCyclePath(t *testing.T) {
	a := NewPolygon(Unclosed, Pt(0, 0), Pt(10, 0))
	b := NewPolygon(Unclosed, Pt(10, 0), Pt(10, 10))
	path, err := NewPath(Unclosed, a, b)
	if err != nil {
		t.Fatal(err)
	}
	AddCycle(a, 1, editXY)
	UpdatePath(path)
	RemoveCycle(path)
	if a.EditCycle() != nil || b.EditCycle() != nil {
		t.Error("RemoveCycle left part cycles behind")
	}
}

func TestNextEditPoint(t *testing.T) {
	t.Run("single entry wraps", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1), Pt(2, 2))
		AddCycle(p, 2, editXY)
		if err := NextEditPoint(p, 1); err != nil {
			t.Fatal(err)
		}
		if ref, _ := p.EditCycle().Reference(); ref.Index != 0 {
			t.Errorf("next of last = %d, want 0", ref.Index)
		}
		if err := NextEditPoint(p, -1); err != nil {
			t.Fatal(err)
		}
		if ref, _ := p.EditCycle().Reference(); ref.Index != 2 {
			t.Errorf("previous of first = %d, want 2", ref.Index)
		}
	})

	t.Run("multi entry rotates reference", func(t *testing.T) {
		p := NewPolygon(Unclosed, Pt(0, 0), Pt(1, 1), Pt(2, 2))
		AddCycle(p, 0, editXY)
		AddCycle(p, 2, editXY)
		if err := NextEditPoint(p, 1); err != nil {
			t.Fatal(err)
		}
		c := p.EditCycle()
		checkCycle(t, c)
		if ref, _ := c.Reference(); ref.Index != 2 {
			t.Errorf("reference = %d, want 2", ref.Index)
		}
		if c.Len() != 2 {
			t.Errorf("entries = %d, want 2", c.Len())
		}
	})

	t.Run("arc steps handles", func(t *testing.T) {
		a := NewArc(Pt(0, 0), 10, 10, 0, 90)
		AddCycle(a, ArcYAxis, editXY)
		if err := NextEditPoint(a, 1); err != nil {
			t.Fatal(err)
		}
		if ref, _ := a.EditCycle().Reference(); ref.Index != ArcRadius {
			t.Errorf("next handle = %d, want ArcRadius", ref.Index)
		}
	})

	t.Run("no cycle", func(t *testing.T) {
		if err := NextEditPoint(NewPolygon(Unclosed, Pt(0, 0)), 1); err != ErrNoCycle {
			t.Errorf("error = %v, want ErrNoCycle", err)
		}
	})
}
