package schem

import "testing"

// fullBounds folds every element of obj from scratch, pins excluded.
func fullBounds(obj *Object) Bounds {
	b, sb := EmptyBounds(), EmptyBounds()
	for _, e := range obj.Elements {
		if !skipInBBox(e) {
			CalcBBoxSingle(e, &b, &sb)
		}
	}
	return b
}

func TestCalcBBoxValues(t *testing.T) {
	obj := NewObject("box")
	obj.Append(
		NewPolygon(Unclosed, Pt(0, 0), Pt(100, 50)),
		NewArc(Pt(100, 50), 20, 20, 0, 90),
	)
	want := BBox{LowerLeft: Pt(0, 0), Width: 120, Height: 70}
	if obj.BBox != want {
		t.Errorf("BBox = %+v, want %+v", obj.BBox, want)
	}

	// Growing past the boundary triggers a recompute.
	obj.Append(NewPolygon(Unclosed, Pt(-10, -10), Pt(0, 0)))
	want = BBox{LowerLeft: Pt(-10, -10), Width: 130, Height: 80}
	if obj.BBox != want {
		t.Errorf("grown BBox = %+v, want %+v", obj.BBox, want)
	}
}

func TestCalcBBoxValuesNeverUnderReports(t *testing.T) {
	a := NewPolygon(Unclosed, Pt(0, 0), Pt(100, 100))
	b := NewPolygon(Unclosed, Pt(10, 10), Pt(20, 20))
	obj := NewObject("shrink")
	obj.Append(a, b)

	moves := [][2]Point{
		{{30, 30}, {40, 40}},
		{{-50, 5}, {15, 15}},
		{{12, 12}, {14, 14}},
		{{5, 5}, {200, 6}},
		{{11, 11}, {19, 19}},
	}
	for _, m := range moves {
		a.Points[0], a.Points[1] = m[0], m[1]
		CalcBBoxValues(obj, a)
		full := fullBounds(obj)
		if !obj.BBox.Bounds().Contains(full) {
			t.Fatalf("after move to %v: incremental %+v does not contain full %+v", m, obj.BBox, full.BBox())
		}
	}
}

func TestUpdateBBoxShrinks(t *testing.T) {
	a := NewPolygon(Unclosed, Pt(0, 0), Pt(100, 100))
	b := NewPolygon(Unclosed, Pt(10, 10), Pt(20, 20))
	obj := NewObject("shrink")
	obj.Append(a, b)

	prev := CalcExtents(a)
	a.Points[0], a.Points[1] = Pt(30, 30), Pt(40, 40)

	// The heuristic keeps the stale box.
	CalcBBoxValues(obj, a)
	if obj.BBox.Width != 100 {
		t.Fatalf("incremental BBox = %+v, want stale 100x100", obj.BBox)
	}

	UpdateBBox(obj, a, prev)
	want := BBox{LowerLeft: Pt(10, 10), Width: 30, Height: 30}
	if obj.BBox != want {
		t.Errorf("UpdateBBox = %+v, want %+v", obj.BBox, want)
	}

	// A move that leaves the extremes alone keeps the box.
	prev = CalcExtents(b)
	b.Points[1] = Pt(25, 25)
	UpdateBBox(obj, b, prev)
	if obj.BBox != want {
		t.Errorf("interior move changed BBox to %+v", obj.BBox)
	}
}

func TestExactBBox(t *testing.T) {
	a := NewPolygon(Unclosed, Pt(0, 0), Pt(100, 100))
	obj := NewObject("exact")
	obj.ExactBBox = true
	obj.Append(a, NewPolygon(Unclosed, Pt(10, 10), Pt(20, 20)))

	a.Points[0], a.Points[1] = Pt(30, 30), Pt(40, 40)
	CalcBBoxValues(obj, a)
	want := BBox{LowerLeft: Pt(10, 10), Width: 30, Height: 30}
	if obj.BBox != want {
		t.Errorf("BBox = %+v, want %+v", obj.BBox, want)
	}
}

func TestBBoxPins(t *testing.T) {
	obj := NewObject("pins")
	obj.Append(NewPolygon(0, Pt(0, 0), Pt(40, 0), Pt(40, 40), Pt(0, 40)))
	if obj.SchemBBox != nil {
		t.Fatal("SchemBBox set without pins")
	}

	pin := NewLabel("IN", Pt(-30, 10), 10, 5)
	pin.Pin = PinLocal
	obj.Append(pin)

	want := BBox{LowerLeft: Pt(0, 0), Width: 40, Height: 40}
	if obj.BBox != want {
		t.Errorf("BBox = %+v, want %+v (pins excluded)", obj.BBox, want)
	}
	if obj.SchemBBox == nil {
		t.Fatal("SchemBBox nil with a pin")
	}
	wantSchem := BBox{LowerLeft: Pt(-30, 0), Width: 70, Height: 40}
	if *obj.SchemBBox != wantSchem {
		t.Errorf("SchemBBox = %+v, want %+v", *obj.SchemBBox, wantSchem)
	}
	if obj.ViewBBox(true) != wantSchem || obj.ViewBBox(false) != want {
		t.Error("ViewBBox does not pick the box by level")
	}
}

func TestBBoxSkipsInstanceParams(t *testing.T) {
	param := NewPolygon(Unclosed, Pt(0, 0), Pt(-20, 0))
	param.Param = ParamInstance

	sub := NewObject("sub")
	sub.Append(NewPolygon(0, Pt(0, 0), Pt(10, 0), Pt(10, 10)), param)
	want := BBox{LowerLeft: Pt(0, 0), Width: 10, Height: 10}
	if sub.BBox != want {
		t.Errorf("object BBox = %+v, want %+v", sub.BBox, want)
	}

	inst := NewInstance(sub, Pt(0, 0))
	wantInst := BBox{LowerLeft: Pt(-20, 0), Width: 30, Height: 10}
	if got := CalcBBoxInst(inst); got != wantInst {
		t.Errorf("CalcBBoxInst = %+v, want %+v", got, wantInst)
	}
}

func TestCalcBBoxInstOverrides(t *testing.T) {
	param := NewPolygon(Unclosed, Pt(0, 0), Pt(5, 5))
	param.Param = ParamDefault

	sub := NewObject("sub")
	sub.Append(NewPolygon(Unclosed, Pt(0, 0), Pt(10, 10)), param)

	plain := NewInstance(sub, Pt(0, 0))
	if got := CalcBBoxInst(plain); got != sub.BBox {
		t.Errorf("no overrides: %+v, want object box %+v", got, sub.BBox)
	}

	wide := NewInstance(sub, Pt(0, 0))
	wide.Overrides = map[int]Element{1: NewPolygon(Unclosed, Pt(0, 0), Pt(30, 5))}
	want := BBox{LowerLeft: Pt(0, 0), Width: 30, Height: 10}
	if got := CalcBBoxInst(wide); got != want {
		t.Errorf("override: %+v, want %+v", got, want)
	}
}

func TestInstanceExtents(t *testing.T) {
	sub := NewObject("sub")
	sub.Append(NewPolygon(0, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)))

	inst := NewInstance(sub, Pt(100, 100))
	inst.Scale = 2
	b := CalcExtents(inst)
	if b.Min != Pt(100, 100) || b.Max != Pt(120, 120) {
		t.Errorf("extents = %+v, want (100,100)-(120,120)", b)
	}

	top := NewObject("top")
	top.Append(inst)
	want := BBox{LowerLeft: Pt(100, 100), Width: 20, Height: 20}
	if top.BBox != want {
		t.Errorf("top BBox = %+v, want %+v", top.BBox, want)
	}
}

func TestEmptyObjectBBox(t *testing.T) {
	obj := NewObject("empty")
	CalcBBoxValues(obj, nil)
	if obj.BBox != (BBox{}) || !obj.bboxEmpty {
		t.Errorf("empty object BBox = %+v", obj.BBox)
	}

	// The first element must not be folded into the zero box.
	obj.Append(NewPolygon(Unclosed, Pt(50, 50), Pt(60, 60)))
	want := BBox{LowerLeft: Pt(50, 50), Width: 10, Height: 10}
	if obj.BBox != want {
		t.Errorf("BBox = %+v, want %+v", obj.BBox, want)
	}
}
