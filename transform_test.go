package schem

import (
	"errors"
	"math"
	"testing"
)

func TestRotateElement(t *testing.T) {
	obj := NewObject("top")
	orig := NewPolygon(Unclosed, Pt(10, 0), Pt(20, 0))
	obj.Append(orig.Clone())
	rec := &UndoRecorder{}

	if err := RotateElement(obj, 0, Pt(0, 0), 90, rec); err != nil {
		t.Fatal(err)
	}
	got := obj.Elements[0].(*Polygon).Points
	if got[0] != Pt(0, -10) || got[1] != Pt(0, -20) {
		t.Errorf("rotated points = %v, want (0,-10) (0,-20)", got)
	}
	if len(rec.Records) != 1 || rec.Records[0].Kind != UndoRotate || !rec.Records[0].Prev.Equal(orig) {
		t.Errorf("undo records = %+v", rec.Records)
	}
	want := BBox{LowerLeft: Pt(0, -20), Height: 10}
	if obj.BBox != want {
		t.Errorf("BBox = %+v, want %+v", obj.BBox, want)
	}
}

func TestRotateArcAndLabel(t *testing.T) {
	obj := NewObject("top")
	arc := NewArc(Pt(0, 0), 10, 10, 0, 90)
	label := NewLabel("U1", Pt(10, 0), 8, 4)
	label.Rotation = 300
	obj.Append(arc, label)

	if err := RotateElement(obj, 0, Pt(0, 0), 90, nil); err != nil {
		t.Fatal(err)
	}
	if arc.Angle1 != -90 || arc.Angle2 != 0 {
		t.Errorf("arc angles = %v..%v, want -90..0", arc.Angle1, arc.Angle2)
	}

	if err := RotateElement(obj, 1, Pt(0, 0), 90, nil); err != nil {
		t.Fatal(err)
	}
	if label.Position != Pt(0, -10) || label.Rotation != 30 {
		t.Errorf("label = %v rot %v, want (0,-10) rot 30", label.Position, label.Rotation)
	}
}

func TestFlipElement(t *testing.T) {
	tests := []struct {
		name       string
		horizontal bool
		a1, a2     float64
	}{
		{"horizontal", true, 90, 180},
		{"vertical", false, -90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name+" arc", func(t *testing.T) {
			obj := NewObject("top")
			arc := NewArc(Pt(0, 0), 10, 10, 0, 90)
			obj.Append(arc)
			if err := FlipElement(obj, 0, Pt(0, 0), tt.horizontal, nil); err != nil {
				t.Fatal(err)
			}
			if arc.Angle1 != tt.a1 || arc.Angle2 != tt.a2 {
				t.Errorf("angles = %v..%v, want %v..%v", arc.Angle1, arc.Angle2, tt.a1, tt.a2)
			}
		})
	}

	t.Run("polygon about center", func(t *testing.T) {
		obj := NewObject("top")
		poly := NewPolygon(Unclosed, Pt(0, 0), Pt(10, 5))
		obj.Append(poly)
		if err := FlipElement(obj, 0, Pt(5, 0), true, nil); err != nil {
			t.Fatal(err)
		}
		if poly.Points[0] != Pt(10, 0) || poly.Points[1] != Pt(0, 5) {
			t.Errorf("points = %v", poly.Points)
		}
	})

	t.Run("instance", func(t *testing.T) {
		sub := NewObject("sub")
		sub.Append(NewPolygon(Unclosed, Pt(0, 0), Pt(10, 0)))
		obj := NewObject("top")
		inst := NewInstance(sub, Pt(0, 0))
		obj.Append(inst)

		if err := FlipElement(obj, 0, Pt(0, 0), true, nil); err != nil {
			t.Fatal(err)
		}
		if inst.Scale != -1 || inst.Rotation != 0 {
			t.Errorf("horizontal flip: scale %v rot %v", inst.Scale, inst.Rotation)
		}
		if err := FlipElement(obj, 0, Pt(0, 0), false, nil); err != nil {
			t.Fatal(err)
		}
		if inst.Scale != 1 || inst.Rotation != 180 {
			t.Errorf("vertical flip: scale %v rot %v", inst.Scale, inst.Rotation)
		}
	})
}

func TestRescaleElement(t *testing.T) {
	obj := NewObject("top")
	arc := NewArc(Pt(10, 10), 10, 5, 0, 360)
	arc.Width = 1.5
	label := NewLabel("R", Pt(20, 0), 4, 4)
	label.Scale = 0
	obj.Append(arc, label)
	rec := &UndoRecorder{}

	if err := RescaleElement(obj, 0, Pt(0, 0), 2, rec); err != nil {
		t.Fatal(err)
	}
	if arc.Position != Pt(20, 20) || arc.Radius != 20 || arc.YAxis != 10 {
		t.Errorf("arc = %v r %d y %d", arc.Position, arc.Radius, arc.YAxis)
	}
	if math.Abs(arc.Width-3) > 1e-12 {
		t.Errorf("width = %v, want 3", arc.Width)
	}
	if rec.Records[0].Kind != UndoRescale {
		t.Errorf("record kind = %v, want rescale", rec.Records[0].Kind)
	}

	if err := RescaleElement(obj, 1, Pt(0, 0), 2, nil); err != nil {
		t.Fatal(err)
	}
	if label.Scale != 2 || label.Position != Pt(40, 0) {
		t.Errorf("label scale %v at %v, want 2 at (40,0)", label.Scale, label.Position)
	}
}

func TestTransformOutOfRange(t *testing.T) {
	obj := NewObject("top")
	if err := RotateElement(obj, 0, Pt(0, 0), 90, nil); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
}
