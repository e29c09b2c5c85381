package schem

import (
	"math"
	"testing"
)

func TestPolygonReverse(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"empty", nil},
		{"single", []Point{{1, 1}}},
		{"even", []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}},
		{"odd", []Point{{0, 0}, {5, 5}, {10, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolygon(Unclosed, tt.pts...)
			orig := p.Clone()

			p.Reverse()
			for i, pt := range p.Points {
				if want := tt.pts[len(tt.pts)-1-i]; pt != want {
					t.Errorf("reversed[%d] = %v, want %v", i, pt, want)
				}
			}
			p.Reverse()
			if !p.Equal(orig) {
				t.Errorf("double reverse = %v, want %v", p.Points, tt.pts)
			}
		})
	}
}

func TestPolygonEqualIsOrderSensitive(t *testing.T) {
	a := NewPolygon(Unclosed, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	b := NewPolygon(Unclosed, Pt(10, 10), Pt(10, 0), Pt(0, 0))
	if a.Equal(b) {
		t.Error("polygons with reversed order compare equal")
	}
	b.Reverse()
	if !a.Equal(b) {
		t.Error("identical polygons compare unequal")
	}
	c := NewPolygon(0, a.Points...)
	if a.Equal(c) {
		t.Error("closed and unclosed polygons compare equal")
	}
}

func TestPolygonDedup(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		in    []Point
		want  []Point
	}{
		{"consecutive", Unclosed, []Point{{0, 0}, {0, 0}, {5, 0}, {5, 0}, {5, 5}}, []Point{{0, 0}, {5, 0}, {5, 5}}},
		{"closing duplicate", 0, []Point{{0, 0}, {5, 0}, {5, 5}, {0, 0}}, []Point{{0, 0}, {5, 0}, {5, 5}}},
		{"open keeps closing point", Unclosed, []Point{{0, 0}, {5, 0}, {0, 0}}, []Point{{0, 0}, {5, 0}, {0, 0}}},
		{"all same", Unclosed, []Point{{3, 3}, {3, 3}}, []Point{{3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolygon(tt.style, tt.in...)
			p.Dedup()
			if len(p.Points) != len(tt.want) {
				t.Fatalf("Dedup = %v, want %v", p.Points, tt.want)
			}
			for i := range tt.want {
				if p.Points[i] != tt.want[i] {
					t.Errorf("Dedup = %v, want %v", p.Points, tt.want)
					break
				}
			}
		})
	}
}

func TestPolygonDistance(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	open := NewPolygon(Unclosed, square...)
	closed := NewPolygon(0, square...)

	// (-3, 5) is 3 from the closing edge and 5 from the nearest open vertex.
	p := Pt(-3, 5)
	if got := closed.Distance(p); math.Abs(got-3) > 1e-9 {
		t.Errorf("closed Distance = %v, want 3", got)
	}
	if got := open.Distance(p); math.Abs(got-math.Sqrt(34)) > 1e-9 {
		t.Errorf("open Distance = %v, want sqrt(34)", got)
	}
}

func TestDegenerate(t *testing.T) {
	tests := []struct {
		name string
		e    Element
		want bool
	}{
		{"wire", NewPolygon(Unclosed, Pt(0, 0), Pt(10, 0)), false},
		{"zero length wire", NewPolygon(Unclosed, Pt(3, 3), Pt(3, 3)), true},
		{"single point", NewPolygon(Unclosed, Pt(3, 3)), true},
		{"arc", NewArc(Pt(0, 0), 10, 10, 0, 90), false},
		{"arc zero radius", NewArc(Pt(0, 0), 0, 10, 0, 90), true},
		{"arc zero span", NewArc(Pt(0, 0), 10, 10, 45, 45), true},
		{"spline", NewSpline(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)), false},
		{"spline collapsed", NewSpline(Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)), true},
		{"label", NewLabel("A", Pt(0, 0), 10, 4), false},
		{"empty label", NewLabel("", Pt(0, 0), 0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Degenerate(tt.e); got != tt.want {
				t.Errorf("Degenerate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindArc, "arc"},
		{KindPolygon, "polygon"},
		{KindSpline, "spline"},
		{KindPath, "path"},
		{KindLabel, "label"},
		{KindInstance, "instance"},
		{KindArc | KindPolygon, "mixed"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
