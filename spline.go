package schem

import "math"

// SplineSegs is the number of polyline segments a spline is sampled into.
// The SplineSegs-1 interior samples are cached by Calc.
const SplineSegs = 20

// refineSteps is the number of halving iterations NearestParameter runs
// after the coarse sample scan.
const refineSteps = 5

// Spline is a cubic Bezier curve with control points Ctrl[0..3].
type Spline struct {
	Base
	Ctrl [4]Point

	// samples holds the interior points at t = i/SplineSegs, i = 1..SplineSegs-1.
	samples [SplineSegs - 1]FloatPoint
}

// NewSpline creates a spline and samples it.
func NewSpline(p0, p1, p2, p3 Point) *Spline {
	s := &Spline{Ctrl: [4]Point{p0, p1, p2, p3}}
	s.Style = Unclosed
	s.Calc()
	return s
}

// Kind implements Element.
func (s *Spline) Kind() Kind { return KindSpline }

// Calc recomputes the cached interior samples.
func (s *Spline) Calc() {
	for i := range s.samples {
		s.samples[i] = SplinePosition(s.Ctrl, float64(i+1)/SplineSegs)
	}
}

// Samples returns the interior samples computed by the last Calc.
func (s *Spline) Samples() []FloatPoint {
	return s.samples[:]
}

// polyline returns the start point, the interior samples and the end point.
func (s *Spline) polyline() []FloatPoint {
	out := make([]FloatPoint, 0, SplineSegs+1)
	out = append(out, s.Ctrl[0].Float())
	out = append(out, s.samples[:]...)
	return append(out, s.Ctrl[3].Float())
}

// Extents folds both endpoints and the interior samples. The off-curve
// control points do not contribute.
func (s *Spline) Extents(b *Bounds) {
	b.Add(s.Ctrl[0])
	b.Add(s.Ctrl[3])
	for _, p := range s.samples {
		b.Add(p.Round())
	}
}

// Distance implements Element.
func (s *Spline) Distance(p Point) float64 {
	return distanceFromSq(polylineSqDistance(s.polyline(), p.Float(), s.Style&Unclosed == 0))
}

// Reverse reverses the control points and resamples.
func (s *Spline) Reverse() {
	s.Ctrl[0], s.Ctrl[3] = s.Ctrl[3], s.Ctrl[0]
	s.Ctrl[1], s.Ctrl[2] = s.Ctrl[2], s.Ctrl[1]
	s.Calc()
}

// Equal implements Element.
func (s *Spline) Equal(other Element) bool {
	o, ok := other.(*Spline)
	return ok && s.sameAttrs(&o.Base) && s.Ctrl == o.Ctrl
}

// Clone implements Element.
func (s *Spline) Clone() Element {
	return &Spline{Base: s.cloneBase(), Ctrl: s.Ctrl, samples: s.samples}
}

// PositionAt evaluates the curve at t.
func (s *Spline) PositionAt(t float64) FloatPoint {
	return SplinePosition(s.Ctrl, t)
}

// TangentAt returns the tangent angle at t in degrees (see SplineTangent).
func (s *Spline) TangentAt(t float64) float64 {
	return SplineTangent(s.Ctrl, t)
}

// NearestParameter returns the curve parameter closest to p and the
// squared distance at that parameter. A coarse scan over the cached
// samples picks a start value that is refined by halving steps. If an
// endpoint is strictly closer than the refined point, t snaps to 0 or 1.
// The result is approximate and meant for interactive picking.
func (s *Spline) NearestParameter(p Point) (t, sqdist float64) {
	target := p.Float()
	sq := func(u float64) float64 {
		return SplinePosition(s.Ctrl, u).Sub(target).LengthSquared()
	}

	sqdist = math.Inf(1)
	for i, sample := range s.samples {
		if d := sample.Sub(target).LengthSquared(); d < sqdist {
			sqdist = d
			t = float64(i+1) / SplineSegs
		}
	}

	step := 0.5 / SplineSegs
	for n := 0; n < refineSteps; n++ {
		for _, u := range [2]float64{t - step, t + step} {
			if u < 0 || u > 1 {
				continue
			}
			if d := sq(u); d < sqdist {
				sqdist, t = d, u
			}
		}
		step /= 2
	}

	if d := s.Ctrl[0].Float().Sub(target).LengthSquared(); d < sqdist {
		sqdist, t = d, 0
	}
	if d := s.Ctrl[3].Float().Sub(target).LengthSquared(); d < sqdist {
		sqdist, t = d, 1
	}
	return t, sqdist
}
