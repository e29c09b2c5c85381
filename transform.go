package schem

import "math"

// Element mutators that rotate, flip or rescale about a center. Each one
// records the previous element with the undo log before committing and
// refreshes the object's bounding box afterwards.

// RotateElement rotates element index of obj clockwise by degrees about
// center.
func RotateElement(obj *Object, index int, center Point, degrees float64, undo UndoLog) error {
	m := Translate(float64(center.X), float64(center.Y)).
		Multiply(Rotate(degrees)).
		Multiply(Translate(float64(-center.X), float64(-center.Y)))
	return mutate(obj, index, UndoRotate, undo, func(e Element) {
		rotateElement(e, m, degrees)
	})
}

// FlipElement mirrors element index of obj about the vertical line through
// center (horizontal flip) or the horizontal line (vertical flip).
func FlipElement(obj *Object, index int, center Point, horizontal bool, undo UndoLog) error {
	m := Translate(float64(center.X), float64(center.Y))
	if horizontal {
		m = m.Multiply(Scale(-1, 1))
	} else {
		m = m.Multiply(Scale(1, -1))
	}
	m = m.Multiply(Translate(float64(-center.X), float64(-center.Y)))
	return mutate(obj, index, UndoFlip, undo, func(e Element) {
		flipElement(e, m, horizontal)
	})
}

// RescaleElement scales element index of obj by factor about center.
func RescaleElement(obj *Object, index int, center Point, factor float64, undo UndoLog) error {
	m := Translate(float64(center.X), float64(center.Y)).
		Multiply(Scale(factor, factor)).
		Multiply(Translate(float64(-center.X), float64(-center.Y)))
	return mutate(obj, index, UndoRescale, undo, func(e Element) {
		rescaleElement(e, m, factor)
	})
}

func mutate(obj *Object, index int, kind UndoKind, undo UndoLog, fn func(Element)) error {
	e, err := obj.At(index)
	if err != nil {
		return err
	}
	if undo == nil {
		undo = nopUndo{}
	}
	undo.RegisterForUndo(kind, PhaseEnd, e.Clone())
	fn(e)
	e.Calc()
	CalcBBoxValues(obj, nil)
	return nil
}

// mapPoints applies m to the control points of polygons, splines and
// paths. It reports whether e was handled.
func mapPoints(e Element, m Matrix) bool {
	switch v := e.(type) {
	case *Polygon:
		for i := range v.Points {
			v.Points[i] = m.TransformPoint(v.Points[i])
		}
	case *Spline:
		for i := range v.Ctrl {
			v.Ctrl[i] = m.TransformPoint(v.Ctrl[i])
		}
	case *Path:
		for _, part := range v.Parts {
			mapPoints(part, m)
		}
	default:
		return false
	}
	return true
}

func rotateElement(e Element, m Matrix, degrees float64) {
	if mapPoints(e, m) {
		return
	}
	switch v := e.(type) {
	case *Arc:
		v.Position = m.TransformPoint(v.Position)
		v.Angle1 -= degrees
		v.Angle2 -= degrees
		v.normalizeAngles()
	case *Label:
		v.Position = m.TransformPoint(v.Position)
		v.Rotation = normalizeDegrees(v.Rotation + degrees)
	case *Instance:
		v.Position = m.TransformPoint(v.Position)
		v.Rotation = normalizeDegrees(v.Rotation + degrees)
	}
}

func flipElement(e Element, m Matrix, horizontal bool) {
	if mapPoints(e, m) {
		return
	}
	switch v := e.(type) {
	case *Arc:
		v.Position = m.TransformPoint(v.Position)
		a1, a2 := v.Angle1, v.Angle2
		if horizontal {
			v.Angle1, v.Angle2 = 180-a2, 180-a1
		} else {
			v.Angle1, v.Angle2 = -a2, -a1
		}
		v.normalizeAngles()
	case *Label:
		v.Position = m.TransformPoint(v.Position)
	case *Instance:
		v.Position = m.TransformPoint(v.Position)
		v.Scale = -v.Scale
		if !horizontal {
			v.Rotation = normalizeDegrees(v.Rotation + 180)
		}
	}
}

func rescaleElement(e Element, m Matrix, factor float64) {
	b := e.base()
	b.Width *= factor
	if mapPoints(e, m) {
		return
	}
	switch v := e.(type) {
	case *Arc:
		v.Position = m.TransformPoint(v.Position)
		v.Radius = int(math.Round(float64(v.Radius) * factor))
		v.YAxis = int(math.Round(float64(v.YAxis) * factor))
	case *Label:
		v.Position = m.TransformPoint(v.Position)
		if v.Scale == 0 {
			v.Scale = 1
		}
		v.Scale *= factor
	case *Instance:
		v.Position = m.TransformPoint(v.Position)
		if v.Scale == 0 {
			v.Scale = 1
		}
		v.Scale *= factor
	}
}

// normalizeDegrees maps an angle into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
