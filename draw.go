package schem

import (
	"fmt"
	"image/color"
)

// Renderer strokes and/or fills a device-space point list according to
// style. The geometry engine never draws directly; it hands transformed
// point lists to a Renderer.
type Renderer interface {
	DrawPoints(pts []Point, style Style, width float64, c color.Color) error
}

// DrawObject walks obj, transforming every element through the stack and
// passing it to r. Instances are entered by pushing a child frame. The
// stack is left as it was found.
func DrawObject(r Renderer, obj *Object, stack *MatrixStack) error {
	return drawObject(r, obj, nil, stack, true)
}

func drawObject(r Renderer, obj *Object, inst *Instance, stack *MatrixStack, topLevel bool) error {
	for idx, e := range obj.Elements {
		if inst != nil {
			e = inst.Element(idx)
		}
		if err := drawElement(r, e, stack, topLevel); err != nil {
			return fmt.Errorf("%s element %d: %w", obj.Name, idx, err)
		}
	}
	return nil
}

func drawElement(r Renderer, e Element, stack *MatrixStack, topLevel bool) error {
	m := stack.Top()
	b := e.base()
	width := b.Width * m.ScaleFactor()

	switch v := e.(type) {
	case *Polygon:
		return r.DrawPoints(m.TransformPoints(v.Points), v.Style, width, b.Color)
	case *Spline:
		return r.DrawPoints(m.TransformFloats(v.polyline()), v.Style, width, b.Color)
	case *Arc:
		return r.DrawPoints(m.TransformFloats(v.Points), v.Style, width, b.Color)
	case *Path:
		return r.DrawPoints(m.TransformFloats(pathOutline(v)), v.Style, width, b.Color)
	case *Label:
		// Text is drawn by the text collaborator; only top-level pins get
		// a marker outline here.
		if !v.IsPin() || !topLevel {
			return nil
		}
		q := v.Quad()
		return r.DrawPoints(m.TransformPoints(q[:]), Dotted, 0, b.Color)
	case *Instance:
		if v.Object == nil {
			return nil
		}
		scale := v.Scale
		if scale == 0 {
			scale = 1
		}
		stack.Push()
		defer func() { _ = stack.Pop() }()
		stack.PreMultiply(v.Position, scale, v.Rotation)
		return drawObject(r, v.Object, v, stack, false)
	}
	return nil
}

// pathOutline joins the polylines of all parts, dropping the repeated
// point at each joint.
func pathOutline(p *Path) []FloatPoint {
	var out []FloatPoint
	for _, part := range p.Parts {
		var pts []FloatPoint
		switch v := part.(type) {
		case *Polygon:
			pts = v.floats()
		case *Spline:
			pts = v.polyline()
		}
		if len(out) > 0 && len(pts) > 0 && out[len(out)-1] == pts[0] {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out
}
