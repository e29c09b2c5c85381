package scene

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"github.com/gogpu/schem"
)

// Errors returned by Build.
var (
	ErrDuplicateObject   = errors.New("scene: duplicate object")
	ErrUnknownObject     = errors.New("scene: unknown object")
	ErrRecursiveInstance = errors.New("scene: object instances itself")
	ErrBadOverride       = errors.New("scene: override index out of range")
)

// Scene is a set of named objects built from a File.
type Scene struct {
	// Objects in declaration order.
	Objects []*schem.Object

	byName map[string]*schem.Object
}

// Top returns the first declared object, or nil for an empty scene.
func (s *Scene) Top() *schem.Object {
	if len(s.Objects) == 0 {
		return nil
	}
	return s.Objects[0]
}

// Object returns the object declared with name.
func (s *Scene) Object(name string) (*schem.Object, bool) {
	obj, ok := s.byName[name]
	return obj, ok
}

type override struct {
	decl *OverrideDecl
	inst *schem.Instance
}

type builder struct {
	scene     *Scene
	overrides []override
}

// Build converts a parsed file into objects. Instances may refer to
// objects declared later in the file. Bounding boxes are computed once
// every object is complete, innermost objects first.
func Build(f *File) (*Scene, error) {
	b := &builder{scene: &Scene{byName: make(map[string]*schem.Object)}}

	for _, d := range f.Objects {
		if _, ok := b.scene.byName[d.Name]; ok {
			return nil, fmt.Errorf("%s: %q: %w", d.Pos, d.Name, ErrDuplicateObject)
		}
		obj := schem.NewObject(d.Name)
		b.scene.byName[d.Name] = obj
		b.scene.Objects = append(b.scene.Objects, obj)
	}

	// Elements are stored directly; Object.Append would measure instances
	// of objects that are not built yet.
	for i, d := range f.Objects {
		obj := b.scene.Objects[i]
		for _, ed := range d.Elements {
			e, err := b.element(ed)
			if err != nil {
				return nil, fmt.Errorf("object %s: %w", d.Name, err)
			}
			obj.Elements = append(obj.Elements, e)
		}
	}

	for _, o := range b.overrides {
		if o.decl.Index < 0 || o.decl.Index >= o.inst.Object.Len() {
			return nil, fmt.Errorf("%s: override %d of %s: %w",
				o.decl.Element.Pos, o.decl.Index, o.inst.Object.Name, ErrBadOverride)
		}
	}

	order, err := postOrder(b.scene.Objects)
	if err != nil {
		return nil, err
	}
	for _, obj := range order {
		schem.CalcBBoxValues(obj, nil)
	}

	schem.Logger().Debug("scene: built", slog.Int("objects", len(b.scene.Objects)))
	return b.scene, nil
}

func (b *builder) element(d *ElementDecl) (schem.Element, error) {
	var (
		e   schem.Element
		err error
	)
	switch {
	case d.Polygon != nil:
		e, err = polygon(d.Polygon)
	case d.Arc != nil:
		e, err = arc(d.Arc)
	case d.Spline != nil:
		e, err = spline(d.Spline)
	case d.Path != nil:
		e, err = path(d.Path)
	case d.Label != nil:
		e, err = label(d.Label)
	case d.Instance != nil:
		e, err = b.instance(d.Instance)
	default:
		err = errors.New("empty element")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Pos, err)
	}
	return e, nil
}

func points(ds []*PointDecl) ([]schem.Point, error) {
	pts := make([]schem.Point, len(ds))
	for i, d := range ds {
		pts[i] = schem.Pt(d.X, d.Y)
	}
	if err := schem.CheckBounds(pts...); err != nil {
		return nil, err
	}
	return pts, nil
}

func polygon(d *PolygonDecl) (*schem.Polygon, error) {
	pts, err := points(d.Points)
	if err != nil {
		return nil, err
	}
	p := schem.NewPolygon(0, pts...)
	if err := applyAttrs(&p.Base, d.Attrs); err != nil {
		return nil, err
	}
	return p, nil
}

func arc(d *ArcDecl) (*schem.Arc, error) {
	pts, err := points([]*PointDecl{d.Center})
	if err != nil {
		return nil, err
	}
	a := schem.NewArc(pts[0], d.Radius, d.YAxis, d.Angle1, d.Angle2)
	if err := applyAttrs(&a.Base, d.Attrs); err != nil {
		return nil, err
	}
	return a, nil
}

func spline(d *SplineDecl) (*schem.Spline, error) {
	pts, err := points(d.Ctrl)
	if err != nil {
		return nil, err
	}
	s := schem.NewSpline(pts[0], pts[1], pts[2], pts[3])
	if err := applyAttrs(&s.Base, d.Attrs); err != nil {
		return nil, err
	}
	return s, nil
}

func path(d *PathDecl) (*schem.Path, error) {
	parts := make([]schem.Element, 0, len(d.Parts))
	for _, pd := range d.Parts {
		var (
			part schem.Element
			err  error
		)
		if pd.Polygon != nil {
			part, err = polygon(pd.Polygon)
		} else {
			part, err = spline(pd.Spline)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pd.Pos, err)
		}
		parts = append(parts, part)
	}
	p, err := schem.NewPath(0, parts...)
	if err != nil {
		return nil, err
	}
	if err := applyAttrs(&p.Base, d.Attrs); err != nil {
		return nil, err
	}
	return p, nil
}

func label(d *LabelDecl) (*schem.Label, error) {
	pts, err := points([]*PointDecl{d.Position})
	if err != nil {
		return nil, err
	}
	l := schem.NewLabel(d.Text, pts[0], d.Width, d.Height)
	for _, o := range d.Opts {
		switch {
		case o.Rotation != nil:
			l.Rotation = *o.Rotation
		case o.Scale != nil:
			l.Scale = *o.Scale
		case o.Color != "":
			c, err := parseColor(o.Color)
			if err != nil {
				return nil, err
			}
			l.Color = c
		default:
			l.Pin = pinKinds[o.Pin]
		}
	}
	return l, nil
}

var pinKinds = map[string]schem.PinKind{
	"local":  schem.PinLocal,
	"global": schem.PinGlobal,
	"info":   schem.PinInfo,
}

func (b *builder) instance(d *InstanceDecl) (*schem.Instance, error) {
	obj, ok := b.scene.byName[d.Object]
	if !ok {
		return nil, fmt.Errorf("%q: %w", d.Object, ErrUnknownObject)
	}
	pts, err := points([]*PointDecl{d.Position})
	if err != nil {
		return nil, err
	}
	inst := schem.NewInstance(obj, pts[0])
	for _, o := range d.Opts {
		if o.Rotation != nil {
			inst.Rotation = *o.Rotation
		} else {
			inst.Scale = *o.Scale
		}
	}
	for _, od := range d.Overrides {
		e, err := b.element(od.Element)
		if err != nil {
			return nil, err
		}
		if inst.Overrides == nil {
			inst.Overrides = make(map[int]schem.Element)
		}
		inst.Overrides[od.Index] = e
		b.overrides = append(b.overrides, override{decl: od, inst: inst})
	}
	return inst, nil
}

func applyAttrs(base *schem.Base, attrs []*Attr) error {
	for _, a := range attrs {
		switch {
		case a.Width != nil:
			base.Width = *a.Width
		case a.Color != "":
			c, err := parseColor(a.Color)
			if err != nil {
				return err
			}
			base.Color = c
		default:
			switch a.Flag {
			case "closed":
				base.Style &^= schem.Unclosed
			case "unclosed":
				base.Style |= schem.Unclosed
			case "dashed":
				base.Style |= schem.Dashed
			case "dotted":
				base.Style |= schem.Dotted
			case "noborder":
				base.Style |= schem.NoBorder
			case "filled":
				base.Style |= schem.Filled
			case "square":
				base.Style |= schem.SquareCap
			case "param":
				base.Param = schem.ParamDefault
			case "instparam":
				base.Param = schem.ParamInstance
			}
		}
	}
	return nil
}

// parseColor parses "#rrggbb".
func parseColor(s string) (color.Color, error) {
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %s: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// postOrder lists objects so that every object follows the objects it
// instances. It fails on instance cycles.
func postOrder(objs []*schem.Object) ([]*schem.Object, error) {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[*schem.Object]int, len(objs))
	order := make([]*schem.Object, 0, len(objs))

	var visit func(obj *schem.Object) error
	visit = func(obj *schem.Object) error {
		switch state[obj] {
		case visiting:
			return fmt.Errorf("%s: %w", obj.Name, ErrRecursiveInstance)
		case done:
			return nil
		}
		state[obj] = visiting
		for _, e := range obj.Elements {
			for _, child := range instanced(e) {
				if err := visit(child); err != nil {
					return err
				}
			}
		}
		state[obj] = done
		order = append(order, obj)
		return nil
	}
	for _, obj := range objs {
		if err := visit(obj); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// instanced returns the objects placed by e, including those placed by its
// overrides.
func instanced(e schem.Element) []*schem.Object {
	inst, ok := e.(*schem.Instance)
	if !ok {
		return nil
	}
	objs := []*schem.Object{inst.Object}
	for _, o := range inst.Overrides {
		objs = append(objs, instanced(o)...)
	}
	return objs
}
