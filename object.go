package schem

import "fmt"

// Object is an ordered, index-addressable container of elements with a
// cached bounding box. Objects are placed in other objects through
// Instances.
type Object struct {
	Name     string
	Elements []Element

	// BBox encloses every visible element, refreshed by CalcBBoxValues.
	BBox BBox
	// SchemBBox additionally encloses pin labels. It is nil when the
	// object has no pins.
	SchemBBox *BBox

	// ExactBBox disables the incremental bounding-box shortcut so every
	// update recomputes the box from scratch.
	ExactBBox bool

	bboxValid bool // BBox reflects the elements
	bboxEmpty bool // no element contributed to BBox
}

// NewObject creates an empty object.
func NewObject(name string) *Object {
	return &Object{Name: name}
}

// Len returns the number of elements.
func (o *Object) Len() int {
	return len(o.Elements)
}

// At returns the element at index i.
func (o *Object) At(i int) (Element, error) {
	if i < 0 || i >= len(o.Elements) {
		return nil, fmt.Errorf("element %d of %d: %w", i, len(o.Elements), ErrIndexOutOfRange)
	}
	return o.Elements[i], nil
}

// Append adds elements and folds them into the bounding box.
func (o *Object) Append(elems ...Element) {
	for _, e := range elems {
		o.Elements = append(o.Elements, e)
		CalcBBoxValues(o, e)
	}
}

// RemoveAt deletes the element at index i and recomputes the bounding box.
func (o *Object) RemoveAt(i int) (Element, error) {
	e, err := o.At(i)
	if err != nil {
		return nil, err
	}
	o.Elements = append(o.Elements[:i], o.Elements[i+1:]...)
	CalcBBoxValues(o, nil)
	return e, nil
}

// Replace swaps the element at index i and recomputes the bounding box.
func (o *Object) Replace(i int, e Element) error {
	if _, err := o.At(i); err != nil {
		return err
	}
	o.Elements[i] = e
	CalcBBoxValues(o, nil)
	return nil
}

// Index returns the position of e in the container, or -1.
func (o *Object) Index(e Element) int {
	for i, el := range o.Elements {
		if el == e {
			return i
		}
	}
	return -1
}

// ViewBBox returns the box used when drawing the object. The schematic box
// including pins applies only when the object is the top-level view.
func (o *Object) ViewBBox(topLevel bool) BBox {
	if topLevel && o.SchemBBox != nil {
		return *o.SchemBBox
	}
	return o.BBox
}

// Instance places an object with a position, scale and rotation.
// Overrides holds instance-specific parameter values: each entry replaces
// the object's element at that index for this instance only.
type Instance struct {
	Base
	Object   *Object
	Position Point
	Scale    float64
	Rotation float64

	Overrides map[int]Element
}

// NewInstance places obj at pos with unit scale.
func NewInstance(obj *Object, pos Point) *Instance {
	return &Instance{Object: obj, Position: pos, Scale: 1}
}

// Kind implements Element.
func (i *Instance) Kind() Kind { return KindInstance }

// Transform returns the placement of the instance in its parent frame.
func (i *Instance) Transform() Matrix {
	scale := i.Scale
	if scale == 0 {
		scale = 1
	}
	return Local(i.Position, scale, i.Rotation)
}

// Element returns the instance's view of element idx of its object,
// applying any override.
func (i *Instance) Element(idx int) Element {
	if e, ok := i.Overrides[idx]; ok {
		return e
	}
	return i.Object.Elements[idx]
}

// Calc recomputes the derived geometry of the overrides.
func (i *Instance) Calc() {
	for _, e := range i.Overrides {
		e.Calc()
	}
}

// Quad returns the instance bounding box corners in the parent frame.
func (i *Instance) Quad() [4]Point {
	return bboxQuad(CalcBBoxInst(i), i.Transform())
}

// Extents implements Element.
func (i *Instance) Extents(b *Bounds) {
	if i.Object == nil {
		return
	}
	for _, p := range i.Quad() {
		b.Add(p)
	}
}

// Distance returns zero inside the instance box and the distance to its
// outline elsewhere.
func (i *Instance) Distance(p Point) float64 {
	return quadDistance(i.Quad(), p)
}

// Reverse implements Element. Instances have no point order.
func (i *Instance) Reverse() {}

// Equal implements Element.
func (i *Instance) Equal(other Element) bool {
	o, ok := other.(*Instance)
	if !ok || i.Object != o.Object || i.Position != o.Position ||
		i.Scale != o.Scale || i.Rotation != o.Rotation || len(i.Overrides) != len(o.Overrides) {
		return false
	}
	for k, e := range i.Overrides {
		oe, ok := o.Overrides[k]
		if !ok || !e.Equal(oe) {
			return false
		}
	}
	return true
}

// Clone copies the placement and overrides. The object is shared.
func (i *Instance) Clone() Element {
	c := *i
	c.Base = i.cloneBase()
	if i.Overrides != nil {
		c.Overrides = make(map[int]Element, len(i.Overrides))
		for k, e := range i.Overrides {
			c.Overrides[k] = e.Clone()
		}
	}
	return &c
}
