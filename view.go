package schem

import "fmt"

// Default hit-test tolerance coefficients: WireLim = A + B/(Scale + C).
const (
	DefaultWireLimBase   = 2.0
	DefaultWireLimRange  = 8.0
	DefaultWireLimOffset = 0.05
)

// ViewContext is the read-only view state consumed by hit testing, grid
// snapping and device/model conversion. It is passed explicitly to every
// operation that needs it.
type ViewContext struct {
	// Scale is device pixels per model unit.
	Scale float64
	// Rotation is the clockwise view rotation in degrees.
	Rotation float64
	// Pan is the model position shown at the device lower-left corner.
	Pan Point
	// Width and Height are the device window size in pixels.
	Width, Height int

	// GridSpace is the snap grid spacing in model units.
	GridSpace float64
	// Snap enables grid snapping of cursor positions.
	Snap bool

	WireLimBase, WireLimRange, WireLimOffset float64
}

// NewViewContext returns a unit-scale view of the given device size with
// default tolerances and a 16-unit snap grid.
func NewViewContext(width, height int) *ViewContext {
	return &ViewContext{
		Scale:         1,
		Width:         width,
		Height:        height,
		GridSpace:     16,
		WireLimBase:   DefaultWireLimBase,
		WireLimRange:  DefaultWireLimRange,
		WireLimOffset: DefaultWireLimOffset,
	}
}

// WireLim returns the hit-test tolerance in model units. It is large when
// zoomed out and shrinks toward WireLimBase, never to zero, when zoomed
// in.
func (v *ViewContext) WireLim() float64 {
	return v.WireLimBase + v.WireLimRange/(v.Scale+v.WireLimOffset)
}

// ctm builds the model-to-device transform for a scale and pan. Device
// space is y-down with its origin at the top-left of the window.
func (v *ViewContext) ctm(scale float64, pan Point) Matrix {
	return Translate(0, float64(v.Height)).
		Multiply(Scale(scale, -scale)).
		Multiply(Rotate(v.Rotation)).
		Multiply(Translate(float64(-pan.X), float64(-pan.Y)))
}

// CTM returns the current model-to-device transform.
func (v *ViewContext) CTM() Matrix {
	return v.ctm(v.Scale, v.Pan)
}

// ToModel converts a device position (cursor) into model space, applying
// grid snapping when enabled.
func (v *ViewContext) ToModel(device Point) (Point, error) {
	inv, err := v.CTM().Invert()
	if err != nil {
		return Point{}, err
	}
	p := inv.TransformPoint(device)
	if v.Snap {
		p = v.SnapPoint(p)
	}
	return p, nil
}

// ToDevice converts a model position into device space.
func (v *ViewContext) ToDevice(model Point) Point {
	return v.CTM().TransformPoint(model)
}

// SnapPoint rounds p to the nearest grid intersection, ties away from
// zero.
func (v *ViewContext) SnapPoint(p Point) Point {
	return Point{X: SnapValue(float64(p.X), v.GridSpace), Y: SnapValue(float64(p.Y), v.GridSpace)}
}

// checkWindow verifies that every window corner maps to a model position
// inside the coordinate range under the given scale and pan.
func (v *ViewContext) checkWindow(scale float64, pan Point) error {
	inv, err := v.ctm(scale, pan).Invert()
	if err != nil {
		return err
	}
	corners := []Point{{}, {X: v.Width}, {X: v.Width, Y: v.Height}, {Y: v.Height}}
	for _, c := range corners {
		q := inv.TransformFloat(c.Float())
		if q.X < CoordMin || q.X > CoordMax || q.Y < CoordMin || q.Y > CoordMax {
			return fmt.Errorf("scale %g pan %v: %w", scale, pan, ErrCoordOverflow)
		}
	}
	return nil
}

// SetScale changes the zoom. A scale that would let the window show
// positions outside the coordinate range is refused and the previous
// scale kept.
func (v *ViewContext) SetScale(scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("scale %g: %w", scale, ErrSingularMatrix)
	}
	if err := v.checkWindow(scale, v.Pan); err != nil {
		return err
	}
	v.Scale = scale
	return nil
}

// SetPan scrolls the view. A pan that would overflow the coordinate range
// is refused.
func (v *ViewContext) SetPan(pan Point) error {
	if err := v.checkWindow(v.Scale, pan); err != nil {
		return err
	}
	v.Pan = pan
	return nil
}
