// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/schem"
)

// SoftwareRenderer is a CPU-based schem.Renderer.
//
// Each DrawPoints call rasterizes at most two coverage masks (fill and
// stroke) with an anti-aliasing vector.Rasterizer and composites them over
// the target.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	r := render.NewSoftwareRenderer(target)
//	err := schem.DrawObject(r, obj, schem.NewMatrixStack(view.CTM()))
type SoftwareRenderer struct {
	target *PixmapTarget

	// ras is reused between draws and resized to the target on demand.
	ras *vector.Rasterizer

	// Color is used for elements without a color of their own.
	Color color.Color
}

// NewSoftwareRenderer creates a renderer drawing into target.
func NewSoftwareRenderer(target *PixmapTarget) *SoftwareRenderer {
	r := &SoftwareRenderer{target: target, Color: color.Black}
	if target != nil {
		r.ras = vector.NewRasterizer(target.Width(), target.Height())
	}
	return r
}

var _ schem.Renderer = (*SoftwareRenderer)(nil)

// DrawPoints implements schem.Renderer.
func (r *SoftwareRenderer) DrawPoints(pts []schem.Point, style schem.Style, width float64, c color.Color) error {
	if r.target == nil {
		return errors.New("render: nil target")
	}
	if len(pts) == 0 {
		return nil
	}
	if c == nil {
		c = r.Color
	}
	src := image.NewUniform(c)
	closed := style&schem.Unclosed == 0

	if style&schem.Filled != 0 && closed && len(pts) >= 3 {
		r.begin()
		r.ras.MoveTo(devicePoint(pts[0].Float()))
		for _, p := range pts[1:] {
			r.ras.LineTo(devicePoint(p.Float()))
		}
		r.ras.ClosePath()
		r.flush(src)
	}
	if style&schem.NoBorder != 0 {
		return nil
	}

	w := math.Max(width, 1)
	square := style&schem.SquareCap != 0
	pattern := dashPattern(style, w)

	r.begin()
	if len(pts) == 1 {
		p := pts[0].Float()
		r.segment(p, p, w, true)
	}
	var phase float64
	for i := 1; i < len(pts); i++ {
		phase = r.dashed(pts[i-1].Float(), pts[i].Float(), w, pattern, phase, square)
	}
	if closed && len(pts) > 2 {
		r.dashed(pts[len(pts)-1].Float(), pts[0].Float(), w, pattern, phase, square)
	}
	r.flush(src)
	return nil
}

// begin prepares the rasterizer for a new coverage mask.
func (r *SoftwareRenderer) begin() {
	w, h := r.target.Width(), r.target.Height()
	if r.ras == nil {
		r.ras = vector.NewRasterizer(w, h)
	} else {
		r.ras.Reset(w, h)
	}
	r.ras.DrawOp = draw.Over
}

// flush composites the accumulated mask over the target.
func (r *SoftwareRenderer) flush(src image.Image) {
	img := r.target.Image()
	r.ras.Draw(img, img.Bounds(), src, image.Point{})
}

// dashed strokes a-b with the on/off pattern starting at phase and returns
// the phase at b. A nil pattern strokes a solid segment.
func (r *SoftwareRenderer) dashed(a, b schem.FloatPoint, w float64, pattern []float64, phase float64, square bool) float64 {
	if len(pattern) == 0 {
		r.segment(a, b, w, square)
		return 0
	}
	d := b.Sub(a)
	length := math.Sqrt(d.LengthSquared())
	if length == 0 {
		return phase
	}
	period := 0.0
	for _, v := range pattern {
		period += v
	}

	for pos := 0.0; pos < length; {
		off := math.Mod(phase, period)
		i, acc := 0, 0.0
		for acc+pattern[i] <= off {
			acc += pattern[i]
			i++
		}
		step := math.Min(acc+pattern[i]-off, length-pos)
		if i%2 == 0 {
			r.segment(a.Add(d.Mul(pos/length)), a.Add(d.Mul((pos+step)/length)), w, square)
		}
		pos += step
		phase += step
	}
	return phase
}

// segment adds a w-wide quad around a-b to the mask. A zero-length
// segment becomes a w×w square.
func (r *SoftwareRenderer) segment(a, b schem.FloatPoint, w float64, square bool) {
	d := b.Sub(a)
	length := math.Sqrt(d.LengthSquared())
	if length == 0 {
		d, length, square = schem.FPt(1, 0), 1, true
	}
	u := d.Mul(1 / length)
	n := schem.FPt(-u.Y, u.X).Mul(w / 2)
	if square {
		ext := u.Mul(w / 2)
		a, b = a.Sub(ext), b.Add(ext)
	}
	r.ras.MoveTo(devicePoint(a.Add(n)))
	r.ras.LineTo(devicePoint(b.Add(n)))
	r.ras.LineTo(devicePoint(b.Sub(n)))
	r.ras.LineTo(devicePoint(a.Sub(n)))
	r.ras.ClosePath()
}

// dashPattern returns the on/off lengths for a line style, or nil for a
// solid line.
func dashPattern(style schem.Style, w float64) []float64 {
	switch {
	case style&schem.Dotted != 0:
		return []float64{w, 3 * w}
	case style&schem.Dashed != 0:
		return []float64{4 * w, 4 * w}
	}
	return nil
}

// devicePoint maps an integer device coordinate to the center of its
// pixel.
func devicePoint(p schem.FloatPoint) (x, y float32) {
	return float32(p.X + 0.5), float32(p.Y + 0.5)
}

// Object draws obj as seen through view onto a new image cleared to bg.
func Object(obj *schem.Object, view *schem.ViewContext, bg color.Color) (*image.RGBA, error) {
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("render: empty view")
	}
	target := NewPixmapTarget(view.Width, view.Height)
	target.Clear(bg)

	r := NewSoftwareRenderer(target)
	if err := schem.DrawObject(r, obj, schem.NewMatrixStack(view.CTM())); err != nil {
		return nil, err
	}
	schem.Logger().Debug("render: object drawn",
		slog.String("object", obj.Name),
		slog.Int("width", view.Width),
		slog.Int("height", view.Height))
	return target.Image(), nil
}
