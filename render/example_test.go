// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"
	"image/color"

	"github.com/gogpu/schem"
	"github.com/gogpu/schem/render"
)

// ExampleNewSoftwareRenderer draws an object through a view transform
// into a CPU-backed target.
func ExampleNewSoftwareRenderer() {
	obj := schem.NewObject("example")
	obj.Append(schem.NewPolygon(schem.Filled,
		schem.Pt(10, 10), schem.Pt(90, 10), schem.Pt(90, 90), schem.Pt(10, 90)))

	target := render.NewPixmapTarget(100, 100)
	target.Clear(color.White)

	r := render.NewSoftwareRenderer(target)
	view := schem.NewViewContext(100, 100)
	if err := schem.DrawObject(r, obj, schem.NewMatrixStack(view.CTM())); err != nil {
		fmt.Println("draw failed:", err)
		return
	}

	fmt.Println(target.GetPixel(50, 50))
	// Output: {0 0 0 255}
}

// ExampleObject renders an object straight to an image.
func ExampleObject() {
	obj := schem.NewObject("wire")
	obj.Append(schem.NewPolygon(schem.Unclosed, schem.Pt(0, 5), schem.Pt(20, 5)))

	img, err := render.Object(obj, schem.NewViewContext(32, 16), color.White)
	if err != nil {
		fmt.Println("render failed:", err)
		return
	}

	fmt.Println(img.Bounds().Dx(), img.Bounds().Dy())
	// Output: 32 16
}
