// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render rasterizes schematic objects on the CPU.
//
// The geometry engine in package schem never touches pixels: it walks an
// object, transforms every element through a matrix stack and hands
// device-space point lists to a schem.Renderer. This package provides that
// renderer for *image.RGBA targets.
//
// # Core Types
//
//   - PixmapTarget: CPU-backed *image.RGBA render target
//   - SoftwareRenderer: schem.Renderer that fills and strokes point lists
//     with golang.org/x/image/vector
//
// # Styles
//
// Closed point lists with schem.Filled are filled first, then stroked
// unless schem.NoBorder is set. Strokes are at least one pixel wide.
// schem.Dashed and schem.Dotted segment the stroke with a pattern scaled
// by the line width; the pattern phase carries across vertices.
// schem.SquareCap extends every stroked piece by half the line width.
//
// # Usage
//
//	view := schem.NewViewContext(800, 600)
//	img, err := render.Object(obj, view, color.White)
//	if err != nil {
//	    return err
//	}
//	_ = png.Encode(w, img)
//
// Lower level:
//
//	target := render.NewPixmapTarget(800, 600)
//	target.Clear(color.White)
//	r := render.NewSoftwareRenderer(target)
//	err := schem.DrawObject(r, obj, schem.NewMatrixStack(view.CTM()))
package render
