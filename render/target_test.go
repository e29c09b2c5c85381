// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(100, 50)
	if target.Width() != 100 || target.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", target.Width(), target.Height())
	}
	if target.Image() == nil {
		t.Fatal("Image() returned nil")
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	target := NewPixmapTargetFromImage(img)
	target.Clear(color.RGBA{R: 255, A: 255})
	if got := img.RGBAAt(3, 3); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("shared image pixel = %v, want red", got)
	}
}

func TestPixmapTargetClear(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want color.RGBA
	}{
		{"white", color.White, color.RGBA{255, 255, 255, 255}},
		{"transparent", color.Transparent, color.RGBA{}},
		{"gray", color.Gray{Y: 128}, color.RGBA{128, 128, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewPixmapTarget(4, 4)
			target.Clear(color.Black)
			target.Clear(tt.c)
			for _, p := range []image.Point{{0, 0}, {3, 3}, {1, 2}} {
				if got := target.GetPixel(p.X, p.Y); got != tt.want {
					t.Errorf("pixel %v = %v, want %v", p, got, tt.want)
				}
			}
		})
	}
}

func TestPixmapTargetResize(t *testing.T) {
	target := NewPixmapTarget(4, 4)
	target.Resize(16, 9)
	if target.Width() != 16 || target.Height() != 9 {
		t.Errorf("size = %dx%d, want 16x9", target.Width(), target.Height())
	}
}
