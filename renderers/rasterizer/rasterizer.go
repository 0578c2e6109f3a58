// Package rasterizer provides the default raster backend, built on the scanline rasterizer of golang.org/x/image/vector.
package rasterizer

import (
	"image"
	"math"

	"github.com/screentime/clockicon"
	"golang.org/x/image/vector"
)

// Name is the name the backend is registered under.
const Name = "vector"

func init() {
	clockicon.Register(Name, Rasterizer{})
}

// Rasterizer is a backend that accumulates path coverage with a vector.Rasterizer.
type Rasterizer struct{}

// Fill adds the coverage of p to mask. Only the part of the mask under the bounding box of p is rasterized.
func (Rasterizer) Fill(mask *image.Alpha, p *clockicon.Path) {
	bounds := p.Bounds()
	if bounds.Empty() {
		return
	}

	size := mask.Bounds().Size()
	x := int(math.Floor(bounds.X0))
	y := int(math.Floor(bounds.Y0))
	w := int(math.Ceil(bounds.X1)) - x
	h := int(math.Ceil(bounds.Y1)) - y
	if x+w <= 0 || size.X <= x || y+h <= 0 || size.Y <= y {
		return // outside mask
	}

	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if size.X < x+w {
		w = size.X - x
	}
	if size.Y < y+h {
		h = size.Y - y
	}
	if w <= 0 || h <= 0 {
		return // has no size
	}

	ras := vector.NewRasterizer(w, h)
	p.Flatten(clockicon.Tolerance, &flattener{ras, float64(x), float64(y)})
	ras.Draw(mask, image.Rect(x, y, x+w, y+h), image.Opaque, image.Point{})
}

// flattener feeds flattened paths into a rasterizer whose origin lies at (dx,dy) in mask coordinates.
type flattener struct {
	ras    *vector.Rasterizer
	dx, dy float64
}

func (f *flattener) MoveTo(x, y float64) {
	f.ras.MoveTo(float32(x-f.dx), float32(y-f.dy))
}

func (f *flattener) LineTo(x, y float64) {
	f.ras.LineTo(float32(x-f.dx), float32(y-f.dy))
}

func (f *flattener) Close() {
	f.ras.ClosePath()
}
