// Package rasterx provides a raster backend built on the filler of github.com/srwiley/rasterx.
package rasterx

import (
	"image"
	"image/color"

	"github.com/screentime/clockicon"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Name is the name the backend is registered under.
const Name = "rasterx"

func init() {
	clockicon.Register(Name, Rasterx{})
}

// Rasterx is a backend that fills paths with a rasterx.Filler over a ScannerGV.
type Rasterx struct{}

// Fill adds the coverage of p to mask.
func (Rasterx) Fill(mask *image.Alpha, p *clockicon.Path) {
	size := mask.Bounds().Size()
	scanner := rasterx.NewScannerGV(size.X, size.Y, mask, mask.Bounds())
	filler := rasterx.NewFiller(size.X, size.Y, scanner)
	filler.SetColor(color.Alpha{0xff})
	filler.SetWinding(true)

	p.Flatten(clockicon.Tolerance, &adder{filler: filler})
	filler.Draw()
}

// adder translates flattened path commands into fixed-point filler calls.
type adder struct {
	filler *rasterx.Filler
	open   bool
}

func (a *adder) MoveTo(x, y float64) {
	if a.open {
		a.filler.Stop(true)
	}
	a.filler.Start(point(x, y))
	a.open = true
}

func (a *adder) LineTo(x, y float64) {
	a.filler.Line(point(x, y))
}

func (a *adder) Close() {
	a.filler.Stop(true)
	a.open = false
}

func point(x, y float64) fixed.Point26_6 {
	return rasterx.ToFixedP(x, y)
}
