package clockicon

import (
	"math"
)

// Ring returns the outline of a circle of radius r stroked with width w on its inside. The inner circle winds opposite to the outer one so that the hole stays empty under the nonzero rule. If w reaches the center, the ring is a filled circle.
func Ring(r, w float64) *Path {
	if r <= w {
		return Circle(r)
	}
	return Circle(r).Append(circle(r-w, true))
}

// Segment returns the outline of a straight line from (x0,y0) to (x1,y1) stroked with width w and butt caps.
func Segment(x0, y0, x1, y1, w float64) *Path {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if Equal(length, 0.0) || w <= 0.0 {
		return &Path{}
	}

	// normal of half the width
	nx, ny := -dy/length*w/2.0, dx/length*w/2.0

	p := &Path{}
	p.MoveTo(x0+nx, y0+ny)
	p.LineTo(x1+nx, y1+ny)
	p.LineTo(x1-nx, y1-ny)
	p.LineTo(x0-nx, y0-ny)
	p.Close()
	return p
}
