package clockicon

import (
	"math"
)

const epsilon = 1e-9

// Equal returns true if a and b are equal within a small tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Rectangle returns a rectangle of width w and height h with its top-left corner at the origin.
func Rectangle(w, h float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(0.0, 0.0)
	p.LineTo(w, 0.0)
	p.LineTo(w, h)
	p.LineTo(0.0, h)
	p.Close()
	return p
}

// RoundedRectangle returns a rectangle of width w and height h with its top-left corner at the origin and corners rounded with radius r. The radius is limited to half the shortest side.
func RoundedRectangle(w, h, r float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return &Path{}
	}
	r = math.Min(math.Abs(r), math.Min(w/2.0, h/2.0))
	if Equal(r, 0.0) {
		return Rectangle(w, h)
	}

	p := &Path{}
	p.MoveTo(r, 0.0)
	p.LineTo(w-r, 0.0)
	p.ArcTo(w-r, r, r, -math.Pi/2.0, 0.0)
	p.LineTo(w, h-r)
	p.ArcTo(w-r, h-r, r, 0.0, math.Pi/2.0)
	p.LineTo(r, h)
	p.ArcTo(r, h-r, r, math.Pi/2.0, math.Pi)
	p.LineTo(0.0, r)
	p.ArcTo(r, r, r, math.Pi, 3.0*math.Pi/2.0)
	p.Close()
	return p
}

// Circle returns a circle of radius r centered at the origin.
func Circle(r float64) *Path {
	return circle(r, false)
}

// circle returns a circle of radius r, counter clockwise on screen if ccw is set.
func circle(r float64, ccw bool) *Path {
	if Equal(r, 0.0) || r < 0.0 {
		return &Path{}
	}

	theta1 := 2.0 * math.Pi
	if ccw {
		theta1 = -theta1
	}
	p := &Path{}
	p.MoveTo(r, 0.0)
	p.ArcTo(0.0, 0.0, r, 0.0, theta1)
	p.Close()
	return p
}
