package clockicon

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidSize is returned for icon sizes that are not positive.
var ErrInvalidSize = errors.New("icon size must be positive")

// Sizes are the icon sizes required by the browser extension.
var Sizes = []int{16, 48, 128}

// HourAngle is the direction of the hour hand in radians from the positive x-axis, with y pointing down.
const HourAngle = math.Pi/3.0 - math.Pi/2.0

// Geometry holds the measurements of a clock icon in pixels, all derived from its size.
type Geometry struct {
	Size         int
	CornerRadius int
	Radius       int // clock face
	OutlineWidth int
	HourLength   float64
	HourWidth    int
	MinuteLength float64
	MinuteWidth  int
	DotRadius    int
}

// NewGeometry returns the measurements of a clock icon of the given size.
func NewGeometry(size int) (Geometry, error) {
	if size <= 0 {
		return Geometry{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	radius := int(float64(size) * 0.35)
	return Geometry{
		Size:         size,
		CornerRadius: int(float64(size) * 0.15),
		Radius:       radius,
		OutlineWidth: max(2, size/20),
		HourLength:   float64(radius) * 0.5,
		HourWidth:    max(2, size/25),
		MinuteLength: float64(radius) * 0.7,
		MinuteWidth:  max(1, size/30),
		DotRadius:    max(2, size/25),
	}, nil
}

// Center returns the clock center in continuous coordinates. Measurements address pixel centers, so the point of pixel (i,j) lies at (i+½,j+½).
func (g Geometry) Center() (float64, float64) {
	c := float64(g.Size/2) + 0.5
	return c, c
}

// Style holds the colors of an icon.
type Style struct {
	Background color.RGBA
	Foreground color.RGBA
}

// DefaultStyle paints a white clock on the brand background.
var DefaultStyle = Style{
	Background: Background,
	Foreground: White,
}

// Layer is a filled path painted in a single color.
type Layer struct {
	Name  string
	Path  *Path
	Color color.RGBA
}

// Icon is a square image of Size pixels built from layers that are painted in order.
type Icon struct {
	Size   int
	Layers []Layer
}

// NewClock returns the clock icon of the given size.
func NewClock(size int, style Style) (*Icon, error) {
	g, err := NewGeometry(size)
	if err != nil {
		return nil, err
	}
	cx, cy := g.Center()
	fg := style.Foreground

	// a circle covering pixels c-r through c+r has radius r+½
	face := Ring(float64(g.Radius)+0.5, float64(g.OutlineWidth)).Translate(cx, cy)
	hourX := cx + g.HourLength*math.Cos(HourAngle)
	hourY := cy + g.HourLength*math.Sin(HourAngle)
	dot := Circle(float64(g.DotRadius)+0.5).Translate(cx, cy)

	return &Icon{
		Size: size,
		Layers: []Layer{
			{"background", RoundedRectangle(float64(size), float64(size), float64(g.CornerRadius)), style.Background},
			{"face", face, fg},
			{"hour", Segment(cx, cy, hourX, hourY, float64(g.HourWidth)), fg},
			{"minute", Segment(cx, cy, cx, cy-g.MinuteLength, float64(g.MinuteWidth)), fg},
			{"pivot", dot, fg},
		},
	}, nil
}
