package clockicon

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Tolerance is the maximum distance in pixels between an arc and the line segments that approximate it.
var Tolerance = 0.01

// Precision is the number of significant digits used when serializing path coordinates.
var Precision = 5

// PathCmd is a path command.
type PathCmd int

// Path commands.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	ArcToCmd
	CloseCmd
)

// Flattener receives the polylines of a flattened path.
type Flattener interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Close()
}

// Path is a vector path in pixel coordinates with the y-axis pointing down. Arcs are circular and stored by their center, radius, and start and end angle in radians.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64
	y0   float64
}

// Empty returns true if p has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Copy returns a deep copy of p.
func (p *Path) Copy() *Path {
	q := &Path{x0: p.x0, y0: p.y0}
	q.cmds = append(q.cmds, p.cmds...)
	q.d = append(q.d, p.d...)
	return q
}

// Append appends the subpaths of q to p.
func (p *Path) Append(q *Path) *Path {
	p.cmds = append(p.cmds, q.cmds...)
	p.d = append(p.d, q.d...)
	if !q.Empty() {
		p.x0, p.y0 = q.x0, q.y0
	}
	return p
}

// Pos returns the current position.
func (p *Path) Pos() (float64, float64) {
	if len(p.cmds) == 0 {
		return 0.0, 0.0
	}
	switch p.cmds[len(p.cmds)-1] {
	case CloseCmd:
		return p.x0, p.y0
	case ArcToCmd:
		d := p.d[len(p.d)-5:]
		return d[0] + d[2]*math.Cos(d[4]), d[1] + d[2]*math.Sin(d[4])
	}
	return p.d[len(p.d)-2], p.d[len(p.d)-1]
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

// LineTo adds a straight line to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// ArcTo adds a circular arc around (cx,cy) with radius r from angle theta0 to theta1 in radians. The current position must be the start of the arc. If theta0 < theta1 the arc runs clockwise on screen.
func (p *Path) ArcTo(cx, cy, r, theta0, theta1 float64) {
	p.cmds = append(p.cmds, ArcToCmd)
	p.d = append(p.d, cx, cy, r, theta0, theta1)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.cmds = append(p.cmds, CloseCmd)
}

// Translate moves the path by (x,y).
func (p *Path) Translate(x, y float64) *Path {
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd, LineToCmd:
			p.d[i+0] += x
			p.d[i+1] += y
			i += 2
		case ArcToCmd:
			p.d[i+0] += x
			p.d[i+1] += y
			i += 5
		}
	}
	p.x0 += x
	p.y0 += y
	return p
}

// Flatten replaces arcs by line segments that deviate at most tolerance from the arc and passes the result to f.
func (p *Path) Flatten(tolerance float64, f Flattener) {
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			f.MoveTo(p.d[i], p.d[i+1])
			i += 2
		case LineToCmd:
			f.LineTo(p.d[i], p.d[i+1])
			i += 2
		case ArcToCmd:
			cx, cy, r, theta0, theta1 := p.d[i], p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4]
			n := arcSegments(r, theta1-theta0, tolerance)
			for j := 1; j <= n; j++ {
				theta := theta0 + (theta1-theta0)*float64(j)/float64(n)
				f.LineTo(cx+r*math.Cos(theta), cy+r*math.Sin(theta))
			}
			i += 5
		case CloseCmd:
			f.Close()
		}
	}
}

// arcSegments returns the number of line segments needed to approximate an arc of radius r over angle dtheta.
func arcSegments(r, dtheta, tolerance float64) int {
	step := math.Pi / 2.0
	if tolerance < r {
		step = math.Min(step, 2.0*math.Acos(1.0-tolerance/r))
	}
	n := int(math.Ceil(math.Abs(dtheta) / step))
	if n < 1 {
		n = 1
	}
	return n
}

// Rect is an axis-aligned rectangle from (X0,Y0) to (X1,Y1).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Empty returns true if r covers no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Bounds returns the bounding box of the flattened path.
func (p *Path) Bounds() Rect {
	first := true
	r := Rect{}
	for _, line := range p.Polylines(Tolerance) {
		for _, pt := range line {
			if first {
				r = Rect{pt[0], pt[1], pt[0], pt[1]}
				first = false
				continue
			}
			r.X0 = math.Min(r.X0, pt[0])
			r.Y0 = math.Min(r.Y0, pt[1])
			r.X1 = math.Max(r.X1, pt[0])
			r.Y1 = math.Max(r.Y1, pt[1])
		}
	}
	return r
}

// Polylines returns the flattened subpaths of p as lists of points.
func (p *Path) Polylines(tolerance float64) [][][2]float64 {
	pl := &polylines{}
	p.Flatten(tolerance, pl)
	return pl.lines
}

type polylines struct {
	lines [][][2]float64
}

func (pl *polylines) MoveTo(x, y float64) {
	pl.lines = append(pl.lines, [][2]float64{{x, y}})
}

func (pl *polylines) LineTo(x, y float64) {
	if len(pl.lines) == 0 {
		pl.MoveTo(0.0, 0.0)
	}
	i := len(pl.lines) - 1
	pl.lines[i] = append(pl.lines[i], [2]float64{x, y})
}

func (pl *polylines) Close() {
	if len(pl.lines) == 0 {
		return
	}
	i := len(pl.lines) - 1
	if start := pl.lines[i][0]; pl.lines[i][len(pl.lines[i])-1] != start {
		pl.lines[i] = append(pl.lines[i], start)
	}
}

// ToSVG returns the path as SVG path data. Arcs are split in two halves so that the large-arc flag is never needed.
func (p *Path) ToSVG() string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			fmt.Fprintf(&sb, "M%v %v", num(p.d[i]), num(p.d[i+1]))
			i += 2
		case LineToCmd:
			fmt.Fprintf(&sb, "L%v %v", num(p.d[i]), num(p.d[i+1]))
			i += 2
		case ArcToCmd:
			cx, cy, r, theta0, theta1 := p.d[i], p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4]
			sweep := 0
			if theta0 < theta1 {
				sweep = 1
			}
			mid := (theta0 + theta1) / 2.0
			for _, theta := range []float64{mid, theta1} {
				fmt.Fprintf(&sb, "A%v %v 0 0 %d %v %v", num(r), num(r), sweep, num(cx+r*math.Cos(theta)), num(cy+r*math.Sin(theta)))
			}
			i += 5
		case CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}

func (p *Path) String() string {
	return p.ToSVG()
}

type num float64

func (f num) String() string {
	if math.Abs(float64(f)) < epsilon {
		f = 0.0
	}
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	return string(minify.Number([]byte(s), Precision))
}
