package clockicon

import "image"

// Sampler is a reference backend that paints a pixel when its center lies inside the path under the nonzero winding rule.
type Sampler struct{}

func (Sampler) Fill(mask *image.Alpha, p *Path) {
	lines := p.Polylines(Tolerance)
	bounds := mask.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if winding(lines, float64(x)+0.5, float64(y)+0.5) != 0 {
				mask.Pix[mask.PixOffset(x, y)] = 0xff
			}
		}
	}
}

func winding(lines [][][2]float64, px, py float64) int {
	n := 0
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			side := (b[0]-a[0])*(py-a[1]) - (px-a[0])*(b[1]-a[1])
			if a[1] <= py {
				if py < b[1] && 0.0 < side {
					n++
				}
			} else if b[1] <= py && side < 0.0 {
				n--
			}
		}
	}
	return n
}

// Mismatches counts the pixels that differ between two images of equal size.
func Mismatches(a, b *image.RGBA) int {
	n := 0
	for i := 0; i+3 < len(a.Pix) && i+3 < len(b.Pix); i += 4 {
		if a.Pix[i] != b.Pix[i] || a.Pix[i+1] != b.Pix[i+1] || a.Pix[i+2] != b.Pix[i+2] || a.Pix[i+3] != b.Pix[i+3] {
			n++
		}
	}
	return n
}
