package clockicon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Options controls how icons are rasterized.
type Options struct {
	Backend   string // registered backend name, DefaultBackend if empty
	Antialias bool   // keep fractional edge coverage instead of painting whole pixels
	Style     *Style // DefaultStyle if nil
}

func (opts Options) style() Style {
	if opts.Style == nil {
		return DefaultStyle
	}
	return *opts.Style
}

// Writer encodes an icon to w.
type Writer func(w io.Writer, ic *Icon) error

// WriteError is returned when an icon could not be written to disk.
type WriteError struct {
	Filename string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Filename, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Draw rasterizes the icon with backend b on a new transparent image. Without antialiasing a pixel is painted only when at least half of it is covered.
func (ic *Icon) Draw(b Backend, antialias bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ic.Size, ic.Size))
	mask := image.NewAlpha(img.Bounds())
	for _, layer := range ic.Layers {
		if layer.Path == nil || layer.Path.Empty() || layer.Color.A == 0 {
			continue
		}
		clear(mask.Pix)
		b.Fill(mask, layer.Path)
		if !antialias {
			threshold(mask)
		}
		draw.DrawMask(img, img.Bounds(), image.NewUniform(layer.Color), image.Point{}, mask, image.Point{}, draw.Over)
	}
	return img
}

func threshold(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a < 0x80 {
			mask.Pix[i] = 0x00
		} else {
			mask.Pix[i] = 0xff
		}
	}
}

// Rasterize draws the icon with the backend and antialiasing given in opts.
func (ic *Icon) Rasterize(opts Options) (*image.RGBA, error) {
	b, err := Lookup(opts.Backend)
	if err != nil {
		return nil, err
	}
	return ic.Draw(b, opts.Antialias), nil
}

// PNGWriter writes the icon as a PNG image.
func PNGWriter(opts Options) Writer {
	return func(w io.Writer, ic *Icon) error {
		img, err := ic.Rasterize(opts)
		if err != nil {
			return err
		}
		return WritePNG(w, img)
	}
}

// Write encodes the icon to w.
func (ic *Icon) Write(w io.Writer, writer Writer) error {
	return writer(w, ic)
}

// WriteFile encodes the icon into filename. The data goes to a temporary file in the same directory that is renamed into place once complete, so the final name never holds a partial icon.
func (ic *Icon) WriteFile(filename string, writer Writer) error {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return &WriteError{filename, err}
	}
	tmp := f.Name()

	if err := writer(f, ic); err != nil {
		f.Close()
		os.Remove(tmp)
		if _, ok := err.(*WriteError); ok {
			return err
		}
		return &WriteError{filename, err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &WriteError{filename, err}
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return &WriteError{filename, err}
	}
	if err := os.Rename(tmp, filename); err != nil {
		os.Remove(tmp)
		return &WriteError{filename, err}
	}
	return nil
}

// RenderIcon draws the clock icon of the given size and writes it as a PNG file.
func RenderIcon(size int, filename string, opts Options) error {
	ic, err := NewClock(size, opts.style())
	if err != nil {
		return err
	}
	img, err := ic.Rasterize(opts)
	if err != nil {
		return err
	}
	return ic.WriteFile(filename, func(w io.Writer, _ *Icon) error {
		return WritePNG(w, img)
	})
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Filename returns the file name of the PNG icon of the given size, e.g. icon16.png.
func Filename(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}
