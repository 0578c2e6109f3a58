// Package svg writes icons as scalable vector graphics.
package svg

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"image/color"
	"io"

	svgo "github.com/ajstarks/svgo"
	"github.com/screentime/clockicon"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	minsvg "github.com/tdewolff/minify/v2/svg"
)

// MIME is the media type of SVG documents.
const MIME = "image/svg+xml"

// Options controls the SVG output.
type Options struct {
	Compression int  // gzip compression level for .svgz output, 0 disables compression
	Minify      bool // minify the document
}

// DefaultOptions writes a minified, uncompressed document.
var DefaultOptions = Options{
	Minify: true,
}

// Write writes the icon as an SVG document of Size×Size user units, one path per layer.
func Write(w io.Writer, ic *clockicon.Icon, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = gzip.DefaultCompression
		}
		gz, err := gzip.NewWriterLevel(w, opts.Compression)
		if err != nil {
			return err
		}
		if err := write(gz, ic, opts.Minify); err != nil {
			gz.Close()
			return err
		}
		return gz.Close() // does not close underlying writer
	}
	return write(w, ic, opts.Minify)
}

func write(w io.Writer, ic *clockicon.Icon, minified bool) error {
	buf := &bytes.Buffer{}
	doc := svgo.New(buf)
	doc.Startview(ic.Size, ic.Size, 0, 0, ic.Size, ic.Size)
	for _, layer := range ic.Layers {
		if layer.Path == nil || layer.Path.Empty() || layer.Color.A == 0 {
			continue
		}
		doc.Path(layer.Path.ToSVG(), fill(layer.Color))
	}
	doc.End()

	if !minified {
		_, err := buf.WriteTo(w)
		return err
	}
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc(MIME, minsvg.Minify)
	return m.Minify(MIME, w, buf)
}

// Writer returns a clockicon.Writer that encodes icons as SVG.
func Writer(opts *Options) clockicon.Writer {
	return func(w io.Writer, ic *clockicon.Icon) error {
		return Write(w, ic, opts)
	}
}

func fill(c color.RGBA) string {
	s := fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 0xff {
		// colors are alpha premultiplied
		a := float64(c.A) / 255.0
		s = fmt.Sprintf("fill:#%02x%02x%02x;fill-opacity:%.3g", uint8(float64(c.R)/a+0.5), uint8(float64(c.G)/a+0.5), uint8(float64(c.B)/a+0.5), a)
	}
	return s
}
