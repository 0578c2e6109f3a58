// Package renderers writes icons to files in the format given by the file extension.
package renderers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/screentime/clockicon"
	_ "github.com/screentime/clockicon/renderers/rasterizer"
	_ "github.com/screentime/clockicon/renderers/rasterx"
	"github.com/screentime/clockicon/renderers/svg"
	"golang.org/x/image/tiff"
)

// Options gathers the options of all formats.
type Options struct {
	clockicon.Options
	SVG  *svg.Options
	TIFF *tiff.Options
}

// Write writes the icon to filename. The format follows from the extension: .png, .tif/.tiff, .svg or .svgz. Options are clockicon.Options, *svg.Options or *tiff.Options.
func Write(filename string, ic *clockicon.Icon, opts ...interface{}) error {
	options := Options{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case clockicon.Options:
			options.Options = o
		case *svg.Options:
			options.SVG = o
		case *tiff.Options:
			options.TIFF = o
		default:
			return fmt.Errorf("unknown option: %T(%v)", opt, opt)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return ic.WriteFile(filename, clockicon.PNGWriter(options.Options))
	case ".tif", ".tiff":
		return ic.WriteFile(filename, TIFFWriter(options.Options, options.TIFF))
	case ".svg", ".svgz":
		svgOpts := svg.DefaultOptions
		if options.SVG != nil {
			svgOpts = *options.SVG
		}
		if ext == ".svgz" && svgOpts.Compression == 0 {
			svgOpts.Compression = -1
		}
		return ic.WriteFile(filename, svg.Writer(&svgOpts))
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}
}

// TIFFWriter writes the icon as a TIFF image.
func TIFFWriter(opts clockicon.Options, tiffOpts *tiff.Options) clockicon.Writer {
	return func(w io.Writer, ic *clockicon.Icon) error {
		img, err := ic.Rasterize(opts)
		if err != nil {
			return err
		}
		return tiff.Encode(w, img, tiffOpts)
	}
}
