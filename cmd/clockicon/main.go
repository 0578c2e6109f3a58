package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/screentime/clockicon"
	"github.com/screentime/clockicon/renderers"
	_ "github.com/screentime/clockicon/renderers/rasterizer"
	_ "github.com/screentime/clockicon/renderers/rasterx"
	"github.com/screentime/clockicon/renderers/svg"
	"github.com/tdewolff/argp"
)

// stdout receives the progress output.
var stdout io.Writer = os.Stdout

type Generate struct {
	Dir       string `short:"o" desc:"Output directory, defaults to the directory of the executable"`
	Sizes     string `short:"s" default:"16,48,128" desc:"Comma-separated icon sizes in pixels"`
	Backend   string `short:"b" default:"vector" desc:"Raster backend"`
	Antialias bool   `short:"a" desc:"Anti-alias edges"`
	Color     string `short:"c" desc:"Background color as hex, defaults to the midpoint of #667eea and #764ba2"`
	SVG       bool   `name:"svg" desc:"Also write a scalable icon.svg"`
}

func main() {
	root := argp.NewCmd(&Generate{}, "Clock icon generator for the screen time extension")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Generate) Run() error {
	// the backend is a precondition, nothing is drawn without it
	if _, err := clockicon.Lookup(cmd.Backend); err != nil {
		return fmt.Errorf("%w\nbuild with the backend's package imported or pick one with --backend=%s", err, clockicon.DefaultBackend)
	}

	sizes, err := parseSizes(cmd.Sizes)
	if err != nil {
		return err
	}

	style := clockicon.DefaultStyle
	if cmd.Color != "" {
		if style.Background, err = clockicon.Hex(cmd.Color); err != nil {
			return err
		}
	}

	dir := cmd.Dir
	if dir == "" {
		if dir, err = executableDir(); err != nil {
			return err
		}
	}

	opts := clockicon.Options{
		Backend:   cmd.Backend,
		Antialias: cmd.Antialias,
		Style:     &style,
	}

	fmt.Fprintln(stdout, "Generating clock icons...")
	fmt.Fprintln(stdout, strings.Repeat("-", 50))

	var errs []error
	for _, size := range sizes {
		filename := filepath.Join(dir, clockicon.Filename(size))
		if err := clockicon.RenderIcon(size, filename, opts); err != nil {
			fmt.Fprintf(stdout, "Failed: %v\n", err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(stdout, "Created: %s (%dx%d)\n", filename, size, size)
	}

	if cmd.SVG && 0 < len(sizes) {
		filename := filepath.Join(dir, "icon.svg")
		if err := writeSVG(filename, sizes[len(sizes)-1], style); err != nil {
			fmt.Fprintf(stdout, "Failed: %v\n", err)
			errs = append(errs, err)
		} else {
			fmt.Fprintf(stdout, "Created: %s\n", filename)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "\nAll icons created successfully!")
	fmt.Fprintf(stdout, "Location: %s\n", dir)
	return nil
}

func writeSVG(filename string, size int, style clockicon.Style) error {
	ic, err := clockicon.NewClock(size, style)
	if err != nil {
		return err
	}
	return renderers.Write(filename, ic, &svg.Options{Minify: true})
}

func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return append([]int{}, clockicon.Sizes...), nil
	}

	sizes := []int{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("%w: %q", clockicon.ErrInvalidSize, field)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no sizes in %q", clockicon.ErrInvalidSize, s)
	}
	return sizes, nil
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if exe, err = filepath.EvalSymlinks(exe); err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
