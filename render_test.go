package clockicon_test

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/screentime/clockicon"
	"github.com/screentime/clockicon/renderers/rasterizer"
	"github.com/tdewolff/test"
)

func TestRenderIcon(t *testing.T) {
	dir := t.TempDir()
	for _, size := range clockicon.Sizes {
		filename := filepath.Join(dir, clockicon.Filename(size))
		test.Error(t, clockicon.RenderIcon(size, filename, clockicon.Options{}))

		f, err := os.Open(filename)
		test.Error(t, err)
		img, err := png.Decode(f)
		f.Close()
		test.Error(t, err)
		test.T(t, img.Bounds().Dx(), size)
		test.T(t, img.Bounds().Dy(), size)

		_, _, _, a := img.At(0, 0).RGBA()
		test.T(t, a, uint32(0), "top-left corner of", size)
		_, _, _, a = img.At(size/2, size/2).RGBA()
		test.T(t, a, uint32(0xffff), "center of", size)
	}

	entries, err := os.ReadDir(dir)
	test.Error(t, err)
	test.T(t, len(entries), len(clockicon.Sizes))
}

func TestRenderIconDeterministic(t *testing.T) {
	dir := t.TempDir()
	for _, size := range clockicon.Sizes {
		a := filepath.Join(dir, "a.png")
		b := filepath.Join(dir, "b.png")
		test.Error(t, clockicon.RenderIcon(size, a, clockicon.Options{}))
		test.Error(t, clockicon.RenderIcon(size, b, clockicon.Options{}))

		bufA, err := os.ReadFile(a)
		test.Error(t, err)
		bufB, err := os.ReadFile(b)
		test.Error(t, err)
		test.That(t, bytes.Equal(bufA, bufB), "icon of", size, "differs between runs")
	}
}

func TestRenderIconMissingBackend(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "icon16.png")
	err := clockicon.RenderIcon(16, filename, clockicon.Options{Backend: "cairo"})
	test.That(t, errors.Is(err, clockicon.ErrMissingBackend), "unexpected error:", err)

	_, err = os.Stat(filename)
	test.That(t, errors.Is(err, os.ErrNotExist), "no file may be written")
}

func TestRenderIconWriteFailure(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing", "icon16.png")
	err := clockicon.RenderIcon(16, filename, clockicon.Options{})
	var writeErr *clockicon.WriteError
	test.That(t, errors.As(err, &writeErr), "unexpected error:", err)
}

func TestRasterizerMatchesSampler(t *testing.T) {
	b, err := clockicon.Lookup(rasterizer.Name)
	test.Error(t, err)
	for _, size := range clockicon.Sizes {
		ic, err := clockicon.NewClock(size, clockicon.DefaultStyle)
		test.Error(t, err)

		// pixels whose coverage is close to one half may go either way
		n := clockicon.Mismatches(ic.Draw(b, false), ic.Draw(clockicon.Sampler{}, false))
		test.That(t, n <= size*size/20, n, "pixels differ for", size)
	}
}

func TestRasterizerAntialias(t *testing.T) {
	ic, err := clockicon.NewClock(48, clockicon.DefaultStyle)
	test.Error(t, err)
	img, err := ic.Rasterize(clockicon.Options{Antialias: true})
	test.Error(t, err)

	partial := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if a := img.Pix[i]; a != 0 && a != 255 {
			partial++
		}
	}
	test.That(t, 0 < partial, "anti-aliased edges must have partial alpha")
}
