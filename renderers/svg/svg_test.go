package svg

import (
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/screentime/clockicon"
	"github.com/tdewolff/test"
)

func clock(t *testing.T) *clockicon.Icon {
	t.Helper()
	ic, err := clockicon.NewClock(128, clockicon.DefaultStyle)
	test.Error(t, err)
	return ic
}

func wellFormed(t *testing.T, s string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(s))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		test.Error(t, err)
		if err != nil {
			return
		}
	}
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, Write(buf, clock(t), &Options{}))
	s := buf.String()
	wellFormed(t, s)
	test.That(t, strings.Contains(s, `viewBox="0 0 128 128"`), s)
	test.T(t, strings.Count(s, "<path"), 5)
	test.That(t, strings.Contains(s, "fill:#6e64c6"), "background color missing")
	test.That(t, strings.Contains(s, "fill:#ffffff"), "foreground color missing")
}

func TestWriteMinified(t *testing.T) {
	plain := &bytes.Buffer{}
	test.Error(t, Write(plain, clock(t), &Options{}))

	buf := &bytes.Buffer{}
	test.Error(t, Write(buf, clock(t), nil))
	s := buf.String()
	wellFormed(t, s)
	test.That(t, !strings.Contains(s, "<!--"), "comments must be removed")
	test.T(t, strings.Count(s, "<path"), 5)
	test.That(t, buf.Len() < plain.Len(), "minified output must be smaller")
}

func TestWriteCompressed(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, Write(buf, clock(t), &Options{Compression: gzip.BestCompression}))

	r, err := gzip.NewReader(buf)
	test.Error(t, err)
	b, err := io.ReadAll(r)
	test.Error(t, err)
	test.That(t, strings.Contains(string(b), "<svg"))
}

func TestWriteSkipsEmptyLayers(t *testing.T) {
	ic := &clockicon.Icon{Size: 4, Layers: []clockicon.Layer{
		{Name: "empty", Path: &clockicon.Path{}, Color: clockicon.White},
		{Name: "transparent", Path: clockicon.Rectangle(4.0, 4.0), Color: clockicon.Transparent},
		{Name: "square", Path: clockicon.Rectangle(4.0, 4.0), Color: clockicon.White},
	}}
	buf := &bytes.Buffer{}
	test.Error(t, Write(buf, ic, &Options{}))
	test.T(t, strings.Count(buf.String(), "<path"), 1)
}

func TestFill(t *testing.T) {
	test.String(t, fill(clockicon.Background), "fill:#6e64c6")
	test.String(t, fill(clockicon.Midpoint(clockicon.White, clockicon.Transparent)), "fill:#ffffff;fill-opacity:0.498")
}
