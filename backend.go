package clockicon

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
	"sync"
)

// ErrMissingBackend is returned when the requested raster backend is not available in this build.
var ErrMissingBackend = errors.New("raster backend unavailable")

// DefaultBackend is the name of the backend used when none is given.
const DefaultBackend = "vector"

// Backend is a rasterizer that turns paths into coverage.
type Backend interface {
	// Fill adds the coverage of p to mask using the nonzero winding rule.
	Fill(mask *image.Alpha, p *Path)
}

var (
	backendsMu sync.RWMutex
	backends   = map[string]Backend{}
)

// Register makes a backend available by name. It panics if the name is taken or b is nil.
func Register(name string, b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if b == nil {
		panic("clockicon: Register backend is nil")
	} else if _, dup := backends[name]; dup {
		panic("clockicon: Register called twice for backend " + name)
	}
	backends[name] = b
}

// Lookup returns the backend registered under name. An empty name selects DefaultBackend.
func Lookup(name string) (Backend, error) {
	if name == "" {
		name = DefaultBackend
	}
	backendsMu.RLock()
	b, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		available := Backends()
		if len(available) == 0 {
			return nil, fmt.Errorf("%w: %q, no backends compiled in", ErrMissingBackend, name)
		}
		return nil, fmt.Errorf("%w: %q, available: %s", ErrMissingBackend, name, strings.Join(available, ", "))
	}
	return b, nil
}

// Backends returns the sorted names of the registered backends.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
