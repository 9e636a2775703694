// internal/writers/registry.go
package writers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"systemsgen/internal/record"
)

// ErrUnknownFormat is returned for a format with no registered renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer serializes the full record list to w.
type Renderer func(w io.Writer, list []record.Record) error

var (
	mu        sync.RWMutex
	renderers = map[string]Renderer{}
)

// Register adds (or replaces) the renderer for format. Last wins.
func Register(format string, fn Renderer) {
	mu.Lock()
	defer mu.Unlock()
	renderers[format] = fn
}

// Lookup returns the renderer for format.
func Lookup(format string) (Renderer, error) {
	mu.RLock()
	fn, ok := renderers[format]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (no renderer registered)", ErrUnknownFormat, format)
	}
	return fn, nil
}

// Formats lists registered format names in sorted order.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(renderers))
	for k := range renderers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Render runs the renderer for format and returns the generated bytes.
func Render(format string, list []record.Record) ([]byte, error) {
	fn, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := fn(&b, list); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return b.Bytes(), nil
}
