package template

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// HandlerFunc processes a matched placeholder in an Excel cell.
// It receives the file, sheet name, 0-based row/col indices, and the raw cell value.
type HandlerFunc func(f *excelize.File, sheet string, row, col int, value string) error

// Registry holds placeholder → handler mappings for one rendering pass.
type Registry struct {
	handlers []entry
}

type entry struct {
	pattern string
	handler HandlerFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a handler for the given pattern (e.g. "{{days}}").
// Handlers are checked in registration order; the first match wins.
func (r *Registry) Register(pattern string, handler HandlerFunc) {
	r.handlers = append(r.handlers, entry{pattern: pattern, handler: handler})
}

// Patterns returns the registered patterns in registration order.
func (r *Registry) Patterns() []string {
	patterns := make([]string, 0, len(r.handlers))
	for _, e := range r.handlers {
		patterns = append(patterns, e.pattern)
	}
	return patterns
}

// Process runs the first handler whose pattern occurs in value and returns
// that pattern. An empty pattern means nothing matched.
func (r *Registry) Process(f *excelize.File, sheet string, row, col int, value string) (string, error) {
	for _, e := range r.handlers {
		if !strings.Contains(value, e.pattern) {
			continue
		}
		if err := e.handler(f, sheet, row, col, value); err != nil {
			return "", err
		}
		return e.pattern, nil
	}

	return "", nil
}
