// Package slidemeta reads presentation metadata from notebook cells.
//
// Hosts and older notebook tooling have stored the slide type in several
// places over time. Classify probes each known shape in a fixed priority
// order and returns the first string it finds.
package slidemeta

import (
	"strings"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

// Shape names a metadata layout that may carry a slide type.
type Shape string

const (
	ShapeNested       Shape = "metadata.slideshow"
	ShapeLegacyCustom Shape = "custom.metadata.slideshow"
	ShapeDirect       Shape = "slideshow"
	ShapeFlat         Shape = "slide_type"
)

// strategy extracts a slide type from one shape.
type strategy struct {
	shape Shape
	path  []string
}

// strategies is ordered by priority; the first match wins.
var strategies = []strategy{
	{shape: ShapeNested, path: []string{"metadata", "slideshow", "slide_type"}},
	{shape: ShapeLegacyCustom, path: []string{"custom", "metadata", "slideshow", "slide_type"}},
	{shape: ShapeDirect, path: []string{"slideshow", "slide_type"}},
	{shape: ShapeFlat, path: []string{"slide_type"}},
}

func (s strategy) extract(meta map[string]any) (string, bool) {
	var cur any = meta
	for _, key := range s.path {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = m[key]
		if !ok {
			return "", false
		}
	}
	str, ok := cur.(string)
	return str, ok
}

// Strategies returns the probed shapes in priority order.
func Strategies() []Shape {
	out := make([]Shape, len(strategies))
	for i, s := range strategies {
		out[i] = s.shape
	}
	return out
}

// Lookup returns the raw slide type and the shape it was found in.
func Lookup(meta map[string]any) (models.SlideType, Shape, bool) {
	if len(meta) == 0 {
		return models.SlideTypeNone, "", false
	}
	for _, s := range strategies {
		if v, ok := s.extract(meta); ok {
			return normalizePlaceholder(v), s.shape, true
		}
	}
	return models.SlideTypeNone, "", false
}

// Classify returns the slide type recorded in meta, or SlideTypeNone.
// Values outside the vocabulary are passed through unchanged.
func Classify(meta map[string]any) models.SlideType {
	t, _, _ := Lookup(meta)
	return t
}

// ClassifyCell is Classify applied to a cell's metadata bag.
func ClassifyCell(c models.Cell) models.SlideType {
	return Classify(c.Metadata)
}

// normalizePlaceholder folds the Jupyter "-" placeholder and blanks into none.
func normalizePlaceholder(v string) models.SlideType {
	v = strings.TrimSpace(v)
	if v == "" || v == "-" {
		return models.SlideTypeNone
	}
	return models.SlideType(v)
}
