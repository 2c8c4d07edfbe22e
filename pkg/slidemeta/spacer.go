package slidemeta

import (
	"strings"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

// MarkerKey tags cells created by the spacer view.
const MarkerKey = "nbs_spacer"

// SpacerKind distinguishes the two cells of a spacer pair.
type SpacerKind string

const (
	SpacerFiller   SpacerKind = "filler"
	SpacerSentinel SpacerKind = "sentinel"
)

const spacerLine = "&nbsp;"

// SpacerKindOf returns the spacer kind of c, if c carries the marker.
func SpacerKindOf(c models.Cell) (SpacerKind, bool) {
	if kind, ok := marker(c.Metadata); ok {
		return kind, true
	}
	if nested, ok := c.Metadata["metadata"].(map[string]any); ok {
		return marker(nested)
	}
	return "", false
}

// IsSpacer reports whether c was created by the spacer view.
func IsSpacer(c models.Cell) bool {
	_, ok := SpacerKindOf(c)
	return ok
}

func marker(meta map[string]any) (SpacerKind, bool) {
	v, ok := meta[MarkerKey]
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return SpacerKind(s), true
}

// NewSpacerPair returns the filler and sentinel cells inserted before a slide.
func NewSpacerPair(fillerLines int) (filler, sentinel models.Cell) {
	if fillerLines < 1 {
		fillerLines = models.DefaultSpacerLines
	}
	lines := make([]string, fillerLines)
	for i := range lines {
		lines[i] = spacerLine
	}
	filler = newSpacer(SpacerFiller, strings.Join(lines, "\n"))
	sentinel = newSpacer(SpacerSentinel, spacerLine)
	return filler, sentinel
}

func newSpacer(kind SpacerKind, source string) models.Cell {
	return models.Cell{
		Kind:   models.CellKindMarkdown,
		Source: source,
		Metadata: map[string]any{
			"slideshow": map[string]any{"slide_type": string(models.SlideTypeSkip)},
			MarkerKey:   string(kind),
		},
	}
}
