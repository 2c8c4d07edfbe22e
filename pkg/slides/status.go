package slides

import (
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

const (
	// DeckIcon prefixes every status string.
	DeckIcon = "▣"
	// SpacerIcon is shown while the spacer view is on.
	SpacerIcon = "⇕"
)

// RenderStatus formats the position indicator for a cursor at pos, given
// the slide-granularity index. The denominator counts slides and subslides
// only. It returns "" for an empty index.
func RenderStatus(idx models.SlideIndex, pos int, state models.ViewState) string {
	entry, ok := EntryAt(idx, pos)
	if !ok {
		return ""
	}
	parts := []string{DeckIcon}
	if state.SpacerActive {
		parts = append(parts, SpacerIcon)
	}
	parts = append(parts, fmt.Sprintf("Slide %d/%d", entry.Ordinal, Boundaries(idx)))
	return strings.Join(parts, " ")
}
