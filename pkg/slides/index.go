// Package slides builds the slide index of a notebook and navigates it.
package slides

import (
	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/slidemeta"
)

// Build scans doc once and returns the navigation stops for g.
//
// Spacer cells are never stops. Cells typed none (or outside the vocabulary)
// and cells in cfg.SkipTypes are ignored. With slide granularity and
// IncludeSubslides off, subslides are ignored as well. Every retained slide or
// subslide advances the ordinal; fragments share the ordinal of the boundary
// before them, and a fragment before any boundary reports ordinal 1.
func Build(doc notebook.Document, g models.Granularity, cfg models.Config) models.SlideIndex {
	if doc == nil {
		return nil
	}
	var (
		index   models.SlideIndex
		ordinal int
	)
	for i, n := 0, doc.CellCount(); i < n; i++ {
		cell := doc.CellAt(i)
		if slidemeta.IsSpacer(cell) {
			continue
		}
		t := slidemeta.ClassifyCell(cell).Normalize()
		if t == models.SlideTypeNone || cfg.Skips(t) {
			continue
		}
		if g == models.GranularitySlide && !cfg.IncludeSubslides && t == models.SlideTypeSubslide {
			continue
		}
		if t.IsBoundary() {
			ordinal++
		}
		if !g.Includes(t) {
			continue
		}
		index = append(index, models.SlideIndexEntry{
			Position: i,
			Ordinal:  max(ordinal, 1),
			Type:     t,
		})
	}
	return index
}

// Boundaries counts the slide and subslide entries of idx.
func Boundaries(idx models.SlideIndex) int {
	n := 0
	for _, e := range idx {
		if e.Type.IsBoundary() {
			n++
		}
	}
	return n
}

// EntryAt returns the last entry at or before pos. When pos precedes every
// entry, the first entry is returned. ok is false only for an empty index.
func EntryAt(idx models.SlideIndex, pos int) (models.SlideIndexEntry, bool) {
	if len(idx) == 0 {
		return models.SlideIndexEntry{}, false
	}
	current := idx[0]
	for _, e := range idx {
		if e.Position > pos {
			break
		}
		current = e
	}
	return current, true
}
