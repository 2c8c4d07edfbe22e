package models

// SlideType is the presentation classification of a cell, read from its metadata.
type SlideType string

const (
	SlideTypeSlide    SlideType = "slide"
	SlideTypeSubslide SlideType = "subslide"
	SlideTypeFragment SlideType = "fragment"
	SlideTypeSkip     SlideType = "skip"
	SlideTypeNotes    SlideType = "notes"
	SlideTypeNone     SlideType = "none"
)

// AllSlideTypes lists the closed vocabulary in display order.
var AllSlideTypes = []SlideType{
	SlideTypeSlide,
	SlideTypeSubslide,
	SlideTypeFragment,
	SlideTypeSkip,
	SlideTypeNotes,
	SlideTypeNone,
}

// Known reports whether t belongs to the closed vocabulary.
func (t SlideType) Known() bool {
	for _, known := range AllSlideTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Normalize maps anything outside the vocabulary to SlideTypeNone.
func (t SlideType) Normalize() SlideType {
	if t.Known() {
		return t
	}
	return SlideTypeNone
}

// IsBoundary reports whether t starts a new slide (and advances the ordinal).
func (t SlideType) IsBoundary() bool {
	return t == SlideTypeSlide || t == SlideTypeSubslide
}

// Granularity selects the target set a navigation command stops at.
type Granularity int

const (
	// GranularitySlide stops at slides and subslides.
	GranularitySlide Granularity = iota
	// GranularityFragment additionally stops at fragments.
	GranularityFragment
)

// Includes reports whether t is a navigation stop for g.
func (g Granularity) Includes(t SlideType) bool {
	switch t {
	case SlideTypeSlide, SlideTypeSubslide:
		return true
	case SlideTypeFragment:
		return g == GranularityFragment
	}
	return false
}

func (g Granularity) String() string {
	if g == GranularityFragment {
		return "fragment"
	}
	return "slide"
}

// SlideIndexEntry is one navigation stop.
type SlideIndexEntry struct {
	Position int       `json:"position" yaml:"position"`
	Ordinal  int       `json:"ordinal" yaml:"ordinal"`
	Type     SlideType `json:"type" yaml:"type"`
}

// SlideIndex is ordered strictly by Position. It is derived on demand and
// must not be kept across document edits.
type SlideIndex []SlideIndexEntry

// Positions returns the cell positions of every entry.
func (idx SlideIndex) Positions() []int {
	out := make([]int, len(idx))
	for i, e := range idx {
		out[i] = e.Position
	}
	return out
}

// Ordinals returns the ordinal of every entry.
func (idx SlideIndex) Ordinals() []int {
	out := make([]int, len(idx))
	for i, e := range idx {
		out[i] = e.Ordinal
	}
	return out
}
