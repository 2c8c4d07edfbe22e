package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSlideTypeVocabulary(t *testing.T) {
	tests := []struct {
		slideType  SlideType
		known      bool
		normalized SlideType
		boundary   bool
	}{
		{SlideTypeSlide, true, SlideTypeSlide, true},
		{SlideTypeSubslide, true, SlideTypeSubslide, true},
		{SlideTypeFragment, true, SlideTypeFragment, false},
		{SlideTypeSkip, true, SlideTypeSkip, false},
		{SlideTypeNotes, true, SlideTypeNotes, false},
		{SlideTypeNone, true, SlideTypeNone, false},
		{SlideType("chapter"), false, SlideTypeNone, false},
		{SlideType(""), false, SlideTypeNone, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.slideType), func(t *testing.T) {
			if got := tt.slideType.Known(); got != tt.known {
				t.Errorf("Known() = %v, want %v", got, tt.known)
			}
			if got := tt.slideType.Normalize(); got != tt.normalized {
				t.Errorf("Normalize() = %v, want %v", got, tt.normalized)
			}
			if got := tt.slideType.IsBoundary(); got != tt.boundary {
				t.Errorf("IsBoundary() = %v, want %v", got, tt.boundary)
			}
		})
	}
}

func TestGranularityIncludes(t *testing.T) {
	if !GranularitySlide.Includes(SlideTypeSubslide) {
		t.Error("slide granularity should stop at subslides")
	}
	if GranularitySlide.Includes(SlideTypeFragment) {
		t.Error("slide granularity should not stop at fragments")
	}
	if !GranularityFragment.Includes(SlideTypeFragment) {
		t.Error("fragment granularity should stop at fragments")
	}
	for _, st := range []SlideType{SlideTypeSkip, SlideTypeNotes, SlideTypeNone} {
		if GranularityFragment.Includes(st) {
			t.Errorf("%s is never a stop", st)
		}
	}
	if GranularitySlide.String() != "slide" || GranularityFragment.String() != "fragment" {
		t.Error("unexpected granularity names")
	}
}

func TestConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.IncludeSubslides || !cfg.ShowStatus || cfg.SpacerLines != 40 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Skips(SlideTypeNotes) {
		t.Error("nothing is skipped by default")
	}

	cfg.SkipTypes = []SlideType{SlideTypeNotes}
	if !cfg.Skips(SlideTypeNotes) {
		t.Error("notes should be skipped")
	}

	for _, lines := range []int{0, -3} {
		cfg.SpacerLines = lines
		if got := cfg.FillerLines(); got != DefaultSpacerLines {
			t.Errorf("FillerLines() with %d = %d, want %d", lines, got, DefaultSpacerLines)
		}
	}
	cfg.SpacerLines = 5
	if got := cfg.FillerLines(); got != 5 {
		t.Errorf("FillerLines() = %d, want 5", got)
	}
}

func TestCellClone(t *testing.T) {
	c := Cell{
		Kind:     CellKindMarkdown,
		Source:   "# Title",
		Metadata: map[string]any{"slideshow": map[string]any{"slide_type": "slide"}, "tags": []any{"a"}},
		Extra:    map[string]json.RawMessage{"attachments": json.RawMessage(`{}`)},
	}
	clone := c.Clone()
	if !reflect.DeepEqual(c, clone) {
		t.Fatalf("clone differs: %+v", clone)
	}

	clone.Metadata["slideshow"].(map[string]any)["slide_type"] = "skip"
	clone.Metadata["tags"].([]any)[0] = "b"
	clone.Extra["attachments"][0] = '['

	if c.Metadata["slideshow"].(map[string]any)["slide_type"] != "slide" {
		t.Error("nested metadata map was shared")
	}
	if c.Metadata["tags"].([]any)[0] != "a" {
		t.Error("metadata list was shared")
	}
	if string(c.Extra["attachments"]) != "{}" {
		t.Error("extra fields were shared")
	}
}

func TestCellIsMarkup(t *testing.T) {
	if (Cell{Kind: CellKindCode}).IsMarkup() {
		t.Error("code cells are not markup")
	}
	if !(Cell{Kind: CellKindRaw}).IsMarkup() || !(Cell{Kind: CellKindMarkdown}).IsMarkup() {
		t.Error("raw and markdown cells are markup")
	}
}

func TestSlideIndexAccessors(t *testing.T) {
	idx := SlideIndex{
		{Position: 0, Ordinal: 1, Type: SlideTypeSlide},
		{Position: 2, Ordinal: 1, Type: SlideTypeFragment},
		{Position: 5, Ordinal: 2, Type: SlideTypeSubslide},
	}
	if got := idx.Positions(); !reflect.DeepEqual(got, []int{0, 2, 5}) {
		t.Errorf("Positions() = %v", got)
	}
	if got := idx.Ordinals(); !reflect.DeepEqual(got, []int{1, 1, 2}) {
		t.Errorf("Ordinals() = %v", got)
	}
}

func TestDeckNeedsCleaning(t *testing.T) {
	if (&Deck{}).NeedsCleaning() {
		t.Error("a deck without spacers is clean")
	}
	if !(&Deck{Spacers: 2}).NeedsCleaning() {
		t.Error("a deck with spacers needs cleaning")
	}
}
