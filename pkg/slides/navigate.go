package slides

import (
	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
)

// Result classifies the outcome of a navigation command.
type Result int

const (
	Moved Result = iota
	AtEnd
	AtStart
	NoSlides
	NoDocument
)

// Outcome describes what a navigation command did. None of the non-Moved
// results are errors; they are reported to the user as information.
type Outcome struct {
	Result      Result
	Entry       models.SlideIndexEntry
	Granularity models.Granularity
}

// Message is the informational text for the outcome, "" when nothing
// needs reporting.
func (o Outcome) Message() string {
	switch o.Result {
	case AtEnd:
		return "Already at last " + o.Granularity.String()
	case AtStart:
		return "Already at first " + o.Granularity.String()
	case NoSlides:
		return "No slide metadata found"
	}
	return ""
}

// CurrentPosition is the start of the primary selection, or 0.
func CurrentPosition(ed notebook.Editor) int {
	r, ok := ed.Selection()
	if !ok {
		return 0
	}
	return r.Start
}

// Advance jumps to the first stop after the current position.
func Advance(ed notebook.Editor, g models.Granularity, cfg models.Config) Outcome {
	if ed == nil || ed.Document() == nil {
		return Outcome{Result: NoDocument, Granularity: g}
	}
	idx := Build(ed.Document(), g, cfg)
	if len(idx) == 0 {
		return Outcome{Result: NoSlides, Granularity: g}
	}
	cur := CurrentPosition(ed)
	for _, e := range idx {
		if e.Position > cur {
			Jump(ed, e.Position)
			return Outcome{Result: Moved, Entry: e, Granularity: g}
		}
	}
	return Outcome{Result: AtEnd, Granularity: g}
}

// Retreat jumps to the last stop before the current position.
func Retreat(ed notebook.Editor, g models.Granularity, cfg models.Config) Outcome {
	if ed == nil || ed.Document() == nil {
		return Outcome{Result: NoDocument, Granularity: g}
	}
	idx := Build(ed.Document(), g, cfg)
	if len(idx) == 0 {
		return Outcome{Result: NoSlides, Granularity: g}
	}
	cur := CurrentPosition(ed)
	for i := len(idx) - 1; i >= 0; i-- {
		if idx[i].Position < cur {
			Jump(ed, idx[i].Position)
			return Outcome{Result: Moved, Entry: idx[i], Granularity: g}
		}
	}
	return Outcome{Result: AtStart, Granularity: g}
}

// JumpFirst jumps to the first slide. Fragments are never deck boundaries,
// so this always uses slide granularity.
func JumpFirst(ed notebook.Editor, cfg models.Config) Outcome {
	return jumpEdge(ed, cfg, true)
}

// JumpLast jumps to the last slide.
func JumpLast(ed notebook.Editor, cfg models.Config) Outcome {
	return jumpEdge(ed, cfg, false)
}

func jumpEdge(ed notebook.Editor, cfg models.Config, first bool) Outcome {
	g := models.GranularitySlide
	if ed == nil || ed.Document() == nil {
		return Outcome{Result: NoDocument, Granularity: g}
	}
	idx := Build(ed.Document(), g, cfg)
	if len(idx) == 0 {
		return Outcome{Result: NoSlides, Granularity: g}
	}
	e := idx[len(idx)-1]
	if first {
		e = idx[0]
	}
	Jump(ed, e.Position)
	return Outcome{Result: Moved, Entry: e, Granularity: g}
}

// Jump selects the cell at pos and scrolls it to the top of the viewport.
// Top alignment keeps where the next cell starts predictable across
// repeated advances.
func Jump(ed notebook.Editor, pos int) {
	r := notebook.Single(pos)
	ed.SetSelection(r)
	ed.RevealAtTop(r)
}
