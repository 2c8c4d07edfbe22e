package host

import (
	"github.com/mattsolo1/grove-slides/pkg/notebook"
)

// Editor shows one open notebook. It tracks the primary selection and the
// cell currently at the top of the viewport.
type Editor struct {
	wb        *Workbench
	doc       *notebook.Notebook
	path      string
	selection notebook.Range
	hasSel    bool
	top       int
}

func (e *Editor) Document() notebook.Document {
	return e.doc
}

// Notebook returns the concrete document.
func (e *Editor) Notebook() *notebook.Notebook {
	return e.doc
}

// Path is the file the document is saved to; empty for unsaved documents.
func (e *Editor) Path() string {
	return e.path
}

func (e *Editor) Selection() (notebook.Range, bool) {
	if !e.hasSel {
		return notebook.Range{}, false
	}
	return e.clamp(e.selection), true
}

// SetSelection replaces the selection and notifies selection listeners.
func (e *Editor) SetSelection(r notebook.Range) {
	e.selection = r
	e.hasSel = true
	if e.wb != nil {
		e.wb.fireSelectionChanged(e)
	}
}

// ClearSelection removes the selection without notifying.
func (e *Editor) ClearSelection() {
	e.hasSel = false
}

func (e *Editor) RevealAtTop(r notebook.Range) {
	e.top = e.clamp(r).Start
}

// Top is the position of the cell shown at the top of the viewport.
func (e *Editor) Top() int {
	if n := e.doc.CellCount(); e.top >= n {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return e.top
}

// follow keeps the selection and the viewport on the same cells when the
// document is edited.
func (e *Editor) follow(edits []notebook.Edit) {
	if e.hasSel {
		n := max(e.selection.End-e.selection.Start, 1)
		e.selection.Start = notebook.MapPosition(e.selection.Start, edits...)
		e.selection.End = e.selection.Start + n
	}
	e.top = notebook.MapPosition(e.top, edits...)
}

// clamp keeps r inside the document; edits can shrink it under a stale selection.
func (e *Editor) clamp(r notebook.Range) notebook.Range {
	n := e.doc.CellCount()
	if n == 0 {
		return notebook.Range{}
	}
	if r.Start >= n {
		r.Start = n - 1
	}
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End <= r.Start {
		r.End = r.Start + 1
	}
	if r.End > n {
		r.End = n
	}
	return r
}
