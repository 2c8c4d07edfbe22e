// Package notebook defines the document contract the slide tools work
// against and an in-memory notebook that implements it.
package notebook

import (
	"errors"
	"fmt"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

// ErrInvalidEdit is returned when an edit batch cannot be applied.
var ErrInvalidEdit = errors.New("invalid edit")

// Document is an ordered sequence of cells that accepts atomic edit batches.
type Document interface {
	ID() string
	CellCount() int
	CellAt(i int) models.Cell
	// ApplyEdit applies edits in order as one unit: either all of them
	// take effect or none do.
	ApplyEdit(edits ...Edit) error
}

// Range is a half-open range of cell positions.
type Range struct {
	Start int
	End   int
}

// Single returns the range covering only the cell at pos.
func Single(pos int) Range {
	return Range{Start: pos, End: pos + 1}
}

// Editor is a view onto a document with a selection and a viewport.
type Editor interface {
	Document() Document
	// Selection returns the primary selection, or false when there is none.
	Selection() (Range, bool)
	SetSelection(r Range)
	// RevealAtTop scrolls so the first cell of r sits at the top of the viewport.
	RevealAtTop(r Range)
}

// EditKind is the operation of an Edit.
type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
)

// Edit is a single step of an edit batch.
type Edit struct {
	Kind  EditKind
	Start int
	End   int
	Cells []models.Cell
}

// Insert places cells before position pos.
func Insert(pos int, cells ...models.Cell) Edit {
	return Edit{Kind: EditInsert, Start: pos, End: pos, Cells: cells}
}

// Delete removes the cells in [start, end).
func Delete(start, end int) Edit {
	return Edit{Kind: EditDelete, Start: start, End: end}
}

func (e Edit) String() string {
	if e.Kind == EditInsert {
		return fmt.Sprintf("insert %d cell(s) at %d", len(e.Cells), e.Start)
	}
	return fmt.Sprintf("delete [%d,%d)", e.Start, e.End)
}

// Notebook is an in-memory Document.
type Notebook struct {
	id    string
	cells []models.Cell

	// Metadata is the notebook-level metadata bag.
	Metadata    map[string]any
	Format      int
	FormatMinor int
	version     int
	onEdit      []func(edits []Edit)
}

// New creates a notebook with the given identity and cells.
func New(id string, cells []models.Cell) *Notebook {
	return &Notebook{
		id:          id,
		cells:       append([]models.Cell(nil), cells...),
		Metadata:    map[string]any{},
		Format:      4,
		FormatMinor: 5,
	}
}

func (n *Notebook) ID() string {
	return n.id
}

func (n *Notebook) CellCount() int {
	return len(n.cells)
}

// CellAt returns the cell at position i. It panics when i is out of range,
// like a slice index.
func (n *Notebook) CellAt(i int) models.Cell {
	return n.cells[i]
}

// Cells returns a copy of the cell slice.
func (n *Notebook) Cells() []models.Cell {
	return append([]models.Cell(nil), n.cells...)
}

// Version increments on every successful edit batch.
func (n *Notebook) Version() int {
	return n.version
}

// ApplyEdit applies the batch to a copy and swaps it in only when every
// step is valid.
func (n *Notebook) ApplyEdit(edits ...Edit) error {
	if len(edits) == 0 {
		return nil
	}
	next := append([]models.Cell(nil), n.cells...)
	for i, e := range edits {
		var err error
		next, err = apply(next, e)
		if err != nil {
			return fmt.Errorf("edit %d (%s): %w", i, e, err)
		}
	}
	n.cells = next
	n.version++
	for _, fn := range n.onEdit {
		fn(edits)
	}
	return nil
}

// OnEdit registers fn to run after every applied edit batch.
func (n *Notebook) OnEdit(fn func(edits []Edit)) {
	n.onEdit = append(n.onEdit, fn)
}

// MapPosition follows the cell at pos through an edit batch. A deleted cell
// maps to the position of the first cell after the deleted range.
func MapPosition(pos int, edits ...Edit) int {
	for _, e := range edits {
		switch e.Kind {
		case EditInsert:
			if pos >= e.Start {
				pos += len(e.Cells)
			}
		case EditDelete:
			if pos >= e.End {
				pos -= e.End - e.Start
			} else if pos >= e.Start {
				pos = e.Start
			}
		}
	}
	return pos
}

func apply(cells []models.Cell, e Edit) ([]models.Cell, error) {
	switch e.Kind {
	case EditInsert:
		if e.Start < 0 || e.Start > len(cells) {
			return nil, fmt.Errorf("%w: insert position %d outside [0,%d]", ErrInvalidEdit, e.Start, len(cells))
		}
		out := make([]models.Cell, 0, len(cells)+len(e.Cells))
		out = append(out, cells[:e.Start]...)
		out = append(out, e.Cells...)
		return append(out, cells[e.Start:]...), nil
	case EditDelete:
		if e.Start < 0 || e.End > len(cells) || e.Start >= e.End {
			return nil, fmt.Errorf("%w: delete range [%d,%d) outside [0,%d)", ErrInvalidEdit, e.Start, e.End, len(cells))
		}
		out := make([]models.Cell, 0, len(cells)-(e.End-e.Start))
		out = append(out, cells[:e.Start]...)
		return append(out, cells[e.End:]...), nil
	}
	return nil, fmt.Errorf("%w: unknown edit kind %d", ErrInvalidEdit, e.Kind)
}
