package slides

import (
	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/slidemeta"
)

// deck builds a notebook whose cells carry the given slide types; "" means
// no metadata at all.
func deck(types ...models.SlideType) *notebook.Notebook {
	cells := make([]models.Cell, len(types))
	for i, t := range types {
		cells[i] = models.Cell{Kind: models.CellKindMarkdown, Source: string(t)}
		if t != "" {
			cells[i].Metadata = map[string]any{"slideshow": map[string]any{"slide_type": string(t)}}
		}
	}
	return notebook.New("deck", cells)
}

func spacerPair() []models.Cell {
	filler, sentinel := slidemeta.NewSpacerPair(2)
	return []models.Cell{filler, sentinel}
}

type fakeEditor struct {
	doc      notebook.Document
	sel      notebook.Range
	hasSel   bool
	revealed []notebook.Range
}

func (f *fakeEditor) Document() notebook.Document { return f.doc }

func (f *fakeEditor) Selection() (notebook.Range, bool) { return f.sel, f.hasSel }

func (f *fakeEditor) SetSelection(r notebook.Range) {
	f.sel = r
	f.hasSel = true
}

func (f *fakeEditor) RevealAtTop(r notebook.Range) { f.revealed = append(f.revealed, r) }

func at(doc notebook.Document, pos int) *fakeEditor {
	return &fakeEditor{doc: doc, sel: notebook.Single(pos), hasSel: true}
}
