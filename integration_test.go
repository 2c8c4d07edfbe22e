//go:build integration
// +build integration

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattsolo1/grove-slides/pkg/catalog"
	"github.com/mattsolo1/grove-slides/pkg/host"
	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/service"
	"github.com/mattsolo1/grove-slides/pkg/spacer"
)

func slideCells(types ...models.SlideType) []models.Cell {
	cells := make([]models.Cell, len(types))
	for i, t := range types {
		cells[i] = models.Cell{
			Kind:     models.CellKindMarkdown,
			Source:   "# Slide " + string(t),
			Metadata: map[string]any{"slideshow": map[string]any{"slide_type": string(t)}},
		}
	}
	return cells
}

func writeNotebook(t *testing.T, path string, nb *notebook.Notebook) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := notebook.Encode(f, nb); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestIntegration(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "talk.ipynb")
	writeNotebook(t, path, notebook.New(path, slideCells(
		models.SlideTypeSlide, models.SlideTypeFragment, models.SlideTypeSlide, models.SlideTypeSubslide,
	)))

	// Test 1: Present, space and save
	t.Run("SaveWithSpacers", func(t *testing.T) {
		wb := host.NewWorkbench(nil)
		svc := service.New(wb, nil, nil)
		if err := svc.Activate(); err != nil {
			t.Fatalf("activate: %v", err)
		}
		ed, err := wb.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}

		if _, err := svc.Execute(service.CmdToggleSpacers); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if got := len(spacer.Positions(ed.Document())); got != 4 {
			t.Fatalf("expected 4 spacer cells, got %d", got)
		}
		if err := wb.Save(context.Background(), ed); err != nil {
			t.Fatalf("save: %v", err)
		}

		saved, err := notebook.Load(path)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if saved.CellCount() != 4 {
			t.Errorf("saved file should hold the 4 original cells, got %d", saved.CellCount())
		}
		if got := wb.Status().Text(); got != "▣ ⇕ Slide 1/3" {
			t.Errorf("unexpected status %q", got)
		}
	})

	// Test 2: A file left with spacers is repaired on open
	t.Run("RecoverAfterCrash", func(t *testing.T) {
		nb, err := notebook.Load(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		for _, e := range spacer.Plan(nb, models.DefaultConfig()) {
			if err := nb.ApplyEdit(e); err != nil {
				t.Fatalf("apply: %v", err)
			}
		}
		writeNotebook(t, path, nb)

		wb := host.NewWorkbench(nil)
		svc := service.New(wb, nil, nil)
		if err := svc.Activate(); err != nil {
			t.Fatalf("activate: %v", err)
		}
		ed, err := wb.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if n := ed.Document().CellCount(); n != 4 {
			t.Errorf("expected orphans removed on open, got %d cells", n)
		}
	})

	// Test 3: Catalog the directory
	t.Run("Catalog", func(t *testing.T) {
		cat, err := catalog.Open(filepath.Join(tmpDir, "decks.db"))
		if err != nil {
			t.Fatalf("open catalog: %v", err)
		}
		defer cat.Close()

		svc := service.New(host.NewWorkbench(nil), nil, nil)
		res, err := svc.ScanDecks(context.Background(), tmpDir, cat)
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if res.Indexed != 1 {
			t.Errorf("expected 1 deck, got %d", res.Indexed)
		}

		decks, err := cat.Search("", nil)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(decks) != 1 || decks[0].Slides != 3 {
			t.Errorf("unexpected catalog contents: %+v", decks)
		}
	})
}
