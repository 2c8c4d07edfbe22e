package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-slides/pkg/catalog"
	"github.com/mattsolo1/grove-slides/pkg/frontmatter"
	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/slidemeta"
	"github.com/mattsolo1/grove-slides/pkg/slides"
	"github.com/mattsolo1/grove-slides/pkg/spacer"
)

// maxContent bounds the markdown text stored per deck for search.
const maxContent = 64 * 1024

// Summarize builds the catalog entry of a loaded notebook.
func Summarize(nb *notebook.Notebook, path string, cfg models.Config) *models.Deck {
	deck := &models.Deck{
		Path:    path,
		Title:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Cells:   nb.CellCount(),
		Spacers: len(spacer.Positions(nb)),
	}
	deck.Slides = slides.Boundaries(slides.Build(nb, models.GranularitySlide, cfg))
	for _, e := range slides.Build(nb, models.GranularityFragment, cfg) {
		if e.Type == models.SlideTypeFragment {
			deck.Fragments++
		}
	}

	var content strings.Builder
	titled := false
	skip := -1
	if fm, err := frontmatter.FromNotebook(nb); err == nil && fm != nil {
		fm.Apply(deck)
		titled = fm.Title != ""
		skip = 0
		if fm.Subtitle != "" {
			content.WriteString(fm.Subtitle + "\n")
		}
	}
	for i, c := range nb.Cells() {
		if i == skip || !c.IsMarkup() || slidemeta.IsSpacer(c) {
			continue
		}
		if !titled {
			if t := heading(c.Source); t != "" {
				deck.Title = t
				titled = true
			}
		}
		if content.Len() < maxContent {
			content.WriteString(c.Source)
			content.WriteString("\n")
		}
	}
	deck.Content = truncate(content.String(), maxContent)
	return deck
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// heading returns the text of the first markdown heading in src.
func heading(src string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

// ScanResult reports a catalog scan.
type ScanResult struct {
	Indexed int
	Failed  map[string]error
}

// ScanDecks walks root for notebooks and indexes each into cat. Unreadable
// notebooks are reported in the result and do not stop the scan.
func (s *Service) ScanDecks(ctx context.Context, root string, cat *catalog.Catalog) (*ScanResult, error) {
	cfg := s.config.Current()
	res := &ScanResult{Failed: map[string]error{}}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".ipynb" {
			return nil
		}

		nb, err := notebook.Load(path)
		if err != nil {
			res.Failed[path] = err
			s.logger.WithError(err).WithField("path", path).Debug("skipping notebook")
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		deck := Summarize(nb, abs, cfg)
		if info, err := d.Info(); err == nil {
			deck.ModifiedAt = info.ModTime()
		}
		deck.IndexedAt = time.Now()
		if err := cat.Put(deck); err != nil {
			return fmt.Errorf("index %s: %w", path, err)
		}
		res.Indexed++
		return nil
	})
	if err != nil {
		return res, err
	}

	s.logger.WithFields(logrus.Fields{"root": root, "indexed": res.Indexed, "failed": len(res.Failed)}).Info("scanned decks")
	return res, nil
}

// Clean removes leftover spacer cells from the notebook at path and saves
// it. With dryRun it only counts them.
func (s *Service) Clean(ctx context.Context, path string, dryRun bool) (int, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return 0, fmt.Errorf("resolve path: %w", err)
	}
	nb, err := notebook.Load(abs)
	if err != nil {
		return 0, err
	}
	n := len(spacer.Positions(nb))
	if dryRun || n == 0 {
		return n, nil
	}

	ed := s.wb.OpenNotebook(nb, abs)
	defer s.wb.Close(ed)
	if _, err := s.spacers.RecoverOrphans(nb); err != nil {
		return 0, err
	}
	if err := s.wb.Save(ctx, ed); err != nil {
		return 0, fmt.Errorf("save %s: %w", path, err)
	}
	return n, nil
}
