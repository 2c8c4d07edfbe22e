package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/service"
	"github.com/mattsolo1/grove-slides/pkg/slidemeta"
	"github.com/mattsolo1/grove-slides/pkg/spacer"
)

func NewSpacersCmd(svc **service.Service) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "spacers <file.ipynb>",
		Short: "Preview the spacer view of a notebook",
		Long: `Show the cell outline of a notebook with spacer cells inserted before
every slide. The file is never modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			ed, err := openDeck(s, args[0])
			if err != nil {
				return err
			}

			before := outline(ed.Document(), !showDiff)
			tr, err := s.Spacers().Toggle(ed, s.Config())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if tr == spacer.TransitionNone {
				_, err := fmt.Fprintln(out, "Nothing to space: fewer than two slides")
				return err
			}
			after := outline(ed.Document(), !showDiff)

			if showDiff {
				return writeOutlineDiff(out, ed.Path(), before, after)
			}
			_, err = io.WriteString(out, strings.Join(after, ""))
			return err
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show a unified diff of the outline")

	return cmd
}

func writeOutlineDiff(w io.Writer, path string, before, after []string) error {
	diff := difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: path,
		ToFile:   path + " (spaced)",
		Context:  1,
	}
	return difflib.WriteUnifiedDiff(w, diff)
}

// outline describes each cell on one line: slide type and the first line of
// its source, prefixed with the cell position when numbered.
func outline(doc notebook.Document, numbered bool) []string {
	lines := make([]string, doc.CellCount())
	for i := range lines {
		c := doc.CellAt(i)
		label := string(slidemeta.ClassifyCell(c).Normalize())
		summary := firstLine(c.Source)
		if kind, ok := slidemeta.SpacerKindOf(c); ok {
			label = "spacer"
			summary = "[" + string(kind) + "]"
		} else if label == string(models.SlideTypeNone) {
			label = "-"
		}
		lines[i] = fmt.Sprintf("%-9s %s\n", label, summary)
		if numbered {
			lines[i] = fmt.Sprintf("%4d  %s", i, lines[i])
		}
	}
	return lines
}

func firstLine(src string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(src), "\n")
	if r := []rune(line); len(r) > 50 {
		line = string(r[:49]) + "…"
	}
	return line
}
