package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/service"
	"github.com/mattsolo1/grove-slides/pkg/slides"
)

func NewIndexCmd(svc **service.Service) *cobra.Command {
	var (
		fragments bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "index <file.ipynb>",
		Short: "Print the slide index of a notebook",
		Long: `Print the navigation stops of a notebook.

Examples:
  nbs index talk.ipynb                  # slides and subslides
  nbs index talk.ipynb --fragments      # include fragments
  nbs index talk.ipynb --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			ed, err := openDeck(s, args[0])
			if err != nil {
				return err
			}

			g := models.GranularitySlide
			if fragments {
				g = models.GranularityFragment
			}
			idx := slides.Build(ed.Document(), g, s.Config())
			if idx == nil {
				idx = models.SlideIndex{}
			}
			return writeIndex(cmd.OutOrStdout(), idx, format)
		},
	}

	cmd.Flags().BoolVar(&fragments, "fragments", false, "Include fragments")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")

	return cmd
}

func writeIndex(w io.Writer, idx models.SlideIndex, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(idx)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(idx)
	case "table":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if len(idx) == 0 {
		_, err := fmt.Fprintln(w, "No slide metadata found")
		return err
	}

	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CELL\tSLIDE\tTYPE")
	for _, e := range idx {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", e.Position, e.Ordinal, title.String(string(e.Type)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d slides, %d stops\n", slides.Boundaries(idx), len(idx))
	return err
}
