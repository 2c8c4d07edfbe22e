package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-slides/pkg/catalog"
	"github.com/mattsolo1/grove-slides/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var (
		searchLimit int
		needsClean  bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the deck catalog",
		Long: `Search scanned decks by title and markdown content.

Examples:
  nbs search "kubernetes"         # decks mentioning kubernetes
  nbs search --needs-clean        # decks saved with spacer cells`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			query := strings.Join(args, " ")
			results, err := cat.Search(query, &catalog.Options{Limit: searchLimit, NeedsCleaning: needsClean})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No results found")
				return nil
			}

			fmt.Fprintf(out, "Found %d results:\n\n", len(results))
			for i, deck := range results {
				fmt.Fprintf(out, "%d. %s\n", i+1, deck.Title)
				fmt.Fprintf(out, "   %s\n", deck.Path)
				if deck.Author != "" {
					fmt.Fprintf(out, "   by %s\n", deck.Author)
				}
				if len(deck.Tags) > 0 {
					fmt.Fprintf(out, "   tags: %s\n", strings.Join(deck.Tags, ", "))
				}
				fmt.Fprintf(out, "   %d slides, %d fragments, %d cells", deck.Slides, deck.Fragments, deck.Cells)
				if deck.NeedsCleaning() {
					fmt.Fprintf(out, " (%d leftover spacer cells, run `nbs clean`)", deck.Spacers)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 50, "Maximum results")
	cmd.Flags().BoolVar(&needsClean, "needs-clean", false, "Only decks saved with spacer cells")

	return cmd
}
