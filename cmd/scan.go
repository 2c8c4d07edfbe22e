package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-slides/pkg/service"
)

func NewScanCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "Add every notebook under a directory to the deck catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			res, err := (*svc).ScanDecks(cmd.Context(), args[0], cat)
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Indexed %d decks\n", res.Indexed)
			if len(res.Failed) > 0 {
				paths := make([]string, 0, len(res.Failed))
				for p := range res.Failed {
					paths = append(paths, p)
				}
				sort.Strings(paths)
				fmt.Fprintf(out, "\nSkipped %d unreadable notebooks:\n", len(paths))
				for _, p := range paths {
					fmt.Fprintf(out, "  %s: %v\n", p, res.Failed[p])
				}
			}
			return nil
		},
	}
}
