package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-slides/pkg/service"
)

func NewCleanCmd(svc **service.Service) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean <file.ipynb>...",
		Short: "Remove leftover spacer cells from saved notebooks",
		Long: `Remove spacer cells that were left in notebook files, for example when
the editor exited between removing and restoring them around a save.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			out := cmd.OutOrStdout()

			var errs []error
			total := 0
			for _, path := range args {
				n, err := s.Clean(cmd.Context(), path, dryRun)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				total += n
				switch {
				case n == 0:
					fmt.Fprintf(out, "✓ %s: clean\n", path)
				case dryRun:
					fmt.Fprintf(out, "• %s: would remove %d spacer cells\n", path, n)
				default:
					fmt.Fprintf(out, "✓ %s: removed %d spacer cells\n", path, n)
				}
			}

			if dryRun && total > 0 {
				fmt.Fprintln(out, "\nRun without --dry-run to remove them.")
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only report what would be removed")

	return cmd
}
