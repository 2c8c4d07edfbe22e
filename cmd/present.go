package cmd

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-slides/internal/tui/presenter"
	"github.com/mattsolo1/grove-slides/pkg/service"
)

func NewPresentCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "present <file.ipynb>",
		Short: "Present a notebook interactively",
		Long: `Open a notebook in the terminal presenter.

Keys:
  n / p        next / previous slide
  l / h        next / previous fragment
  g / G        first / last slide
  j / k        move the cursor one cell
  t            toggle spacer view
  ctrl+s       save (spacers are never written)
  ?            help
  q            quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("present needs an interactive terminal")
			}
			s := *svc
			ed, err := openDeck(s, args[0])
			if err != nil {
				return err
			}
			return presenter.Run(s.Workbench(), s, ed)
		},
	}
}
