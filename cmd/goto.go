package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/service"
	"github.com/mattsolo1/grove-slides/pkg/slides"
)

var gotoActions = map[string]string{
	"next":          service.CmdNextSlide,
	"prev":          service.CmdPrevSlide,
	"next-fragment": service.CmdNextFragment,
	"prev-fragment": service.CmdPrevFragment,
	"first":         service.CmdFirstSlide,
	"last":          service.CmdLastSlide,
}

func gotoActionNames() []string {
	names := make([]string, 0, len(gotoActions))
	for name := range gotoActions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewGotoCmd(svc **service.Service) *cobra.Command {
	var at int

	cmd := &cobra.Command{
		Use:   "goto <action> <file.ipynb>",
		Short: "Run one navigation command and print where it lands",
		Long: fmt.Sprintf(`Run one navigation command from cell --at and print the target cell
and the position indicator.

Actions: %s

Examples:
  nbs goto next talk.ipynb --at 3
  nbs goto last talk.ipynb`, strings.Join(gotoActionNames(), ", ")),
		Args:      cobra.ExactArgs(2),
		ValidArgs: gotoActionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := gotoActions[args[0]]
			if !ok {
				return fmt.Errorf("unknown action %q (want one of %s)", args[0], strings.Join(gotoActionNames(), ", "))
			}

			s := *svc
			ed, err := openDeck(s, args[1])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("at") {
				ed.SetSelection(notebook.Single(at))
			}

			msg, err := s.Execute(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if msg != "" {
				fmt.Fprintln(out, msg)
			}
			fmt.Fprintf(out, "cell: %d\n", slides.CurrentPosition(ed))
			if status := s.Workbench().Status().Rendered(); status != "" {
				fmt.Fprintln(out, status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "Cell to start from")

	return cmd
}
