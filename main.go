package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-slides/cmd"
	"github.com/mattsolo1/grove-slides/cmd/config"
	"github.com/mattsolo1/grove-slides/pkg/host"
	"github.com/mattsolo1/grove-slides/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := &cobra.Command{
		Use:           "nbs",
		Short:         "Slide navigation and spacer view for Jupyter notebooks",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	config.AddGlobalFlags(rootCmd)
	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		logger := config.NewLogger()
		wb := host.NewWorkbench(logger)
		svc = service.New(wb, config.NewSettings(nil, logger), logger)
		return svc.Activate()
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewPresentCmd(&svc))
	rootCmd.AddCommand(cmd.NewIndexCmd(&svc))
	rootCmd.AddCommand(cmd.NewGotoCmd(&svc))
	rootCmd.AddCommand(cmd.NewSpacersCmd(&svc))
	rootCmd.AddCommand(cmd.NewCleanCmd(&svc))
	rootCmd.AddCommand(cmd.NewScanCmd(&svc))
	rootCmd.AddCommand(cmd.NewSearchCmd(&svc))
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
