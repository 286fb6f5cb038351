package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	resourceDir string
	gamePath    string
	outputJSON  bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svinstall",
		Short: "Stardew Valley mod installer",
		Long: "svinstall locates a Stardew Valley installation, installs SMAPI,\n" +
			"copies or removes bundled mods, and installs the Stardrop manager.\n" +
			"Run without arguments for the interactive workflow.",
		RunE:          runInteractive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to svinstall.yaml")
	cmd.PersistentFlags().StringVar(&resourceDir, "resources", "", "Directory holding the bundled archives")
	cmd.PersistentFlags().StringVar(&gamePath, "game", "", "Game installation path override")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newPathCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newSmapiCmd())
	cmd.AddCommand(newModsCmd())
	cmd.AddCommand(newStardropCmd())
	cmd.AddCommand(newFetchCmd())

	return cmd
}
