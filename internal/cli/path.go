package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"svinstall/internal/steam"
)

var (
	pathGame      bool
	pathMods      bool
	pathLocalized bool
	pathWait      bool
)

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the resolved game installation path",
		RunE:  runPath,
	}

	cmd.Flags().BoolVarP(&pathGame, "game-path", "g", false, "Print the bare installation path")
	cmd.Flags().BoolVarP(&pathMods, "mods-path", "m", false, "Print the installation path with Mods appended")
	cmd.Flags().BoolVarP(&pathLocalized, "localized", "c", false, "Print the localized sentence")
	cmd.Flags().BoolVar(&pathWait, "wait", false, "Wait for a key press before exiting")

	return cmd
}

func runPath(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	// No selection behaves like the localized query, interactively.
	interactive := false
	if !pathGame && !pathMods && !pathLocalized {
		pathLocalized = true
		interactive = true
	}

	install, err := resolveGame(cfg)
	if err != nil {
		if errors.Is(err, steam.ErrNotFound) {
			cmd.Println(steam.NotFoundMessage)
			if interactive || pathWait {
				waitForEnter(cmd)
			}
			return nil
		}
		return err
	}

	if pathGame {
		cmd.Println(steam.Render(install.GameDir, steam.FormatGame))
	}
	if pathMods {
		cmd.Println(steam.Render(install.GameDir, steam.FormatMods))
	}
	if pathLocalized {
		cmd.Println(steam.Render(install.GameDir, steam.FormatLocalized))
	}

	if interactive || pathWait {
		waitForEnter(cmd)
	}
	return nil
}

func waitForEnter(cmd *cobra.Command) {
	cmd.Println("\n按回车键退出...")
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}
