package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svinstall/internal/logx"
	"svinstall/internal/smapi"
)

var smapiYes bool

func newSmapiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smapi",
		Short: "Manage the SMAPI modding API",
	}
	cmd.AddCommand(newSmapiInstallCmd())
	return cmd
}

func newSmapiInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install SMAPI via the bundled installer",
		RunE:  runSmapiInstall,
	}
	cmd.Flags().BoolVarP(&smapiYes, "yes", "y", false, "Start the installer without asking")
	return cmd
}

func runSmapiInstall(cmd *cobra.Command, _ []string) error {
	cfg, resDir, err := loadConfig()
	if err != nil {
		return err
	}
	install, err := resolveGame(cfg)
	if err != nil {
		return err
	}

	logger, closer, err := logx.New()
	if err != nil {
		logger = logx.Discard()
	} else {
		defer closer.Close()
	}

	installer := smapi.NewInstaller(install.GameDir, resDir, nil)
	state, err := installer.Detect()
	if err != nil {
		return err
	}
	if state == smapi.StatePresent {
		cmd.Println("SMAPI is already installed; nothing to do.")
		return nil
	}

	if !smapiYes && !cfg.SMAPI.AutoConfirm {
		if !confirm(cmd, "SMAPI is not installed. Run the bundled installer now?") {
			cmd.Println("Skipped.")
			return nil
		}
	}

	cmd.Println("Starting the SMAPI installer; follow its prompts...")
	logger.Printf("smapi install: game dir %s", install.GameDir)

	state, err = installer.Install(cmd.Context())
	if err != nil {
		logger.Printf("smapi install failed: %v", err)
		return fmt.Errorf("SMAPI install did not complete: %w (retry when ready)", err)
	}

	logger.Printf("smapi install: state %s", state)
	cmd.Println("SMAPI installed.")
	cmd.Printf("Add this to the game's Steam launch options to load SMAPI:\n")
	cmd.Printf("  %q %%command%%\n", smapi.MarkerPath(install.GameDir))
	return nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	cmd.Printf("%s (y/N) ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
