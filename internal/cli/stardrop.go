package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"svinstall/internal/logx"
	"svinstall/internal/stardrop"
)

var stardropReextract bool

func newStardropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stardrop",
		Short: "Manage the Stardrop mod manager",
	}
	cmd.AddCommand(newStardropInstallCmd())
	return cmd
}

func newStardropInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Extract Stardrop and create a desktop shortcut",
		RunE:  runStardropInstall,
	}
	cmd.Flags().BoolVar(&stardropReextract, "reextract", false, "Replace an existing Stardrop install")
	return cmd
}

func runStardropInstall(cmd *cobra.Command, _ []string) error {
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

	opts := stardrop.Options{
		Reextract: stardropReextract || cfg.Stardrop.Reextract,
		Shortcut:  cfg.Stardrop.ShortcutValue(),
	}

	result, err := stardrop.Install(resDir, install.StardropDir, opts)
	if err != nil {
		logger.Printf("stardrop install failed: %v", err)
		return fmt.Errorf("Stardrop install did not complete: %w (retry when ready)", err)
	}
	logger.Printf("stardrop install: dir %s extracted=%v shortcut=%v", result.Dir, result.Extracted, result.ShortcutCreated)

	if outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if result.Extracted {
		cmd.Printf("Stardrop installed to %s.\n", result.Dir)
	} else {
		cmd.Printf("Stardrop already present at %s; extraction skipped.\n", result.Dir)
	}
	if result.ShortcutCreated {
		cmd.Println("Desktop shortcut created.")
	} else if result.ShortcutNote != "" {
		cmd.Printf("Shortcut not created: %s\n", result.ShortcutNote)
	}
	return nil
}
