package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"svinstall/internal/mods"
	"svinstall/internal/smapi"
	"svinstall/internal/stardrop"
	"svinstall/internal/steam"
)

type statusReport struct {
	GamePath      string `json:"game_path,omitempty"`
	GameFound     bool   `json:"game_found"`
	SmapiState    string `json:"smapi_state"`
	ModsInstalled int    `json:"mods_installed"`
	ModsAvailable int    `json:"mods_available"`
	Stardrop      bool   `json:"stardrop_installed"`
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what is installed where",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, resDir, err := loadConfig()
	if err != nil {
		return err
	}

	report := statusReport{SmapiState: smapi.StateNotChecked.String()}

	install, err := resolveGame(cfg)
	if err != nil {
		if !errors.Is(err, steam.ErrNotFound) {
			return err
		}
	} else {
		report.GameFound = true
		report.GamePath = install.GameDir

		detector := smapi.NewInstaller(install.GameDir, resDir, nil)
		if state, err := detector.Detect(); err == nil {
			report.SmapiState = state.String()
		}

		if sourceDir, err := modSourceDir(resDir); err == nil {
			manager := mods.NewManager(sourceDir, install.ModsDir)
			if list, err := manager.List(); err == nil {
				report.ModsAvailable = len(list)
				for _, mod := range list {
					if manager.Installed(mod.Name) {
						report.ModsInstalled++
					}
				}
			}
		}

		report.Stardrop = stardrop.Installed(install.StardropDir)
	}

	if outputJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if !report.GameFound {
		cmd.Println(steam.NotFoundMessage)
		return nil
	}
	cmd.Printf("Game path:  %s\n", report.GamePath)
	cmd.Printf("SMAPI:      %s\n", report.SmapiState)
	cmd.Printf("Mods:       %d of %d bundled mods installed\n", report.ModsInstalled, report.ModsAvailable)
	stardropState := "absent"
	if report.Stardrop {
		stardropState = "present"
	}
	cmd.Printf("Stardrop:   %s\n", stardropState)
	return nil
}
