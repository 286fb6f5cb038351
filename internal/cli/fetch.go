package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svinstall/internal/paths"
	"svinstall/internal/release"
)

var fetchForce bool

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [smapi|stardrop|all]",
		Short: "Download the latest upstream release archives",
		Long: "fetch queries GitHub for the latest SMAPI and Stardrop releases and\n" +
			"downloads the installer archives into the resource directory, so a\n" +
			"distribution can be refreshed without rebuilding.",
		Args: cobra.MaximumNArgs(1),
		RunE: runFetch,
	}
	cmd.Flags().BoolVar(&fetchForce, "force", false, "Re-download even if the archive already exists")
	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	_, resDir, err := loadConfig()
	if err != nil {
		return err
	}

	target := "all"
	if len(args) == 1 {
		target = strings.ToLower(args[0])
	}

	var names []string
	if target == "all" {
		names = release.KnownComponents()
	} else {
		if _, ok := release.Definition(target); !ok {
			return fmt.Errorf("unknown component: %s", target)
		}
		names = []string{target}
	}

	cacheDir, err := paths.GlobalCacheDir()
	if err != nil {
		return err
	}
	client := release.NewClient(cacheDir)

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	var (
		specs []release.Spec
		errs  []error
	)
	for _, name := range names {
		spec, err := client.Resolve(ctx, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		dest, err := client.Download(ctx, spec, resDir, fetchForce)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		specs = append(specs, spec)
		if !outputJSON {
			cmd.Printf("%-10s %-12s %s\n", spec.Component, spec.Version, dest)
		}
	}

	if outputJSON {
		data, err := json.MarshalIndent(specs, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
