package cli

import (
	"fmt"
	"path/filepath"

	"svinstall/internal/config"
	"svinstall/internal/paths"
	"svinstall/internal/resource"
	"svinstall/internal/steam"
)

// loadConfig reads svinstall.yaml from the explicit --config path or from
// the resource directory.
func loadConfig() (config.Config, string, error) {
	resDir, err := paths.ResourceDir(resourceDir)
	if err != nil {
		return config.Config{}, "", err
	}

	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(resDir, config.FileName)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, "", err
	}

	if cfg.ResourceDir != "" && resourceDir == "" {
		resDir, err = paths.ResourceDir(cfg.ResourceDir)
		if err != nil {
			return config.Config{}, "", err
		}
	}
	return cfg, resDir, nil
}

// resolveGame runs the path finder and derives the install locations. The
// --game flag wins over the configured override.
func resolveGame(cfg config.Config) (paths.InstallPaths, error) {
	override := gamePath
	if override == "" {
		override = cfg.GamePath
	}
	finder := steam.DefaultFinder(override)
	gameDir, err := finder.Find()
	if err != nil {
		return paths.InstallPaths{}, err
	}
	return paths.ForGame(gameDir), nil
}

// modSourceDir resolves the unpacked bundled mods directory, extracting the
// bundled Mods archive on first use. A plain Mods directory next to the
// resources is used as-is.
func modSourceDir(resDir string) (string, error) {
	plain := filepath.Join(resDir, "Mods")
	if ok, err := paths.DirExists(plain); err == nil && ok {
		return plain, nil
	}

	archive, err := resource.FindArchive(resDir, "Mods")
	if err != nil {
		return "", fmt.Errorf("locate bundled mods: %w", err)
	}
	extracted, err := resource.ExtractArchive(archive, "Mods")
	if err != nil {
		return "", fmt.Errorf("extract bundled mods: %w", err)
	}
	return extracted, nil
}
