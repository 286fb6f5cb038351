package smapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"svinstall/internal/paths"
	"svinstall/internal/resource"
)

// State tracks the SMAPI install flow.
type State int

const (
	StateNotChecked State = iota
	StateAbsent
	StatePresent
	StateInstalling
	StateInstalled
	StateFailed
)

// String returns the state name for logs and status output.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePresent:
		return "present"
	case StateInstalling:
		return "installing"
	case StateInstalled:
		return "installed"
	case StateFailed:
		return "failed"
	default:
		return "not checked"
	}
}

// Launcher starts an external installer executable and blocks until it
// exits. Implementations wrap os/exec; tests substitute fakes.
type Launcher interface {
	Launch(ctx context.Context, exe, workDir string) error
}

// Installer orchestrates SMAPI detection and installation for one game
// directory. It drives an external, opaque installer binary rather than
// reimplementing SMAPI's install logic.
type Installer struct {
	GameDir     string
	ResourceDir string
	Launcher    Launcher

	state State
}

// NewInstaller returns an installer in the NotChecked state.
func NewInstaller(gameDir, resourceDir string, launcher Launcher) *Installer {
	if launcher == nil {
		launcher = ExecLauncher{}
	}
	return &Installer{
		GameDir:     gameDir,
		ResourceDir: resourceDir,
		Launcher:    launcher,
		state:       StateNotChecked,
	}
}

// State returns the current flow state.
func (i *Installer) State() State {
	return i.state
}

// MarkerPath returns the file whose presence means SMAPI is installed.
func MarkerPath(gameDir string) string {
	return filepath.Join(gameDir, markerName())
}

func markerName() string {
	if runtime.GOOS == "windows" {
		return "StardewModdingAPI.exe"
	}
	return "StardewModdingAPI"
}

// Detect checks the marker file and moves NotChecked to Absent or Present.
func (i *Installer) Detect() (State, error) {
	ok, err := paths.FileExists(MarkerPath(i.GameDir))
	if err != nil {
		return i.state, fmt.Errorf("check smapi marker: %w", err)
	}
	if ok {
		i.state = StatePresent
	} else {
		i.state = StateAbsent
	}
	return i.state, nil
}

// Install extracts the bundled SMAPI archive, runs the external installer,
// and verifies the marker as the post-condition. On any failure the state
// becomes Failed and the error is returned for the caller to surface; the
// flow is never retried automatically.
func (i *Installer) Install(ctx context.Context) (State, error) {
	if i.state == StatePresent || i.state == StateInstalled {
		return i.state, nil
	}

	i.state = StateInstalling

	archive, err := resource.FindArchive(i.ResourceDir, "SMAPI")
	if err != nil {
		i.state = StateFailed
		return i.state, fmt.Errorf("locate smapi archive: %w", err)
	}

	extracted, err := resource.ExtractArchive(archive, "SMAPI_Installer")
	if err != nil {
		i.state = StateFailed
		return i.state, fmt.Errorf("extract smapi archive: %w", err)
	}

	installer, err := findInstaller(extracted)
	if err != nil {
		i.state = StateFailed
		return i.state, err
	}

	if err := i.Launcher.Launch(ctx, installer, filepath.Dir(installer)); err != nil {
		i.state = StateFailed
		return i.state, fmt.Errorf("run smapi installer: %w", err)
	}

	ok, err := paths.FileExists(MarkerPath(i.GameDir))
	if err != nil {
		i.state = StateFailed
		return i.state, fmt.Errorf("verify smapi marker: %w", err)
	}
	if !ok {
		i.state = StateFailed
		return i.state, fmt.Errorf("smapi installer finished but %s is missing", markerName())
	}

	i.state = StateInstalled
	return i.state, nil
}

// findInstaller walks the extracted archive for the platform installer
// binary. SMAPI ships it under internal/<platform>/ inside a versioned
// top-level folder, so a name search is more robust than a fixed path.
func findInstaller(root string) (string, error) {
	name := installerName()
	var match string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == name {
			match = path
			return io.EOF
		}
		return nil
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("scan smapi archive: %w", err)
	}
	if match == "" {
		return "", fmt.Errorf("smapi installer %s not found under %s", name, root)
	}
	return match, nil
}

func installerName() string {
	if runtime.GOOS == "windows" {
		return "SMAPI.Installer.exe"
	}
	return "SMAPI.Installer"
}
