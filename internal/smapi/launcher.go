package smapi

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ExecLauncher runs the installer as a child process attached to the
// current terminal, blocking until it exits. The SMAPI installer is
// interactive, so stdio is passed through.
type ExecLauncher struct{}

// Launch implements Launcher.
func (ExecLauncher) Launch(ctx context.Context, exe, workDir string) error {
	cmd := exec.CommandContext(ctx, exe)
	cmd.Dir = workDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("installer exited: %w", err)
	}
	return nil
}
