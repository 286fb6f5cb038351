//go:build windows

package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// CreateDesktop creates (or replaces) a shortcut named <name>.lnk on the
// current user's desktop pointing at target.
func CreateDesktop(name, target string) error {
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("shortcut target not found: %s", target)
	}

	desktop, err := desktopPath()
	if err != nil {
		return err
	}
	lnkPath := filepath.Join(desktop, name+".lnk")

	// COM is thread-bound.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		if oleErr, ok := err.(*ole.OleError); ok {
			code := oleErr.Code()
			if code != 0 && code != 1 { // S_OK, S_FALSE
				return fmt.Errorf("COM initialization failed: %v", err)
			}
		}
	}
	defer ole.CoUninitialize()

	return create(lnkPath, target)
}

func create(lnkPath, target string) error {
	if _, err := os.Stat(lnkPath); err == nil {
		_ = os.Remove(lnkPath)
	}

	shellObject, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("create WScript.Shell object: %v", err)
	}
	defer shellObject.Release()

	wshell, err := shellObject.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("get shell interface: %v", err)
	}
	defer wshell.Release()

	variant, err := oleutil.CallMethod(wshell, "CreateShortcut", lnkPath)
	if err != nil {
		return fmt.Errorf("create shortcut object: %v", err)
	}
	lnk := variant.ToIDispatch()
	defer lnk.Release()

	if _, err := oleutil.PutProperty(lnk, "TargetPath", target); err != nil {
		return fmt.Errorf("set target path: %v", err)
	}
	if _, err := oleutil.PutProperty(lnk, "WorkingDirectory", filepath.Dir(target)); err != nil {
		return fmt.Errorf("set working directory: %v", err)
	}
	if _, err := oleutil.CallMethod(lnk, "Save"); err != nil {
		return fmt.Errorf("save shortcut: %v", err)
	}
	return nil
}

func desktopPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}
