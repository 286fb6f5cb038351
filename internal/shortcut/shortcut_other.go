//go:build !windows

package shortcut

// CreateDesktop is a stub on non-Windows platforms.
func CreateDesktop(name, target string) error {
	return ErrUnsupported
}
