// Package shortcut creates desktop shortcuts through the platform shell.
package shortcut

import "errors"

// ErrUnsupported is returned on platforms without .lnk shortcut support.
var ErrUnsupported = errors.New("desktop shortcuts are only supported on windows")
