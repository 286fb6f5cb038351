package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"svinstall/internal/paths"
)

// New creates a logger that writes to a timestamped file inside the global
// logs directory. The returned closer should be closed when logging is no
// longer needed.
func New() (*log.Logger, io.Closer, error) {
	dir, err := paths.GlobalLogsDir()
	if err != nil {
		return nil, nil, fmt.Errorf("ensure logs directory: %w", err)
	}

	filename := time.Now().Format("20060102-150405") + ".log"
	filePath := filepath.Join(dir, filename)
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.New(file, "", log.LstdFlags|log.Lmicroseconds)
	return logger, file, nil
}

// Discard returns a logger that drops all output, for callers that do not
// need a log file.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
