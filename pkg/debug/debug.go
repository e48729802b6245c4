// Package debug provides optional file-based debug logging.
//
// Logging is a no-op until Init is called, either directly or through
// InitFromEnv when the RECT2I_DEBUG environment variable holds a file path.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable read by InitFromEnv.
const EnvVar = "RECT2I_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
)

// Init opens the debug log at path, appending to it.
// If path is empty, uses "debug.log" in the current directory.
// Calling Init again switches to the new file; an error closing the previous
// file is returned after the switch.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	old := logFile
	logFile = f
	if old != nil {
		if err := old.Close(); err != nil {
			return fmt.Errorf("failed to close previous debug log: %w", err)
		}
	}
	return nil
}

// InitFromEnv calls Init with the path in RECT2I_DEBUG, if set.
func InitFromEnv() error {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil
	}
	return Init(path)
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled returns true if a log file is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
