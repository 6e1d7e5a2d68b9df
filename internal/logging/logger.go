// Package logging sets up the viewer's structured logger.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the size at which the log file is rotated (5 MB).
	maxLogSize = 5 * 1024 * 1024
	// maxLogBackups is the number of rotated files kept next to the live log.
	maxLogBackups = 3
)

// Options configures InitLogger.
type Options struct {
	// AppName names the log directory and file.
	AppName string
	// Debug switches to DEBUG level and adds source locations.
	Debug bool
	// Dir overrides the platform log directory when set.
	Dir string
}

// InitLogger returns a JSON logger appending to <dir>/<app>.log, where dir
// defaults to the platform log location:
//   - macOS:   ~/Library/Logs/<app>
//   - Linux:   ~/.local/state/<app>
//   - Windows: %LOCALAPPDATA%\<app>\Logs
func InitLogger(opts Options) (*slog.Logger, error) {
	logPath, err := LogFilePath(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get log file path: %w", err)
	}

	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	if err := rotateIfNeeded(logPath); err != nil {
		return nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Debug,
	})

	return slog.New(handler).With(slog.String("app", opts.AppName)), nil
}

// rotateIfNeeded shifts app.log → app.log.1 → app.log.2 ... once the live
// file reaches maxLogSize, dropping the oldest backup.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if info.Size() < maxLogSize {
		return nil
	}

	_ = os.Remove(fmt.Sprintf("%s.%d", logPath, maxLogBackups))
	for i := maxLogBackups - 1; i >= 1; i-- {
		_ = os.Rename(fmt.Sprintf("%s.%d", logPath, i), fmt.Sprintf("%s.%d", logPath, i+1))
	}

	if err := os.Rename(logPath, logPath+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// LogFilePath returns where InitLogger writes for opts.
func LogFilePath(opts Options) (string, error) {
	if opts.AppName == "" {
		return "", fmt.Errorf("app name is required")
	}
	if opts.Dir != "" {
		return filepath.Join(opts.Dir, opts.AppName+".log"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	name := opts.AppName
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", name, name+".log"), nil
	case "linux":
		return filepath.Join(homeDir, ".local", "state", name, name+".log"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, name, "Logs", name+".log"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// NewNopLogger returns a logger that discards everything. Used in tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
