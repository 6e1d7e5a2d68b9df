package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"
	regviewApp "github.com/shhac/regview/internal/app"
	"github.com/shhac/regview/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp builds and runs the viewer, turning a panic into an error.
func runApp() (err error) {
	// Bootstrap logger until the file logger exists
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg, err := regviewApp.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fyneApp := app.NewWithID("com.regview.viewer")

	viewer, err := regviewApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(fyneApp, viewer)
	viewer.Run(mainWindow.Window())

	viewer.Logger().Info("application shutdown complete")
	return nil
}
