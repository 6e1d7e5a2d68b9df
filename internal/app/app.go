package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/shhac/regview/internal/logging"
	"github.com/shhac/regview/internal/model"
	"github.com/shhac/regview/internal/sim"
)

// AppName names the log file and preferences.
const AppName = "regview"

// App wires the logger, view state and register file together.
type App struct {
	fyneApp   fyne.App
	window    fyne.Window
	config    *Config
	logger    *slog.Logger
	state     *model.ViewState
	registers *sim.Registers
}

// New creates a new App instance with the given configuration.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger(logging.Options{
		AppName: AppName,
		Debug:   cfg.Debug,
		Dir:     cfg.LogDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return newWithLogger(fyneApp, cfg, logger)
}

func newWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing register viewer",
		slog.Bool("debug", cfg.Debug),
		slog.String("theme", cfg.Theme),
		slog.Bool("expanded", cfg.Expanded),
	)

	regs := sim.NewRegisters()
	if err := seedRegisters(regs); err != nil {
		return nil, fmt.Errorf("failed to seed registers: %w", err)
	}

	return &App{
		fyneApp:   fyneApp,
		config:    cfg,
		logger:    logger,
		state:     model.NewViewState(cfg.Expanded),
		registers: regs,
	}, nil
}

// seedRegisters puts the processor in its reset state.
func seedRegisters(regs *sim.Registers) error {
	if err := regs.Set(sim.PC, 0); err != nil {
		return err
	}
	return regs.Set(sim.SP, 0xFFFF)
}

// Run shows the window and blocks in the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// State returns the view state.
func (a *App) State() *model.ViewState {
	return a.state
}

// Registers returns the register file.
func (a *App) Registers() *sim.Registers {
	return a.registers
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the active configuration.
func (a *App) Config() *Config {
	return a.config
}

// ThemeSetting returns the configured theme mode, "" when unset.
func (a *App) ThemeSetting() string {
	return a.config.Theme
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
