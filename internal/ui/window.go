package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/regview/internal/model"
	"github.com/shhac/regview/internal/sim"
	"github.com/shhac/regview/internal/ui/registers"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
)

// AppController is what the window needs from the application.
type AppController interface {
	State() *model.ViewState
	Registers() *sim.Registers
	Logger() *slog.Logger
	ThemeSetting() string
}

// MainWindow is the viewer's single window.
type MainWindow struct {
	window fyne.Window
	logger *slog.Logger

	registerPanel *registers.RegisterPanel
	themeSelector *widget.Select
}

// NewMainWindow applies the startup theme and creates the window with the
// register panel on top and the theme selector in the footer.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Register Viewer")

	mode := LoadThemePreference(fyneApp, app.ThemeSetting())
	app.Logger().Debug("theme applied", slog.String("mode", mode))

	mw := &MainWindow{
		window:        window,
		logger:        app.Logger(),
		registerPanel: registers.NewRegisterPanel(app.State(), app.Registers(), app.Logger()),
		themeSelector: CreateThemeSelector(fyneApp, mode),
	}

	mw.SetContent()
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(640, 480))
	return mw
}

// SetContent builds the window layout inside a tooltip layer.
func (w *MainWindow) SetContent() {
	footer := container.NewHBox(widget.NewLabel("Theme"), w.themeSelector)
	content := container.NewBorder(nil, footer, nil, nil, container.NewVScroll(w.registerPanel))
	w.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, w.window.Canvas()))
}

// RegisterPanel returns the register panel.
func (w *MainWindow) RegisterPanel() *registers.RegisterPanel {
	return w.registerPanel
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
