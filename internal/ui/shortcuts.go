package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures the window's keyboard shortcuts.
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+R: Show/hide registers
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: toggle registers")
		w.registerPanel.Toggle()
	})

	// F5: Re-read register values
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName: fyne.KeyF5,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: refresh registers")
		w.registerPanel.Refresh()
	})
}
