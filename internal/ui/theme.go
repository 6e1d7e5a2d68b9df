package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ThemePreferenceKey is the preferences key holding the theme mode.
const ThemePreferenceKey = "regviewTheme"

// themeModes maps selector labels to theme modes, in display order.
var themeModes = []struct {
	label string
	mode  string
}{
	{"System Default", "system"},
	{"Light", "light"},
	{"Dark", "dark"},
}

// forcedVariant pins a theme to one variant regardless of the OS setting.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// Color returns the colour for the pinned variant.
func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ThemeFor returns the theme for mode: "dark", "light" or anything else for system.
func ThemeFor(mode string) fyne.Theme {
	switch mode {
	case "dark":
		return &forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark}
	case "light":
		return &forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight}
	default:
		return theme.DefaultTheme()
	}
}

// ApplyTheme sets the application theme for mode.
func ApplyTheme(a fyne.App, mode string) {
	a.Settings().SetTheme(ThemeFor(mode))
}

// ResolveTheme picks the startup theme mode. A configured mode wins;
// otherwise the mode saved from the selector is used, then "system".
func ResolveTheme(a fyne.App, configured string) string {
	if configured != "" {
		return configured
	}
	return a.Preferences().StringWithFallback(ThemePreferenceKey, "system")
}

// LoadThemePreference applies the mode chosen by ResolveTheme and returns it.
// Nothing is written to preferences.
func LoadThemePreference(a fyne.App, configured string) string {
	mode := ResolveTheme(a, configured)
	ApplyTheme(a, mode)
	return mode
}

// SaveThemePreference stores and applies mode.
func SaveThemePreference(a fyne.App, mode string) {
	a.Preferences().SetString(ThemePreferenceKey, mode)
	ApplyTheme(a, mode)
}

// CreateThemeSelector returns a select showing current that saves and
// applies whatever the user picks. Building it changes nothing.
func CreateThemeSelector(a fyne.App, current string) *widget.Select {
	labels := make([]string, len(themeModes))
	for i, m := range themeModes {
		labels[i] = m.label
	}

	selector := widget.NewSelect(labels, nil)
	// Set before OnChanged so the initial value is not saved back.
	selector.Selected = labelForMode(current)
	selector.OnChanged = func(selected string) {
		SaveThemePreference(a, modeForLabel(selected))
	}
	return selector
}

func modeForLabel(label string) string {
	for _, m := range themeModes {
		if m.label == label {
			return m.mode
		}
	}
	return "system"
}

func labelForMode(mode string) string {
	for _, m := range themeModes {
		if m.mode == mode {
			return m.label
		}
	}
	return themeModes[0].label
}
