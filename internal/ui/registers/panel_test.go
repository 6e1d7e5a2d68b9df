package registers

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/regview/internal/logging"
	"github.com/shhac/regview/internal/model"
	"github.com/shhac/regview/internal/sim"
	"github.com/shhac/regview/internal/ui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPanel(t *testing.T, expanded bool) (*RegisterPanel, *sim.Registers) {
	t.Helper()
	regs := sim.NewRegisters()
	require.NoError(t, regs.Set(sim.PC, 0x10))
	p := NewRegisterPanel(model.NewViewState(expanded), regs, logging.NewNopLogger())
	return p, regs
}

func TestRegisterPanel_InitialState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	tests := []struct {
		name     string
		expanded bool
		glyph    components.Glyph
	}{
		{"collapsed", false, components.GlyphCollapsed},
		{"expanded", true, components.GlyphExpanded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPanel(t, tt.expanded)

			assert.Equal(t, tt.expanded, p.Expanded())
			assert.Equal(t, tt.glyph, p.ToggleControl().Glyph())
			assert.Equal(t, tt.expanded, p.body.Visible())
		})
	}
}

func TestRegisterPanel_TapTogglesState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newTestPanel(t, false)

	test.Tap(p.ToggleControl())
	assert.True(t, p.Expanded())
	assert.Eventually(t, func() bool {
		return p.ToggleControl().Glyph() == components.GlyphExpanded && p.body.Visible()
	}, time.Second, 10*time.Millisecond, "listener should re-render the toggle expanded")

	test.Tap(p.ToggleControl())
	assert.False(t, p.Expanded())
	assert.Eventually(t, func() bool {
		return p.ToggleControl().Glyph() == components.GlyphCollapsed && !p.body.Visible()
	}, time.Second, 10*time.Millisecond, "listener should re-render the toggle collapsed")
}

func TestRegisterPanel_RendersFromBinding(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newTestPanel(t, false)

	require.NoError(t, p.state.RegistersExpanded.Set(true))
	assert.Eventually(t, func() bool {
		return p.ToggleControl().Glyph() == components.GlyphExpanded
	}, time.Second, 10*time.Millisecond)
}

func TestRegisterPanel_CopyToClipboard(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, regs := newTestPanel(t, false)

	p.CopyToClipboard()
	assert.Equal(t, regs.Inspect(), app.Clipboard().Content())
	assert.Contains(t, app.Clipboard().Content(), "PC: 16")

	test.Tap(p.copyButton)
	assert.Equal(t, regs.Inspect(), app.Clipboard().Content())
}

func TestRegisterPanel_ToggleAttrs(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newTestPanel(t, false)
	btn := p.ToggleControl().Button()

	id, ok := btn.Attr(components.AttrID)
	require.True(t, ok)
	assert.Equal(t, ToggleID, id)
	title, _ := btn.Attr(components.AttrTitle)
	assert.Equal(t, "Show registers", title)

	p.Toggle()
	assert.Eventually(t, func() bool {
		title, _ := btn.Attr(components.AttrTitle)
		return title == "Hide registers"
	}, time.Second, 10*time.Millisecond)
}

func TestRegisterPanel_RefreshReadsSource(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, regs := newTestPanel(t, true)
	assert.Equal(t, "0x00000010", p.values[sim.PC].Text)

	require.NoError(t, regs.Set(sim.PC, 0x20))
	p.Refresh()
	assert.Equal(t, "0x00000020", p.values[sim.PC].Text)

	require.NoError(t, p.state.Radix.Set("dec"))
	p.Refresh()
	assert.Equal(t, "32", p.values[sim.PC].Text)
	assert.Equal(t, "Dec", p.radix.Selected)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0x000000FF", FormatValue(255, "hex"))
	assert.Equal(t, "255", FormatValue(255, "dec"))
	assert.Equal(t, "0x000000FF", FormatValue(255, "octal"))
}
