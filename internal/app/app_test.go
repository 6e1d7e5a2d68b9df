package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/regview/internal/logging"
	"github.com/shhac/regview/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	cfg := DefaultConfig()
	cfg.LogDir = t.TempDir()
	cfg.Expanded = true

	a, err := New(fyneApp, cfg)
	require.NoError(t, err)

	expanded, err := a.State().RegistersExpanded.Get()
	require.NoError(t, err)
	assert.True(t, expanded)
	assert.Equal(t, cfg, a.Config())
	assert.NotNil(t, a.Logger())
	assert.Equal(t, fyneApp, a.FyneApp())
}

func TestNew_SeedsRegisters(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	a, err := newWithLogger(fyneApp, DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)

	sp, err := a.Registers().Get(sim.SP)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFF), sp)

	expanded, _ := a.State().RegistersExpanded.Get()
	assert.False(t, expanded)
}
