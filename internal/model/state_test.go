package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewState(t *testing.T) {
	for _, expanded := range []bool{false, true} {
		s := NewViewState(expanded)

		got, err := s.RegistersExpanded.Get()
		require.NoError(t, err)
		assert.Equal(t, expanded, got)

		radix, err := s.Radix.Get()
		require.NoError(t, err)
		assert.Equal(t, "hex", radix)
	}
}
