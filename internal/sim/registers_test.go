package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisters_GetSet(t *testing.T) {
	r := NewRegisters()

	require.NoError(t, r.Set(PC, 0x40))
	require.NoError(t, r.Set(0, 7))

	v, err := r.Get(PC)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x40), v)

	v, err = r.Get(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)
}

func TestRegisters_OutOfRange(t *testing.T) {
	r := NewRegisters()

	for _, i := range []int{-1, RegisterCount, 100} {
		_, err := r.Get(i)
		assert.ErrorIs(t, err, ErrRegisterIndex)
		assert.ErrorIs(t, r.Set(i, 1), ErrRegisterIndex)
	}
}

func TestRegisters_SnapshotIsCopy(t *testing.T) {
	r := NewRegisters()
	require.NoError(t, r.Set(SP, 99))

	snap := r.Snapshot()
	snap[SP] = 0

	v, _ := r.Get(SP)
	assert.Equal(t, uint32(99), v)
}

func TestName(t *testing.T) {
	tests := map[int]string{
		0:     "R0",
		25:    "R25",
		INTLR: "INTLR",
		IHDLR: "IHDLR",
		PC:    "PC",
		STS:   "STS",
		SP:    "SP",
		LR:    "LR",
	}
	for i, want := range tests {
		assert.Equal(t, want, Name(i))
	}
}

func TestRegisters_Inspect(t *testing.T) {
	r := NewRegisters()
	require.NoError(t, r.Set(PC, 12))

	lines := strings.Split(strings.TrimSuffix(r.Inspect(), "\n"), "\n")
	require.Len(t, lines, RegisterCount)
	assert.Equal(t, "R0: 0", lines[0])
	assert.Equal(t, "PC: 12", lines[PC])
}
