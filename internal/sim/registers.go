// Package sim holds the processor state shown by the viewer.
package sim

import (
	"errors"
	"fmt"
	"strings"
)

// RegisterCount is the size of the register file.
const RegisterCount = 32

// Special purpose register indexes. 0 through 25 are general purpose.
const (
	INTLR = 26 // interrupt link return address
	IHDLR = 27 // interrupt handler address
	PC    = 28 // program counter
	STS   = 29 // status
	SP    = 30 // stack pointer
	LR    = 31 // subroutine link return address
)

// ErrRegisterIndex is returned for an index outside the register file.
var ErrRegisterIndex = errors.New("register index out of range")

var specialNames = map[int]string{
	INTLR: "INTLR",
	IHDLR: "IHDLR",
	PC:    "PC",
	STS:   "STS",
	SP:    "SP",
	LR:    "LR",
}

// Registers is the processor register file.
type Registers struct {
	file [RegisterCount]uint32
}

// NewRegisters returns a zeroed register file.
func NewRegisters() *Registers {
	return &Registers{}
}

// Get returns the value of register i.
func (r *Registers) Get(i int) (uint32, error) {
	if err := checkIndex(i); err != nil {
		return 0, err
	}
	return r.file[i], nil
}

// Set stores v in register i.
func (r *Registers) Set(i int, v uint32) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	r.file[i] = v
	return nil
}

// Snapshot returns a copy of every register.
func (r *Registers) Snapshot() [RegisterCount]uint32 {
	return r.file
}

// Inspect returns one "NAME: value" line per register.
func (r *Registers) Inspect() string {
	var b strings.Builder
	for i, v := range r.file {
		fmt.Fprintf(&b, "%s: %d\n", Name(i), v)
	}
	return b.String()
}

// Name returns the display name of register i: R0..R25 for general purpose
// registers, the mnemonic otherwise.
func Name(i int) string {
	if n, ok := specialNames[i]; ok {
		return n
	}
	return fmt.Sprintf("R%d", i)
}

func checkIndex(i int) error {
	if i < 0 || i >= RegisterCount {
		return fmt.Errorf("%w: %d", ErrRegisterIndex, i)
	}
	return nil
}
