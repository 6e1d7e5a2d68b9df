package model

import "fyne.io/fyne/v2/data/binding"

// ViewState is the viewer's UI state held in Fyne data bindings.
// Panels read and write these values; widgets below them stay stateless.
type ViewState struct {
	// RegistersExpanded controls whether the register table is shown.
	RegistersExpanded binding.Bool

	// Radix is the number base used to display register values: "hex" or "dec".
	Radix binding.String
}

// NewViewState creates a ViewState with the given initial expanded flag.
func NewViewState(expanded bool) *ViewState {
	regs := binding.NewBool()
	_ = regs.Set(expanded)

	radix := binding.NewString()
	_ = radix.Set("hex") // Default to hex

	return &ViewState{
		RegistersExpanded: regs,
		Radix:             radix,
	}
}
