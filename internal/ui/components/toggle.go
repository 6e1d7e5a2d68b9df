package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Glyph is the character a ToggleControl shows for a given expanded state.
type Glyph string

const (
	GlyphCollapsed Glyph = "▼"
	GlyphExpanded  Glyph = "▲"
)

// Fixed toggle geometry. The bottom padding is in multiples of the theme
// text size; at the default theme it leaves less room than the glyph needs,
// so the glyph is pinned to the top edge.
const (
	ToggleWidth            float32 = 27
	ToggleHeight           float32 = 24
	TogglePaddingBottomRem float32 = 1.6
)

// GlyphFor returns the glyph for the given expanded state.
func GlyphFor(expanded bool) Glyph {
	if expanded {
		return GlyphExpanded
	}
	return GlyphCollapsed
}

// ToggleProps are the inputs of a ToggleControl for a single render.
// The zero value renders collapsed with a click that does nothing.
type ToggleProps struct {
	Expanded bool
	OnToggle func()
	Attrs    Attrs
}

// PropsFromAttrs splits an untyped attribute bag into ToggleProps.
// "expanded" is read with Truthy, so absent, nil, 0 and "" all mean collapsed.
// "onToggle" is used only when it is a func(). Every other key is pass-through.
func PropsFromAttrs(bag map[string]any) ToggleProps {
	props := ToggleProps{
		Expanded: Truthy(bag[AttrExpanded]),
		Attrs:    Attrs(bag).without(AttrExpanded, AttrOnToggle),
	}
	if fn, ok := bag[AttrOnToggle].(func()); ok {
		props.OnToggle = fn
	}
	return props
}

// RenderToggle projects toggle props onto the props of the wrapped button.
// The control-specific keys never reach the button's attributes, and the
// variant and click handler are always the toggle's own.
func RenderToggle(props ToggleProps) ButtonProps {
	return ButtonProps{
		Attrs:   props.Attrs.without(AttrExpanded, AttrOnToggle, AttrVariant, AttrOnClick),
		Variant: VariantOutlinePrimary,
		OnClick: props.OnToggle,
		Content: string(GlyphFor(props.Expanded)),
	}
}

// ToggleControl is an expand/collapse button controlled entirely by its
// parent. It shows ▲ when expanded and ▼ otherwise, and calls OnToggle on
// every tap. The parent flips its own state and calls SetProps again.
type ToggleControl struct {
	widget.BaseWidget

	props  ToggleProps
	button *OutlineButton
}

// NewToggleControl creates a toggle rendering props.
func NewToggleControl(props ToggleProps) *ToggleControl {
	t := &ToggleControl{props: props}
	t.button = NewOutlineButton(RenderToggle(props))
	t.button.FixedSize = fyne.NewSize(ToggleWidth, ToggleHeight)
	t.button.PaddingBottomRem = TogglePaddingBottomRem
	t.button.Refresh()
	t.ExtendBaseWidget(t)
	return t
}

// SetProps re-renders the toggle from a fresh set of props.
func (t *ToggleControl) SetProps(props ToggleProps) {
	t.props = props
	t.button.SetProps(RenderToggle(props))
	t.Refresh()
}

// Props returns the props of the latest render.
func (t *ToggleControl) Props() ToggleProps {
	return t.props
}

// Glyph returns the glyph currently displayed.
func (t *ToggleControl) Glyph() Glyph {
	return GlyphFor(t.props.Expanded)
}

// Button returns the wrapped button.
func (t *ToggleControl) Button() *OutlineButton {
	return t.button
}

// Tapped forwards a tap to the wrapped button.
func (t *ToggleControl) Tapped(e *fyne.PointEvent) {
	t.button.Tapped(e)
}

// CreateRenderer implements fyne.Widget.
func (t *ToggleControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.button)
}

// MinSize implements fyne.Widget.
func (t *ToggleControl) MinSize() fyne.Size {
	return fyne.NewSize(ToggleWidth, ToggleHeight)
}
