package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// Compile-time interface checks.
var (
	_ fyne.Tappable      = (*OutlineButton)(nil)
	_ desktop.Hoverable  = (*OutlineButton)(nil)
	_ desktop.Cursorable = (*OutlineButton)(nil)
)

// Variant selects the visual style of an OutlineButton.
type Variant string

const (
	VariantOutlinePrimary   Variant = "outline-primary"
	VariantOutlineSecondary Variant = "outline-secondary"
)

// ButtonProps is everything an OutlineButton renders from.
type ButtonProps struct {
	Attrs   Attrs
	Variant Variant
	OnClick func()
	Content string
}

// OutlineButton is a text button drawn as an outlined box. It understands the
// "disabled", "title" and "id" attributes; any other attribute is kept as-is
// and can be read back with Attr.
type OutlineButton struct {
	widget.BaseWidget
	ttwidget.ToolTipWidgetExtend

	props   ButtonProps
	hovered bool

	// FixedSize, when non-zero, replaces the content-derived minimum size.
	FixedSize fyne.Size
	// PaddingBottomRem reserves space below the content, in multiples of the theme text size.
	PaddingBottomRem float32
}

// NewOutlineButton creates a button rendering props.
func NewOutlineButton(props ButtonProps) *OutlineButton {
	b := &OutlineButton{}
	b.ExtendBaseWidget(b)
	b.ExtendToolTipWidget(b)
	b.SetProps(props)
	return b
}

// SetProps replaces the rendered props and refreshes the button.
func (b *OutlineButton) SetProps(props ButtonProps) {
	b.props = props
	b.SetToolTip(props.Attrs.String(AttrTitle))
	b.Refresh()
}

// Props returns the props most recently passed to SetProps.
func (b *OutlineButton) Props() ButtonProps {
	return b.props
}

// Attr looks up a pass-through attribute.
func (b *OutlineButton) Attr(key string) (any, bool) {
	v, ok := b.props.Attrs[key]
	return v, ok
}

// Disabled reports whether the "disabled" attribute is truthy.
func (b *OutlineButton) Disabled() bool {
	return Truthy(b.props.Attrs[AttrDisabled])
}

// Tapped invokes OnClick once, unless the button is disabled or has no handler.
func (b *OutlineButton) Tapped(_ *fyne.PointEvent) {
	if b.Disabled() || b.props.OnClick == nil {
		return
	}
	b.props.OnClick()
}

// MouseIn highlights the button and forwards to the tooltip handler.
func (b *OutlineButton) MouseIn(e *desktop.MouseEvent) {
	b.ToolTipWidgetExtend.MouseIn(e)
	b.hovered = true
	b.Refresh()
}

// MouseMoved forwards to the tooltip handler.
func (b *OutlineButton) MouseMoved(e *desktop.MouseEvent) {
	b.ToolTipWidgetExtend.MouseMoved(e)
}

// MouseOut clears the highlight and hides any tooltip.
func (b *OutlineButton) MouseOut() {
	b.ToolTipWidgetExtend.MouseOut()
	b.hovered = false
	b.Refresh()
}

// Cursor implements desktop.Cursorable.
func (b *OutlineButton) Cursor() desktop.Cursor {
	if b.Disabled() {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget.
func (b *OutlineButton) CreateRenderer() fyne.WidgetRenderer {
	r := &outlineButtonRenderer{
		button: b,
		box:    canvas.NewRectangle(color.Transparent),
		label:  canvas.NewText("", theme.Color(theme.ColorNameForeground)),
	}
	r.label.Alignment = fyne.TextAlignCenter
	r.Refresh()
	return r
}

type outlineButtonRenderer struct {
	button *OutlineButton
	box    *canvas.Rectangle
	label  *canvas.Text
}

func (r *outlineButtonRenderer) Destroy() {}

func (r *outlineButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.box, r.label}
}

func (r *outlineButtonRenderer) paddingBottom() float32 {
	return r.button.PaddingBottomRem * theme.TextSize()
}

// Layout sizes the outline to the full widget and places the content in the
// area above the bottom padding. When that area is shorter than the text the
// text is pinned to the top edge.
func (r *outlineButtonRenderer) Layout(size fyne.Size) {
	r.box.Resize(size)
	r.box.Move(fyne.NewPos(0, 0))

	textSize := r.label.MinSize()
	area := size.Height - r.paddingBottom()
	y := float32(0)
	if area > textSize.Height {
		y = (area - textSize.Height) / 2
	}
	r.label.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.label.Move(fyne.NewPos(0, y))
}

func (r *outlineButtonRenderer) MinSize() fyne.Size {
	if r.button.FixedSize != (fyne.Size{}) {
		return r.button.FixedSize
	}
	pad := theme.InnerPadding()
	text := r.label.MinSize()
	return fyne.NewSize(text.Width+pad*2, text.Height+pad+r.paddingBottom())
}

func (r *outlineButtonRenderer) Refresh() {
	b := r.button
	stroke, fg := variantColors(b.props.Variant)
	fill := color.Color(color.Transparent)

	switch {
	case b.Disabled():
		stroke = theme.Color(theme.ColorNameDisabled)
		fg = stroke
	case b.hovered:
		fill = theme.Color(theme.ColorNameHover)
	}

	r.box.FillColor = fill
	r.box.StrokeColor = stroke
	r.box.StrokeWidth = theme.InputBorderSize()
	r.box.CornerRadius = theme.InputRadiusSize()
	r.label.Text = b.props.Content
	r.label.Color = fg
	r.label.TextSize = theme.TextSize()

	r.Layout(b.Size())
	r.box.Refresh()
	r.label.Refresh()
}

// variantColors returns the outline and text colours for v.
func variantColors(v Variant) (stroke, text color.Color) {
	switch v {
	case VariantOutlinePrimary:
		return theme.Color(theme.ColorNamePrimary), theme.Color(theme.ColorNamePrimary)
	default:
		return theme.Color(theme.ColorNameForeground), theme.Color(theme.ColorNameForeground)
	}
}
