package registers

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/regview/internal/model"
	"github.com/shhac/regview/internal/sim"
	"github.com/shhac/regview/internal/ui/components"
)

// ToggleID is the id attribute given to the panel's expand/collapse toggle.
const ToggleID = "registers-toggle"

// Source provides register values to display.
type Source interface {
	Snapshot() [sim.RegisterCount]uint32
	Inspect() string
}

// RegisterPanel shows the register file under a header with an
// expand/collapse toggle. The panel owns the expanded state through
// model.ViewState; the toggle only reflects it.
type RegisterPanel struct {
	widget.BaseWidget

	state  *model.ViewState
	source Source
	logger *slog.Logger

	toggle     *components.ToggleControl
	copyButton *widget.Button
	radix      *widget.RadioGroup
	values     [sim.RegisterCount]*widget.Label
	body       *fyne.Container
}

// NewRegisterPanel creates a panel bound to state that reads values from source.
func NewRegisterPanel(state *model.ViewState, source Source, logger *slog.Logger) *RegisterPanel {
	p := &RegisterPanel{
		state:  state,
		source: source,
		logger: logger,
	}

	p.toggle = components.NewToggleControl(components.ToggleProps{})
	p.copyButton = widget.NewButtonWithIcon("", theme.ContentCopyIcon(), p.CopyToClipboard)
	p.copyButton.Importance = widget.LowImportance

	p.radix = widget.NewRadioGroup([]string{"Hex", "Dec"}, func(selected string) {
		if selected == "" {
			return
		}
		_ = p.state.Radix.Set(radixKey(selected))
	})
	p.radix.Horizontal = true

	grid := container.NewGridWithColumns(4)
	for i := range p.values {
		p.values[i] = widget.NewLabel("")
		p.values[i].TextStyle = fyne.TextStyle{Monospace: true}
		name := widget.NewLabel(sim.Name(i))
		name.TextStyle = fyne.TextStyle{Bold: true}
		grid.Add(container.NewHBox(name, p.values[i]))
	}
	p.body = container.NewVBox(p.radix, grid)

	p.ExtendBaseWidget(p)

	state.RegistersExpanded.AddListener(binding.NewDataListener(p.render))
	state.Radix.AddListener(binding.NewDataListener(p.Refresh))

	p.render()
	p.Refresh()

	return p
}

// Toggle flips the expanded state. It is the toggle's OnToggle handler.
func (p *RegisterPanel) Toggle() {
	expanded := !p.Expanded()
	if err := p.state.RegistersExpanded.Set(expanded); err != nil {
		p.logger.Error("failed to update register panel state", slog.Any("error", err))
		return
	}
	p.logger.Debug("register panel toggled", slog.Bool("expanded", expanded))
}

// CopyToClipboard puts a text dump of every register on the clipboard.
func (p *RegisterPanel) CopyToClipboard() {
	dump := p.source.Inspect()
	fyne.CurrentApp().Clipboard().SetContent(dump)
	p.logger.Debug("register dump copied", slog.String("registers", dump))
}

// Expanded reports whether the register table is shown.
func (p *RegisterPanel) Expanded() bool {
	expanded, _ := p.state.RegistersExpanded.Get()
	return expanded
}

// ToggleControl returns the header toggle.
func (p *RegisterPanel) ToggleControl() *components.ToggleControl {
	return p.toggle
}

// render passes fresh props to the toggle and shows or hides the table.
func (p *RegisterPanel) render() {
	expanded := p.Expanded()

	title := "Show registers"
	if expanded {
		title = "Hide registers"
	}
	p.toggle.SetProps(components.ToggleProps{
		Expanded: expanded,
		OnToggle: p.Toggle,
		Attrs: components.Attrs{
			components.AttrID:    ToggleID,
			components.AttrTitle: title,
		},
	})

	if expanded {
		p.body.Show()
	} else {
		p.body.Hide()
	}
}

// Refresh re-reads register values from the source.
func (p *RegisterPanel) Refresh() {
	radix, _ := p.state.Radix.Get()
	switch radix {
	case "dec":
		p.radix.Selected = "Dec"
	default:
		p.radix.Selected = "Hex"
	}
	p.radix.Refresh()

	snap := p.source.Snapshot()
	for i, v := range snap {
		p.values[i].SetText(FormatValue(v, radix))
	}
	p.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (p *RegisterPanel) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewHBox(widget.NewLabel("Registers"), p.toggle, p.copyButton)
	return widget.NewSimpleRenderer(container.NewBorder(header, nil, nil, nil, p.body))
}

// FormatValue renders v in the given radix, "hex" or "dec". Unknown radixes use hex.
func FormatValue(v uint32, radix string) string {
	if radix == "dec" {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("0x%08X", v)
}

func radixKey(label string) string {
	if label == "Dec" {
		return "dec"
	}
	return "hex"
}
