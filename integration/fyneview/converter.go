package fyneview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/ggtools"
	"github.com/gogpu/ggtools/tablestyle"
)

// ConverterPanel converts Markdown tables pasted into Input and shows the
// wiki result in Output.
type ConverterPanel struct {
	widget.BaseWidget

	Input  *widget.Entry
	Output *widget.Entry

	ConvertButton *widget.Button
	CopyButton    *widget.Button

	clipboard fyne.Clipboard
}

// NewConverterPanel creates a panel that copies results to cb.
func NewConverterPanel(cb fyne.Clipboard) *ConverterPanel {
	p := &ConverterPanel{clipboard: cb}

	p.Input = widget.NewMultiLineEntry()
	p.Input.SetPlaceHolder("| a | b |\n| --- | --- |\n| 1 | 2 |")
	p.Input.Wrapping = fyne.TextWrapOff

	p.Output = widget.NewMultiLineEntry()
	p.Output.Wrapping = fyne.TextWrapOff

	p.ConvertButton = widget.NewButton("Convert", p.Convert)
	p.CopyButton = widget.NewButton("Copy", p.Copy)

	p.ExtendBaseWidget(p)
	return p
}

// Convert replaces the output with the converted input.
func (p *ConverterPanel) Convert() {
	p.Output.SetText(tablestyle.Convert(p.Input.Text))
}

// Copy puts the output on the clipboard. An empty output leaves the
// clipboard untouched.
func (p *ConverterPanel) Copy() {
	text := p.Output.Text
	if text == "" || p.clipboard == nil {
		return
	}
	p.clipboard.SetContent(text)
	ggtools.Logger().Debug("fyneview: copied table", "bytes", len(text))
}

// CreateRenderer implements fyne.Widget.
func (p *ConverterPanel) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewHBox(p.ConvertButton, p.CopyButton)
	split := container.NewVSplit(p.Input, p.Output)
	return widget.NewSimpleRenderer(container.NewBorder(nil, buttons, nil, nil, split))
}
