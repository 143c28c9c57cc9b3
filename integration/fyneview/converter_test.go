package fyneview

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

type memClipboard struct {
	content string
	writes  int
}

func (m *memClipboard) Content() string { return m.content }

func (m *memClipboard) SetContent(s string) {
	m.content = s
	m.writes++
}

func TestConverterPanel(t *testing.T) {
	test.NewApp()
	cb := &memClipboard{}
	p := NewConverterPanel(cb)

	test.Tap(p.CopyButton)
	if cb.writes != 0 {
		t.Errorf("Copy with empty output wrote %d times", cb.writes)
	}

	p.Input.SetText("| a | b |\n| --- | --- |\n| 1 | 2 |")
	test.Tap(p.ConvertButton)
	want := "| a | b |h\n| 1 | 2 |\n"
	if p.Output.Text != want {
		t.Errorf("Output = %q, want %q", p.Output.Text, want)
	}

	test.Tap(p.CopyButton)
	if cb.content != want || cb.writes != 1 {
		t.Errorf("clipboard = %q (%d writes), want %q", cb.content, cb.writes, want)
	}
}

func TestConverterPanelEmptyInput(t *testing.T) {
	test.NewApp()
	cb := &memClipboard{content: "keep"}
	p := NewConverterPanel(cb)

	test.Tap(p.ConvertButton)
	if p.Output.Text != "" {
		t.Errorf("Output = %q, want empty", p.Output.Text)
	}
	test.Tap(p.CopyButton)
	if cb.content != "keep" {
		t.Errorf("clipboard overwritten with %q", cb.content)
	}
}
