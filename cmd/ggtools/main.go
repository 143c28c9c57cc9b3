// Command ggtools is a desktop app with two small tools: a rectangle
// annotator for clipboard images and a Markdown to wiki table converter.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/ggtools"
	"github.com/gogpu/ggtools/annotate"
	"github.com/gogpu/ggtools/clip"
	"github.com/gogpu/ggtools/integration/fyneview"
	"github.com/gogpu/ggtools/integration/sysclip"
	"github.com/gogpu/ggtools/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default $GGTOOLS_CONFIG or user config dir)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ggtools.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))
	logger := ggtools.Logger()

	opts, err := cfg.Annotate.Options()
	if err != nil {
		logger.Warn("using default line color", "err", err)
	}
	ann := annotate.New(opts...)
	defer ann.Close()

	a := app.NewWithID("io.gogpu.ggtools")
	w := a.NewWindow("ggtools " + ggtools.Version)

	sys, err := sysclip.New()
	if err != nil {
		logger.Warn("system clipboard unavailable", "err", err)
	}

	ui := newAnnotateUI(ann, sys, w)
	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Annotate", theme.DocumentCreateIcon(), ui.content()),
		container.NewTabItemWithIcon("Table", theme.ListIcon(), fyneview.NewConverterPanel(w.Clipboard())),
	)

	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyV, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) {
			if tabs.SelectedIndex() == 0 {
				ui.paste()
			}
		})
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			ann.CancelSelection()
		}
	})

	w.SetContent(tabs)
	w.Resize(fyne.NewSize(960, 680))
	w.ShowAndRun()
}

// annotateUI holds the widgets of the Annotate tab.
type annotateUI struct {
	ann    *annotate.Annotator
	sys    *sysclip.System
	win    fyne.Window
	view   *fyneview.Canvas
	status *widget.Label
	swatch *fynecanvas.Rectangle
	width  *widget.Entry
}

func newAnnotateUI(ann *annotate.Annotator, sys *sysclip.System, win fyne.Window) *annotateUI {
	ui := &annotateUI{
		ann:    ann,
		sys:    sys,
		win:    win,
		view:   fyneview.NewCanvas(ann),
		status: widget.NewLabel("Paste an image with Ctrl+V"),
		swatch: fynecanvas.NewRectangle(ann.Style().Color.Color()),
		width:  widget.NewEntry(),
	}
	ui.view.OnUpdated = func(st annotate.State) {
		ui.status.SetText(fmt.Sprintf("%dx%d  %d%%", st.Width, st.Height, int(st.Scale*100+0.5)))
	}

	ui.swatch.SetMinSize(fyne.NewSize(20, 20))
	ui.width.SetText(annotate.FormatWidth(ann.Style().Width))
	ui.width.OnSubmitted = ui.setWidth
	return ui
}

func (ui *annotateUI) content() fyne.CanvasObject {
	toolbar := container.NewHBox(
		widget.NewButtonWithIcon("Paste", theme.ContentPasteIcon(), ui.paste),
		widget.NewButtonWithIcon("Color", theme.ColorPaletteIcon(), ui.pickColor),
		ui.swatch,
		widget.NewLabel("Width"),
		container.NewGridWrap(fyne.NewSize(64, ui.width.MinSize().Height), ui.width),
		widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() { ui.ann.Reset() }),
		widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), ui.copy),
		widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() { ui.ann.ZoomOut() }),
		widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() { ui.ann.ZoomIn() }),
	)
	return container.NewBorder(toolbar, ui.status, nil, nil, container.NewScroll(ui.view))
}

// paste reads the system clipboard and decodes off the UI goroutine.
func (ui *annotateUI) paste() {
	if ui.sys == nil {
		ui.status.SetText("Clipboard unavailable")
		return
	}
	go func() {
		ctx := context.Background()
		items, err := ui.sys.Read(ctx)
		if errors.Is(err, clip.ErrEmpty) {
			return
		}
		if err == nil {
			err = ui.ann.Paste(ctx, items)
		}
		switch {
		case errors.Is(err, annotate.ErrPasteSuperseded):
			ggtools.Logger().Warn("paste superseded")
		case err != nil:
			ggtools.Logger().Warn("paste failed", "err", err)
			ui.status.SetText("Paste failed: " + err.Error())
		}
	}()
}

func (ui *annotateUI) copy() {
	if ui.sys == nil {
		ui.status.SetText("Clipboard unavailable")
		return
	}
	if !ui.ann.State().HasImage {
		return
	}
	if err := ui.ann.Copy(context.Background(), ui.sys); err != nil {
		ggtools.Logger().Warn("copy failed", "err", err)
		dialog.ShowError(err, ui.win)
		return
	}
	ui.status.SetText("Copied to clipboard")
}

func (ui *annotateUI) pickColor() {
	picker := dialog.NewColorPicker("Line color", "Color of the next rectangle", func(c color.Color) {
		ui.ann.SetColorValue(c)
		ui.swatch.FillColor = c
		ui.swatch.Refresh()
	}, ui.win)
	picker.Advanced = true
	picker.SetColor(ui.ann.Style().Color.Color())
	picker.Show()
}

// setWidth applies the typed width and writes the clamped value back.
func (ui *annotateUI) setWidth(s string) {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		ui.ann.SetWidth(v)
	}
	ui.width.SetText(annotate.FormatWidth(ui.ann.Style().Width))
}
