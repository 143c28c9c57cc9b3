package fyneview

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/gogpu/ggtools/annotate"
	"github.com/gogpu/ggtools/clip"
)

func pastePNG(t *testing.T, a *annotate.Annotator, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := a.Paste(context.Background(), []clip.Item{clip.ImageItem(buf.Bytes())}); err != nil {
		t.Fatalf("Paste() error = %v", err)
	}
}

func press(pos fyne.Position) *desktop.MouseEvent {
	ev := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
	ev.Position = pos
	return ev
}

func TestCanvasShowsPastedImage(t *testing.T) {
	test.NewApp()
	a := annotate.New()
	c := NewCanvas(a)

	if c.Frame() != nil {
		t.Fatal("Frame() should be nil before a paste")
	}
	if got := c.MinSize(); got != placeholderSize {
		t.Errorf("MinSize() = %v, want placeholder %v", got, placeholderSize)
	}

	var updates int
	c.OnUpdated = func(annotate.State) { updates++ }
	pastePNG(t, a, 40, 30)

	frame := c.Frame()
	if frame == nil {
		t.Fatal("Frame() is nil after paste")
	}
	if b := frame.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("frame = %dx%d, want 40x30", b.Dx(), b.Dy())
	}
	if got := c.MinSize(); got != fyne.NewSize(40, 30) {
		t.Errorf("MinSize() = %v, want 40x30", got)
	}
	if updates != 1 {
		t.Errorf("OnUpdated called %d times, want 1", updates)
	}
}

func TestCanvasGesture(t *testing.T) {
	test.NewApp()
	a := annotate.New()
	c := NewCanvas(a)
	pastePNG(t, a, 40, 30)

	c.MouseDown(press(fyne.NewPos(5, 5)))
	if !a.State().Selecting {
		t.Fatal("MouseDown did not start a gesture")
	}

	c.MouseMoved(press(fyne.NewPos(20, 15)))
	if st := a.State(); st.End != annotate.Pt(20, 15) {
		t.Errorf("End after move = %v, want (20,15)", st.End)
	}

	c.MouseUp(press(fyne.NewPos(25, 20)))
	st := a.State()
	if st.Selecting {
		t.Error("MouseUp did not end the gesture")
	}
	if st.End != annotate.Pt(25, 20) {
		t.Errorf("End = %v, want (25,20)", st.End)
	}

	rgba, ok := c.Frame().(*image.RGBA)
	if !ok {
		t.Fatalf("Frame() type %T, want *image.RGBA", c.Frame())
	}
	if got := rgba.RGBAAt(15, 5); got == (color.RGBA{255, 255, 255, 255}) {
		t.Error("committed rectangle edge is not visible in the frame")
	}
}

func TestCanvasSecondaryButtonIgnored(t *testing.T) {
	test.NewApp()
	a := annotate.New()
	c := NewCanvas(a)
	pastePNG(t, a, 20, 20)

	ev := press(fyne.NewPos(2, 2))
	ev.Button = desktop.MouseButtonSecondary
	c.MouseDown(ev)
	if a.State().Selecting {
		t.Error("secondary button started a gesture")
	}
}

func TestCanvasDragEndCommits(t *testing.T) {
	test.NewApp()
	a := annotate.New()
	c := NewCanvas(a)
	pastePNG(t, a, 40, 30)

	c.MouseDown(press(fyne.NewPos(2, 2)))
	drag := &fyne.DragEvent{}
	drag.Position = fyne.NewPos(30, 25)
	c.Dragged(drag)
	c.DragEnd()

	st := a.State()
	if st.Selecting {
		t.Error("DragEnd did not end the gesture")
	}
	if st.End != annotate.Pt(30, 25) {
		t.Errorf("End = %v, want (30,25)", st.End)
	}
}

func TestToSurfaceScales(t *testing.T) {
	test.NewApp()
	a := annotate.New()
	c := NewCanvas(a)
	pastePNG(t, a, 40, 30)

	c.img.Resize(fyne.NewSize(80, 60))
	if got := c.ToSurface(fyne.NewPos(40, 30)); got != annotate.Pt(20, 15) {
		t.Errorf("ToSurface() = %v, want (20,15)", got)
	}
}
