package fyneview

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/ggtools/annotate"
)

// placeholderSize is the minimum size of a canvas without an image.
var placeholderSize = fyne.NewSize(320, 200)

// Canvas displays an annotator surface and drives its gestures.
//
// Primary button down starts a gesture, pointer motion or dragging updates
// the preview, and release (or the end of a drag) commits it.
type Canvas struct {
	widget.BaseWidget

	ann *annotate.Annotator
	img *fynecanvas.Image

	mu     sync.Mutex
	width  int
	height int
	last   annotate.Point

	// OnUpdated, if set, is called after a new frame was shown.
	OnUpdated func(annotate.State)
}

var (
	_ fyne.Widget       = (*Canvas)(nil)
	_ fyne.Draggable    = (*Canvas)(nil)
	_ desktop.Mouseable = (*Canvas)(nil)
	_ desktop.Hoverable = (*Canvas)(nil)
)

// NewCanvas creates a canvas bound to a and registers for its change
// notifications.
func NewCanvas(a *annotate.Annotator) *Canvas {
	c := &Canvas{ann: a}
	c.img = &fynecanvas.Image{
		FillMode:  fynecanvas.ImageFillStretch,
		ScaleMode: fynecanvas.ImageScalePixels,
	}
	c.ExtendBaseWidget(c)
	a.OnChange(c.Update)
	c.Update()
	return c
}

// Update pulls the latest frame from the annotator and redraws when it
// changed.
func (c *Canvas) Update() {
	frame, changed := c.ann.Frame()
	if !changed || frame == nil {
		return
	}
	b := frame.Bounds()

	c.mu.Lock()
	c.width, c.height = b.Dx(), b.Dy()
	c.mu.Unlock()

	c.img.Image = frame
	c.img.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	c.Refresh()

	if c.OnUpdated != nil {
		c.OnUpdated(c.ann.State())
	}
}

// Frame returns the image currently shown.
func (c *Canvas) Frame() image.Image {
	return c.img.Image
}

// ToSurface maps a widget position to surface pixel coordinates.
func (c *Canvas) ToSurface(pos fyne.Position) annotate.Point {
	c.mu.Lock()
	w, h := c.width, c.height
	c.mu.Unlock()

	size := c.img.Size()
	x, y := float64(pos.X), float64(pos.Y)
	if w > 0 && size.Width > 0 {
		x = x * float64(w) / float64(size.Width)
	}
	if h > 0 && size.Height > 0 {
		y = y * float64(h) / float64(size.Height)
	}
	return annotate.Pt(x, y)
}

func (c *Canvas) track(pos fyne.Position) annotate.Point {
	p := c.ToSurface(pos)
	c.mu.Lock()
	c.last = p
	c.mu.Unlock()
	return p
}

// MouseDown starts a gesture on the primary button.
func (c *Canvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.ann.BeginSelection(c.track(ev.Position))
}

// MouseUp commits the active gesture.
func (c *Canvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.ann.CommitSelection(c.track(ev.Position))
}

// MouseIn is a no-op.
func (c *Canvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved updates the preview of the active gesture.
func (c *Canvas) MouseMoved(ev *desktop.MouseEvent) {
	c.ann.UpdateSelection(c.track(ev.Position))
}

// MouseOut is a no-op; a drag that leaves the widget still ends in DragEnd.
func (c *Canvas) MouseOut() {}

// Dragged updates the preview of the active gesture.
func (c *Canvas) Dragged(ev *fyne.DragEvent) {
	c.ann.UpdateSelection(c.track(ev.Position))
}

// DragEnd commits the active gesture at the last known position.
func (c *Canvas) DragEnd() {
	c.mu.Lock()
	p := c.last
	c.mu.Unlock()
	c.ann.CommitSelection(p)
}

// CreateRenderer implements fyne.Widget.
func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	return &canvasRenderer{canvas: c}
}

type canvasRenderer struct {
	canvas *Canvas
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.canvas.img.Move(fyne.NewPos(0, 0))
	r.canvas.img.Resize(r.MinSize())
}

func (r *canvasRenderer) MinSize() fyne.Size {
	if r.canvas.img.Image == nil {
		return placeholderSize
	}
	return r.canvas.img.MinSize()
}

func (r *canvasRenderer) Refresh() {
	r.Layout(r.canvas.Size())
	r.canvas.img.Refresh()
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.img}
}

func (r *canvasRenderer) Destroy() {}
