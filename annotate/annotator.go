package annotate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/ggtools"
	"github.com/gogpu/ggtools/clip"
)

// ErrPasteSuperseded is returned by Paste when a newer paste started while
// this one was decoding. The older result is discarded.
var ErrPasteSuperseded = errors.New("annotate: paste superseded by a newer paste")

// State is a read-only view of the annotator for front ends and tests.
type State struct {
	HasImage      bool
	Selecting     bool
	Start, End    Point
	Style         Style
	Scale         float64
	Width, Height int
}

// Annotator owns one drawing surface and the gesture state around it.
// It maps 1:1 to a user session.
type Annotator struct {
	mu   sync.Mutex
	opts options

	surface  *Surface
	raw      *image.RGBA // pixels right after the last successful paste
	snapshot *image.RGBA // pixels at gesture start

	selecting  bool
	start, end Point

	style Style
	scale float64

	pasteGen   uint64 // last generation handed out
	appliedGen uint64 // generation of the image on the surface
	decode     func(context.Context, clip.Item) (image.Image, error)
	onChange   func()
}

// New creates an annotator with no image loaded.
func New(opts ...Option) *Annotator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Annotator{
		opts:   o,
		style:  o.style,
		scale:  1,
		decode: Decode,
	}
}

// OnChange registers fn to be called after visible pixels change.
// fn runs without the annotator lock held and may call back into it.
func (a *Annotator) OnChange(fn func()) {
	a.mu.Lock()
	a.onChange = fn
	a.mu.Unlock()
}

func (a *Annotator) notify() {
	a.mu.Lock()
	fn := a.onChange
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Paste loads the first image item of a clipboard payload. A payload
// without image items is ignored. Decoding happens without holding the
// lock; if a paste that started later has already been applied, this one
// returns ErrPasteSuperseded and leaves the surface alone. Pastes that fail
// or are canceled never supersede others.
func (a *Annotator) Paste(ctx context.Context, items []clip.Item) error {
	log := ggtools.Logger()

	item, ok := clip.FirstImage(items)
	if !ok {
		log.Debug("annotate: paste ignored, no image item", "items", len(items))
		return nil
	}

	a.mu.Lock()
	a.pasteGen++
	gen := a.pasteGen
	decode := a.decode
	a.mu.Unlock()

	img, err := decode(ctx, item)
	if err != nil {
		log.Warn("annotate: paste decode failed", "type", item.MIMEType, "err", err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	if gen < a.appliedGen {
		a.mu.Unlock()
		log.Warn("annotate: paste superseded", "generation", gen)
		return ErrPasteSuperseded
	}
	err = a.loadLocked(img)
	if err == nil {
		a.appliedGen = gen
	}
	a.mu.Unlock()
	if err != nil {
		return err
	}

	b := img.Bounds()
	log.Info("annotate: image loaded", "type", item.MIMEType, "width", b.Dx(), "height", b.Dy())
	a.notify()
	return nil
}

func (a *Annotator) loadLocked(img image.Image) error {
	b := img.Bounds()
	if a.surface == nil {
		s, err := NewSurface(b.Dx(), b.Dy())
		if err != nil {
			return err
		}
		a.surface = s
	}
	if err := a.surface.Load(img); err != nil {
		return err
	}
	raw, err := a.surface.Snapshot()
	if err != nil {
		return err
	}
	a.raw = raw
	a.scale = 1
	a.selecting = false
	a.snapshot = nil
	return nil
}

// BeginSelection starts a gesture at p. It does nothing, and returns false,
// when no image is loaded or a gesture is already active.
func (a *Annotator) BeginSelection(p Point) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.selecting || a.raw == nil {
		ggtools.Logger().Debug("annotate: begin ignored", "selecting", a.selecting, "hasImage", a.raw != nil)
		return false
	}
	snap, err := a.surface.Snapshot()
	if err != nil {
		ggtools.Logger().Warn("annotate: snapshot failed", "err", err)
		return false
	}
	a.snapshot = snap
	a.selecting = true
	a.start = p
	a.end = p
	return true
}

// UpdateSelection moves the free corner to p and redraws the dashed
// preview over the pixels captured at gesture start.
func (a *Annotator) UpdateSelection(p Point) bool {
	a.mu.Lock()
	if !a.selecting {
		a.mu.Unlock()
		return false
	}
	a.end = p
	a.redrawLocked(a.opts.previewDash)
	a.mu.Unlock()

	a.notify()
	return true
}

// CommitSelection ends the gesture at p and draws the solid rectangle.
// The stroke becomes part of the pixels; it is not tracked afterwards.
func (a *Annotator) CommitSelection(p Point) bool {
	a.mu.Lock()
	if !a.selecting {
		a.mu.Unlock()
		return false
	}
	a.selecting = false
	a.end = p
	a.redrawLocked(nil)
	a.snapshot = nil
	a.mu.Unlock()

	a.notify()
	return true
}

// CancelSelection ends the gesture without drawing, erasing the preview.
func (a *Annotator) CancelSelection() bool {
	a.mu.Lock()
	if !a.selecting {
		a.mu.Unlock()
		return false
	}
	a.selecting = false
	if err := a.surface.Restore(a.snapshot); err != nil {
		ggtools.Logger().Warn("annotate: restore failed", "err", err)
	}
	a.snapshot = nil
	a.mu.Unlock()

	a.notify()
	return true
}

func (a *Annotator) redrawLocked(dash []float64) {
	log := ggtools.Logger()
	if err := a.surface.Restore(a.snapshot); err != nil {
		log.Warn("annotate: restore failed", "err", err)
		return
	}
	r := Normalize(a.start, a.end)
	if err := a.surface.StrokeRect(r, a.style, dash); err != nil {
		log.Warn("annotate: stroke failed", "err", err)
	}
}

// Reset discards every stroke by re-rendering the raw image at the current
// zoom factor. An active gesture ends as well. Returns false when no image
// has been pasted.
func (a *Annotator) Reset() bool {
	a.mu.Lock()
	if a.raw == nil {
		a.mu.Unlock()
		return false
	}
	a.selecting = false
	a.snapshot = nil
	if err := a.renderLocked(); err != nil {
		ggtools.Logger().Warn("annotate: reset failed", "err", err)
	}
	a.mu.Unlock()

	a.notify()
	return true
}

// renderLocked draws the raw image at the current scale. At scale 1 the
// pixels are copied back exactly.
func (a *Annotator) renderLocked() error {
	if a.scale == 1 {
		return a.surface.Restore(a.raw)
	}
	return a.surface.DrawScaled(a.raw, a.scale)
}

// ZoomIn grows the zoom factor by one step and returns the new factor.
func (a *Annotator) ZoomIn() float64 { return a.zoom(1) }

// ZoomOut shrinks the zoom factor by one step and returns the new factor.
func (a *Annotator) ZoomOut() float64 { return a.zoom(-1) }

// zoom re-renders from the raw image, discarding strokes. Without an image
// it only reports the current factor.
func (a *Annotator) zoom(dir float64) float64 {
	a.mu.Lock()
	if a.raw == nil {
		s := a.scale
		a.mu.Unlock()
		return s
	}
	next := math.Round((a.scale+dir*a.opts.zoomStep)*100) / 100
	next = math.Max(a.opts.minScale, math.Min(a.opts.maxScale, next))
	if next == a.scale {
		a.mu.Unlock()
		return next
	}
	a.scale = next
	a.selecting = false
	a.snapshot = nil
	if err := a.renderLocked(); err != nil {
		ggtools.Logger().Warn("annotate: zoom failed", "scale", next, "err", err)
	}
	a.mu.Unlock()

	a.notify()
	return next
}

// Copy encodes the visible surface as PNG and writes it to w as a single
// image/png item. Without an image nothing is written.
func (a *Annotator) Copy(ctx context.Context, w clip.Writer) error {
	a.mu.Lock()
	if a.raw == nil {
		a.mu.Unlock()
		ggtools.Logger().Debug("annotate: copy ignored, no image")
		return nil
	}
	var buf bytes.Buffer
	err := a.surface.EncodePNG(&buf)
	a.mu.Unlock()
	if err != nil {
		return fmt.Errorf("annotate: encode png: %w", err)
	}

	if err := w.Write(ctx, clip.ImageItem(buf.Bytes())); err != nil {
		return fmt.Errorf("annotate: write clipboard: %w", err)
	}
	ggtools.Logger().Info("annotate: image copied", "bytes", buf.Len())
	return nil
}

// SetColor sets the color for rectangles drawn from now on.
func (a *Annotator) SetColor(hex string) error {
	c, err := ParseColor(hex)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.style.Color = c
	a.mu.Unlock()
	return nil
}

// SetColorValue is SetColor for color pickers.
func (a *Annotator) SetColorValue(c color.Color) {
	a.mu.Lock()
	a.style.Color = ColorFrom(c)
	a.mu.Unlock()
}

// SetWidth clamps w into [MinLineWidth, MaxLineWidth], stores it for
// rectangles drawn from now on and returns the effective width, which the
// caller should show in its control.
func (a *Annotator) SetWidth(w float64) float64 {
	w = ClampWidth(w)
	a.mu.Lock()
	a.style.Width = w
	a.mu.Unlock()
	return w
}

// Style returns the current stroke style.
func (a *Annotator) Style() Style {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.style
}

// Image returns a copy of the visible pixels, or nil before the first paste.
func (a *Annotator) Image() image.Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.surface == nil {
		return nil
	}
	return a.surface.Image()
}

// Frame returns the visible pixels and whether they changed since the
// previous Frame call.
func (a *Annotator) Frame() (image.Image, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.surface == nil {
		return nil, false
	}
	changed := a.surface.IsDirty()
	a.surface.ClearDirty()
	return a.surface.Image(), changed
}

// Size returns the surface size in pixels, zero before the first paste.
func (a *Annotator) Size() (width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.surface == nil {
		return 0, 0
	}
	return a.surface.Size()
}

// State returns a snapshot of the annotator state.
func (a *Annotator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	st := State{
		HasImage:  a.raw != nil,
		Selecting: a.selecting,
		Start:     a.start,
		End:       a.end,
		Style:     a.style,
		Scale:     a.scale,
	}
	if a.surface != nil {
		st.Width, st.Height = a.surface.Size()
	}
	return st
}

// Close releases the surface. The annotator must not be used afterwards.
func (a *Annotator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.surface == nil {
		return nil
	}
	return a.surface.Close()
}
