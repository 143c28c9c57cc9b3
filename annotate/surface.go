// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package annotate

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// Common errors returned by Surface operations.
var (
	// ErrSurfaceClosed is returned when operations are attempted on a closed surface.
	ErrSurfaceClosed = errors.New("annotate: surface is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("annotate: invalid dimensions")
)

// Surface is the pixel buffer the annotator draws on. It wraps a gg.Context
// and adds whole-buffer capture and restore, the equivalent of reading and
// writing raw canvas image data.
//
// Surface is NOT safe for concurrent use; Annotator serializes access.
type Surface struct {
	dc     *gg.Context
	width  int
	height int
	dirty  bool
	closed bool
}

// NewSurface creates a transparent surface of the given size.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Surface{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		dirty:  true,
	}, nil
}

// Context returns the gg drawing context, or nil if the surface is closed.
// Call MarkDirty after drawing through it directly, or use Draw.
func (s *Surface) Context() *gg.Context {
	if s.closed {
		return nil
	}
	return s.dc
}

// Size returns width and height in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// MarkDirty flags the surface as changed since the last ClearDirty.
func (s *Surface) MarkDirty() { s.dirty = true }

// IsDirty reports whether pixels changed since the last ClearDirty.
func (s *Surface) IsDirty() bool { return s.dirty }

// ClearDirty resets the dirty flag, typically after a front end redraw.
func (s *Surface) ClearDirty() { s.dirty = false }

// Draw calls fn with the gg context and marks the surface dirty.
func (s *Surface) Draw(fn func(*gg.Context)) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	fn(s.dc)
	s.dirty = true
	return nil
}

// Resize changes the surface dimensions. Pixels are cleared when the size
// changes and kept otherwise.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if s.width == width && s.height == height {
		return nil
	}
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("annotate: context resize failed: %w", err)
	}
	s.width = width
	s.height = height
	s.dirty = true
	return nil
}

// Load resizes the surface to img's bounds and renders img at the origin.
func (s *Surface) Load(img image.Image) error {
	b := img.Bounds()
	if err := s.Resize(b.Dx(), b.Dy()); err != nil {
		return err
	}
	copy(s.dc.ResizeTarget().Data(), gg.FromImage(img).Data())
	s.dirty = true
	return nil
}

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() (*image.RGBA, error) {
	if s.closed {
		return nil, ErrSurfaceClosed
	}
	return s.dc.ResizeTarget().ToImage(), nil
}

// Restore replaces every pixel with buf, resizing the surface to buf's
// bounds first. No blending takes place.
func (s *Surface) Restore(buf *image.RGBA) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidDimensions)
	}
	b := buf.Bounds()
	if err := s.Resize(b.Dx(), b.Dy()); err != nil {
		return err
	}
	data := s.dc.ResizeTarget().Data()
	row := s.width * 4
	for y := 0; y < s.height; y++ {
		off := buf.PixOffset(b.Min.X, b.Min.Y+y)
		copy(data[y*row:(y+1)*row], buf.Pix[off:off+row])
	}
	s.dirty = true
	return nil
}

// StrokeRect strokes r with the given style. A non-empty dash pattern
// produces a dashed outline, otherwise the outline is solid.
func (s *Surface) StrokeRect(r Rect, style Style, dash []float64) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	dc := s.dc
	dc.Push()
	defer dc.Pop()

	stroke := gg.DefaultStroke().WithWidth(style.Width)
	if len(dash) > 0 {
		stroke = stroke.WithDash(gg.NewDash(dash...))
	}
	dc.SetStroke(stroke)
	dc.SetStrokeBrush(gg.Solid(style.Color))
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	err := dc.Stroke()
	s.dirty = true
	if err != nil {
		return fmt.Errorf("annotate: stroke rectangle: %w", err)
	}
	return nil
}

// DrawScaled re-renders src at scale times its native size. src is wrapped
// in a full-resolution image buffer and resampled once into the resized
// surface with bilinear interpolation.
func (s *Surface) DrawScaled(src image.Image, scale float64) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	b := src.Bounds()
	w := scaledDim(b.Dx(), scale)
	h := scaledDim(b.Dy(), scale)
	if err := s.Resize(w, h); err != nil {
		return err
	}

	full := gg.ImageBufFromImage(src)
	s.dc.Clear()
	s.dc.DrawImageEx(full, gg.DrawImageOptions{
		DstWidth:      float64(w),
		DstHeight:     float64(h),
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
	s.dirty = true
	return nil
}

// Image returns a copy of the current pixels as a standard image.
func (s *Surface) Image() image.Image {
	if s.closed {
		return nil
	}
	return s.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	return s.dc.EncodePNG(w)
}

// Close releases the drawing context. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.dc != nil {
		_ = s.dc.Close()
		s.dc = nil
	}
	return nil
}

func scaledDim(n int, scale float64) int {
	v := int(math.Round(float64(n) * scale))
	if v < 1 {
		return 1
	}
	return v
}
