// Package annotate implements a rectangle annotator: paste an image, drag
// rectangles over it and copy the annotated image back out.
//
// # Gestures
//
// A gesture is one pointer-down, any number of pointer-moves, and one
// pointer-up:
//
//	a := annotate.New()
//	_ = a.Paste(ctx, items)              // clipboard payload
//	a.BeginSelection(annotate.Pt(10, 10)) // pointer down
//	a.UpdateSelection(annotate.Pt(40, 30)) // dashed preview
//	a.CommitSelection(annotate.Pt(50, 35)) // solid, permanent stroke
//	_ = a.Copy(ctx, clipboard)
//
// The pixels under the preview are captured when the gesture begins and
// restored before every redraw, so the preview never damages the image.
// Committed strokes are plain pixel data; changing the style afterwards
// only affects later rectangles.
//
// # Reset and Zoom
//
// The pixels captured right after a paste are kept as the raw image.
// [Annotator.Reset] and the zoom operations always re-render from it, so
// repeated zooming never resamples already-resampled pixels.
//
// # Thread Safety
//
// Annotator is safe for concurrent use. Paste may be called from a
// goroutine while pointer events arrive on the UI thread; the newest paste
// always wins.
package annotate
