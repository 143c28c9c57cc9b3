// Package fyneview provides fyne widgets for the ggtools front ends.
//
// [Canvas] shows an annotate.Annotator surface and turns pointer input into
// rectangle gestures. Widget coordinates are mapped to surface pixels, so
// the widget may be laid out larger or smaller than the image.
//
//	a := annotate.New()
//	view := fyneview.NewCanvas(a)
//	w.SetContent(container.NewScroll(view))
//
// [ConverterPanel] wraps tablestyle.Convert with input and output entries.
//
// Widgets must be created after the fyne app. Canvas.Update may be called
// from any goroutine.
package fyneview
