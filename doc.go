// Package ggtools holds two small desktop utilities built on the gg 2D
// graphics library, and the settings they share.
//
// # Overview
//
// The repository is organized into:
//   - annotate: paste an image, draw rectangle annotations, copy the result
//   - tablestyle: convert Markdown tables into the wiki table dialect
//   - clip: clipboard payload types shared by both tools
//   - integration/fyneview, integration/sysclip: fyne widgets and the
//     system clipboard adapter
//   - cmd/ggtools, cmd/tablestyle: the desktop app and the converter CLI
//
// # Logging
//
// Nothing is logged by default. Call [SetLogger] to route the log output of
// every sub-package, and of gg itself, to a [log/slog] logger.
//
// # Coordinate System
//
// Annotation coordinates use gg's convention: origin at the top-left of the
// surface, X to the right, Y down, one unit per surface pixel.
package ggtools

// Version is the current version of ggtools.
const Version = "0.3.0"
