// Package sysclip connects the clip package to the operating system
// clipboard.
//
// System implements both clip.Reader and clip.Writer on top of
// golang.design/x/clipboard. Images travel as PNG and text as UTF-8:
//
//	sys, err := sysclip.New()
//	if err != nil {
//	    return err // no clipboard on this host (headless, no X11)
//	}
//	items, err := sys.Read(ctx)
//
// The underlying clipboard is process-global; New may be called more than
// once and Init runs only the first time.
package sysclip
