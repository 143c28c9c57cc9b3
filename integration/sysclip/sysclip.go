package sysclip

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/gogpu/ggtools"
	"github.com/gogpu/ggtools/clip"
)

// ErrUnsupported is returned by Write for items that are neither PNG images
// nor text.
var ErrUnsupported = errors.New("sysclip: unsupported clipboard item")

var (
	initOnce sync.Once
	initErr  error
)

// backend is the slice of golang.design/x/clipboard that System uses.
type backend interface {
	Read(f clipboard.Format) []byte
	Write(f clipboard.Format, data []byte) <-chan struct{}
}

type osBackend struct{}

func (osBackend) Read(f clipboard.Format) []byte { return clipboard.Read(f) }

func (osBackend) Write(f clipboard.Format, data []byte) <-chan struct{} {
	return clipboard.Write(f, data)
}

// System is the operating system clipboard.
type System struct {
	b backend
}

// New initializes the system clipboard.
func New() (*System, error) {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("sysclip: init: %w", initErr)
	}
	return &System{b: osBackend{}}, nil
}

// Read returns the current clipboard contents: a PNG image item first when
// one is present, then a text item. An empty clipboard yields clip.ErrEmpty.
func (s *System) Read(ctx context.Context) ([]clip.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []clip.Item
	if data := s.b.Read(clipboard.FmtImage); len(data) > 0 {
		items = append(items, clip.ImageItem(data))
	}
	if data := s.b.Read(clipboard.FmtText); len(data) > 0 {
		items = append(items, clip.TextItem(string(data)))
	}

	ggtools.Logger().Debug("sysclip: read", "items", len(items))
	if len(items) == 0 {
		return nil, clip.ErrEmpty
	}
	return items, nil
}

// Write replaces the clipboard contents with item.
func (s *System) Write(ctx context.Context, item clip.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var f clipboard.Format
	switch {
	case item.IsImage():
		f = clipboard.FmtImage
	case item.IsText():
		f = clipboard.FmtText
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, item.MIMEType)
	}

	s.b.Write(f, item.Data)
	ggtools.Logger().Debug("sysclip: write", "type", item.MIMEType, "bytes", len(item.Data))
	return nil
}

var (
	_ clip.Reader = (*System)(nil)
	_ clip.Writer = (*System)(nil)
)
