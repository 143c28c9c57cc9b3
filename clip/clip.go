// Package clip defines clipboard payloads shared by the annotator and the
// table converter, and an in-memory clipboard.
//
// A payload is an ordered list of [Item] values, one per representation the
// clipboard offers. Readers put image items before text items.
package clip

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// MIME types written by ggtools.
const (
	MIMEImagePNG  = "image/png"
	MIMETextPlain = "text/plain;charset=utf-8"
)

// ErrEmpty is returned by readers when the clipboard holds nothing usable.
var ErrEmpty = errors.New("clip: clipboard is empty")

// Item is one representation of the clipboard contents.
type Item struct {
	MIMEType string
	Data     []byte
}

// IsImage reports whether the item's declared type is in the image category.
// The match is case-sensitive; clipboards report lowercase types.
func (it Item) IsImage() bool {
	return strings.HasPrefix(it.MIMEType, "image/")
}

// IsText reports whether the item's declared type is in the text category.
func (it Item) IsText() bool {
	return strings.HasPrefix(it.MIMEType, "text/")
}

// ImageItem wraps PNG-encoded bytes.
func ImageItem(png []byte) Item {
	return Item{MIMEType: MIMEImagePNG, Data: png}
}

// TextItem wraps UTF-8 text.
func TextItem(s string) Item {
	return Item{MIMEType: MIMETextPlain, Data: []byte(s)}
}

// FirstImage returns the first image item of a payload.
// Later image items and non-image items are ignored.
func FirstImage(items []Item) (Item, bool) {
	for _, it := range items {
		if it.IsImage() {
			return it, true
		}
	}
	return Item{}, false
}

// Reader reads the current clipboard payload.
type Reader interface {
	Read(ctx context.Context) ([]Item, error)
}

// Writer replaces the clipboard contents with a single item.
type Writer interface {
	Write(ctx context.Context, item Item) error
}

// Memory is an in-process clipboard. It is safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	items []Item
}

var (
	_ Reader = (*Memory)(nil)
	_ Writer = (*Memory)(nil)
)

// NewMemory creates a clipboard holding the given items.
func NewMemory(items ...Item) *Memory {
	return &Memory{items: cloneItems(items)}
}

// Read returns a copy of the stored payload, or ErrEmpty.
func (m *Memory) Read(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.items) == 0 {
		return nil, ErrEmpty
	}
	return cloneItems(m.items), nil
}

// Write replaces the stored payload with item.
func (m *Memory) Write(ctx context.Context, item Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.items = cloneItems([]Item{item})
	m.mu.Unlock()
	return nil
}

// Set replaces the stored payload with several items.
func (m *Memory) Set(items ...Item) {
	m.mu.Lock()
	m.items = cloneItems(items)
	m.mu.Unlock()
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item{MIMEType: it.MIMEType, Data: append([]byte(nil), it.Data...)}
	}
	return out
}
