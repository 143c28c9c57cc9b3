package sysclip

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/gogpu/ggtools/clip"
)

// Text is a text-only clipboard backed by the platform copy tools
// (pbcopy, xclip, xsel, wl-copy, clip.exe). It serves hosts where New
// fails, such as Wayland sessions without X11.
type Text struct{}

var (
	_ clip.Reader = Text{}
	_ clip.Writer = Text{}
)

// Read returns the clipboard text as a single item.
func (Text) Read(ctx context.Context) ([]clip.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if clipboard.Unsupported {
		return nil, fmt.Errorf("sysclip: no clipboard tool found: %w", ErrUnsupported)
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sysclip: read text: %w", err)
	}
	if s == "" {
		return nil, clip.ErrEmpty
	}
	return []clip.Item{clip.TextItem(s)}, nil
}

// Write puts a text item on the clipboard. Other items yield ErrUnsupported.
func (Text) Write(ctx context.Context, item clip.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !item.IsText() {
		return fmt.Errorf("%w: %s", ErrUnsupported, item.MIMEType)
	}
	if clipboard.Unsupported {
		return fmt.Errorf("sysclip: no clipboard tool found: %w", ErrUnsupported)
	}
	if err := clipboard.WriteAll(string(item.Data)); err != nil {
		return fmt.Errorf("sysclip: write text: %w", err)
	}
	return nil
}
