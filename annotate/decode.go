package annotate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/gogpu/ggtools/clip"
)

// ErrNotImage is returned when a clipboard item is not in the image category.
var ErrNotImage = errors.New("annotate: clipboard item is not an image")

// Decode decodes an image clipboard item. The declared MIME type only gates
// acceptance; the format itself is sniffed from the data.
func Decode(ctx context.Context, item clip.Item) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !item.IsImage() {
		return nil, fmt.Errorf("%w: %q", ErrNotImage, item.MIMEType)
	}
	img, format, err := image.Decode(bytes.NewReader(item.Data))
	if err != nil {
		return nil, fmt.Errorf("annotate: decode %s: %w", item.MIMEType, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: decoded %s image is %dx%d", ErrInvalidDimensions, format, b.Dx(), b.Dy())
	}
	return img, nil
}
