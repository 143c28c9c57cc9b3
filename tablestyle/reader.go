package tablestyle

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gogpu/ggtools"
)

// ErrUnknownEncoding is returned for encoding names htmlindex does not know.
var ErrUnknownEncoding = errors.New("tablestyle: unknown encoding")

type readOptions struct {
	encoding string
}

// Option configures ConvertReader.
type Option func(*readOptions)

// WithEncoding decodes the input from the named encoding, e.g. "shift_jis"
// or "utf-16le". Empty means UTF-8.
func WithEncoding(name string) Option {
	return func(o *readOptions) { o.encoding = name }
}

// NewDecoder wraps r so that it yields UTF-8. name is a WHATWG or IANA
// encoding name; empty means UTF-8. A UTF-8 or UTF-16 byte order mark in
// the input takes precedence over name.
func NewDecoder(r io.Reader, name string) (io.Reader, error) {
	var enc encoding.Encoding = unicode.UTF8
	if name != "" {
		e, err := htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
		}
		enc = e
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// ConvertReader reads all of r, converts it and writes the result to w.
// CRLF line endings are normalized to LF first, matching what a browser
// text area hands to a script.
func ConvertReader(r io.Reader, w io.Writer, opts ...Option) error {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	dec, err := NewDecoder(r, o.encoding)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(dec)
	if err != nil {
		return fmt.Errorf("tablestyle: read input: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	out := Convert(text)
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("tablestyle: write output: %w", err)
	}

	ggtools.Logger().Info("tablestyle: converted",
		"encoding", o.encoding, "inBytes", len(data), "outBytes", len(out))
	return nil
}
