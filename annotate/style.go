package annotate

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Stroke defaults and limits.
const (
	DefaultLineColor = "#ffa500"
	DefaultLineWidth = 2.0
	MinLineWidth     = 1.0
	MaxLineWidth     = 10.0
)

// DefaultPreviewDash is the dash/gap pattern of the live preview rectangle.
var DefaultPreviewDash = []float64{8, 4}

// ErrInvalidColor is returned for color strings that are not hex colors.
var ErrInvalidColor = errors.New("annotate: invalid color")

// Style holds the stroke attributes used for new rectangles.
type Style struct {
	Color gg.RGBA
	Width float64
}

// DefaultStyle returns an orange stroke two pixels wide.
func DefaultStyle() Style {
	return Style{
		Color: gg.Hex(DefaultLineColor),
		Width: DefaultLineWidth,
	}
}

// Hex returns the stroke color as #rrggbb, or #rrggbbaa when translucent.
func (s Style) Hex() string {
	return HexColor(s.Color)
}

// ClampWidth clamps a line width into [MinLineWidth, MaxLineWidth].
// NaN maps to DefaultLineWidth.
func ClampWidth(w float64) float64 {
	switch {
	case math.IsNaN(w):
		return DefaultLineWidth
	case w < MinLineWidth:
		return MinLineWidth
	case w > MaxLineWidth:
		return MaxLineWidth
	}
	return w
}

// FormatWidth renders a width the way a numeric control displays it.
func FormatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// ParseColor parses #rgb, #rgba, #rrggbb or #rrggbbaa. The leading # is
// optional.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return gg.Hex(hex), nil
}

// ColorFrom converts a standard color to a straight-alpha gg color.
func ColorFrom(c color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// HexColor formats a color as #rrggbb, or #rrggbbaa when translucent.
func HexColor(c gg.RGBA) string {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
