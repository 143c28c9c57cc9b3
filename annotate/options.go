package annotate

// Zoom defaults.
const (
	DefaultZoomStep = 0.1
	DefaultMinScale = 0.1
	DefaultMaxScale = 4.0
)

type options struct {
	style       Style
	previewDash []float64
	zoomStep    float64
	minScale    float64
	maxScale    float64
}

func defaultOptions() options {
	return options{
		style:       DefaultStyle(),
		previewDash: DefaultPreviewDash,
		zoomStep:    DefaultZoomStep,
		minScale:    DefaultMinScale,
		maxScale:    DefaultMaxScale,
	}
}

// Option configures an Annotator.
//
// Example:
//
//	a := annotate.New(
//	    annotate.WithStyle(annotate.Style{Color: gg.Hex("#ff0000"), Width: 3}),
//	    annotate.WithZoom(0.25, 0.25, 2),
//	)
type Option func(*options)

// WithStyle sets the initial stroke style. The width is clamped.
func WithStyle(s Style) Option {
	return func(o *options) {
		s.Width = ClampWidth(s.Width)
		o.style = s
	}
}

// WithPreviewDash sets the dash/gap pattern of the live preview.
// An empty pattern keeps the default.
func WithPreviewDash(pattern ...float64) Option {
	return func(o *options) {
		if len(pattern) > 0 {
			o.previewDash = append([]float64(nil), pattern...)
		}
	}
}

// WithZoom sets the zoom step and the inclusive scale bounds.
// Non-positive or inconsistent values keep the defaults.
func WithZoom(step, minScale, maxScale float64) Option {
	return func(o *options) {
		if step > 0 {
			o.zoomStep = step
		}
		if minScale > 0 && maxScale >= minScale {
			o.minScale = minScale
			o.maxScale = maxScale
		}
	}
}
