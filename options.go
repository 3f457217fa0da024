package touchstroke

import "log/slog"

// Default drawing dimensions, in surface units.
const (
	DefaultLineWidth   = 4.0
	DefaultStartRadius = 4.0
	DefaultMarkerSize  = 4.0
)

// Option configures a Tracker during creation.
//
// Example:
//
//	t := touchstroke.New(surface,
//	    touchstroke.WithLineWidth(6),
//	    touchstroke.WithLogger(logger),
//	)
type Option func(*options)

// options holds the optional Tracker configuration.
type options struct {
	lineWidth   float64
	startRadius float64
	markerSize  float64
	logger      *slog.Logger
}

// defaultOptions returns the default tracker options.
func defaultOptions() options {
	return options{
		lineWidth:   DefaultLineWidth,
		startRadius: DefaultStartRadius,
		markerSize:  DefaultMarkerSize,
	}
}

// WithLineWidth sets the stroke width of line segments.
// Non-positive widths are ignored.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithStartRadius sets the radius of the filled circle drawn where a
// contact starts. Non-positive radii are ignored.
func WithStartRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.startRadius = r
		}
	}
}

// WithMarkerSize sets the half side of the square drawn where a contact
// ends. Non-positive sizes are ignored.
func WithMarkerSize(half float64) Option {
	return func(o *options) {
		if half > 0 {
			o.markerSize = half
		}
	}
}

// WithLogger sets a logger for this tracker only. When unset the tracker
// uses the package logger returned by Logger at the time of each call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
