package scroll

import (
	"time"

	"github.com/dshills/glide/internal/easing"
)

// DefaultDuration is used when neither the run options nor the scheduler
// defaults specify a duration.
const DefaultDuration = 250 * time.Millisecond

// Options configures a single animation run. The options are snapshotted by
// Start and immutable for the run's lifetime.
type Options struct {
	// Duration is the total animation duration. Zero or negative falls
	// back to the scheduler's configured default.
	Duration time.Duration

	// Easing selects the curve shaping the per-step delays.
	Easing easing.Kind

	// ViewportOnly suppresses the cursor movement that normally accompanies
	// the viewport. The zero value moves the cursor, the documented default.
	ViewportOnly bool

	// Info is an opaque payload forwarded unmodified to pre and post run
	// hooks and lifecycle events.
	Info any
}

// Defaults supplies scheduler-wide fallbacks for run options, typically
// sourced from configuration.
type Defaults struct {
	// Duration is the fallback animation duration.
	Duration time.Duration

	// Easing is the fallback easing curve.
	Easing easing.Kind
}

// DefaultOptions returns run options populated from the given defaults.
// Cursor movement is enabled, as it is for any zero-value Options.
func DefaultOptions(d Defaults) Options {
	dur := d.Duration
	if dur <= 0 {
		dur = DefaultDuration
	}
	return Options{
		Duration: dur,
		Easing:   d.Easing,
	}
}

// normalize fills unset option fields from the scheduler defaults.
func (d Defaults) normalize(opts Options) Options {
	if opts.Duration <= 0 {
		opts.Duration = d.Duration
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	return opts
}
