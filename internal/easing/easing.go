// Package easing provides the easing curves that shape scroll animations.
//
// An easing curve is a monotonic mapping from normalized progress [0,1] to
// eased progress [0,1]. The forward form describes how far the animation
// has visually advanced at a given point in time. The inverse form answers
// the opposite question - at which time fraction a given position fraction
// is reached - and is what the scheduler samples to turn a continuous curve
// into discrete per-step delays.
package easing

import (
	"math"
	"strings"
)

// Kind selects an easing curve.
type Kind int

const (
	// Linear spaces all steps uniformly.
	Linear Kind = iota
	// Quadratic accelerates through the run (ease-in).
	Quadratic
	// Cubic decelerates toward the end of the run (ease-out).
	Cubic
	// Sine accelerates gently following a quarter sine wave.
	Sine
)

// String returns the curve name.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	case Sine:
		return "sine"
	default:
		return "unknown"
	}
}

// ParseKind parses a curve name. Unrecognized names degrade to Linear
// rather than failing; the animation still runs, just with uniform spacing.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quadratic", "quad":
		return Quadratic
	case "cubic":
		return Cubic
	case "sine", "sin":
		return Sine
	default:
		return Linear
	}
}

// Ease maps progress p in [0,1] to eased progress in [0,1].
// Unrecognized kinds behave as Linear.
func (k Kind) Ease(p float64) float64 {
	switch k {
	case Quadratic:
		return p * p
	case Cubic:
		return 1 - math.Pow(1-p, 3)
	case Sine:
		return 1 - math.Cos(p*math.Pi/2)
	default:
		return p
	}
}

// Inverse maps eased progress x in [0,1] back to the position fraction at
// which it is reached. Linear and unrecognized kinds are the identity.
func (k Kind) Inverse(x float64) float64 {
	switch k {
	case Quadratic:
		return 1 - math.Sqrt(1-x)
	case Cubic:
		return 1 - math.Cbrt(1-x)
	case Sine:
		return 2 * math.Asin(x) / math.Pi
	default:
		return x
	}
}

// sentinelDelay is returned when StepDelay is asked about a finished run.
// The scheduler checks completion before computing a delay, so the value is
// never consumed by a live animation.
const sentinelDelay = 1000

// StepDelay returns the delay in milliseconds before the next scroll step.
//
// remaining and total are absolute line counts; durationMS is the total
// configured animation duration. For Linear the duration is divided evenly
// across total-1 intervals. For the curved kinds the inverse easing is
// sampled at the two successive position fractions bracketing the current
// step, and the difference scaled by the duration. Successive differences
// telescope, so the per-step delays sum to approximately durationMS no
// matter how unevenly they are spaced.
//
// The result is always at least 1 so a run can never stall on a zero or
// negative delay, and all denominators are clamped to at least 1.
func StepDelay(remaining, total int, durationMS float64, kind Kind) int {
	if remaining < 1 {
		return sentinelDelay
	}

	if kind == Linear || (kind != Quadratic && kind != Cubic && kind != Sine) {
		intervals := total - 1
		if intervals < 1 {
			intervals = 1
		}
		return clampDelay(int(durationMS / float64(intervals)))
	}

	rng := total
	if rng < 1 {
		rng = 1
	}
	x1 := float64(rng-remaining) / float64(rng)
	x2 := float64(rng-remaining+1) / float64(rng)

	return clampDelay(int(durationMS * (kind.Inverse(x2) - kind.Inverse(x1))))
}

// clampDelay enforces the minimum forward-progress delay.
func clampDelay(d int) int {
	if d < 1 {
		return 1
	}
	return d
}
