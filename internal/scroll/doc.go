// Package scroll implements the variable-step smooth scrolling engine.
//
// A Scheduler turns a signed line displacement and a total duration into a
// sequence of single-line scroll steps spaced by non-uniform delays sampled
// from an easing curve. Steps are driven by one-shot timers; each step
// performs one unit of movement through the host's Driver, notifies the
// host to refresh, and re-arms the timer for the next step.
//
// The scheduler owns all animation state. At most one run is active per
// Scheduler; starting a new run unconditionally cancels the previous one.
// Cancellation is total: the pending timer is stopped and a generation
// counter guarantees that a callback from a superseded run can never touch
// the new run's state, even if the timer had already fired.
//
// Every step begins with an interrupt check. Pending host input, or any
// registered interrupt source, cancels the run at the next step boundary,
// bounding cancellation latency to one step interval.
package scroll
