// Package hook provides extensible pre/post run hooks for the scroll scheduler.
package hook

import "time"

// RunInfo describes one animation run. It is handed to every hook.
type RunInfo struct {
	// ID uniquely identifies the run.
	ID string

	// Lines is the signed target displacement of the run.
	Lines int

	// Duration is the configured animation duration.
	Duration time.Duration

	// Easing is the name of the easing curve in use.
	Easing string

	// Interrupted is true when the run was cancelled before completing.
	// Only meaningful for post-run hooks.
	Interrupted bool

	// Info is the opaque payload passed to Start, forwarded unmodified.
	Info any
}

// Hook is the base interface for all run hooks.
type Hook interface {
	// Name returns a unique identifier for this hook.
	Name() string

	// Priority returns the hook priority.
	// Higher values run first for pre-hooks, last for post-hooks.
	// Standard priorities:
	//   1000+ = system/critical hooks
	//   500-999 = framework hooks
	//   100-499 = plugin hooks
	//   0-99 = user hooks
	Priority() int
}

// PreRunHook is called once before the first step of a run.
type PreRunHook interface {
	Hook

	// PreRun is called before the run's first step.
	PreRun(info RunInfo)
}

// PostRunHook is called once when a run finalizes, whether it completed
// normally or was interrupted.
type PostRunHook interface {
	Hook

	// PostRun is called at run finalization.
	PostRun(info RunInfo)
}

// PreRunFunc wraps a function as a PreRunHook.
type PreRunFunc struct {
	name     string
	priority int
	fn       func(info RunInfo)
}

// NewPreRunFunc creates a new PreRunFunc hook.
func NewPreRunFunc(name string, priority int, fn func(info RunInfo)) *PreRunFunc {
	return &PreRunFunc{
		name:     name,
		priority: priority,
		fn:       fn,
	}
}

// Name implements Hook.
func (f *PreRunFunc) Name() string { return f.name }

// Priority implements Hook.
func (f *PreRunFunc) Priority() int { return f.priority }

// PreRun implements PreRunHook.
func (f *PreRunFunc) PreRun(info RunInfo) {
	if f.fn != nil {
		f.fn(info)
	}
}

// PostRunFunc wraps a function as a PostRunHook.
type PostRunFunc struct {
	name     string
	priority int
	fn       func(info RunInfo)
}

// NewPostRunFunc creates a new PostRunFunc hook.
func NewPostRunFunc(name string, priority int, fn func(info RunInfo)) *PostRunFunc {
	return &PostRunFunc{
		name:     name,
		priority: priority,
		fn:       fn,
	}
}

// Name implements Hook.
func (f *PostRunFunc) Name() string { return f.name }

// Priority implements Hook.
func (f *PostRunFunc) Priority() int { return f.priority }

// PostRun implements PostRunHook.
func (f *PostRunFunc) PostRun(info RunInfo) {
	if f.fn != nil {
		f.fn(info)
	}
}

// CombinedHook implements both PreRunHook and PostRunHook.
type CombinedHook interface {
	PreRunHook
	PostRunHook
}
