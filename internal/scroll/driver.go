package scroll

// Driver performs the actual movement for the scheduler. Implementations
// are host-owned; the scheduler calls them with single-unit displacements
// only. A driver that cannot move further (viewport at a boundary) should
// silently absorb the call.
type Driver interface {
	// ScrollForward moves the viewport forward by the given number of lines.
	ScrollForward(units int)

	// ScrollBackward moves the viewport backward by the given number of lines.
	ScrollBackward(units int)

	// MoveCursorLine moves the cursor by delta lines. Not called for
	// viewport-only runs.
	MoveCursorLine(delta int)

	// PendingInput reports whether the host has unprocessed input waiting.
	// Checked at the top of every step; true cancels the run.
	PendingInput() bool

	// WindowHeight returns the viewport height in lines. Used to derive
	// page-sized displacements.
	WindowHeight() int
}

// Refresher receives a best-effort notification after every scroll step and
// after run cleanup, so the host can refresh highlights or redraw.
type Refresher interface {
	// NotifyPostStep is fire-and-forget; it must not block.
	NotifyPostStep()
}

// CursorRestorer is optionally implemented by drivers that hide the cursor
// during an animation. RestoreCursor is called when a run finalizes.
type CursorRestorer interface {
	RestoreCursor()
}

// NopRefresher is a Refresher that does nothing.
type NopRefresher struct{}

// NotifyPostStep implements Refresher.
func (NopRefresher) NotifyPostStep() {}
