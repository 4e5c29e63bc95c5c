// Package viewport tracks the visible window over a buffer of lines.
//
// The viewport is the movement surface the scroll scheduler drives: it
// clamps all motion to the content bounds, so a scroll step past the edge
// of the buffer is silently absorbed.
package viewport

import "sync"

// Viewport represents the visible portion of a line buffer.
type Viewport struct {
	mu sync.RWMutex

	// First visible line
	topLine int

	// Size in screen cells
	width  int
	height int

	// Cursor position in buffer lines
	cursorLine int

	// Total content lines
	maxLine int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func New(width, height int) *Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return &Viewport{
		width:  width,
		height: height,
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// BottomLine returns the last visible line.
func (v *Viewport) BottomLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.bottomLine()
}

// bottomLine returns the last visible line (internal, no lock).
func (v *Viewport) bottomLine() int {
	bottom := v.topLine + v.height - 1
	if v.maxLine > 0 && bottom > v.maxLine-1 {
		bottom = v.maxLine - 1
	}
	return bottom
}

// CursorLine returns the cursor's buffer line.
func (v *Viewport) CursorLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cursorLine
}

// SetContentLines sets the total number of lines in the buffer and clamps
// the current position to the new bounds.
func (v *Viewport) SetContentLines(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if n < 0 {
		n = 0
	}
	v.maxLine = n
	v.topLine = v.clampTop(v.topLine)
	v.cursorLine = v.clampCursor(v.cursorLine)
}

// ContentLines returns the total number of buffer lines.
func (v *Viewport) ContentLines() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.maxLine
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
	v.topLine = v.clampTop(v.topLine)
}

// ScrollForward moves the viewport forward (down) by units lines, clamped
// to the content bounds.
func (v *Viewport) ScrollForward(units int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topLine = v.clampTop(v.topLine + units)
}

// ScrollBackward moves the viewport backward (up) by units lines, clamped
// to the content bounds.
func (v *Viewport) ScrollBackward(units int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topLine = v.clampTop(v.topLine - units)
}

// ScrollTo moves the viewport so line is the top line, clamped.
func (v *Viewport) ScrollTo(line int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topLine = v.clampTop(line)
}

// MoveCursorLine moves the cursor by delta buffer lines, clamped to the
// content bounds.
func (v *Viewport) MoveCursorLine(delta int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursorLine = v.clampCursor(v.cursorLine + delta)
}

// SetCursorLine places the cursor on the given buffer line, clamped.
func (v *Viewport) SetCursorLine(line int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursorLine = v.clampCursor(line)
}

// IsVisible reports whether the given buffer line is inside the viewport.
func (v *Viewport) IsVisible(line int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return line >= v.topLine && line <= v.bottomLine()
}

// VisibleRange returns the first and last visible buffer lines.
func (v *Viewport) VisibleRange() (first, last int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine, v.bottomLine()
}

// MaxTopLine returns the largest valid top line for the current content.
func (v *Viewport) MaxTopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.maxTop()
}

// maxTop returns the largest valid top line (internal, no lock).
func (v *Viewport) maxTop() int {
	if v.maxLine <= v.height {
		return 0
	}
	return v.maxLine - v.height
}

// clampTop bounds a candidate top line to [0, maxTop].
func (v *Viewport) clampTop(line int) int {
	if line < 0 {
		return 0
	}
	if max := v.maxTop(); line > max {
		return max
	}
	return line
}

// clampCursor bounds a candidate cursor line to the content.
func (v *Viewport) clampCursor(line int) int {
	if line < 0 {
		return 0
	}
	if v.maxLine > 0 && line > v.maxLine-1 {
		return v.maxLine - 1
	}
	if v.maxLine == 0 {
		return 0
	}
	return line
}
