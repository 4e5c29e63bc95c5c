package viewport

import "testing"

func TestNewClampsSize(t *testing.T) {
	v := New(0, -5)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("expected minimum 1x1, got %dx%d", v.Width(), v.Height())
	}
}

func TestScrollForwardClamped(t *testing.T) {
	v := New(80, 24)
	v.SetContentLines(100)

	v.ScrollForward(10)
	if v.TopLine() != 10 {
		t.Errorf("expected top line 10, got %d", v.TopLine())
	}

	// Past the end: clamps to maxLine - height.
	v.ScrollForward(1000)
	if v.TopLine() != 76 {
		t.Errorf("expected top line clamped to 76, got %d", v.TopLine())
	}
}

func TestScrollBackwardClamped(t *testing.T) {
	v := New(80, 24)
	v.SetContentLines(100)
	v.ScrollTo(5)

	v.ScrollBackward(3)
	if v.TopLine() != 2 {
		t.Errorf("expected top line 2, got %d", v.TopLine())
	}

	v.ScrollBackward(100)
	if v.TopLine() != 0 {
		t.Errorf("expected top line clamped to 0, got %d", v.TopLine())
	}
}

func TestShortContentNeverScrolls(t *testing.T) {
	v := New(80, 24)
	v.SetContentLines(10)

	v.ScrollForward(5)
	if v.TopLine() != 0 {
		t.Errorf("content shorter than viewport must not scroll, got top %d", v.TopLine())
	}
}

func TestCursorClamped(t *testing.T) {
	v := New(80, 24)
	v.SetContentLines(50)

	v.MoveCursorLine(10)
	if v.CursorLine() != 10 {
		t.Errorf("expected cursor line 10, got %d", v.CursorLine())
	}

	v.MoveCursorLine(100)
	if v.CursorLine() != 49 {
		t.Errorf("expected cursor clamped to 49, got %d", v.CursorLine())
	}

	v.MoveCursorLine(-100)
	if v.CursorLine() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", v.CursorLine())
	}
}

func TestSetContentLinesReclamps(t *testing.T) {
	v := New(80, 10)
	v.SetContentLines(100)
	v.ScrollTo(80)
	v.SetCursorLine(95)

	v.SetContentLines(20)

	if v.TopLine() != 10 {
		t.Errorf("expected top reclamped to 10, got %d", v.TopLine())
	}
	if v.CursorLine() != 19 {
		t.Errorf("expected cursor reclamped to 19, got %d", v.CursorLine())
	}
}

func TestVisibleRange(t *testing.T) {
	v := New(80, 10)
	v.SetContentLines(100)
	v.ScrollTo(20)

	first, last := v.VisibleRange()
	if first != 20 || last != 29 {
		t.Errorf("expected range [20, 29], got [%d, %d]", first, last)
	}

	if !v.IsVisible(25) {
		t.Error("line 25 should be visible")
	}
	if v.IsVisible(30) {
		t.Error("line 30 should not be visible")
	}
}

func TestResizeReclamps(t *testing.T) {
	v := New(80, 10)
	v.SetContentLines(30)
	v.ScrollTo(20)

	v.Resize(80, 25)

	if v.TopLine() != 5 {
		t.Errorf("expected top reclamped to 5 after resize, got %d", v.TopLine())
	}
}
