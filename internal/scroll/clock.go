package scroll

import "time"

// TimerHandle is the ownership token for one pending timer callback.
type TimerHandle interface {
	// Stop cancels the timer. It returns false if the timer already fired.
	// The scheduler does not rely on Stop alone to suppress stale
	// callbacks; a generation check backs the guarantee.
	Stop() bool
}

// Clock schedules one-shot deferred callbacks. The production clock is
// backed by time.AfterFunc; tests substitute a manual clock to make step
// timing deterministic.
type Clock interface {
	// ScheduleOnce runs fn once after d elapses.
	ScheduleOnce(d time.Duration, fn func()) TimerHandle
}

// SystemClock is the production Clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) ScheduleOnce(d time.Duration, fn func()) TimerHandle {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (h systemTimer) Stop() bool {
	return h.t.Stop()
}
