package scroll

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/glide/internal/easing"
	"github.com/dshills/glide/internal/event"
	"github.com/dshills/glide/internal/hook"
	"github.com/dshills/glide/internal/logging"
)

// ErrNilDriver is returned when constructing a scheduler without a driver.
var ErrNilDriver = errors.New("scroll: driver cannot be nil")

// StepEvent is the payload published on the scroll.step topic.
type StepEvent struct {
	// RunID identifies the run the step belongs to.
	RunID string

	// Position is the accumulated signed displacement after the step.
	Position int

	// Total is the run's signed target displacement.
	Total int
}

// Config assembles a Scheduler's collaborators. Driver is required; all
// other fields have working zero-value fallbacks.
type Config struct {
	// Driver performs the actual movement. Required.
	Driver Driver

	// Refresher is notified after each step and on cleanup.
	Refresher Refresher

	// Hooks receives pre/post run callbacks. A new manager is created
	// when nil.
	Hooks *hook.Manager

	// Bus receives scroll lifecycle events. Optional.
	Bus *event.Bus

	// Clock schedules step timers. Defaults to SystemClock.
	Clock Clock

	// Logger receives scheduler diagnostics. Defaults to the null logger.
	Logger *logging.Logger

	// Defaults supplies fallback run options.
	Defaults Defaults
}

// Scheduler owns the animation state for one viewport and runs at most one
// animation at a time.
type Scheduler struct {
	driver    Driver
	refresher Refresher
	hooks     *hook.Manager
	bus       *event.Bus
	clock     Clock
	log       *logging.Logger
	defaults  Defaults
	monitor   monitor

	mu          sync.Mutex
	gen         uint64
	active      bool
	total       int
	pos         int
	interrupted bool
	opts        Options
	runID       string
	timer       TimerHandle
}

// New creates a scheduler from the given configuration.
func New(cfg Config) (*Scheduler, error) {
	if cfg.Driver == nil {
		return nil, ErrNilDriver
	}
	if cfg.Refresher == nil {
		cfg.Refresher = NopRefresher{}
	}
	if cfg.Hooks == nil {
		cfg.Hooks = hook.NewManager()
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NullLogger
	}

	return &Scheduler{
		driver:    cfg.Driver,
		refresher: cfg.Refresher,
		hooks:     cfg.Hooks,
		bus:       cfg.Bus,
		clock:     cfg.Clock,
		log:       cfg.Logger.WithComponent("scheduler"),
		defaults:  cfg.Defaults,
	}, nil
}

// Hooks returns the scheduler's hook manager.
func (s *Scheduler) Hooks() *hook.Manager {
	return s.hooks
}

// AddInterruptSource registers an additional interrupt trigger, checked at
// the top of every step alongside the driver's pending-input signal.
func (s *Scheduler) AddInterruptSource(fn func() bool) {
	s.monitor.add(fn)
}

// IsActive reports whether an animation run is in flight.
func (s *Scheduler) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Start begins a new animation run scrolling by lines. Any run already in
// flight is cancelled first, unconditionally, even when lines is zero. A
// zero displacement performs no steps and invokes no hooks beyond that
// implicit cancellation.
//
// The first step executes synchronously on the caller's goroutine;
// subsequent steps run from timer callbacks.
func (s *Scheduler) Start(lines int, opts Options) {
	s.Interrupt()

	if lines == 0 {
		return
	}

	opts = s.defaults.normalize(opts)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.active = true
	s.total = lines
	s.pos = 0
	s.interrupted = false
	s.opts = opts
	s.runID = uuid.NewString()
	info := s.runInfoLocked()
	s.mu.Unlock()

	s.log.Debug("run %s started: lines=%d duration=%s easing=%s",
		info.ID, lines, opts.Duration, opts.Easing)

	s.publish(event.TopicScrollStart, info)
	s.hooks.RunPre(info)

	s.step(gen)
}

// StartPage begins a run scrolling by one window height, forward or
// backward, keeping one line of context.
func (s *Scheduler) StartPage(forward bool, opts Options) {
	lines := s.driver.WindowHeight() - 1
	if lines < 1 {
		lines = 1
	}
	if !forward {
		lines = -lines
	}
	s.Start(lines, opts)
}

// Interrupt cancels any in-flight run. It is idempotent and also serves as
// a general stop-and-resync primitive: the refresh notification fires even
// when no animation was active. A cancelled run's post hooks fire exactly
// once, from here.
func (s *Scheduler) Interrupt() {
	s.mu.Lock()
	fin, info := s.cancelLocked()
	s.mu.Unlock()

	s.refresher.NotifyPostStep()

	if fin {
		s.finishRun(info, event.TopicScrollInterrupt)
	}
}

// cancelLocked stops the pending timer, bumps the generation so any
// already-fired callback becomes a no-op, and tears down run state.
// It returns the finalization info when a run was active.
func (s *Scheduler) cancelLocked() (bool, hook.RunInfo) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++

	if !s.active {
		return false, hook.RunInfo{}
	}

	s.active = false
	s.interrupted = true
	return true, s.runInfoLocked()
}

// step executes one iteration of the run owning generation gen.
func (s *Scheduler) step(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.active {
		// Stale callback from a superseded run.
		s.mu.Unlock()
		return
	}
	s.timer = nil

	remaining := s.total - s.pos
	if !s.interrupted && remaining != 0 && s.monitor.tripped(s.driver) {
		s.interrupted = true
	}

	if s.interrupted || remaining == 0 {
		info := s.runInfoLocked()
		s.active = false
		s.mu.Unlock()

		topic := event.TopicScrollFinish
		if info.Interrupted {
			topic = event.TopicScrollInterrupt
		}
		s.refresher.NotifyPostStep()
		s.finishRun(info, topic)
		return
	}

	dir := 1
	if remaining < 0 {
		dir = -1
	}

	// Drivers must not call back into the scheduler; the lock is held here.
	if dir > 0 {
		s.driver.ScrollForward(1)
	} else {
		s.driver.ScrollBackward(1)
	}
	if !s.opts.ViewportOnly {
		s.driver.MoveCursorLine(dir)
	}

	s.pos += dir
	remaining = s.total - s.pos

	var delay int
	if remaining == 0 {
		// The finalize pass runs at the top of the next step, so the
		// completion check always precedes the delay computation.
		delay = 1
	} else {
		delay = easing.StepDelay(abs(remaining), abs(s.total),
			float64(s.opts.Duration.Milliseconds()), s.opts.Easing)
	}

	s.timer = s.clock.ScheduleOnce(time.Duration(delay)*time.Millisecond, func() {
		s.step(gen)
	})

	stepEv := StepEvent{RunID: s.runID, Position: s.pos, Total: s.total}
	s.mu.Unlock()

	s.refresher.NotifyPostStep()
	s.publish(event.TopicScrollStep, stepEv)
}

// finishRun restores the cursor and fires the finalization notifications.
// Both the completion and the cancellation path funnel through here, so
// post hooks fire exactly once per run.
func (s *Scheduler) finishRun(info hook.RunInfo, topic string) {
	if r, ok := s.driver.(CursorRestorer); ok {
		r.RestoreCursor()
	}

	s.log.Debug("run %s finished: interrupted=%v", info.ID, info.Interrupted)

	s.publish(topic, info)
	s.hooks.RunPost(info)
}

// runInfoLocked snapshots the current run for hooks and events.
func (s *Scheduler) runInfoLocked() hook.RunInfo {
	return hook.RunInfo{
		ID:          s.runID,
		Lines:       s.total,
		Duration:    s.opts.Duration,
		Easing:      s.opts.Easing.String(),
		Interrupted: s.interrupted,
		Info:        s.opts.Info,
	}
}

// publish emits a lifecycle event when a bus is configured.
func (s *Scheduler) publish(topic string, payload any) {
	if s.bus != nil {
		s.bus.Publish(topic, payload)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
