// Package governor paces a CHIP-8 VM's step loop: it runs Step at a
// configurable CPU clock (nominally 600 Hz) and Tick at a timer clock
// (60 Hz by default), on independent schedules, comparing successive
// time.Now() reads against per-clock intervals rather than inlining the
// loop in main, so run/pause/stop control is reusable and testable.
package governor

import (
	"errors"
	"time"
)

// DefaultClockHz is the nominal CPU instruction rate.
const DefaultClockHz = 600

// TimerHz is the default delay/sound timer decrement rate. The
// Governor.TimerHz field overrides it; tests use that to drive the timer
// at an accelerated rate, and cmd/chip8 sets it from the config's
// cpu.timer_hz.
const TimerHz = 60

// Stepper is the subset of *vm.VM the governor drives. It is an
// interface rather than a concrete *vm.VM so governor has no import
// dependency on package vm and its tests can use a fake.
type Stepper interface {
	Step() error
	Tick()
}

// ErrStopped is returned by Run when the governor was stopped via
// Stop() rather than because Step returned an error.
var ErrStopped = errors.New("governor: stopped")

// Governor paces a Stepper's Step/Tick calls against wall-clock time.
type Governor struct {
	ClockHz int
	TimerHz int

	paused bool
	stop   chan struct{}
}

// New creates a Governor at the default clock speeds.
func New() *Governor {
	return &Governor{
		ClockHz: DefaultClockHz,
		TimerHz: TimerHz,
		stop:    make(chan struct{}),
	}
}

// Pause toggles whether Run calls Step. Tick keeps running while
// paused — timers decrement during a host pause the same way they do
// while the VM is suspended inside Fx0A.
func (g *Governor) Pause(paused bool) {
	g.paused = paused
}

// Paused reports the current pause state.
func (g *Governor) Paused() bool {
	return g.paused
}

// Stop requests that Run return at the next suspension point. Safe to
// call from a different goroutine than Run (e.g. a signal handler).
func (g *Governor) Stop() {
	select {
	case <-g.stop:
		// already stopped
	default:
		close(g.stop)
	}
}

// Run paces s.Step() at ClockHz and s.Tick() at TimerHz until Stop is
// called or a step fails. onTick, if non-nil, is invoked after every
// timer tick (the host uses this to drive the audio/display
// collaborators without the governor importing them). It returns
// ErrStopped on a clean stop, or the error a failing Step returned.
func (g *Governor) Run(s Stepper, onTick func()) error {
	if g.ClockHz <= 0 {
		g.ClockHz = DefaultClockHz
	}
	if g.TimerHz <= 0 {
		g.TimerHz = TimerHz
	}

	cycleInterval := time.Second / time.Duration(g.ClockHz)
	timerInterval := time.Second / time.Duration(g.TimerHz)

	lastCycle := time.Now()
	lastTimer := time.Now()

	for {
		select {
		case <-g.stop:
			return ErrStopped
		default:
		}

		now := time.Now()

		if !g.paused && now.Sub(lastCycle) >= cycleInterval {
			if err := s.Step(); err != nil {
				return err
			}
			lastCycle = now
		}

		if now.Sub(lastTimer) >= timerInterval {
			s.Tick()
			if onTick != nil {
				onTick()
			}
			lastTimer = now
		}

		time.Sleep(100 * time.Microsecond)
	}
}

// StepOnce drives exactly one Step call, bypassing pacing entirely. A
// host debugger calls this directly for single-step mode while Run is
// not active.
func (g *Governor) StepOnce(s Stepper) error {
	return s.Step()
}
