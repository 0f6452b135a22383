package governor

import (
	"errors"
	"testing"
	"time"
)

type fakeStepper struct {
	steps int
	ticks int
	failAfter int
}

func (f *fakeStepper) Step() error {
	f.steps++
	if f.failAfter > 0 && f.steps >= f.failAfter {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeStepper) Tick() {
	f.ticks++
}

func TestRunStopsOnStop(t *testing.T) {
	g := New()
	g.ClockHz = 2000
	g.TimerHz = 200

	s := &fakeStepper{}

	go func() {
		time.Sleep(20 * time.Millisecond)
		g.Stop()
	}()

	err := g.Run(s, nil)
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	if s.steps == 0 {
		t.Error("expected at least one step before stopping")
	}
	if s.ticks == 0 {
		t.Error("expected at least one tick before stopping")
	}
}

func TestRunReturnsStepError(t *testing.T) {
	g := New()
	g.ClockHz = 2000
	g.TimerHz = 200

	s := &fakeStepper{failAfter: 3}

	err := g.Run(s, nil)
	if err == nil || errors.Is(err, ErrStopped) {
		t.Fatalf("expected the step error to propagate, got %v", err)
	}
	if s.steps != 3 {
		t.Errorf("expected exactly 3 steps, got %d", s.steps)
	}
}

func TestPauseSkipsSteppingNotTicking(t *testing.T) {
	g := New()
	g.ClockHz = 2000
	g.TimerHz = 200
	g.Pause(true)

	s := &fakeStepper{}

	go func() {
		time.Sleep(20 * time.Millisecond)
		g.Stop()
	}()

	_ = g.Run(s, nil)

	if s.steps != 0 {
		t.Errorf("expected no steps while paused, got %d", s.steps)
	}
	if s.ticks == 0 {
		t.Error("expected ticks to continue while paused")
	}
}

func TestStepOnceBypassesPacing(t *testing.T) {
	g := New()
	s := &fakeStepper{}

	for i := 0; i < 3; i++ {
		if err := g.StepOnce(s); err != nil {
			t.Fatalf("StepOnce failed: %v", err)
		}
	}
	if s.steps != 3 {
		t.Errorf("expected 3 steps, got %d", s.steps)
	}
}
