package clock

import "testing"

// Timing assertions below step by 0.125s, which is exactly
// representable, so the elapsed sums are exact and the boundary frame
// is deterministic.

func TestSchedulerScaledDomainPausesWithTime(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(1.0, Scaled, func() { fired = true })

	// Frozen game time: scaled tasks must not advance.
	for i := 0; i < 100; i++ {
		s.Tick(0, 0.125)
	}
	if fired {
		t.Fatal("scaled task fired while game time was frozen")
	}

	// One second of game time elapses.
	for i := 0; i < 8; i++ {
		s.Tick(0.125, 0.125)
	}
	if !fired {
		t.Fatal("scaled task did not fire after 1s of game time")
	}
}

func TestSchedulerUnscaledDomainIgnoresFreeze(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(0.5, Unscaled, func() { fired = true })

	for i := 0; i < 3; i++ {
		s.Tick(0, 0.125) // frozen game time, real time running
	}
	if fired {
		t.Fatal("unscaled task fired before its delay elapsed")
	}
	s.Tick(0, 0.125)
	if !fired {
		t.Fatal("unscaled task did not fire after 0.5s of real time")
	}
}

func TestSchedulerAfterFromCallback(t *testing.T) {
	s := NewScheduler()
	var fired []string
	s.After(0.25, Unscaled, func() {
		fired = append(fired, "first")
		s.After(0.25, Unscaled, func() { fired = append(fired, "second") })
	})

	for i := 0; i < 8; i++ {
		s.Tick(0, 0.125)
	}
	if len(fired) != 2 || fired[0] != "first" || fired[1] != "second" {
		t.Fatalf("fired = %v, want [first second]", fired)
	}
	if s.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", s.Pending())
	}
}

func TestSchedulerFiresOnce(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(0.1, Scaled, func() { count++ })

	for i := 0; i < 60; i++ {
		s.Tick(1.0/60.0, 1.0/60.0)
	}
	if count != 1 {
		t.Fatalf("task fired %d times, want 1", count)
	}
	if s.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	task := s.After(0.1, Scaled, func() { fired = true })
	task.Cancel()

	for i := 0; i < 60; i++ {
		s.Tick(1.0/60.0, 1.0/60.0)
	}
	if fired {
		t.Fatal("cancelled task fired")
	}
}

func TestSchedulerImmediateDelay(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(0, Scaled, func() { fired = true })
	s.Tick(0, 0)
	if !fired {
		t.Fatal("zero-delay task should fire on the next tick")
	}
}
