package clock

// Domain selects which timing domain a deferred task counts down in.
// Making the domain an explicit argument keeps callers honest about
// whether a delay should elapse while gameplay time is frozen.
type Domain int

const (
	// Scaled counts down in game time and pauses while the time scale is 0.
	Scaled Domain = iota
	// Unscaled counts down in real time regardless of the time scale.
	Unscaled
)

// Task is a pending one-shot callback.
type Task struct {
	remaining float64
	domain    Domain
	fn        func()
	done      bool
}

// Cancel prevents the task from firing. Safe to call after it fired.
func (t *Task) Cancel() {
	t.done = true
}

// Scheduler runs one-shot deferred callbacks on the frame loop.
// Single-threaded: Tick and After must be called from the game loop.
type Scheduler struct {
	tasks []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once delay seconds have elapsed in the given
// domain. A non-positive delay fires on the next Tick.
func (s *Scheduler) After(delay float64, domain Domain, fn func()) *Task {
	t := &Task{remaining: delay, domain: domain, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick advances all pending tasks by this frame's deltas and fires the
// ones that have elapsed. A task scheduled from inside a firing callback
// starts counting on the next Tick.
func (s *Scheduler) Tick(dt, unscaledDt float64) {
	// Detach the list first: callbacks may call After, and those new
	// tasks must survive the merge below instead of being clobbered.
	running := s.tasks
	s.tasks = nil

	var kept []*Task
	for _, t := range running {
		if t.done {
			continue
		}
		switch t.domain {
		case Unscaled:
			t.remaining -= unscaledDt
		default:
			t.remaining -= dt
		}
		if t.remaining <= 0 {
			t.done = true
			t.fn()
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = append(kept, s.tasks...)
}

// Pending reports how many tasks have not yet fired.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}
