package navigation

import "sync"

// State is the lifecycle of a form submission.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Settled reports whether s is a resting state.
func (s State) Settled() bool {
	return s != Submitting
}

// Tracker hands out request ids so that only the latest response for a
// form is applied. Earlier requests are never cancelled; their results are
// simply ignored when they arrive.
type Tracker struct {
	mu      sync.Mutex
	latest  uint64
	settled bool
	state   State
}

// Begin starts a new request and returns its id.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	t.settled = false
	t.state = Submitting
	return t.latest
}

// Settle reports whether the response for id should be applied, moving
// the tracker to Succeeded or Failed if so. A stale or repeated id is
// rejected.
func (t *Tracker) Settle(id uint64, ok bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id != t.latest || t.settled {
		return false
	}
	t.settled = true
	if ok {
		t.state = Succeeded
	} else {
		t.state = Failed
	}
	return true
}

// State returns the current submission state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Busy reports whether a request is in flight.
func (t *Tracker) Busy() bool {
	return t.State() == Submitting
}
