// Package studytimer implements the countdown behind the study timer app.
//
// The timer is a small state machine. It is Idle until started, Running
// while ticks count the remaining seconds down, and passes through Expired
// when the count reaches zero, at which point the completed-session counter
// is incremented and the timer is Idle again.
//
// Ticks carry the epoch of the run they were scheduled for. Every Start
// opens a new epoch, so a tick that was already in flight when the timer was
// reset is recognised as stale and ignored.
package studytimer

import (
	"errors"
	"fmt"
)

// Presets are the session lengths, in minutes, that can be selected.
var Presets = []int{5, 15, 25, 45}

// DefaultSessionMinutes is the length a new timer starts with.
const DefaultSessionMinutes = 25

// ErrUnknownPreset is returned for a session length outside Presets.
var ErrUnknownPreset = errors.New("unknown session length preset")

// IsPreset reports whether minutes is one of Presets.
func IsPreset(minutes int) bool {
	for _, p := range Presets {
		if p == minutes {
			return true
		}
	}
	return false
}

type Phase int

const (
	Idle Phase = iota
	Running
	Expired
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the observable timer state.
type State struct {
	Running           bool
	SessionMinutes    int
	SecondsRemaining  int
	CompletedSessions int
}

// SessionSeconds is the full length of the configured session.
func (s State) SessionSeconds() int { return s.SessionMinutes * 60 }

// TickResult tells the caller what a tick did and whether to keep ticking.
type TickResult int

const (
	// TickStale means the tick was ignored: the timer is not running or the
	// tick belongs to an earlier run.
	TickStale TickResult = iota
	// TickCounted means one second was consumed and the timer still runs.
	TickCounted
	// TickExpired means the session just finished.
	TickExpired
)

type EventKind int

const (
	EventStarted EventKind = iota
	EventReset
	EventSessionChanged
	EventTicked
	EventExpired
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventReset:
		return "reset"
	case EventSessionChanged:
		return "session_changed"
	case EventTicked:
		return "ticked"
	case EventExpired:
		return "expired"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is delivered to subscribers after each transition. State is the
// state once the transition has completed.
type Event struct {
	Kind  EventKind
	State State
	Epoch uint64
}

// Phase is the phase the event put the timer in. Expiry reports Expired even
// though the timer has already settled back to Idle.
func (e Event) Phase() Phase {
	switch {
	case e.Kind == EventExpired:
		return Expired
	case e.State.Running:
		return Running
	default:
		return Idle
	}
}

type subscriber struct {
	id int
	fn func(Event)
}

// Timer is the study timer state machine. It is not safe for concurrent
// use; callers drive it from one loop.
type Timer struct {
	state       State
	epoch       uint64
	subscribers []subscriber
	nextID      int
}

// New returns an idle timer with a full session of the given length.
func New(sessionMinutes int) (*Timer, error) {
	if !IsPreset(sessionMinutes) {
		return nil, fmt.Errorf("%w: %d minutes", ErrUnknownPreset, sessionMinutes)
	}
	return &Timer{
		state: State{
			SessionMinutes:   sessionMinutes,
			SecondsRemaining: sessionMinutes * 60,
		},
	}, nil
}

func (t *Timer) State() State { return t.state }

func (t *Timer) Running() bool { return t.state.Running }

// Epoch identifies the current (or most recent) run.
func (t *Timer) Epoch() uint64 { return t.epoch }

func (t *Timer) Phase() Phase {
	if t.state.Running {
		return Running
	}
	return Idle
}

// Start moves Idle to Running and returns the epoch ticks must carry.
// Starting a running timer is a no-op that returns the current epoch.
func (t *Timer) Start() uint64 {
	if t.state.Running {
		return t.epoch
	}
	if t.state.SecondsRemaining == 0 {
		t.state.SecondsRemaining = t.state.SessionSeconds()
	}
	t.state.Running = true
	t.epoch++
	t.emit(EventStarted)
	return t.epoch
}

// Reset stops the timer and restores the full session length.
func (t *Timer) Reset() {
	t.state.Running = false
	t.state.SecondsRemaining = t.state.SessionSeconds()
	t.emit(EventReset)
}

// Toggle is the start/reset control. It reports whether the timer is
// running afterwards together with the epoch to tick with.
func (t *Timer) Toggle() (uint64, bool) {
	if t.state.Running {
		t.Reset()
		return t.epoch, false
	}
	return t.Start(), true
}

// SetSessionLength stops the timer and resets the remaining time to the new
// length. The completed-session counter is left alone.
func (t *Timer) SetSessionLength(minutes int) error {
	if !IsPreset(minutes) {
		return fmt.Errorf("%w: %d minutes", ErrUnknownPreset, minutes)
	}
	t.state.Running = false
	t.state.SessionMinutes = minutes
	t.state.SecondsRemaining = minutes * 60
	t.emit(EventSessionChanged)
	return nil
}

// Tick consumes one second of the run identified by epoch.
func (t *Timer) Tick(epoch uint64) TickResult {
	if !t.state.Running || epoch != t.epoch {
		return TickStale
	}

	if t.state.SecondsRemaining > 0 {
		t.state.SecondsRemaining--
		t.emit(EventTicked)
	}

	if t.state.SecondsRemaining > 0 {
		return TickCounted
	}

	t.state.Running = false
	t.state.CompletedSessions++
	t.emit(EventExpired)
	return TickExpired
}

// Progress is the completed share of the session as a whole percentage.
func (t *Timer) Progress() int {
	total := t.state.SessionSeconds()
	if total <= 0 {
		return 0
	}
	return (total - t.state.SecondsRemaining) * 100 / total
}

// Clock formats the remaining time as MM:SS.
func (t *Timer) Clock() string {
	r := t.state.SecondsRemaining
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}

// Subscribe registers fn for every transition. The returned function
// removes the subscription.
func (t *Timer) Subscribe(fn func(Event)) func() {
	t.nextID++
	id := t.nextID
	t.subscribers = append(t.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range t.subscribers {
			if s.id == id {
				t.subscribers = append(t.subscribers[:i], t.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (t *Timer) emit(kind EventKind) {
	if len(t.subscribers) == 0 {
		return
	}
	ev := Event{Kind: kind, State: t.state, Epoch: t.epoch}
	for _, s := range append([]subscriber(nil), t.subscribers...) {
		s.fn(ev)
	}
}
