// Package session drives an Ascend board over time. A Controller owns the
// ascend, gravity and advisory timers and routes every tick through a
// Presenter that holds the authoritative piece list.
package session

// Mode is the run state of a session.
type Mode int

const (
	Stopped Mode = iota // no ascend force, no gravity ticks
	Running             // ascend ticks fire on the ascend interval
	Frozen              // ascend suspended, gravity-only ticks fire instead
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Frozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Event is a user intent that may change the mode.
type Event int

const (
	EventStart Event = iota
	EventPause
	EventFreeze
	EventUnfreeze
)

// String returns the display name of the event.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventFreeze:
		return "freeze"
	case EventUnfreeze:
		return "unfreeze"
	default:
		return "unknown"
	}
}

// transitions lists every event that changes the mode. Anything missing is a no-op.
var transitions = map[Mode]map[Event]Mode{
	Stopped: {
		EventStart:  Running,
		EventFreeze: Frozen,
	},
	Running: {
		EventPause:  Stopped,
		EventFreeze: Frozen,
	},
	Frozen: {
		EventUnfreeze: Running,
	},
}

// Next returns the mode reached from m on e. The boolean is false when the
// event does not apply in m, in which case m is returned unchanged.
func Next(m Mode, e Event) (Mode, bool) {
	to, ok := transitions[m][e]
	if !ok {
		return m, false
	}
	return to, true
}
