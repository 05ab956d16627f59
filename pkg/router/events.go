package router

import "time"

// EventKind identifies what happened during a render cycle.
type EventKind uint8

const (
	// EventStarted: a route matched, the title was set, and the outlet was
	// cleared ahead of creation.
	EventStarted EventKind = iota + 1
	// EventMounted: the created view was mounted.
	EventMounted
	// EventDiscarded: the cycle was superseded; its result was dropped.
	EventDiscarded
	// EventFailed: creation or mounting failed; the outlet is empty.
	EventFailed
	// EventUnmatched: no route and no fallback; the outlet is empty.
	EventUnmatched
	// EventStopped: the router was stopped.
	EventStopped
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventMounted:
		return "mounted"
	case EventDiscarded:
		return "discarded"
	case EventFailed:
		return "failed"
	case EventUnmatched:
		return "unmatched"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Event describes one step of a render cycle.
type Event struct {
	Kind  EventKind
	Path  string
	Key   string // matched route key; empty for unmatched and stopped
	Token uint64
	Err   error

	// Duration is the time since the cycle started. Set for mounted,
	// discarded and failed events.
	Duration time.Duration
}
