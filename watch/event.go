package watch

import (
	"fmt"
	"time"

	"github.com/ukeSJTU/termoj/types"
)

// EventKind discriminates the variants of Event.
type EventKind string

const (
	// EventSnapshot carries a snapshot that differs from the last one
	// emitted.
	EventSnapshot EventKind = "snapshot"
	// EventError reports a retryable failure; the session continues.
	EventError EventKind = "error"
	// EventFinished is always the last event of a session.
	EventFinished EventKind = "finished"
)

// StopReason explains why a session finished.
type StopReason string

const (
	// StopTerminal means the judge reached a final verdict.
	StopTerminal StopReason = "terminal"
	// StopCancelled means the caller cancelled the session.
	StopCancelled StopReason = "cancelled"
	// StopExhausted means a retry budget ran out or a fatal API error
	// ended the session.
	StopExhausted StopReason = "exhausted"
)

// Event is one element of a watch session's output. Kind selects the
// variant and the other fields are filled per kind:
//
//	snapshot  Snapshot
//	error     Err, Attempt, Limit
//	finished  Reason, Snapshot (last seen, may be nil), and Err when a
//	          fatal or final transient error ended the session
type Event struct {
	Time     time.Time
	Kind     EventKind
	Snapshot *types.Snapshot
	Err      error
	Attempt  int
	Limit    int
	Reason   StopReason
}

func (e *Event) String() string {
	switch e.Kind {
	case EventSnapshot:
		return fmt.Sprintf("event: snapshot %s", e.Snapshot.Overall)
	case EventError:
		return fmt.Sprintf("event: error attempt %d/%d: %v", e.Attempt, e.Limit, e.Err)
	case EventFinished:
		if e.Err != nil {
			return fmt.Sprintf("event: finished %s: %v", e.Reason, e.Err)
		}
		return fmt.Sprintf("event: finished %s", e.Reason)
	default:
		return fmt.Sprintf("unknown event: %s", e.Kind)
	}
}
