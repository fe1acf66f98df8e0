package render

import (
	"fmt"

	"github.com/ukeSJTU/termoj/api"
	"github.com/ukeSJTU/termoj/watch"
)

// Watch consumes a session's event stream and renders it until the
// channel closes, then returns the finished event so the caller can map
// the outcome to an exit code. In color mode each changed snapshot
// clears the screen and redraws; in plain mode snapshots append, which
// keeps piped output sensible.
func (r *Renderer) Watch(id int, events <-chan watch.Event) watch.Event {
	if r.Plain {
		r.Message("watching submission %d (ctrl+c to stop)", id)
	}
	var final watch.Event
	for ev := range events {
		switch ev.Kind {
		case watch.EventSnapshot:
			if !r.Plain {
				r.clear()
				r.Message("watching submission %d (ctrl+c to stop)", id)
				r.Message("")
			}
			r.Snapshot(ev.Snapshot)
		case watch.EventError:
			if api.KindOf(ev.Err) == api.KindMalformed {
				r.Warnf("retrying after a malformed response, attempt %d/%d: %v", ev.Attempt, ev.Limit, ev.Err)
			} else {
				r.Warnf("retrying after a network error, attempt %d/%d: %v", ev.Attempt, ev.Limit, ev.Err)
			}
		case watch.EventFinished:
			final = ev
			r.finished(ev)
		}
	}
	return final
}

func (r *Renderer) finished(ev watch.Event) {
	switch ev.Reason {
	case watch.StopTerminal:
		v := ev.Snapshot.Overall
		r.verdict(v, "final verdict: %s", v.Label())
	case watch.StopCancelled:
		r.Message("stopped watching")
	case watch.StopExhausted:
		if ev.Err != nil {
			r.Errorf("gave up watching: %v", ev.Err)
		} else {
			r.Warnf("gave up waiting for a final verdict")
		}
	}
}

// clear wipes the screen and homes the cursor. Only color mode calls
// this, and color mode implies an interactive terminal.
func (r *Renderer) clear() {
	fmt.Fprint(r.Out, "\x1b[2J\x1b[H")
}
