package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ukeSJTU/termoj/api"
	"github.com/ukeSJTU/termoj/types"
	"github.com/ukeSJTU/termoj/watch"
)

func stream(events ...watch.Event) <-chan watch.Event {
	ch := make(chan watch.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return ch
}

func watchSnap(overall types.Verdict) *types.Snapshot {
	return &types.Snapshot{SubmissionID: 315, Overall: overall}
}

func TestWatchPlainStream(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := New(&buf, true)

	final := r.Watch(315, stream(
		watch.Event{Kind: watch.EventSnapshot, Snapshot: watchSnap(types.VerdictQueued)},
		watch.Event{Kind: watch.EventError, Err: &api.Error{Kind: api.KindTransient, Status: 502, Message: "server error"}, Attempt: 1, Limit: 5},
		watch.Event{Kind: watch.EventSnapshot, Snapshot: watchSnap(types.VerdictAccepted)},
		watch.Event{Kind: watch.EventFinished, Reason: watch.StopTerminal, Snapshot: watchSnap(types.VerdictAccepted)},
	))

	if final.Reason != watch.StopTerminal {
		t.Fatalf("expected the finished event back, got %+v", final)
	}
	out := buf.String()
	wantInOrder := []string{
		"watching submission 315 (ctrl+c to stop)",
		"submission 315: Queued",
		"retrying after a network error, attempt 1/5",
		"submission 315: Accepted",
		"final verdict: Accepted",
	}
	rest := out
	for _, want := range wantInOrder {
		i := strings.Index(rest, want)
		if i < 0 {
			t.Fatalf("expected output to contain %q in order\noutput:\n%s", want, out)
		}
		rest = rest[i+len(want):]
	}
	if strings.Contains(out, "\x1b") {
		t.Errorf("plain mode must not emit escape sequences\noutput:\n%q", out)
	}
}

func TestWatchColorRedraws(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Watch(315, stream(
		watch.Event{Kind: watch.EventSnapshot, Snapshot: watchSnap(types.VerdictQueued)},
		watch.Event{Kind: watch.EventSnapshot, Snapshot: watchSnap(types.VerdictJudging)},
		watch.Event{Kind: watch.EventFinished, Reason: watch.StopTerminal, Snapshot: watchSnap(types.VerdictAccepted)},
	))
	out := buf.String()

	if got := strings.Count(out, "\x1b[2J\x1b[H"); got != 2 {
		t.Errorf("expected one clear per snapshot, got %d", got)
	}
	if got := strings.Count(out, "watching submission 315"); got != 2 {
		t.Errorf("expected the hint after each redraw, got %d", got)
	}
}

func TestWatchMalformedWording(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := New(&buf, true)

	r.Watch(315, stream(
		watch.Event{Kind: watch.EventError, Err: &api.Error{Kind: api.KindMalformed, Message: "decoding response"}, Attempt: 1, Limit: 5},
		watch.Event{Kind: watch.EventFinished, Reason: watch.StopExhausted, Err: &api.Error{Kind: api.KindMalformed, Message: "decoding response"}},
	))
	out := buf.String()

	if !strings.Contains(out, "retrying after a malformed response, attempt 1/5") {
		t.Errorf("expected malformed wording\noutput:\n%s", out)
	}
}

func TestWatchFinishedLines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ev   watch.Event
		want string
	}{
		{
			name: "terminal",
			ev:   watch.Event{Kind: watch.EventFinished, Reason: watch.StopTerminal, Snapshot: watchSnap(types.VerdictWrongAnswer)},
			want: "final verdict: Wrong Answer",
		},
		{
			name: "cancelled",
			ev:   watch.Event{Kind: watch.EventFinished, Reason: watch.StopCancelled},
			want: "stopped watching",
		},
		{
			name: "exhausted with cause",
			ev:   watch.Event{Kind: watch.EventFinished, Reason: watch.StopExhausted, Err: &api.Error{Kind: api.KindTransient, Status: 503, Message: "server error"}},
			want: "gave up watching:",
		},
		{
			name: "exhausted without cause",
			ev:   watch.Event{Kind: watch.EventFinished, Reason: watch.StopExhausted},
			want: "gave up waiting for a final verdict",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			r := New(&buf, true)
			final := r.Watch(315, stream(tt.ev))
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q\noutput:\n%s", tt.want, buf.String())
			}
			if final.Reason != tt.ev.Reason {
				t.Errorf("expected reason %v back, got %v", tt.ev.Reason, final.Reason)
			}
		})
	}
}
