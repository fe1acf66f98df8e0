package watch

import (
	"context"

	"github.com/ukeSJTU/termoj/api"
	"github.com/ukeSJTU/termoj/types"
)

// StatusFetcher is the slice of the API client the watcher needs. The
// fetcher must not retry internally; the session owns all retry policy.
type StatusFetcher interface {
	SubmissionStatus(ctx context.Context, id int) (*types.Snapshot, error)
}

// Watch polls the judge for a submission's verdict and streams events
// until a terminal verdict, cancellation, or an exhausted budget ends
// the session. The channel yields zero or more snapshot and error
// events, then exactly one finished event, and closes. The consumer
// must drain the channel until it closes.
//
// Cancel through ctx: cancellation is observed before each poll and
// during each sleep, and the result of a poll that raced a cancellation
// is discarded. Every call starts an independent session with fresh
// counters, so several submissions can be watched concurrently.
func Watch(ctx context.Context, fetcher StatusFetcher, id int, opts Options) <-chan Event {
	opts = opts.withDefaults()
	events := make(chan Event, 1)
	go func() {
		defer close(events)
		events <- run(ctx, fetcher, id, opts, events)
	}()
	return events
}

// run is the session loop: poll, map, emit, sleep, repeat. It returns
// the finished event.
func run(ctx context.Context, fetcher StatusFetcher, id int, opts Options, events chan<- Event) Event {
	sched := NewScheduler(opts)
	clock := opts.Clock
	var last *types.Snapshot

	sched.Begin()
	for {
		// cancellation wins over every other stopping condition
		if ctx.Err() != nil {
			sched.Cancel()
			return Event{Time: clock.Now(), Kind: EventFinished, Reason: StopCancelled, Snapshot: last}
		}

		snap, err := fetcher.SubmissionStatus(ctx, id)

		// a poll that raced a cancellation is discarded, terminal or not
		if ctx.Err() != nil {
			sched.Cancel()
			return Event{Time: clock.Now(), Kind: EventFinished, Reason: StopCancelled, Snapshot: last}
		}

		if err != nil {
			if api.KindOf(err).Fatal() {
				sched.RecordFatal()
				return Event{Time: clock.Now(), Kind: EventFinished, Reason: StopExhausted, Snapshot: last, Err: err}
			}
			state := sched.RecordTransient()
			sendEvent(ctx, events, Event{
				Time:    clock.Now(),
				Kind:    EventError,
				Err:     err,
				Attempt: sched.ConsecutiveErrors(),
				Limit:   sched.ErrorBudget(),
			})
			if state.Done() {
				return Event{Time: clock.Now(), Kind: EventFinished, Reason: StopExhausted, Snapshot: last, Err: err}
			}
		} else {
			state := sched.RecordSuccess(snap.Terminal())
			if snap.Changed(last) {
				sendEvent(ctx, events, Event{Time: clock.Now(), Kind: EventSnapshot, Snapshot: snap})
			}
			last = snap
			switch state {
			case StateTerminal:
				return Event{Time: clock.Now(), Kind: EventFinished, Reason: StopTerminal, Snapshot: snap}
			case StateExhausted:
				return Event{Time: clock.Now(), Kind: EventFinished, Reason: StopExhausted, Snapshot: snap}
			}
		}

		// wait for the next poll
		if err := clock.Sleep(ctx, sched.Interval()); err != nil {
			sched.Cancel()
			return Event{Time: clock.Now(), Kind: EventFinished, Reason: StopCancelled, Snapshot: last}
		}
	}
}

// sendEvent hands an intermediate event to the consumer. Once the
// session is cancelled a dropped event is harmless because a finished
// event always follows.
func sendEvent(ctx context.Context, events chan<- Event, e Event) {
	select {
	case events <- e:
	case <-ctx.Done():
	}
}
