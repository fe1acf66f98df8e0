package watch

import "time"

// State is the scheduler's position in its lifecycle.
type State int

const (
	// StateIdle means no poll has been attempted yet.
	StateIdle State = iota
	// StatePolling means the loop is live and another poll may run.
	StatePolling
	// StateTerminal means the last snapshot carried a final verdict.
	StateTerminal
	// StateCancelled means the caller stopped the session.
	StateCancelled
	// StateExhausted means a retry budget ran out or a fatal API error
	// ended the session.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateTerminal:
		return "terminal"
	case StateCancelled:
		return "cancelled"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Done reports whether the scheduler has reached a final state.
func (s State) Done() bool {
	return s == StateTerminal || s == StateCancelled || s == StateExhausted
}

// Options configure one watch session. The zero value polls once a
// second at a fixed interval and gives up after five consecutive
// transient errors.
type Options struct {
	// InitialInterval is the delay between polls while the judge is
	// answering. Default 1s.
	InitialInterval time.Duration
	// MaxInterval caps backoff growth. Default 5s.
	MaxInterval time.Duration
	// BackoffMultiplier grows the delay after each consecutive
	// transient error. 1.0, the default, keeps the interval fixed.
	BackoffMultiplier float64
	// MaxConsecutiveErrors ends the session after this many transient
	// errors in a row. Default 5.
	MaxConsecutiveErrors int
	// MaxTotalPolls ends the session after this many polls regardless
	// of outcome. 0 means unbounded.
	MaxTotalPolls int
	// Clock supplies time. Tests inject fakes; the default is the wall
	// clock.
	Clock Clock
}

func (o Options) withDefaults() Options {
	if o.InitialInterval <= 0 {
		o.InitialInterval = time.Second
	}
	if o.MaxInterval <= 0 {
		o.MaxInterval = 5 * time.Second
	}
	if o.MaxInterval < o.InitialInterval {
		o.MaxInterval = o.InitialInterval
	}
	if o.BackoffMultiplier < 1 {
		o.BackoffMultiplier = 1.0
	}
	if o.MaxConsecutiveErrors <= 0 {
		o.MaxConsecutiveErrors = 5
	}
	if o.Clock == nil {
		o.Clock = wallClock{}
	}
	return o
}

// Scheduler decides how long to wait before the next poll and when to
// stop, independent of transport concerns. One session goroutine drives
// it, and every session owns its own scheduler, so no locking is needed.
type Scheduler struct {
	opts     Options
	state    State
	wait     time.Duration // delay before the next poll
	interval time.Duration // current backoff position
	polls    int
	errors   int // consecutive transient errors
}

// NewScheduler builds an idle scheduler from opts with defaults applied.
func NewScheduler(opts Options) *Scheduler {
	opts = opts.withDefaults()
	return &Scheduler{
		opts:     opts,
		state:    StateIdle,
		wait:     opts.InitialInterval,
		interval: opts.InitialInterval,
	}
}

// Begin moves an idle scheduler into the polling state.
func (s *Scheduler) Begin() State {
	if s.state == StateIdle {
		s.state = StatePolling
	}
	return s.state
}

// State reports the current lifecycle state.
func (s *Scheduler) State() State {
	return s.state
}

// Interval is the delay to wait before the next poll, given the last
// recorded outcome.
func (s *Scheduler) Interval() time.Duration {
	return s.wait
}

// Polls is the total number of attempts recorded so far.
func (s *Scheduler) Polls() int {
	return s.polls
}

// ConsecutiveErrors is the current transient error streak.
func (s *Scheduler) ConsecutiveErrors() int {
	return s.errors
}

// ErrorBudget is the configured consecutive error limit.
func (s *Scheduler) ErrorBudget() int {
	return s.opts.MaxConsecutiveErrors
}

// RecordSuccess notes a poll that produced a snapshot: the error streak
// clears and the interval resets. terminal marks the snapshot's verdict
// as final and stops the machine; otherwise the poll ceiling is checked.
func (s *Scheduler) RecordSuccess(terminal bool) State {
	if s.state.Done() {
		return s.state
	}
	s.state = StatePolling
	s.polls++
	s.errors = 0
	s.interval = s.opts.InitialInterval
	s.wait = s.interval
	switch {
	case terminal:
		s.state = StateTerminal
	case s.opts.MaxTotalPolls > 0 && s.polls >= s.opts.MaxTotalPolls:
		s.state = StateExhausted
	}
	return s.state
}

// RecordTransient notes a retryable failure. The session waits the
// current interval before the next attempt; the interval then grows by
// the backoff multiplier up to the cap. The error budget is checked
// before the poll ceiling.
func (s *Scheduler) RecordTransient() State {
	if s.state.Done() {
		return s.state
	}
	s.state = StatePolling
	s.polls++
	s.errors++
	s.wait = s.interval
	grown := time.Duration(float64(s.interval) * s.opts.BackoffMultiplier)
	if grown > s.opts.MaxInterval {
		grown = s.opts.MaxInterval
	}
	s.interval = grown
	switch {
	case s.errors >= s.opts.MaxConsecutiveErrors:
		s.state = StateExhausted
	case s.opts.MaxTotalPolls > 0 && s.polls >= s.opts.MaxTotalPolls:
		s.state = StateExhausted
	}
	return s.state
}

// RecordFatal notes an error that waiting cannot fix. The machine goes
// straight to exhausted; retry budgets do not apply.
func (s *Scheduler) RecordFatal() State {
	if s.state.Done() {
		return s.state
	}
	s.polls++
	s.state = StateExhausted
	return s.state
}

// Cancel stops the machine. Cancelling twice, or after another final
// state, changes nothing.
func (s *Scheduler) Cancel() State {
	if s.state.Done() {
		return s.state
	}
	s.state = StateCancelled
	return s.state
}
