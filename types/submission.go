package types

import "time"

// TestCaseResult is the judge's current view of one test case. Index is
// one-based and matches the case's position in the judge's report. A case
// the judge has not reached yet is pending with no timing data.
type TestCaseResult struct {
	Index       int     `json:"index"`
	Verdict     Verdict `json:"verdict"`
	TimeMs      *int64  `json:"time_msecs,omitempty"`
	MemoryBytes *int64  `json:"memory_bytes,omitempty"`
	Message     string  `json:"message,omitempty"`
}

// Snapshot is an immutable point-in-time view of a submission's judging
// progress. Every poll builds a fresh snapshot; earlier ones are never
// mutated. Cases is ordered by index and may cover only the cases the
// judge has reported so far. Score is nil when the judge hides it.
//
// Invariant: Overall stays non-terminal while any known case is still
// being judged; once every known case is final and the judge confirms the
// run is over, Overall agrees with the first failing case by index, or is
// accepted when all cases pass.
type Snapshot struct {
	SubmissionID int              `json:"submission_id"`
	Overall      Verdict          `json:"overall"`
	Score        *int             `json:"score,omitempty"`
	TimeMs       *int64           `json:"time_msecs,omitempty"`
	MemoryBytes  *int64           `json:"memory_bytes,omitempty"`
	Message      string           `json:"message,omitempty"`
	Cases        []TestCaseResult `json:"cases,omitempty"`
	FetchedAt    time.Time        `json:"fetched_at"`
}

// DeriveOverall computes the submission verdict implied by its test
// cases: no cases means the submission is still queued, any unfinished
// case means judging, and otherwise the first failing case by index
// decides (all passed means accepted).
func DeriveOverall(cases []TestCaseResult) Verdict {
	if len(cases) == 0 {
		return VerdictQueued
	}
	for _, tc := range cases {
		if !tc.Verdict.Terminal() {
			return VerdictJudging
		}
	}
	for _, tc := range cases {
		if tc.Verdict != VerdictAccepted {
			return tc.Verdict
		}
	}
	return VerdictAccepted
}

// Changed reports whether the snapshot differs from prev in anything a
// renderer would show: overall verdict, score, timing, message, the
// number of known cases, or any single case. FetchedAt alone never
// counts as a change, so identical polls render once.
func (s *Snapshot) Changed(prev *Snapshot) bool {
	if prev == nil {
		return true
	}
	if s.Overall != prev.Overall || s.Message != prev.Message {
		return true
	}
	if !ptrEqual(s.Score, prev.Score) || !ptrEqual(s.TimeMs, prev.TimeMs) || !ptrEqual(s.MemoryBytes, prev.MemoryBytes) {
		return true
	}
	if len(s.Cases) != len(prev.Cases) {
		return true
	}
	for i := range s.Cases {
		a, b := s.Cases[i], prev.Cases[i]
		if a.Index != b.Index || a.Verdict != b.Verdict || a.Message != b.Message {
			return true
		}
		if !ptrEqual(a.TimeMs, b.TimeMs) || !ptrEqual(a.MemoryBytes, b.MemoryBytes) {
			return true
		}
	}
	return false
}

// Terminal reports whether the snapshot's overall verdict is final.
func (s *Snapshot) Terminal() bool {
	return s.Overall.Terminal()
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ProblemRef names the problem a submission belongs to.
type ProblemRef struct {
	ID    int    `json:"id"`
	Title string `json:"title,omitempty"`
}

// SubmissionSummary is one row of a submission listing.
type SubmissionSummary struct {
	ID           int         `json:"id"`
	Problem      *ProblemRef `json:"problem,omitempty"`
	Status       Verdict     `json:"status"`
	Language     string      `json:"language,omitempty"`
	FriendlyName string      `json:"friendly_name,omitempty"`
	CreatedAt    string      `json:"created_at,omitempty"`
}
