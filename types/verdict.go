package types

import "strings"

// Verdict is the judge's classification of a test case or of a whole
// submission. The values are the judge's own lowercase wire strings.
type Verdict string

// Verdicts reported by the judge. The first group can still change on a
// later poll; everything from accepted onward is final.
const (
	VerdictQueued    Verdict = "queued"
	VerdictPending   Verdict = "pending"
	VerdictCompiling Verdict = "compiling"
	VerdictJudging   Verdict = "judging"
	VerdictRunning   Verdict = "running"

	VerdictAccepted            Verdict = "accepted"
	VerdictWrongAnswer         Verdict = "wrong_answer"
	VerdictTimeLimitExceeded   Verdict = "time_limit_exceeded"
	VerdictMemoryLimitExceeded Verdict = "memory_limit_exceeded"
	VerdictRuntimeError        Verdict = "runtime_error"
	VerdictCompileError        Verdict = "compile_error"
	VerdictSystemError         Verdict = "system_error"
	VerdictAborted             Verdict = "aborted"
)

// ParseVerdict normalizes a raw status string from the judge.
func ParseVerdict(s string) Verdict {
	return Verdict(strings.ToLower(strings.TrimSpace(s)))
}

// Terminal reports whether the verdict can no longer change on further
// polling. Statuses this client does not know count as non-terminal, so
// a watcher keeps polling until its budget runs out rather than quitting
// on a verdict it cannot interpret.
func (v Verdict) Terminal() bool {
	switch v {
	case VerdictAccepted, VerdictWrongAnswer, VerdictTimeLimitExceeded,
		VerdictMemoryLimitExceeded, VerdictRuntimeError, VerdictCompileError,
		VerdictSystemError, VerdictAborted:
		return true
	}
	return false
}

// Accepted reports whether the verdict is a full accept.
func (v Verdict) Accepted() bool {
	return v == VerdictAccepted
}

// Label renders the verdict for display: "wrong_answer" becomes "Wrong Answer".
func (v Verdict) Label() string {
	if v == "" {
		return "Unknown"
	}
	words := strings.Split(string(v), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
