package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ukeSJTU/termoj/types"
)

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

func TestSnapshotMinimal(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := New(&buf, true)
	r.Snapshot(&types.Snapshot{SubmissionID: 7, Overall: types.VerdictQueued})

	if got := buf.String(); got != "submission 7: Queued\n" {
		t.Fatalf("expected just the status line, got %q", got)
	}
}

func TestSnapshotFull(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := New(&buf, true)
	r.Snapshot(&types.Snapshot{
		SubmissionID: 315,
		Overall:      types.VerdictWrongAnswer,
		Score:        intp(50),
		TimeMs:       int64p(200),
		MemoryBytes:  int64p(1536),
		Message:      "wrong answer on case 2\n",
		Cases: []types.TestCaseResult{
			{Index: 1, Verdict: types.VerdictAccepted, TimeMs: int64p(90), MemoryBytes: int64p(1024)},
			{Index: 2, Verdict: types.VerdictWrongAnswer, TimeMs: int64p(110), MemoryBytes: int64p(512), Message: "line 1 differs\nexpected 3"},
		},
	})
	out := buf.String()

	for _, want := range []string{
		"submission 315: Wrong Answer",
		"score: 50  time: 200ms  memory: 1.5KiB",
		"wrong answer on case 2",
		"Accepted",
		"90ms",
		"1.0KiB",
		"line 1 differs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\noutput:\n%s", want, out)
		}
	}
	// table cells hold one line each
	if strings.Contains(out, "expected 3") {
		t.Errorf("expected multi-line case messages to be truncated\noutput:\n%s", out)
	}
}

func TestSnapshotHiddenScore(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := New(&buf, true)
	r.Snapshot(&types.Snapshot{
		SubmissionID: 315,
		Overall:      types.VerdictAccepted,
		TimeMs:       int64p(10),
	})
	out := buf.String()

	if !strings.Contains(out, "score: -") {
		t.Errorf("expected a hidden score to render as a dash\noutput:\n%s", out)
	}
}

func TestFormatMs(t *testing.T) {
	t.Parallel()
	if got := formatMs(nil); got != "-" {
		t.Errorf("expected a dash for missing time, got %q", got)
	}
	if got := formatMs(int64p(42)); got != "42ms" {
		t.Errorf("expected 42ms, got %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   *int64
		want string
	}{
		{in: nil, want: "-"},
		{in: int64p(512), want: "512B"},
		{in: int64p(1024), want: "1.0KiB"},
		{in: int64p(1536), want: "1.5KiB"},
		{in: int64p(3 * 1024 * 1024), want: "3.0MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
