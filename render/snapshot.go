package render

import (
	"strconv"
	"strings"

	"github.com/ukeSJTU/termoj/types"
)

// Snapshot prints one verdict snapshot: a status line colored by the
// overall verdict, resource usage when the judge reports it, the judge
// message, and a per-case table once cases exist.
func (r *Renderer) Snapshot(s *types.Snapshot) {
	r.verdict(s.Overall, "submission %d: %s", s.SubmissionID, s.Overall.Label())
	if s.Score != nil || s.TimeMs != nil || s.MemoryBytes != nil {
		r.Message("score: %s  time: %s  memory: %s",
			formatScore(s.Score), formatMs(s.TimeMs), formatBytes(s.MemoryBytes))
	}
	if s.Message != "" {
		r.Message("%s", strings.TrimRight(s.Message, "\n"))
	}
	if len(s.Cases) > 0 {
		rows := make([][]string, 0, len(s.Cases))
		for _, c := range s.Cases {
			rows = append(rows, []string{
				strconv.Itoa(c.Index),
				c.Verdict.Label(),
				formatMs(c.TimeMs),
				formatBytes(c.MemoryBytes),
				oneLine(c.Message),
			})
		}
		r.table([]string{"Case", "Verdict", "Time", "Memory", "Message"}, rows)
	}
}

// oneLine keeps table rows single-height. Multiline judge output shows
// up in the message block above the table, not in a cell.
func oneLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
