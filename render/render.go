// Package render turns API results and watch events into terminal
// output. A Renderer in plain mode emits no escape sequences at all, so
// output stays readable in pipes and logs; color mode adds verdict
// coloring and redraw-in-place for watch sessions.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/ukeSJTU/termoj/types"
)

// Renderer writes human output for one command invocation.
type Renderer struct {
	Out   io.Writer
	Plain bool
	Width int // terminal width hint for wrapping
}

// New builds a renderer. plain disables colors and screen control.
func New(out io.Writer, plain bool) *Renderer {
	return &Renderer{Out: out, Plain: plain, Width: 80}
}

// Message prints one unstyled line.
func (r *Renderer) Message(format string, args ...interface{}) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Successf prints a green line, Warnf a yellow one, Errorf a red one.
func (r *Renderer) Successf(format string, args ...interface{}) {
	r.paintln(color.New(color.FgGreen), format, args...)
}

func (r *Renderer) Warnf(format string, args ...interface{}) {
	r.paintln(color.New(color.FgYellow), format, args...)
}

func (r *Renderer) Errorf(format string, args ...interface{}) {
	r.paintln(color.New(color.FgRed), format, args...)
}

func (r *Renderer) paintln(c *color.Color, format string, args ...interface{}) {
	if r.Plain {
		fmt.Fprintf(r.Out, format+"\n", args...)
		return
	}
	c.Fprintf(r.Out, format+"\n", args...)
}

// verdict prints a line colored by the verdict it reports.
func (r *Renderer) verdict(v types.Verdict, format string, args ...interface{}) {
	r.paintln(verdictColor(v), format, args...)
}

// verdictColor maps a verdict to its display color: green for accepted,
// red for failures, yellow for resource limits and aborts, cyan while
// the judge is still working.
func verdictColor(v types.Verdict) *color.Color {
	switch v {
	case types.VerdictAccepted:
		return color.New(color.FgGreen)
	case types.VerdictWrongAnswer, types.VerdictRuntimeError, types.VerdictCompileError, types.VerdictSystemError:
		return color.New(color.FgRed)
	case types.VerdictTimeLimitExceeded, types.VerdictMemoryLimitExceeded, types.VerdictAborted:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgCyan)
}

// table prints rows under a header. Cells carry no escape sequences
// because tablewriter miscounts the width of colored cells; color goes
// on whole lines outside tables instead.
func (r *Renderer) table(header []string, rows [][]string) {
	t := tablewriter.NewWriter(r.Out)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(true)
	t.AppendBulk(rows)
	t.Render()
}

func formatMs(ms *int64) string {
	if ms == nil {
		return "-"
	}
	return fmt.Sprintf("%dms", *ms)
}

func formatBytes(n *int64) string {
	if n == nil {
		return "-"
	}
	switch v := *n; {
	case v < 1024:
		return fmt.Sprintf("%dB", v)
	case v < 1024*1024:
		return fmt.Sprintf("%.1fKiB", float64(v)/1024)
	default:
		return fmt.Sprintf("%.1fMiB", float64(v)/(1024*1024))
	}
}

func formatScore(score *int) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}
