package render

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/ukeSJTU/termoj/types"
)

// Courses prints the course table. A course that carries a quit URL is
// one the user has already joined.
func (r *Renderer) Courses(courses []types.Course) {
	if len(courses) == 0 {
		r.Message("no courses")
		return
	}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		term, tag := "", ""
		if c.Term != nil {
			term = c.Term.Name
		}
		if c.Tag != nil {
			tag = c.Tag.Name
		}
		joined := ""
		if c.QuitURL != "" {
			joined = "yes"
		}
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, term, tag, joined})
	}
	r.table([]string{"ID", "Name", "Term", "Tag", "Joined"}, rows)
}

// CourseDetail prints one course with its description.
func (r *Renderer) CourseDetail(c *types.Course) {
	r.paintln(cyanBold(), "%d. %s", c.ID, c.Name)
	if c.Term != nil {
		r.Message("term: %s", c.Term.Name)
	}
	if c.Tag != nil {
		r.Message("tag: %s", c.Tag.Name)
	}
	if c.Description != "" {
		r.Message("")
		r.Message("%s", markdownText(stripLatex(c.Description)))
	}
}

// Problems prints the problem table.
func (r *Renderer) Problems(problems []types.ProblemBrief) {
	if len(problems) == 0 {
		r.Message("no problems")
		return
	}
	rows := make([][]string, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Title})
	}
	r.table([]string{"ID", "Title"}, rows)
}

// Problemsets prints the problemset table.
func (r *Renderer) Problemsets(sets []types.Problemset) {
	if len(sets) == 0 {
		r.Message("no problemsets")
		return
	}
	rows := make([][]string, 0, len(sets))
	for _, ps := range sets {
		rows = append(rows, []string{
			strconv.Itoa(ps.ID), ps.Name, ps.Type, ps.StartTime, ps.EndTime,
		})
	}
	r.table([]string{"ID", "Name", "Type", "Start", "End"}, rows)
}

// ProblemsetDetail prints one problemset and the problems it contains.
func (r *Renderer) ProblemsetDetail(ps *types.Problemset) {
	r.paintln(cyanBold(), "%d. %s", ps.ID, ps.Name)
	if ps.Type != "" {
		r.Message("type: %s", ps.Type)
	}
	if ps.StartTime != "" || ps.EndTime != "" {
		r.Message("open: %s to %s", ps.StartTime, ps.EndTime)
	}
	if ps.LateSubmissionDeadline != "" {
		r.Message("late submissions until: %s", ps.LateSubmissionDeadline)
	}
	if ps.Description != "" {
		r.Message("")
		r.Message("%s", markdownText(stripLatex(ps.Description)))
	}
	if len(ps.Problems) > 0 {
		r.Message("")
		r.Problems(ps.Problems)
	}
}

// Submissions prints the submission history table.
func (r *Renderer) Submissions(subs []types.SubmissionSummary) {
	if len(subs) == 0 {
		r.Message("no submissions")
		return
	}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		problem := "-"
		if s.Problem != nil {
			problem = strconv.Itoa(s.Problem.ID)
			if s.Problem.Title != "" {
				problem += " " + s.Problem.Title
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID), problem, s.Status.Label(), s.Language, s.CreatedAt,
		})
	}
	r.table([]string{"ID", "Problem", "Status", "Language", "Submitted"}, rows)
}

// Profile prints who the session token belongs to.
func (r *Renderer) Profile(p *types.Profile) {
	name := p.Username
	if p.FriendlyName != "" && p.FriendlyName != p.Username {
		name = fmt.Sprintf("%s (%s)", p.FriendlyName, p.Username)
	}
	r.Message("logged in as %s", name)
	if p.StudentID != "" {
		r.Message("student id: %s", p.StudentID)
	}
}

// NextCursor prints the pagination hint after a partial listing.
func (r *Renderer) NextCursor(cursor string) {
	if cursor != "" {
		r.Message("next page: --cursor %s", cursor)
	}
}

func cyanBold() *color.Color {
	return color.New(color.FgCyan, color.Bold)
}
