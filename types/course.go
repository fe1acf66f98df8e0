package types

// Term is the academic term a course runs in.
type Term struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// Tag groups related courses, e.g. all offerings of one subject.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Course represents one course on the judge. JoinURL and QuitURL are
// present when the server allows the current user that action.
type Course struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Term        *Term  `json:"term,omitempty"`
	Tag         *Tag   `json:"tag,omitempty"`
	JoinURL     string `json:"join_url,omitempty"`
	QuitURL     string `json:"quit_url,omitempty"`
}

// Problemset is a collection of problems run as a contest, homework, or
// exam inside a course.
type Problemset struct {
	ID                     int            `json:"id"`
	CourseID               int            `json:"course_id,omitempty"`
	Name                   string         `json:"name"`
	Description            string         `json:"description,omitempty"`
	Type                   string         `json:"type,omitempty"`
	StartTime              string         `json:"start_time,omitempty"`
	EndTime                string         `json:"end_time,omitempty"`
	LateSubmissionDeadline string         `json:"late_submission_deadline,omitempty"`
	Problems               []ProblemBrief `json:"problems,omitempty"`
	JoinURL                string         `json:"join_url,omitempty"`
	QuitURL                string         `json:"quit_url,omitempty"`
}
