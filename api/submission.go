package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ukeSJTU/termoj/types"
)

// submissionBody is the judge's raw representation of one submission.
// Fields the judge has not produced yet are simply absent.
type submissionBody struct {
	ID              int    `json:"id"`
	FriendlyName    string `json:"friendly_name"`
	Status          string `json:"status"`
	Language        string `json:"language"`
	Score           *int   `json:"score"`
	ShouldShowScore *bool  `json:"should_show_score"`
	TimeMsecs       *int64 `json:"time_msecs"`
	MemoryBytes     *int64 `json:"memory_bytes"`
	Message         string `json:"message"`
	Details         *struct {
		Tests []testBody `json:"tests"`
	} `json:"details"`
}

// testBody is one per-test-case entry under details.tests.
type testBody struct {
	Status      string `json:"status"`
	TimeMsecs   *int64 `json:"time_msecs"`
	MemoryBytes *int64 `json:"memory_bytes"`
	Message     string `json:"message"`
}

// SubmissionStatus fetches the judge's current view of one submission as
// a snapshot. This is the watcher's polling call; it is a plain GET with
// no retries and no side effects.
func (c *Client) SubmissionStatus(ctx context.Context, id int) (*types.Snapshot, error) {
	var body submissionBody
	if err := c.getJSON(ctx, fmt.Sprintf("/submission/%d", id), nil, &body); err != nil {
		return nil, err
	}
	return body.snapshot(id, time.Now()), nil
}

// snapshot maps the wire form onto the verdict model. Cases take their
// one-based index from position; a case the judge reported without a
// status is pending. A terminal overall claim is only honored once every
// known case is terminal; until then the submission counts as judging.
func (body *submissionBody) snapshot(id int, now time.Time) *types.Snapshot {
	snap := &types.Snapshot{
		SubmissionID: id,
		Overall:      types.ParseVerdict(body.Status),
		TimeMs:       body.TimeMsecs,
		MemoryBytes:  body.MemoryBytes,
		Message:      body.Message,
		FetchedAt:    now,
	}
	if body.Score != nil && (body.ShouldShowScore == nil || *body.ShouldShowScore) {
		snap.Score = body.Score
	}
	if body.Details != nil {
		snap.Cases = make([]types.TestCaseResult, 0, len(body.Details.Tests))
		for i, tc := range body.Details.Tests {
			verdict := types.ParseVerdict(tc.Status)
			if verdict == "" {
				verdict = types.VerdictPending
			}
			snap.Cases = append(snap.Cases, types.TestCaseResult{
				Index:       i + 1,
				Verdict:     verdict,
				TimeMs:      tc.TimeMsecs,
				MemoryBytes: tc.MemoryBytes,
				Message:     tc.Message,
			})
		}
	}
	if snap.Overall == "" {
		snap.Overall = types.DeriveOverall(snap.Cases)
	} else if snap.Overall.Terminal() {
		for _, tc := range snap.Cases {
			if !tc.Verdict.Terminal() {
				snap.Overall = types.VerdictJudging
				break
			}
		}
	}
	return snap
}

// SubmissionFilter narrows a submission listing.
type SubmissionFilter struct {
	Username  string
	ProblemID int
	Status    string
	Language  string
	Cursor    string
}

// Submissions lists submissions matching the filter, newest first, with
// the next-page cursor.
func (c *Client) Submissions(ctx context.Context, filter SubmissionFilter) ([]types.SubmissionSummary, string, error) {
	params := make(url.Values)
	if filter.Username != "" {
		params.Set("username", filter.Username)
	}
	if filter.ProblemID != 0 {
		params.Set("problem_id", strconv.Itoa(filter.ProblemID))
	}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Language != "" {
		params.Set("lang", filter.Language)
	}
	if filter.Cursor != "" {
		params.Set("cursor", filter.Cursor)
	}
	var body struct {
		Submissions []types.SubmissionSummary `json:"submissions"`
		Next        string                    `json:"next"`
	}
	if err := c.getJSON(ctx, "/submission/", params, &body); err != nil {
		return nil, "", err
	}
	return body.Submissions, nextCursor(body.Next), nil
}

// Abort asks the judge to stop judging a submission. The submission then
// settles on the aborted verdict.
func (c *Client) Abort(ctx context.Context, id int) error {
	return c.postForm(ctx, fmt.Sprintf("/submission/%d/abort", id), nil, nil)
}
