package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ukeSJTU/termoj/types"
)

// ProblemFilter narrows a problem listing.
type ProblemFilter struct {
	Keyword      string
	ProblemsetID int
	Cursor       string
}

// Problems lists problems matching the filter, with the next-page cursor.
func (c *Client) Problems(ctx context.Context, filter ProblemFilter) ([]types.ProblemBrief, string, error) {
	params := make(url.Values)
	if filter.Keyword != "" {
		params.Set("keyword", filter.Keyword)
	}
	if filter.ProblemsetID != 0 {
		params.Set("problemset_id", strconv.Itoa(filter.ProblemsetID))
	}
	if filter.Cursor != "" {
		params.Set("cursor", filter.Cursor)
	}
	var body struct {
		Problems []types.ProblemBrief `json:"problems"`
		Next     string               `json:"next"`
	}
	if err := c.getJSON(ctx, "/problem/", params, &body); err != nil {
		return nil, "", err
	}
	return body.Problems, nextCursor(body.Next), nil
}

// Problem fetches one full problem statement.
func (c *Client) Problem(ctx context.Context, id int) (*types.Problem, error) {
	problem := new(types.Problem)
	if err := c.getJSON(ctx, fmt.Sprintf("/problem/%d", id), nil, problem); err != nil {
		return nil, err
	}
	return problem, nil
}

// Submit sends a solution for judging and returns the new submission id.
func (c *Client) Submit(ctx context.Context, problemID int, language, code string, public bool) (int, error) {
	form := make(url.Values)
	form.Set("language", language)
	form.Set("code", code)
	form.Set("public", strconv.FormatBool(public))
	var body struct {
		ID int `json:"id"`
	}
	if err := c.postForm(ctx, fmt.Sprintf("/problem/%d/submit", problemID), form, &body); err != nil {
		return 0, err
	}
	if body.ID == 0 {
		return 0, &Error{Kind: KindMalformed, Message: "judge did not return a submission id"}
	}
	return body.ID, nil
}
