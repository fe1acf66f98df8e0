package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ukeSJTU/termoj/types"
)

// CourseFilter narrows a course listing. Zero values mean no filter;
// Cursor is the opaque pagination cursor from a previous page.
type CourseFilter struct {
	Keyword string
	Term    int
	Tag     int
	Cursor  string
}

// Courses lists courses matching the filter. The second return value is
// the cursor for the next page, or "" on the last page.
func (c *Client) Courses(ctx context.Context, filter CourseFilter) ([]types.Course, string, error) {
	params := make(url.Values)
	if filter.Keyword != "" {
		params.Set("keyword", filter.Keyword)
	}
	if filter.Term != 0 {
		params.Set("term", strconv.Itoa(filter.Term))
	}
	if filter.Tag != 0 {
		params.Set("tag", strconv.Itoa(filter.Tag))
	}
	if filter.Cursor != "" {
		params.Set("cursor", filter.Cursor)
	}
	var body struct {
		Courses []types.Course `json:"courses"`
		Next    string         `json:"next"`
	}
	if err := c.getJSON(ctx, "/course/", params, &body); err != nil {
		return nil, "", err
	}
	return body.Courses, nextCursor(body.Next), nil
}

// Course fetches one course.
func (c *Client) Course(ctx context.Context, id int) (*types.Course, error) {
	course := new(types.Course)
	if err := c.getJSON(ctx, fmt.Sprintf("/course/%d", id), nil, course); err != nil {
		return nil, err
	}
	return course, nil
}

// JoinCourse enrolls the current user in a course.
func (c *Client) JoinCourse(ctx context.Context, id int) error {
	return c.postForm(ctx, fmt.Sprintf("/course/%d/join", id), nil, nil)
}

// QuitCourse removes the current user from a course.
func (c *Client) QuitCourse(ctx context.Context, id int) error {
	return c.postForm(ctx, fmt.Sprintf("/course/%d/quit", id), nil, nil)
}

// CourseProblemsets lists the problemsets belonging to a course.
func (c *Client) CourseProblemsets(ctx context.Context, id int) ([]types.Problemset, error) {
	var body struct {
		Problemsets []types.Problemset `json:"problemsets"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/course/%d/problemsets", id), nil, &body); err != nil {
		return nil, err
	}
	return body.Problemsets, nil
}
