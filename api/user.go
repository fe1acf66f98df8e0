package api

import (
	"context"

	"github.com/ukeSJTU/termoj/types"
)

// Profile fetches the authenticated user's account information. It
// doubles as the token check during login.
func (c *Client) Profile(ctx context.Context) (*types.Profile, error) {
	profile := new(types.Profile)
	if err := c.getJSON(ctx, "/user/profile", nil, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UserCourses lists the courses the current user is enrolled in.
func (c *Client) UserCourses(ctx context.Context) ([]types.Course, error) {
	var body struct {
		Courses []types.Course `json:"courses"`
	}
	if err := c.getJSON(ctx, "/user/courses", nil, &body); err != nil {
		return nil, err
	}
	return body.Courses, nil
}

// UserProblemsets lists the contests, homework, and exams the current
// user is enrolled in.
func (c *Client) UserProblemsets(ctx context.Context) ([]types.Problemset, error) {
	var body struct {
		Problemsets []types.Problemset `json:"problemsets"`
	}
	if err := c.getJSON(ctx, "/user/problemsets", nil, &body); err != nil {
		return nil, err
	}
	return body.Problemsets, nil
}
