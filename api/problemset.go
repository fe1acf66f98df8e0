package api

import (
	"context"
	"fmt"

	"github.com/ukeSJTU/termoj/types"
)

// Problemset fetches one contest, homework, or exam.
func (c *Client) Problemset(ctx context.Context, id int) (*types.Problemset, error) {
	ps := new(types.Problemset)
	if err := c.getJSON(ctx, fmt.Sprintf("/problemset/%d", id), nil, ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// JoinProblemset enrolls the current user in a problemset.
func (c *Client) JoinProblemset(ctx context.Context, id int) error {
	return c.postForm(ctx, fmt.Sprintf("/problemset/%d/join", id), nil, nil)
}

// QuitProblemset removes the current user from a problemset.
func (c *Client) QuitProblemset(ctx context.Context, id int) error {
	return c.postForm(ctx, fmt.Sprintf("/problemset/%d/quit", id), nil, nil)
}
