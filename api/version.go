package api

import (
	"context"

	"github.com/ukeSJTU/termoj/types"
)

// ServerVersion reports the judge's release and the client versions it
// requires and recommends.
func (c *Client) ServerVersion(ctx context.Context) (*types.Version, error) {
	version := new(types.Version)
	if err := c.getJSON(ctx, "/version", nil, version); err != nil {
		return nil, err
	}
	return version, nil
}
