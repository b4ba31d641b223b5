package api

import (
	"context"
	"fmt"
	"net/http"
)

// MotdEndpoint fetches the message of the day.
type MotdEndpoint struct{}

// GetMotd creates an endpoint to fetch the message of the day.
func GetMotd() MotdEndpoint {
	return MotdEndpoint{}
}

// Get fetches the message of the day. The node has no error body for this
// endpoint, so any non-2xx status is a transport failure and the body is
// decoded as a Motd directly.
func (MotdEndpoint) Get(ctx context.Context, c *Client) (*Motd, error) {
	body, status, err := c.send(ctx, http.MethodGet, motdPath, nil)
	if err != nil {
		return nil, err
	}

	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: http status %d", ErrTransport, status)
	}

	var motd Motd
	if err := json.Unmarshal(body, &motd); err != nil {
		return nil, fmt.Errorf("%w: decode motd: %w", ErrTransport, err)
	}

	return &motd, nil
}
