// Package stylize talks to the external image-stylization service: it sends
// the current canvas bitmap and receives a textual vector-image description,
// which it renders back into a bitmap for the surface to composite. The
// service is a pure request/response collaborator; the canvas buffer is never
// touched while a request is in flight.
package stylize

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrBusy is returned when a stylize request is already in flight. The UI
// shows a busy state instead of queueing; two concurrent requests against
// the same canvas are undefined.
var ErrBusy = errors.New("stylize: request already in flight")

type request struct {
	ID    string `json:"id"`
	Image []byte `json:"image"`
}

type response struct {
	ID    string `json:"id"`
	SVG   string `json:"svg,omitempty"`
	Error string `json:"error,omitempty"`
}

// Client connects to a styler service over websocket.
type Client struct {
	endpoint string
	busy     atomic.Bool
}

// NewClient creates a client for the given ws:// endpoint.
func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint}
}

// Endpoint returns the configured service URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Stylize sends an encoded bitmap and returns the rendered result. On any
// failure the caller leaves the canvas untouched and offers a retry.
func (c *Client) Stylize(ctx context.Context, encoded []byte) (image.Image, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer c.busy.Store(false)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("stylize: connecting to %s: %w", c.endpoint, err)
	}
	defer conn.Close()

	req := request{ID: uuid.NewString(), Image: encoded}
	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("stylize: sending request: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetReadDeadline(deadline); err != nil {
			return nil, fmt.Errorf("stylize: setting deadline: %w", err)
		}
	}

	var resp response
	if err := conn.ReadJSON(&resp); err != nil {
		return nil, fmt.Errorf("stylize: reading response: %w", err)
	}
	if resp.ID != req.ID {
		return nil, fmt.Errorf("stylize: response id %q does not match request %q", resp.ID, req.ID)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("stylize: service error: %s", resp.Error)
	}

	img, err := RenderSVG([]byte(resp.SVG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
