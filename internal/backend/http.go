package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultBaseURL is the API root of a locally running game server.
const DefaultBaseURL = "http://localhost:3000/api"

// HTTP implements Client with JSON over HTTP.
type HTTP struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewHTTP returns a client for the API at baseURL. An empty baseURL uses DefaultBaseURL.
// A positive timeout bounds every call on top of the caller's context.
func NewHTTP(baseURL string, timeout time.Duration) *HTTP {
	u := strings.TrimSuffix(baseURL, "/")
	if u == "" {
		u = DefaultBaseURL
	}
	return &HTTP{
		baseURL: u,
		timeout: timeout,
		client:  http.DefaultClient,
	}
}

type moveRequest struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type pickupRequest struct {
	ItemType string `json:"itemType"`
}

func (c *HTTP) Player(ctx context.Context) (Player, error) {
	var p Player
	err := c.do(ctx, http.MethodGet, "/player", nil, &p)
	return p, err
}

func (c *HTTP) Move(ctx context.Context, pos mgl32.Vec3) (Player, error) {
	var p Player
	err := c.do(ctx, http.MethodPost, "/player/move", moveRequest{X: pos.X(), Y: pos.Y(), Z: pos.Z()}, &p)
	return p, err
}

func (c *HTTP) Enemies(ctx context.Context) ([]Enemy, error) {
	var out []Enemy
	err := c.do(ctx, http.MethodGet, "/enemies", nil, &out)
	return out, err
}

func (c *HTTP) Pickup(ctx context.Context, itemType string) (Player, error) {
	var p Player
	err := c.do(ctx, http.MethodPost, "/items/pickup", pickupRequest{ItemType: itemType}, &p)
	return p, err
}

func (c *HTTP) Reset(ctx context.Context) (ResetResult, error) {
	var r ResetResult
	err := c.do(ctx, http.MethodPost, "/reset", nil, &r)
	return r, err
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: %s", ErrStatus, method, path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: %s %s: decode: %w", method, path, err)
	}
	return nil
}
