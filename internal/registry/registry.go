// Package registry talks to the ChittyOS service registry. Registration
// is a single POST of the service identity; the raw response is shown to
// the user unmodified.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/chittyos/chitty-cli/pkg/version"
)

// DefaultEndpoint is the production registration endpoint.
const DefaultEndpoint = "https://registry.chitty.cc/api/v1/register"

// requestTimeout bounds the single registration call.
const requestTimeout = 30 * time.Second

// Identity is the fixed registration payload.
type Identity struct {
	Service  string `json:"service"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
}

// DefaultIdentity describes this CLI build.
func DefaultIdentity() Identity {
	return Identity{
		Service:  "chitty-cli",
		Version:  version.Version,
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
	}
}

// Client posts registrations to one endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the given endpoint (DefaultEndpoint if
// empty).
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// Register sends the identity and returns the raw response body. A non-2xx
// status is an error, but the body is still returned for display.
func (c *Client) Register(ctx context.Context, id Identity) (string, error) {
	payload, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("marshaling identity: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("posting registration: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return string(body), fmt.Errorf("registry returned %s", resp.Status)
	}
	return string(body), nil
}
