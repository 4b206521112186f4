// Package remoteauth validates callers against an external backend in the
// proxied deployment mode: most traffic goes straight to the external PWA
// backend, and only the local chat routes run here, so their cookie has
// to be re-validated remotely.
package remoteauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Identity is the subset of the external user payload the chat routes
// need.
type Identity struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Authenticate forwards the caller's Cookie header to the external
// backend's user endpoint. A non-200 answer means the caller is not
// authenticated; transport failures are returned for logging but callers
// treat them the same way.
func (c *Client) Authenticate(ctx context.Context, cookieHeader string) (*Identity, error) {
	if cookieHeader == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cookie", cookieHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote auth check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("remote auth decode: %w", err)
	}

	return &identity, nil
}
