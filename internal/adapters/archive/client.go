// Package archive fetches raw entries from the remote archive API.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/larmor/internal/domain/model"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://api.bmrb.io/v2"
)

// Client retrieves archive entries over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an archive client with configuration options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchEntry retrieves one entry document by its archive identifier.
// Any non-200 response is a transport failure; there are no retries.
func (c *Client) FetchEntry(ctx context.Context, id int) (model.RawEntry, error) {
	url := fmt.Sprintf("%s/entry/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for entry %d: %w", id, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: entry %d: %v", ErrTransport, id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: entry %d: status %d", ErrTransport, id, resp.StatusCode)
	}

	var raw model.RawEntry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: entry %d: %v", ErrDecode, id, err)
	}
	return raw, nil
}
