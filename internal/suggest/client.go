package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-logr/logr"

	"suggestbox/internal/domain"
)

// maxBodySize bounds how much of a response body is read
const maxBodySize = 1 << 20

// ErrMalformedResponse is returned when the body is not a four-element
// opensearch array
var ErrMalformedResponse = errors.New("malformed suggestion response")

// Client issues suggestion requests against a fixed endpoint. The query is
// appended to the endpoint, so the endpoint normally ends in "search=".
type Client struct {
	endpoint string
	http     *http.Client
	log      logr.Logger
}

// NewClient creates a new client. A zero timeout means requests never time
// out on their own.
func NewClient(endpoint string, timeout time.Duration, log logr.Logger) *Client {
	log = log.WithName("suggest")
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: timeout,
			Transport: loggingTransport{
				base: &http.Transport{Proxy: http.ProxyFromEnvironment},
				log:  log,
			},
		},
		log: log,
	}
}

// Endpoint returns the base URL requests are built from
func (c *Client) Endpoint() string {
	return c.endpoint
}

// URL builds the request URL for query
func (c *Client) URL(query string) string {
	return c.endpoint + url.QueryEscape(query)
}

// Fetch performs a GET on requestURL and decodes the opensearch body
func (c *Client) Fetch(ctx context.Context, requestURL string) (domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return domain.Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "suggestbox/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Response{}, fmt.Errorf("failed to fetch suggestions: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return domain.Response{}, fmt.Errorf("suggestion request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return domain.Response{}, fmt.Errorf("failed to read response: %w", err)
	}
	return ParseResponse(data)
}

// ParseResponse decodes [query, suggestions, descriptions, urls]
func ParseResponse(data []byte) (domain.Response, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return domain.Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parts) != 4 {
		return domain.Response{}, fmt.Errorf("%w: expected 4 elements, got %d", ErrMalformedResponse, len(parts))
	}

	var r domain.Response
	if err := json.Unmarshal(parts[0], &r.Query); err != nil {
		return domain.Response{}, fmt.Errorf("%w: query: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(parts[1], &r.Suggestions); err != nil {
		return domain.Response{}, fmt.Errorf("%w: suggestions: %v", ErrMalformedResponse, err)
	}
	// Descriptions and URLs may be null but not of another type
	if err := json.Unmarshal(parts[2], &r.Descriptions); err != nil {
		return domain.Response{}, fmt.Errorf("%w: descriptions: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(parts[3], &r.URLs); err != nil {
		return domain.Response{}, fmt.Errorf("%w: urls: %v", ErrMalformedResponse, err)
	}

	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	return r, nil
}
