package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no automation endpoint is set.
var ErrNotConfigured = errors.New("automation endpoint is not configured")

const maxResponseBytes = 4 << 20

// Response is the automation webhook's reply, passed through unmodified:
// decoded JSON when the endpoint answered with JSON, raw text otherwise.
type Response struct {
	StatusCode int
	IsJSON     bool
	Data       any
	Text       string
}

// Client forwards draft-generation prompts to the configured automation
// webhook.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

func NewClient(endpoint, userAgent string) *Client {
	return &Client{
		endpoint:  endpoint,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Forward posts the raw request body to the automation endpoint and returns
// its response. The body is relayed as-is; no retries.
func (c *Client) Forward(ctx context.Context, body []byte) (*Response, error) {
	if c.endpoint == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("automation endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read relay response: %w", err)
	}

	result := &Response{StatusCode: resp.StatusCode}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("automation endpoint returned invalid JSON: %w", err)
		}
		result.IsJSON = true
		result.Data = decoded
	} else {
		result.Text = string(data)
	}

	return result, nil
}
