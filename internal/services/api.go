// HTTP client for the report processing service
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL string = "http://localhost:5000"

// Client provides methods for making requests to the report processing service.
//
// The underlying [http.Client] carries a cookie jar so session cookies issued by
// the login endpoint are replayed on subsequent requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOpts contains configuration options for creating a Client.
type ClientOpts struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second; 0 disables throttling
	Transport http.RoundTripper
}

// NewClient creates a new service client with a fresh cookie jar.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	jar, _ := cookiejar.New(nil)
	httpClient := &http.Client{
		Jar:       jar,
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// GetJSON performs a GET request to the specified path and returns the raw response.
func (c *Client) GetJSON(ctx context.Context, path string) (*APIResponse, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil)
}

// PostJSON performs a POST request with the given JSON body and returns the raw response.
func (c *Client) PostJSON(ctx context.Context, path string, data any) (*APIResponse, error) {
	var body []byte
	if data != nil {
		var err error
		if body, err = json.Marshal(data); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}
	return c.doJSON(ctx, http.MethodPost, path, body)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body []byte) (*APIResponse, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	var jsonData any
	if err := json.Unmarshal(respBody, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("request throttled: %w", err)
	}
	return nil
}

// ErrorMessage extracts the server-provided error string from a JSON error body,
// falling back to the empty string when none is present.
func (r *APIResponse) ErrorMessage() string {
	if !r.IsJSON {
		return ""
	}
	data, ok := r.JSONData.(map[string]any)
	if !ok {
		return ""
	}
	if msg, ok := data["error"].(string); ok {
		return msg
	}
	return ""
}

// Bool extracts a boolean field from a JSON response body.
func (r *APIResponse) Bool(field string) bool {
	if !r.IsJSON {
		return false
	}
	data, ok := r.JSONData.(map[string]any)
	if !ok {
		return false
	}
	v, _ := data[field].(bool)
	return v
}

// OK reports whether the response carries a 2xx status.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
