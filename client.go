package supadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/supadata-ai/supadata-go/internal/metrics"
)

const defaultBaseURL = "https://api.supadata.ai/v1"

// Client talks to the Supadata API. Construct one with New; the zero
// value is not usable. A Client is safe for use from multiple
// goroutines.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger

	// YouTube groups transcript and video metadata operations.
	YouTube *YouTubeService
	// Web groups scrape, map and crawl operations.
	Web *WebService
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the production API endpoint. The path prefix
// (e.g. /v1) is part of the base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient supplies the *http.Client used for all requests.
// Timeouts and transport tuning belong to the supplied client; no
// retries happen on top of it.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger sets the logger for per-request debug output. Defaults to
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a Client authenticated with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, validationError("an API key is required")
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   http.DefaultClient,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.YouTube = &YouTubeService{client: c}
	c.Web = &WebService{client: c}
	return c, nil
}

// request performs one API round-trip: marshals body (when non-nil),
// attaches the fixed header set, classifies the response and decodes a
// 2xx body into out (when non-nil). All non-2xx responses come back as
// *Error.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("x-request-id", requestID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	latencyMs := time.Since(start).Milliseconds()
	metrics.RecordRequest(method, path, resp.StatusCode, latencyMs)
	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency_ms", latencyMs,
		"request_id", requestID,
	)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	// The API answers transcript requests for videos without captions
	// with 206 Partial Content instead of an error status.
	if resp.StatusCode == http.StatusPartialContent && strings.Contains(path, "/transcript") {
		return transcriptUnavailableError(respBody)
	}

	if resp.StatusCode >= 400 {
		apiErr := classifyError(resp, respBody)
		c.logger.Warn("api error",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"code", apiErr.Code,
			"request_id", requestID,
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classifyError picks the decoding path for a non-2xx response. A JSON
// content-type means the error came from the API itself and carries the
// structured envelope; anything else is a gateway response mapped
// through the fixed status table.
func classifyError(resp *http.Response, body []byte) *Error {
	if isJSONContentType(resp.Header.Get("Content-Type")) {
		var apiErr Error
		if err := json.Unmarshal(body, &apiErr); err == nil {
			if apiErr.Code != "" {
				return &apiErr
			}
			// Valid JSON that is not the error envelope.
			return &Error{Code: "unknown", Title: "Unknown Error", Description: string(body)}
		}
	}
	return gatewayError(resp.StatusCode, string(body))
}

// transcriptUnavailableError maps a 206 transcript response to an
// *Error, preferring a structured envelope when the body carries one.
func transcriptUnavailableError(body []byte) *Error {
	var apiErr Error
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		return &apiErr
	}
	return &Error{
		Code:        "transcript-unavailable",
		Title:       "Transcript Unavailable",
		Description: "No transcript available for this video",
	}
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
