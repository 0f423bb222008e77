// Package api implements the HTTP client for the chat backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/termchat/internal/errors"
)

// ChatEndpoint is the backend's single chat path.
const ChatEndpoint = "/chat"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

// ChatClientInterface defines the operations the UI needs from the backend.
type ChatClientInterface interface {
	// SendMessage posts one user message and returns the bot's reply text.
	SendMessage(ctx context.Context, message string) (string, error)
	// BaseURL returns the backend base URL the client talks to.
	BaseURL() string
}

// Client talks to a chat backend exposing POST /chat.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Ensure Client implements ChatClientInterface
var _ ChatClientInterface = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Client for the given backend base URL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	client := &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SendMessage posts the message to /chat and returns the reply text.
// Failures are classified: transport errors become RequestError, non-2xx
// statuses become APIError carrying the server's detail field when present,
// and unusable bodies become ParseError.
func (c *Client) SendMessage(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(ChatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ChatEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewRequestError(ChatEndpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apierrors.NewRequestError(ChatEndpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The backend reports failures as {"detail": "..."}. Tolerate any
		// other shape, including non-JSON error pages.
		detail := gjson.GetBytes(body, "detail").String()
		return "", apierrors.NewAPIError(resp.StatusCode, ChatEndpoint, detail)
	}

	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("response body is not valid JSON", ChatEndpoint)
	}
	reply := gjson.GetBytes(body, "response")
	if !reply.Exists() {
		return "", apierrors.NewParseError("response field missing from body", ChatEndpoint)
	}

	return reply.String(), nil
}
