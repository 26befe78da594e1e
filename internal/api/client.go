package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"createathon/internal/common"
)

// Client wraps the remote judge API. Authentication is injected as a token
// provider so the client never owns session state; an empty token simply
// means the request goes out unauthenticated and the server answers 401.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	tokenProvider func() string
}

func NewClient(baseURL string, timeout time.Duration, tokenProvider func() string) *Client {
	return &Client{
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: timeout},
		tokenProvider: tokenProvider,
	}
}

// ValidationError carries the server's structured field errors from a 400
// response. The detail blob is rendered verbatim to the user.
type ValidationError struct {
	Details json.RawMessage
}

func (e *ValidationError) Error() string {
	return "validation failed: " + string(e.Details)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

// APIError is a non-2xx response that carried a message body.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("judge API returned status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, common.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, common.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed && c.tokenProvider != nil {
		if token := c.tokenProvider(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, common.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, common.Errorf("%w: read response: %v", common.ErrNetwork, err)
	}
	return resp.StatusCode, respBody, nil
}

// statusError converts a non-2xx response into a domain error, preferring the
// server's message body when one is present.
func statusError(status int, body []byte) error {
	kind := common.ErrorFromStatus(status)
	if kind == nil {
		return nil
	}
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &APIError{Status: status, Message: payload.Message, kind: kind}
}
