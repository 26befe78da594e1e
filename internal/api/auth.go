package api

import (
	"context"
	"encoding/json"
	"net/http"

	"createathon/internal/common"
)

// TokenPair is the login response: a short-lived access token and a
// longer-lived refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	body := map[string]string{"username": username, "password": password}
	status, respBody, err := c.do(ctx, http.MethodPost, "/token", body, false)
	if err != nil {
		return nil, err
	}
	if err := statusError(status, respBody); err != nil {
		return nil, err
	}
	var pair TokenPair
	if err := json.Unmarshal(respBody, &pair); err != nil {
		return nil, common.Errorf("decode token pair: %w", err)
	}
	return &pair, nil
}

// Register creates an account and logs it in, returning the token pair.
func (c *Client) Register(ctx context.Context, username, password string) (*TokenPair, error) {
	body := map[string]string{"username": username, "password": password}
	status, respBody, err := c.do(ctx, http.MethodPost, "/users/register", body, false)
	if err != nil {
		return nil, err
	}
	if err := statusError(status, respBody); err != nil {
		return nil, err
	}
	var pair TokenPair
	if err := json.Unmarshal(respBody, &pair); err != nil {
		return nil, common.Errorf("decode token pair: %w", err)
	}
	return &pair, nil
}

// RefreshToken trades the refresh token for a fresh access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	body := map[string]string{"refresh": refresh}
	status, respBody, err := c.do(ctx, http.MethodPost, "/token/refresh", body, false)
	if err != nil {
		return "", err
	}
	if err := statusError(status, respBody); err != nil {
		return "", err
	}
	var payload struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", common.Errorf("decode refresh response: %w", err)
	}
	return payload.Access, nil
}
