package identity

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the external identity platform that owns the login
// accounts. The platform verifies ID tokens minted on the client side; this
// server only exchanges them for a local session.
type Client struct {
	APIKey     string
	APISecret  string
	APIServer  string
	httpClient *http.Client
}

// NewClient creates an identity platform client.
func NewClient(apiKey, apiSecret, apiServer string) *Client {
	return &Client{
		APIKey:    apiKey,
		APISecret: apiSecret,
		APIServer: apiServer,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Identity is the account record behind a verified ID token.
type Identity struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

type lookupResponse struct {
	Status string   `json:"status"`
	Reason string   `json:"reason"`
	Result Identity `json:"result"`
}

// ErrTokenRejected is returned when the platform refuses the ID token.
var ErrTokenRejected = errors.New("identity platform rejected the token")

// VerifyToken asks the identity platform to validate an ID token and returns
// the account it belongs to. The request is signed with the API secret so the
// platform can authenticate this server.
func (c *Client) VerifyToken(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, errors.New("empty id token")
	}

	payload := map[string]string{
		"api_key":    c.APIKey,
		"id_token":   idToken,
		"sign_token": c.signToken(idToken),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(c.APIServer, "/") + "/v1/accounts/lookup"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity response: %w", err)
	}

	var result lookupResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse identity response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrTokenRejected, result.Reason)
	}

	return &result.Result, nil
}

// signToken computes an HMAC-SHA256 signature of the token with the API
// secret, matching the platform's server-to-server request format.
func (c *Client) signToken(idToken string) string {
	mac := hmac.New(sha256.New, []byte(c.APISecret))
	mac.Write([]byte(idToken))
	return hex.EncodeToString(mac.Sum(nil))
}
