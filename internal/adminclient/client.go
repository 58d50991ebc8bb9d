// Package adminclient is the Go client for the admin API. It keeps the
// session cookie in a jar, fetches the CSRF token once per session, and
// mirrors the server's access rules through the shared policy package so
// the dashboard can pre-check routes before issuing requests.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
)

// HeaderCsrfToken must match what the server-side CSRF middleware reads.
const HeaderCsrfToken = "X-CSRF-Token"

var (
	// ErrUnauthenticated means the server rejected the request with 401;
	// the stored session cookie is dead or was never set.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials is returned by Login for a 401.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Client talks to the admin API over HTTP. It is safe for concurrent use;
// the CSRF token is cached per login and refetched after re-login.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.Mutex
	csrfToken string
}

// NewClient builds a client for the API at baseURL (scheme and host, no
// trailing slash required).
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

type userEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    *domain.Principal `json:"user"`
}

// Login authenticates and caches the session cookie. The principal the
// server attached to the new session is returned.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.Principal, error) {
	body := map[string]string{"username": username, "password": password}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, false)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var env userEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	// A fresh session means a fresh token binding.
	c.mu.Lock()
	c.csrfToken = ""
	c.mu.Unlock()

	return env.User, nil
}

// Logout ends the session. A dead or missing session still succeeds.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, true)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}

	c.mu.Lock()
	c.csrfToken = ""
	c.mu.Unlock()

	return nil
}

// Me returns the principal of the current session, or ErrUnauthenticated
// when no live session exists.
func (c *Client) Me(ctx context.Context) (*domain.Principal, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, false)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var env userEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode me response: %w", err)
	}
	return env.User, nil
}

// FetchCsrfToken returns the session's CSRF token, fetching it from the
// server on first use and caching it for subsequent mutating calls.
func (c *Client) FetchCsrfToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	cached := c.csrfToken
	c.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/v1/auth/csrf-token", nil, false)
	if err != nil {
		return "", err
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return "", unexpectedStatus(resp)
	}

	var payload struct {
		CsrfToken string `json:"csrfToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode csrf token response: %w", err)
	}

	c.mu.Lock()
	c.csrfToken = payload.CsrfToken
	c.mu.Unlock()

	return payload.CsrfToken, nil
}

// do issues a request. When withCsrf is set and a session token can be
// obtained, the CSRF header is attached; a missing token is not fatal
// here because endpoints like logout accept a sessionless call.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, withCsrf bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withCsrf {
		token, err := c.FetchCsrfToken(ctx)
		if err == nil && token != "" {
			req.Header.Set(HeaderCsrfToken, token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func unexpectedStatus(resp *http.Response) error {
	return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, resp.Request.URL.Path)
}

// drain reads the body to completion so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
