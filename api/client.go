// Package api is the client for the haru backend. It attaches the bearer
// token to every request and handles the transparent token-reissue flow.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/haruapp/haru/auth"
)

const (
	apiPrefix      = "/v1"
	requestTimeout = 10 * time.Second
)

// Client talks JSON to the backend. It is safe for use from multiple
// goroutines because all session state lives in the auth manager.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *auth.Manager
}

// NewClient returns a backend client rooted at baseURL.
func NewClient(baseURL string, session *auth.Manager) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		session:    session,
	}
}

// do performs a JSON request against the versioned API. On a 401 response it
// attempts exactly one token reissue and retries the original request once;
// a second failure clears the session and reports the original error.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body, out any,
) error {
	return c.doOnce(ctx, method, path, body, out, false)
}

func (c *Client) doOnce(
	ctx context.Context,
	method, path string,
	body, out any,
	retried bool,
) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		origErr := statusError(method, path, resp)

		if retried {
			// the retried request was rejected too: the session is gone
			c.session.Logout()
			return origErr
		}

		if c.session.Current().RefreshToken == "" {
			return origErr
		}

		if err := c.reissue(ctx); err != nil {
			c.session.Logout()
			return origErr
		}

		return c.doOnce(ctx, method, path, body, out, true)
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict.Wrap(statusError(method, path, resp))
	case resp.StatusCode >= http.StatusBadRequest:
		return statusError(method, path, resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}

	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		c.baseURL+apiPrefix+path,
		reader,
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.session.Current().AccessToken; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// reissue exchanges the refresh token for a new credential pair and stores
// it through the session manager.
func (c *Client) reissue(ctx context.Context) error {
	sess := c.session.Current()

	body, err := json.Marshal(map[string]string{
		"refresh_token": sess.RefreshToken,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+apiPrefix+"/auth/reissue",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(http.MethodPost, "/auth/reissue", resp)
	}

	var tokens tokenResponse

	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return err
	}

	c.session.SetAuthData(tokens.AccessToken, tokens.RefreshToken, sess.UserID)

	return nil
}
