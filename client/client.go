// Package client is the typed REST client the console uses against the
// platform backend. Every operation is a one-shot request: no local cache,
// no merging of responses into local state. Callers re-fetch collections
// after successful writes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/shuleapp/console/core"
	"github.com/shuleapp/console/core/session"
)

const genericErrMsg = "something went wrong, please try again"

var (
	// ErrStale marks a list response that was overtaken by a newer request
	// for the same resource. Callers drop it instead of rendering it.
	ErrStale = errors.New("stale response discarded")
)

// APIError is a non-2xx response with its structured detail when the
// backend provided one, or a generic message otherwise.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string { return e.Detail }

// apiErrorBody is the error shape the backend speaks: {"detail": "..."}.
type apiErrorBody struct {
	Detail string `json:"detail"`
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// TokenStore is where the session token pair lives between calls. The
// console backs it with a file; tests use an in-memory one.
type TokenStore interface {
	Session() session.Session
	SetSession(session.Session) error
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	logger  core.Logger
	seq     sequencer
}

func New(conf *core.Config, tokens TokenStore, logger core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.API.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.API.Timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// do runs one JSON request/response cycle. On a 401 it refreshes the token
// pair and retries the original request exactly once; every other failure is
// returned as-is, never retried.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, query, body, true /* authed */)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && !c.tokens.Session().IsZero() {
		drain(resp)
		if err = c.refresh(ctx); err != nil {
			return err
		}
		if resp, err = c.send(ctx, method, path, query, body, true); err != nil {
			return err
		}
	}
	return decode(resp, out)
}

// doAnon is do without the bearer header or the refresh path (login).
func (c *Client) doAnon(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, nil, body, false)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body interface{}, authed bool) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "marshalling request body")
		}
		rdr = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, rdr)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if authed {
		if sess := c.tokens.Session(); !sess.IsZero() {
			req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	return resp, nil
}

// refresh exchanges the refresh token for a new pair and persists it.
func (c *Client) refresh(ctx context.Context) error {
	sess := c.tokens.Session()
	if sess.RefreshToken == "" {
		return &APIError{StatusCode: http.StatusUnauthorized, Detail: "session expired, please log in again"}
	}

	var renewed session.Session
	body := map[string]string{"refresh_token": sess.RefreshToken}
	if err := c.doAnon(ctx, http.MethodPost, "/auth/refresh", body, &renewed); err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return errors.Wrap(c.tokens.SetSession(renewed), "storing refreshed session")
}

func decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		drainBody(resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response body")
	}
	return nil
}

func newAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: genericErrMsg}
	var body apiErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}

func drain(resp *http.Response) {
	drainBody(resp.Body)
	resp.Body.Close() //nolint:errcheck
}

func drainBody(body io.Reader) {
	_, _ = io.Copy(ioutil.Discard, body)
}
