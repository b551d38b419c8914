// Package api is the shared HTTP transport for the storefront's REST API.
// A single Client mediates every request: it attaches the stored bearer
// token on the way out and applies the cross-cutting failure policy on the
// way back (session teardown on auth failure, a single retry of idempotent
// reads on network failure). Everything else propagates unchanged to the
// calling service.
package api

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

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/MinhAlfred/orchidstore/internal/client/nav"
	"github.com/MinhAlfred/orchidstore/internal/client/storage"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

// retryBackoff is the fixed pause before the single GET retry.
const retryBackoff = 200 * time.Millisecond

type Client struct {
	baseURL  string
	httpc    *http.Client
	store    storage.Store
	notifier *storage.Notifier
	log      logging.Logger
}

// New builds the shared transport. A zero timeout leaves the underlying
// client without an explicit deadline.
func New(baseURL string, timeout time.Duration, store storage.Store, notifier *storage.Notifier, log logging.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: timeout},
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// envelope is the server's uniform response body: data on success, reason on
// failure.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Reason  string          `json:"reason"`
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRequestSetup, err)
		}
		payload = b
	}
	reqID := uuid.NewString()

	var resp *http.Response
	attempt := func(ctx context.Context) error {
		req, err := c.newRequest(ctx, method, path, payload, reqID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRequestSetup, err)
		}
		c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", reqID)

		r, err := c.httpc.Do(req)
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
			// Only idempotent reads are resubmitted, and only for the
			// no-response class of failure. Writes fail immediately to
			// avoid duplicated side effects.
			if method == http.MethodGet {
				return retry.RetryableError(err)
			}
			return err
		}
		resp = r
		return nil
	}

	backoff := retry.WithMaxRetries(1, retry.NewConstant(retryBackoff))
	if err := retry.Do(ctx, backoff, attempt); err != nil {
		c.log.Error(ctx, "network error", "method", method, "path", path, "request_id", reqID, "error", err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.handleFailure(ctx, method, path, resp.StatusCode, raw)
	}

	c.log.Debug(ctx, "api response", "status", resp.StatusCode, "path", path, "request_id", reqID)

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response for %s %s: %w", method, path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decoding response data for %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte, reqID string) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	token, err := c.store.Get(ctx, storage.KeyToken)
	switch {
	case err == nil && token != "":
		req.Header.Set("Authorization", "Bearer "+token)
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		c.log.Warn(ctx, "failed to read token from store", "error", err)
	}
	return req, nil
}

// handleFailure classifies a non-2xx response. A 401 tears the session down
// (token and legacy user mirror cleared, store change broadcast, redirect to
// login) before the error is surfaced; the caller still receives and must
// handle the rejection.
func (c *Client) handleFailure(ctx context.Context, method, path string, status int, raw []byte) error {
	var env envelope
	_ = json.Unmarshal(raw, &env)
	reason := env.Reason
	if reason == "" {
		reason = env.Message
	}

	serr := &StatusError{Status: status, Reason: reason, Method: method, Path: path}
	c.log.Error(ctx, "api error", "status", status, "method", method, "path", path, "reason", reason)

	switch status {
	case http.StatusUnauthorized:
		c.clearSession(ctx)
		c.notifier.Broadcast()
		nav.NavigateTo(nav.RouteLogin)
	case http.StatusForbidden:
		c.log.Error(ctx, "access forbidden, insufficient permissions", "path", path)
	case http.StatusNotFound:
		c.log.Error(ctx, "resource not found", "path", path)
	case http.StatusInternalServerError:
		c.log.Error(ctx, "server error occurred", "path", path)
	}
	return serr
}

func (c *Client) clearSession(ctx context.Context) {
	if err := c.store.Delete(ctx, storage.KeyToken); err != nil {
		c.log.Error(ctx, "failed to clear token", "error", err)
	}
	if err := c.store.Delete(ctx, storage.KeyUser); err != nil {
		c.log.Error(ctx, "failed to clear user", "error", err)
	}
}
