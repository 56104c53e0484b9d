// Package api implements the REST client for the PeerSphere collaborator.
// Every call is JSON over HTTP against a single base endpoint tree; each
// user-action call makes exactly one attempt.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kartiksirsilla09/peersphere-cli/internal/common"
	"github.com/kartiksirsilla09/peersphere-cli/internal/logging"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20 // 1 MB

// TokenProvider supplies the current credential token for outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client is the HTTP client for the collaborator's REST endpoint tree.
// The credential token is attached uniformly to every request, so callers
// never deal with authorization headers themselves.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	logger  logging.Logger
}

// New constructs a Client for the given base URL (e.g.
// "http://localhost:5000/api"). The underlying transport uses connection
// pooling; timeout bounds each whole request.
func New(baseURL string, timeout time.Duration, tokens TokenProvider, logger logging.Logger) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

// do performs a single JSON round trip. body and out may be nil. Non-2xx
// responses are turned into *Error values; transport failures are reported
// as common.ErrorUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", method, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn(ctx, "reading credential token", "error", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrorUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseResponseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
