// Package insights implements the authentication core shared by every tool:
// tenant credential resolution, per-tenant token caching, and authenticated
// requests against the IBM Storage Insights REST API.
package insights

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errors "github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
)

const (
	integrationName    = "si-mcp"
	integrationVersion = "v1"

	// requestTimeout bounds a downstream data request; metric queries over
	// long durations can be slow upstream.
	requestTimeout = 100 * time.Second
)

// setIntegrationHeaders applies the fixed headers that identify this
// integration to the upstream API.
func setIntegrationHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-integration", integrationName)
	req.Header.Set("x-integration-version", integrationVersion)
}

// TenantPath joins path segments under /tenants/{tenantID}.
func TenantPath(tenantID string, parts ...string) string {
	segments := append([]string{"", "tenants", tenantID}, parts...)
	return strings.Join(segments, "/")
}

// Client performs authenticated GET requests against the upstream API. It
// obtains tokens through the token cache and never mutates shared state
// itself.
type Client struct {
	baseURL string
	tokens  *TokenCache
	httpcli *http.Client
	logger  logSDK.Logger
}

// ClientOption mutates a Client during construction.
type ClientOption func(*Client)

// WithClientHTTPClient overrides the HTTP client used for data requests.
func WithClientHTTPClient(cli *http.Client) ClientOption {
	return func(c *Client) {
		c.httpcli = cli
	}
}

// NewClient builds an authenticated API client on top of the token cache.
func NewClient(baseURL string, tokens *TokenCache, logger logSDK.Logger, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}
	if tokens == nil {
		return nil, errors.New("token cache is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	httpcli, err := gutils.NewHTTPClient(
		gutils.WithHTTPClientTimeout(requestTimeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "new http client")
	}

	client := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpcli: httpcli,
		logger:  logger.Named("client"),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Get issues an authenticated GET against the upstream API and returns the
// raw JSON payload. An empty response body yields (nil, nil), which callers
// treat as a valid no-content outcome. Non-2xx responses surface as
// *HTTPError; token failures propagate unchanged as *TokenFetchError.
func (c *Client) Get(ctx context.Context, path string, params url.Values, cred Credential) (json.RawMessage, error) {
	token, err := c.tokens.Token(ctx, cred)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "new request to `%s`", endpoint)
	}

	if len(params) != 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("x-api-token", token)
	setIntegrationHeaders(req)

	resp, err := c.httpcli.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer gutils.CloseWithLog(resp.Body, c.logger)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "[%d]read response body", resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if len(body) == 0 {
		c.logger.Debug("received empty response",
			zap.String("path", path))
		return nil, nil
	}

	if !json.Valid(body) {
		return nil, errors.Errorf("response is not valid json: %s", truncate(string(body), 128))
	}

	c.logger.Debug("received api response", zap.String("path", path))
	return json.RawMessage(body), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max] + "..."
}
