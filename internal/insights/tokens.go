package insights

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	errors "github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"golang.org/x/sync/singleflight"
)

// tokenFetchTimeout bounds a single token request against the upstream
// token endpoint.
const tokenFetchTimeout = 30 * time.Second

// tokenEntry is a cached short-lived token. Expiration is the upstream
// epoch-millisecond timestamp; the entry is valid iff expiration > now_ms.
type tokenEntry struct {
	token      string
	expiration int64
}

// tokenResponse is the upstream token endpoint payload.
type tokenResponse struct {
	Result struct {
		Token      string `json:"token"`
		Expiration int64  `json:"expiration"`
	} `json:"result"`
}

// TokenCache caches one short-lived token per tenant and refreshes expired
// entries through the upstream token endpoint.
//
// The original service let concurrent callers of an expired tenant race and
// fetch twice; here refreshes are coalesced per tenant with singleflight so
// at most one token request is in flight per tenant at a time.
type TokenCache struct {
	baseURL string
	httpcli *http.Client
	logger  logSDK.Logger
	now     func() time.Time

	mu      sync.RWMutex
	entries map[string]tokenEntry
	group   singleflight.Group
}

// TokenCacheOption mutates a TokenCache during construction.
type TokenCacheOption func(*TokenCache)

// WithTokenCacheHTTPClient overrides the HTTP client used for token requests.
func WithTokenCacheHTTPClient(cli *http.Client) TokenCacheOption {
	return func(c *TokenCache) {
		c.httpcli = cli
	}
}

// WithTokenCacheNow overrides the clock; tests use it to control expiry.
func WithTokenCacheNow(now func() time.Time) TokenCacheOption {
	return func(c *TokenCache) {
		c.now = now
	}
}

// NewTokenCache builds a token cache for the given upstream base URL.
func NewTokenCache(baseURL string, logger logSDK.Logger, opts ...TokenCacheOption) (*TokenCache, error) {
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	httpcli, err := gutils.NewHTTPClient(
		gutils.WithHTTPClientTimeout(tokenFetchTimeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "new http client")
	}

	cache := &TokenCache{
		baseURL: baseURL,
		httpcli: httpcli,
		logger:  logger.Named("tokens"),
		now:     func() time.Time { return gutils.Clock.GetUTCNow() },
		entries: make(map[string]tokenEntry),
	}
	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// Token returns a valid token for the tenant, reusing the cached one when it
// has not expired and refreshing through the upstream token endpoint
// otherwise. A refresh failure surfaces as *TokenFetchError and leaves the
// cache untouched.
func (c *TokenCache) Token(ctx context.Context, cred Credential) (string, error) {
	if token, ok := c.cached(cred.TenantID); ok {
		c.logger.Debug("re-using existing token",
			zap.String("tenant_id", cred.TenantID))
		return token, nil
	}

	value, err, _ := c.group.Do(cred.TenantID, func() (any, error) {
		// a concurrent caller may have refreshed while we waited
		if token, ok := c.cached(cred.TenantID); ok {
			return token, nil
		}

		return c.refresh(ctx, cred)
	})
	if err != nil {
		return "", err
	}

	return value.(string), nil
}

// cached returns the tenant's token when a non-expired entry exists.
func (c *TokenCache) cached(tenantID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[tenantID]
	if !ok || entry.expiration <= c.now().UnixMilli() {
		return "", false
	}

	return entry.token, true
}

// refresh requests a new token from the upstream endpoint and stores it,
// overwriting any prior entry for the tenant.
func (c *TokenCache) refresh(ctx context.Context, cred Credential) (string, error) {
	c.logger.Info("creating new token",
		zap.String("tenant_id", cred.TenantID),
		zap.String("api_key", cred.MaskedKey()))

	entry, err := c.fetch(ctx, cred)
	if err != nil {
		c.logger.Error("token fetch failed",
			zap.String("tenant_id", cred.TenantID),
			zap.Error(err))
		return "", &TokenFetchError{TenantID: cred.TenantID, Cause: err}
	}

	c.mu.Lock()
	c.entries[cred.TenantID] = entry
	c.mu.Unlock()

	c.logger.Info("fetched new token",
		zap.String("tenant_id", cred.TenantID),
		zap.Int64("expiration", entry.expiration))
	return entry.token, nil
}

func (c *TokenCache) fetch(ctx context.Context, cred Credential) (tokenEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, tokenFetchTimeout)
	defer cancel()

	url := c.baseURL + TenantPath(cred.TenantID, "token")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return tokenEntry{}, errors.Wrap(err, "new request")
	}

	req.Header.Set("x-api-key", cred.APIKey)
	setIntegrationHeaders(req)

	resp, err := c.httpcli.Do(req)
	if err != nil {
		return tokenEntry{}, errors.Wrap(err, "do request")
	}
	defer gutils.CloseWithLog(resp.Body, c.logger)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		cnt, err := io.ReadAll(resp.Body)
		if err != nil {
			return tokenEntry{}, errors.Wrapf(err, "[%d]read error body", resp.StatusCode)
		}

		return tokenEntry{}, errors.Errorf("request failed: [%d]%s", resp.StatusCode, string(cnt))
	}

	var payload tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return tokenEntry{}, errors.Wrap(err, "decode token response")
	}
	if payload.Result.Token == "" {
		return tokenEntry{}, errors.New("token response missing result.token")
	}

	return tokenEntry{
		token:      payload.Result.Token,
		expiration: payload.Result.Expiration,
	}, nil
}
