package insights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	errors "github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/storage-insights-mcp/library/log"
)

// dataUpstream serves a canned body for data requests and records the last
// request seen.
type dataUpstream struct {
	srv    *httptest.Server
	status int
	body   string

	mu       sync.Mutex
	lastPath string
	lastReq  http.Header
	lastRaw  string
}

func newDataUpstream(t *testing.T) *dataUpstream {
	t.Helper()

	upstream := &dataUpstream{status: http.StatusOK}
	upstream.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstream.mu.Lock()
		upstream.lastPath = r.URL.Path
		upstream.lastReq = r.Header.Clone()
		upstream.lastRaw = r.URL.RawQuery
		upstream.mu.Unlock()

		w.WriteHeader(upstream.status)
		if upstream.body != "" {
			_, _ = w.Write([]byte(upstream.body))
		}
	}))
	t.Cleanup(upstream.srv.Close)

	return upstream
}

func newTestClient(t *testing.T, upstream *dataUpstream) *Client {
	t.Helper()

	tokens, err := NewTokenCache(upstream.srv.URL, log.Logger)
	require.NoError(t, err)
	seedToken(tokens, "tenant-a", "data-token", time.Now().Add(time.Hour).UnixMilli())

	client, err := NewClient(upstream.srv.URL, tokens, log.Logger)
	require.NoError(t, err)

	return client
}

func TestClientGetReturnsRawJSON(t *testing.T) {
	upstream := newDataUpstream(t)
	upstream.body = `{"data":[{"id":1}]}`
	client := newTestClient(t, upstream)

	params := url.Values{}
	params.Set("duration", "4h")

	raw, err := client.Get(context.Background(),
		TenantPath("tenant-a", "alerts"), params,
		Credential{TenantID: "tenant-a", APIKey: "key-a"})
	require.NoError(t, err)
	require.JSONEq(t, upstream.body, string(raw))

	upstream.mu.Lock()
	defer upstream.mu.Unlock()
	require.Equal(t, "/tenants/tenant-a/alerts", upstream.lastPath)
	require.Equal(t, "duration=4h", upstream.lastRaw)
	require.Equal(t, "data-token", upstream.lastReq.Get("x-api-token"))
	require.Equal(t, "si-mcp", upstream.lastReq.Get("x-integration"))
	require.Equal(t, "v1", upstream.lastReq.Get("x-integration-version"))
}

func TestClientGetEmptyBodyIsValid(t *testing.T) {
	upstream := newDataUpstream(t)
	client := newTestClient(t, upstream)

	raw, err := client.Get(context.Background(),
		TenantPath("tenant-a", "storage-systems"), nil,
		Credential{TenantID: "tenant-a", APIKey: "key-a"})
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestClientGetHTTPError(t *testing.T) {
	upstream := newDataUpstream(t)
	upstream.status = http.StatusForbidden
	upstream.body = "access denied"
	client := newTestClient(t, upstream)

	_, err := client.Get(context.Background(),
		TenantPath("tenant-a", "alerts"), nil,
		Credential{TenantID: "tenant-a", APIKey: "key-a"})
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	require.Equal(t, "access denied", httpErr.Body)
}

func TestClientGetInvalidJSON(t *testing.T) {
	upstream := newDataUpstream(t)
	upstream.body = "<html>not json</html>"
	client := newTestClient(t, upstream)

	_, err := client.Get(context.Background(),
		TenantPath("tenant-a", "alerts"), nil,
		Credential{TenantID: "tenant-a", APIKey: "key-a"})
	require.ErrorContains(t, err, "not valid json")
}

func TestClientGetPropagatesTokenFailure(t *testing.T) {
	upstream := newDataUpstream(t)
	upstream.status = http.StatusUnauthorized
	client := newTestClient(t, upstream)

	// no cached token for this tenant, so the token refresh runs against the
	// same upstream and fails with 401
	_, err := client.Get(context.Background(),
		TenantPath("tenant-b", "alerts"), nil,
		Credential{TenantID: "tenant-b", APIKey: "key-b"})
	require.Error(t, err)

	var fetchErr *TokenFetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, "tenant-b", fetchErr.TenantID)
}

func TestTenantPath(t *testing.T) {
	require.Equal(t, "/tenants/t1/token", TenantPath("t1", "token"))
	require.Equal(t, "/tenants/t1/storage-systems/sys-1/alerts",
		TenantPath("t1", "storage-systems", "sys-1", "alerts"))
	require.Equal(t, "/tenants/t1", TenantPath("t1"))
}

func TestNewClientValidation(t *testing.T) {
	tokens, err := NewTokenCache("https://example.com", log.Logger)
	require.NoError(t, err)

	_, err = NewClient("", tokens, log.Logger)
	require.ErrorContains(t, err, "base url is required")

	_, err = NewClient("https://example.com", nil, log.Logger)
	require.ErrorContains(t, err, "token cache is required")

	_, err = NewClient("https://example.com", tokens, nil)
	require.ErrorContains(t, err, "logger is required")
}
