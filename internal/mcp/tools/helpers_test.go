package tools

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
	"github.com/Laisky/storage-insights-mcp/library/log"
)

func testLogger() logSDK.Logger {
	return log.Logger.Named("test_tools")
}

// fakeResolver resolves the default tenant and one alternate, mirroring the
// registry's behavior without config.
type fakeResolver struct{}

func (fakeResolver) Resolve(tenantID string) (insights.Credential, error) {
	switch tenantID {
	case "", "tenant-default":
		return insights.Credential{TenantID: "tenant-default", APIKey: "key-default"}, nil
	case "tenant-b":
		return insights.Credential{TenantID: "tenant-b", APIKey: "key-b"}, nil
	default:
		return insights.Credential{}, &insights.UnsupportedTenantError{TenantID: tenantID}
	}
}

// fakeExecutor records the last request and replies with a canned payload or
// error.
type fakeExecutor struct {
	payload json.RawMessage
	err     error

	lastPath   string
	lastParams url.Values
	lastCred   insights.Credential
	calls      int
}

func (f *fakeExecutor) Get(_ context.Context, path string, params url.Values, cred insights.Credential) (json.RawMessage, error) {
	f.calls++
	f.lastPath = path
	f.lastParams = params
	f.lastCred = cred

	if f.err != nil {
		return nil, f.err
	}

	return f.payload, nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestSuccessResult(t *testing.T) {
	result := successResult([]byte(`{"data":[]}`))
	require.False(t, result.IsError)
	require.Equal(t, `Operation successful: {"data":[]}`, resultText(t, result))

	result = successResult(nil)
	require.False(t, result.IsError)
	require.Equal(t, "Operation successful: null", resultText(t, result))
}

func TestAlertParams(t *testing.T) {
	params := alertParams("4h", []insights.Severity{
		insights.SeverityCritical, insights.SeverityWarningAcknowledged,
	})
	require.Equal(t, "4h", params.Get("duration"))
	require.Equal(t, []string{"critical", "warning_acknowledged"}, params["severity"])

	params = alertParams("", nil)
	require.Empty(t, params)
}

func TestDurationArgDefault(t *testing.T) {
	require.Equal(t, DefaultDuration, durationArg(callRequest(nil)))
	require.Equal(t, "30m", durationArg(callRequest(map[string]any{"duration": "30m"})))
}

func TestSeverityListArg(t *testing.T) {
	severities, err := severityListArg(callRequest(map[string]any{
		"severity": []any{"critical", "info_acknowledged"},
	}))
	require.NoError(t, err)
	require.Equal(t, []insights.Severity{
		insights.SeverityCritical, insights.SeverityInfoAcknowledged,
	}, severities)

	_, err = severityListArg(callRequest(map[string]any{
		"severity": []any{"critical", "CRITICAL"},
	}))
	require.ErrorContains(t, err, "unsupported severity: CRITICAL")
}

var errUpstream = errors.New("upstream exploded")
