package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTenantNotificationsToolSuccess(t *testing.T) {
	executor := &fakeExecutor{payload: json.RawMessage(`{"data":[]}`)}
	tool, err := NewTenantNotificationsTool(fakeResolver{}, executor, testLogger())
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"severity": "info_acknowledged",
		"duration": "1d",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, `Operation successful: {"data":[]}`, resultText(t, result))

	require.Equal(t, "/tenants/tenant-default/notifications", executor.lastPath)
	require.Equal(t, "1d", executor.lastParams.Get("duration"))
	require.Equal(t, "info_acknowledged", executor.lastParams.Get("severity"))
}

func TestTenantNotificationsToolOmittedSeverity(t *testing.T) {
	executor := &fakeExecutor{payload: json.RawMessage(`[]`)}
	tool, err := NewTenantNotificationsTool(fakeResolver{}, executor, testLogger())
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Equal(t, DefaultDuration, executor.lastParams.Get("duration"))
	require.NotContains(t, executor.lastParams, "severity")
}

func TestTenantNotificationsToolInvalidSeverity(t *testing.T) {
	executor := &fakeExecutor{}
	tool, err := NewTenantNotificationsTool(fakeResolver{}, executor, testLogger())
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"severity": "urgent",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "unsupported severity: urgent")
	require.Zero(t, executor.calls)
}
