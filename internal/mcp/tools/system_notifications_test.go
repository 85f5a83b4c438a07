package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSystemNotificationsToolSuccess(t *testing.T) {
	executor := &fakeExecutor{payload: json.RawMessage(`{"data":[]}`)}
	tool, err := NewSystemNotificationsTool(fakeResolver{}, executor, testLogger())
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"system_id": "sys-1",
		"severity":  "critical",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Equal(t, "/tenants/tenant-default/storage-systems/sys-1/notifications", executor.lastPath)
	require.Equal(t, DefaultDuration, executor.lastParams.Get("duration"))
	require.Equal(t, "critical", executor.lastParams.Get("severity"))
}

func TestSystemNotificationsToolMissingSystemID(t *testing.T) {
	executor := &fakeExecutor{}
	tool, err := NewSystemNotificationsTool(fakeResolver{}, executor, testLogger())
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"severity": "critical",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Zero(t, executor.calls)
}
