package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSystemComponentsToolSuccess(t *testing.T) {
	executor := &fakeExecutor{payload: json.RawMessage(`{"data":[{"volume_id":"v-1"}]}`)}
	tool, err := NewSystemComponentsTool(fakeResolver{}, executor, testLogger())
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"system_id": "sys-1",
		"component": "volumes",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, `Operation successful: {"data":[{"volume_id":"v-1"}]}`, resultText(t, result))

	require.Equal(t, "/tenants/tenant-default/storage-systems/sys-1/volumes", executor.lastPath)
}

func TestSystemComponentsToolEveryComponent(t *testing.T) {
	for _, component := range []string{
		"volumes", "pools", "enclosures", "drives", "fc-ports",
		"ip-ports", "host-connections", "io-groups", "managed-disks",
		"volume-mappings",
	} {
		executor := &fakeExecutor{payload: json.RawMessage(`[]`)}
		tool, err := NewSystemComponentsTool(fakeResolver{}, executor, testLogger())
		require.NoError(t, err)

		result, err := tool.Handle(context.Background(), callRequest(map[string]any{
			"system_id": "sys-1",
			"component": component,
		}))
		require.NoError(t, err)
		require.False(t, result.IsError, "component %q", component)
		require.Equal(t, "/tenants/tenant-default/storage-systems/sys-1/"+component,
			executor.lastPath)
	}
}

func TestSystemComponentsToolUnsupportedComponent(t *testing.T) {
	executor := &fakeExecutor{}
	tool, err := NewSystemComponentsTool(fakeResolver{}, executor, testLogger())
	require.NoError(t, err)

	for _, component := range []string{"io group", "iogroups", "Volumes", "disks"} {
		result, err := tool.Handle(context.Background(), callRequest(map[string]any{
			"system_id": "sys-1",
			"component": component,
		}))
		require.NoError(t, err)
		require.True(t, result.IsError, "component %q", component)
		require.Contains(t, resultText(t, result), "unsupported component type: "+component)
	}
	require.Zero(t, executor.calls)
}

func TestSystemComponentsToolMissingArguments(t *testing.T) {
	executor := &fakeExecutor{}
	tool, err := NewSystemComponentsTool(fakeResolver{}, executor, testLogger())
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"component": "volumes",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)

	result, err = tool.Handle(context.Background(), callRequest(map[string]any{
		"system_id": "sys-1",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Zero(t, executor.calls)
}
