package tools

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
)

// StorageSystemsTool implements the fetch_storage_systems MCP tool.
type StorageSystemsTool struct {
	resolver CredentialResolver
	executor Executor
	logger   logSDK.Logger
}

// NewStorageSystemsTool constructs a StorageSystemsTool with the provided dependencies.
func NewStorageSystemsTool(resolver CredentialResolver, executor Executor, logger logSDK.Logger) (*StorageSystemsTool, error) {
	if resolver == nil {
		return nil, errors.New("credential resolver is required")
	}
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &StorageSystemsTool{
		resolver: resolver,
		executor: executor,
		logger:   logger.Named("storage_systems"),
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *StorageSystemsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_storage_systems",
		mcp.WithDescription("Get all storage systems for a Storage Insights tenant."),
		mcp.WithString("tenant_id", mcp.Description(tenantIDDescription)),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes fetch_storage_systems.
func (t *StorageSystemsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cred, err := t.resolver.Resolve(tenantIDArg(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.executor.Get(ctx, insights.TenantPath(cred.TenantID, "storage-systems"), nil, cred)
	if err != nil {
		t.logger.Error("fetch storage systems", zap.Error(err),
			zap.String("tenant_id", cred.TenantID))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return successResult(raw), nil
}
