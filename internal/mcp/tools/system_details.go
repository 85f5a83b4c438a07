package tools

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
)

// SystemDetailsTool implements the fetch_system_details MCP tool.
type SystemDetailsTool struct {
	resolver CredentialResolver
	executor Executor
	logger   logSDK.Logger
}

// NewSystemDetailsTool constructs a SystemDetailsTool with the provided dependencies.
func NewSystemDetailsTool(resolver CredentialResolver, executor Executor, logger logSDK.Logger) (*SystemDetailsTool, error) {
	if resolver == nil {
		return nil, errors.New("credential resolver is required")
	}
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &SystemDetailsTool{
		resolver: resolver,
		executor: executor,
		logger:   logger.Named("system_details"),
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *SystemDetailsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_system_details",
		mcp.WithDescription("Get details of one storage system under a tenant."),
		mcp.WithString("system_id", mcp.Required(), mcp.Description("Storage system id.")),
		mcp.WithString("tenant_id", mcp.Description(tenantIDDescription)),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes fetch_system_details.
func (t *SystemDetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	systemID, err := req.RequireString("system_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cred, err := t.resolver.Resolve(tenantIDArg(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.executor.Get(ctx, insights.TenantPath(cred.TenantID, "storage-systems", systemID), nil, cred)
	if err != nil {
		t.logger.Error("fetch system details", zap.Error(err),
			zap.String("tenant_id", cred.TenantID),
			zap.String("system_id", systemID))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return successResult(raw), nil
}
