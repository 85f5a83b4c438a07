package tools

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
)

// SystemComponentsTool implements the fetch_system_components MCP tool.
type SystemComponentsTool struct {
	resolver CredentialResolver
	executor Executor
	logger   logSDK.Logger
}

// NewSystemComponentsTool constructs a SystemComponentsTool with the provided dependencies.
func NewSystemComponentsTool(resolver CredentialResolver, executor Executor, logger logSDK.Logger) (*SystemComponentsTool, error) {
	if resolver == nil {
		return nil, errors.New("credential resolver is required")
	}
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &SystemComponentsTool{
		resolver: resolver,
		executor: executor,
		logger:   logger.Named("system_components"),
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *SystemComponentsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_system_components",
		mcp.WithDescription("Get a component inventory (volumes, pools, drives, ports, ...) of one storage system under a tenant."),
		mcp.WithString("system_id", mcp.Required(), mcp.Description("Storage system id.")),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component type to list."),
			mcp.Enum(insights.ComponentTypes()...),
		),
		mcp.WithString("tenant_id", mcp.Description(tenantIDDescription)),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes fetch_system_components.
func (t *SystemComponentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	systemID, err := req.RequireString("system_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rawComponent, err := req.RequireString("component")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	component, err := insights.ParseComponentType(rawComponent)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cred, err := t.resolver.Resolve(tenantIDArg(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path := insights.TenantPath(cred.TenantID, "storage-systems", systemID, string(component))
	raw, err := t.executor.Get(ctx, path, nil, cred)
	if err != nil {
		t.logger.Error("fetch system components", zap.Error(err),
			zap.String("tenant_id", cred.TenantID),
			zap.String("system_id", systemID),
			zap.String("component", string(component)))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return successResult(raw), nil
}
