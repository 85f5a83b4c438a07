package tools

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
)

// SystemAlertsTool implements the fetch_system_alerts MCP tool.
type SystemAlertsTool struct {
	resolver CredentialResolver
	executor Executor
	logger   logSDK.Logger
}

// NewSystemAlertsTool constructs a SystemAlertsTool with the provided dependencies.
func NewSystemAlertsTool(resolver CredentialResolver, executor Executor, logger logSDK.Logger) (*SystemAlertsTool, error) {
	if resolver == nil {
		return nil, errors.New("credential resolver is required")
	}
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &SystemAlertsTool{
		resolver: resolver,
		executor: executor,
		logger:   logger.Named("system_alerts"),
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *SystemAlertsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_system_alerts",
		mcp.WithDescription("Get alerts for one storage system under a tenant."),
		mcp.WithString("system_id", mcp.Required(), mcp.Description("Storage system id.")),
		mcp.WithString("tenant_id", mcp.Description(tenantIDDescription)),
		mcp.WithString("duration", mcp.Description("Alert window, e.g. 20m, 5h, 1d. Defaults to 12h.")),
		mcp.WithArray(
			"severity",
			mcp.Description("Severities to filter by."),
			mcp.Items(severityItemsSchema()),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes fetch_system_alerts.
func (t *SystemAlertsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	systemID, err := req.RequireString("system_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cred, err := t.resolver.Resolve(tenantIDArg(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	severities, err := severityListArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := alertParams(durationArg(req), severities)
	path := insights.TenantPath(cred.TenantID, "storage-systems", systemID, "alerts")
	raw, err := t.executor.Get(ctx, path, params, cred)
	if err != nil {
		t.logger.Error("fetch system alerts", zap.Error(err),
			zap.String("tenant_id", cred.TenantID),
			zap.String("system_id", systemID))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return successResult(raw), nil
}
