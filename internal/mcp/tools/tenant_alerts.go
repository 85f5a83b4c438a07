package tools

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
)

// TenantAlertsTool implements the fetch_tenant_alerts MCP tool.
type TenantAlertsTool struct {
	resolver CredentialResolver
	executor Executor
	logger   logSDK.Logger
}

// NewTenantAlertsTool constructs a TenantAlertsTool with the provided dependencies.
func NewTenantAlertsTool(resolver CredentialResolver, executor Executor, logger logSDK.Logger) (*TenantAlertsTool, error) {
	if resolver == nil {
		return nil, errors.New("credential resolver is required")
	}
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &TenantAlertsTool{
		resolver: resolver,
		executor: executor,
		logger:   logger.Named("tenant_alerts"),
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *TenantAlertsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_tenant_alerts",
		mcp.WithDescription("Get alerts for a Storage Insights tenant."),
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

// Handle executes fetch_tenant_alerts.
func (t *TenantAlertsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cred, err := t.resolver.Resolve(tenantIDArg(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	severities, err := severityListArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := alertParams(durationArg(req), severities)
	raw, err := t.executor.Get(ctx, insights.TenantPath(cred.TenantID, "alerts"), params, cred)
	if err != nil {
		t.logger.Error("fetch tenant alerts", zap.Error(err),
			zap.String("tenant_id", cred.TenantID))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return successResult(raw), nil
}
