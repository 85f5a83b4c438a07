package tools

import (
	"context"
	"net/url"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
)

// TenantNotificationsTool implements the fetch_tenant_notifications MCP tool.
type TenantNotificationsTool struct {
	resolver CredentialResolver
	executor Executor
	logger   logSDK.Logger
}

// NewTenantNotificationsTool constructs a TenantNotificationsTool with the provided dependencies.
func NewTenantNotificationsTool(resolver CredentialResolver, executor Executor, logger logSDK.Logger) (*TenantNotificationsTool, error) {
	if resolver == nil {
		return nil, errors.New("credential resolver is required")
	}
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &TenantNotificationsTool{
		resolver: resolver,
		executor: executor,
		logger:   logger.Named("tenant_notifications"),
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *TenantNotificationsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_tenant_notifications",
		mcp.WithDescription("Get notifications for a Storage Insights tenant."),
		mcp.WithString("tenant_id", mcp.Description(tenantIDDescription)),
		mcp.WithString("duration", mcp.Description("Notification window, e.g. 5h, 1d. Defaults to 12h.")),
		mcp.WithString("severity",
			mcp.Description("Severity to filter by."),
			mcp.Enum(insights.Severities()...),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes fetch_tenant_notifications.
func (t *TenantNotificationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cred, err := t.resolver.Resolve(tenantIDArg(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	severity, hasSeverity, err := severityArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := url.Values{}
	if duration := durationArg(req); duration != "" {
		params.Set("duration", duration)
	}
	if hasSeverity {
		params.Set("severity", string(severity))
	}

	raw, err := t.executor.Get(ctx, insights.TenantPath(cred.TenantID, "notifications"), params, cred)
	if err != nil {
		t.logger.Error("fetch tenant notifications", zap.Error(err),
			zap.String("tenant_id", cred.TenantID))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return successResult(raw), nil
}
