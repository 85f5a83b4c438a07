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

// SystemNotificationsTool implements the fetch_system_notifications MCP tool.
type SystemNotificationsTool struct {
	resolver CredentialResolver
	executor Executor
	logger   logSDK.Logger
}

// NewSystemNotificationsTool constructs a SystemNotificationsTool with the provided dependencies.
func NewSystemNotificationsTool(resolver CredentialResolver, executor Executor, logger logSDK.Logger) (*SystemNotificationsTool, error) {
	if resolver == nil {
		return nil, errors.New("credential resolver is required")
	}
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &SystemNotificationsTool{
		resolver: resolver,
		executor: executor,
		logger:   logger.Named("system_notifications"),
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *SystemNotificationsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_system_notifications",
		mcp.WithDescription("Get notifications for one storage system under a tenant."),
		mcp.WithString("system_id", mcp.Required(), mcp.Description("Storage system id.")),
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

// Handle executes fetch_system_notifications.
func (t *SystemNotificationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	systemID, err := req.RequireString("system_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

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

	path := insights.TenantPath(cred.TenantID, "storage-systems", systemID, "notifications")
	raw, err := t.executor.Get(ctx, path, params, cred)
	if err != nil {
		t.logger.Error("fetch system notifications", zap.Error(err),
			zap.String("tenant_id", cred.TenantID),
			zap.String("system_id", systemID))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return successResult(raw), nil
}
