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

// SystemMetricsTool implements one of the metric-family MCP tools. All of
// them hit the same upstream metrics endpoint; they differ only in the
// metric group that supplies the default `types` parameter.
type SystemMetricsTool struct {
	name        string
	description string
	group       string
	resolver    CredentialResolver
	executor    Executor
	groups      *insights.MetricGroups
	logger      logSDK.Logger
}

func newSystemMetricsTool(name, description, group string,
	resolver CredentialResolver, executor Executor,
	groups *insights.MetricGroups, logger logSDK.Logger,
) (*SystemMetricsTool, error) {
	if resolver == nil {
		return nil, errors.New("credential resolver is required")
	}
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	if groups == nil {
		return nil, errors.New("metric groups are required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &SystemMetricsTool{
		name:        name,
		description: description,
		group:       group,
		resolver:    resolver,
		executor:    executor,
		groups:      groups,
		logger:      logger.Named(name),
	}, nil
}

// NewSystemIORateTool builds the fetch_system_io_rate tool.
func NewSystemIORateTool(resolver CredentialResolver, executor Executor, groups *insights.MetricGroups, logger logSDK.Logger) (*SystemMetricsTool, error) {
	return newSystemMetricsTool("fetch_system_io_rate",
		"Get io rate metrics for one storage system under a tenant.",
		insights.GroupIORate, resolver, executor, groups, logger)
}

// NewSystemDataRateTool builds the fetch_system_data_rate tool.
func NewSystemDataRateTool(resolver CredentialResolver, executor Executor, groups *insights.MetricGroups, logger logSDK.Logger) (*SystemMetricsTool, error) {
	return newSystemMetricsTool("fetch_system_data_rate",
		"Get data rate metrics for one storage system under a tenant.",
		insights.GroupDataRate, resolver, executor, groups, logger)
}

// NewSystemResponseTimeTool builds the fetch_system_response_time tool.
func NewSystemResponseTimeTool(resolver CredentialResolver, executor Executor, groups *insights.MetricGroups, logger logSDK.Logger) (*SystemMetricsTool, error) {
	return newSystemMetricsTool("fetch_system_response_time",
		"Get response time metrics for one storage system under a tenant.",
		insights.GroupResponseTime, resolver, executor, groups, logger)
}

// NewSystemTransferSizeTool builds the fetch_system_transfer_size tool.
func NewSystemTransferSizeTool(resolver CredentialResolver, executor Executor, groups *insights.MetricGroups, logger logSDK.Logger) (*SystemMetricsTool, error) {
	return newSystemMetricsTool("fetch_system_transfer_size",
		"Get transfer size metrics for one storage system under a tenant.",
		insights.GroupTransferSize, resolver, executor, groups, logger)
}

// NewSystemCPUUtilizationTool builds the fetch_system_cpu_utilization tool.
func NewSystemCPUUtilizationTool(resolver CredentialResolver, executor Executor, groups *insights.MetricGroups, logger logSDK.Logger) (*SystemMetricsTool, error) {
	return newSystemMetricsTool("fetch_system_cpu_utilization",
		"Get cpu utilization metrics for one storage system under a tenant.",
		insights.GroupCPUUtilization, resolver, executor, groups, logger)
}

// NewSystemCapacityTool builds the fetch_system_capacity tool.
func NewSystemCapacityTool(resolver CredentialResolver, executor Executor, groups *insights.MetricGroups, logger logSDK.Logger) (*SystemMetricsTool, error) {
	return newSystemMetricsTool("fetch_system_capacity",
		"Get capacity metrics for one storage system under a tenant.",
		insights.GroupCapacity, resolver, executor, groups, logger)
}

// NewSystemCacheEfficiencyTool builds the fetch_system_cache_efficiency tool.
func NewSystemCacheEfficiencyTool(resolver CredentialResolver, executor Executor, groups *insights.MetricGroups, logger logSDK.Logger) (*SystemMetricsTool, error) {
	return newSystemMetricsTool("fetch_system_cache_efficiency",
		"Get cache efficiency metrics for one storage system under a tenant.",
		insights.GroupCacheEfficiency, resolver, executor, groups, logger)
}

// NewSystemDiskLatencyTool builds the fetch_system_disk_latency tool.
func NewSystemDiskLatencyTool(resolver CredentialResolver, executor Executor, groups *insights.MetricGroups, logger logSDK.Logger) (*SystemMetricsTool, error) {
	return newSystemMetricsTool("fetch_system_disk_latency",
		"Get disk latency metrics for one storage system under a tenant.",
		insights.GroupDiskLatency, resolver, executor, groups, logger)
}

// Definition returns the MCP metadata describing the tool.
func (t *SystemMetricsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		t.name,
		mcp.WithDescription(t.description),
		mcp.WithString("system_id", mcp.Required(), mcp.Description("Storage system id.")),
		mcp.WithString("tenant_id", mcp.Description(tenantIDDescription)),
		mcp.WithString("duration", mcp.Description("Metric window, e.g. 20m, 1h, 1d. Defaults to 12h.")),
		mcp.WithArray(
			"metric_types",
			mcp.Description("Metric type names. Defaults to the configured `"+t.group+"` group."),
			mcp.Items(metricTypeItemsSchema()),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes the metric tool.
func (t *SystemMetricsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	systemID, err := req.RequireString("system_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cred, err := t.resolver.Resolve(tenantIDArg(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	metricTypes := req.GetStringSlice("metric_types", nil)
	if len(metricTypes) == 0 {
		metricTypes = t.groups.Names(t.group)
	}
	if len(metricTypes) == 0 {
		return mcp.NewToolResultError("no metric types supplied and no `" + t.group + "` group configured"), nil
	}

	params := url.Values{}
	for _, metricType := range metricTypes {
		params.Add("types", metricType)
	}
	if duration := durationArg(req); duration != "" {
		params.Set("duration", duration)
	}

	path := insights.TenantPath(cred.TenantID, "storage-systems", systemID, "metrics")
	raw, err := t.executor.Get(ctx, path, params, cred)
	if err != nil {
		t.logger.Error("fetch system metrics", zap.Error(err),
			zap.String("tenant_id", cred.TenantID),
			zap.String("system_id", systemID),
			zap.String("group", t.group))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return successResult(raw), nil
}
