package mcp

import (
	"context"
	"net/http"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	mcp "github.com/mark3labs/mcp-go/mcp"
	srv "github.com/mark3labs/mcp-go/server"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
	"github.com/Laisky/storage-insights-mcp/internal/mcp/tools"
)

const (
	serverName    = "si-mcp-server"
	serverVersion = "1.0.0"
)

// Server wraps the MCP server state for both the stdio and HTTP transports.
type Server struct {
	mcpServer *srv.MCPServer
	handler   http.Handler
	logger    logSDK.Logger
}

// NewServer constructs an MCP server exposing the Storage Insights tools.
func NewServer(resolver tools.CredentialResolver, executor tools.Executor,
	groups *insights.MetricGroups, settings ToolsSettings, logger logSDK.Logger,
) (*Server, error) {
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

	hooks := newMCPHooks(logger.Named("mcp_hooks"))

	mcpServer := srv.NewMCPServer(
		serverName,
		serverVersion,
		srv.WithToolCapabilities(true),
		srv.WithPromptCapabilities(true),
		srv.WithInstructions("Read-only tools over the IBM Storage Insights REST API: tenant alerts and notifications, storage systems, performance metrics, and component inventories."),
		srv.WithRecovery(),
		srv.WithHooks(hooks),
	)

	s := &Server{
		mcpServer: mcpServer,
		handler:   srv.NewStreamableHTTPServer(mcpServer),
		logger:    logger.Named("mcp"),
	}

	if err := s.registerTools(resolver, executor, groups, settings); err != nil {
		return nil, errors.Wrap(err, "register tools")
	}
	s.registerPrompts()

	return s, nil
}

func (s *Server) registerTools(resolver tools.CredentialResolver, executor tools.Executor,
	groups *insights.MetricGroups, settings ToolsSettings,
) error {
	type toolBuilder struct {
		enabled bool
		build   func() (tools.Tool, error)
	}

	metricBuilder := func(build func(tools.CredentialResolver, tools.Executor, *insights.MetricGroups, logSDK.Logger) (*tools.SystemMetricsTool, error)) func() (tools.Tool, error) {
		return func() (tools.Tool, error) {
			return build(resolver, executor, groups, s.logger)
		}
	}

	builders := []toolBuilder{
		{settings.TenantAlertsEnabled, func() (tools.Tool, error) {
			return tools.NewTenantAlertsTool(resolver, executor, s.logger)
		}},
		{settings.TenantNotificationsEnabled, func() (tools.Tool, error) {
			return tools.NewTenantNotificationsTool(resolver, executor, s.logger)
		}},
		{settings.StorageSystemsEnabled, func() (tools.Tool, error) {
			return tools.NewStorageSystemsTool(resolver, executor, s.logger)
		}},
		{settings.SystemDetailsEnabled, func() (tools.Tool, error) {
			return tools.NewSystemDetailsTool(resolver, executor, s.logger)
		}},
		{settings.SystemNotificationsEnabled, func() (tools.Tool, error) {
			return tools.NewSystemNotificationsTool(resolver, executor, s.logger)
		}},
		{settings.SystemAlertsEnabled, func() (tools.Tool, error) {
			return tools.NewSystemAlertsTool(resolver, executor, s.logger)
		}},
		{settings.SystemComponentsEnabled, func() (tools.Tool, error) {
			return tools.NewSystemComponentsTool(resolver, executor, s.logger)
		}},
		{settings.SystemMetricsEnabled, metricBuilder(tools.NewSystemIORateTool)},
		{settings.SystemMetricsEnabled, metricBuilder(tools.NewSystemDataRateTool)},
		{settings.SystemMetricsEnabled, metricBuilder(tools.NewSystemResponseTimeTool)},
		{settings.SystemMetricsEnabled, metricBuilder(tools.NewSystemTransferSizeTool)},
		{settings.SystemMetricsEnabled, metricBuilder(tools.NewSystemCPUUtilizationTool)},
		{settings.SystemMetricsEnabled, metricBuilder(tools.NewSystemCapacityTool)},
		{settings.SystemMetricsEnabled, metricBuilder(tools.NewSystemCacheEfficiencyTool)},
		{settings.SystemMetricsEnabled, metricBuilder(tools.NewSystemDiskLatencyTool)},
	}

	for _, builder := range builders {
		if !builder.enabled {
			continue
		}

		tool, err := builder.build()
		if err != nil {
			return errors.WithStack(err)
		}

		s.mcpServer.AddTool(tool.Definition(), tool.Handle)
	}

	return nil
}

func (s *Server) registerPrompts() {
	prompt := mcp.NewPrompt(
		"morning_cup_of_coffee",
		mcp.WithPromptDescription("Fetch storage system details, alerts and notifications for one tenant and summarize them as markdown tables."),
		mcp.WithArgument("tenant_id",
			mcp.ArgumentDescription("Tenant id to pass to every tool."),
			mcp.RequiredArgument(),
		),
	)

	s.mcpServer.AddPrompt(prompt, func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		tenantID := req.Params.Arguments["tenant_id"]

		return mcp.NewGetPromptResult(
			"morning cup of coffee",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(
					mcp.RoleUser,
					mcp.NewTextContent("Run fetch_storage_systems, fetch_tenant_alerts and fetch_tenant_notifications in sequence with tenant_id `"+tenantID+"`. Filter the results to systems in error status, critical alerts and critical notifications, and present each as a markdown table."),
				),
			},
		), nil
	})
}

// Handler returns the HTTP handler that should be mounted to serve MCP traffic.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServeStdio serves the MCP protocol over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	if err := srv.ServeStdio(s.mcpServer); err != nil {
		return errors.Wrap(err, "serve stdio")
	}

	return nil
}
