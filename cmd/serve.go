package cmd

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
	"github.com/Laisky/storage-insights-mcp/internal/mcp"
	"github.com/Laisky/storage-insights-mcp/library/log"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "serve",
	Long:  `serve the MCP tools over stdio or http`,
	Args:  gcmd.NoExtraArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func init() {
	serveCMD.Flags().String("transport", "stdio", "`stdio/http`")
	serveCMD.Flags().String("listen", "localhost:8080", "like `localhost:8080`")
	rootCMD.AddCommand(serveCMD)
}

func runServe() {
	settings, err := insights.SettingsFromConfig()
	if err != nil {
		log.Logger.Panic("load insights settings", zap.Error(err))
	}

	groups := insights.EmptyMetricGroups()
	if settings.MetricGroupsFile != "" {
		if groups, err = insights.LoadMetricGroups(settings.MetricGroupsFile); err != nil {
			log.Logger.Panic("load metric groups", zap.Error(err),
				zap.String("path", settings.MetricGroupsFile))
		}
	}

	registry, err := insights.NewRegistry(
		insights.Credential{
			TenantID: settings.DefaultTenantID,
			APIKey:   settings.DefaultAPIKey,
		},
		settings.AdditionalTenants,
		log.Logger,
	)
	if err != nil {
		log.Logger.Panic("new tenant registry", zap.Error(err))
	}

	tokens, err := insights.NewTokenCache(settings.BaseURL, log.Logger)
	if err != nil {
		log.Logger.Panic("new token cache", zap.Error(err))
	}

	client, err := insights.NewClient(settings.BaseURL, tokens, log.Logger)
	if err != nil {
		log.Logger.Panic("new insights client", zap.Error(err))
	}

	server, err := mcp.NewServer(registry, client, groups,
		mcp.LoadToolsSettingsFromConfig(), log.Logger)
	if err != nil {
		log.Logger.Panic("new mcp server", zap.Error(err))
	}

	switch transport := gconfig.Shared.GetString("transport"); transport {
	case "stdio":
		log.Logger.Info("serving mcp over stdio")
		if err := server.ServeStdio(); err != nil {
			log.Logger.Panic("stdio server exit", zap.Error(err))
		}
	case "http":
		addr := gconfig.Shared.GetString("listen")
		log.Logger.Panic("http server exit",
			zap.Error(server.RunHTTP(addr)))
	default:
		log.Logger.Panic("unknown transport", zap.String("transport", transport))
	}
}
