// Package mcp wires the Storage Insights tools into an MCP server.
package mcp

import (
	gconfig "github.com/Laisky/go-config/v2"
)

// ToolsSettings captures runtime configuration for enabling or disabling individual MCP tools.
type ToolsSettings struct {
	TenantAlertsEnabled        bool
	TenantNotificationsEnabled bool
	StorageSystemsEnabled      bool
	SystemDetailsEnabled       bool
	SystemNotificationsEnabled bool
	SystemAlertsEnabled        bool
	SystemMetricsEnabled       bool
	SystemComponentsEnabled    bool
}

// DefaultToolsSettings enables every tool.
func DefaultToolsSettings() ToolsSettings {
	return ToolsSettings{
		TenantAlertsEnabled:        true,
		TenantNotificationsEnabled: true,
		StorageSystemsEnabled:      true,
		SystemDetailsEnabled:       true,
		SystemNotificationsEnabled: true,
		SystemAlertsEnabled:        true,
		SystemMetricsEnabled:       true,
		SystemComponentsEnabled:    true,
	}
}

// LoadToolsSettingsFromConfig reads the MCP tools configuration and returns a ToolsSettings instance.
// By default, all tools are enabled unless explicitly disabled in the configuration.
func LoadToolsSettingsFromConfig() ToolsSettings {
	return ToolsSettings{
		TenantAlertsEnabled:        boolFromConfig("settings.mcp.tools.tenant_alerts.enabled", true),
		TenantNotificationsEnabled: boolFromConfig("settings.mcp.tools.tenant_notifications.enabled", true),
		StorageSystemsEnabled:      boolFromConfig("settings.mcp.tools.storage_systems.enabled", true),
		SystemDetailsEnabled:       boolFromConfig("settings.mcp.tools.system_details.enabled", true),
		SystemNotificationsEnabled: boolFromConfig("settings.mcp.tools.system_notifications.enabled", true),
		SystemAlertsEnabled:        boolFromConfig("settings.mcp.tools.system_alerts.enabled", true),
		SystemMetricsEnabled:       boolFromConfig("settings.mcp.tools.system_metrics.enabled", true),
		SystemComponentsEnabled:    boolFromConfig("settings.mcp.tools.system_components.enabled", true),
	}
}

// boolFromConfig retrieves a boolean configuration value with a default fallback.
func boolFromConfig(key string, def bool) bool {
	value := gconfig.S.Get(key)
	switch v := value.(type) {
	case nil:
		return def
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch v {
		case "true", "True", "TRUE", "1", "yes", "Yes", "YES":
			return true
		case "false", "False", "FALSE", "0", "no", "No", "NO":
			return false
		default:
			return def
		}
	default:
		return def
	}
}
