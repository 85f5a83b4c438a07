package tools

import (
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
)

// DefaultDuration is applied when a tool call omits the duration argument.
const DefaultDuration = "12h"

// successResult renders the upstream payload the way clients expect: the raw
// JSON, or "null" for a no-content response.
func successResult(raw []byte) *mcp.CallToolResult {
	payload := "null"
	if raw != nil {
		payload = string(raw)
	}

	return mcp.NewToolResultText("Operation successful: " + payload)
}

// tenantIDArg reads the optional tenant_id argument; empty means the default
// tenant.
func tenantIDArg(req mcp.CallToolRequest) string {
	return req.GetString("tenant_id", "")
}

// durationArg reads the optional duration argument, falling back to
// DefaultDuration.
func durationArg(req mcp.CallToolRequest) string {
	return req.GetString("duration", DefaultDuration)
}

// severityListArg parses the optional severity list argument against the
// closed severity set.
func severityListArg(req mcp.CallToolRequest) ([]insights.Severity, error) {
	values := req.GetStringSlice("severity", nil)
	parsed := make([]insights.Severity, 0, len(values))
	for _, value := range values {
		severity, err := insights.ParseSeverity(value)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, severity)
	}

	return parsed, nil
}

// severityArg parses the optional single severity argument.
func severityArg(req mcp.CallToolRequest) (insights.Severity, bool, error) {
	value := req.GetString("severity", "")
	if value == "" {
		return "", false, nil
	}

	severity, err := insights.ParseSeverity(value)
	if err != nil {
		return "", false, err
	}

	return severity, true, nil
}

// alertParams builds the duration/severity query for alert endpoints.
func alertParams(duration string, severities []insights.Severity) url.Values {
	params := url.Values{}
	if duration != "" {
		params.Set("duration", duration)
	}
	for _, severity := range severities {
		params.Add("severity", string(severity))
	}

	return params
}

// severityItemsSchema describes a severity array element for tool definitions.
func severityItemsSchema() map[string]any {
	values := insights.Severities()
	enum := make([]any, 0, len(values))
	for _, value := range values {
		enum = append(enum, value)
	}

	return map[string]any{
		"type": "string",
		"enum": enum,
	}
}

// metricTypeItemsSchema describes a metric type array element.
func metricTypeItemsSchema() map[string]any {
	return map[string]any{"type": "string"}
}

// tenantIDDescription documents the shared tenant_id argument.
const tenantIDDescription = "Storage Insights tenant id. Defaults to the configured tenant when omitted."
