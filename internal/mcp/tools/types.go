package tools

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/storage-insights-mcp/internal/insights"
)

// CredentialResolver validates a caller-supplied tenant id and returns the
// credential to use for the call.
type CredentialResolver interface {
	Resolve(tenantID string) (insights.Credential, error)
}

// Executor performs an authenticated GET against the upstream API. A nil
// payload with nil error means the endpoint returned no content.
type Executor interface {
	Get(ctx context.Context, path string, params url.Values, cred insights.Credential) (json.RawMessage, error)
}

// Tool exposes the capabilities required by the MCP server registration lifecycle.
type Tool interface {
	Definition() mcp.Tool
	Handle(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
