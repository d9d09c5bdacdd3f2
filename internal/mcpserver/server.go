// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes apielements capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/apielements"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `apielements MCP server: converts OpenAPI 3 documents into API Elements and generates example values from their schemas.

Configuration: All defaults are configurable via APIELEMENTS_* environment variables set in your MCP client config.

Key settings:
- APIELEMENTS_CACHE_ENABLED (default: true) - disable document caching entirely
- APIELEMENTS_CACHE_FILE_TTL (default: 15m) - cache TTL for local files
- APIELEMENTS_CACHE_CONTENT_TTL (default: 15m) - cache TTL for inline content
- APIELEMENTS_MAX_ANNOTATIONS (default: 100) - maximum annotations returned by parse
- APIELEMENTS_GENERATE_BODIES (default: true) - generate JSON message bodies from schemas

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "apielements", Version: apielements.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI 3 document into API Elements. Returns title, version, counts of resources, transitions and data structures, and the errors and warnings found, each with its source location and occurrence count. Any error means no API element could be built. Use full=true to also return the refract JSON of the API element; only do this for small documents.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "materialize",
		Description: "Generate a representative example value for a component schema of an OpenAPI 3 document. Returns the value as JSON and the rule that produced it (content, sample, default, nullable or generated). Named types and $refs are resolved against the document's component schemas; recursive schemas are expanded once per path.",
	}, handleMaterialize)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
