// Package registry exposes a catalog as an MCP server.
//
// It maps the catalog's operations onto four MCP tools (search_content,
// find_related, recommend, suggest_titles) and handles the MCP
// protocol methods (initialize, tools/list, tools/call) over multiple
// transports (stdio, HTTP, SSE).
//
// Example usage:
//
//	cat := catalog.New(catalog.Options{})
//	// ... register content ...
//
//	reg := registry.New(cat, registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "mindsift",
//	        Version: "1.0.0",
//	    },
//	})
//
//	registry.ServeStdio(ctx, reg)
package registry
