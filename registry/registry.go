package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evergrove/mindsift/catalog"
	"github.com/evergrove/mindsift/content"
	"github.com/evergrove/mindsift/related"
	"github.com/evergrove/mindsift/search"
)

// protocolVersion is the MCP protocol revision reported by initialize.
const protocolVersion = "2024-11-05"

// Tool names exposed by the registry.
const (
	ToolSearch    = "search_content"
	ToolRelated   = "find_related"
	ToolRecommend = "recommend"
	ToolSuggest   = "suggest_titles"
)

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo

	// SearchFields are the record fields searched by the search tool.
	// Defaults to title, summary, and tags.
	SearchFields []string
}

// Registry exposes a catalog's search, related-item, and recommendation
// operations as MCP tools over stdio, HTTP, or SSE transports.
type Registry struct {
	cat    *catalog.Catalog
	config Config
	tools  []mcp.Tool
}

// New creates a Registry serving the given catalog.
func New(cat *catalog.Catalog, cfg Config) *Registry {
	if len(cfg.SearchFields) == 0 {
		cfg.SearchFields = []string{content.FieldTitle, content.FieldSummary, content.FieldTags}
	}
	return &Registry{
		cat:    cat,
		config: cfg,
		tools:  toolDefinitions(),
	}
}

// Tools returns the MCP tool definitions served by this registry.
func (r *Registry) Tools() []mcp.Tool {
	return r.tools
}

// Execute runs the named tool with the given arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case ToolSearch:
		return r.executeSearch(args)
	case ToolRelated:
		return r.executeRelated(args)
	case ToolRecommend:
		return r.executeRecommend(args)
	case ToolSuggest:
		return r.executeSuggest(args)
	default:
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
}

func (r *Registry) executeSearch(args map[string]any) (any, error) {
	query := stringArg(args, "query")
	if strings.TrimSpace(query) == "" {
		return map[string]any{"results": []any{}}, nil
	}

	opts := search.DefaultOptions(r.config.SearchFields...)
	if limit, ok := intArg(args, "limit"); ok {
		opts.MaxResults = limit
	}
	if threshold, ok := floatArg(args, "threshold"); ok {
		opts.FuzzyThreshold = threshold
	}

	results, err := r.cat.Search(query, opts)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(results))
	for _, res := range results {
		out = append(out, map[string]any{
			"id":    res.Record.ID(),
			"kind":  string(res.Record.Kind()),
			"title": res.Record.Title(),
			"score": res.Score,
		})
	}
	return map[string]any{"results": out}, nil
}

func (r *Registry) executeRelated(args map[string]any) (any, error) {
	kind := content.Kind(stringArg(args, "kind"))
	id := stringArg(args, "id")
	limit, ok := intArg(args, "limit")
	if !ok {
		limit = 10
	}

	items, err := r.cat.Discover(kind, id, limit)
	if err != nil {
		return nil, err
	}
	return map[string]any{"items": itemMaps(items)}, nil
}

func (r *Registry) executeRecommend(args map[string]any) (any, error) {
	limit, ok := intArg(args, "limit")
	if !ok {
		limit = 10
	}

	history := parseHistory(args["history"])
	items := r.cat.Recommend(history, limit)
	return map[string]any{"items": itemMaps(items)}, nil
}

func (r *Registry) executeSuggest(args map[string]any) (any, error) {
	limit, ok := intArg(args, "limit")
	if !ok {
		limit = 5
	}
	titles := r.cat.Suggest(stringArg(args, "partial"), limit)
	if titles == nil {
		titles = []string{}
	}
	return map[string]any{"titles": titles}, nil
}

func itemMaps(items []related.Item) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{
			"id":     item.ID,
			"kind":   string(item.Kind),
			"title":  item.Title,
			"score":  item.Score,
			"reason": item.Reason,
		})
	}
	return out
}

func parseHistory(raw any) []content.ViewEvent {
	entries, ok := raw.([]any)
	if !ok {
		return nil
	}

	events := make([]content.ViewEvent, 0, len(entries))
	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		event := content.ViewEvent{
			Kind:     content.Kind(stringArg(fields, "kind")),
			ID:       stringArg(fields, "id"),
			Category: stringArg(fields, "category"),
		}
		if tags, ok := fields["tags"].([]any); ok {
			for _, tag := range tags {
				if s, ok := tag.(string); ok {
					event.Tags = append(event.Tags, s)
				}
			}
		}
		events = append(events, event)
	}
	return events
}

func stringArg(args map[string]any, key string) string {
	if s, ok := args[key].(string); ok {
		return s
	}
	return ""
}

// intArg accepts both JSON numbers (float64) and native ints.
func intArg(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func floatArg(args map[string]any, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func toolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        ToolSearch,
			Description: "Fuzzy search narratives and mental models by free-text query",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query":     map[string]any{"type": "string"},
					"limit":     map[string]any{"type": "integer"},
					"threshold": map[string]any{"type": "number"},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        ToolRelated,
			Description: "Find content related to a narrative or mental model",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"kind":  map[string]any{"type": "string", "enum": []string{"narrative", "mentalModel"}},
					"id":    map[string]any{"type": "string"},
					"limit": map[string]any{"type": "integer"},
				},
				"required": []string{"kind", "id"},
			},
		},
		{
			Name:        ToolRecommend,
			Description: "Recommend content from a viewing history",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"history": map[string]any{"type": "array"},
					"limit":   map[string]any{"type": "integer"},
				},
				"required": []string{"history"},
			},
		},
		{
			Name:        ToolSuggest,
			Description: "Suggest content titles for a partial query",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"partial": map[string]any{"type": "string"},
					"limit":   map[string]any{"type": "integer"},
				},
				"required": []string{"partial"},
			},
		},
	}
}
