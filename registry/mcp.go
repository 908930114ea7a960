package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPRequest is one incoming JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse is the reply to one request.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// HandleRequest dispatches one MCP request. Requests carrying a jsonrpc
// version other than "2.0" are rejected before dispatch.
func (r *Registry) HandleRequest(ctx context.Context, req MCPRequest) MCPResponse {
	if req.JSONRPC != "2.0" {
		return errorResponse(req.ID, ErrCodeInvalidRequest,
			fmt.Sprintf("%s: jsonrpc version %q, want \"2.0\"", ErrInvalidRequest, req.JSONRPC))
	}

	switch req.Method {
	case "initialize":
		return r.initializeResponse(req.ID)
	case "tools/list":
		return r.toolsListResponse(req.ID)
	case "tools/call":
		return r.toolsCallResponse(ctx, req.ID, req.Params)
	default:
		return errorResponse(req.ID, ErrCodeMethodNotFound,
			fmt.Sprintf("method %s not found", req.Method))
	}
}

func (r *Registry) initializeResponse(id any) MCPResponse {
	return okResponse(id, map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo": map[string]any{
			"name":    r.config.ServerInfo.Name,
			"version": r.config.ServerInfo.Version,
		},
	})
}

func (r *Registry) toolsListResponse(id any) MCPResponse {
	tools := make([]map[string]any, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, toolMap(tool))
	}
	return okResponse(id, map[string]any{"tools": tools})
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (r *Registry) toolsCallResponse(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var call toolsCallParams
	if err := json.Unmarshal(params, &call); err != nil {
		return errorResponse(id, ErrCodeInvalidParams, err.Error())
	}

	result, err := r.Execute(ctx, call.Name, call.Arguments)
	if err != nil {
		code := ErrCodeToolExecFailed
		if errors.Is(err, ErrToolNotFound) {
			code = ErrCodeToolNotFound
		}
		return errorResponse(id, code, err.Error())
	}
	return okResponse(id, result)
}

func toolMap(tool mcp.Tool) map[string]any {
	return map[string]any{
		"name":        tool.Name,
		"description": tool.Description,
		"inputSchema": tool.InputSchema,
	}
}

func okResponse(id, result any) MCPResponse {
	return MCPResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id any, code int, message string) MCPResponse {
	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &MCPError{Code: code, Message: message},
	}
}
