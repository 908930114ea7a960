package registry

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ServeStdio serves MCP requests over stdin/stdout, one JSON-RPC message
// per line, until the input is exhausted or ctx is cancelled.
func ServeStdio(ctx context.Context, r *Registry) error {
	return serveLines(ctx, r, os.Stdin, os.Stdout)
}

// serveLines is the line transport behind ServeStdio. A line that fails to
// parse gets a parse-error response and does not stop the loop.
func serveLines(ctx context.Context, r *Registry, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req MCPRequest
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			if encErr := encoder.Encode(parseErrorResponse(err)); encErr != nil {
				return fmt.Errorf("encode response: %w", encErr)
			}
			continue
		}
		if err := encoder.Encode(r.HandleRequest(ctx, req)); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}

// ServeHTTP returns a handler for the streamable HTTP transport: one
// JSON-RPC request per POST body, one JSON response per reply.
func ServeHTTP(r *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var mcpReq MCPRequest
		if err := json.NewDecoder(req.Body).Decode(&mcpReq); err != nil {
			writeJSON(w, parseErrorResponse(err))
			return
		}
		writeJSON(w, r.HandleRequest(req.Context(), mcpReq))
	})
}

// ServeSSE returns a handler for the Server-Sent Events transport. The
// client POSTs one JSON-RPC request and receives the response as a single
// SSE message event.
func ServeSSE(r *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var mcpReq MCPRequest
		if err := json.NewDecoder(req.Body).Decode(&mcpReq); err != nil {
			writeEvent(w, flusher, "error", parseErrorResponse(err))
			return
		}
		writeEvent(w, flusher, "message", r.HandleRequest(req.Context(), mcpReq))
	})
}

func parseErrorResponse(err error) MCPResponse {
	return errorResponse(nil, ErrCodeParseError, err.Error())
}

func writeJSON(w http.ResponseWriter, resp MCPResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func writeEvent(w http.ResponseWriter, f http.Flusher, event string, resp MCPResponse) {
	payload, _ := json.Marshal(resp)
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	f.Flush()
}
