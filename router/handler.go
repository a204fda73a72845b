// Package router dispatches JSON-RPC requests read from a byte stream. It
// maps the four supported methods onto the tool registry and the backend
// client and translates every failure into the right protocol frame.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/seomcp/seomcp-proxy/jsonrpc"
	"github.com/seomcp/seomcp-proxy/pkg/backend"
	"github.com/seomcp/seomcp-proxy/pkg/catalog"
	"github.com/seomcp/seomcp-proxy/stdio"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "seo-mcp-server"
	serverVersion   = "0.1.0"
)

// ToolInvoker executes one tool call against the backend.
// backend.Client satisfies it.
type ToolInvoker interface {
	InvokeTool(ctx context.Context, name string, arguments json.RawMessage) (string, error)
}

type Handler struct {
	registry *catalog.Registry
	invoker  ToolInvoker
	log      *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the diagnostic logger. If not provided, logs are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

func NewHandler(registry *catalog.Registry, invoker ToolInvoker, opts ...Option) *Handler {
	h := &Handler{
		registry: registry,
		invoker:  invoker,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle runs the framing loop: one JSON-RPC request per input line, one
// response line per request, flushed immediately. Requests are handled
// strictly in sequence; a request's backend call completes before the next
// line is read. Malformed lines answer with a parse-error frame and the loop
// continues. End of stream returns nil.
func (h *Handler) Handle(rw io.ReadWriter) error {
	reader := stdio.NewReader(rw)
	writer := stdio.NewWriter(rw)

	for {
		line, err := reader.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read request: %w", err)
		}

		resp := h.dispatchLine(line)
		if err := writer.WriteMessage(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

// dispatchLine turns one input line into exactly one response. Requests
// without an id still get a response line, without an id field; the upstream
// client of the reference implementation depends on one response per line.
func (h *Handler) dispatchLine(line []byte) *jsonrpc.Response {
	var req jsonrpc.Request
	if err := json.Unmarshal(line, &req); err != nil {
		// A line can be valid JSON yet not a well-formed request, e.g. a
		// non-string method. Only a genuine parse failure earns -32700; the
		// rest keep their id and fall through to method dispatch.
		var loose struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(line, &loose); err != nil {
			return jsonrpc.NewErrorResponse(nil, jsonrpc.ErrorCodeParseError, "Parse error", nil)
		}
		req = jsonrpc.Request{ID: loose.ID}
	}
	return h.dispatch(&req)
}

// dispatch runs the method state machine. A panic anywhere below is
// recovered here, once, and converted to an internal-error frame so a single
// bad request can never take the loop down.
func (h *Handler) dispatch(req *jsonrpc.Request) (resp *jsonrpc.Response) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("dispatch.panic", slog.String("method", req.Method), slog.Any("panic", r))
			resp = jsonrpc.NewErrorResponse(req.ID, jsonrpc.ErrorCodeInternalError, fmt.Sprint(r), nil)
		}
	}()

	ctx := context.Background()

	var result any
	switch req.Method {
	case "initialize":
		h.registry.Tools(ctx)
		result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    serverName,
				"version": serverVersion,
			},
		}
	case "resources/list":
		result = map[string]any{
			"resources": []any{},
		}
	case "tools/list":
		result = map[string]any{
			"tools": h.registry.Tools(ctx),
		}
	case "tools/call":
		callResult, err := h.handleToolCall(ctx, req.Params)
		if err != nil {
			return jsonrpc.NewErrorResponse(req.ID, jsonrpc.ErrorCodeInternalError, err.Error(), nil)
		}
		result = callResult
	default:
		return jsonrpc.NewErrorResponse(req.ID, jsonrpc.ErrorCodeMethodNotFound, "Method not found", nil)
	}

	out, err := jsonrpc.NewResultResponse(req.ID, result)
	if err != nil {
		return jsonrpc.NewErrorResponse(req.ID, jsonrpc.ErrorCodeInternalError, err.Error(), nil)
	}
	return out
}

type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolCall forwards the call payload verbatim and wraps whatever comes
// back as tool result text. A backend failure is domain payload, not a
// protocol failure: the caller gets a successful envelope whose text is an
// error-describing JSON string.
func (h *Handler) handleToolCall(ctx context.Context, rawParams json.RawMessage) (map[string]any, error) {
	var params toolCallParams
	if len(rawParams) > 0 {
		if err := json.Unmarshal(rawParams, &params); err != nil {
			return nil, fmt.Errorf("invalid tools/call params: %w", err)
		}
	}

	text, err := h.invoker.InvokeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		h.log.Warn("tool.call.fail", slog.String("tool", params.Name), slog.String("err", err.Error()))
		text = errorText(err)
	}
	return textResult(text), nil
}

// errorText serializes a backend failure as the tool's result text.
func errorText(err error) string {
	msg := err.Error()
	var berr *backend.Error
	if errors.As(err, &berr) {
		msg = berr.Message
	}
	payload, _ := json.Marshal(map[string]string{"error": msg})
	return string(payload)
}

func textResult(text string) map[string]any {
	return map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": text,
			},
		},
	}
}
