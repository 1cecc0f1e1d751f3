package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"commitkit.dev/commitkit/internal/actions"
)

// ServerName is reported in serverInfo.
const ServerName = "commitkit"

const instructions = "commitkit: git tools for inspecting status, generating conventional commit messages " +
	"with emoji prefixes, committing, and splitting a working tree into several grouped commits."

// Options configures a Server.
type Options struct {
	Version string
	Logger  *slog.Logger
}

// Server answers MCP requests with a Toolset.
type Server struct {
	tools   *Toolset
	version string
	logger  *slog.Logger
}

// NewServer creates a server for service.
func NewServer(service *actions.Service, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &Server{
		tools:   NewToolset(service),
		version: version,
		logger:  logger,
	}
}

// Serve reads requests from r and writes responses to w until r is
// exhausted or ctx is cancelled. Requests in flight are allowed to finish
// before Serve returns.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	transport := NewTransport(r, w)
	var wg sync.WaitGroup
	defer wg.Wait()

	s.logger.Info("server started", "version", s.version)

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for {
			line, err := transport.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				err := <-readErr
				if errors.Is(err, ErrTransportClosed) {
					s.logger.Info("input closed, server stopping")
					return nil
				}
				return err
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				if resp := s.handleMessage(ctx, line); resp != nil {
					if err := transport.WriteMessage(resp); err != nil {
						s.logger.Error("failed to write response", "error", err)
					}
				}
			}()
		}
	}
}

// handleMessage decodes one line and dispatches it. It returns nil for
// notifications. Well-formed JSON that is not a request object, such as a
// batch, is an invalid request rather than a parse error.
// A panic while handling a request becomes an internal error response.
func (s *Server) handleMessage(ctx context.Context, line []byte) (resp *Response) {
	if !json.Valid(line) {
		s.logger.Warn("unparseable message")
		return errorResponse(nullID, newRPCError(CodeParseError, "parse error"))
	}

	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("message is not a request object", "error", err)
		return errorResponse(nullID, newRPCError(CodeInvalidRequest, "invalid request: %v", err))
	}

	id := req.ID
	if req.IsNotification() {
		id = nullID
	}
	if req.JSONRPC != jsonrpcVersion || req.Method == "" {
		return errorResponse(id, newRPCError(CodeInvalidRequest, "invalid request"))
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("request panicked", "method", req.Method, "panic", r)
			resp = nil
			if !req.IsNotification() {
				resp = errorResponse(id, newRPCError(CodeInternalError, "internal error: %v", r))
			}
		}
	}()

	result, rpcErr := s.dispatch(ctx, &req)
	if req.IsNotification() {
		return nil
	}
	if rpcErr != nil {
		s.logger.Warn("request failed", "method", req.Method, "code", rpcErr.Code, "error", rpcErr.Message)
		return errorResponse(id, rpcErr)
	}
	return &Response{JSONRPC: jsonrpcVersion, ID: id, Result: result}
}

func (s *Server) dispatch(ctx context.Context, req *Request) (any, *RPCError) {
	switch req.Method {
	case "initialize":
		var params InitializeParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return nil, newRPCError(CodeInvalidParams, "invalid initialize params: %v", err)
			}
		}
		s.logger.Info("client connected", "client", params.ClientInfo.Name, "client_version", params.ClientInfo.Version,
			"protocol", params.ProtocolVersion)
		return &InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    ServerCapabilities{Tools: &ToolsCapability{}},
			ServerInfo:      Implementation{Name: ServerName, Version: s.version},
			Instructions:    instructions,
		}, nil

	case "notifications/initialized", "notifications/cancelled":
		return nil, nil

	case "ping":
		return struct{}{}, nil

	case "tools/list":
		return &ListToolsResult{Tools: s.tools.Tools()}, nil

	case "tools/call":
		var params CallToolParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, newRPCError(CodeInvalidParams, "invalid tools/call params: %v", err)
		}
		s.logger.Info("tool called", "tool", params.Name)
		result, rpcErr := s.tools.Call(ctx, params.Name, params.Arguments)
		if result != nil && result.IsError {
			s.logger.Warn("tool reported failure", "tool", params.Name)
		}
		return result, rpcErr

	default:
		return nil, newRPCError(CodeMethodNotFound, "method not found: %s", req.Method)
	}
}

func errorResponse(id json.RawMessage, err *RPCError) *Response {
	return &Response{JSONRPC: jsonrpcVersion, ID: id, Error: err}
}
