package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/logos"
	"github.com/aretw0/logos/internal/guard"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/aretw0/logos/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// ProcessArgs are the arguments of the process and trace tools.
type ProcessArgs struct {
	Workflow string `mapstructure:"workflow"`
}

// Server wraps a Logos Processor and exposes it as an MCP Server.
type Server struct {
	engine       ports.Processor
	maxInputSize int
	mcpServer    *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithMaxInputSize bounds the workflow size in bytes. Zero uses guard.MaxInputSize.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.maxInputSize = n
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Processor, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("logos-mcp", strings.TrimSpace(logos.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
// It returns when ctx is cancelled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: process
	processTool := mcp.NewTool("process",
		mcp.WithDescription("Run a workflow text through the Logos pipeline and return its fixed-shape report."),
		mcp.WithString("workflow", mcp.Required(), mcp.Description("The text to process")),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(processTool, mcp.NewStructuredToolHandler(s.handleProcess))

	// TOOL: trace
	s.mcpServer.AddTool(mcp.NewTool("trace",
		mcp.WithDescription("Return every intermediate Vector of a run as JSON. Non-finite values are null."),
		mcp.WithString("workflow", mcp.Required(), mcp.Description("The text to process")),
	), s.handleTrace)

	// TOOL: constants
	s.mcpServer.AddTool(mcp.NewTool("constants",
		mcp.WithDescription("Get the constants registry shared by every stage."),
	), s.handleConstants)
}

func (s *Server) decodeArgs(args map[string]interface{}) (ProcessArgs, error) {
	var pa ProcessArgs
	if err := mapstructure.Decode(args, &pa); err != nil {
		return pa, fmt.Errorf("invalid arguments: %w", err)
	}
	if err := guard.CheckSize(pa.Workflow, s.maxInputSize); err != nil {
		return pa, err
	}
	return pa, nil
}

func (s *Server) handleProcess(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Result, error) {
	pa, err := s.decodeArgs(args)
	if err != nil {
		return domain.Result{}, err
	}
	return s.engine.Process(ctx, pa.Workflow), nil
}

func (s *Server) handleTrace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pa, err := s.decodeArgs(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonBytes, err := json.Marshal(s.engine.Trace(ctx, pa.Workflow))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleConstants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(domain.Constants())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
