// ABOUTME: MCP server initialization and configuration for quill.
// ABOUTME: Sets up the server with post and media tools for AI agent access.
package mcp

import (
	"context"
	"fmt"
	"log/slog"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/quill/internal/provider"
	"github.com/2389-research/quill/internal/session"
	"github.com/2389-research/quill/internal/wordpress"
)

// Server wraps the MCP server with the post provider and session state.
type Server struct {
	mcp         *gomcp.Server
	provider    *provider.Provider
	state       *provider.State
	checkpoints *session.Store
	media       wordpress.MediaResource
	logger      *slog.Logger
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithMediaResource enables the media upload tool.
func WithMediaResource(media wordpress.MediaResource) ServerOption {
	return func(s *Server) {
		s.media = media
	}
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates an MCP server exposing the post provider. The session
// state is restored from the checkpoint store before any tool runs.
func NewServer(prov *provider.Provider, state *provider.State, checkpoints *session.Store, opts ...ServerOption) (*Server, error) {
	if prov == nil {
		return nil, fmt.Errorf("provider is required")
	}
	if state == nil {
		return nil, fmt.Errorf("session state is required")
	}
	if checkpoints == nil {
		return nil, fmt.Errorf("checkpoint store is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "quill",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:         mcpServer,
		provider:    prov,
		state:       state,
		checkpoints: checkpoints,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := checkpoints.Restore(state); err != nil {
		return nil, fmt.Errorf("failed to restore session checkpoint: %w", err)
	}

	s.registerPostTools()
	if s.media != nil {
		s.registerMediaTools()
	}

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}

// saveCheckpoint persists the current slot. Failures are logged, not fatal:
// the operation itself already succeeded against the backend.
func (s *Server) saveCheckpoint() {
	if err := s.checkpoints.Save(s.state); err != nil {
		s.logger.Warn("failed to save session checkpoint", "error", err)
	}
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
