// ABOUTME: MCP server setup for the mood journal.
// ABOUTME: Wraps the MCP server with a storage Repository and a logger.
package mcp

import (
	"context"

	"github.com/harperreed/mood/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	log       *zap.Logger
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "mood",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		log:       logger.Named("mcp"),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("serving mcp over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
