// ABOUTME: MCP server setup for the trainer store.
// ABOUTME: Wraps the MCP server with repository and AI trainer access.
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/trainer/internal/ai"
	"github.com/harperreed/trainer/internal/storage"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      *storage.Repository
	trainer   *ai.Trainer
	now       func() time.Time
}

// NewServer creates a new MCP server over repo. trainer may be nil, in which
// case get_recommendations only serves the cache.
func NewServer(repo *storage.Repository, trainer *ai.Trainer) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "trainer",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		trainer:   trainer,
		now:       time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
