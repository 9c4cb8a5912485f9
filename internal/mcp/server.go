// ABOUTME: MCP server setup for the lifespan-impact engine.
// ABOUTME: Wraps MCP server with storage, calculator, and projector.
package mcp

import (
	"context"

	"github.com/harperreed/longevity/internal/actuarial"
	"github.com/harperreed/longevity/internal/engine"
	"github.com/harperreed/longevity/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage and engine access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	calc      *engine.Calculator
	projector *engine.Projector
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "longevity",
			Version: "1.0.0",
		},
		nil,
	)

	calc := engine.NewCalculator(engine.DefaultCoefficients())
	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		calc:      calc,
		projector: engine.NewProjector(actuarial.NewTable(), calc),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
