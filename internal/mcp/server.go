// ABOUTME: MCP server setup for the liftlog workout store.
// ABOUTME: Wraps the MCP server around a shared store.Store.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/CiaoGab/LIFTLOG/internal/store"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
	log       logrus.FieldLogger
}

// NewServer creates a new MCP server over st.
func NewServer(st *store.Store, log logrus.FieldLogger) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "liftlog",
			Version: "1.0.0",
		},
		nil,
	)

	if log == nil {
		log = logrus.StandardLogger()
	}

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		log:       log,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("serving MCP over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
