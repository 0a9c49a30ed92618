package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/swiftdocs/swiftdocs-mcp/internal/config"
	"github.com/swiftdocs/swiftdocs-mcp/internal/docset"
	"github.com/swiftdocs/swiftdocs-mcp/internal/indexer"
	"github.com/swiftdocs/swiftdocs-mcp/internal/searcher"
)

const (
	// ServerName is the MCP server name
	ServerName = "swiftdocs-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	cfg      *config.Config
	builder  *indexer.Builder
	searcher *searcher.Searcher
	importer *docset.Importer
}

// NewServer creates a new MCP server instance over the given config.
func NewServer(cfg *config.Config) (*Server, error) {
	builder := indexer.New(cfg)

	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		cfg:      cfg,
		builder:  builder,
		searcher: searcher.New(builder),
		importer: docset.New(cfg),
	}
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(hybridSearchTool(), s.handleHybridSearch)
	s.mcp.AddTool(patternSearchTool(), s.handlePatternSearch)
	s.mcp.AddTool(recipeLookupTool(), s.handleRecipeLookup)
	s.mcp.AddTool(evolutionLookupTool(), s.handleEvolutionLookup)
	s.mcp.AddTool(docsetsImportTool(), s.handleDocsetsImport)
	s.mcp.AddTool(indexRebuildTool(), s.handleIndexRebuild)
	s.mcp.AddTool(indexStatusTool(), s.handleIndexStatus)
}
