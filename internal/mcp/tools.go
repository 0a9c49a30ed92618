package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/swiftdocs/swiftdocs-mcp/internal/curated"
	"github.com/swiftdocs/swiftdocs-mcp/internal/evolution"
	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

// handleHybridSearch handles the swift_hybrid_search tool invocation.
// An empty query yields an empty result list rather than an error, so
// clients can probe the tool without a query in hand.
func (s *Server) handleHybridSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, _ := args["query"].(string)
	limit := getIntDefault(args, "limit", types.DefaultSearchLimit)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	req := types.SearchRequest{
		Query:      query,
		Frameworks: getStringList(args, "frameworks"),
		Kinds:      getStringList(args, "kinds"),
		Topics:     getStringList(args, "topics"),
		Tags:       getStringList(args, "tags"),
		Limit:      limit,
	}
	for _, src := range getStringList(args, "sources") {
		if !types.ValidSource(types.Source(src)) {
			return nil, newMCPError(ErrorCodeInvalidParams, "unknown source", map[string]interface{}{
				"param": "sources",
				"value": src,
			})
		}
		req.Sources = append(req.Sources, types.Source(src))
	}

	response, err := s.searcher.Search(ctx, req)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handlePatternSearch handles the swift_pattern_search tool invocation
func (s *Server) handlePatternSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, limit, err := queryAndLimit(request, 5)
	if err != nil {
		return nil, err
	}

	patterns := curated.SearchPatterns(s.cfg.PatternRoots(), query, limit)
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"patterns": patterns,
		"count":    len(patterns),
	})), nil
}

// handleRecipeLookup handles the swift_recipe_lookup tool invocation
func (s *Server) handleRecipeLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, limit, err := queryAndLimit(request, 5)
	if err != nil {
		return nil, err
	}

	recipes := curated.LookupRecipes(s.cfg.RecipeRoots(), query, limit)
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"recipes": recipes,
		"count":   len(recipes),
	})), nil
}

// handleEvolutionLookup handles the swift_evolution_lookup tool invocation
func (s *Server) handleEvolutionLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, limit, err := queryAndLimit(request, evolution.DefaultLimit)
	if err != nil {
		return nil, err
	}

	proposals, lookupErr := evolution.Lookup(s.cfg.EvolutionRoot(), query, limit)
	if lookupErr != nil {
		return nil, newMCPError(ErrorCodeInternalError, "proposal lookup failed", map[string]interface{}{
			"error": lookupErr.Error(),
		})
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"proposals": proposals,
		"count":     len(proposals),
	})), nil
}

// handleDocsetsImport handles the docsets_import tool invocation. A
// .docset bundle is inspected through its catalog; any other directory is
// treated as a DocC render JSON archive and copied into the cache.
func (s *Server) handleDocsetsImport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}
	if !filepath.IsAbs(path) {
		return nil, newMCPError(ErrorCodeInvalidParams, "path must be absolute", map[string]interface{}{
			"param": "path",
			"value": path,
		})
	}

	if strings.HasSuffix(path, ".docset") {
		catalog, err := s.importer.InspectDocset(ctx, path)
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "docset inspection failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return mcp.NewToolResultText(formatJSON(catalog)), nil
	}

	report, err := s.importer.ImportDocC(ctx, path)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "import failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(formatJSON(report)), nil
}

// handleIndexRebuild handles the index_rebuild tool invocation
func (s *Server) handleIndexRebuild(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := s.searcher.Rebuild(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "rebuild failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(formatJSON(report)), nil
}

// handleIndexStatus handles the index_status tool invocation
func (s *Server) handleIndexStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"indexDir": s.cfg.IndexDir(),
		"indexes":  s.builder.StatusAll(),
	})), nil
}

// Helper functions

// queryAndLimit extracts the required query string and the bounded limit
// shared by the lookup-style tools.
func queryAndLimit(request mcp.CallToolRequest, defaultLimit int) (string, int, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", 0, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}
	query, ok := args["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return "", 0, newMCPError(ErrorCodeInvalidParams, "query parameter is required", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}
	limit := getIntDefault(args, "limit", defaultLimit)
	if limit < 1 || limit > 50 {
		return "", 0, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 50", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}
	return query, limit, nil
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a response value as indented JSON
func formatJSON(data interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringList extracts a list-of-strings parameter, tolerating a bare
// string as a one-element list.
func getStringList(args map[string]interface{}, key string) []string {
	switch val := args[key].(type) {
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, v := range val {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	}
	return nil
}
