package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// stringArraySchema is the schema fragment for a list-of-strings filter.
func stringArraySchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items":       map[string]interface{}{"type": "string"},
	}
}

// hybridSearchTool returns the tool definition for swift_hybrid_search
func hybridSearchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "swift_hybrid_search",
		Description: "Search Apple symbol documentation, Human Interface Guidelines, curated patterns and recipes, and the Swift book in one ranked result list",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (symbol name, phrase, or keywords)",
				},
				"sources": map[string]interface{}{
					"type":        "array",
					"description": "Restrict results to these sources",
					"items": map[string]interface{}{
						"type": "string",
						"enum": []string{"apple-symbol", "hig-page", "pattern", "recipe", "book-chapter"},
					},
				},
				"frameworks": stringArraySchema("Restrict results to these frameworks (e.g., SwiftUI, Foundation)"),
				"kinds":      stringArraySchema("Restrict results to these symbol or section kinds"),
				"topics":     stringArraySchema("Restrict results to records carrying any of these topics"),
				"tags":       stringArraySchema("Restrict results to records carrying any of these tags"),
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"query"},
		},
	}
}

// patternSearchTool returns the tool definition for swift_pattern_search
func patternSearchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "swift_pattern_search",
		Description: "Search curated Swift design patterns by text or exact tag",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Text to match against pattern titles, summaries and snippets, or an exact tag",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of patterns to return",
					"default":     5,
					"minimum":     1,
					"maximum":     50,
				},
			},
			Required: []string{"query"},
		},
	}
}

// recipeLookupTool returns the tool definition for swift_recipe_lookup
func recipeLookupTool() mcp.Tool {
	return mcp.Tool{
		Name:        "swift_recipe_lookup",
		Description: "Look up curated Swift how-to recipes by id or text",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Recipe id for an exact match, or text to search titles and summaries",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of recipes to return",
					"default":     5,
					"minimum":     1,
					"maximum":     50,
				},
			},
			Required: []string{"query"},
		},
	}
}

// evolutionLookupTool returns the tool definition for swift_evolution_lookup
func evolutionLookupTool() mcp.Tool {
	return mcp.Tool{
		Name:        "swift_evolution_lookup",
		Description: "Look up Swift Evolution proposals by proposal number (SE-0304) or text search",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Proposal id (SE-0304, 0304) or free text to scan proposals for",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of proposals to return for text queries",
					"default":     5,
					"minimum":     1,
					"maximum":     25,
				},
			},
			Required: []string{"query"},
		},
	}
}

// docsetsImportTool returns the tool definition for docsets_import
func docsetsImportTool() mcp.Tool {
	return mcp.Tool{
		Name:        "docsets_import",
		Description: "Import a directory of DocC render JSON into the local documentation cache, or inspect a Dash .docset bundle's catalog",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a DocC JSON directory or a .docset bundle",
				},
			},
			Required: []string{"path"},
		},
	}
}

// indexRebuildTool returns the tool definition for index_rebuild
func indexRebuildTool() mcp.Tool {
	return mcp.Tool{
		Name:        "index_rebuild",
		Description: "Rebuild every search index from the cached content and persist the snapshots",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// indexStatusTool returns the tool definition for index_status
func indexStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "index_status",
		Description: "Report the on-disk state of every persisted search index",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
