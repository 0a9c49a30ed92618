// Package types provides shared type definitions for the swiftdocs MCP server.
//
// The central type is Record, the normalized searchable representation of one
// content unit regardless of its origin: a DocC symbol document, an HTML
// guideline page, a curated pattern or recipe, or a Swift book chapter. The
// source kinds form a tagged union over the shared optional fields: consumers
// switch on the Source discriminant only where behavior actually differs
// (parsing) and treat records uniformly everywhere else (indexing, filtering,
// persistence).
//
//	rec := types.Record{
//	    ID:     "apple-symbol|appkit|nswindow",
//	    Source: types.SourceAppleSymbol,
//	    Title:  "NSWindow",
//	    Group:  "AppKit",
//	    Kind:   "class",
//	}
//
// SearchRequest and SearchResponse describe the hybrid search surface
// consumed by the tool-adapter boundary: a query plus optional facet filters
// in, a ranked bounded hit list plus facet counts out.
package types
