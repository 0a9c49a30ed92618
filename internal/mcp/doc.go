// Package mcp exposes the documentation search engine over the Model
// Context Protocol on stdio. It wires the config, index builders, search
// engine, and docset importer together and maps each capability to one
// tool: hybrid search, pattern and recipe lookup, evolution proposal
// lookup, docset import, and index rebuild/status.
package mcp
