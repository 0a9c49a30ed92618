// Package searcher is the query engine over the unified documentation
// index.
//
// A Searcher resolves its index lazily (persisted snapshot first, build
// from content roots as fallback), then answers each query in stages:
// engine candidates with fuzzy and prefix matching, conjunctive facet
// filtering, duplicate collapse, exact-title-first ranking, truncation,
// and facet counts over the final list. Responses are cached in an LRU
// keyed by the canonical request hash; Rebuild invalidates everything.
package searcher
