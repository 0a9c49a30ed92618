// Package index provides the searchable structure over normalized records.
//
// An Index pairs an in-memory bleve full-text index (fuzzy + prefix matching
// with per-field boosts) with the record set it was built from, so a hit
// resolves to its complete stored record without re-reading content. Indexes
// are immutable once built; a rebuild produces a new Index and the caller
// swaps references.
//
// Persistence serializes the record set as a single JSON snapshot per index
// (write-to-temp then rename, so readers never observe a partial file) and
// reconstructs an equivalent index from that snapshot on load without access
// to the original content roots. Loading fails soft: any unreadable or
// malformed snapshot is treated as a cache miss.
package index
