// Package indexer builds search indexes from the configured content roots.
//
// A Builder discovers the files of each documentation source, parses them
// with a bounded worker pool, deduplicates the resulting records by logical
// identity, and hands the merged set to the index package. Builds are
// fail-soft at the file level: a damaged document is skipped rather than
// aborting the corpus. RebuildAll additionally persists every non-empty
// index as a JSON snapshot for fast startup.
package indexer
