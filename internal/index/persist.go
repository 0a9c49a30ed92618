package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// Snapshot file names under the cache's index directory.
const (
	UnifiedSnapshotFile   = "hybrid.json"
	AppleDocsSnapshotFile = "apple-docs.json"
	HIGSnapshotFile       = "hig.json"
	PatternsSnapshotFile  = "patterns.json"
	RecipesSnapshotFile   = "recipes.json"
	BookSnapshotFile      = "book.json"
)

const snapshotVersion = 1

// snapshot is the durable JSON form of an index: the normalized records it
// was built from. Loading rebuilds an equivalent in-memory index from these
// records without touching the original content roots.
type snapshot struct {
	Version       int            `json:"version"`
	DocumentCount int            `json:"documentCount"`
	SavedAt       time.Time      `json:"savedAt"`
	Records       []types.Record `json:"records"`
}

// Save writes the index snapshot to path atomically: the document is written
// to a temp file in the target directory and renamed into place, so a
// concurrent reader sees either the old or the new complete file.
func Save(x *Index, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	snap := snapshot{
		Version:       snapshotVersion,
		DocumentCount: x.Count(),
		SavedAt:       time.Now().UTC(),
		Records:       x.Records(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode index snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reconstructs an index from a snapshot file. Loading fails soft: an
// absent, unreadable or malformed snapshot returns nil so callers fall back
// to an on-demand rebuild.
func Load(path string) *Index {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil
	}
	if len(snap.Records) == 0 {
		return nil
	}
	x, err := FromRecords(snap.Records)
	if err != nil {
		return nil
	}
	return x
}

// Status describes one persisted snapshot file for the read-only
// index-status surface.
type Status struct {
	Path          string `json:"path"`
	Exists        bool   `json:"exists"`
	SizeBytes     int64  `json:"sizeBytes,omitempty"`
	ModTime       string `json:"mtime,omitempty"`
	DocumentCount int    `json:"documentCount,omitempty"`
}

// Stat inspects a snapshot file without loading it into an index. The
// document count is recovered from the file when it parses; a corrupt file
// still reports existence and size.
func Stat(path string) Status {
	st := Status{Path: path}
	info, err := os.Stat(path)
	if err != nil {
		return st
	}
	st.Exists = true
	st.SizeBytes = info.Size()
	st.ModTime = info.ModTime().UTC().Format(time.RFC3339)

	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	var counted struct {
		DocumentCount int `json:"documentCount"`
	}
	if err := json.Unmarshal(data, &counted); err == nil {
		st.DocumentCount = counted.DocumentCount
	}
	return st
}
