package indexer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/swiftdocs/swiftdocs-mcp/internal/index"
	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// BuiltIndex reports one persisted index after a rebuild.
type BuiltIndex struct {
	Name          string `json:"name"`
	DocumentCount int    `json:"documentCount"`
	Path          string `json:"path"`
}

// RebuildReport summarizes a full rebuild: which indexes were written,
// which sources had nothing to index, and how long the pass took.
type RebuildReport struct {
	Built    []BuiltIndex `json:"built"`
	Skipped  []string     `json:"skipped,omitempty"`
	Duration string       `json:"duration"`
}

// snapshotFiles maps each source to its snapshot file name.
var snapshotFiles = map[types.Source]string{
	types.SourceAppleSymbol: index.AppleDocsSnapshotFile,
	types.SourceHIGPage:     index.HIGSnapshotFile,
	types.SourcePattern:     index.PatternsSnapshotFile,
	types.SourceRecipe:      index.RecipesSnapshotFile,
	types.SourceBookChapter: index.BookSnapshotFile,
}

// SnapshotPath returns the persisted snapshot location for a source.
func (b *Builder) SnapshotPath(src types.Source) string {
	return filepath.Join(b.cfg.IndexDir(), snapshotFiles[src])
}

// UnifiedSnapshotPath returns the persisted location of the cross-source
// index.
func (b *Builder) UnifiedSnapshotPath() string {
	return filepath.Join(b.cfg.IndexDir(), index.UnifiedSnapshotFile)
}

// RebuildAll rebuilds every per-source index plus the unified index from
// the current content roots and persists each non-empty one. Sources with
// no content are reported as skipped; their stale snapshots, if any, are
// left untouched so a transient mount failure does not erase a good cache.
func (b *Builder) RebuildAll(ctx context.Context) (*RebuildReport, error) {
	start := time.Now()
	report := &RebuildReport{}

	for _, src := range types.AllSources() {
		res, err := b.Build(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s index: %w", src, err)
		}
		if res == nil {
			report.Skipped = append(report.Skipped, string(src))
			continue
		}
		path := b.SnapshotPath(src)
		if err := index.Save(res.Index, path); err != nil {
			_ = res.Index.Close()
			return nil, fmt.Errorf("failed to persist %s index: %w", src, err)
		}
		_ = res.Index.Close()
		report.Built = append(report.Built, BuiltIndex{
			Name:          string(src),
			DocumentCount: res.Count,
			Path:          path,
		})
	}

	unified, err := b.BuildUnified(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build unified index: %w", err)
	}
	if unified == nil {
		report.Skipped = append(report.Skipped, "unified")
	} else {
		path := b.UnifiedSnapshotPath()
		if err := index.Save(unified.Index, path); err != nil {
			_ = unified.Index.Close()
			return nil, fmt.Errorf("failed to persist unified index: %w", err)
		}
		_ = unified.Index.Close()
		report.Built = append(report.Built, BuiltIndex{
			Name:          "unified",
			DocumentCount: unified.Count,
			Path:          path,
		})
	}

	report.Duration = time.Since(start).Round(time.Millisecond).String()
	return report, nil
}

// StatusAll reports every snapshot file's on-disk state without loading
// any index.
func (b *Builder) StatusAll() []index.Status {
	statuses := make([]index.Status, 0, len(snapshotFiles)+1)
	statuses = append(statuses, index.Stat(b.UnifiedSnapshotPath()))
	for _, src := range types.AllSources() {
		statuses = append(statuses, index.Stat(b.SnapshotPath(src)))
	}
	return statuses
}
