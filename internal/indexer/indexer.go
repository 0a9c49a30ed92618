package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/swiftdocs/swiftdocs-mcp/internal/config"
	"github.com/swiftdocs/swiftdocs-mcp/internal/curated"
	"github.com/swiftdocs/swiftdocs-mcp/internal/index"
	"github.com/swiftdocs/swiftdocs-mcp/internal/parser"
	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// Builder coordinates the indexing pipeline: discover -> parse -> dedupe ->
// index. One Builder serves all sources; each build reads the configured
// content roots fresh, so a Builder carries no corpus state between calls.
type Builder struct {
	cfg     *config.Config
	workers int
}

// Result is one built index and its record count. A nil Result means the
// source had no content to index, which is not an error.
type Result struct {
	Index *index.Index
	Count int
}

// New creates a Builder over the given config.
func New(cfg *config.Config) *Builder {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Builder{cfg: cfg, workers: workers}
}

// Build constructs the index for a single source. It returns nil when the
// source's roots are missing or hold no indexable content.
func (b *Builder) Build(ctx context.Context, src types.Source) (*Result, error) {
	records, err := b.collect(ctx, src)
	if err != nil {
		return nil, err
	}
	return buildResult(records)
}

// BuildUnified constructs the cross-source index: every source collected in
// a fixed order, deduplicated, and indexed together. Sources with no content
// simply contribute nothing.
func (b *Builder) BuildUnified(ctx context.Context) (*Result, error) {
	var merged []types.Record
	for _, src := range types.AllSources() {
		records, err := b.collect(ctx, src)
		if err != nil {
			return nil, err
		}
		merged = append(merged, records...)
	}
	return buildResult(merged)
}

// buildResult dedupes the collected records and builds an index over them.
func buildResult(records []types.Record) (*Result, error) {
	records = dedupe(records)
	if len(records) == 0 {
		return nil, nil
	}
	x, err := index.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}
	return &Result{Index: x, Count: x.Count()}, nil
}

// collect gathers the normalized records for one source. File-backed sources
// parse concurrently; curated sources load synchronously since their corpora
// are small.
func (b *Builder) collect(ctx context.Context, src types.Source) ([]types.Record, error) {
	switch src {
	case types.SourceAppleSymbol:
		return b.collectAppleDocs(ctx)
	case types.SourceHIGPage:
		return b.collectHIG(ctx)
	case types.SourcePattern:
		return curated.PatternRecords(b.cfg.PatternRoots()), nil
	case types.SourceRecipe:
		return curated.RecipeRecords(b.cfg.RecipeRoots()), nil
	case types.SourceBookChapter:
		return b.collectBook(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownSource, src)
	}
}

// collectAppleDocs parses every DocC JSON document under the apple-docs
// cache root.
func (b *Builder) collectAppleDocs(ctx context.Context) ([]types.Record, error) {
	files := discoverFiles(b.cfg.AppleDocsRoot(), ".json")
	return b.parseFiles(ctx, files, func(data []byte, path string) []types.Record {
		rec, ok := parser.ParseSymbolDocument(data, path)
		if !ok {
			return nil
		}
		return []types.Record{rec}
	})
}

// collectHIG parses every cached guideline page. HTML pages are scraped;
// markdown mirrors fall back to the plain-text form.
func (b *Builder) collectHIG(ctx context.Context) ([]types.Record, error) {
	files := discoverFiles(b.cfg.HIGRoot(), ".html", ".htm", ".md", ".markdown")
	return b.parseFiles(ctx, files, func(data []byte, path string) []types.Record {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".html" || ext == ".htm" {
			return []types.Record{parser.ParseGuidelinePage(data, path)}
		}
		return []types.Record{parser.ParseGuidelineText(data, path)}
	})
}

// collectBook parses every chapter of the language book mirror. Each file
// yields a chapter record plus one record per substantial section.
func (b *Builder) collectBook(ctx context.Context) ([]types.Record, error) {
	files := discoverFiles(b.cfg.BookRoot(), ".md", ".markdown")
	return b.parseFiles(ctx, files, func(data []byte, path string) []types.Record {
		return parser.NewBookParser().ParseChapter(data, path)
	})
}

// parseFiles runs parse over the files with a bounded worker pool. Files
// that fail to read or parse are skipped; a build survives partial corpus
// damage. Results are ordered by path then record id so the merged record
// set is identical regardless of which worker finished first.
func (b *Builder) parseFiles(ctx context.Context, files []string, parse func(data []byte, path string) []types.Record) ([]types.Record, error) {
	if len(files) == 0 {
		return nil, nil
	}

	semaphore := make(chan struct{}, b.workers)

	var mu sync.Mutex
	records := make([]types.Record, 0, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for _, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			data, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			recs := parse(data, path)
			if len(recs) == 0 {
				return nil
			}
			mu.Lock()
			records = append(records, recs...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Path != records[j].Path {
			return records[i].Path < records[j].Path
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// dedupe drops records whose identity was already seen, keeping the first
// occurrence. Identity is the dedup key rather than the record id, so the
// same logical document reachable through two content roots collapses to
// one record.
func dedupe(records []types.Record) []types.Record {
	seen := make(map[string]struct{}, len(records))
	out := records[:0]
	for _, rec := range records {
		key := rec.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// discoverFiles walks root collecting files with one of the given
// extensions. A missing root yields no files. Hidden directories are
// skipped.
func discoverFiles(root string, exts ...string) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return filepath.SkipAll
			}
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range exts {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	sort.Strings(files)
	return files
}
