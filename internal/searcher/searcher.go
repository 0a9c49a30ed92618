package searcher

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/swiftdocs/swiftdocs-mcp/internal/index"
	"github.com/swiftdocs/swiftdocs-mcp/internal/indexer"
	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

const (
	// candidateFloor is the minimum number of engine hits fetched before
	// filtering and dedup, so narrow filters still find matches deep in
	// the ranking.
	candidateFloor = 50

	// cacheSize bounds the query cache; least recently used entries are
	// evicted automatically.
	cacheSize = 1000

	// cacheTTL bounds how long a cached response is served before the
	// query runs again.
	cacheTTL = 5 * time.Minute
)

// cacheEntry is a cached search response with its expiration time.
type cacheEntry struct {
	response  *types.SearchResponse
	expiresAt time.Time
}

// Searcher answers hybrid queries over the unified index. The index is
// resolved lazily: a persisted snapshot when one loads, otherwise a build
// from the content roots. Resolved indexes and recent query responses are
// cached until Rebuild invalidates them.
type Searcher struct {
	builder *indexer.Builder

	mu      sync.RWMutex
	unified *index.Index

	cache *lru.Cache[[32]byte, *cacheEntry]
}

// New creates a Searcher over the given builder.
func New(builder *indexer.Builder) *Searcher {
	cache, err := lru.New[[32]byte, *cacheEntry](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(fmt.Sprintf("failed to create query cache: %v", err))
	}
	return &Searcher{builder: builder, cache: cache}
}

// Search runs one hybrid query: engine candidates, conjunctive facet
// filtering, dedup, exact-title-first ranking, truncation to the limit,
// then facet counts over what remains. An empty query returns an empty
// response rather than an error.
func (s *Searcher) Search(ctx context.Context, req types.SearchRequest) (*types.SearchResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = types.DefaultSearchLimit
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return &types.SearchResponse{Results: []types.Hit{}, Facets: computeFacets(nil)}, nil
	}

	key := requestKey(query, req, limit)
	if entry, ok := s.cache.Get(key); ok && time.Now().Before(entry.expiresAt) {
		return entry.response, nil
	}

	idx, err := s.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}

	candidates := limit * 5
	if candidates < candidateFloor {
		candidates = candidateFloor
	}
	hits, err := idx.Search(ctx, query, candidates)
	if err != nil {
		return nil, err
	}

	hits = filterHits(hits, req)
	hits = dedupeHits(hits)
	rankHits(hits, query)
	if len(hits) > limit {
		hits = hits[:limit]
	}

	response := &types.SearchResponse{
		Results: hits,
		Facets:  computeFacets(hits),
	}
	s.cache.Add(key, &cacheEntry{
		response:  response,
		expiresAt: time.Now().Add(cacheTTL),
	})
	return response, nil
}

// Rebuild rebuilds and persists every index from the current content
// roots, then drops the resolved index and all cached responses so the
// next query sees fresh data.
func (s *Searcher) Rebuild(ctx context.Context) (*indexer.RebuildReport, error) {
	report, err := s.builder.RebuildAll(ctx)
	if err != nil {
		return nil, err
	}

	// The old index is not closed here: in-flight searches may still hold
	// the pointer resolved before the rebuild. It is immutable and memory
	// only, so dropping the reference is enough.
	s.mu.Lock()
	s.unified = nil
	s.mu.Unlock()
	s.cache.Purge()

	return report, nil
}

// ensureIndex returns the unified index, resolving it on first use: load
// the persisted snapshot if it is usable, otherwise build from the content
// roots and persist the result for next startup. A corpus with no content
// resolves to an empty index.
func (s *Searcher) ensureIndex(ctx context.Context) (*index.Index, error) {
	s.mu.RLock()
	idx := s.unified
	s.mu.RUnlock()
	if idx != nil {
		return idx, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unified != nil {
		return s.unified, nil
	}

	path := s.builder.UnifiedSnapshotPath()
	if loaded := index.Load(path); loaded != nil {
		s.unified = loaded
		return s.unified, nil
	}

	res, err := s.builder.BuildUnified(ctx)
	if err != nil {
		return nil, err
	}
	if res == nil {
		empty, err := index.New()
		if err != nil {
			return nil, err
		}
		s.unified = empty
		return s.unified, nil
	}
	if err := index.Save(res.Index, path); err != nil {
		// Persisting is an optimization; the built index still serves.
		log.Printf("failed to persist unified index: %v", err)
	}
	s.unified = res.Index
	return s.unified, nil
}

// filterHits applies the request's facet filters conjunctively: a hit must
// match every populated filter, and within one filter any listed value
// matches. Comparisons are case-insensitive.
func filterHits(hits []types.Hit, req types.SearchRequest) []types.Hit {
	if len(req.Sources) == 0 && len(req.Frameworks) == 0 && len(req.Kinds) == 0 &&
		len(req.Topics) == 0 && len(req.Tags) == 0 {
		return hits
	}

	out := hits[:0]
	for _, hit := range hits {
		if len(req.Sources) > 0 && !matchSource(hit.Source, req.Sources) {
			continue
		}
		if len(req.Frameworks) > 0 && !matchValue(hit.Group, req.Frameworks) {
			continue
		}
		if len(req.Kinds) > 0 && !matchValue(hit.Kind, req.Kinds) {
			continue
		}
		if len(req.Topics) > 0 && !matchAny(hit.Topics, req.Topics) {
			continue
		}
		if len(req.Tags) > 0 && !matchAny(hit.Tags, req.Tags) {
			continue
		}
		out = append(out, hit)
	}
	return out
}

func matchSource(have types.Source, want []types.Source) bool {
	for _, w := range want {
		if strings.EqualFold(string(have), string(w)) {
			return true
		}
	}
	return false
}

func matchValue(have string, want []string) bool {
	for _, w := range want {
		if strings.EqualFold(have, w) {
			return true
		}
	}
	return false
}

func matchAny(have, want []string) bool {
	for _, h := range have {
		if matchValue(h, want) {
			return true
		}
	}
	return false
}

// dedupeHits collapses hits describing the same logical document: same
// source and same title (or same record id when untitled). The first hit
// in engine order wins, keeping the higher-scored duplicate.
func dedupeHits(hits []types.Hit) []types.Hit {
	seen := make(map[string]struct{}, len(hits))
	out := hits[:0]
	for _, hit := range hits {
		key := string(hit.Source) + "|" + strings.ToLower(hit.Title)
		if hit.Title == "" {
			key = hit.ID
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, hit)
	}
	return out
}

// rankHits orders hits for presentation: exact title matches first, then
// score descending, with record id as the final tie-break so equal-scored
// hits come back in one deterministic order.
func rankHits(hits []types.Hit, query string) {
	sort.SliceStable(hits, func(i, j int) bool {
		ei, ej := strings.EqualFold(hits[i].Title, query), strings.EqualFold(hits[j].Title, query)
		if ei != ej {
			return ei
		}
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})
}

// requestKey hashes the canonical form of a request for the query cache.
func requestKey(query string, req types.SearchRequest, limit int) [32]byte {
	var b strings.Builder
	b.WriteString(strings.ToLower(query))
	b.WriteString("\x00")
	for _, src := range sortedSources(req.Sources) {
		b.WriteString(src)
		b.WriteString(",")
	}
	b.WriteString("\x00")
	for _, part := range [][]string{req.Frameworks, req.Kinds, req.Topics, req.Tags} {
		for _, v := range sortedLower(part) {
			b.WriteString(v)
			b.WriteString(",")
		}
		b.WriteString("\x00")
	}
	fmt.Fprintf(&b, "%d", limit)
	return sha256.Sum256([]byte(b.String()))
}

func sortedSources(sources []types.Source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = strings.ToLower(string(s))
	}
	sort.Strings(out)
	return out
}

func sortedLower(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	sort.Strings(out)
	return out
}
