package index

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// fieldBoosts orders full-text fields by how strongly a match there should
// count: identity-like fields over descriptive text. Summary and snippet
// participate at base weight, by inclusion only.
var fieldBoosts = []struct {
	field string
	boost float64
}{
	{"title", 5},
	{"group", 2},
	{"tags", 2},
	{"topics", 1.5},
	{"kind", 1},
	{"summary", 1},
	{"snippet", 1},
}

// maxFuzziness caps the edit distance used for fuzzy matching.
const maxFuzziness = 2

// Index is an immutable-once-built full-text index over normalized records.
// Matching runs against an in-memory bleve index; the records themselves are
// kept alongside it so hits return the full stored record without a second
// fetch. Concurrent searches need no coordination; rebuilds create a new
// Index rather than mutating one in place.
type Index struct {
	idx     bleve.Index
	records map[string]types.Record
}

// New creates an empty in-memory index.
func New() (*Index, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory index: %w", err)
	}
	return &Index{
		idx:     idx,
		records: make(map[string]types.Record),
	}, nil
}

// FromRecords builds an index over the given records. Duplicate record ids
// replace the earlier entry; the index never holds two records with one id.
func FromRecords(records []types.Record) (*Index, error) {
	x, err := New()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := x.Add(rec); err != nil {
			_ = x.Close()
			return nil, err
		}
	}
	return x, nil
}

// Add indexes one record. An existing record with the same id is replaced.
func (x *Index) Add(rec types.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	if err := x.idx.Index(rec.ID, searchableFields(rec)); err != nil {
		return fmt.Errorf("failed to index record %s: %w", rec.ID, err)
	}
	x.records[rec.ID] = rec
	return nil
}

// Count returns the number of indexed records.
func (x *Index) Count() int {
	return len(x.records)
}

// Get returns the stored record for an id.
func (x *Index) Get(id string) (types.Record, bool) {
	rec, ok := x.records[id]
	return rec, ok
}

// Records returns every stored record sorted by id, so serialization and
// idempotence comparisons are deterministic regardless of build order.
func (x *Index) Records() []types.Record {
	out := make([]types.Record, 0, len(x.records))
	for _, rec := range x.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Close releases the underlying bleve index.
func (x *Index) Close() error {
	return x.idx.Close()
}

// Search runs fuzzy+prefix matching for the query and returns up to size
// scored hits in engine order (score descending). An empty or
// whitespace-only query matches nothing and is not an error.
func (x *Index) Search(ctx context.Context, queryString string, size int) ([]types.Hit, error) {
	tokens := tokenize(queryString)
	if len(tokens) == 0 || size <= 0 {
		return nil, nil
	}

	req := bleve.NewSearchRequestOptions(buildQuery(queryString, tokens), size, 0, false)
	res, err := x.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]types.Hit, 0, len(res.Hits))
	for _, match := range res.Hits {
		rec, ok := x.records[match.ID]
		if !ok {
			continue
		}
		hits = append(hits, types.Hit{Record: rec, Score: match.Score})
	}
	return hits, nil
}

// buildQuery expands the query into a disjunction of per-field match
// queries (with bounded fuzziness) and per-token prefix queries, each
// carrying its field's boost. Prefix matches count at half weight so an
// exact term beats its own prefix expansion.
func buildQuery(queryString string, tokens []string) query.Query {
	disjuncts := make([]query.Query, 0, len(fieldBoosts)*(1+len(tokens)))
	for _, fb := range fieldBoosts {
		mq := bleve.NewMatchQuery(queryString)
		mq.SetField(fb.field)
		mq.SetBoost(fb.boost)
		mq.SetFuzziness(fuzziness(tokens))
		disjuncts = append(disjuncts, mq)

		for _, tok := range tokens {
			pq := bleve.NewPrefixQuery(tok)
			pq.SetField(fb.field)
			pq.SetBoost(fb.boost * 0.5)
			disjuncts = append(disjuncts, pq)
		}
	}
	return bleve.NewDisjunctionQuery(disjuncts...)
}

// fuzziness derives the tolerated edit distance from the longest query
// token: roughly 10% of its length, capped. Short tokens match exactly or
// by prefix only.
func fuzziness(tokens []string) int {
	longest := 0
	for _, tok := range tokens {
		if len(tok) > longest {
			longest = len(tok)
		}
	}
	f := int(math.Round(float64(longest) * 0.1))
	if f > maxFuzziness {
		f = maxFuzziness
	}
	return f
}

func tokenize(q string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(q)))
}

// searchableFields flattens the record attributes that participate in
// full-text matching. Stored fields (id, url, path) stay out of the index;
// they come back from the record map.
func searchableFields(rec types.Record) map[string]any {
	return map[string]any{
		"title":   rec.Title,
		"group":   rec.Group,
		"kind":    rec.Kind,
		"topics":  strings.Join(rec.Topics, " "),
		"tags":    strings.Join(rec.Tags, " "),
		"summary": rec.Summary,
		"snippet": rec.Snippet,
	}
}
