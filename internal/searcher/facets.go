package searcher

import (
	"sort"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// computeFacets counts facet values over the final truncated result list,
// so the counts describe exactly what the caller is looking at. Each facet
// is sorted lexicographically by value.
func computeFacets(hits []types.Hit) types.Facets {
	sources := make(map[string]int)
	frameworks := make(map[string]int)
	kinds := make(map[string]int)
	topics := make(map[string]int)
	tags := make(map[string]int)

	for _, hit := range hits {
		sources[string(hit.Source)]++
		if hit.Group != "" {
			frameworks[hit.Group]++
		}
		if hit.Kind != "" {
			kinds[hit.Kind]++
		}
		for _, t := range hit.Topics {
			topics[t]++
		}
		for _, t := range hit.Tags {
			tags[t]++
		}
	}

	return types.Facets{
		Sources:    facetCounts(sources),
		Frameworks: facetCounts(frameworks),
		Kinds:      facetCounts(kinds),
		Topics:     facetCounts(topics),
		Tags:       facetCounts(tags),
	}
}

// facetCounts always returns a non-nil slice so empty dimensions
// serialize as [] rather than null.
func facetCounts(counts map[string]int) []types.FacetCount {
	out := make([]types.FacetCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, types.FacetCount{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
