package types

// DefaultSearchLimit is applied when a request does not specify a limit.
const DefaultSearchLimit = 10

// SearchRequest contains parameters for a hybrid search operation. All
// filters are optional; an empty filter slice means "no restriction".
type SearchRequest struct {
	Query string `json:"query"`

	// Sources restricts hits to the named source tags. Default: all.
	Sources []Source `json:"sources,omitempty"`

	// Frameworks, Kinds, Topics and Tags are conjunctive facet filters:
	// a hit must satisfy every active filter, and within one filter it
	// must carry at least one of the allowed values.
	Frameworks []string `json:"frameworks,omitempty"`
	Kinds      []string `json:"kinds,omitempty"`
	Topics     []string `json:"topics,omitempty"`
	Tags       []string `json:"tags,omitempty"`

	Limit int `json:"limit,omitempty"`
}

// Hit is one search result: the stored record plus its relevance score.
type Hit struct {
	Record
	Score float64 `json:"score"`
}

// FacetCount is one distinct facet value and the number of returned hits
// carrying it.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets aggregates the facet dimensions over a (truncated) result list.
type Facets struct {
	Sources    []FacetCount `json:"sources"`
	Frameworks []FacetCount `json:"frameworks"`
	Kinds      []FacetCount `json:"kinds"`
	Topics     []FacetCount `json:"topics"`
	Tags       []FacetCount `json:"tags"`
}

// SearchResponse is the ranked, capped result list plus facet counts.
type SearchResponse struct {
	Results []Hit  `json:"results"`
	Facets  Facets `json:"facets"`
}
