package types

import "strings"

// Source identifies the origin category of a record.
type Source string

// Source tags for the five supported content origins.
const (
	SourceAppleSymbol Source = "apple-symbol" // DocC symbol documentation JSON
	SourceHIGPage     Source = "hig-page"     // Human Interface Guidelines HTML page
	SourcePattern     Source = "pattern"      // curated pattern YAML entry
	SourceRecipe      Source = "recipe"       // curated recipe YAML entry
	SourceBookChapter Source = "book-chapter" // Swift book chapter or section
)

// AllSources lists every known source tag in a stable order.
func AllSources() []Source {
	return []Source{SourceAppleSymbol, SourceHIGPage, SourcePattern, SourceRecipe, SourceBookChapter}
}

// ValidSource reports whether s is one of the known source tags.
func ValidSource(s Source) bool {
	switch s {
	case SourceAppleSymbol, SourceHIGPage, SourcePattern, SourceRecipe, SourceBookChapter:
		return true
	}
	return false
}

// Record is the normalized representation of one content unit, regardless of
// which source produced it. Records are created during an index build, folded
// into a search index, and never mutated afterwards.
type Record struct {
	// ID is the stable unique key within the record's source.
	ID string `json:"id"`

	// Source tags the origin category. Immutable once created.
	Source Source `json:"source"`

	// Title is the human-readable title or symbol name, used for
	// exact-match boosting at query time.
	Title string `json:"title,omitempty"`

	// Group is the higher-level grouping: framework name for symbols,
	// chapter name for book sections.
	Group string `json:"group,omitempty"`

	// Kind is the sub-classification: symbol kind, topic, or section role.
	Kind string `json:"kind,omitempty"`

	// Topics and Tags are label sets used for facet filtering.
	Topics []string `json:"topics,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	// Summary is a short descriptive excerpt, bounded at parse time.
	Summary string `json:"summary,omitempty"`

	// Snippet is an optional short code excerpt.
	Snippet string `json:"snippet,omitempty"`

	// URL is the canonical web URL for the record, when one exists.
	URL string `json:"url,omitempty"`

	// Path is the filesystem locator the record was derived from. Used for
	// dedup tie-breaking and debugging, never as primary identity.
	Path string `json:"path,omitempty"`
}

// RecordID builds the canonical record identity key for a source:
// source|group|identity, lowercased. Group may be empty.
func RecordID(source Source, group, identity string) string {
	return strings.ToLower(string(source) + "|" + group + "|" + identity)
}

// DedupKey returns the per-source deduplication key used when merging
// records from multiple content roots: source|group|identity, lowercased.
// Identity falls back from ID to Title to Path so equivalent content
// reachable via two roots collapses to one record.
func (r Record) DedupKey() string {
	identity := r.ID
	if identity == "" {
		identity = r.Title
	}
	if identity == "" {
		identity = r.Path
	}
	return strings.ToLower(string(r.Source) + "|" + r.Group + "|" + identity)
}

// Validate checks the two required attributes.
func (r Record) Validate() error {
	if r.ID == "" {
		return ErrMissingRecordID
	}
	if !ValidSource(r.Source) {
		return ErrUnknownSource
	}
	return nil
}

// HasTopic reports whether the record carries any of the given topics.
func (r Record) HasTopic(topics []string) bool {
	return intersects(r.Topics, topics)
}

// HasTag reports whether the record carries any of the given tags.
func (r Record) HasTag(tags []string) bool {
	return intersects(r.Tags, tags)
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
