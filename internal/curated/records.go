package curated

import "github.com/swiftdocs/swiftdocs-mcp/pkg/types"

// PatternRecords converts every indexable pattern entry under the given
// roots into normalized records. Entries missing an id or title are skipped;
// they cannot carry a stable identity. Record identity is the entry id, not
// the file path, so the same entry shipped in both the repo content dir and
// the cache collapses to one record during dedup.
func PatternRecords(roots []string) []types.Record {
	var records []types.Record
	for _, file := range LoadPatterns(roots) {
		for _, p := range file.entries {
			if p.ID == "" || p.Title == "" {
				continue
			}
			records = append(records, types.Record{
				ID:      types.RecordID(types.SourcePattern, "", p.ID),
				Source:  types.SourcePattern,
				Title:   p.Title,
				Tags:    p.Tags,
				Summary: p.Summary,
				Snippet: p.Snippet,
				Path:    file.path,
			})
		}
	}
	return records
}

// RecipeRecords converts every indexable recipe entry under the given roots
// into normalized records.
func RecipeRecords(roots []string) []types.Record {
	var records []types.Record
	for _, file := range LoadRecipes(roots) {
		for _, r := range file.entries {
			if r.ID == "" || r.Title == "" {
				continue
			}
			records = append(records, types.Record{
				ID:      types.RecordID(types.SourceRecipe, "", r.ID),
				Source:  types.SourceRecipe,
				Title:   r.Title,
				Tags:    r.Tags,
				Summary: r.Summary,
				Snippet: r.Snippet,
				Path:    file.path,
			})
		}
	}
	return records
}
