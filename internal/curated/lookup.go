package curated

import "strings"

// SearchPatterns returns up to limit patterns matching a free-text query or
// an exact tag value. Matching is case-insensitive substring over the
// title, summary, snippet and tags.
func SearchPatterns(roots []string, queryOrTag string, limit int) []Pattern {
	if limit <= 0 {
		limit = 5
	}
	q := strings.ToLower(queryOrTag)
	var out []Pattern
	for _, file := range LoadPatterns(roots) {
		for _, p := range file.entries {
			if p.ID == "" || p.Title == "" {
				continue
			}
			hay := strings.ToLower(p.Title + " " + p.Summary + " " + p.Snippet + " " + strings.Join(p.Tags, " "))
			if !strings.Contains(hay, q) && !containsFold(p.Tags, q) {
				continue
			}
			out = append(out, p)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// LookupRecipes returns up to limit recipes matching a free-text query or an
// exact recipe id.
func LookupRecipes(roots []string, queryOrID string, limit int) []Recipe {
	if limit <= 0 {
		limit = 5
	}
	q := strings.ToLower(queryOrID)
	var out []Recipe
	for _, file := range LoadRecipes(roots) {
		for _, r := range file.entries {
			if r.ID == "" || r.Title == "" {
				continue
			}
			if strings.ToLower(r.ID) != q {
				hay := strings.ToLower(r.Title + " " + r.Summary + " " + strings.Join(r.Tags, " ") + " " + strings.Join(r.Steps, " "))
				if !strings.Contains(hay, q) {
					continue
				}
			}
			out = append(out, r)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

func containsFold(values []string, lower string) bool {
	for _, v := range values {
		if strings.ToLower(v) == lower {
			return true
		}
	}
	return false
}
