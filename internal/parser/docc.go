package parser

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// doccWebPrefix is where decoded doc:// URIs point.
const doccWebPrefix = "https://developer.apple.com"

var doccURIPattern = regexp.MustCompile(`(?i)^doc://[^/]+/documentation/(.+)$`)

// ParseSymbolDocument converts one DocC symbol JSON document into a
// normalized record. Every attribute is resolved through an explicit
// priority chain; the first non-empty candidate wins. Malformed input yields
// (zero record, false) rather than an error so builders can skip and
// continue.
func ParseSymbolDocument(data []byte, path string) (types.Record, bool) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Record{}, false
	}

	title := firstNonEmpty(
		stringAt(doc, "title"),
		stringAt(doc, "metadata", "title"),
		stringAt(doc, "identifier", "title"),
	)
	if title == "" {
		title = symbolFromFilename(path)
	}

	framework := firstNonEmpty(
		stringAt(doc, "metadata", "module", "name"),
		stringAt(doc, "module", "name"),
		frameworkFromPath(path),
	)

	kind := firstNonEmpty(
		stringAt(doc, "symbolKind"),
		stringAt(doc, "kind"),
		stringAt(doc, "metadata", "role"),
	)

	summary := firstNonEmpty(
		flattenInline(doc["abstract"]),
		flattenInline(doc["description"]),
		flattenInline(doc["overview"]),
	)

	snippet := extractDeclaration(doc)

	url := firstNonEmpty(
		doccURLToWeb(stringAt(doc, "identifier", "url")),
		urlFromReferences(doc, title),
		stringAt(doc, "url"),
		stringAt(doc, "referenceURL"),
	)

	identity := firstNonEmpty(
		stringAt(doc, "identifier", "url"),
		stringAt(doc, "identifier", "identifier"),
		title,
	)

	rec := types.Record{
		ID:      recordID(types.SourceAppleSymbol, framework, identity),
		Source:  types.SourceAppleSymbol,
		Title:   title,
		Group:   framework,
		Kind:    kind,
		Topics:  extractTopics(doc),
		Summary: clip(summary, maxSummaryLen),
		Snippet: snippet,
		URL:     url,
		Path:    path,
	}
	return rec, true
}

// flattenInline concatenates the text/code/spelling leaves of DocC inline
// content, recursing into children and collapsing whitespace.
func flattenInline(node any) string {
	var parts []string
	collectInline(node, &parts)
	return collapseSpace(strings.Join(parts, " "))
}

func collectInline(node any, parts *[]string) {
	switch v := node.(type) {
	case nil:
	case string:
		*parts = append(*parts, v)
	case []any:
		for _, item := range v {
			collectInline(item, parts)
		}
	case map[string]any:
		for _, key := range []string{"text", "spelling", "code"} {
			if s, ok := v[key].(string); ok && s != "" {
				*parts = append(*parts, s)
			}
		}
		if children, ok := v["children"]; ok {
			collectInline(children, parts)
		}
	}
}

// extractDeclaration resolves a declaration snippet through the DocC
// fallback chain: declaration fragments, then a declarations content
// section, then a literal code listing, then documented variants.
func extractDeclaration(doc map[string]any) string {
	if frags, ok := doc["declarationFragments"].([]any); ok {
		if s := joinFragments(frags); s != "" {
			return s
		}
	}

	if sections, ok := doc["primaryContentSections"].([]any); ok {
		for _, raw := range sections {
			sec, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			secKind := firstNonEmpty(stringAt(sec, "kind"), stringAt(sec, "type"))
			switch secKind {
			case "declarations":
				decls, ok := sec["declarations"].([]any)
				if !ok || len(decls) == 0 {
					continue
				}
				if first, ok := decls[0].(map[string]any); ok {
					if tokens, ok := first["tokens"].([]any); ok {
						if s := joinFragments(tokens); s != "" {
							return s
						}
					}
				}
			case "codeListing":
				if code := stringAt(sec, "code"); code != "" {
					return strings.TrimSpace(code)
				}
			}
		}
	}

	if variants, ok := doc["variants"].([]any); ok {
		for _, raw := range variants {
			if v, ok := raw.(map[string]any); ok {
				if s := extractDeclaration(v); s != "" {
					return s
				}
			}
		}
	}

	return ""
}

// joinFragments concatenates spelling/text of declaration token fragments
// without inserting separators, preserving the declaration's own spacing.
func joinFragments(frags []any) string {
	var b strings.Builder
	for _, raw := range frags {
		frag, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if s := stringAt(frag, "spelling"); s != "" {
			b.WriteString(s)
			continue
		}
		b.WriteString(stringAt(frag, "text"))
	}
	return strings.TrimSpace(b.String())
}

// extractTopics collects the titles of topic and outline sections,
// deduplicated in first-seen order.
func extractTopics(doc map[string]any) []string {
	var topics []string
	seen := make(map[string]bool)
	for _, key := range []string{"topicSections", "sections"} {
		sections, ok := doc[key].([]any)
		if !ok {
			continue
		}
		for _, raw := range sections {
			sec, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			title := stringAt(sec, "title")
			if title == "" || seen[title] {
				continue
			}
			seen[title] = true
			topics = append(topics, title)
		}
	}
	return topics
}

// doccURLToWeb decodes a documentation-scheme URI into its public web URL.
// Already-absolute https URLs pass through; relative documentation paths are
// anchored at the developer site; anything else resolves to empty.
func doccURLToWeb(uri string) string {
	if uri == "" {
		return ""
	}
	if strings.HasPrefix(uri, "https://") {
		return uri
	}
	if m := doccURIPattern.FindStringSubmatch(uri); m != nil {
		return doccWebPrefix + "/documentation/" + m[1]
	}
	if strings.HasPrefix(uri, "documentation/") {
		return doccWebPrefix + "/" + uri
	}
	if strings.HasPrefix(uri, "/documentation/") {
		return doccWebPrefix + uri
	}
	return ""
}

// urlFromReferences resolves a web URL from the document's references map,
// preferring an entry whose title matches the symbol and falling back to any
// reference URL under /documentation/.
func urlFromReferences(doc map[string]any, title string) string {
	refs, ok := doc["references"].(map[string]any)
	if !ok {
		return ""
	}
	titleLower := strings.ToLower(title)

	var fallback string
	for _, raw := range refs {
		ref, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		url := stringAt(ref, "url")
		if url == "" {
			continue
		}
		if strings.ToLower(stringAt(ref, "title")) == titleLower {
			if web := doccURLToWeb(url); web != "" {
				return web
			}
		}
		if fallback == "" && strings.Contains(url, "/documentation/") {
			fallback = url
		}
	}
	return doccURLToWeb(fallback)
}

// frameworkFromPath derives the owning framework from the cache layout
// apple-docs/<framework>/..., the same way imported docsets are grouped.
func frameworkFromPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i := len(parts) - 2; i >= 0; i-- {
		if parts[i] == "apple-docs" && i+1 < len(parts)-1 {
			return parts[i+1]
		}
	}
	return ""
}

func symbolFromFilename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// stringAt walks nested maps along keys and returns the string leaf, or "".
func stringAt(m map[string]any, keys ...string) string {
	var cur any = m
	for _, key := range keys {
		node, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = node[key]
	}
	s, _ := cur.(string)
	return strings.TrimSpace(s)
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
