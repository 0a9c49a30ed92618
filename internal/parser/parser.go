package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// Excerpt bounds shared across parsers. These are defaults tuned for hit
// payload size, not compatibility constants.
const (
	maxSummaryLen        = 500
	maxHTMLSummaryLen    = 400
	maxSectionSummaryLen = 300
	maxSnippetLen        = 500
	maxSectionSnippetLen = 400
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	slugStrip     = regexp.MustCompile(`[^a-z0-9]+`)
)

// recordID builds the stable per-source identity key.
func recordID(source types.Source, group, identity string) string {
	return types.RecordID(source, group, identity)
}

// collapseSpace folds any whitespace run into a single space and trims.
func collapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// clip bounds s to at most n bytes without splitting a UTF-8 sequence. A
// rune that fits completely within the bound is kept.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size != 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut
}

// slugify turns a heading title into a URL anchor: lowercase with
// alphanumeric runs joined by hyphens.
func slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
