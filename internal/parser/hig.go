package parser

import (
	"html"
	"regexp"
	"strings"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// Pre-compiled expressions for guideline page scraping.
var (
	titleTag     = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	canonicalTag = regexp.MustCompile(`(?is)<link[^>]+rel=["']canonical["'][^>]+href=["']([^"']+)["']`)
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	anyTag       = regexp.MustCompile(`<[^>]+>`)
)

// ParseGuidelinePage converts one cached HIG HTML page into a normalized
// record: the <title> content as title, the canonical link as URL, and the
// stripped body text bounded to a short summary.
func ParseGuidelinePage(data []byte, path string) types.Record {
	page := string(data)

	var title string
	if m := titleTag.FindStringSubmatch(page); m != nil {
		title = collapseSpace(html.UnescapeString(m[1]))
	}

	var url string
	if m := canonicalTag.FindStringSubmatch(page); m != nil {
		url = strings.TrimSpace(m[1])
	}

	return types.Record{
		ID:      recordID(types.SourceHIGPage, "", path),
		Source:  types.SourceHIGPage,
		Title:   title,
		Summary: clip(StripHTML(page), maxHTMLSummaryLen),
		URL:     url,
		Path:    path,
	}
}

// ParseGuidelineText handles guideline pages mirrored as markdown or plain
// text rather than HTML. The first heading line, if any, becomes the title.
func ParseGuidelineText(data []byte, path string) types.Record {
	text := string(data)

	var title string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			title = collapseSpace(strings.TrimLeft(line, "# "))
			break
		}
	}

	return types.Record{
		ID:      recordID(types.SourceHIGPage, "", path),
		Source:  types.SourceHIGPage,
		Title:   title,
		Summary: clip(collapseSpace(text), maxHTMLSummaryLen),
		Path:    path,
	}
}

// StripHTML removes scripts, styles and all markup, collapsing the
// remaining text into single-spaced prose.
func StripHTML(page string) string {
	page = scriptTag.ReplaceAllString(page, "")
	page = styleTag.ReplaceAllString(page, "")
	page = anyTag.ReplaceAllString(page, " ")
	return collapseSpace(html.UnescapeString(page))
}
