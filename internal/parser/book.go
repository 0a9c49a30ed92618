package parser

import (
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

// bookWebBase is where chapter deep links point.
const bookWebBase = "https://docs.swift.org/swift-book/documentation/the-swift-programming-language/"

// snippetLanguage selects which fenced code blocks become snippets.
const snippetLanguage = "swift"

// BookParser parses Swift book markdown chapters into normalized records.
// It reuses one goldmark instance across files; the parser itself carries no
// per-file state.
type BookParser struct {
	md goldmark.Markdown
}

// NewBookParser creates a BookParser.
func NewBookParser() *BookParser {
	return &BookParser{md: goldmark.New()}
}

// chapterSection accumulates one H2 section while walking the chapter body.
type chapterSection struct {
	title   string
	summary string
	snippet string
}

// ParseChapter converts one markdown chapter into records: always exactly
// one chapter-level record, plus one record per H2 section that yielded a
// summary or snippet. The chapter grouping comes from the file's containing
// directory segment.
func (p *BookParser) ParseChapter(src []byte, path string) []types.Record {
	chapter := chapterFromPath(path)
	fileSlug := slugify(symbolFromFilename(path))
	chapterURL := bookWebBase + fileSlug

	doc := p.md.Parser().Parse(text.NewReader(src))

	var (
		title     string
		intro     []string
		introDone bool
		snippet   string
		sections  []*chapterSection
		current   *chapterSection
	)

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 1 && title == "" {
				title = nodeText(v, src)
				continue
			}
			introDone = true
			if v.Level == 2 {
				current = &chapterSection{title: nodeText(v, src)}
				sections = append(sections, current)
			}
		case *ast.FencedCodeBlock:
			introDone = true
			if string(v.Language(src)) != snippetLanguage {
				continue
			}
			code := strings.TrimSpace(fencedText(v, src))
			if code == "" {
				continue
			}
			if snippet == "" {
				snippet = clip(code, maxSnippetLen)
			}
			if current != nil && current.snippet == "" {
				current.snippet = clip(code, maxSectionSnippetLen)
			}
		case *ast.Paragraph:
			txt := collapseSpace(nodeText(v, src))
			if txt == "" {
				continue
			}
			if current != nil {
				if current.summary == "" {
					current.summary = clip(txt, maxSectionSummaryLen)
				}
				continue
			}
			if title != "" && !introDone {
				intro = append(intro, txt)
			}
		}
	}

	if title == "" {
		title = symbolFromFilename(path)
	}

	summary := clip(collapseSpace(strings.Join(intro, " ")), maxSummaryLen)
	if summary == "" {
		summary = "Swift Programming Language: " + title
	}

	records := []types.Record{{
		ID:      recordID(types.SourceBookChapter, chapter, symbolFromFilename(path)),
		Source:  types.SourceBookChapter,
		Title:   title,
		Group:   chapter,
		Summary: summary,
		Snippet: snippet,
		URL:     chapterURL,
		Path:    path,
	}}

	for _, sec := range sections {
		if sec.summary == "" && sec.snippet == "" {
			continue
		}
		anchor := slugify(sec.title)
		summary := sec.summary
		if summary == "" {
			summary = title + ": " + sec.title
		}
		records = append(records, types.Record{
			ID:      recordID(types.SourceBookChapter, chapter, symbolFromFilename(path)+"|"+anchor),
			Source:  types.SourceBookChapter,
			Title:   sec.title,
			Group:   chapter,
			Kind:    title, // parent chapter title
			Summary: summary,
			Snippet: sec.snippet,
			URL:     chapterURL + "#" + anchor,
			Path:    path,
		})
	}

	return records
}

// chapterFromPath derives the chapter grouping from the containing
// directory segment, e.g. .../TSPL.docc/LanguageGuide/Protocols.md ->
// "LanguageGuide".
func chapterFromPath(path string) string {
	dir := filepath.Base(filepath.Dir(path))
	if dir == "." || dir == "/" || dir == "" {
		return "General"
	}
	return dir
}

// nodeText extracts the plain text of a node and its children.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// fencedText joins the raw lines of a fenced code block.
func fencedText(v *ast.FencedCodeBlock, src []byte) string {
	var b strings.Builder
	lines := v.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}
