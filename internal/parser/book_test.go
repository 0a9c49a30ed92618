package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

const sampleChapter = "# Closures\n" +
	"\n" +
	"Closures are self-contained blocks of functionality.\n" +
	"They can capture values from their surrounding context.\n" +
	"\n" +
	"```swift\n" +
	"let greet = { print(\"hello\") }\n" +
	"```\n" +
	"\n" +
	"## Trailing Closures\n" +
	"\n" +
	"A trailing closure is written after the function call's parentheses.\n" +
	"\n" +
	"```swift\n" +
	"numbers.map { $0 * 2 }\n" +
	"```\n" +
	"\n" +
	"## Escaping Closures\n" +
	"\n" +
	"```python\n" +
	"ignored()\n" +
	"```\n"

func TestParseChapter(t *testing.T) {
	p := NewBookParser()
	records := p.ParseChapter([]byte(sampleChapter), "/cache/swift-book/LanguageGuide/Closures.md")
	require.NotEmpty(t, records)

	chapter := records[0]
	assert.Equal(t, types.SourceBookChapter, chapter.Source)
	assert.Equal(t, "Closures", chapter.Title)
	assert.Equal(t, "LanguageGuide", chapter.Group)
	assert.Contains(t, chapter.Summary, "self-contained blocks of functionality")
	assert.Contains(t, chapter.Summary, "capture values")
	assert.Contains(t, chapter.Snippet, "let greet")
	assert.Equal(t, bookWebBase+"closures", chapter.URL)

	require.Len(t, records, 2)
	section := records[1]
	assert.Equal(t, "Trailing Closures", section.Title)
	assert.Equal(t, "Closures", section.Kind)
	assert.Contains(t, section.Summary, "trailing closure is written")
	assert.Contains(t, section.Snippet, "numbers.map")
	assert.Equal(t, bookWebBase+"closures#trailing-closures", section.URL)
}

func TestParseChapter_SectionWithoutContentDropped(t *testing.T) {
	src := "# Title\n\nIntro paragraph.\n\n## Empty Section\n"
	records := NewBookParser().ParseChapter([]byte(src), "/cache/swift-book/Guide/Title.md")
	require.Len(t, records, 1)
	assert.Equal(t, "Title", records[0].Title)
}

func TestParseChapter_NoHeading(t *testing.T) {
	records := NewBookParser().ParseChapter([]byte("Just prose.\n"), "/cache/swift-book/Guide/Orphan.md")
	require.Len(t, records, 1)
	assert.Equal(t, "Orphan", records[0].Title)
	assert.Equal(t, "Swift Programming Language: Orphan", records[0].Summary)
}

func TestParseChapter_ChapterFallsBackToGeneral(t *testing.T) {
	records := NewBookParser().ParseChapter([]byte("# X\n"), "X.md")
	require.Len(t, records, 1)
	assert.Equal(t, "General", records[0].Group)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "trailing-closures", slugify("Trailing Closures"))
	assert.Equal(t, "what-s-new", slugify("What's New?"))
	assert.Equal(t, "", slugify("!!!"))
}

func TestClip_UTF8Safe(t *testing.T) {
	// A rune that ends exactly at the bound is kept intact.
	assert.Equal(t, "aé", clip("aéb", 3))
	// A rune split by the bound is trimmed entirely.
	assert.Equal(t, "a", clip("aéb", 2))
	assert.Equal(t, "h", clip("héllo", 2))
	assert.Equal(t, "abc", clip("abc", 10))

	out := clip("héllo wörld", 3)
	assert.LessOrEqual(t, len(out), 3)
	for _, r := range out {
		assert.NotEqual(t, rune(0xFFFD), r)
	}
}
