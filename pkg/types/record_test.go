package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordID_Lowercases(t *testing.T) {
	id := RecordID(SourceAppleSymbol, "SwiftUI", "NavigationStack")
	assert.Equal(t, "apple-symbol|swiftui|navigationstack", id)
}

func TestDedupKey_FallsBackToTitleThenPath(t *testing.T) {
	withID := Record{ID: "apple-symbol||view", Source: SourceAppleSymbol}
	assert.Equal(t, "apple-symbol||apple-symbol||view", withID.DedupKey())

	withTitle := Record{Source: SourceHIGPage, Title: "Buttons"}
	assert.Equal(t, "hig-page||buttons", withTitle.DedupKey())

	withPath := Record{Source: SourceHIGPage, Path: "/cache/hig/buttons.html"}
	assert.Equal(t, "hig-page||/cache/hig/buttons.html", withPath.DedupKey())
}

func TestDedupKey_SameContentDifferentRoots(t *testing.T) {
	a := Record{ID: RecordID(SourcePattern, "", "mvvm"), Source: SourcePattern, Path: "/repo/content/patterns/arch.yaml"}
	b := Record{ID: RecordID(SourcePattern, "", "mvvm"), Source: SourcePattern, Path: "/cache/content/patterns/arch.yaml"}
	assert.Equal(t, a.DedupKey(), b.DedupKey())
}

func TestValidate(t *testing.T) {
	valid := Record{ID: "book-chapter|closures|closures", Source: SourceBookChapter}
	assert.NoError(t, valid.Validate())

	missing := Record{Source: SourceBookChapter}
	assert.ErrorIs(t, missing.Validate(), ErrMissingRecordID)

	unknown := Record{ID: "x", Source: Source("rss-feed")}
	assert.ErrorIs(t, unknown.Validate(), ErrUnknownSource)
}

func TestValidSource(t *testing.T) {
	for _, src := range AllSources() {
		assert.True(t, ValidSource(src), "source %s", src)
	}
	assert.False(t, ValidSource(Source("")))
	assert.False(t, ValidSource(Source("docs")))
}

func TestHasTopicAndTag(t *testing.T) {
	rec := Record{
		Topics: []string{"Essentials", "Views"},
		Tags:   []string{"swiftui", "layout"},
	}
	assert.True(t, rec.HasTopic([]string{"Views"}))
	assert.False(t, rec.HasTopic([]string{"Animations"}))
	assert.True(t, rec.HasTag([]string{"layout", "navigation"}))
	assert.False(t, rec.HasTag(nil))
}
