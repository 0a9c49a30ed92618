package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

func testRecords() []types.Record {
	return []types.Record{
		{
			ID:      "apple-symbol|swiftui|navigationstack",
			Source:  types.SourceAppleSymbol,
			Title:   "NavigationStack",
			Group:   "SwiftUI",
			Kind:    "struct",
			Summary: "A view that displays a root view and enables navigation.",
		},
		{
			ID:      "hig-page||/cache/hig/navigation.html",
			Source:  types.SourceHIGPage,
			Title:   "Navigation bars",
			Summary: "Navigation bars let people move through an app's hierarchy.",
		},
		{
			ID:      "book-chapter|languageguide|closures",
			Source:  types.SourceBookChapter,
			Title:   "Closures",
			Group:   "LanguageGuide",
			Summary: "Closures are self-contained blocks of functionality.",
			Tags:    []string{"functions"},
		},
	}
}

func mustIndex(t *testing.T, records []types.Record) *Index {
	t.Helper()
	x, err := FromRecords(records)
	require.NoError(t, err)
	t.Cleanup(func() { _ = x.Close() })
	return x
}

func TestFromRecords(t *testing.T) {
	x := mustIndex(t, testRecords())
	assert.Equal(t, 3, x.Count())

	rec, ok := x.Get("book-chapter|languageguide|closures")
	require.True(t, ok)
	assert.Equal(t, "Closures", rec.Title)

	_, ok = x.Get("missing")
	assert.False(t, ok)
}

func TestFromRecords_DuplicateIDReplaces(t *testing.T) {
	records := testRecords()
	dup := records[0]
	dup.Title = "Replacement"
	x := mustIndex(t, append(records, dup))

	assert.Equal(t, 3, x.Count())
	rec, _ := x.Get(dup.ID)
	assert.Equal(t, "Replacement", rec.Title)
}

func TestAdd_RejectsInvalidRecord(t *testing.T) {
	x, err := New()
	require.NoError(t, err)
	defer func() { _ = x.Close() }()

	err = x.Add(types.Record{Source: types.SourceRecipe})
	assert.ErrorIs(t, err, types.ErrMissingRecordID)

	err = x.Add(types.Record{ID: "x", Source: types.Source("bad")})
	assert.ErrorIs(t, err, types.ErrUnknownSource)
}

func TestSearch_EmptyQueryMatchesNothing(t *testing.T) {
	x := mustIndex(t, testRecords())

	hits, err := x.Search(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearch_TitleOutranksSummary(t *testing.T) {
	x := mustIndex(t, testRecords())

	hits, err := x.Search(context.Background(), "closures", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Closures", hits[0].Title)
	assert.Greater(t, hits[0].Score, 0.0)
}

func TestSearch_PrefixMatch(t *testing.T) {
	x := mustIndex(t, testRecords())

	hits, err := x.Search(context.Background(), "navig", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	for _, hit := range hits {
		assert.Contains(t, []string{"NavigationStack", "Navigation bars"}, hit.Title)
	}
}

func TestSearch_FuzzyMatch(t *testing.T) {
	x := mustIndex(t, testRecords())

	hits, err := x.Search(context.Background(), "navigatian", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, hits)
}

func TestSearch_SizeBound(t *testing.T) {
	x := mustIndex(t, testRecords())

	hits, err := x.Search(context.Background(), "navigation", 1)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestRecords_SortedByID(t *testing.T) {
	x := mustIndex(t, testRecords())

	out := x.Records()
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.Less(t, out[i-1].ID, out[i].ID)
	}
}

func TestFuzziness(t *testing.T) {
	assert.Equal(t, 0, fuzziness([]string{"api"}))
	assert.Equal(t, 1, fuzziness([]string{"navigation"}))
	assert.Equal(t, 2, fuzziness([]string{"averyverylongquerytoken"}))
}
