package curated

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

const patternList = `- id: mvvm
  title: Model-View-ViewModel
  tags: [architecture, swiftui]
  summary: Separate view state from view rendering.
  snippet: "final class ViewModel: ObservableObject {}"
- id: coordinator
  title: Coordinator
  tags: [navigation]
  summary: Extract navigation flow from view controllers.
`

const recipeSingle = `id: async-image-cache
title: Cache images loaded with async/await
tags: [concurrency, networking]
summary: Deduplicate in-flight loads with an actor.
steps:
  - Define an actor holding a task dictionary.
  - Return the existing task for a repeated URL.
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadPatterns_ListAndSingleShapes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "architecture.yaml", patternList)
	writeFile(t, dir, "single.yml", "id: solo\ntitle: Solo Pattern\n")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "broken.yaml", "{{invalid")

	files := LoadPatterns([]string{dir, filepath.Join(dir, "missing")})
	total := 0
	for _, f := range files {
		total += len(f.entries)
	}
	assert.Equal(t, 3, total)
}

func TestSearchPatterns_ByTextAndTag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.yaml", patternList)
	roots := []string{dir}

	byText := SearchPatterns(roots, "navigation flow", 5)
	require.Len(t, byText, 1)
	assert.Equal(t, "coordinator", byText[0].ID)

	byTag := SearchPatterns(roots, "swiftui", 5)
	require.Len(t, byTag, 1)
	assert.Equal(t, "mvvm", byTag[0].ID)

	assert.Empty(t, SearchPatterns(roots, "zzz-no-match", 5))
}

func TestSearchPatterns_Limit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.yaml", patternList)

	out := SearchPatterns([]string{dir}, "view", 1)
	assert.Len(t, out, 1)
}

func TestLookupRecipes_ByIDAndText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r.yaml", recipeSingle)
	roots := []string{dir}

	byID := LookupRecipes(roots, "async-image-cache", 5)
	require.Len(t, byID, 1)
	assert.Equal(t, "Cache images loaded with async/await", byID[0].Title)

	byText := LookupRecipes(roots, "actor", 5)
	require.Len(t, byText, 1)

	assert.Empty(t, LookupRecipes(roots, "nope", 5))
}

func TestPatternRecords_IdentityFromEntryID(t *testing.T) {
	repoDir := t.TempDir()
	cacheDir := t.TempDir()
	writeFile(t, repoDir, "p.yaml", patternList)
	writeFile(t, cacheDir, "p.yaml", patternList)

	records := PatternRecords([]string{repoDir, cacheDir})
	require.Len(t, records, 4)

	assert.Equal(t, types.RecordID(types.SourcePattern, "", "mvvm"), records[0].ID)
	assert.Equal(t, records[0].DedupKey(), records[2].DedupKey())
	assert.NotEqual(t, records[0].Path, records[2].Path)
}

func TestRecipeRecords_SkipsEntriesWithoutIdentity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r.yaml", "- title: No ID\n- id: ok\n  title: OK\n")

	records := RecipeRecords([]string{dir})
	require.Len(t, records, 1)
	assert.Equal(t, types.RecordID(types.SourceRecipe, "", "ok"), records[0].ID)
	assert.Equal(t, types.SourceRecipe, records[0].Source)
}
