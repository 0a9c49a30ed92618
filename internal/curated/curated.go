package curated

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pattern is one curated Cocoa/Swift design pattern entry.
type Pattern struct {
	ID        string   `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	Tags      []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary   string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Snippet   string   `yaml:"snippet,omitempty" json:"snippet,omitempty"`
	Takeaways []string `yaml:"takeaways,omitempty" json:"takeaways,omitempty"`
}

// Recipe is one curated how-to entry with ordered steps.
type Recipe struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title" json:"title"`
	Tags          []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary       string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Steps         []string `yaml:"steps,omitempty" json:"steps,omitempty"`
	Snippet       string   `yaml:"snippet,omitempty" json:"snippet,omitempty"`
	Prerequisites []string `yaml:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	References    []string `yaml:"references,omitempty" json:"references,omitempty"`
}

// entryFile pairs decoded entries with the file they came from, so record
// identities can embed the source path.
type entryFile[T any] struct {
	path    string
	entries []T
}

// decodeEntries accepts both file shapes: a YAML list of entries or a
// single entry document. Undecodable input yields nil.
func decodeEntries[T any](data []byte) []T {
	var list []T
	if err := yaml.Unmarshal(data, &list); err == nil && len(list) > 0 {
		return list
	}
	var single T
	if err := yaml.Unmarshal(data, &single); err == nil {
		return []T{single}
	}
	return nil
}

// loadDir reads every YAML file under root. A missing root or an unreadable
// or malformed file contributes nothing; builds never fail on bad content.
func loadDir[T any](root string) []entryFile[T] {
	var files []entryFile[T]
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // missing roots are a normal empty condition
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		if entries := decodeEntries[T](data); entries != nil {
			files = append(files, entryFile[T]{path: path, entries: entries})
		}
		return nil
	})
	return files
}

// LoadPatterns reads all pattern entries under the given roots, in root
// order.
func LoadPatterns(roots []string) []entryFile[Pattern] {
	var all []entryFile[Pattern]
	for _, root := range roots {
		all = append(all, loadDir[Pattern](root)...)
	}
	return all
}

// LoadRecipes reads all recipe entries under the given roots, in root order.
func LoadRecipes(roots []string) []entryFile[Recipe] {
	var all []entryFile[Recipe]
	for _, root := range roots {
		all = append(all, loadDir[Recipe](root)...)
	}
	return all
}
