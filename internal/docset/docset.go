package docset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/swiftdocs/swiftdocs-mcp/internal/config"
)

// ErrNotDocset is returned when a path does not hold a Dash docset.
var ErrNotDocset = errors.New("not a docset bundle")

// Importer copies external documentation bundles into the cache layout
// the index builders read from.
type Importer struct {
	cfg *config.Config
}

// New creates an Importer over the given config.
func New(cfg *config.Config) *Importer {
	return &Importer{cfg: cfg}
}

// FrameworkCount is the number of documents imported for one framework.
type FrameworkCount struct {
	Framework string `json:"framework"`
	Count     int    `json:"count"`
}

// ImportReport summarizes one DocC archive import.
type ImportReport struct {
	FilesCopied int              `json:"filesCopied"`
	Skipped     int              `json:"skipped,omitempty"`
	Frameworks  []FrameworkCount `json:"frameworks,omitempty"`
}

// ImportDocC copies every DocC render JSON under srcDir into the
// apple-docs cache, grouped by the framework each document declares in
// its metadata. Files that do not parse as JSON are skipped, not fatal.
// A subsequent index rebuild picks the new documents up.
func (im *Importer) ImportDocC(ctx context.Context, srcDir string) (*ImportReport, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read import source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("import source %s is not a directory", srcDir)
	}

	report := &ImportReport{}
	byFramework := make(map[string]int)

	err = filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != srcDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			report.Skipped++
			return nil
		}
		fw := frameworkFromDocument(data)
		if fw == "" {
			report.Skipped++
			return nil
		}

		destDir := filepath.Join(im.cfg.AppleDocsRoot(), fw)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return fmt.Errorf("failed to create framework directory: %w", err)
		}
		if err := os.WriteFile(filepath.Join(destDir, filepath.Base(path)), data, 0o644); err != nil {
			return fmt.Errorf("failed to copy document: %w", err)
		}
		report.FilesCopied++
		byFramework[fw]++
		return nil
	})
	if err != nil {
		return nil, err
	}

	for fw, count := range byFramework {
		report.Frameworks = append(report.Frameworks, FrameworkCount{Framework: fw, Count: count})
	}
	sort.Slice(report.Frameworks, func(i, j int) bool {
		return report.Frameworks[i].Framework < report.Frameworks[j].Framework
	})
	return report, nil
}

// frameworkFromDocument reads the declaring framework from a DocC render
// document's metadata. The document must at least parse as JSON; the
// framework name falls back to the role heading's module when the modules
// list is absent.
func frameworkFromDocument(data []byte) string {
	var doc struct {
		Metadata struct {
			Modules []struct {
				Name string `json:"name"`
			} `json:"modules"`
			Module struct {
				Name string `json:"name"`
			} `json:"module"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ""
	}
	if len(doc.Metadata.Modules) > 0 && doc.Metadata.Modules[0].Name != "" {
		return strings.ToLower(doc.Metadata.Modules[0].Name)
	}
	if doc.Metadata.Module.Name != "" {
		return strings.ToLower(doc.Metadata.Module.Name)
	}
	return "misc"
}

// KindCount is the number of catalog entries of one kind.
type KindCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// Catalog describes the contents of a Dash docset's search catalog.
type Catalog struct {
	Name    string      `json:"name"`
	Path    string      `json:"path"`
	Entries int         `json:"entries"`
	Kinds   []KindCount `json:"kinds,omitempty"`
	Driver  string      `json:"driver"`
}

// InspectDocset reads a Dash docset bundle's SQLite catalog and reports
// what it holds, grouped by entry kind. The catalog is opened read-only;
// inspection never modifies the bundle.
func (im *Importer) InspectDocset(ctx context.Context, docsetPath string) (*Catalog, error) {
	if !strings.HasSuffix(docsetPath, ".docset") {
		return nil, fmt.Errorf("%w: %s", ErrNotDocset, docsetPath)
	}
	idxPath := filepath.Join(docsetPath, "Contents", "Resources", "docSet.dsidx")
	if _, err := os.Stat(idxPath); err != nil {
		return nil, fmt.Errorf("%w: missing catalog at %s", ErrNotDocset, idxPath)
	}

	db, err := sql.Open(DriverName, "file:"+idxPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open docset catalog: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, "SELECT type, COUNT(*) FROM searchIndex GROUP BY type ORDER BY type")
	if err != nil {
		return nil, fmt.Errorf("failed to read docset catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cat := &Catalog{
		Name:   strings.TrimSuffix(filepath.Base(docsetPath), ".docset"),
		Path:   docsetPath,
		Driver: DriverName,
	}
	for rows.Next() {
		var kc KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		cat.Kinds = append(cat.Kinds, kc)
		cat.Entries += kc.Count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read docset catalog: %w", err)
	}
	return cat, nil
}
