package evolution

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Proposal is one Swift Evolution proposal summary.
type Proposal struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Path   string `json:"path"`
}

// DefaultLimit bounds a lookup when the caller does not say otherwise.
const DefaultLimit = 5

var (
	// proposalFile matches proposal filenames: a four-digit number, a
	// dash, then the slug.
	proposalFile = regexp.MustCompile(`^(\d{4})-`)

	// proposalID matches explicit proposal references like SE-0304.
	proposalID = regexp.MustCompile(`(?i)^se-?(\d{4})$`)

	// statusLine matches the bolded status bullet near the top of a
	// proposal, e.g. "* Status: **Implemented (Swift 5.5)**".
	statusLine = regexp.MustCompile(`(?im)^\s*[*-]\s*Status:\s*\*\*(.+?)\*\*`)

	// statusLinePlain catches proposals whose status is not bolded.
	statusLinePlain = regexp.MustCompile(`(?im)^\s*[*-]\s*Status:\s*(.+?)\s*$`)

	titleLine = regexp.MustCompile(`(?m)^#\s+(.+?)\s*$`)
)

// Lookup finds proposals under root matching the query. A query shaped
// like a proposal id (SE-0304, se0304, 0304) resolves that single
// proposal; anything else is a case-insensitive substring scan over the
// proposal files. A missing root yields no results.
func Lookup(root, query string, limit int) ([]Proposal, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	query = strings.TrimSpace(query)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".md") && proposalFile.MatchString(name) {
			files = append(files, filepath.Join(root, name))
		}
	}
	sort.Strings(files)

	if num := idNumber(query); num != "" {
		for _, path := range files {
			if strings.HasPrefix(filepath.Base(path), num+"-") {
				return []Proposal{parseProposal(path)}, nil
			}
		}
		return nil, nil
	}

	needle := strings.ToLower(query)
	var out []Proposal
	for _, path := range files {
		if len(out) >= limit {
			break
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(string(data)), needle) {
			continue
		}
		out = append(out, proposalFromContent(path, string(data)))
	}
	return out, nil
}

// idNumber extracts the four-digit proposal number from an id-shaped
// query, or returns empty when the query is free text.
func idNumber(query string) string {
	if m := proposalID.FindStringSubmatch(query); m != nil {
		return m[1]
	}
	if len(query) == 4 && strings.IndexFunc(query, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		return query
	}
	return ""
}

func parseProposal(path string) Proposal {
	data, err := os.ReadFile(path)
	if err != nil {
		return proposalFromContent(path, "")
	}
	return proposalFromContent(path, string(data))
}

// proposalFromContent assembles a Proposal from the file name and its
// markdown content. The id comes from the filename's number, the title
// from the first top-level heading, and the status from the status
// bullet; each degrades independently when missing.
func proposalFromContent(path, content string) Proposal {
	p := Proposal{Path: path, Status: "Unknown"}

	if m := proposalFile.FindStringSubmatch(filepath.Base(path)); m != nil {
		p.ID = "SE-" + m[1]
	}
	if m := titleLine.FindStringSubmatch(content); m != nil {
		p.Title = strings.TrimSpace(m[1])
	}
	if m := statusLine.FindStringSubmatch(content); m != nil {
		p.Status = strings.TrimSpace(m[1])
	} else if m := statusLinePlain.FindStringSubmatch(content); m != nil {
		p.Status = strings.TrimSpace(m[1])
	}
	return p
}
