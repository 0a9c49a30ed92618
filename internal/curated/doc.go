// Package curated owns the YAML-described pattern and recipe corpora: the
// entry schemas, directory loading (list-or-single entry files, repo-local
// roots before cache roots), conversion into normalized records for the
// unified index, and the narrow per-source lookup operations used by the
// pattern and recipe tools.
package curated
