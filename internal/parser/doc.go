// Package parser converts raw documentation content into normalized records.
//
// One parser exists per source format:
//
//   - ParseSymbolDocument: DocC symbol JSON. Each extracted attribute
//     (title, summary, declaration snippet, web URL, framework, kind,
//     topics) follows an explicit priority chain over the document's
//     speculative shape; the first non-empty candidate wins.
//   - ParseGuidelinePage: cached HTML guideline pages, scraped with
//     precompiled expressions rather than a DOM.
//   - BookParser.ParseChapter: Swift book markdown, walked as a goldmark
//     AST. A chapter yields one chapter-level record and one record per H2
//     section with a slugified deep-link anchor.
//
// Parsers never fail a build: malformed input produces zero records and the
// caller moves on to the next file. Curated YAML patterns and recipes are
// handled by the curated package, which owns their entry schema.
package parser
