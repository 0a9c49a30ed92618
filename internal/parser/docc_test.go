package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftdocs/swiftdocs-mcp/pkg/types"
)

const sampleSymbolJSON = `{
	"metadata": {
		"title": "NavigationStack",
		"module": {"name": "SwiftUI"},
		"role": "symbol"
	},
	"identifier": {"url": "doc://com.apple.SwiftUI/documentation/SwiftUI/NavigationStack"},
	"abstract": [
		{"type": "text", "text": "A view that displays a root view and"},
		{"type": "text", "text": "enables you to present additional views."}
	],
	"primaryContentSections": [
		{
			"kind": "declarations",
			"declarations": [
				{"tokens": [
					{"spelling": "struct", "kind": "keyword"},
					{"spelling": " "},
					{"spelling": "NavigationStack", "kind": "identifier"}
				]}
			]
		}
	],
	"topicSections": [
		{"title": "Creating a navigation stack"},
		{"title": "Managing state"},
		{"title": "Creating a navigation stack"}
	]
}`

func TestParseSymbolDocument(t *testing.T) {
	rec, ok := ParseSymbolDocument([]byte(sampleSymbolJSON), "/cache/apple-docs/swiftui/navigationstack.json")
	require.True(t, ok)

	assert.Equal(t, "NavigationStack", rec.Title)
	assert.Equal(t, "SwiftUI", rec.Group)
	assert.Equal(t, types.SourceAppleSymbol, rec.Source)
	assert.Equal(t, "symbol", rec.Kind)
	assert.Equal(t, "A view that displays a root view and enables you to present additional views.", rec.Summary)
	assert.Equal(t, "struct NavigationStack", rec.Snippet)
	assert.Equal(t, "https://developer.apple.com/documentation/SwiftUI/NavigationStack", rec.URL)
	assert.Equal(t, []string{"Creating a navigation stack", "Managing state"}, rec.Topics)
	assert.Equal(t, "apple-symbol|swiftui|doc://com.apple.swiftui/documentation/swiftui/navigationstack", rec.ID)
}

func TestParseSymbolDocument_Malformed(t *testing.T) {
	_, ok := ParseSymbolDocument([]byte("not json"), "x.json")
	assert.False(t, ok)

	_, ok = ParseSymbolDocument([]byte(`["top-level array"]`), "x.json")
	assert.False(t, ok)
}

func TestParseSymbolDocument_FallbacksFromPath(t *testing.T) {
	rec, ok := ParseSymbolDocument([]byte(`{}`), "/cache/apple-docs/foundation/urlsession.json")
	require.True(t, ok)

	assert.Equal(t, "urlsession", rec.Title)
	assert.Equal(t, "foundation", rec.Group)
	assert.Empty(t, rec.URL)
	assert.Empty(t, rec.Topics)
}

func TestParseSymbolDocument_CodeListingDeclaration(t *testing.T) {
	doc := `{
		"title": "Example",
		"primaryContentSections": [
			{"kind": "codeListing", "code": "let x = 1\nprint(x)"}
		]
	}`
	rec, ok := ParseSymbolDocument([]byte(doc), "example.json")
	require.True(t, ok)
	assert.Equal(t, "let x = 1\nprint(x)", rec.Snippet)
}

func TestParseSymbolDocument_URLFromReferences(t *testing.T) {
	doc := `{
		"title": "Button",
		"references": {
			"doc://x/documentation/SwiftUI/Button": {
				"title": "Button",
				"url": "/documentation/swiftui/button"
			}
		}
	}`
	rec, ok := ParseSymbolDocument([]byte(doc), "button.json")
	require.True(t, ok)
	assert.Equal(t, "https://developer.apple.com/documentation/swiftui/button", rec.URL)
}

func TestParseSymbolDocument_SummaryBound(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 100)
	doc := `{"title": "Long", "abstract": [{"text": "` + long + `"}]}`
	rec, ok := ParseSymbolDocument([]byte(doc), "long.json")
	require.True(t, ok)
	assert.LessOrEqual(t, len(rec.Summary), 500)
}

func TestDoccURLToWeb(t *testing.T) {
	cases := map[string]string{
		"doc://com.apple.SwiftUI/documentation/SwiftUI/View": "https://developer.apple.com/documentation/SwiftUI/View",
		"https://developer.apple.com/documentation/swiftui":  "https://developer.apple.com/documentation/swiftui",
		"documentation/swiftui/view":                         "https://developer.apple.com/documentation/swiftui/view",
		"/documentation/swiftui/view":                        "https://developer.apple.com/documentation/swiftui/view",
		"doc://com.apple.SwiftUI/tutorials/SwiftUI":          "",
		"": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, doccURLToWeb(in), "input %q", in)
	}
}

func TestFrameworkFromPath(t *testing.T) {
	assert.Equal(t, "swiftui", frameworkFromPath("/cache/apple-docs/swiftui/view.json"))
	assert.Equal(t, "uikit", frameworkFromPath("/cache/apple-docs/uikit/nested/uiview.json"))
	assert.Equal(t, "", frameworkFromPath("/elsewhere/view.json"))
}
