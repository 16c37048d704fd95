package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var extractors = map[string]Extractor{
	"regex": RegexExtractor{},
	"html":  HTMLExtractor{},
}

func TestScanFullyProtectedLink(t *testing.T) {
	markup := `<link href="https://fonts.example.com/a.css" integrity="sha384-abc" crossorigin="anonymous">`

	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")

			require.Len(t, report.Successes, 1)
			assert.Empty(t, report.Errors)
			assert.Empty(t, report.Warnings)
			assert.True(t, report.Passed())
			assert.Equal(t, 0, report.ExitCode())
			assert.Equal(t, KindLink, report.Successes[0].Reference.Kind)
			assert.Equal(t, "https://fonts.example.com/a.css", report.Successes[0].Reference.URL)
		})
	}
}

func TestScanScriptWithoutIntegrity(t *testing.T) {
	markup := `<script src="https://cdn.example.com/a.js"></script>`

	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")

			require.Len(t, report.Errors, 1)
			assert.Equal(t, VerdictMissingIntegrity, report.Errors[0].Verdict)
			assert.Equal(t, KindScript, report.Errors[0].Reference.Kind)
			assert.Contains(t, report.Errors[0].Suggestion, "sri hash https://cdn.example.com/a.js")
			assert.False(t, report.Passed())
			assert.Equal(t, 1, report.ExitCode())
		})
	}
}

func TestScanPlaceholderBeatsCrossOrigin(t *testing.T) {
	markup := `<script src="https://cdn.example.com/a.js" integrity="sha384-PLACEHOLDERXXX"></script>`

	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")

			require.Len(t, report.Errors, 1)
			assert.Equal(t, VerdictPlaceholderIntegrity, report.Errors[0].Verdict)
			assert.Empty(t, report.Warnings)
		})
	}
}

func TestScanMissingCrossOriginStillPasses(t *testing.T) {
	markup := `<link rel="stylesheet" href="https://cdn.example.com/a.css" integrity="sha384-abc">`

	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")

			require.Len(t, report.Warnings, 1)
			assert.Equal(t, VerdictMissingCrossOrigin, report.Warnings[0].Verdict)
			assert.True(t, report.Passed())
			assert.False(t, report.Clean())
			assert.Equal(t, 0, report.ExitCode())
		})
	}
}

func TestScanCrossOriginInsideAttributeValue(t *testing.T) {
	markup := `<link href="https://x.example/a.css" integrity="sha384-abc" title="needs crossorigin later">
<script src="https://x.example/a.js" integrity="sha384-abc" data-note='crossorigin'></script>`

	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")

			assert.Empty(t, report.Successes)
			assert.Empty(t, report.Errors)
			require.Len(t, report.Warnings, 2)
			for _, w := range report.Warnings {
				assert.Equal(t, VerdictMissingCrossOrigin, w.Verdict)
			}
		})
	}
}

func TestScanStylesheetImportAlwaysWarns(t *testing.T) {
	stylesheet := `
/* integrity="sha384-abc" crossorigin="anonymous" */
@import url("https://fonts.googleapis.com/css2?family=Inter");
@import url('http://cdn.example.com/reset.css');
@import url("./local.css");
`
	report := Scan("", stylesheet)

	require.Len(t, report.Warnings, 2)
	for _, w := range report.Warnings {
		assert.Equal(t, VerdictExternalImport, w.Verdict)
		assert.Equal(t, KindImport, w.Reference.Kind)
		assert.NotEmpty(t, w.Suggestion)
		assert.Empty(t, w.Reference.Snippet)
	}
	assert.Equal(t, "https://fonts.googleapis.com/css2?family=Inter", report.Warnings[0].Reference.URL)
	assert.Equal(t, "http://cdn.example.com/reset.css", report.Warnings[1].Reference.URL)
	assert.True(t, report.Passed())
}

func TestScanIgnoresLocalReferences(t *testing.T) {
	markup := `
<link rel="icon" href="/favicon.ico">
<link rel="stylesheet" href="styles.css">
<link rel="preconnect" href="//fonts.example.com">
<script src="/main.js"></script>
<script>console.log("inline")</script>
`
	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")
			assert.Equal(t, 0, report.Total())
			assert.True(t, report.Clean())
		})
	}
}

func TestScanAttributeOrderAndQuotes(t *testing.T) {
	markup := `<link crossorigin='anonymous' integrity='sha512-xyz' rel='stylesheet' href='https://cdn.example.com/b.css'/>`

	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")
			require.Len(t, report.Successes, 1)
			assert.Equal(t, "sha512-xyz", report.Successes[0].Reference.Integrity)
		})
	}
}

func TestScanBareCrossOrigin(t *testing.T) {
	markup := `<script src="https://cdn.example.com/a.js" integrity="sha384-abc" crossorigin></script>`

	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")
			require.Len(t, report.Successes, 1)
		})
	}
}

func TestScanPreservesOrderWithoutDedup(t *testing.T) {
	markup := `
<script src="https://cdn.example.com/one.js"></script>
<link rel="stylesheet" href="https://cdn.example.com/a.css">
<link rel="stylesheet" href="https://cdn.example.com/a.css">
<script src="https://cdn.example.com/two.js" integrity="sha384-PLACEHOLDER"></script>
`
	for name, ex := range extractors {
		t.Run(name, func(t *testing.T) {
			report := New(ex).Scan(markup, "")

			require.Len(t, report.Errors, 4)
			urls := make([]string, 0, len(report.Errors))
			for _, e := range report.Errors {
				urls = append(urls, e.Reference.URL)
			}
			// links are discovered before scripts
			assert.Equal(t, []string{
				"https://cdn.example.com/a.css",
				"https://cdn.example.com/a.css",
				"https://cdn.example.com/one.js",
				"https://cdn.example.com/two.js",
			}, urls)
			assert.Equal(t, VerdictPlaceholderIntegrity, report.Errors[3].Verdict)
		})
	}
}

func TestScanSnippetTruncation(t *testing.T) {
	long := `<script src="https://cdn.example.com/a.js" data-extra="` + strings.Repeat("x", 200) + `"></script>`
	report := Scan(long, "")

	require.Len(t, report.Errors, 1)
	snippet := report.Errors[0].Reference.Snippet
	assert.Equal(t, 103, len(snippet))
	assert.True(t, strings.HasSuffix(snippet, "..."))
	assert.True(t, strings.HasPrefix(snippet, "<script src="))
}

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
		want Verdict
	}{
		{
			name: "import ignores integrity",
			ref:  Reference{Kind: KindImport, URL: "https://x", HasIntegrity: true, Integrity: "sha384-a", HasCrossOrigin: true},
			want: VerdictExternalImport,
		},
		{
			name: "missing integrity beats crossorigin",
			ref:  Reference{Kind: KindLink, URL: "https://x"},
			want: VerdictMissingIntegrity,
		},
		{
			name: "placeholder",
			ref:  Reference{Kind: KindLink, URL: "https://x", HasIntegrity: true, Integrity: "sha384-PLACEHOLDER", HasCrossOrigin: true},
			want: VerdictPlaceholderIntegrity,
		},
		{
			name: "missing crossorigin",
			ref:  Reference{Kind: KindScript, URL: "https://x", HasIntegrity: true, Integrity: "sha384-a"},
			want: VerdictMissingCrossOrigin,
		},
		{
			name: "success",
			ref:  Reference{Kind: KindScript, URL: "https://x", HasIntegrity: true, Integrity: "sha384-a", HasCrossOrigin: true},
			want: VerdictSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ref).Verdict)
		})
	}
}

func TestNewReferenceScope(t *testing.T) {
	_, ok := NewReference(Candidate{Kind: KindLink, URL: "/local.css"})
	assert.False(t, ok)

	_, ok = NewReference(Candidate{Kind: KindLink, URL: ""})
	assert.False(t, ok)

	ref, ok := NewReference(Candidate{Kind: KindLink, URL: "http://cdn.example.com/a.css", Raw: "<link>"})
	require.True(t, ok)
	assert.Equal(t, "<link>...", ref.Snippet)
}

func TestExtractorFor(t *testing.T) {
	ex, ok := ExtractorFor("html")
	require.True(t, ok)
	assert.IsType(t, HTMLExtractor{}, ex)

	ex, ok = ExtractorFor("")
	require.True(t, ok)
	assert.IsType(t, RegexExtractor{}, ex)

	_, ok = ExtractorFor("dom")
	assert.False(t, ok)
}

func TestHTMLExtractorSkipsComments(t *testing.T) {
	markup := `<!-- <script src="https://cdn.example.com/old.js"></script> -->`

	assert.Empty(t, HTMLExtractor{}.ExtractMarkup(markup))
	// the regex extractor sees through comments
	assert.Len(t, RegexExtractor{}.ExtractMarkup(markup), 1)
}
