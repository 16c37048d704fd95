package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/khanhnv2901/sri-cli/internal/scanner"
)

// Rule separates sections of terminal output.
const Rule = "═══════════════════════════════════════════════════════"

// TextWriter prints an itemized, colored report.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// Write implements Writer.
func (w *TextWriter) Write(r *scanner.Report) error {
	var b strings.Builder

	line(&b, LevelInfo, Rule)
	line(&b, LevelInfo, "SRI VALIDATION RESULTS")
	line(&b, LevelInfo, Rule)
	b.WriteString("\n")

	if len(r.Successes) > 0 {
		line(&b, LevelSuccess, "CDN references with SRI:")
		for _, s := range r.Successes {
			line(&b, LevelSuccess, fmt.Sprintf("   %s: %s", displayKind(s.Reference.Kind), s.Reference.URL))
		}
		b.WriteString("\n")
	}

	if r.Clean() {
		line(&b, LevelSuccess, "All CDN references carry SRI.")
		line(&b, LevelSuccess, "Your project is protected by Subresource Integrity.")
		_, err := io.WriteString(w.output, b.String())
		return err
	}

	writeFindings(&b, LevelError, "ERRORS:", r.Errors)
	writeFindings(&b, LevelWarning, "WARNINGS:", r.Warnings)

	if r.Passed() {
		line(&b, LevelWarning, Rule)
		line(&b, LevelWarning, fmt.Sprintf("VALIDATION PASSED WITH %d WARNING(S)", len(r.Warnings)))
		line(&b, LevelWarning, Rule)
	} else {
		line(&b, LevelError, Rule)
		line(&b, LevelError, "VALIDATION FAILED")
		line(&b, LevelError, Rule)
	}
	b.WriteString("\n")

	line(&b, LevelInfo, "How to fix:")
	line(&b, LevelInfo, "   1. Compute the SRI hash: sri hash <URL>")
	line(&b, LevelInfo, "   2. Add integrity and crossorigin to the <link> or <script> tag")
	line(&b, LevelInfo, "   3. Replace stylesheet @import of CDN resources with <link> tags in the markup")

	_, err := io.WriteString(w.output, b.String())
	return err
}

func writeFindings(b *strings.Builder, level Level, title string, findings []scanner.Finding) {
	if len(findings) == 0 {
		return
	}

	line(b, level, title)
	for i, f := range findings {
		b.WriteString("\n")
		line(b, level, fmt.Sprintf("   %d. %s", i+1, f.Message))
		line(b, level, fmt.Sprintf("      URL: %s", f.Reference.URL))
		if f.Reference.Snippet != "" {
			line(b, level, fmt.Sprintf("      Tag: %s", f.Reference.Snippet))
		}
		if f.Suggestion != "" {
			line(b, LevelWarning, fmt.Sprintf("      Hint: %s", f.Suggestion))
		}
	}
	b.WriteString("\n")
}

func line(b *strings.Builder, level Level, text string) {
	b.WriteString(Colorize(level, text))
	b.WriteString("\n")
}
