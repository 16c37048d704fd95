package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/khanhnv2901/sri-cli/internal/scanner"
)

// Writer renders a scan report to its destination.
type Writer interface {
	Write(r *scanner.Report) error
}

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unsupported format %q (use text, json or markdown)", name)
}

// NewWriter returns the writer for format.
func NewWriter(format Format, output io.Writer) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output)
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewTextWriter(output)
	}
}

func displayKind(kind scanner.Kind) string {
	if kind == scanner.KindImport {
		return "SCSS"
	}
	return strings.ToUpper(string(kind))
}
