package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/khanhnv2901/sri-cli/internal/scanner"
)

// MarkdownWriter outputs reports in GitHub-flavored Markdown, suitable for
// CI job summaries and pull-request comments.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write implements Writer.
func (w *MarkdownWriter) Write(r *scanner.Report) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("SRI Validation Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Result", "Count"},
		Rows: [][]string{
			{"Protected", strconv.Itoa(len(r.Successes))},
			{"Errors", strconv.Itoa(len(r.Errors))},
			{"Warnings", strconv.Itoa(len(r.Warnings))},
			{"**Total**", "**" + strconv.Itoa(r.Total()) + "**"},
		},
	})
	md.PlainText("")

	switch {
	case !r.Passed():
		md.Cautionf("Validation failed: %d CDN reference(s) are not protected by SRI.", len(r.Errors))
	case len(r.Warnings) > 0:
		md.Warningf("Validation passed with %d warning(s).", len(r.Warnings))
	default:
		md.Tip("All CDN references carry SRI.")
	}
	md.PlainText("")

	w.writeSection(md, "Errors", r.Errors)
	w.writeSection(md, "Warnings", r.Warnings)
	w.writeProtected(md, r.Successes)

	return md.Build()
}

func (w *MarkdownWriter) writeSection(md *markdown.Markdown, title string, findings []scanner.Finding) {
	if len(findings) == 0 {
		return
	}

	md.H2(title)
	md.PlainText("")

	rows := make([][]string, len(findings))
	for i, f := range findings {
		suggestion := f.Suggestion
		if suggestion == "" {
			suggestion = "-"
		}
		rows[i] = []string{
			displayKind(f.Reference.Kind),
			"`" + f.Reference.URL + "`",
			f.Message,
			suggestion,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Kind", "URL", "Problem", "Fix"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeProtected(md *markdown.Markdown, successes []scanner.Finding) {
	if len(successes) == 0 {
		return
	}

	md.H2("Protected")
	md.PlainText("")

	items := make([]string, len(successes))
	for i, s := range successes {
		items[i] = displayKind(s.Reference.Kind) + ": `" + s.Reference.URL + "`"
	}
	md.BulletList(items...)
	md.PlainText("")
}
