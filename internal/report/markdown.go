package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/verifymodels/internal/model"
)

// MarkdownWriter outputs the verdict as GitHub Flavored Markdown.
// CI systems render it as a job summary.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteVerdict outputs the verdict in Markdown format.
func (w *MarkdownWriter) WriteVerdict(verdict *model.Verdict) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Model Verification")
	md.PlainText("")

	w.writeSummaryTable(md, verdict)
	w.writeAlert(md, verdict)
	w.writeMissing(md, verdict)

	return len(md.String()), md.Build()
}

// writeSummaryTable writes one row per registry that was checked.
func (w *MarkdownWriter) writeSummaryTable(md *markdown.Markdown, verdict *model.Verdict) {
	if len(verdict.Summaries) == 0 {
		md.PlainText("No registries were checked.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(verdict.Summaries))
	for _, s := range verdict.Summaries {
		status := "✅ Verified"
		if !s.Passed() {
			status = "❌ Missing"
		}
		rows = append(rows, []string{
			s.Registry.DisplayName(),
			strconv.Itoa(s.Total()),
			strconv.Itoa(s.FoundCount()),
			strconv.Itoa(s.MissingCount()),
			status,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Registry", "Checked", "Found", "Missing", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAlert writes the verdict as an alert block.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, verdict *model.Verdict) {
	if verdict.Passed() {
		md.Tip(PassLine)
	} else {
		md.Cautionf("%d identifier(s) no longer resolve. Fix mappings or remove entries.", verdict.MissingCount())
	}
	md.PlainText("")
}

// writeMissing lists missing identifiers per registry with the status each returned.
func (w *MarkdownWriter) writeMissing(md *markdown.Markdown, verdict *model.Verdict) {
	for _, s := range verdict.Summaries {
		if s.Passed() {
			continue
		}

		md.H2("Missing on " + s.Registry.DisplayName())
		md.PlainText("")

		items := make([]string, 0, s.MissingCount())
		for _, r := range s.Results {
			if r.Found() {
				continue
			}
			items = append(items, "`"+r.Identifier+"` ("+r.StatusText()+")")
		}
		md.BulletList(items...)
		md.PlainText("")
	}
}
