package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/nao1215/verifymodels/internal/model"
)

const (
	markFound   = "✓"
	markMissing = "✗"
	markWarning = "⚠"

	// PassLine is the final line printed when every check passed.
	PassLine = "PASS: All models verified."

	// FailLine is the final line printed when any identifier is missing.
	FailLine = "FAIL: Some models are unavailable. Fix mappings or remove entries."
)

// TerminalWriter prints progress and summaries for a human reading stdout.
// It implements registry.Observer.
type TerminalWriter struct {
	baseWriter

	found   *color.Color
	missing *color.Color

	// written counts bytes across all calls.
	written int

	// err is the first write error; later writes are skipped.
	err error
}

// TerminalOption configures a TerminalWriter.
type TerminalOption func(*TerminalWriter)

// WithColor forces coloured marks on or off. By default colour follows
// whether stdout is a terminal and NO_COLOR is unset.
func WithColor(enabled bool) TerminalOption {
	return func(w *TerminalWriter) {
		if enabled {
			w.found.EnableColor()
			w.missing.EnableColor()
		} else {
			w.found.DisableColor()
			w.missing.DisableColor()
		}
	}
}

// NewTerminalWriter creates a TerminalWriter that outputs to the given writer.
func NewTerminalWriter(output io.Writer, opts ...TerminalOption) *TerminalWriter {
	w := &TerminalWriter{
		baseWriter: newBaseWriter(output),
		found:      color.New(color.FgGreen),
		missing:    color.New(color.FgRed),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// BatchStarted prints the header of a registry check.
func (w *TerminalWriter) BatchStarted(registry model.Registry, total int) {
	w.printf("\n=== %s: checking %d %ss ===\n\n", registry.DisplayName(), total, registry.Noun())
}

// ResultReady prints one progress line.
func (w *TerminalWriter) ResultReady(_ model.Registry, index, total int, result model.CheckResult) {
	mark := w.found.Sprint(markFound)
	if !result.Found() {
		mark = w.missing.Sprint(markMissing)
	}
	w.printf("  [%d/%d] %s %s (%s)\n", index, total, mark, result.Identifier, result.StatusText())
}

// BatchFinished prints the summary of a registry check.
func (w *TerminalWriter) BatchFinished(summary *model.RunSummary) {
	name := summary.Registry.DisplayName()
	noun := summary.Registry.Noun()

	if summary.Passed() {
		w.printf("\n  All %d %s %ss verified %s\n", summary.Total(), name, noun, markFound)
		return
	}

	w.printf("\n  %s %d %s %s(s) not found:\n", markWarning, summary.MissingCount(), name, noun)
	for _, id := range summary.Missing {
		w.printf("    - %s\n", id)
	}
}

// WriteVerdict prints the final PASS or FAIL line.
func (w *TerminalWriter) WriteVerdict(verdict *model.Verdict) (int, error) {
	before := w.written
	line := PassLine
	if !verdict.Passed() {
		line = FailLine
	}
	w.printf("\n%s\n", line)
	return w.written - before, w.err
}

// Err returns the first error encountered while writing.
func (w *TerminalWriter) Err() error {
	return w.err
}

// printf writes formatted output unless an earlier write failed.
func (w *TerminalWriter) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	n, err := fmt.Fprintf(w.output, format, args...)
	w.written += n
	w.err = err
}
