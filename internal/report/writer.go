package report

import (
	"io"

	"github.com/nao1215/verifymodels/internal/model"
)

// Writer defines the interface for verdict output.
type Writer interface {
	// WriteVerdict outputs the aggregated result of every check that ran.
	// Returns the number of bytes written and any error encountered.
	WriteVerdict(verdict *model.Verdict) (int, error)
}

// MultiWriter writes a verdict to multiple Writers.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteVerdict outputs the verdict to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteVerdict(verdict *model.Verdict) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteVerdict(verdict)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
