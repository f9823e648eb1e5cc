package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/verifymodels/internal/model"
)

// JSONWriter outputs the verdict in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is recorded in the report when non-empty.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the verifymodels version in the report.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	// Version is the verifymodels version that generated this report.
	Version string `json:"version,omitempty"`

	// Passed is true when every enabled check found every identifier.
	Passed bool `json:"passed"`

	// Registries holds one entry per check that ran, in run order.
	Registries []JSONRegistry `json:"registries"`
}

// JSONRegistry is the outcome of one registry check.
type JSONRegistry struct {
	Registry string       `json:"registry"`
	Checked  int          `json:"checked"`
	Found    int          `json:"found"`
	Missing  []string     `json:"missing"`
	Results  []JSONResult `json:"results"`
}

// JSONResult is the outcome of one lookup.
// Status is -1 when no HTTP response was received.
type JSONResult struct {
	Identifier string `json:"identifier"`
	Status     int    `json:"status"`
	ElapsedMS  int64  `json:"elapsedMs"`
}

// NewJSONReport converts a verdict into its JSON document.
func NewJSONReport(verdict *model.Verdict, version string) *JSONReport {
	report := &JSONReport{
		Version:    version,
		Passed:     verdict.Passed(),
		Registries: make([]JSONRegistry, 0, len(verdict.Summaries)),
	}

	for _, s := range verdict.Summaries {
		reg := JSONRegistry{
			Registry: s.Registry.String(),
			Checked:  s.Total(),
			Found:    s.FoundCount(),
			Missing:  append([]string{}, s.Missing...),
			Results:  make([]JSONResult, 0, len(s.Results)),
		}
		for _, r := range s.Results {
			reg.Results = append(reg.Results, JSONResult{
				Identifier: r.Identifier,
				Status:     r.Status,
				ElapsedMS:  r.Elapsed.Milliseconds(),
			})
		}
		report.Registries = append(report.Registries, reg)
	}

	return report
}

// WriteVerdict outputs the verdict in JSON format.
func (w *JSONWriter) WriteVerdict(verdict *model.Verdict) (int, error) {
	return w.writeJSON(NewJSONReport(verdict, w.version))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v interface{}) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
