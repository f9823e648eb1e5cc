package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nao1215/verifymodels/internal/model"
)

// createTestVerdict creates a verdict with one passing and one failing check.
func createTestVerdict() *model.Verdict {
	hf := model.NewRunSummary(model.RegistryHuggingFace)
	hf.Add(model.CheckResult{Identifier: "meta-llama/Llama-3.1-8B-Instruct", Status: 200})
	hf.Add(model.CheckResult{Identifier: "Qwen/Qwen2.5-7B-Instruct", Status: 200})

	ollama := model.NewRunSummary(model.RegistryOllama)
	ollama.Add(model.CheckResult{Identifier: "llama3.1:8b", Status: 200})
	ollama.Add(model.CheckResult{Identifier: "qwen9:1b", Status: 404})
	ollama.Add(model.CheckResult{Identifier: "gemma2:9b", Status: model.StatusTransportError})

	v := model.NewVerdict()
	v.Add(hf)
	v.Add(ollama)
	return v
}

// TestMarkdownWriter tests the Markdown summary.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes title and table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteVerdict(createTestVerdict()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Model Verification") {
			t.Error("expected title")
		}
		if !strings.Contains(output, "Registry") || !strings.Contains(output, "Missing") {
			t.Error("expected table header")
		}
		if !strings.Contains(output, "HuggingFace") || !strings.Contains(output, "Ollama") {
			t.Error("expected a row per registry")
		}
	})

	t.Run("lists missing identifiers with status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteVerdict(createTestVerdict()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Missing on Ollama") {
			t.Error("expected Ollama missing section")
		}
		if strings.Contains(output, "## Missing on HuggingFace") {
			t.Error("did not expect HuggingFace missing section")
		}
		if !strings.Contains(output, "`qwen9:1b` (HTTP 404)") {
			t.Error("expected missing tag with status")
		}
		if !strings.Contains(output, "`gemma2:9b` (HTTP -1)") {
			t.Error("expected transport failure with sentinel status")
		}
	})

	t.Run("failing verdict uses caution alert", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteVerdict(createTestVerdict()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "[!CAUTION]") {
			t.Errorf("expected caution alert, got:\n%s", buf.String())
		}
	})

	t.Run("passing verdict uses tip alert", func(t *testing.T) {
		t.Parallel()

		hf := model.NewRunSummary(model.RegistryHuggingFace)
		hf.Add(model.CheckResult{Identifier: "a", Status: 200})
		v := model.NewVerdict()
		v.Add(hf)

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteVerdict(v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "[!TIP]") {
			t.Errorf("expected tip alert, got:\n%s", output)
		}
		if strings.Contains(output, "## Missing") {
			t.Error("did not expect missing sections")
		}
	})

	t.Run("empty verdict", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteVerdict(model.NewVerdict()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No registries were checked.") {
			t.Errorf("expected empty notice, got:\n%s", buf.String())
		}
	})
}
