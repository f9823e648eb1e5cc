package source

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// writeFile writes content to name inside a fresh temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// TestLoadCatalog tests reading model names from the catalog file.
func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("returns names in file order", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "hf_models.json", `[
  {"name": "meta-llama/Llama-3.1-8B-Instruct", "parameter_count": "8B"},
  {"name": "Qwen/Qwen2.5-7B-Instruct", "provider": "Alibaba"},
  {"name": "mistralai/Mistral-7B-Instruct-v0.3"}
]`)

		names, err := LoadCatalog(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			"meta-llama/Llama-3.1-8B-Instruct",
			"Qwen/Qwen2.5-7B-Instruct",
			"mistralai/Mistral-7B-Instruct-v0.3",
		}
		if !slices.Equal(names, want) {
			t.Errorf("expected %v, got %v", want, names)
		}
	})

	t.Run("keeps duplicate names", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "hf_models.json", `[{"name":"a"},{"name":"b"},{"name":"a"}]`)

		names, err := LoadCatalog(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(names, []string{"a", "b", "a"}) {
			t.Errorf("expected duplicates preserved, got %v", names)
		}
	})

	t.Run("empty array yields no names", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "hf_models.json", "[]")

		names, err := LoadCatalog(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("expected no names, got %v", names)
		}
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}

// TestParseCatalog tests catalog validation.
func TestParseCatalog(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "entry without name", input: `[{"name":"a"},{"provider":"x"}]`, wantErr: ErrMissingName},
		{name: "null name", input: `[{"name":null}]`, wantErr: ErrMissingName},
		{name: "null entry", input: `[null]`, wantErr: ErrMissingName},
		{name: "empty name", input: `[{"name":""}]`, wantErr: ErrMissingName},
		{name: "empty name after valid entries", input: `[{"name":"a"},{"name":""}]`, wantErr: ErrMissingName},
		{name: "non-string name", input: `[{"name":42}]`, wantErr: ErrMissingName},
		{name: "object name", input: `[{"name":{"id":"a"}}]`, wantErr: ErrMissingName},
		{name: "non-object entry", input: `["a","b"]`, wantErr: ErrMalformedCatalog},
		{name: "top-level object", input: `{"name":"a"}`, wantErr: ErrMalformedCatalog},
		{name: "top-level null", input: `null`, wantErr: ErrMalformedCatalog},
		{name: "truncated json", input: `[{"name":"a"`, wantErr: ErrMalformedCatalog},
		{name: "empty input", input: ``, wantErr: ErrMalformedCatalog},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			names, err := ParseCatalog([]byte(tc.input))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if names != nil {
				t.Errorf("expected nil names on error, got %v", names)
			}
		})
	}

	t.Run("length and order match the input", func(t *testing.T) {
		t.Parallel()

		names, err := ParseCatalog([]byte(`[{"name":"a"},{"name":"b"}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(names, []string{"a", "b"}) {
			t.Errorf("expected [a b], got %v", names)
		}
	})
}
