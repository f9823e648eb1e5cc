package model

import (
	"slices"
	"testing"
)

// TestCheckResultFound tests that only HTTP 200 counts as found.
func TestCheckResultFound(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status int
		found  bool
	}{
		{200, true},
		{201, false},
		{301, false},
		{404, false},
		{429, false},
		{500, false},
		{StatusTransportError, false},
	}

	for _, tc := range testCases {
		r := CheckResult{Identifier: "x", Status: tc.status}
		if r.Found() != tc.found {
			t.Errorf("status %d: expected found=%v", tc.status, tc.found)
		}
	}
}

// TestCheckResultStatusText tests rendering of the status.
func TestCheckResultStatusText(t *testing.T) {
	t.Parallel()

	t.Run("real status", func(t *testing.T) {
		t.Parallel()
		r := CheckResult{Status: 404}
		if got := r.StatusText(); got != "HTTP 404" {
			t.Errorf("expected 'HTTP 404', got %q", got)
		}
	})

	t.Run("transport failure sentinel", func(t *testing.T) {
		t.Parallel()
		r := CheckResult{Status: StatusTransportError}
		if got := r.StatusText(); got != "HTTP -1" {
			t.Errorf("expected 'HTTP -1', got %q", got)
		}
		if !r.TransportFailed() {
			t.Error("expected TransportFailed to be true")
		}
	})
}

// TestRunSummary tests result accumulation.
func TestRunSummary(t *testing.T) {
	t.Parallel()

	t.Run("new summary is empty and passing", func(t *testing.T) {
		t.Parallel()
		s := NewRunSummary(RegistryHuggingFace)
		if s.Total() != 0 || s.MissingCount() != 0 {
			t.Errorf("expected empty summary, got total=%d missing=%d", s.Total(), s.MissingCount())
		}
		if !s.Passed() {
			t.Error("expected empty summary to pass")
		}
		if s.Missing == nil {
			t.Error("expected non-nil missing list")
		}
	})

	t.Run("missing list is an ordered subsequence", func(t *testing.T) {
		t.Parallel()
		s := NewRunSummary(RegistryOllama)
		s.Add(CheckResult{Identifier: "a", Status: 404})
		s.Add(CheckResult{Identifier: "b", Status: 200})
		s.Add(CheckResult{Identifier: "c", Status: StatusTransportError})
		s.Add(CheckResult{Identifier: "d", Status: 200})

		if s.Total() != 4 {
			t.Errorf("expected total 4, got %d", s.Total())
		}
		if s.FoundCount() != 2 {
			t.Errorf("expected 2 found, got %d", s.FoundCount())
		}
		if !slices.Equal(s.Missing, []string{"a", "c"}) {
			t.Errorf("expected missing [a c], got %v", s.Missing)
		}
		if s.Passed() {
			t.Error("expected summary with missing identifiers to fail")
		}
	})
}

// TestVerdict tests aggregation across checks.
func TestVerdict(t *testing.T) {
	t.Parallel()

	t.Run("no checks passes", func(t *testing.T) {
		t.Parallel()
		if !NewVerdict().Passed() {
			t.Error("expected empty verdict to pass")
		}
	})

	t.Run("one failing check fails the verdict", func(t *testing.T) {
		t.Parallel()
		hf := NewRunSummary(RegistryHuggingFace)
		hf.Add(CheckResult{Identifier: "a", Status: 200})
		ollama := NewRunSummary(RegistryOllama)
		ollama.Add(CheckResult{Identifier: "t", Status: 404})

		v := NewVerdict()
		v.Add(hf)
		v.Add(ollama)

		if v.Passed() {
			t.Error("expected verdict to fail")
		}
		if v.MissingCount() != 1 {
			t.Errorf("expected 1 missing, got %d", v.MissingCount())
		}
	})

	t.Run("all passing checks pass the verdict", func(t *testing.T) {
		t.Parallel()
		hf := NewRunSummary(RegistryHuggingFace)
		hf.Add(CheckResult{Identifier: "a", Status: 200})

		v := NewVerdict()
		v.Add(hf)
		if !v.Passed() {
			t.Error("expected verdict to pass")
		}
	})
}
