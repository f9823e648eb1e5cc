package main

import (
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "verifymodels" {
			t.Errorf("expected use 'verifymodels', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has check and source flags with defaults", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name      string
			shorthand string
			defValue  string
		}{
			{name: "hf", defValue: "false"},
			{name: "ollama", defValue: "false"},
			{name: "root", shorthand: "r", defValue: "."},
			{name: "catalog", defValue: "data/hf_models.json"},
			{name: "mapping", defValue: "src/providers.rs"},
			{name: "table", defValue: "OLLAMA_MAPPINGS"},
			{name: "timeout", shorthand: "t", defValue: "10s"},
			{name: "delay", shorthand: "d", defValue: "300ms"},
			{name: "config", shorthand: "c", defValue: ""},
			{name: "summary-file", shorthand: "s", defValue: ""},
			{name: "metrics-file", defValue: ""},
			{name: "json-file", defValue: ""},
		}

		for _, tt := range tests {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Errorf("expected %s flag", tt.name)
				continue
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("%s: expected shorthand %q, got %q", tt.name, tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("%s: expected default %q, got %q", tt.name, tt.defValue, flag.DefValue)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		hasInit := false
		hasVersion := false
		for _, sub := range cmd.Commands() {
			switch sub.Use {
			case "init":
				hasInit = true
			case "version":
				hasVersion = true
			}
		}
		if !hasInit {
			t.Error("expected init subcommand")
		}
		if !hasVersion {
			t.Error("expected version subcommand")
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}
