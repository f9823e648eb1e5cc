package main

import (
	"github.com/nao1215/verifymodels/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for verifymodels.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verifymodels",
		Short: "Verify that model identifiers still exist on HuggingFace and Ollama",
		Long: `verifymodels checks every HuggingFace model in the catalog and every Ollama
tag in the OLLAMA_MAPPINGS table against the public registries.

Requests are sent one at a time with a fixed delay after each one. A model
is considered available only when the registry answers HTTP 200.

Examples:
  # Check both registries from the project root
  verifymodels

  # Check only the HuggingFace catalog
  verifymodels --hf

  # Check only the Ollama tags of a project elsewhere
  verifymodels --ollama --root ../llmfit

  # Append a Markdown summary for GitHub Actions
  verifymodels --summary-file "$GITHUB_STEP_SUMMARY"

Exit status:
  0  every identifier was found
  1  at least one identifier is missing, or the run failed
  2  the mapping table could not be found`,
		Args:          cobra.NoArgs,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runVerifyCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Check selection
	cmd.Flags().Bool("hf", false, "Check HuggingFace models only")
	cmd.Flags().Bool("ollama", false, "Check Ollama tags only")

	// Sources
	cmd.Flags().StringP("root", "r", config.DefaultRoot,
		"Project root that catalog and mapping paths are resolved against")
	cmd.Flags().String("catalog", config.DefaultCatalogPath,
		"HuggingFace model catalog (JSON array of objects with a name field)")
	cmd.Flags().String("mapping", config.DefaultMappingPath,
		"Source file holding the Ollama mapping table")
	cmd.Flags().String("table", config.DefaultMappingTable,
		"Name of the mapping table constant")

	// Request behavior
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each registry request")
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Pause after every registry request")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .verifymodels.yaml in current directory or XDG config)")

	// Outputs
	cmd.Flags().StringP("summary-file", "s", "",
		"Append a Markdown summary to this file (e.g. $GITHUB_STEP_SUMMARY)")
	cmd.Flags().String("metrics-file", "",
		"Write Prometheus text-format metrics to this file")
	cmd.Flags().String("json-file", "",
		"Write a JSON report of every lookup to this file")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
