package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/nao1215/verifymodels/internal/config"
	"github.com/nao1215/verifymodels/internal/log"
	"github.com/nao1215/verifymodels/internal/metrics"
	"github.com/nao1215/verifymodels/internal/model"
	"github.com/nao1215/verifymodels/internal/registry"
	"github.com/nao1215/verifymodels/internal/report"
	"github.com/nao1215/verifymodels/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runVerifyCmd executes the root command.
func runVerifyCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if proxy := proxyFromEnvironment(); proxy != "" {
		logger.Debug("using proxy from environment", "proxy", proxy)
	}

	// Cancel on interrupt so the run stops between requests.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runVerify(ctx, cfg, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// the command line, in that order of precedence (last wins).
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly given file must exist. Otherwise a missing file just
	// means defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", configPath, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	for name, dst := range map[string]*string{
		"root":         &cfg.Root,
		"catalog":      &cfg.CatalogPath,
		"mapping":      &cfg.MappingPath,
		"table":        &cfg.MappingTable,
		"summary-file": &cfg.SummaryFile,
		"metrics-file": &cfg.MetricsFile,
		"json-file":    &cfg.JSONFile,
	} {
		if err := stringFlag(flags, name, dst); err != nil {
			return nil, err
		}
	}

	if err := durationFlag(flags, "timeout", &cfg.Timeout); err != nil {
		return nil, err
	}
	if err := durationFlag(flags, "delay", &cfg.Delay); err != nil {
		return nil, err
	}

	hf, err := flags.GetBool("hf")
	if err != nil {
		return nil, err
	}
	ollama, err := flags.GetBool("ollama")
	if err != nil {
		return nil, err
	}
	cfg.SelectChecks(hf, ollama)

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// stringFlag copies a string flag into dst when it was set on the command line.
func stringFlag(flags *pflag.FlagSet, name string, dst *string) error {
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetString(name)
	if err != nil {
		return err
	}
	*dst = value
	return nil
}

// durationFlag copies a duration flag into dst when it was set on the command line.
func durationFlag(flags *pflag.FlagSet, name string, dst *time.Duration) error {
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetDuration(name)
	if err != nil {
		return err
	}
	*dst = value
	return nil
}

// loadIdentifiers reads the identifiers of every enabled check before any
// request is sent.
func loadIdentifiers(cfg *config.Config, out io.Writer) (map[model.Registry][]string, error) {
	identifiers := make(map[model.Registry][]string, len(model.Registries))

	for _, reg := range model.Registries {
		if !cfg.Enabled(reg) {
			continue
		}
		ids, err := readIdentifiers(cfg, reg)
		if err != nil {
			if errors.Is(err, source.ErrMappingTableNotFound) {
				fmt.Fprintf(out, "ERROR: Could not find %s in %s\n", cfg.MappingTable, cfg.MappingFile())
			}
			return nil, err
		}
		identifiers[reg] = ids
	}

	return identifiers, nil
}

// readIdentifiers reads the source that feeds the check for reg.
func readIdentifiers(cfg *config.Config, reg model.Registry) ([]string, error) {
	switch reg {
	case model.RegistryHuggingFace:
		return source.LoadCatalog(cfg.CatalogFile())
	case model.RegistryOllama:
		return source.ExtractMappingTags(cfg.MappingFile(), cfg.MappingTable)
	default:
		return nil, fmt.Errorf("no identifier source for registry %q", reg)
	}
}

// reportFiles holds the optional report files. They are opened before the
// first request so that a bad path fails the run early.
type reportFiles struct {
	writers []report.Writer
	files   []*os.File
}

// openReportFiles opens the summary and JSON report files configured in cfg.
func openReportFiles(cfg *config.Config) (*reportFiles, error) {
	rf := &reportFiles{}

	if cfg.SummaryFile != "" {
		f, err := os.OpenFile(cfg.SummaryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) //nolint:gosec // Path comes from a flag
		if err != nil {
			return nil, fmt.Errorf("failed to open summary file: %w", err)
		}
		rf.files = append(rf.files, f)
		rf.writers = append(rf.writers, report.NewMarkdownWriter(f))
	}

	if cfg.JSONFile != "" {
		f, err := os.Create(cfg.JSONFile) //nolint:gosec // Path comes from a flag
		if err != nil {
			rf.Close()
			return nil, fmt.Errorf("failed to create JSON report: %w", err)
		}
		rf.files = append(rf.files, f)
		rf.writers = append(rf.writers, report.NewJSONWriter(f, report.WithPrettyPrint(), report.WithVersion(getVersion())))
	}

	return rf, nil
}

// Close closes every opened file.
func (rf *reportFiles) Close() {
	for _, f := range rf.files {
		_ = f.Close() //nolint:errcheck
	}
}

// runVerify checks every enabled registry and reports the verdict.
func runVerify(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	identifiers, err := loadIdentifiers(cfg, out)
	if err != nil {
		return err
	}

	files, err := openReportFiles(cfg)
	if err != nil {
		return err
	}
	defer files.Close()

	terminal := report.NewTerminalWriter(out, report.WithColor(colorEnabled(out)))
	recorder := metrics.NewRecorder()

	checker := registry.NewChecker(
		registry.WithTimeout(cfg.Timeout),
		registry.WithDelay(cfg.Delay),
		registry.WithUserAgent(cfg.UserAgent),
		registry.WithObserver(registry.NewMultiObserver(terminal, recorder)),
		registry.WithLogger(logger),
	)

	verdict := model.NewVerdict()
	for _, reg := range model.Registries {
		ids, ok := identifiers[reg]
		if !ok || ctx.Err() != nil {
			continue
		}
		logger.Debug("starting check", "registry", reg, "identifiers", len(ids))
		verdict.Add(checker.RunBatch(ctx, reg, ids, cfg.URLTemplate(reg)))
	}
	recorder.RecordVerdict(verdict)

	interrupted := ctx.Err() != nil

	writers := []report.Writer{}
	if !interrupted {
		writers = append(writers, terminal)
	}
	writers = append(writers, files.writers...)

	if _, err := report.NewMultiWriter(writers...).WriteVerdict(verdict); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := terminal.Err(); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
	}

	if interrupted {
		return fmt.Errorf("verification interrupted: %w", ctx.Err())
	}
	if !verdict.Passed() {
		return ErrVerificationFailed
	}
	return nil
}

// colorEnabled reports whether w is a terminal that accepts colour.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// proxyFromEnvironment returns the proxy the HTTP transport will pick up.
func proxyFromEnvironment() string {
	for _, key := range []string{"HTTPS_PROXY", "https_proxy", "HTTP_PROXY", "http_proxy"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
