package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/verifymodels/internal/model"
	"github.com/nao1215/verifymodels/internal/registry"
	"github.com/nao1215/verifymodels/internal/source"
)

// Default configuration values.
// The paths are relative to the llmfit project root.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "verifymodels"

	// DefaultRoot is the project root the default paths are resolved against.
	DefaultRoot = "."

	// DefaultCatalogPath is the HuggingFace catalog, a JSON array of model records.
	DefaultCatalogPath = "data/hf_models.json"

	// DefaultMappingPath is the Rust source holding the Ollama mapping table.
	DefaultMappingPath = "src/providers.rs"

	// DefaultMappingTable is the name of the table literal in DefaultMappingPath.
	DefaultMappingTable = source.DefaultMappingTable

	// DefaultTimeout bounds each registry lookup.
	DefaultTimeout = registry.DefaultTimeout

	// DefaultDelay is the pause after every lookup.
	DefaultDelay = registry.DefaultDelay

	// DefaultUserAgent identifies the verifier in registry access logs.
	DefaultUserAgent = registry.DefaultUserAgent
)

// Config holds all configuration options for a verification run.
// It is populated from defaults, then the config file, then CLI flags.
type Config struct {
	// Root is the project root. Relative catalog and mapping paths are
	// resolved against it.
	Root string

	// CatalogPath is the HuggingFace catalog file.
	CatalogPath string

	// MappingPath is the source file containing the mapping table.
	MappingPath string

	// MappingTable is the name of the table literal to scan for.
	MappingTable string

	// CheckHuggingFace enables the HuggingFace check.
	CheckHuggingFace bool

	// CheckOllama enables the Ollama check.
	CheckOllama bool

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// Delay is the pause after every request, whatever its outcome.
	Delay time.Duration

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// HuggingFaceURL is the lookup URL template for HuggingFace.
	// It must contain model.URLPlaceholder exactly once.
	HuggingFaceURL string

	// OllamaURL is the lookup URL template for Ollama.
	// It must contain model.URLPlaceholder exactly once.
	OllamaURL string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory and then the
	// XDG config directory.
	ConfigFilePath string

	// SummaryFile receives a Markdown summary when set.
	// The file is appended to, matching how $GITHUB_STEP_SUMMARY is used.
	SummaryFile string

	// MetricsFile receives Prometheus text-format metrics when set.
	MetricsFile string

	// JSONFile receives a JSON report when set. The file is overwritten.
	JSONFile string

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// NewConfig creates a new Config with default values. Both checks are enabled.
func NewConfig() *Config {
	return &Config{
		Root:             DefaultRoot,
		CatalogPath:      DefaultCatalogPath,
		MappingPath:      DefaultMappingPath,
		MappingTable:     DefaultMappingTable,
		CheckHuggingFace: true,
		CheckOllama:      true,
		Timeout:          DefaultTimeout,
		Delay:            DefaultDelay,
		UserAgent:        DefaultUserAgent,
		HuggingFaceURL:   model.RegistryHuggingFace.DefaultURLTemplate(),
		OllamaURL:        model.RegistryOllama.DefaultURLTemplate(),
	}
}

// SelectChecks enables checks from the --hf and --ollama flags.
// Giving neither flag, or both, runs both checks. Giving one runs only that one.
func (c *Config) SelectChecks(hf, ollama bool) {
	c.CheckHuggingFace = hf || !ollama
	c.CheckOllama = ollama || !hf
}

// Enabled reports whether the check for registry is enabled.
func (c *Config) Enabled(registry model.Registry) bool {
	switch registry {
	case model.RegistryHuggingFace:
		return c.CheckHuggingFace
	case model.RegistryOllama:
		return c.CheckOllama
	default:
		return false
	}
}

// URLTemplate returns the lookup URL template for registry.
func (c *Config) URLTemplate(registry model.Registry) string {
	switch registry {
	case model.RegistryHuggingFace:
		return c.HuggingFaceURL
	case model.RegistryOllama:
		return c.OllamaURL
	default:
		return ""
	}
}

// CatalogFile returns the catalog path resolved against Root.
func (c *Config) CatalogFile() string {
	return c.resolve(c.CatalogPath)
}

// MappingFile returns the mapping source path resolved against Root.
func (c *Config) MappingFile() string {
	return c.resolve(c.MappingPath)
}

// resolve joins relative paths onto Root.
func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.Root == "" {
		return path
	}
	return filepath.Join(c.Root, path)
}

// XDGConfigDir returns the XDG config directory for verifymodels.
// On Linux: ~/.config/verifymodels
// On macOS: ~/Library/Application Support/verifymodels
// On Windows: %APPDATA%\verifymodels
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Delay < 0 {
		return ErrInvalidDelay
	}

	if c.UserAgent == "" {
		return ErrEmptyUserAgent
	}

	if c.CheckHuggingFace {
		if c.CatalogPath == "" {
			return ErrEmptyCatalogPath
		}
		if !validURLTemplate(c.HuggingFaceURL) {
			return ErrInvalidURLTemplate
		}
	}

	if c.CheckOllama {
		if c.MappingPath == "" {
			return ErrEmptyMappingPath
		}
		if c.MappingTable == "" {
			return ErrEmptyTableName
		}
		if !validURLTemplate(c.OllamaURL) {
			return ErrInvalidURLTemplate
		}
	}

	return nil
}

// validURLTemplate reports whether template is an http(s) URL with exactly
// one placeholder.
func validURLTemplate(template string) bool {
	if strings.Count(template, model.URLPlaceholder) != 1 {
		return false
	}
	return strings.HasPrefix(template, "http://") || strings.HasPrefix(template, "https://")
}
