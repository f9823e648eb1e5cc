package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// current directory.
const DefaultConfigFile = ".verifymodels.yaml"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the configuration file.
// Every field is optional; unset fields keep their current value.
//
// Example:
//
//	root: ../llmfit
//	catalog: data/hf_models.json
//	mapping: src/providers.rs
//	table: OLLAMA_MAPPINGS
//	timeout: 10s
//	delay: 300ms
//	userAgent: llmfit-verify/1.0
//	huggingfaceURL: https://huggingface.co/api/models/{id}
//	ollamaURL: https://ollama.com/library/{id}
type File struct {
	Root           string `yaml:"root,omitempty"`
	Catalog        string `yaml:"catalog,omitempty"`
	Mapping        string `yaml:"mapping,omitempty"`
	Table          string `yaml:"table,omitempty"`
	Timeout        string `yaml:"timeout,omitempty"`
	Delay          string `yaml:"delay,omitempty"`
	UserAgent      string `yaml:"userAgent,omitempty"`
	HuggingFaceURL string `yaml:"huggingfaceURL,omitempty"`
	OllamaURL      string `yaml:"ollamaURL,omitempty"`
	SummaryFile    string `yaml:"summaryFile,omitempty"`
	MetricsFile    string `yaml:"metricsFile,omitempty"`
	JSONFile       string `yaml:"jsonFile,omitempty"`
}

// LoadConfigFile loads a configuration file from path.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply overlays the values set in the file onto cfg.
// Durations use Go syntax, e.g. "10s" or "300ms".
func (cf *File) Apply(cfg *Config) error {
	setString(&cfg.Root, cf.Root)
	setString(&cfg.CatalogPath, cf.Catalog)
	setString(&cfg.MappingPath, cf.Mapping)
	setString(&cfg.MappingTable, cf.Table)
	setString(&cfg.UserAgent, cf.UserAgent)
	setString(&cfg.HuggingFaceURL, cf.HuggingFaceURL)
	setString(&cfg.OllamaURL, cf.OllamaURL)
	setString(&cfg.SummaryFile, cf.SummaryFile)
	setString(&cfg.MetricsFile, cf.MetricsFile)
	setString(&cfg.JSONFile, cf.JSONFile)

	if cf.Timeout != "" {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", cf.Timeout, err)
		}
		cfg.Timeout = d
	}

	if cf.Delay != "" {
		d, err := time.ParseDuration(cf.Delay)
		if err != nil {
			return fmt.Errorf("invalid delay %q: %w", cf.Delay, err)
		}
		cfg.Delay = d
	}

	return nil
}

// setString assigns value to dst when value is non-empty.
func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .verifymodels.yaml in the current directory
// 3. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), XDGConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
