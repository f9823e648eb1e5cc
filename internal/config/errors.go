package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
var (
	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidDelay is returned when the delay between requests is negative.
	// Use 0 for no delay.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrEmptyUserAgent is returned when no User-Agent is configured.
	ErrEmptyUserAgent = errors.New("user agent must not be empty")

	// ErrEmptyCatalogPath is returned when the HuggingFace check is enabled
	// without a catalog path.
	ErrEmptyCatalogPath = errors.New("catalog path must not be empty")

	// ErrEmptyMappingPath is returned when the Ollama check is enabled
	// without a mapping source path.
	ErrEmptyMappingPath = errors.New("mapping path must not be empty")

	// ErrEmptyTableName is returned when the Ollama check is enabled
	// without a mapping table name.
	ErrEmptyTableName = errors.New("mapping table name must not be empty")

	// ErrInvalidURLTemplate is returned when a registry URL template is not
	// an http(s) URL containing exactly one {id} placeholder.
	ErrInvalidURLTemplate = errors.New("invalid URL template: must be an http(s) URL containing {id} exactly once")
)
