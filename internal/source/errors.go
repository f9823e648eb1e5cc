package source

import "errors"

// Source reading errors.
var (
	// ErrMalformedCatalog is returned when the catalog is not a JSON array of objects.
	ErrMalformedCatalog = errors.New("malformed catalog: expected a JSON array of objects")

	// ErrMissingName is returned when a catalog entry has no "name" field.
	ErrMissingName = errors.New("catalog entry has no name")

	// ErrMappingTableNotFound is returned when the mapping table declaration
	// cannot be located in the source text. This is a configuration error:
	// the Ollama check cannot run without it.
	ErrMappingTableNotFound = errors.New("mapping table not found")
)
