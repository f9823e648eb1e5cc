package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ModelRecord is one entry of the HuggingFace catalog.
// Only the name is used; other fields of the entry are ignored.
// Name is kept raw so that a missing, null or non-string value can be
// reported as ErrMissingName.
type ModelRecord struct {
	Name json.RawMessage `json:"name"`
}

// LoadCatalog reads the catalog at path and returns the model names in file order.
// Duplicate names are kept and will be checked twice.
func LoadCatalog(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Catalog path comes from the project layout or a flag
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	names, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return names, nil
}

// ParseCatalog decodes catalog JSON and returns the model names in order.
func ParseCatalog(data []byte) ([]string, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, ErrMalformedCatalog
	}

	var records []ModelRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}

	names := make([]string, 0, len(records))
	for i, r := range records {
		name, ok := r.name()
		if !ok {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMissingName)
		}
		names = append(names, name)
	}
	return names, nil
}

// name returns the record's name and whether it is a non-empty string.
func (r ModelRecord) name() (string, bool) {
	if len(r.Name) == 0 {
		return "", false
	}
	var name string
	if err := json.Unmarshal(r.Name, &name); err != nil {
		return "", false
	}
	return name, name != ""
}
