package source

import (
	"fmt"
	"os"
	"regexp"
)

// DefaultMappingTable is the name of the table literal holding
// (HuggingFace name, Ollama tag) pairs.
const DefaultMappingTable = "OLLAMA_MAPPINGS"

// tuplePattern matches a ("source", "tag") pair and captures the tag.
var tuplePattern = regexp.MustCompile(`\(\s*"[^"]+"\s*,\s*"([^"]+)"\s*\)`)

// blockPattern builds the pattern locating the body of the named table.
// Every quantifier is lazy, so the body ends at the first "];".
func blockPattern(table string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)const ` + regexp.QuoteMeta(table) + `:.*?=.*?\[(.+?)\];`)
}

// ExtractMappingTags reads the source file at path and returns the distinct
// tags of the named table in first-seen order.
func ExtractMappingTags(path, table string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Mapping path comes from the project layout or a flag
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping source: %w", err)
	}

	tags, err := ExtractMappingTagsFromText(string(data), table)
	if err != nil {
		return nil, fmt.Errorf("could not find %s in %s: %w", table, path, err)
	}
	return tags, nil
}

// ExtractMappingTagsFromText returns the distinct tags of the named table in
// text, in first-seen order. A table without pairs yields an empty slice.
func ExtractMappingTagsFromText(text, table string) ([]string, error) {
	match := blockPattern(table).FindStringSubmatch(text)
	if match == nil {
		return nil, ErrMappingTableNotFound
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, m := range tuplePattern.FindAllStringSubmatch(match[1], -1) {
		tag := m[1]
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}
