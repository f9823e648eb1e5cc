// Package main provides the entry point for the verifymodels CLI.
//
// verifymodels checks that every model identifier a project depends on
// still resolves on its public registry: HuggingFace repositories from the
// model catalog and Ollama tags from the OLLAMA_MAPPINGS table.
//
// Usage:
//
//	verifymodels            # check both registries
//	verifymodels --hf       # HuggingFace only
//	verifymodels --ollama   # Ollama only
//
// Exit status is 0 when everything resolved, 1 when something is missing or
// the run failed, and 2 when the mapping table could not be found.
package main

// main is the entry point for verifymodels.
func main() {
	Execute()
}
