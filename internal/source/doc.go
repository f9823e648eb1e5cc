// Package source reads the two local inputs that list identifiers to verify.
//
//   - LoadCatalog reads the HuggingFace catalog, a JSON array of model
//     records, and returns their names in file order.
//   - ExtractMappingTags scans a Rust source file for the OLLAMA_MAPPINGS
//     table literal and returns the distinct Ollama tags it maps to.
//
// The mapping table is not parsed as Rust. It is located with a non-greedy
// pattern that ends at the first "];" after the declaration, so a "];"
// inside a string literal before the real end of the table truncates the
// block. Moving the table into its own data file would remove that
// limitation.
package source
