package model

import "strings"

// URLPlaceholder marks the substitution point in a registry URL template.
const URLPlaceholder = "{id}"

// Registry identifies an external model registry that identifiers are
// verified against.
type Registry string

const (
	// RegistryHuggingFace is the HuggingFace model hub. Identifiers are
	// repository names such as "meta-llama/Llama-3.1-8B-Instruct".
	RegistryHuggingFace Registry = "huggingface"

	// RegistryOllama is the Ollama library. Identifiers are tags such as
	// "llama3.1:8b".
	RegistryOllama Registry = "ollama"
)

// Registries lists every supported registry in the order checks run.
var Registries = []Registry{RegistryHuggingFace, RegistryOllama}

// String returns the registry key.
func (r Registry) String() string {
	return string(r)
}

// DisplayName returns the name shown in progress and summary output.
func (r Registry) DisplayName() string {
	switch r {
	case RegistryHuggingFace:
		return "HuggingFace"
	case RegistryOllama:
		return "Ollama"
	default:
		return "Unknown"
	}
}

// Noun returns the word used for a single identifier of this registry.
// HuggingFace identifiers are models, Ollama identifiers are tags.
func (r Registry) Noun() string {
	if r == RegistryOllama {
		return "tag"
	}
	return "model"
}

// DefaultURLTemplate returns the public lookup URL for the registry.
// A GET on the expanded URL answers 200 when the identifier exists.
func (r Registry) DefaultURLTemplate() string {
	switch r {
	case RegistryHuggingFace:
		return "https://huggingface.co/api/models/" + URLPlaceholder
	case RegistryOllama:
		return "https://ollama.com/library/" + URLPlaceholder
	default:
		return ""
	}
}

// ExpandURL substitutes identifier into template.
// The identifier is inserted verbatim so "org/name" stays a path.
func ExpandURL(template, identifier string) string {
	return strings.Replace(template, URLPlaceholder, identifier, 1)
}
