// Package registry checks whether identifiers exist on a model registry.
//
// A Checker performs exactly one GET per identifier and reduces the
// response to its HTTP status code. Requests are never retried and never
// run concurrently: RunBatch visits identifiers one at a time and waits a
// fixed delay after every request, which keeps the tool under the informal
// rate limits of huggingface.co and ollama.com.
//
// # Usage
//
//	checker := registry.NewChecker(
//	    registry.WithTimeout(10*time.Second),
//	    registry.WithDelay(300*time.Millisecond),
//	    registry.WithObserver(reporter),
//	)
//	summary := checker.RunBatch(ctx, model.RegistryHuggingFace, names,
//	    model.RegistryHuggingFace.DefaultURLTemplate())
package registry
