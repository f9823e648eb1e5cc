// Package model defines the data structures shared by the verifier.
//
// This package contains the following main types:
//   - Registry: The external registry an identifier is verified against
//   - CheckResult: The HTTP outcome of looking up a single identifier
//   - RunSummary: The ordered results of one registry check
//   - Verdict: The aggregate of every check that ran
//
// Everything here lives in memory for a single run. Nothing is persisted.
package model
