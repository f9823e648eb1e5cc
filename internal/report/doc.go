// Package report renders verification progress and results.
//
// This package contains writers for different output formats:
//   - TerminalWriter: streaming progress lines, per-registry summaries and
//     the final PASS/FAIL line, for stdout
//   - MarkdownWriter: a GitHub Flavored Markdown summary, suitable for
//     $GITHUB_STEP_SUMMARY
//   - JSONWriter: a machine-readable document with every lookup result
//
// TerminalWriter also implements registry.Observer so that every result is
// printed the moment it is known rather than buffered until the end.
package report
