// Package output provides output rendering for the Payrail CLI.
//
// This package handles all command output:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: fixed-width table and field/value sheet rendering
//   - json.go: indented JSON output
//
// Rendering happens in exactly one of two modes, chosen once per
// invocation from the global --json flag:
//
//   - Table mode renders normalized rows through a TableSpec with
//     declared column widths; cells are truncated, never wrapped.
//   - JSON mode writes the underlying structure verbatim as indented
//     JSON, with no truncation or column formatting.
package output
