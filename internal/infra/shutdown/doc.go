// Package shutdown provides interrupt handling for CLI invocations.
//
// A one-shot command does not need hook orchestration; it needs a
// context that ends when the user hits Ctrl-C so in-flight HTTP
// requests are abandoned cleanly:
//
//   - shutdown.go: NotifyContext and the termination signal set
package shutdown
