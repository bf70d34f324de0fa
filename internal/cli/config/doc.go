// Package config provides CLI configuration for Payrail.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: Config struct (~/.payrail/config.yaml) and settable keys
//   - loader.go: resolution (defaults < file < env < flags) and persistence
//
// Resolution and persistence are deliberately separate paths: Load
// merges every source for the running invocation, while LoadFile/Save
// touch only the file so environment values and flag overrides are
// never written to disk.
package config
