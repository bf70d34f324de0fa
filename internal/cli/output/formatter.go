// Package output provides output rendering for the Payrail CLI.
package output

import (
	"io"
)

// Format represents an output format.
type Format string

const (
	// FormatTable renders rows as fixed-width text columns.
	FormatTable Format = "table"
	// FormatJSON renders the underlying structure as indented JSON.
	FormatJSON Format = "json"
)

// Formatter formats data for display.
type Formatter interface {
	// Format writes formatted data to the writer.
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format.
// Unknown formats fall back to table output.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &TableFormatter{}
	}
}
