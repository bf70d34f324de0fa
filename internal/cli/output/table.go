// Package output provides output rendering for the Payrail CLI.
package output

import (
	"fmt"
	"io"
	"strings"
)

// ellipsis marks truncated cell values.
const ellipsis = "..."

// Column describes one rendered table column.
type Column struct {
	// Key selects the cell value from a Row.
	Key string
	// Header is the column title.
	Header string
	// Width bounds the printed cell length in runes.
	Width int
}

// TableSpec describes how rows of one resource are rendered.
type TableSpec struct {
	// Resource is the plural resource name used in the empty message.
	Resource string
	Columns  []Column
}

// Row holds the cell values of one table row, keyed by column key.
// Keys absent from the row render as empty cells.
type Row map[string]string

// CursorHint is a continuation hint printed after a table when more
// results are available.
type CursorHint struct {
	// Label qualifies the hint when a listing merges multiple streams.
	// Empty for single-stream listings.
	Label  string
	Cursor string
}

// Table is a fully normalized table ready for rendering.
type Table struct {
	Spec  TableSpec
	Rows  []Row
	Hints []CursorHint
}

// AddRow appends a row to the table.
func (t *Table) AddRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// AddHint appends a continuation hint.
func (t *Table) AddHint(label, cursor string) {
	t.Hints = append(t.Hints, CursorHint{Label: label, Cursor: cursor})
}

// Render writes the table. An empty row set prints only the
// "No <resource> found." message, never an empty header.
func (t *Table) Render(w io.Writer) error {
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintf(w, "No %s found.\n", t.Spec.Resource)
		return err
	}

	headers := make([]string, len(t.Spec.Columns))
	for i, col := range t.Spec.Columns {
		headers[i] = fit(col.Header, col.Width)
	}
	if _, err := fmt.Fprintln(w, joinCells(headers)); err != nil {
		return err
	}

	for _, row := range t.Rows {
		cells := make([]string, len(t.Spec.Columns))
		for i, col := range t.Spec.Columns {
			cells[i] = fit(row[col.Key], col.Width)
		}
		if _, err := fmt.Fprintln(w, joinCells(cells)); err != nil {
			return err
		}
	}

	for _, hint := range t.Hints {
		var err error
		if hint.Label != "" {
			_, err = fmt.Fprintf(w, "More %s results available: --cursor '%s'\n", hint.Label, hint.Cursor)
		} else {
			_, err = fmt.Fprintf(w, "More results available: --cursor '%s'\n", hint.Cursor)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Field is one line of a detail sheet.
type Field struct {
	Name  string
	Value string
}

// Sheet renders a single entity as aligned field/value lines.
type Sheet struct {
	Fields []Field
}

// AddField appends a field line to the sheet.
func (s *Sheet) AddField(name, value string) {
	s.Fields = append(s.Fields, Field{Name: name, Value: value})
}

// Render writes one "Name:  Value" line per field with values
// vertically aligned. Sheet values are never truncated.
func (s *Sheet) Render(w io.Writer) error {
	width := 0
	for _, f := range s.Fields {
		if n := len(f.Name); n > width {
			width = n
		}
	}
	for _, f := range s.Fields {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width+1, f.Name+":", f.Value); err != nil {
			return err
		}
	}
	return nil
}

// TableFormatter renders normalized tables and detail sheets.
type TableFormatter struct{}

// Format renders data. Handlers normalize everything they print into a
// Table or a Sheet first; any other type is a programming error.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case *Table:
		return v.Render(w)
	case Table:
		return v.Render(w)
	case *Sheet:
		return v.Render(w)
	case Sheet:
		return v.Render(w)
	case nil:
		return nil
	default:
		return fmt.Errorf("output: cannot render %T as a table", data)
	}
}

// fit truncates or pads s to exactly width runes. Truncated values
// keep a trailing ellipsis so cut-off cells are visible as such.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		if width <= len(ellipsis) {
			return ellipsis[:width]
		}
		return string(runes[:width-len(ellipsis)]) + ellipsis
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}

// joinCells joins padded cells with a two-space gutter and strips the
// trailing padding from the line.
func joinCells(cells []string) string {
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
