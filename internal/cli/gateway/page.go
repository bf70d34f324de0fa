// Package gateway provides the HTTP client for the Payrail platform API.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// cursorKeys are the envelope fields that may carry the continuation
// cursor, probed in order.
var cursorKeys = []string{"next_cursor", "cursor"}

// Page is one page of a list response.
type Page[T any] struct {
	// Items are the decoded collection entries, original order preserved.
	Items []T
	// NextCursor is the opaque continuation cursor, empty on the last page.
	NextCursor string
}

// HasMore reports whether another page exists.
func (p Page[T]) HasMore() bool {
	return p.NextCursor != ""
}

// MarshalJSON renders the page as the canonical envelope: the items
// plus an explicitly null cursor when pagination is exhausted.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	env := struct {
		Items      []T     `json:"items"`
		NextCursor *string `json:"next_cursor"`
	}{Items: p.Items}

	if env.Items == nil {
		env.Items = []T{}
	}
	if p.NextCursor != "" {
		cursor := p.NextCursor
		env.NextCursor = &cursor
	}

	return json.Marshal(env)
}

// DecodePage decodes a list envelope. The items array is taken from the
// first present key among itemKeys; resources differ in what they call
// their collection, so callers list the candidates in preference order.
func DecodePage[T any](raw json.RawMessage, itemKeys ...string) (Page[T], error) {
	var page Page[T]
	if len(raw) == 0 {
		return page, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return page, &DecodeError{Err: fmt.Errorf("list envelope: %w", err)}
	}

	if items := firstRawField(fields, itemKeys...); items != nil {
		if err := json.Unmarshal(items, &page.Items); err != nil {
			return page, &DecodeError{Err: fmt.Errorf("list items: %w", err)}
		}
	}

	if cur := firstRawField(fields, cursorKeys...); cur != nil {
		var s string
		if err := json.Unmarshal(cur, &s); err != nil {
			return page, &DecodeError{Err: fmt.Errorf("cursor: %w", err)}
		}
		page.NextCursor = s
	}

	return page, nil
}

// firstRawField returns the first non-empty, non-null field among keys.
func firstRawField(fields map[string]json.RawMessage, keys ...string) json.RawMessage {
	for _, k := range keys {
		v, ok := fields[k]
		if !ok || len(v) == 0 || bytes.Equal(v, []byte("null")) {
			continue
		}
		return v
	}
	return nil
}
