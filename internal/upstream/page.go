package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Page is the canonical shape every list endpoint is normalized into,
// regardless of how the upstream chose to serialize it.
type Page[T any] struct {
	Items []T
	Next  string
	Prev  string
	Count int
}

// HasNext reports whether a further page exists.
func (p Page[T]) HasNext() bool { return p.Next != "" }

// envelope is the DRF-style pagination wrapper some endpoints use.
type envelope struct {
	Results  json.RawMessage `json:"results"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Count    int             `json:"count"`
}

// DecodeList normalizes the upstream's two list shapes, a bare JSON array or
// a {results, next, previous, count} envelope, into a Page. This is the
// single place in the codebase allowed to branch on response shape.
func DecodeList[T any](raw []byte) (Page[T], error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return Page[T]{Items: []T{}}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Page[T]{}, fmt.Errorf("failed to decode list: %w", err)
		}
		return Page[T]{Items: items, Count: len(items)}, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Page[T]{}, fmt.Errorf("failed to decode paginated envelope: %w", err)
	}
	if env.Results == nil {
		return Page[T]{}, fmt.Errorf("response is neither a list nor a paginated envelope")
	}
	var items []T
	if err := json.Unmarshal(env.Results, &items); err != nil {
		return Page[T]{}, fmt.Errorf("failed to decode envelope results: %w", err)
	}
	page := Page[T]{Items: items, Count: env.Count}
	if env.Next != nil {
		page.Next = *env.Next
	}
	if env.Previous != nil {
		page.Prev = *env.Previous
	}
	return page, nil
}
