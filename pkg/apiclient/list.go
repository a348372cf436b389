package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
)

type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// List is a collection response. The API answers either with a bare JSON array
// or with {"data": [...], "meta": {"total": n}}; both decode into List.
type List[T any] struct {
	Items []T
	Meta  Meta
	// Paged reports whether the response carried a meta block.
	Paged bool
}

func (l *List[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = List[T]{}
		return nil
	}

	switch b[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = List[T]{Items: items, Meta: Meta{Total: len(items)}}
		return nil
	case '{':
		var paged struct {
			Data []T  `json:"data"`
			Meta *Meta `json:"meta"`
		}
		if err := json.Unmarshal(b, &paged); err != nil {
			return err
		}
		out := List[T]{Items: paged.Data, Meta: Meta{Total: len(paged.Data)}}
		if paged.Meta != nil {
			out.Meta = *paged.Meta
			out.Paged = true
		}
		*l = out
		return nil
	}
	return errors.New("apiclient: list response is neither an array nor an object")
}
