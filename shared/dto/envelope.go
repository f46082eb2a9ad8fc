package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ListEnvelope is the single canonical shape for paginated list responses.
//
// The backend has shipped at least three list envelopes over time: plain DRF
// pagination (count/next/previous/results), a custom wrapper
// (count/results/timestamp/num_pages/page_size/current_page), and a bare
// array. All of them are normalized here so nothing downstream ever branches
// on response shape.
type ListEnvelope[T any] struct {
	Count       int
	Results     []T
	NumPages    int
	PageSize    int
	CurrentPage int
}

func (e *ListEnvelope[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*e = ListEnvelope[T]{Results: []T{}}

		return nil
	}

	if data[0] == '[' {
		var results []T
		if err := json.Unmarshal(data, &results); err != nil {
			return fmt.Errorf("decoding bare list: %w", err)
		}

		*e = ListEnvelope[T]{Count: len(results), Results: results}

		return nil
	}

	var raw struct {
		Count       *int            `json:"count"`
		Results     json.RawMessage `json:"results"`
		NumPages    int             `json:"num_pages"`
		PageSize    int             `json:"page_size"`
		CurrentPage int             `json:"current_page"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding list envelope: %w", err)
	}

	if raw.Results == nil {
		return fmt.Errorf("unrecognized list envelope: missing results")
	}

	var results []T
	if err := json.Unmarshal(raw.Results, &results); err != nil {
		return fmt.Errorf("decoding list envelope results: %w", err)
	}

	count := len(results)
	if raw.Count != nil {
		count = *raw.Count
	}

	*e = ListEnvelope[T]{
		Count:       count,
		Results:     results,
		NumPages:    raw.NumPages,
		PageSize:    raw.PageSize,
		CurrentPage: raw.CurrentPage,
	}

	return nil
}
