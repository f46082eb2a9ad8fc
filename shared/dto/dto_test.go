package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alloggi/shared/dto"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "number", in: `150.5`, want: 150.5},
		{name: "numeric string", in: `"150.50"`, want: 150.5},
		{name: "integer string", in: `"85"`, want: 85},
		{name: "null", in: `null`, want: 0},
		{name: "empty string", in: `""`, want: 0},
		{name: "garbage string", in: `"abc"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f dto.FlexFloat
			err := json.Unmarshal([]byte(tt.in), &f)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, f.Float64(), 1e-9)
		})
	}
}

type item struct {
	ID int `json:"id"`
}

func TestListEnvelopeShapes(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantCount int
		wantIDs   []int
	}{
		{
			name:      "drf envelope",
			in:        `{"count":3,"next":"http://x/?page=2","previous":null,"results":[{"id":1},{"id":2}]}`,
			wantCount: 3,
			wantIDs:   []int{1, 2},
		},
		{
			name:      "custom envelope",
			in:        `{"count":2,"results":[{"id":7},{"id":9}],"timestamp":"2025-06-01T00:00:00","num_pages":1,"page_size":10,"current_page":1}`,
			wantCount: 2,
			wantIDs:   []int{7, 9},
		},
		{
			name:      "bare array",
			in:        `[{"id":4}]`,
			wantCount: 1,
			wantIDs:   []int{4},
		},
		{
			name:      "missing count falls back to length",
			in:        `{"results":[{"id":1},{"id":2}]}`,
			wantCount: 2,
			wantIDs:   []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var envelope dto.ListEnvelope[item]
			require.NoError(t, json.Unmarshal([]byte(tt.in), &envelope))

			assert.Equal(t, tt.wantCount, envelope.Count)

			ids := make([]int, len(envelope.Results))
			for i, it := range envelope.Results {
				ids[i] = it.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestListEnvelopeUnrecognized(t *testing.T) {
	var envelope dto.ListEnvelope[item]
	assert.Error(t, json.Unmarshal([]byte(`{"detail":"not a list"}`), &envelope))
}
