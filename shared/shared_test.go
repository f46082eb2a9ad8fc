package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alloggi/shared"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "exact", in: 450.0, want: 450.0},
		{name: "round up", in: 99.995, want: 100.0},
		{name: "round down", in: 123.454, want: 123.45},
		{name: "half away from zero", in: 0.125, want: 0.13},
		{name: "zero", in: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, shared.Round2(tt.in), 1e-9)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "450.00", shared.FormatPrice(450))
	assert.Equal(t, "149.90", shared.FormatPrice(149.9))
	assert.Equal(t, "0.00", shared.FormatPrice(0))
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 0))
	assert.Equal(t, 3, shared.CalculateTotalPage(25, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(20, 10))
}
