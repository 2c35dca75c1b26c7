package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"plain", "9.00", 9.00, false},
		{"dollar prefix", "$9.00", 9.00, false},
		{"dollar with space", "$ 12.50", 12.50, false},
		{"euro prefix", "€11.25", 11.25, false},
		{"thousands separator", "$1,250.50", 1250.50, false},
		{"integer", "9", 9, false},
		{"zero", "$0.00", 0, false},
		{"negative rejected", "-5.00", 0, true},
		{"no digits", "$", 0, true},
		{"empty", "", 0, true},
		{"garbage", "free", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "9.00", FormatPrice(9))
	assert.Equal(t, "9.00", FormatPrice(9.001))
	assert.Equal(t, "12.35", FormatPrice(12.345))
	assert.Equal(t, "0.00", FormatPrice(0))
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 10.00, Round2(9.999), 1e-9)
	assert.InDelta(t, 9.99, Round2(9.994), 1e-9)
	assert.InDelta(t, 0, Round2(0.004), 1e-9)
}
