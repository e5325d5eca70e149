package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFunds(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		present bool
	}{
		{name: "thousands separator", raw: "1,200", want: 1200.0, present: true},
		{name: "K suffix", raw: "5K", want: 5000.0, present: true},
		{name: "M suffix with decimal", raw: "12.3M", want: 12300000.0, present: true},
		{name: "B suffix", raw: "2B", want: 2e9, present: true},
		{name: "plain integer", raw: "42", want: 42.0, present: true},
		{name: "currency symbol", raw: "$1,200", want: 1200.0, present: true},
		{name: "lowercase suffix", raw: "3.5m", want: 3500000.0, present: true},
		{name: "suffix after space", raw: "7 K", want: 7000.0, present: true},
		{name: "surrounding whitespace", raw: "  250  ", want: 250.0, present: true},
		{name: "text", raw: "abc", present: false},
		{name: "empty", raw: "", present: false},
		{name: "symbol only", raw: "$", present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeFunds(tt.raw)
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
		want    int
	}{
		{name: "full month name", raw: "March", present: true, want: 3},
		{name: "december", raw: "December", present: true, want: 12},
		{name: "digits", raw: "7", present: true, want: 7},
		{name: "out of range passthrough", raw: "13", present: true, want: 13},
		{name: "fractional numeric truncates", raw: "3.0", present: true, want: 3},
		{name: "absent", raw: "", present: false, want: 0},
		{name: "empty cell", raw: "", present: true, want: 0},
		{name: "unmapped name", raw: "Smarch", present: true, want: 0},
		{name: "wrong case", raw: "march", present: true, want: 0},
		{name: "abbreviation", raw: "Mar", present: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMonth(tt.raw, tt.present))
		})
	}
}
