package smartdial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesNumber(t *testing.T) {
	m := NewDigitMatcher(nil)

	tests := []struct {
		number string
		query  string
		want   Range
	}{
		{"5101111111", "510", Range{0, 3}},
		{"(510) 111-1111", "510", Range{0, 4}},
		{"(510) 111-1111", "510111", Range{0, 9}},
		{"+33 6 12 34 56 78", "336", Range{0, 5}},
		{"+33 6 12 34 56 78", "612", Range{4, 8}},
		{"+33612345678", "612", Range{3, 6}},
		{"06 12 34 56 78", "612", Range{1, 5}},
		{"1-510-111-1111", "510", Range{2, 5}},
		{"+44 (0) 20 7946 0000", "20", Range{8, 10}},
		{"0033 6 12 34 56 78", "612", Range{5, 9}},
	}
	for _, tt := range tests {
		got, ok := m.MatchesNumber(tt.number, tt.query)
		require.True(t, ok, "%q / %q", tt.number, tt.query)
		assert.Equal(t, tt.want, got, "%q / %q", tt.number, tt.query)
	}
}

func TestMatchesNumber_NoMatch(t *testing.T) {
	m := NewDigitMatcher(nil)

	tests := []struct{ number, query string }{
		{"5101111111", "511"},
		{"5101111111", ""},
		{"", "5"},
		{"510", "5101"},
		{"+33 6 12 34 56 78", "33612345678999"},
		{"0612345678", "0613"},
	}
	for _, tt := range tests {
		_, ok := m.MatchesNumber(tt.number, tt.query)
		assert.False(t, ok, "%q / %q", tt.number, tt.query)
	}
}

func TestMatchesNumber_LettersDialled(t *testing.T) {
	got, ok := NewDigitMatcher(nil).MatchesNumber("1-800-356-9377", "800flowers")
	require.True(t, ok)
	assert.Equal(t, Range{2, 14}, got)
}
