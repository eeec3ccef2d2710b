package smartdial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitMatcher_MatchesCombination(t *testing.T) {
	m := NewDigitMatcher(nil)

	tests := []struct {
		name  string
		query string
		want  []Range
	}{
		{"bob", "262", []Range{{0, 3}}},
		{"Bob", "262", []Range{{0, 3}}},
		{"Anna Marie", "627", []Range{{5, 8}}},
		{"Anna Marie", "262", []Range{{0, 1}, {5, 7}}},
		{"Yo-Gi-Oh", "964", []Range{{0, 4}}},
		{"Yo-Gi-Oh", "4", []Range{{3, 4}}},
		{"Zoë Ångström", "264", []Range{{4, 7}}},
		{"hong xia li", "9", []Range{{5, 6}}},
		{"  leading space", "5", []Range{{2, 3}}},
		{"room 101", "101", []Range{{5, 8}}},
		{"jean-paul", "5326", []Range{{0, 4}}},
		{"jean-paul", "53267", []Range{{0, 6}}},
	}
	for _, tt := range tests {
		got, ok := m.MatchesCombination(tt.name, tt.query)
		require.True(t, ok, "%q / %q", tt.name, tt.query)
		assert.Equal(t, tt.want, got, "%q / %q", tt.name, tt.query)
	}
}

func TestDigitMatcher_NoMatch(t *testing.T) {
	m := NewDigitMatcher(nil)

	tests := []struct{ name, query string }{
		{"bob", ""},
		{"", "2"},
		{"bob", "2622"},
		{"bob", "63"},
		{"Anna", "66"},
		{"straße", "8"},
		{"bob", "---"},
	}
	for _, tt := range tests {
		_, ok := m.MatchesCombination(tt.name, tt.query)
		assert.False(t, ok, "%q / %q", tt.name, tt.query)
	}
}

func TestDigitMatcher_WithoutInitials(t *testing.T) {
	m := NewDigitMatcher(nil).WithoutInitials()
	_, ok := m.MatchesCombination("Anna Marie", "262")
	assert.False(t, ok)

	got, ok := m.MatchesCombination("Anna Marie", "627")
	require.True(t, ok)
	assert.Equal(t, []Range{{5, 8}}, got)
}

func TestDigitMatcher_NormalizeQuery(t *testing.T) {
	m := NewDigitMatcher(nil)
	assert.Equal(t, "262", m.NormalizeQuery("bob"))
	assert.Equal(t, "262", m.NormalizeQuery("BÖB"))
	assert.Equal(t, "5551234", m.NormalizeQuery("(555) 123-4"))
	assert.Equal(t, "", m.NormalizeQuery("李"))
}
