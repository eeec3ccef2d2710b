package fold

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold_KeypadLettersUnchanged(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		got, ok := Fold(r)
		require.True(t, ok, "%q", r)
		assert.Equal(t, r, got)
	}
}

func TestFold_Uppercase(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		got, ok := Fold(r)
		require.True(t, ok, "%q", r)
		assert.Equal(t, r-'A'+'a', got)
	}
}

func TestFold_Diacritics(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'À', 'a'}, {'é', 'e'}, {'Ç', 'c'}, {'ñ', 'n'}, {'Ø', 'o'},
		{'ü', 'u'}, {'Ý', 'y'}, {'ÿ', 'y'}, {'Ł', 'l'}, {'ő', 'o'},
		{'Ș', 's'}, {'ț', 't'}, {'ǎ', 'a'}, {'ǚ', 'u'}, {'ĸ', 'k'},
		{'ſ', 's'}, {'ƒ', 'f'}, {'ȳ', 'y'}, {'Đ', 'd'}, {'ı', 'i'},
	}
	for _, tt := range tests {
		got, ok := Fold(tt.in)
		require.True(t, ok, "%q", tt.in)
		assert.Equal(t, tt.want, got, "%q", tt.in)
	}
}

func TestFold_NoMapping(t *testing.T) {
	for _, r := range []rune{
		'ß', 'æ', 'Æ', 'œ', 'Œ', 'Þ', 'þ', 'Ĳ', // multi-letter decompositions
		'0', '9', ' ', '-', '.', // not letters
		'李', 'я', 'α', 'ȴ', 'ạ', // outside the table
		-1, utf8.MaxRune,
	} {
		_, ok := Fold(r)
		assert.False(t, ok, "%q", r)
	}
}

func TestFold_TableEntriesAreLowercaseLetters(t *testing.T) {
	for i, b := range table {
		if b == 0 {
			continue
		}
		assert.True(t, b >= 'a' && b <= 'z', "U+%04X maps to %q", i, b)
	}
}

func TestFold_Deterministic(t *testing.T) {
	for r := rune(0); r < tableSize+16; r++ {
		a, okA := Fold(r)
		b, okB := Fold(r)
		assert.Equal(t, okA, okB)
		assert.Equal(t, a, b)
	}
}

func TestString(t *testing.T) {
	got, ok := String("Žižek")
	require.True(t, ok)
	assert.Equal(t, "zizek", got)

	got, ok = String("")
	require.True(t, ok)
	assert.Equal(t, "", got)

	_, ok = String("Straße")
	assert.False(t, ok)

	_, ok = String("jean paul")
	assert.False(t, ok, "space has no mapping")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "francois-rene 2", Key("François-René 2"))
	assert.Equal(t, "straße", Key("Straße"))
	assert.Equal(t, "", Key(""))
}
