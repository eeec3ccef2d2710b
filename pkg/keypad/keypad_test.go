package keypad

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m := Default()
	tests := []struct {
		letter rune
		digit  rune
	}{
		{'a', '2'}, {'c', '2'}, {'d', '3'}, {'i', '4'}, {'l', '5'},
		{'o', '6'}, {'s', '7'}, {'v', '8'}, {'w', '9'}, {'z', '9'},
	}
	for _, tt := range tests {
		d, ok := m.Digit(tt.letter)
		require.True(t, ok, "letter %q", tt.letter)
		assert.Equal(t, tt.digit, d, "letter %q", tt.letter)
	}

	_, ok := m.Digit('A')
	assert.False(t, ok, "uppercase is not a keypad letter")
	assert.Same(t, m, Default())
}

func TestKey(t *testing.T) {
	m := Default()
	d, ok := m.Key('7')
	assert.True(t, ok)
	assert.Equal(t, '7', d)

	d, ok = m.Key('p')
	assert.True(t, ok)
	assert.Equal(t, '7', d)

	_, ok = m.Key('-')
	assert.False(t, ok)
}

func TestCharToKeyIsCopy(t *testing.T) {
	m := Default()
	table := m.CharToKey()
	require.Len(t, table, 26)
	table['a'] = '9'

	d, _ := m.Digit('a')
	assert.Equal(t, '2', d)
}

func TestGroups(t *testing.T) {
	g := Default().Groups()
	assert.Equal(t, "pqrs", g["7"])
	assert.Equal(t, "wxyz", g["9"])
	assert.Len(t, g, 8)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]string
	}{
		{"missing letters", map[string]string{"2": "abc"}},
		{"duplicate letter", map[string]string{"2": "abcdefghijklm", "3": "mnopqrstuvwxyz"}},
		{"bad key", map[string]string{"22": "abcdefghijklmnopqrstuvwxyz"}},
		{"uppercase", map[string]string{"2": "Abcdefghijklmnopqrstuvwxyz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.keys)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	layout := `keys:
  "2": abcd
  "3": efg
  "4": hij
  "5": klm
  "6": nop
  "7": qrst
  "8": uvw
  "9": xyz
`
	require.NoError(t, os.WriteFile(path, []byte(layout), 0o644))

	m, err := Load(path)
	require.NoError(t, err)

	d, ok := m.Digit('d')
	require.True(t, ok)
	assert.Equal(t, '2', d)
	d, _ = m.Digit('x')
	assert.Equal(t, '9', d)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
