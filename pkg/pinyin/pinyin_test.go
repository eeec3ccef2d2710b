package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazyhaar/smartdial/pkg/script"
)

func TestSegments_Ideographs(t *testing.T) {
	s := New(0)

	segs := s.Segments("红霞李")
	require.Len(t, segs, 3)
	assert.Equal(t, []script.Segment{
		{Text: "hong", Transliterable: true, Offset: 0},
		{Text: "xia", Transliterable: true, Offset: 1},
		{Text: "li", Transliterable: true, Offset: 2},
	}, segs)
}

func TestSegments_WhitespaceDropped(t *testing.T) {
	segs := New(0).Segments("王 小明")
	require.Len(t, segs, 3)
	assert.Equal(t, "wang", segs[0].Text)
	assert.Equal(t, 0, segs[0].Offset)
	assert.Equal(t, "xiao", segs[1].Text)
	assert.Equal(t, 2, segs[1].Offset)
	assert.Equal(t, "ming", segs[2].Text)
	assert.Equal(t, 3, segs[2].Offset)
}

func TestSegments_Mixed(t *testing.T) {
	segs := New(0).Segments("李Anna")
	require.Len(t, segs, 2)
	assert.True(t, segs[0].Transliterable)
	assert.Equal(t, script.Segment{Text: "Anna", Offset: 1}, segs[1])
}

func TestSegments_Latin(t *testing.T) {
	segs := New(0).Segments("Anna Smith")
	require.Len(t, segs, 2)
	for _, s := range segs {
		assert.False(t, s.Transliterable)
	}
	assert.Equal(t, "Smith", segs[1].Text)
	assert.Equal(t, 5, segs[1].Offset)

	assert.Nil(t, New(0).Segments(""))
}

func TestSegments_SyllablesAreKeypadLetters(t *testing.T) {
	for _, s := range New(0).Segments("张伟绿女") {
		if !s.Transliterable {
			continue
		}
		for _, r := range s.Text {
			assert.True(t, r >= 'a' && r <= 'z', "syllable %q", s.Text)
		}
	}
}

func TestSegments_Cache(t *testing.T) {
	s := New(2)

	first := s.Segments("红霞")
	assert.Equal(t, 1, s.Len())

	first[0].Text = "mutated"
	again := s.Segments("红霞")
	assert.Equal(t, "hong", again[0].Text, "cached segments are not shared with callers")

	s.Segments("李")
	s.Segments("王")
	assert.Equal(t, 2, s.Len(), "cache is bounded")
}

func TestSegments_NoCache(t *testing.T) {
	s := New(0)
	s.Segments("红霞")
	assert.Zero(t, s.Len())
}

func TestTokenizerIntegration(t *testing.T) {
	tok := script.NewTokenizer(New(DefaultCacheSize))

	c := tok.Tokenize("红霞李")
	assert.Equal(t, "hong xia li", c.Text)
	assert.Equal(t, script.KindIdeograph, c.Kind)

	assert.Equal(t, "李Anna", tok.Transliterate("李Anna"))
	assert.Equal(t, "José", tok.Transliterate("José"))
}
