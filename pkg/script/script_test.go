package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableSegmenter transliterates the runes it knows, one segment per rune,
// and groups every run of unknown runes into one untransliterable segment.
type tableSegmenter struct {
	syllables map[rune]string
	calls     int
}

func (s *tableSegmenter) Segments(name string) []Segment {
	s.calls++
	var (
		out     []Segment
		pending []rune
		start   int
	)
	flush := func() {
		if len(pending) > 0 {
			out = append(out, Segment{Text: string(pending), Offset: start})
			pending = nil
		}
	}
	i := 0
	for _, r := range name {
		if syl, ok := s.syllables[r]; ok {
			flush()
			out = append(out, Segment{Text: syl, Transliterable: true, Offset: i})
		} else {
			if len(pending) == 0 {
				start = i
			}
			pending = append(pending, r)
		}
		i++
	}
	flush()
	return out
}

func newSegmenter() *tableSegmenter {
	return &tableSegmenter{syllables: map[rune]string{
		'红': "hong",
		'霞': "xia",
		'李': "li",
		'王': "wang",
	}}
}

func TestTokenize_Ideographs(t *testing.T) {
	tok := NewTokenizer(newSegmenter())

	c := tok.Tokenize("红霞李")
	assert.Equal(t, "hong xia li", c.Text)
	assert.Equal(t, KindIdeograph, c.Kind)
	assert.Equal(t, []int{0, 1, 2}, c.Origins)
}

func TestTokenize_PartialFallsBack(t *testing.T) {
	tok := NewTokenizer(newSegmenter())

	for _, name := range []string{"李Anna", "Anna李", "红?霞", "王 Bob"} {
		c := tok.Tokenize(name)
		assert.Equal(t, name, c.Text, "never a hybrid string")
		assert.Equal(t, KindLatin, c.Kind)
		assert.Nil(t, c.Origins)
	}
}

func TestTokenize_LatinNames(t *testing.T) {
	tok := NewTokenizer(newSegmenter())

	for _, name := range []string{"bob", "Anna Smith", "Zoë"} {
		c := tok.Tokenize(name)
		assert.Equal(t, name, c.Text)
		assert.Equal(t, KindLatin, c.Kind)
	}
}

func TestTokenize_Empty(t *testing.T) {
	seg := newSegmenter()
	c := NewTokenizer(seg).Tokenize("")
	assert.Equal(t, "", c.Text)
	assert.Equal(t, KindLatin, c.Kind)
	assert.Zero(t, seg.calls, "segmenter not consulted for empty names")
}

type fixedSegmenter []Segment

func (f fixedSegmenter) Segments(string) []Segment { return f }

func TestTokenize_NoSegmentsEqualsWholeUntransliterable(t *testing.T) {
	none := NewTokenizer(fixedSegmenter(nil)).Tokenize("abc")
	whole := NewTokenizer(fixedSegmenter{{Text: "abc"}}).Tokenize("abc")
	assert.Equal(t, none, whole)
}

func TestTokenize_RejectsSeparatorInsideSyllable(t *testing.T) {
	seg := fixedSegmenter{{Text: "a b", Transliterable: true}}
	c := NewTokenizer(seg).Tokenize("x")
	assert.Equal(t, KindLatin, c.Kind)
	assert.Equal(t, "x", c.Text)
}

func TestTokenize_NilSegmenter(t *testing.T) {
	var tok *Tokenizer
	assert.Equal(t, "红霞", tok.Transliterate("红霞"))
	assert.Equal(t, "红霞", NewTokenizer(nil).Transliterate("红霞"))
}

func TestTokenize_Deterministic(t *testing.T) {
	tok := NewTokenizer(newSegmenter())
	for _, name := range []string{"红霞李", "李Anna", ""} {
		require.Equal(t, tok.Tokenize(name), tok.Tokenize(name))
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "latin", KindLatin.String())
	assert.Equal(t, "ideograph", KindIdeograph.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
