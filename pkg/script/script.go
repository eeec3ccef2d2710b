// Package script turns a display name into the canonical Latin string that
// keypad matching runs against.
//
// Two strategies exist, picked per name: a Latin name is used as is, and a
// name made entirely of transliterable ideographs becomes its space-joined
// syllables. A name that can only be partly transliterated falls back to the
// Latin strategy, so callers never see a hybrid string whose positions
// cannot be traced back to the original glyphs.
package script

import "strings"

// Separator joins syllable tokens in an ideograph canonical string.
const Separator = ' '

// Kind tags the strategy that produced a Canonical.
type Kind uint8

const (
	// KindLatin means the canonical text is the display name unchanged.
	KindLatin Kind = iota
	// KindIdeograph means the canonical text is space-joined syllables.
	KindIdeograph
)

func (k Kind) String() string {
	switch k {
	case KindLatin:
		return "latin"
	case KindIdeograph:
		return "ideograph"
	default:
		return "unknown"
	}
}

// Segment is one piece of a display name as split by a Segmenter.
type Segment struct {
	// Text is the syllable when Transliterable, the original text otherwise.
	Text string
	// Transliterable is false for text the segmenter cannot convert.
	Transliterable bool
	// Offset is the rune index in the display name where the segment starts.
	Offset int
}

// Segmenter splits a display name into ordered segments. A syllable segment
// must come from exactly one glyph of the name.
type Segmenter interface {
	Segments(name string) []Segment
}

// Canonical is the result of tokenizing a display name.
type Canonical struct {
	Text string
	Kind Kind
	// Origins holds, for KindIdeograph, the rune offset in the display name
	// of the glyph each token came from. Nil for KindLatin.
	Origins []int
}

// Tokenizer produces Canonical strings. The zero value only knows Latin.
type Tokenizer struct {
	seg Segmenter
}

// NewTokenizer returns a Tokenizer backed by seg. A nil seg disables the
// ideograph strategy.
func NewTokenizer(seg Segmenter) *Tokenizer {
	return &Tokenizer{seg: seg}
}

// Tokenize returns the canonical form of name.
func (t *Tokenizer) Tokenize(name string) Canonical {
	latin := Canonical{Text: name, Kind: KindLatin}
	if name == "" || t == nil || t.seg == nil {
		return latin
	}

	segs := t.seg.Segments(name)
	if len(segs) == 0 {
		return latin
	}

	syllables := make([]string, 0, len(segs))
	origins := make([]int, 0, len(segs))
	for _, s := range segs {
		if !s.Transliterable || s.Text == "" || strings.ContainsRune(s.Text, Separator) {
			return latin
		}
		syllables = append(syllables, s.Text)
		origins = append(origins, s.Offset)
	}

	return Canonical{
		Text:    strings.Join(syllables, string(Separator)),
		Kind:    KindIdeograph,
		Origins: origins,
	}
}

// Transliterate returns only the canonical text of name.
func (t *Tokenizer) Transliterate(name string) string {
	return t.Tokenize(name).Text
}
