// Package smartdial matches keypad queries against contact names written in
// Latin or Chinese script, and reports which glyphs of the original name to
// highlight.
package smartdial

import (
	"sort"
	"sync"

	"github.com/hazyhaar/smartdial/pkg/keypad"
	"github.com/hazyhaar/smartdial/pkg/pinyin"
	"github.com/hazyhaar/smartdial/pkg/script"
)

// Range is a half-open interval [Start, End) of rune offsets.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of runes covered.
func (r Range) Len() int { return r.End - r.Start }

// NameMatcher matches a keypad query against a Latin name. Ranges are rune
// offsets into name.
type NameMatcher interface {
	MatchesCombination(name, query string) ([]Range, bool)
}

// separator marks canonical positions that belong to no token.
const separator = -1

// Matcher runs a NameMatcher against the canonical form of a display name
// and maps the ranges it finds back onto the display name.
type Matcher struct {
	tok    *script.Tokenizer
	names  NameMatcher
	digits *DigitMatcher
}

// NewMatcher returns a Matcher. names is consulted with canonical strings;
// digits matches phone numbers and may be nil for keypad.Default().
func NewMatcher(tok *script.Tokenizer, names NameMatcher, digits *DigitMatcher) *Matcher {
	if digits == nil {
		digits = NewDigitMatcher(nil)
	}
	if names == nil {
		names = digits
	}
	return &Matcher{tok: tok, names: names, digits: digits}
}

var (
	defaultOnce    sync.Once
	defaultMatcher *Matcher
)

// Default returns the process-wide Matcher: pinyin segmentation, the E.161
// keypad and initials matching.
func Default() *Matcher {
	defaultOnce.Do(func() {
		digits := NewDigitMatcher(keypad.Default())
		tok := script.NewTokenizer(pinyin.New(pinyin.DefaultCacheSize))
		defaultMatcher = NewMatcher(tok, digits, digits)
	})
	return defaultMatcher
}

// Tokenize returns the canonical form of name.
func (m *Matcher) Tokenize(name string) script.Canonical {
	return m.tok.Tokenize(name)
}

// Transliterate returns the canonical text of name.
func (m *Matcher) Transliterate(name string) string {
	return m.tok.Transliterate(name)
}

// MatchesCombination reports whether query matches name and returns the
// ranges of name to highlight.
//
// For a Latin name the ranges are the ones found by the NameMatcher. For a
// transliterated name every syllable touched by a match highlights the one
// glyph it came from, once. A match that only touched separators yields an
// empty result with true: matched, nothing to highlight.
func (m *Matcher) MatchesCombination(name, query string) ([]Range, bool) {
	c := m.tok.Tokenize(name)

	ranges, ok := m.names.MatchesCombination(c.Text, query)
	if !ok {
		return nil, false
	}
	if c.Text == name {
		return ranges, true
	}
	return remap(c, ranges), true
}

// MatchesNumber reports whether query is a dialled prefix of number.
func (m *Matcher) MatchesNumber(number, query string) (Range, bool) {
	return m.digits.MatchesNumber(number, query)
}

// NormalizeQuery converts query to keypad digits.
func (m *Matcher) NormalizeQuery(query string) string {
	return m.digits.NormalizeQuery(query)
}

// tokenOriginMap returns, for every rune of a canonical string, the ordinal
// of the token it belongs to, or separator.
func tokenOriginMap(canonical string) []int {
	origins := make([]int, 0, len(canonical))
	token := 0
	for _, r := range canonical {
		if r == script.Separator {
			origins = append(origins, separator)
			token++
			continue
		}
		origins = append(origins, token)
	}
	return origins
}

// remap projects canonical ranges onto the glyphs the matched tokens came
// from. The result is sorted and holds one unit range per glyph.
func remap(c script.Canonical, ranges []Range) []Range {
	origins := tokenOriginMap(c.Text)

	seen := make(map[int]struct{})
	var tokens []int
	for _, r := range ranges {
		for p := max(r.Start, 0); p < r.End && p < len(origins); p++ {
			t := origins[p]
			if t == separator {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			tokens = append(tokens, t)
		}
	}
	sort.Ints(tokens)

	out := make([]Range, 0, len(tokens))
	for _, t := range tokens {
		at := t
		if t < len(c.Origins) {
			at = c.Origins[t]
		}
		out = append(out, Range{Start: at, End: at + 1})
	}
	return out
}
