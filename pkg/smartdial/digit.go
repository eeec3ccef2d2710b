package smartdial

import (
	"github.com/hazyhaar/smartdial/pkg/fold"
	"github.com/hazyhaar/smartdial/pkg/keypad"
)

// initialLengthLimit is how many leading query digits may each be matched
// against the initial of a separate token.
const initialLengthLimit = 1

// DigitMatcher matches a keypad query against a Latin name.
//
// A query matches when it spells, on the keypad, a run of the name that
// starts at a token boundary; separators inside that run are skipped. With
// initials enabled, the first query digit may also match the initial of a
// token and the remainder of the query the tokens that follow it, so "262"
// finds "Anna Marie" through A + Ma.
type DigitMatcher struct {
	keys     *keypad.Mapping
	initials bool
}

var _ NameMatcher = (*DigitMatcher)(nil)

// NewDigitMatcher returns a matcher using keys, with initials matching on.
// A nil keys uses keypad.Default().
func NewDigitMatcher(keys *keypad.Mapping) *DigitMatcher {
	if keys == nil {
		keys = keypad.Default()
	}
	return &DigitMatcher{keys: keys, initials: true}
}

// WithoutInitials returns a copy that only reports contiguous matches.
func (m *DigitMatcher) WithoutInitials() *DigitMatcher {
	c := *m
	c.initials = false
	return &c
}

// Keys returns the keypad mapping in use.
func (m *DigitMatcher) Keys() *keypad.Mapping {
	return m.keys
}

// NormalizeQuery converts a query to keypad digits: digits are kept,
// letters (decorated or not) become the key they are printed on, and
// everything else is dropped.
func (m *DigitMatcher) NormalizeQuery(query string) string {
	out := make([]rune, 0, len(query))
	for _, r := range query {
		if d, ok := m.key(r); ok {
			out = append(out, d)
		}
	}
	return string(out)
}

// MatchesCombination reports whether query matches name and where, in rune
// offsets of name.
func (m *DigitMatcher) MatchesCombination(name, query string) ([]Range, bool) {
	q := []rune(m.NormalizeQuery(query))
	return m.match([]rune(name), q)
}

func (m *DigitMatcher) match(name, query []rune) ([]Range, bool) {
	n, q := len(name), len(query)
	if q == 0 || n < q {
		return nil, false
	}

	var (
		partial    []Range
		nameAt     int
		queryAt    int
		tokenStart int
		skipped    int // separators crossed inside the current match
	)
	for nameAt < n && queryAt < q {
		key, ok := m.key(name[nameAt])
		if !ok {
			nameAt++
			if queryAt == 0 {
				tokenStart = nameAt
			} else {
				skipped++
			}
			continue
		}

		if key != query[queryAt] {
			// A failure at the first query digit or in the middle of a token
			// cannot recover within this token. A failure right after a
			// separator restarts the query on the current token instead, so
			// "964" still finds "Yo-Gi-Oh".
			if queryAt == 0 || m.dialable(name[nameAt-1]) {
				for nameAt < n && m.dialable(name[nameAt]) {
					nameAt++
				}
				nameAt++
			}
			queryAt = 0
			skipped = 0
			tokenStart = nameAt
			continue
		}

		if queryAt == q-1 {
			return []Range{{Start: tokenStart, End: tokenStart + q + skipped}}, true
		}

		if m.initials && queryAt < initialLengthLimit {
			end := nameAt
			for end < n && m.dialable(name[end]) {
				end++
			}
			if end < n-1 {
				if rest, ok := m.match(name[end+1:], query[queryAt+1:]); ok {
					partial = append([]Range{{Start: nameAt, End: nameAt + 1}}, shift(rest, end+1)...)
				}
			}
		}
		nameAt++
		queryAt++
	}

	if len(partial) > 0 {
		return partial, true
	}
	return nil, false
}

// key folds r and returns the digit it dials.
func (m *DigitMatcher) key(r rune) (rune, bool) {
	if f, ok := fold.Fold(r); ok {
		r = f
	}
	return m.keys.Key(r)
}

func (m *DigitMatcher) dialable(r rune) bool {
	_, ok := m.key(r)
	return ok
}

func shift(rs []Range, by int) []Range {
	for i := range rs {
		rs[i].Start += by
		rs[i].End += by
	}
	return rs
}
