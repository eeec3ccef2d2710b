// Package fold maps decorated Latin letters to the plain lowercase letter a
// keypad user would type for them.
package fold

import (
	"strings"

	"github.com/hazyhaar/smartdial/pkg/keypad"
)

//go:generate go run ../../cmd/foldgen -out table.go

// Fold returns the base lowercase letter for r. Keypad letters are returned
// unchanged; A-Z, Latin-1 Supplement and Latin Extended-A/B letters go
// through the static table. Anything else, including letters whose base form
// needs several characters (ß, æ, œ), has no mapping.
func Fold(r rune) (rune, bool) {
	if keypad.IsAlpha(r) {
		return r, true
	}
	if r < 0 || r >= tableSize {
		return 0, false
	}
	if b := table[r]; b != 0 {
		return rune(b), true
	}
	return 0, false
}

// String folds every rune of s. It reports false on the first rune without
// a mapping.
func String(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		f, ok := Fold(r)
		if !ok {
			return "", false
		}
		b.WriteRune(f)
	}
	return b.String(), true
}

// Key folds the runes of s that have a mapping and keeps the others as they
// are, so the result has the same number of runes as s.
func Key(s string) string {
	return strings.Map(func(r rune) rune {
		if f, ok := Fold(r); ok {
			return f
		}
		return r
	}, s)
}
