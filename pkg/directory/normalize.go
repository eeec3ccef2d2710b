package directory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hazyhaar/smartdial/pkg/fold"
)

// Normalizer transforms a contact name into its lookup key.
type Normalizer func(string) string

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeLowercaseASCII lowercases and strips accents (e.g. DUPONT, Élodie -> elodie).
func NormalizeLowercaseASCII(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(s))
	return result
}

// NormalizeLowercaseUTF8 lowercases but preserves accents.
func NormalizeLowercaseUTF8(s string) string {
	return strings.ToLower(s)
}

// NormalizeKeypad folds every letter the keypad table knows (Ø -> o,
// Ł -> l, which NFD leaves alone) and collapses whitespace.
func NormalizeKeypad(s string) string {
	return strings.Join(strings.Fields(fold.Key(s)), " ")
}

// NormalizeNone returns the name unchanged.
func NormalizeNone(s string) string {
	return s
}

// GetNormalizer returns the normalizer for the given mode.
// Default is lowercase_ascii.
func GetNormalizer(mode string) Normalizer {
	switch mode {
	case "lowercase_ascii":
		return NormalizeLowercaseASCII
	case "lowercase_utf8":
		return NormalizeLowercaseUTF8
	case "keypad":
		return NormalizeKeypad
	case "none":
		return NormalizeNone
	default:
		return NormalizeLowercaseASCII
	}
}
