package smartdial

import "github.com/hazyhaar/smartdial/pkg/keypad"

// twoDigitCountryCodes lists the ITU calling codes of length two. Codes 1
// and 7 are one digit long; every other code is three digits.
var twoDigitCountryCodes = map[string]bool{
	"20": true, "27": true, "30": true, "31": true, "32": true, "33": true,
	"34": true, "36": true, "39": true, "40": true, "41": true, "43": true,
	"44": true, "45": true, "46": true, "47": true, "48": true, "49": true,
	"51": true, "52": true, "53": true, "54": true, "55": true, "56": true,
	"57": true, "58": true, "60": true, "61": true, "62": true, "63": true,
	"64": true, "65": true, "66": true, "81": true, "82": true, "84": true,
	"86": true, "90": true, "91": true, "92": true, "93": true, "94": true,
	"95": true, "98": true,
}

// MatchesNumber reports whether the dialled query is a prefix of number,
// ignoring formatting. When the number as written does not match, the query
// is retried after the international calling code (+33 6 ...), and after a
// national trunk prefix (06 ..., or the NANP leading 1). The range is in
// rune offsets of number.
func (m *DigitMatcher) MatchesNumber(number, query string) (Range, bool) {
	q := []rune(m.NormalizeQuery(query))
	num := []rune(number)
	if len(q) == 0 || len(num) == 0 {
		return Range{}, false
	}

	if r, ok := matchNumberAt(num, q, 0); ok {
		return r, true
	}
	for _, off := range prefixOffsets(num) {
		if r, ok := matchNumberAt(num, q, off); ok {
			return r, true
		}
	}
	return Range{}, false
}

// matchNumberAt matches q against the digits of num starting at rune offset
// off. Separators met before the first matched digit are excluded from the
// range, except at offset 0 where "(510) 111" highlights the parenthesis.
func matchNumberAt(num, q []rune, off int) (Range, bool) {
	start, at := off, 0
	for i := off; i < len(num) && at < len(q); i++ {
		if !keypad.IsDigit(num[i]) {
			if at == 0 && off != 0 {
				start = i + 1
			}
			continue
		}
		if num[i] != q[at] {
			return Range{}, false
		}
		at++
		if at == len(q) {
			return Range{Start: start, End: i + 1}, true
		}
	}
	return Range{}, false
}

// prefixOffsets returns the rune offsets just past the calling code and past
// the trunk prefix of num, when present.
func prefixOffsets(num []rune) []int {
	var (
		offsets []int
		digits  []rune
		pos     []int
	)
	plus := false
	for i, r := range num {
		switch {
		case r == '+' && len(digits) == 0:
			plus = true
		case keypad.IsDigit(r):
			digits = append(digits, r)
			pos = append(pos, i)
		}
	}
	if len(digits) == 0 {
		return nil
	}

	switch {
	case plus:
		if n := countryCodeLen(num, digits); n > 0 && n < len(digits) {
			offsets = append(offsets, pos[n-1]+1)
			if digits[n] == '0' && n+1 < len(digits) {
				offsets = append(offsets, pos[n]+1)
			}
		}
	case len(digits) > 2 && digits[0] == '0' && digits[1] == '0':
		// 00 international access prefix: drop it and the calling code.
		rest := digits[2:]
		if n := countryCodeLen(nil, rest); n > 0 && n+2 < len(digits) {
			offsets = append(offsets, pos[n+1]+1)
		}
	case digits[0] == '0' && len(digits) > 1:
		offsets = append(offsets, pos[0]+1)
	case digits[0] == '1' && len(digits) == 11:
		offsets = append(offsets, pos[0]+1)
	}
	return offsets
}

// countryCodeLen returns how many leading digits form the calling code. When
// the written number separates the code from the rest ("+33 6..."), that
// grouping wins; otherwise the ITU code lengths decide.
func countryCodeLen(num, digits []rune) int {
	if num != nil {
		n, started := 0, false
		for _, r := range num {
			if keypad.IsDigit(r) {
				started = true
				n++
				continue
			}
			if started {
				break
			}
		}
		if n >= 1 && n <= 3 && n < len(digits) {
			return n
		}
	}
	if len(digits) == 0 {
		return 0
	}
	if digits[0] == '1' || digits[0] == '7' {
		return 1
	}
	if len(digits) >= 2 && twoDigitCountryCodes[string(digits[:2])] {
		return 2
	}
	if len(digits) >= 3 {
		return 3
	}
	return 0
}
