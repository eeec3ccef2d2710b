// Package keypad maps Latin letters to the phone keypad digits they are
// printed on.
package keypad

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLayout is returned when a keypad layout does not assign every
// letter a-z to exactly one digit key.
var ErrInvalidLayout = errors.New("invalid keypad layout")

// defaultLayout is the ITU E.161 letter grouping.
var defaultLayout = map[string]string{
	"2": "abc",
	"3": "def",
	"4": "ghi",
	"5": "jkl",
	"6": "mno",
	"7": "pqrs",
	"8": "tuv",
	"9": "wxyz",
}

// Mapping is an immutable letter -> digit table.
type Mapping struct {
	toKey map[rune]rune
}

var (
	defaultOnce    sync.Once
	defaultMapping *Mapping
)

// Default returns the process-wide E.161 mapping.
func Default() *Mapping {
	defaultOnce.Do(func() {
		m, err := New(defaultLayout)
		if err != nil {
			panic(fmt.Sprintf("keypad: default layout: %v", err))
		}
		defaultMapping = m
	})
	return defaultMapping
}

// New builds a Mapping from digit -> letters groups.
func New(keys map[string]string) (*Mapping, error) {
	m := &Mapping{toKey: make(map[rune]rune, 26)}
	for key, letters := range keys {
		k := []rune(key)
		if len(k) != 1 || k[0] < '0' || k[0] > '9' {
			return nil, fmt.Errorf("%w: key %q is not a single digit", ErrInvalidLayout, key)
		}
		for _, l := range letters {
			if !IsAlpha(l) {
				return nil, fmt.Errorf("%w: key %s: %q is not a lowercase letter", ErrInvalidLayout, key, l)
			}
			if prev, dup := m.toKey[l]; dup {
				return nil, fmt.Errorf("%w: letter %q on keys %c and %s", ErrInvalidLayout, l, prev, key)
			}
			m.toKey[l] = k[0]
		}
	}
	for l := 'a'; l <= 'z'; l++ {
		if _, ok := m.toKey[l]; !ok {
			return nil, fmt.Errorf("%w: letter %q has no key", ErrInvalidLayout, l)
		}
	}
	return m, nil
}

// layoutFile is the YAML shape of a keypad layout.
type layoutFile struct {
	Keys map[string]string `yaml:"keys"`
}

// Load reads a YAML keypad layout:
//
//	keys:
//	  "2": abc
//	  "3": def
func Load(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keypad layout %s: %w", path, err)
	}
	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse keypad layout %s: %w", path, err)
	}
	m, err := New(lf.Keys)
	if err != nil {
		return nil, fmt.Errorf("keypad layout %s: %w", path, err)
	}
	return m, nil
}

// Digit returns the key a letter sits on.
func (m *Mapping) Digit(r rune) (rune, bool) {
	d, ok := m.toKey[r]
	return d, ok
}

// Key converts a dialpad character to the digit it dials: letters map
// through the table, digits map to themselves.
func (m *Mapping) Key(r rune) (rune, bool) {
	if IsDigit(r) {
		return r, true
	}
	return m.Digit(r)
}

// CharToKey returns a copy of the letter -> digit table.
func (m *Mapping) CharToKey() map[rune]rune {
	out := make(map[rune]rune, len(m.toKey))
	for k, v := range m.toKey {
		out[k] = v
	}
	return out
}

// Groups returns the layout as digit -> sorted letters, the inverse of New.
func (m *Mapping) Groups() map[string]string {
	byKey := make(map[rune][]rune)
	for l, k := range m.toKey {
		byKey[k] = append(byKey[k], l)
	}
	out := make(map[string]string, len(byKey))
	for k, ls := range byKey {
		sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
		out[string(k)] = string(ls)
	}
	return out
}

// IsAlpha reports whether r is a keypad letter (lowercase a-z).
func IsAlpha(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsDigit reports whether r is a keypad digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsDialable reports whether r can be typed on the keypad.
func IsDialable(r rune) bool {
	return IsAlpha(r) || IsDigit(r)
}
