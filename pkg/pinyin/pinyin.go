// Package pinyin segments display names containing Chinese ideographs into
// tone-less pinyin syllables.
package pinyin

import (
	"sync"
	"unicode"

	"github.com/golang/groupcache/lru"
	gopinyin "github.com/mozillazg/go-pinyin"

	"github.com/hazyhaar/smartdial/pkg/fold"
	"github.com/hazyhaar/smartdial/pkg/script"
)

// DefaultCacheSize is the number of names whose segments are remembered.
const DefaultCacheSize = 4096

// Segmenter implements script.Segmenter on top of the go-pinyin dictionary.
//
// Whitespace ends a segment and is dropped. Each ideograph with a reading
// becomes one transliterable segment holding its most common reading; every
// run of other characters becomes one untransliterable segment.
type Segmenter struct {
	args gopinyin.Args

	mu    sync.Mutex
	cache *lru.Cache // nil when caching is disabled
}

var _ script.Segmenter = (*Segmenter)(nil)

// New returns a Segmenter caching up to cacheSize names. A cacheSize of zero
// or less disables the cache.
func New(cacheSize int) *Segmenter {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Normal
	args.Heteronym = false

	s := &Segmenter{args: args}
	if cacheSize > 0 {
		s.cache = lru.New(cacheSize)
	}
	return s
}

// Segments splits name. The returned slice is owned by the caller.
func (s *Segmenter) Segments(name string) []script.Segment {
	if name == "" {
		return nil
	}
	if segs, ok := s.cached(name); ok {
		return segs
	}

	segs := s.segment(name)
	if s.cache != nil {
		s.mu.Lock()
		s.cache.Add(name, segs)
		s.mu.Unlock()
	}
	return clone(segs)
}

// Len returns the number of cached names.
func (s *Segmenter) Len() int {
	if s.cache == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func (s *Segmenter) cached(name string) ([]script.Segment, bool) {
	if s.cache == nil {
		return nil, false
	}
	s.mu.Lock()
	v, ok := s.cache.Get(name)
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	return clone(v.([]script.Segment)), true
}

func (s *Segmenter) segment(name string) []script.Segment {
	var (
		segs    []script.Segment
		pending []rune
		start   int
	)
	flush := func() {
		if len(pending) > 0 {
			segs = append(segs, script.Segment{Text: string(pending), Offset: start})
			pending = pending[:0]
		}
	}

	i := 0
	for _, r := range name {
		switch syl, ok := s.syllable(r); {
		case unicode.IsSpace(r):
			flush()
		case ok:
			flush()
			segs = append(segs, script.Segment{Text: syl, Transliterable: true, Offset: i})
		default:
			if len(pending) == 0 {
				start = i
			}
			pending = append(pending, r)
		}
		i++
	}
	flush()
	return segs
}

// syllable returns the keypad-ready reading of an ideograph.
func (s *Segmenter) syllable(r rune) (string, bool) {
	if _, known := gopinyin.PinyinDict[int(r)]; !known {
		return "", false
	}
	readings := gopinyin.SinglePinyin(r, s.args)
	if len(readings) == 0 || readings[0] == "" {
		return "", false
	}
	return fold.String(readings[0])
}

func clone(segs []script.Segment) []script.Segment {
	if segs == nil {
		return nil
	}
	out := make([]script.Segment, len(segs))
	copy(out, segs)
	return out
}
