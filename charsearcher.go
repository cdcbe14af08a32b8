package pattern

import (
	"unicode/utf8"

	"github.com/coregx/pattern/internal/conv"
	"github.com/coregx/pattern/simd"
)

// charEq is the matcher behind Char, AnyOf and Func patterns.
type charEq interface {
	// match reports whether r belongs to the pattern.
	match(r rune) bool

	// onlyASCII reports whether every rune the matcher can accept is
	// below utf8.RuneSelf. It gates the byte-oriented shortcuts: an ASCII
	// byte never occurs inside a multi-byte UTF-8 encoding, so byte hits
	// are always character boundaries.
	onlyASCII() bool
}

type runeEq rune

func (e runeEq) match(r rune) bool { return rune(e) == r }
func (e runeEq) onlyASCII() bool   { return e < utf8.RuneSelf }

// setEq matches any member of a character set. For all-ASCII sets it keeps
// the members as bytes plus a lookup table, which both feed the simd
// shortcuts and make match a table hit instead of a scan.
type setEq struct {
	runes []rune
	ascii bool
	bytes []byte     // deduplicated members, only when ascii
	table *[256]bool // byte membership, only when ascii
}

func newSetEq(chars string) *setEq {
	e := &setEq{ascii: simd.IsASCII(conv.Bytes(chars))}
	for _, r := range chars {
		e.runes = append(e.runes, r)
	}
	if e.ascii {
		e.table = new([256]bool)
		for _, r := range e.runes {
			b := byte(r)
			if !e.table[b] {
				e.table[b] = true
				e.bytes = append(e.bytes, b)
			}
		}
	}
	return e
}

func (e *setEq) match(r rune) bool {
	if e.table != nil {
		return r < utf8.RuneSelf && e.table[byte(r)]
	}
	for _, m := range e.runes {
		if m == r {
			return true
		}
	}
	return false
}

func (e *setEq) onlyASCII() bool { return e.ascii }

type funcEq func(rune) bool

func (e funcEq) match(r rune) bool { return e(r) }
func (e funcEq) onlyASCII() bool   { return false }

// charSearcher classifies the haystack one character at a time. The
// forward and backward cursors share the window [pos, end) and converge,
// so mixing directions on one searcher never revisits a character; the
// two streams are exact mirrors and the searcher is double-ended.
type charSearcher struct {
	haystack string
	eq       charEq
	pos      int
	end      int
}

func (s *charSearcher) Haystack() string { return s.haystack }

func (s *charSearcher) Next() SearchStep {
	if s.pos >= s.end {
		return SearchStep{Kind: StepDone}
	}
	r, width := utf8.DecodeRuneInString(s.haystack[s.pos:s.end])
	start := s.pos
	s.pos += width
	kind := StepReject
	if s.eq.match(r) {
		kind = StepMatch
	}
	return SearchStep{Kind: kind, Start: start, End: s.pos}
}

func (s *charSearcher) NextBack() SearchStep {
	if s.end <= s.pos {
		return SearchStep{Kind: StepDone}
	}
	r, width := utf8.DecodeLastRuneInString(s.haystack[s.pos:s.end])
	end := s.end
	s.end -= width
	kind := StepReject
	if s.eq.match(r) {
		kind = StepMatch
	}
	return SearchStep{Kind: kind, Start: s.end, End: end}
}

func (s *charSearcher) NextMatch() (start, end int, ok bool) {
	if s.eq.onlyASCII() {
		return s.nextMatchASCII()
	}
	return nextMatchFromSteps(s)
}

func (s *charSearcher) NextMatchBack() (start, end int, ok bool) {
	if s.eq.onlyASCII() {
		return s.nextMatchBackASCII()
	}
	return nextMatchBackFromSteps(s)
}

func (s *charSearcher) NextReject() (start, end int, ok bool) {
	return nextRejectFromSteps(s)
}

func (s *charSearcher) NextRejectBack() (start, end int, ok bool) {
	return nextRejectBackFromSteps(s)
}

func (s *charSearcher) doubleEnded() {}

// nextMatchASCII finds the next set byte with the simd helpers instead of
// decoding every character. Matches found this way are single bytes, so
// the cursor lands back on a boundary.
func (s *charSearcher) nextMatchASCII() (start, end int, ok bool) {
	window := conv.Bytes(s.haystack)[s.pos:s.end]
	i := s.memchrFwd(window)
	if i < 0 {
		s.pos = s.end
		return 0, 0, false
	}
	start = s.pos + i
	s.pos = start + 1
	return start, start + 1, true
}

func (s *charSearcher) nextMatchBackASCII() (start, end int, ok bool) {
	window := conv.Bytes(s.haystack)[s.pos:s.end]
	i := s.memchrBwd(window)
	if i < 0 {
		s.end = s.pos
		return 0, 0, false
	}
	start = s.pos + i
	s.end = start
	return start, start + 1, true
}

func (s *charSearcher) memchrFwd(window []byte) int {
	switch eq := s.eq.(type) {
	case runeEq:
		return simd.Memchr(window, byte(eq))
	case *setEq:
		switch len(eq.bytes) {
		case 0:
			return -1
		case 1:
			return simd.Memchr(window, eq.bytes[0])
		case 2:
			return simd.Memchr2(window, eq.bytes[0], eq.bytes[1])
		case 3:
			return simd.Memchr3(window, eq.bytes[0], eq.bytes[1], eq.bytes[2])
		default:
			return simd.MemchrInTable(window, eq.table)
		}
	default:
		// onlyASCII matchers are one of the two kinds above
		return -1
	}
}

func (s *charSearcher) memchrBwd(window []byte) int {
	switch eq := s.eq.(type) {
	case runeEq:
		return simd.Memrchr(window, byte(eq))
	case *setEq:
		switch len(eq.bytes) {
		case 0:
			return -1
		case 1:
			return simd.Memrchr(window, eq.bytes[0])
		case 2:
			return simd.Memrchr2(window, eq.bytes[0], eq.bytes[1])
		case 3:
			return simd.Memrchr3(window, eq.bytes[0], eq.bytes[1], eq.bytes[2])
		default:
			return simd.MemrchrInTable(window, eq.table)
		}
	default:
		return -1
	}
}
