package pattern

import (
	"unicode/utf8"

	"github.com/coregx/pattern/twoway"
)

// strSearcher adapts the byte-oriented twoway engine to UTF-8 haystacks.
//
// A valid UTF-8 needle can only match at character boundaries (a lead byte
// never equals a continuation byte), so Match spans pass through untouched.
// Reject spans are the engine's scan progress and may stop mid-character;
// the adapter widens the moving edge outward to the next boundary and
// feeds the widened offset back into the engine so the streams stay
// aligned. The fixed edge of a reject is where the previous span ended,
// which is a boundary by induction.
type strSearcher struct {
	haystack string
	tw       *twoway.Searcher
}

func (s *strSearcher) Haystack() string { return s.haystack }

func (s *strSearcher) Next() SearchStep {
	st := s.tw.Next()
	switch st.Kind {
	case twoway.StepMatch:
		return SearchStep{Kind: StepMatch, Start: st.Start, End: st.End}
	case twoway.StepReject:
		b := st.End
		for !isCharBoundary(s.haystack, b) {
			b++
		}
		s.tw.AdvanceTo(b)
		return SearchStep{Kind: StepReject, Start: st.Start, End: b}
	default:
		return SearchStep{Kind: StepDone}
	}
}

func (s *strSearcher) NextBack() SearchStep {
	st := s.tw.NextBack()
	switch st.Kind {
	case twoway.StepMatch:
		return SearchStep{Kind: StepMatch, Start: st.Start, End: st.End}
	case twoway.StepReject:
		a := st.Start
		for !isCharBoundary(s.haystack, a) {
			a--
		}
		s.tw.RetreatTo(a)
		return SearchStep{Kind: StepReject, Start: a, End: st.End}
	default:
		return SearchStep{Kind: StepDone}
	}
}

// NextMatch skips reject bookkeeping entirely: match offsets need no
// boundary correction, so the engine's match-only scan is used as is.
func (s *strSearcher) NextMatch() (start, end int, ok bool) {
	return s.tw.NextMatch()
}

func (s *strSearcher) NextMatchBack() (start, end int, ok bool) {
	return s.tw.NextMatchBack()
}

func (s *strSearcher) NextReject() (start, end int, ok bool) {
	return nextRejectFromSteps(s)
}

func (s *strSearcher) NextRejectBack() (start, end int, ok bool) {
	return nextRejectBackFromSteps(s)
}

// isCharBoundary reports whether i is the start of a UTF-8 character, the
// start of the string, or the end of the string.
func isCharBoundary(s string, i int) bool {
	return i <= 0 || i >= len(s) || utf8.RuneStart(s[i])
}

// emptySearcher is the searcher for Literal(""). The stream alternates a
// zero-width Match at each character boundary with a Reject covering the
// following character, beginning and ending with a Match:
//
//	"ab" forward: Match(0,0) Reject(0,1) Match(1,1) Reject(1,2) Match(2,2) Done
//
// The forward and backward streams are exact mirrors, so the searcher is
// double-ended. The two directions keep independent cursors.
type emptySearcher struct {
	haystack string
	pos      int
	end      int
	matchFwd bool
	matchBwd bool
}

func (s *emptySearcher) Haystack() string { return s.haystack }

func (s *emptySearcher) Next() SearchStep {
	switch {
	case s.matchFwd:
		s.matchFwd = false
		return SearchStep{Kind: StepMatch, Start: s.pos, End: s.pos}
	case s.pos >= len(s.haystack):
		// the flag stays down so Done repeats forever
		return SearchStep{Kind: StepDone}
	default:
		s.matchFwd = true
		pos := s.pos
		_, width := utf8.DecodeRuneInString(s.haystack[pos:])
		s.pos += width
		return SearchStep{Kind: StepReject, Start: pos, End: s.pos}
	}
}

func (s *emptySearcher) NextBack() SearchStep {
	switch {
	case s.matchBwd:
		s.matchBwd = false
		return SearchStep{Kind: StepMatch, Start: s.end, End: s.end}
	case s.end <= 0:
		return SearchStep{Kind: StepDone}
	default:
		s.matchBwd = true
		end := s.end
		_, width := utf8.DecodeLastRuneInString(s.haystack[:end])
		s.end -= width
		return SearchStep{Kind: StepReject, Start: s.end, End: end}
	}
}

func (s *emptySearcher) NextMatch() (start, end int, ok bool) {
	return nextMatchFromSteps(s)
}

func (s *emptySearcher) NextReject() (start, end int, ok bool) {
	return nextRejectFromSteps(s)
}

func (s *emptySearcher) NextMatchBack() (start, end int, ok bool) {
	return nextMatchBackFromSteps(s)
}

func (s *emptySearcher) NextRejectBack() (start, end int, ok bool) {
	return nextRejectBackFromSteps(s)
}

func (s *emptySearcher) doubleEnded() {}
