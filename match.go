package pattern

import "iter"

// Matches returns an iterator over the non-overlapping matched substrings
// of p in haystack, left to right. The iterator runs a fresh traversal
// each time it is ranged.
func Matches(haystack string, p Pattern) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := p.Searcher(haystack)
		for {
			start, end, ok := s.NextMatch()
			if !ok || !yield(haystack[start:end]) {
				return
			}
		}
	}
}

// MatchIndices returns an iterator over (byte index, matched substring)
// pairs for the non-overlapping matches of p in haystack, left to right.
func MatchIndices(haystack string, p Pattern) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		s := p.Searcher(haystack)
		for {
			start, end, ok := s.NextMatch()
			if !ok || !yield(start, haystack[start:end]) {
				return
			}
		}
	}
}

// MatchesBackward is Matches scanning from the right. For patterns with
// overlapping candidates the matches may differ from the forward set; see
// ReverseSearcher.
//
// MatchesBackward panics if p's searcher does not implement
// ReverseSearcher.
func MatchesBackward(haystack string, p Pattern) iter.Seq[string] {
	requireReverse(haystack, p, "MatchesBackward")
	return func(yield func(string) bool) {
		s := requireReverse(haystack, p, "MatchesBackward")
		for {
			start, end, ok := s.NextMatchBack()
			if !ok || !yield(haystack[start:end]) {
				return
			}
		}
	}
}

// MatchIndicesBackward is MatchIndices scanning from the right.
//
// MatchIndicesBackward panics if p's searcher does not implement
// ReverseSearcher.
func MatchIndicesBackward(haystack string, p Pattern) iter.Seq2[int, string] {
	requireReverse(haystack, p, "MatchIndicesBackward")
	return func(yield func(int, string) bool) {
		s := requireReverse(haystack, p, "MatchIndicesBackward")
		for {
			start, end, ok := s.NextMatchBack()
			if !ok || !yield(start, haystack[start:end]) {
				return
			}
		}
	}
}
