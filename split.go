package pattern

import "iter"

// splitter yields the substrings between consecutive matches, left to
// right. After the last match it yields the remaining tail exactly once;
// allowTrailingEmpty controls whether that tail is yielded when empty.
type splitter struct {
	m                  Searcher
	start              int
	finished           bool
	allowTrailingEmpty bool
}

func (sp *splitter) next() (string, bool) {
	if sp.finished {
		return "", false
	}
	h := sp.m.Haystack()
	if a, b, ok := sp.m.NextMatch(); ok {
		piece := h[sp.start:a]
		sp.start = b
		return piece, true
	}
	return sp.finish()
}

// finish emits the tail after the final match and ends the stream. It is
// called directly when an n-limited split hands out its last piece, which
// is the unsplit remainder.
func (sp *splitter) finish() (string, bool) {
	if sp.finished {
		return "", false
	}
	sp.finished = true
	h := sp.m.Haystack()
	if sp.allowTrailingEmpty || sp.start < len(h) {
		return h[sp.start:], true
	}
	return "", false
}

// rsplitter is the right-to-left splitter: pieces come out in reverse
// order and the final piece is the unsplit head of the haystack.
type rsplitter struct {
	m        ReverseSearcher
	end      int
	finished bool
}

func (sp *rsplitter) next() (string, bool) {
	if sp.finished {
		return "", false
	}
	h := sp.m.Haystack()
	if a, b, ok := sp.m.NextMatchBack(); ok {
		piece := h[b:sp.end]
		sp.end = a
		return piece, true
	}
	return sp.finish()
}

func (sp *rsplitter) finish() (string, bool) {
	if sp.finished {
		return "", false
	}
	sp.finished = true
	return sp.m.Haystack()[:sp.end], true
}

func splitAll(haystack string, p Pattern, n int, allowTrailingEmpty bool) []string {
	if n == 0 {
		return nil
	}
	sp := splitter{m: p.Searcher(haystack), allowTrailingEmpty: allowTrailingEmpty}
	var pieces []string
	for {
		if n > 0 && len(pieces) == n-1 {
			if piece, ok := sp.finish(); ok {
				pieces = append(pieces, piece)
			}
			return pieces
		}
		piece, ok := sp.next()
		if !ok {
			return pieces
		}
		pieces = append(pieces, piece)
	}
}

// Split slices haystack into the substrings between matches of p and
// returns them all.
//
// Matches are zero-width for the empty literal, which makes Split follow
// the searcher rather than strings.Split: Split("ab", Literal("")) is
// ["" "a" "b" ""], with boundary matches at both ends producing the empty
// leading and trailing fields.
func Split(haystack string, p Pattern) []string {
	return splitAll(haystack, p, -1, true)
}

// SplitN is Split limited to at most n pieces. The count follows the
// strings.SplitN contract:
//
//	n > 0: at most n pieces; the last piece is the unsplit remainder
//	n == 0: nil
//	n < 0: all pieces
func SplitN(haystack string, p Pattern, n int) []string {
	return splitAll(haystack, p, n, true)
}

// SplitTerminator is Split for haystacks whose fields are terminated by
// the pattern rather than separated by it: a match at the very end does
// not produce a final empty piece. Other empty pieces are kept.
func SplitTerminator(haystack string, p Pattern) []string {
	return splitAll(haystack, p, -1, false)
}

// SplitSeq returns an iterator over the substrings between matches of p,
// yielding the same pieces as Split without building the slice. The
// iterator runs a fresh traversal each time it is ranged.
func SplitSeq(haystack string, p Pattern) iter.Seq[string] {
	return func(yield func(string) bool) {
		sp := splitter{m: p.Searcher(haystack), allowTrailingEmpty: true}
		for {
			piece, ok := sp.next()
			if !ok || !yield(piece) {
				return
			}
		}
	}
}

// SplitBackward returns an iterator over the substrings between matches
// of p, scanning from the right: pieces arrive last-first and the final
// piece is the unsplit head. For patterns with overlapping candidates the
// cut points may differ from Split's; see ReverseSearcher.
//
// SplitBackward panics if p's searcher does not implement ReverseSearcher.
func SplitBackward(haystack string, p Pattern) iter.Seq[string] {
	requireReverse(haystack, p, "SplitBackward")
	return func(yield func(string) bool) {
		sp := rsplitter{m: requireReverse(haystack, p, "SplitBackward"), end: len(haystack)}
		for {
			piece, ok := sp.next()
			if !ok || !yield(piece) {
				return
			}
		}
	}
}

// SplitBackwardN collects at most n pieces of SplitBackward, with the
// SplitN count contract: for n > 0 the last piece collected is the
// unsplit head of the haystack.
//
// SplitBackwardN panics if p's searcher does not implement
// ReverseSearcher.
func SplitBackwardN(haystack string, p Pattern, n int) []string {
	if n == 0 {
		return nil
	}
	sp := rsplitter{m: requireReverse(haystack, p, "SplitBackwardN"), end: len(haystack)}
	var pieces []string
	for {
		if n > 0 && len(pieces) == n-1 {
			if piece, ok := sp.finish(); ok {
				pieces = append(pieces, piece)
			}
			return pieces
		}
		piece, ok := sp.next()
		if !ok {
			return pieces
		}
		pieces = append(pieces, piece)
	}
}
