// Package twoway implements the Two-Way string matching algorithm for
// searching a byte needle in a byte haystack, forward and backward.
//
// Two-Way was introduced by Crochemore and Perrin ("Two-way string-matching",
// Journal of the ACM 38(3), 1991). It runs in O(haystack+needle) time with
// O(1) extra space, which makes it suitable as an always-safe substring
// engine: there is no pathological input that degrades it to quadratic time,
// unlike naive search, and no preprocessing tables proportional to the
// needle, unlike Boyer-Moore variants.
//
// The package splits the algorithm into two types:
//
//   - Finder holds the precomputed critical factorization of a needle.
//     It is immutable after New and can be shared by any number of
//     searchers and goroutines.
//   - Searcher holds the cursor state for one scan over one haystack.
//     It is cheap to construct and not safe for concurrent use.
//
// A Searcher yields the haystack as a stream of Step values: Match steps
// cover every occurrence of the needle, Reject steps cover the bytes in
// between, and a final Done step reports exhaustion. Within one direction
// the emitted ranges are adjacent, non-overlapping and cover the haystack
// completely. Reject ranges may split byte runs arbitrarily; Match ranges
// always span a whole occurrence. The forward and backward cursors are
// independent: a searcher used in both directions reports each region once
// per direction, not once overall.
//
// The engine works on raw bytes and knows nothing about UTF-8. Callers that
// need character-boundary guarantees must realign Reject ranges themselves
// (see AdvanceTo and RetreatTo).
package twoway

import "bytes"

// StepKind discriminates the three results of a search step.
type StepKind uint8

const (
	// StepMatch reports that haystack[Start:End] equals the needle.
	StepMatch StepKind = iota
	// StepReject reports that haystack[Start:End] contains no part of any
	// match that has not already been reported.
	StepReject
	// StepDone reports that every byte of the haystack has been visited
	// in this direction. Further calls keep returning StepDone.
	StepDone
)

// String returns a short name for the step kind, for test output.
func (k StepKind) String() string {
	switch k {
	case StepMatch:
		return "Match"
	case StepReject:
		return "Reject"
	case StepDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Step is one result of Next or NextBack: a classified byte range of the
// haystack. Start and End are meaningful only for StepMatch and StepReject.
type Step struct {
	Kind  StepKind
	Start int
	End   int
}

// Finder holds the precomputed search state for one needle: the critical
// factorization position, the period (or its approximation in the long
// period case), and an approximate byte membership set used to skip
// windows that cannot match.
//
// A Finder is immutable and safe for concurrent use. It keeps a reference
// to the needle slice, which must not be modified afterwards.
type Finder struct {
	needle  []byte
	critPos int
	period  int
	byteset uint64
	long    bool
}

// New computes the critical factorization of needle and returns a Finder
// for it. Construction is O(len(needle)) and allocates only the Finder.
//
// New panics if needle is empty; the zero-length needle matches between
// every pair of characters and needs no search engine.
func New(needle []byte) *Finder {
	if len(needle) == 0 {
		panic("twoway: New called with empty needle")
	}

	// A critical factorization maximizes the local period at the split
	// point. Computing the maximal suffix under both byte orderings and
	// taking the later split covers both cases of the Critical
	// Factorization Theorem, which guarantees a critical split exists
	// within the first period(needle) positions.
	critFwd, periodFwd := maximalSuffix(needle, false)
	critRev, periodRev := maximalSuffix(needle, true)

	critPos, period := critRev, periodRev
	if critFwd > critRev {
		critPos, period = critFwd, periodFwd
	}

	var byteset uint64
	for _, b := range needle {
		byteset |= 1 << (b & 0x3f)
	}

	f := &Finder{
		needle:  needle,
		critPos: critPos,
		period:  period,
		byteset: byteset,
	}

	// Short period case: the left factor is a suffix of the right factor
	// shifted by one period, so matched prefixes can be remembered across
	// shifts (the Galil memory in Searcher). Otherwise the true period is
	// large and an approximation of it is enough for linear time.
	if !bytes.Equal(needle[:critPos], needle[period:period+critPos]) {
		f.long = true
		f.period = max(critPos, len(needle)-critPos) + 1
	}
	return f
}

// bytesetContains reports whether b can occur in the needle according to
// the 64-bit membership filter. False negatives never happen; false
// positives only cost a window comparison.
func (f *Finder) bytesetContains(b byte) bool {
	return (f.byteset>>(b&0x3f))&1 != 0
}

// maximalSuffix computes a critical factorization (u, v) of arr, comparing
// bytes in reversed order when reversed is true. It returns the index where
// v starts and the period of v.
//
// This is the maximal suffix computation from Crochemore and Perrin; a
// readable treatment is "Algorithm CP" in Crochemore and Rytter, Text
// Algorithms, chapter 13. The three branches per step correspond to the
// candidate suffix comparing smaller, equal within the current period, or
// larger than the best suffix so far.
func maximalSuffix(arr []byte, reversed bool) (index, period int) {
	left := -1 // start of the best suffix, exclusive
	right := 0
	offset := 1
	period = 1

	for right+offset < len(arr) {
		a, b := arr[right+offset], arr[left+offset]
		if reversed {
			a, b = b, a
		}
		switch {
		case a < b:
			// Suffix is smaller; the period grows to the whole
			// prefix considered so far.
			right += offset
			offset = 1
			period = right - left
		case a == b:
			// Inside a repetition of the current period.
			if offset == period {
				right += period
				offset = 1
			} else {
				offset++
			}
		default:
			// Suffix is larger; restart from this position.
			left = right
			right++
			offset = 1
			period = 1
		}
	}
	return left + 1, period
}

// Searcher is the cursor state for scanning one haystack with one Finder.
// The forward cursor starts at 0 and only moves right; the backward cursor
// starts at len(haystack) and only moves left. The two directions do not
// interact.
//
// A Searcher is single-use per direction: after a direction reports
// StepDone it reports StepDone forever. Searchers are not safe for
// concurrent use.
type Searcher struct {
	f        *Finder
	haystack []byte

	position int // forward cursor
	end      int // backward cursor
	memory   int // matched-prefix memory, short period forward scans only
}

// Searcher returns a new cursor over haystack. The haystack slice must not
// be modified during the scan.
func (f *Finder) Searcher(haystack []byte) *Searcher {
	return &Searcher{
		f:        f,
		haystack: haystack,
		end:      len(haystack),
	}
}

// Position returns the forward cursor: the offset before which every byte
// has been classified by forward steps.
func (s *Searcher) Position() int {
	return s.position
}

// End returns the backward cursor: the offset from which every byte has
// been classified by backward steps.
func (s *Searcher) End() int {
	return s.end
}

// AdvanceTo moves the forward cursor up to pos if pos is ahead of it.
// Callers use it after widening a Reject range so the engine does not
// classify the widened bytes again. The cursor never moves backward.
func (s *Searcher) AdvanceTo(pos int) {
	if pos > s.position {
		s.position = pos
	}
}

// RetreatTo moves the backward cursor down to end if end is behind it,
// the mirror image of AdvanceTo. The cursor never moves forward.
func (s *Searcher) RetreatTo(end int) {
	if end < s.end {
		s.end = end
	}
}

// Next returns the next forward step: each occurrence of the needle as a
// StepMatch, the gaps between occurrences as one or more StepRejects, and
// StepDone once the forward cursor reaches the end of the haystack.
func (s *Searcher) Next() Step {
	return s.next(true)
}

// NextMatch returns the range of the next forward occurrence of the
// needle. It is equivalent to calling Next until a StepMatch or StepDone
// but skips all Reject bookkeeping, which makes it the fast path for
// callers that only want match positions.
func (s *Searcher) NextMatch() (start, end int, ok bool) {
	st := s.next(false)
	if st.Kind != StepMatch {
		return 0, 0, false
	}
	return st.Start, st.End, true
}

// NextBack returns the next backward step, scanning right to left. The
// backward stream has the same adjacency and coverage guarantees as the
// forward stream, with ranges reported in decreasing order.
func (s *Searcher) NextBack() Step {
	return s.nextBack(true)
}

// NextMatchBack returns the range of the next backward occurrence of the
// needle, skipping Reject bookkeeping like NextMatch.
//
// Backward occurrences are found by an independent right-to-left scan.
// When occurrences of the needle can overlap, the backward scan may select
// different non-overlapping occurrences than the forward scan; only the
// number of occurrences is guaranteed to agree.
func (s *Searcher) NextMatchBack() (start, end int, ok bool) {
	st := s.nextBack(false)
	if st.Kind != StepMatch {
		return 0, 0, false
	}
	return st.Start, st.End, true
}

// next advances the forward scan to the next match, reporting intermediate
// shifts as Reject steps when emitRejects is set and skipping them
// silently otherwise.
//
// The scan keeps the invariant that the needle could still match at
// s.position. Each window is compared right half first, starting at the
// critical position: a mismatch there shifts by the distance that keeps
// any occurrence reachable, a mismatch in the left half shifts by a whole
// period. In the short period case the memory field remembers how much of
// the window is known to match after a period shift, so no byte is
// compared twice (Galil optimization).
func (s *Searcher) next(emitRejects bool) Step {
	needle := s.f.needle
	haystack := s.haystack
	oldPos := s.position

search:
	for {
		// Room for a whole window?
		if len(needle) > len(haystack)-s.position {
			s.position = len(haystack)
			if emitRejects && oldPos != s.position {
				return Step{Kind: StepReject, Start: oldPos, End: s.position}
			}
			return Step{Kind: StepDone}
		}

		// Report bytes skipped since the call started before scanning
		// the next window.
		if emitRejects && oldPos != s.position {
			return Step{Kind: StepReject, Start: oldPos, End: s.position}
		}

		// Skip whole windows whose last byte cannot occur in the
		// needle at all.
		if !s.f.bytesetContains(haystack[s.position+len(needle)-1]) {
			s.position += len(needle)
			if !s.f.long {
				s.memory = 0
			}
			continue
		}

		// Right half, left to right from the critical position.
		start := s.f.critPos
		if !s.f.long && s.memory > start {
			start = s.memory
		}
		for i := start; i < len(needle); i++ {
			if needle[i] != haystack[s.position+i] {
				s.position += i - s.f.critPos + 1
				if !s.f.long {
					s.memory = 0
				}
				continue search
			}
		}

		// Left half, right to left.
		left := 0
		if !s.f.long {
			left = s.memory
		}
		for i := s.f.critPos - 1; i >= left; i-- {
			if needle[i] != haystack[s.position+i] {
				s.position += s.f.period
				if !s.f.long {
					s.memory = len(needle) - s.f.period
				}
				continue search
			}
		}

		matchPos := s.position
		s.position += len(needle)
		if !s.f.long {
			s.memory = 0
		}
		return Step{Kind: StepMatch, Start: matchPos, End: matchPos + len(needle)}
	}
}

// nextBack is the right-to-left mirror of next, using s.end as its cursor.
//
// Searching backward is searching forward through the reversed haystack
// with the reversed needle. Reversal swaps the two factors of the critical
// factorization and preserves periods, so the precomputed critPos and
// period work unchanged with mirrored window scans: left half first, then
// right half. The backward scan keeps no match memory; it re-derives
// everything from the window, trading a little work for simpler state.
func (s *Searcher) nextBack(emitRejects bool) Step {
	needle := s.f.needle
	haystack := s.haystack
	oldEnd := s.end

search:
	for {
		// Room for a whole window?
		if len(needle) > s.end {
			s.end = 0
			if emitRejects && oldEnd != 0 {
				return Step{Kind: StepReject, Start: 0, End: oldEnd}
			}
			return Step{Kind: StepDone}
		}

		if emitRejects && oldEnd != s.end {
			return Step{Kind: StepReject, Start: s.end, End: oldEnd}
		}

		// Skip whole windows whose first byte cannot occur in the
		// needle.
		if !s.f.bytesetContains(haystack[s.end-len(needle)]) {
			s.end -= len(needle)
			continue
		}

		window := s.end - len(needle)

		// Left half, right to left from the critical position.
		for i := s.f.critPos - 1; i >= 0; i-- {
			if needle[i] != haystack[window+i] {
				s.end -= s.f.critPos - i
				continue search
			}
		}

		// Right half, left to right.
		for i := s.f.critPos; i < len(needle); i++ {
			if needle[i] != haystack[window+i] {
				s.end -= s.f.period
				continue search
			}
		}

		s.end = window
		return Step{Kind: StepMatch, Start: window, End: window + len(needle)}
	}
}
