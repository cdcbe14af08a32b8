package pattern

import "strconv"

// StepKind discriminates the three outcomes a searcher can report.
type StepKind uint8

const (
	// StepMatch reports a span equal to the pattern.
	StepMatch StepKind = iota
	// StepReject reports a span that overlaps no match.
	StepReject
	// StepDone reports that the haystack is exhausted.
	StepDone
)

// String returns the kind name for debugging output.
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

// SearchStep is one emission of a searcher. Start and End are byte offsets
// into the haystack and are meaningful only when Kind is StepMatch or
// StepReject; for StepDone both are zero.
type SearchStep struct {
	Kind  StepKind
	Start int
	End   int
}

// String formats the step as Match(a,b), Reject(a,b) or Done.
func (s SearchStep) String() string {
	if s.Kind == StepDone {
		return "Done"
	}
	return s.Kind.String() + "(" + strconv.Itoa(s.Start) + "," + strconv.Itoa(s.End) + ")"
}

// Searcher is a left-to-right traversal of one haystack for one pattern.
//
// Next emits a stream of steps that tile the haystack exactly once:
//
//   - The first step starts at offset 0 and consecutive steps are adjacent
//     (each starts where the previous one ended).
//   - Match spans never overlap and appear in increasing offset order.
//   - Match and Reject spans always lie on UTF-8 character boundaries.
//   - Match spans are never empty except for the empty literal pattern,
//     which matches a zero-width span at every character boundary.
//   - After the first StepDone every subsequent call returns StepDone.
//
// NextMatch and NextReject are match-only and reject-only projections of
// the same stream; they share the cursor with Next, so the three may be
// interleaved on one searcher. NextMatch may take byte-oriented shortcuts
// that skip the work of producing intermediate Reject spans.
//
// A Searcher is a single-use cursor: obtain a fresh one from
// Pattern.Searcher for every traversal. Searchers are not safe for
// concurrent use; the Pattern that created them is.
type Searcher interface {
	// Haystack returns the string being searched.
	Haystack() string

	// Next returns the next step of the stream.
	Next() SearchStep

	// NextMatch advances to the next StepMatch and returns its span, or
	// ok=false once the stream is exhausted.
	NextMatch() (start, end int, ok bool)

	// NextReject advances to the next StepReject and returns its span, or
	// ok=false once the stream is exhausted.
	NextReject() (start, end int, ok bool)
}

// ReverseSearcher is a Searcher that can also traverse right-to-left.
//
// NextBack emits the same kind of tiling stream as Next but from the end of
// the haystack toward the start. The backward stream is an independent
// traversal with its own cursor: for substring patterns with overlapping
// candidates ("aa" in "aaa") the backward match set may differ from the
// forward one, because each direction resolves overlaps greedily in its own
// scan order. Operations that consume matches from the right (LastIndex,
// SplitBackward, TrimRight) require this interface and panic when a
// user-supplied pattern does not provide it.
type ReverseSearcher interface {
	Searcher

	// NextBack returns the next step of the right-to-left stream.
	NextBack() SearchStep

	// NextMatchBack advances the backward stream to its next StepMatch.
	NextMatchBack() (start, end int, ok bool)

	// NextRejectBack advances the backward stream to its next StepReject.
	NextRejectBack() (start, end int, ok bool)
}

// DoubleEndedSearcher marks a ReverseSearcher whose forward and backward
// streams are mirror images: the backward step sequence is exactly the
// forward sequence reversed, so the two directions report the same match
// set and may be consumed from both ends of one searcher without
// double-counting. Character patterns (Char, AnyOf, Func) and the empty
// literal qualify; non-empty substring searchers do not, since their two
// directions can resolve overlapping candidates differently.
//
// The interface is satisfiable only inside this package: it is a
// correctness assertion about a searcher, not a customization point.
type DoubleEndedSearcher interface {
	ReverseSearcher

	doubleEnded()
}

// requireReverse builds p's searcher and returns it as a ReverseSearcher,
// panicking with the operation name when the searcher is forward-only. All
// built-in patterns are reversible; this fires only for user patterns.
func requireReverse(haystack string, p Pattern, op string) ReverseSearcher {
	rs, ok := p.Searcher(haystack).(ReverseSearcher)
	if !ok {
		panic("pattern: " + op + " requires a pattern whose searcher implements ReverseSearcher")
	}
	return rs
}

// nextMatchFromSteps drains s.Next until a Match or Done. It is the
// step-faithful fallback behind NextMatch for searchers that lack a
// byte-oriented shortcut.
func nextMatchFromSteps(s Searcher) (start, end int, ok bool) {
	for {
		switch st := s.Next(); st.Kind {
		case StepMatch:
			return st.Start, st.End, true
		case StepDone:
			return 0, 0, false
		}
	}
}

// nextRejectFromSteps drains s.Next until a Reject or Done.
func nextRejectFromSteps(s Searcher) (start, end int, ok bool) {
	for {
		switch st := s.Next(); st.Kind {
		case StepReject:
			return st.Start, st.End, true
		case StepDone:
			return 0, 0, false
		}
	}
}

// nextMatchBackFromSteps drains s.NextBack until a Match or Done.
func nextMatchBackFromSteps(s ReverseSearcher) (start, end int, ok bool) {
	for {
		switch st := s.NextBack(); st.Kind {
		case StepMatch:
			return st.Start, st.End, true
		case StepDone:
			return 0, 0, false
		}
	}
}

// nextRejectBackFromSteps drains s.NextBack until a Reject or Done.
func nextRejectBackFromSteps(s ReverseSearcher) (start, end int, ok bool) {
	for {
		switch st := s.NextBack(); st.Kind {
		case StepReject:
			return st.Start, st.End, true
		case StepDone:
			return 0, 0, false
		}
	}
}
