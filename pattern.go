// Package pattern generalizes substring search over several kinds of
// patterns: literal substrings, single characters, character sets, and
// character predicates.
//
// The package mirrors the lookup functions of the standard strings package,
// with the pattern passed as an explicit value:
//
//	pattern.Index("seafood", pattern.Literal("foo"))          // 3
//	pattern.Index("a1b2c3", pattern.Func(unicode.IsDigit))    // 1
//	pattern.Split("1,2;3", pattern.AnyOf(",;"))               // ["1" "2" "3"]
//	pattern.Trim("xxaxx", pattern.Char('x'))                  // "a"
//
// Every operation is driven by a Searcher: a stream of Match and Reject
// spans that tiles the haystack from one end to the other (see SearchStep).
// The stream abstraction is what lets a single Split or Trim implementation
// serve every pattern kind, and it is exported for callers that need the
// raw spans, such as tokenizers or highlighters.
//
// Literal patterns are searched with the Two-Way algorithm (package
// twoway): worst-case O(n+m) time, constant space, no preprocessing
// tables, with a 64-bit byte filter for sublinear skips in practice.
// Character patterns scan one pass with SWAR byte shortcuts (package simd)
// whenever the characters involved are all ASCII.
//
// Performance characteristics:
//   - Literal: O(n+m) worst case, sublinear on most inputs.
//   - Char, AnyOf, Func: O(n), one decode per character outside the
//     ASCII shortcut.
//   - Pattern values precompute everything at construction, are immutable,
//     and are safe for concurrent use. Searchers are single-traversal
//     cursors and are not.
//
// Limitations:
//   - Haystacks must be valid UTF-8 for the character-boundary guarantees
//     to hold. Invalid UTF-8 is searched byte-wise and stays memory-safe,
//     but boundary placement around the invalid bytes is unspecified.
//   - Backward search of a non-empty Literal is an independent pass, not
//     the forward matches replayed in reverse; see ReverseSearcher.
package pattern

import (
	"github.com/coregx/pattern/internal/conv"
	"github.com/coregx/pattern/twoway"
)

// Pattern is anything that can be searched for in a string.
//
// The built-in constructors are Literal, Char, AnyOf and Func. A Pattern
// is reusable: Searcher may be called any number of times, concurrently.
// Implementations outside this package participate in every forward
// operation; the backward operations additionally require the returned
// searcher to implement ReverseSearcher.
type Pattern interface {
	// Searcher returns a fresh searcher positioned at the start of
	// haystack.
	Searcher(haystack string) Searcher
}

type literalPattern struct {
	needle string
	finder *twoway.Finder // nil for the empty needle
}

// Literal returns a Pattern matching exact occurrences of needle.
//
// The needle may be empty: the empty literal matches a zero-width span at
// every character boundary of the haystack, including both ends, so for
// example Count("ab", Literal("")) is 3. Note that Split follows those
// boundary matches rather than strings.Split conventions: they produce
// leading and trailing empty fields.
func Literal(needle string) Pattern {
	p := &literalPattern{needle: needle}
	if needle != "" {
		p.finder = twoway.New(conv.Bytes(needle))
	}
	return p
}

func (p *literalPattern) Searcher(haystack string) Searcher {
	if p.finder == nil {
		return &emptySearcher{haystack: haystack, end: len(haystack), matchFwd: true, matchBwd: true}
	}
	return &strSearcher{
		haystack: haystack,
		tw:       p.finder.Searcher(conv.Bytes(haystack)),
	}
}

type charPattern struct {
	eq charEq
}

// Char returns a Pattern matching occurrences of the single character r.
func Char(r rune) Pattern {
	return &charPattern{eq: runeEq(r)}
}

// AnyOf returns a Pattern matching any single character that occurs in
// chars. Duplicates in chars are harmless; AnyOf("") matches nothing.
func AnyOf(chars string) Pattern {
	return &charPattern{eq: newSetEq(chars)}
}

// Func returns a Pattern matching every character for which pred reports
// true. pred must be deterministic for the duration of a traversal; it is
// called at most once per character position.
func Func(pred func(rune) bool) Pattern {
	return &charPattern{eq: funcEq(pred)}
}

func (p *charPattern) Searcher(haystack string) Searcher {
	return &charSearcher{haystack: haystack, eq: p.eq, end: len(haystack)}
}
