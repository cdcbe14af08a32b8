package pattern

import "strings"

// ReplaceAll returns haystack with every non-overlapping match of p
// replaced by repl. If p does not match, haystack is returned unchanged
// without allocating.
//
// The empty literal matches at every character boundary, so
// ReplaceAll("abc", Literal(""), "-") is "-a-b-c-".
func ReplaceAll(haystack string, p Pattern, repl string) string {
	return Replace(haystack, p, repl, -1)
}

// Replace returns haystack with the first n non-overlapping matches of p
// replaced by repl, following the strings.Replace count contract: n < 0
// replaces all matches, n == 0 returns haystack unchanged.
func Replace(haystack string, p Pattern, repl string, n int) string {
	if n == 0 {
		return haystack
	}
	s := p.Searcher(haystack)
	start, end, ok := s.NextMatch()
	if !ok {
		return haystack
	}
	var b strings.Builder
	b.Grow(len(haystack) + len(repl))
	lastEnd := 0
	for ok {
		b.WriteString(haystack[lastEnd:start])
		b.WriteString(repl)
		lastEnd = end
		n--
		if n == 0 {
			break
		}
		start, end, ok = s.NextMatch()
	}
	b.WriteString(haystack[lastEnd:])
	return b.String()
}
