package pattern

// Index returns the byte index of the first occurrence of p in haystack,
// or -1 if no match is present.
func Index(haystack string, p Pattern) int {
	if start, _, ok := p.Searcher(haystack).NextMatch(); ok {
		return start
	}
	return -1
}

// LastIndex returns the byte index of the first match found scanning from
// the right, or -1 if no match is present. For patterns with overlapping
// candidates this may not be the rightmost member of the forward match
// set; see ReverseSearcher.
//
// LastIndex panics if p's searcher does not implement ReverseSearcher.
func LastIndex(haystack string, p Pattern) int {
	if start, _, ok := requireReverse(haystack, p, "LastIndex").NextMatchBack(); ok {
		return start
	}
	return -1
}

// Contains reports whether p matches anywhere in haystack.
func Contains(haystack string, p Pattern) bool {
	_, _, ok := p.Searcher(haystack).NextMatch()
	return ok
}

// HasPrefix reports whether haystack begins with a match of p.
func HasPrefix(haystack string, p Pattern) bool {
	if lp, ok := p.(*literalPattern); ok {
		n := lp.needle
		return len(n) <= len(haystack) && haystack[:len(n)] == n
	}
	// the first step starts at offset 0, so its kind decides
	return p.Searcher(haystack).Next().Kind == StepMatch
}

// HasSuffix reports whether haystack ends with a match of p.
//
// HasSuffix panics if p is not a built-in pattern and its searcher does
// not implement ReverseSearcher.
func HasSuffix(haystack string, p Pattern) bool {
	if lp, ok := p.(*literalPattern); ok {
		n := lp.needle
		return len(n) <= len(haystack) && haystack[len(haystack)-len(n):] == n
	}
	return requireReverse(haystack, p, "HasSuffix").NextBack().Kind == StepMatch
}

// Count returns the number of non-overlapping matches of p in haystack.
// Like strings.Count, the empty literal yields one match at every
// character boundary: 1 + the number of characters.
func Count(haystack string, p Pattern) int {
	n := 0
	s := p.Searcher(haystack)
	for {
		if _, _, ok := s.NextMatch(); !ok {
			return n
		}
		n++
	}
}
