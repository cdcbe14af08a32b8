package pattern

// TrimLeft returns haystack with all leading matches of p removed: the
// suffix starting at the first rejected span. A haystack made entirely of
// matches trims to "".
func TrimLeft(haystack string, p Pattern) string {
	if a, _, ok := p.Searcher(haystack).NextReject(); ok {
		return haystack[a:]
	}
	return ""
}

// TrimRight returns haystack with all trailing matches of p removed: the
// prefix ending at the first span rejected from the right.
//
// TrimRight panics if p's searcher does not implement ReverseSearcher.
func TrimRight(haystack string, p Pattern) string {
	if _, b, ok := requireReverse(haystack, p, "TrimRight").NextRejectBack(); ok {
		return haystack[:b]
	}
	return ""
}

// Trim returns haystack with all leading and trailing matches of p
// removed.
//
// When p's searcher is double-ended the two trims run as one traversal
// from both ends of a single searcher, so each character is classified at
// most once. Other reversible patterns fall back to TrimLeft followed by
// TrimRight, which is equivalent.
func Trim(haystack string, p Pattern) string {
	de, ok := p.Searcher(haystack).(DoubleEndedSearcher)
	if !ok {
		return TrimRight(TrimLeft(haystack, p), p)
	}
	i, j := 0, 0
	if a, b, ok := de.NextReject(); ok {
		// j covers the single-reject case; corrected below when a later
		// reject exists
		i, j = a, b
	}
	if _, b, ok := de.NextRejectBack(); ok {
		j = b
	}
	return haystack[i:j]
}
