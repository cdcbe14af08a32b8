package pattern

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

// ===========================================================================
// Index / LastIndex
// ===========================================================================

func TestIndex(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		pat      Pattern
		want     int
	}{
		{"char_hit", "hello", Char('l'), 2},
		{"char_miss", "hello", Char('x'), -1},
		{"char_cjk", "ประเทศไทย中华Việt Nam", Char('华'), 30},
		{"func_hit", "hello", Func(func(r rune) bool { return r == 'o' }), 4},
		{"func_miss", "hello", Func(func(r rune) bool { return r == 'x' }), -1},
		{"func_cjk", "ประเทศไทย中华Việt Nam", Func(func(r rune) bool { return r == '华' }), 30},
		{"set_hit", "hello", AnyOf("xol"), 2},
		{"set_miss", "hello", AnyOf("xyz"), -1},
		{"literal_empty_in_empty", "", Literal(""), 0},
		{"literal_empty", "banana", Literal(""), 0},
		{"literal_miss", "banana", Literal("apple pie"), -1},
		{"literal_at_start", "abcabc", Literal("ab"), 0},
		{"literal_inner", "seafood", Literal("foo"), 3},
		{"literal_cjk", "ประเทศไทย中华Việt Nam", Literal("中华"), 27},
		{"literal_cross_char_bytes", "ประเทศไทย中华Việt Nam", Literal("ไท华"), -1},
		{"literal_long_needle", "--1233345--", Literal("12345"), -1},
		{"needle_equals_haystack", "abc", Literal("abc"), 0},
		{"needle_longer", "ab", Literal("abc"), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.haystack, tt.pat); got != tt.want {
				t.Errorf("Index(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestLastIndex(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		pat      Pattern
		want     int
	}{
		{"char_hit", "hello", Char('l'), 3},
		{"char_miss", "hello", Char('x'), -1},
		{"char_cjk", "ประเทศไทย中华Việt Nam", Char('华'), 30},
		{"func_hit", "hello", Func(func(r rune) bool { return r == 'o' }), 4},
		{"func_cjk", "ประเทศไทย中华Việt Nam", Func(func(r rune) bool { return r == '华' }), 30},
		{"set_hit", "go gopher", AnyOf("pg"), 5},
		{"char_decoy_tail", "aaaaaabc", Char('b'), 6},
		{"set_decoy_tail", "aaaaaade", AnyOf("dx"), 6},
		{"literal", "go gopher", Literal("go"), 3},
		{"literal_empty", "abc", Literal(""), 3},
		{"literal_empty_in_empty", "", Literal(""), 0},
		{"literal_miss", "banana", Literal("apple pie"), -1},
		{"literal_single", "hello", Literal("l"), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastIndex(tt.haystack, tt.pat); got != tt.want {
				t.Errorf("LastIndex(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
		})
	}
}

// TestIndexEverySubstring slides a window over the haystack and checks that
// every substring is found at or before the position it was cut from, and
// by LastIndex at or after it.
func TestIndexEverySubstring(t *testing.T) {
	const s = "Việt Namacbaabcaabaaba"
	for i := 0; i < len(s); i++ {
		if !utf8.RuneStart(s[i]) {
			continue
		}
		for j := i + 1; j <= len(s); j++ {
			if j < len(s) && !utf8.RuneStart(s[j]) {
				continue
			}
			pat := s[i:j]
			if got := Index(s, Literal(pat)); got < 0 || got > i {
				t.Fatalf("Index(%q, %q) = %d, want in [0, %d]", s, pat, got, i)
			}
			if got := LastIndex(s, Literal(pat)); got < i {
				t.Fatalf("LastIndex(%q, %q) = %d, want >= %d", s, pat, got, i)
			}
		}
	}
}

// ===========================================================================
// Contains / HasPrefix / HasSuffix
// ===========================================================================

func TestContains(t *testing.T) {
	tests := []struct {
		haystack string
		pat      Pattern
		want     bool
	}{
		{"abcde", Literal("bcd"), true},
		{"abcde", Literal("abcd"), true},
		{"abcde", Literal("bcde"), true},
		{"abcde", Literal(""), true},
		{"", Literal(""), true},
		{"abcde", Literal("def"), false},
		{"", Literal("a"), false},
		{"ประเทศไทย中华Việt Nam", Literal("ประเ"), true},
		{"ประเทศไทย中华Việt Nam", Literal("ะเ"), true},
		{"ประเทศไทย中华Việt Nam", Literal("中华"), true},
		{"ประเทศไทย中华Việt Nam", Literal("ไท华"), false},
		{"bananas", Literal("nana"), true},
		{"1234567ah012345678901ah", Literal("hah"), false},
		{"00abc01234567890123456789abc", Literal("bcabc"), false},
		{"abc", Char('b'), true},
		{"a", Char('a'), true},
		{"abc", Char('d'), false},
		{"", Char('a'), false},
		{"a1b", Func(unicode.IsDigit), true},
		{"ab", Func(unicode.IsDigit), false},
	}
	for _, tt := range tests {
		if got := Contains(tt.haystack, tt.pat); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.haystack, got, tt.want)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		haystack string
		pat      Pattern
		want     bool
	}{
		{"", Literal(""), true},
		{"abc", Literal(""), true},
		{"abc", Literal("a"), true},
		{"a", Literal("abc"), false},
		{"", Literal("abc"), false},
		{"ödd", Literal("-"), false},
		{"ödd", Literal("öd"), true},
		{"####ä", Literal("##"), true},
		{"##ä", Literal("####"), false},
		{"##ä##", Literal("##ä"), true},
		{"abc", Char('a'), true},
		{"abc", Char('b'), false},
		{"", Char('a'), false},
		{"1abc", Func(unicode.IsDigit), true},
		{"abc1", Func(unicode.IsDigit), false},
	}
	for _, tt := range tests {
		if got := HasPrefix(tt.haystack, tt.pat); got != tt.want {
			t.Errorf("HasPrefix(%q) = %v, want %v", tt.haystack, got, tt.want)
		}
	}
}

func TestHasSuffix(t *testing.T) {
	tests := []struct {
		haystack string
		pat      Pattern
		want     bool
	}{
		{"", Literal(""), true},
		{"abc", Literal(""), true},
		{"abc", Literal("c"), true},
		{"a", Literal("abc"), false},
		{"", Literal("abc"), false},
		{"ddö", Literal("-"), false},
		{"ddö", Literal("dö"), true},
		{"abc", Char('c'), true},
		{"abc", Char('b'), false},
		{"abc1", Func(unicode.IsDigit), true},
		{"1abc", Func(unicode.IsDigit), false},
	}
	for _, tt := range tests {
		if got := HasSuffix(tt.haystack, tt.pat); got != tt.want {
			t.Errorf("HasSuffix(%q) = %v, want %v", tt.haystack, got, tt.want)
		}
	}
}

// HasPrefix must agree with a first match at offset 0, and HasSuffix with a
// backward first match ending at the last byte.
func TestPrefixSuffixAgreeWithIndex(t *testing.T) {
	haystacks := []string{"", "a", "ab", "aba", "##ä##", "ประเทศไทย中华"}
	pats := []Pattern{
		Literal(""), Literal("a"), Literal("ab"), Literal("##"), Literal("ä##"),
		Char('a'), Char('#'), AnyOf("ab#"), Func(unicode.IsLetter),
	}
	for _, h := range haystacks {
		for _, p := range pats {
			if got, want := HasPrefix(h, p), Index(h, p) == 0; got != want {
				t.Errorf("HasPrefix(%q) = %v, but Index = %d", h, got, Index(h, p))
			}
			s := requireReverse(h, p, "test")
			_, end, ok := s.NextMatchBack()
			if got, want := HasSuffix(h, p), ok && end == len(h); got != want {
				t.Errorf("HasSuffix(%q) = %v, want %v", h, got, want)
			}
		}
	}
}

// ===========================================================================
// Count
// ===========================================================================

func TestCount(t *testing.T) {
	tests := []struct {
		haystack string
		pat      Pattern
		want     int
	}{
		{"cheese", Literal("e"), 3},
		{"five", Literal(""), 5},
		{"", Literal(""), 1},
		{"banana", Literal("na"), 2},
		{"aaa", Literal("aa"), 1},
		{"aaaa", Literal("aa"), 2},
		{"abbcbbbbd", Literal("bb"), 3},
		{"notfound", Literal("zz"), 0},
		{"cheese", Char('e'), 3},
		{"a1b2c3", Func(unicode.IsDigit), 3},
		{"a1b2c3", AnyOf("123"), 3},
		{"aä中!", Literal(""), 5},
	}
	for _, tt := range tests {
		if got := Count(tt.haystack, tt.pat); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.haystack, got, tt.want)
		}
	}
}

// Count on literal patterns follows strings.Count, including the empty
// needle counting boundaries.
func TestCountMatchesStdlib(t *testing.T) {
	haystacks := []string{"", "a", "aa", "aaa", "banana", "ab", "ππππ", "aä中!"}
	needles := []string{"", "a", "aa", "an", "π", "中"}
	for _, h := range haystacks {
		for _, n := range needles {
			if got, want := Count(h, Literal(n)), strings.Count(h, n); got != want {
				t.Errorf("Count(%q, %q) = %d, strings.Count = %d", h, n, got, want)
			}
		}
	}
}
