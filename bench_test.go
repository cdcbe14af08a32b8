package pattern

import (
	"strings"
	"testing"
	"unicode"
)

// Generate 1MB of lowercase text. The tail carries the only occurrences
// of the search targets: "needle-xyz" for substring benchmarks, '#' for
// char benchmarks and 'Q' for predicate benchmarks, so every search
// scans the full megabyte.
func generateBenchText() string {
	var sb strings.Builder
	words := []string{
		"hello world ", "test text ", "foo bar ", "abc ", "xyz ",
		"quick brown fox ", "lazy dog ", "word ", "sample text ",
	}
	for sb.Len() < 1024*1024 {
		for _, w := range words {
			sb.WriteString(w)
		}
	}
	sb.WriteString("needle-xyz#Q")
	return sb.String()
}

var benchText = generateBenchText()

func BenchmarkIndex_1MB_Stdlib(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strings.Index(benchText, "needle-xyz")
	}
}

func BenchmarkIndex_1MB_Pattern(b *testing.B) {
	p := Literal("needle-xyz")
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Index(benchText, p)
	}
}

func BenchmarkIndexChar_1MB_Stdlib(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strings.IndexRune(benchText, '#')
	}
}

func BenchmarkIndexChar_1MB_Pattern(b *testing.B) {
	p := Char('#')
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Index(benchText, p)
	}
}

func BenchmarkIndexAny_1MB_Stdlib(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strings.IndexAny(benchText, "#@")
	}
}

func BenchmarkIndexAny_1MB_Pattern(b *testing.B) {
	p := AnyOf("#@")
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Index(benchText, p)
	}
}

func BenchmarkIndexFunc_1MB_Stdlib(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strings.IndexFunc(benchText, unicode.IsUpper)
	}
}

func BenchmarkIndexFunc_1MB_Pattern(b *testing.B) {
	p := Func(unicode.IsUpper)
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Index(benchText, p)
	}
}

func BenchmarkCount_1MB_Stdlib(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strings.Count(benchText, "fox")
	}
}

func BenchmarkCount_1MB_Pattern(b *testing.B) {
	p := Literal("fox")
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Count(benchText, p)
	}
}

func BenchmarkSplit_1MB_Stdlib(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strings.Split(benchText, " ")
	}
}

func BenchmarkSplit_1MB_Pattern(b *testing.B) {
	p := Literal(" ")
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Split(benchText, p)
	}
}

func BenchmarkReplaceAll_1MB_Stdlib(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strings.ReplaceAll(benchText, "fox", "cat")
	}
}

func BenchmarkReplaceAll_1MB_Pattern(b *testing.B) {
	p := Literal("fox")
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ReplaceAll(benchText, p, "cat")
	}
}

// Periodic worst case: long runs of 'a' defeat naive quadratic search
// but stay linear under Two-Way.
func BenchmarkIndexPeriodic_1MB_Stdlib(b *testing.B) {
	haystack := strings.Repeat("a", 1024*1024)
	needle := strings.Repeat("a", 64) + "b"
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strings.Index(haystack, needle)
	}
}

func BenchmarkIndexPeriodic_1MB_Pattern(b *testing.B) {
	haystack := strings.Repeat("a", 1024*1024)
	p := Literal(strings.Repeat("a", 64) + "b")
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Index(haystack, p)
	}
}

func BenchmarkLiteralConstruct_64B(b *testing.B) {
	needle := strings.Repeat("ab", 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Literal(needle)
	}
}
