package rope

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// generateText creates a string of the given size with realistic content.
func generateText(size int) string {
	var sb strings.Builder
	sb.Grow(size)

	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog", "hello", "world"}
	lineLen := 0

	for sb.Len() < size {
		word := words[rand.Intn(len(words))]
		if sb.Len()+len(word)+1 > size {
			break
		}

		if sb.Len() > 0 {
			if lineLen > 60 {
				sb.WriteByte('\n')
				lineLen = 0
			} else {
				sb.WriteByte(' ')
				lineLen++
			}
		}

		sb.WriteString(word)
		lineLen += len(word)
	}

	return sb.String()
}

func BenchmarkFromString(b *testing.B) {
	sizes := []int{100, 1000, 10000, 100000}
	for _, size := range sizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = FromString(text)
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	sizes := []int{100, 1000, 10000, 100000}
	for _, size := range sizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			r, _ := FromString(text)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pos := r.Len() / 2
				_, _ = r.Insert(pos, "x")
			}
		})
	}
}

func BenchmarkInsertSequential(b *testing.B) {
	b.ReportAllocs()
	r := New()
	for i := 0; i < b.N; i++ {
		var err error
		r, err = r.Insert(r.Len(), "x")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkErase(b *testing.B) {
	sizes := []int{100, 1000, 10000, 100000}
	for _, size := range sizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			r, _ := FromString(text)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pos := r.Len() / 2
				if pos == 0 {
					continue
				}
				_, _ = r.Erase(pos-1, pos)
			}
		})
	}
}

func BenchmarkSlice(b *testing.B) {
	sizes := []int{100, 1000, 10000, 100000}
	for _, size := range sizes {
		text := generateText(size)
		r, _ := FromString(text)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = r.Slice(r.Len()/4, r.Len()/2)
			}
		})
	}
}

func BenchmarkConcat(b *testing.B) {
	a, _ := FromString(generateText(1000))
	c, _ := FromString(generateText(1000))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = a.Concat(c)
	}
}

func BenchmarkString(b *testing.B) {
	sizes := []int{100, 1000, 10000, 100000}
	for _, size := range sizes {
		text := generateText(size)
		r, _ := FromString(text)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = r.String()
			}
		})
	}
}

func BenchmarkBuilderBuild(b *testing.B) {
	words := strings.Repeat("hello world ", 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var bb Builder
		bb.WriteString(words)
		_ = bb.Build()
	}
}
