package list

import (
	stdlist "container/list"
	"fmt"
	"testing"

	arena "github.com/pavanmanishd/arenalist"
)

// BenchmarkPushBack compares building lists on an arena, on the heap and
// with container/list.
func BenchmarkPushBack(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("Arena_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s, _ := arena.NewStorage(n * 32)
				l := NewWithAllocator(arena.NewAllocator[int64](s))
				for j := range n {
					if err := l.PushBack(int64(j)); err != nil {
						b.Fatal(err)
					}
				}
			}
		})

		b.Run(fmt.Sprintf("Heap_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l := New[int64]()
				for j := range n {
					_ = l.PushBack(int64(j))
				}
			}
		})

		b.Run(fmt.Sprintf("ContainerList_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l := stdlist.New()
				for j := range n {
					l.PushBack(int64(j))
				}
			}
		})
	}
}

// BenchmarkChurn pushes and pops continuously on one list.
func BenchmarkChurn(b *testing.B) {
	b.Run("Heap", func(b *testing.B) {
		l := New[int64]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = l.PushBack(int64(i))
			if l.Len() > 64 {
				l.PopFront()
			}
		}
	})

	b.Run("Arena", func(b *testing.B) {
		s, _ := arena.NewStorage(1 << 20)
		l := NewWithAllocator(arena.NewAllocator[int64](s))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if err := l.PushBack(int64(i)); err != nil {
				// arena memory is never reused: start over on a fresh storage
				b.StopTimer()
				s, _ = arena.NewStorage(1 << 20)
				l = NewWithAllocator(arena.NewAllocator[int64](s))
				b.StartTimer()
				continue
			}
			if l.Len() > 64 {
				l.PopFront()
			}
		}
	})
}

func BenchmarkClone(b *testing.B) {
	src := New[int64]()
	for i := range 1024 {
		_ = src.PushBack(int64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := arena.NewStorage(1024 * 32)
		if _, err := src.CloneWithAllocator(arena.NewAllocator[int64](s)); err != nil {
			b.Fatal(err)
		}
	}
}
