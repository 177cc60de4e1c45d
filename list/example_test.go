package list_test

import (
	"fmt"
	"slices"

	arena "github.com/pavanmanishd/arenalist"
	"github.com/pavanmanishd/arenalist/alloc"
	"github.com/pavanmanishd/arenalist/list"
)

// Example builds a list on a fixed arena
func Example() {
	s, err := arena.NewStorage(1024)
	if err != nil {
		panic(err)
	}
	defer s.Release()

	l := list.NewWithAllocator(arena.NewAllocator[int](s))
	for i := 1; i <= 5; i++ {
		if err := l.PushBack(i); err != nil {
			panic(err)
		}
	}
	l.PopFront()
	l.PopFront()
	_ = l.PushBack(6)

	fmt.Println(slices.Collect(l.All()))
	fmt.Println("len:", l.Len())
	fmt.Println("live nodes:", s.Metrics().Live())

	// Output:
	// [3 4 5 6]
	// len: 4
	// live nodes: 4
}

// ExampleList_Assign shows copy-assignment keeping the destination's allocator
func ExampleList_Assign() {
	src := list.New[string]()
	_ = src.PushBack("a")
	_ = src.PushBack("b")

	dst := list.NewWithAllocator(alloc.New[string](nil))
	_ = dst.PushBack("old")

	if err := dst.Assign(src); err != nil {
		panic(err)
	}
	for it := dst.RBegin(); it != dst.REnd(); it = it.Next() {
		fmt.Println(it.Value())
	}
	fmt.Println("heap:", dst.Allocator().IsHeap())

	// Output:
	// b
	// a
	// heap: true
}
