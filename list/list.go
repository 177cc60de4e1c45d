// Package list implements an allocator-aware doubly linked list.
//
// Elements live in nodes obtained from an alloc.Allocator, so a list can be
// backed by the Go heap (the default) or by a fixed arena.Storage. Nodes form
// a ring around a sentinel held by the List itself; an empty list is a
// sentinel pointing at itself.
//
// Every mutating operation is all-or-nothing: if allocating a node or
// constructing its value fails, the list is left exactly as it was.
package list

import (
	"fmt"
	"iter"

	"github.com/pavanmanishd/arenalist/alloc"
)

type node[T any] struct {
	prev, next *node[T]
	value      T
}

// Untraced lets nodes of pointer-free elements live in arena memory. Links
// only point at nodes of the same list or at its sentinel, and the List
// keeps both reachable.
func (node[T]) Untraced() bool { return !alloc.HoldsPointers[T]() }

// List is a doubly linked list of T. The zero value is an empty list that
// allocates from the Go heap. A List must not be copied after first use;
// use Clone or Assign.
type List[T any] struct {
	root  node[T] // sentinel, never holds a value
	len   int
	alloc alloc.Allocator[node[T]]
}

// New returns an empty heap-backed list.
func New[T any]() *List[T] {
	return new(List[T]).init()
}

// NewWithAllocator returns an empty list whose nodes come from a.
func NewWithAllocator[T any](a alloc.Allocator[T]) *List[T] {
	l := &List[T]{alloc: alloc.Rebind[node[T]](a)}
	return l.init()
}

// NewSized returns a list of n default-constructed elements.
func NewSized[T any](n int, a alloc.Allocator[T]) (*List[T], error) {
	l := NewWithAllocator(a)
	for range n {
		nd, err := l.newNode(constructDefault[T])
		if err != nil {
			l.Clear()
			return nil, err
		}
		l.link(&l.root, nd)
	}
	return l, nil
}

// NewFilled returns a list of n copies of v.
func NewFilled[T any](n int, v T, a alloc.Allocator[T]) (*List[T], error) {
	l := NewWithAllocator(a)
	for range n {
		if _, err := l.Insert(l.End(), v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

func (l *List[T]) init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.len }

// Allocator returns the allocator the list was built with, for T.
func (l *List[T]) Allocator() alloc.Allocator[T] {
	return alloc.Rebind[T](l.alloc)
}

// Begin returns an iterator to the first element, or End if l is empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{l.root.next}
}

// End returns the past-the-end iterator.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{&l.root}
}

// CBegin returns a read-only iterator to the first element.
func (l *List[T]) CBegin() ConstIterator[T] { return l.Begin().Const() }

// CEnd returns the read-only past-the-end iterator.
func (l *List[T]) CEnd() ConstIterator[T] { return l.End().Const() }

// RBegin returns a reverse iterator to the last element.
func (l *List[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{l.End()} }

// REnd returns the reverse past-the-end iterator.
func (l *List[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{l.Begin()} }

// CRBegin returns a read-only reverse iterator to the last element.
func (l *List[T]) CRBegin() ConstReverseIterator[T] { return ConstReverseIterator[T]{l.CEnd()} }

// CREnd returns the read-only reverse past-the-end iterator.
func (l *List[T]) CREnd() ConstReverseIterator[T] { return ConstReverseIterator[T]{l.CBegin()} }

// Front returns the first element. l must not be empty.
func (l *List[T]) Front() T { return l.root.next.value }

// Back returns the last element. l must not be empty.
func (l *List[T]) Back() T { return l.root.prev.value }

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.root.prev; n != &l.root; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Insert places a copy of v before pos and returns an iterator to it.
// Inserting before End appends. On error l is unchanged.
func (l *List[T]) Insert(pos Position[T], v T) (Iterator[T], error) {
	l.lazyInit()
	n, err := l.newNode(func(dst *T) error { return constructCopy(dst, v) })
	if err != nil {
		return Iterator[T]{}, err
	}
	l.link(pos.node(), n)
	return Iterator[T]{n}, nil
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it. Iterators to other elements stay valid. pos must not be
// End.
func (l *List[T]) Erase(pos Position[T]) Iterator[T] {
	n := pos.node()
	next := n.next
	n.prev.next = n.next
	n.next.prev = n.prev
	l.len--

	destroy(&n.value)
	n.prev, n.next = nil, nil
	l.alloc.Deallocate(n, 1)
	return Iterator[T]{next}
}

// PushBack appends a copy of v.
func (l *List[T]) PushBack(v T) error {
	_, err := l.Insert(l.End(), v)
	return err
}

// PushFront prepends a copy of v.
func (l *List[T]) PushFront(v T) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

// PopBack removes the last element. l must not be empty.
func (l *List[T]) PopBack() {
	l.Erase(l.End().Prev())
}

// PopFront removes the first element. l must not be empty.
func (l *List[T]) PopFront() {
	l.Erase(l.Begin())
}

// Clear erases every element front to back, handing each node back to the
// allocator.
func (l *List[T]) Clear() {
	l.lazyInit()
	for l.len > 0 {
		l.Erase(l.Begin())
	}
}

// Clone returns a copy of l built with the allocator l's allocator selects
// for copies.
func (l *List[T]) Clone() (*List[T], error) {
	return l.cloneWith(l.alloc.SelectOnCopyConstruction())
}

// CloneWithAllocator returns a copy of l whose nodes come from a.
func (l *List[T]) CloneWithAllocator(a alloc.Allocator[T]) (*List[T], error) {
	return l.cloneWith(alloc.Rebind[node[T]](a))
}

func (l *List[T]) cloneWith(a alloc.Allocator[node[T]]) (*List[T], error) {
	c := (&List[T]{alloc: a}).init()
	for v := range l.All() {
		if _, err := c.Insert(c.End(), v); err != nil {
			c.Clear()
			return nil, err
		}
	}
	return c, nil
}

// Assign replaces the contents of l with copies of src's elements. If src's
// allocator propagates on copy assignment, l switches to it; otherwise l
// keeps its own. The copy is built completely before l changes, so on error
// l is untouched. The old elements are released through the allocator that
// created them.
func (l *List[T]) Assign(src *List[T]) error {
	if l == src {
		return nil
	}
	a := l.alloc
	if src.alloc.PropagateOnCopyAssignment() {
		a = src.alloc
	}
	tmp, err := src.cloneWith(a)
	if err != nil {
		return err
	}
	l.swap(tmp)
	tmp.Clear()
	return nil
}

// newNode allocates a node and constructs its value. If construction fails
// or panics the node is handed back before returning.
func (l *List[T]) newNode(construct func(*T) error) (*node[T], error) {
	n, err := l.alloc.Allocate(1)
	if err != nil {
		return nil, fmt.Errorf("list: allocate node: %w", err)
	}
	ok := false
	defer func() {
		if !ok {
			*n = node[T]{}
			l.alloc.Deallocate(n, 1)
		}
	}()

	n.prev, n.next = nil, nil
	if err := construct(&n.value); err != nil {
		return nil, err
	}
	ok = true
	return n, nil
}

// link splices n in before at.
func (l *List[T]) link(at, n *node[T]) {
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	l.len++
}

// swap exchanges the rings, lengths and allocators of l and o.
func (l *List[T]) swap(o *List[T]) {
	l.lazyInit()
	o.lazyInit()
	lEmpty, oEmpty := l.len == 0, o.len == 0
	l.root.next, o.root.next = o.root.next, l.root.next
	l.root.prev, o.root.prev = o.root.prev, l.root.prev
	l.relinkRoot(oEmpty)
	o.relinkRoot(lEmpty)
	l.len, o.len = o.len, l.len
	l.alloc, o.alloc = o.alloc, l.alloc
}

// relinkRoot points the ends of the ring back at l's sentinel.
func (l *List[T]) relinkRoot(empty bool) {
	if empty {
		l.root.next = &l.root
		l.root.prev = &l.root
		return
	}
	l.root.next.prev = &l.root
	l.root.prev.next = &l.root
}
