package list

// Position is a place in a list: an Iterator or a ConstIterator.
type Position[T any] interface {
	node() *node[T]
}

// Iterator is a bidirectional cursor over a list. It stays valid until the
// element it points at is erased. Iterators compare equal with == when they
// point at the same element. The End iterator must not be dereferenced.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) node() *node[T] { return it.n }

// Value returns a copy of the element.
func (it Iterator[T]) Value() T { return it.n.value }

// Ptr returns a pointer to the element stored in the list.
func (it Iterator[T]) Ptr() *T { return &it.n.value }

// Next returns an iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.n.next} }

// Prev returns an iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.n.prev} }

// Const converts it to a read-only iterator.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.n} }

// ConstIterator is an Iterator without write access to the elements.
type ConstIterator[T any] struct {
	n *node[T]
}

func (it ConstIterator[T]) node() *node[T] { return it.n }

// Value returns a copy of the element.
func (it ConstIterator[T]) Value() T { return it.n.value }

// Next returns an iterator to the following element.
func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it.n.next} }

// Prev returns an iterator to the preceding element.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{it.n.prev} }

// ReverseIterator walks a list back to front. It refers to the element
// before its base iterator, so RBegin wraps End and REnd wraps Begin.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Base returns the underlying forward iterator.
func (it ReverseIterator[T]) Base() Iterator[T] { return it.base }

// Value returns a copy of the element.
func (it ReverseIterator[T]) Value() T { return it.base.n.prev.value }

// Ptr returns a pointer to the element stored in the list.
func (it ReverseIterator[T]) Ptr() *T { return &it.base.n.prev.value }

// Next moves towards the front of the list.
func (it ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{it.base.Prev()} }

// Prev moves towards the back of the list.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{it.base.Next()} }

// ConstReverseIterator is a ReverseIterator without write access.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// Base returns the underlying forward iterator.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return it.base }

// Value returns a copy of the element.
func (it ConstReverseIterator[T]) Value() T { return it.base.n.prev.value }

// Next moves towards the front of the list.
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.Prev()}
}

// Prev moves towards the back of the list.
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.Next()}
}
