package list

import "iter"

// A Node is an element of a [Doubly] list. Nodes are created by the list
// on insertion and must not be used after removal.
type Node[T any] struct {
	value T
	prev  *Node[T]
	next  *Node[T]
}

// Value returns the element stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// unlink severs both of the node's pointers.
func (n *Node[T]) unlink() {
	n.prev = nil
	n.next = nil
}

// A Doubly is a doubly linked list tracking both head and tail, so
// insertion and removal at either end are O(1). The zero value is an
// empty list ready for use.
//
// Invariants: head.prev and tail.next are always nil, and for every
// interior node, node.next.prev == node.
type Doubly[T any] struct {
	head *Node[T]
	tail *Node[T]
	n    int
}

// PushBack appends x and returns its node.
func (l *Doubly[T]) PushBack(x T) *Node[T] {
	nd := &Node[T]{value: x, prev: l.tail}
	if l.tail == nil {
		l.head = nd
	} else {
		l.tail.next = nd
	}
	l.tail = nd
	l.n++
	return nd
}

// PushFront prepends x and returns its node.
func (l *Doubly[T]) PushFront(x T) *Node[T] {
	nd := &Node[T]{value: x, next: l.head}
	if l.head == nil {
		l.tail = nd
	} else {
		l.head.prev = nd
	}
	l.head = nd
	l.n++
	return nd
}

// PopBack unlinks the tail node. It is a no-op on an empty list.
func (l *Doubly[T]) PopBack() {
	if l.tail == nil {
		return
	}
	nd := l.tail
	l.tail = nd.prev
	if l.tail == nil {
		// nd was the only element.
		l.head = nil
	} else {
		l.tail.next = nil
	}
	nd.unlink()
	l.n--
}

// PopFront unlinks the head node. It is a no-op on an empty list.
func (l *Doubly[T]) PopFront() {
	if l.head == nil {
		return
	}
	nd := l.head
	l.head = nd.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	nd.unlink()
	l.n--
}

// Remove unlinks nd, which must be a current element of l.
func (l *Doubly[T]) Remove(nd *Node[T]) {
	if nd.prev != nil {
		nd.prev.next = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	}
	if l.head == nd {
		l.head = nd.next
	}
	if l.tail == nd {
		l.tail = nd.prev
	}
	nd.unlink()
	l.n--
}

// MoveToBack moves nd, which must be a current element of l, to the tail
// of the list.
func (l *Doubly[T]) MoveToBack(nd *Node[T]) {
	if l.tail == nd {
		return
	}

	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		l.head = nd.next
	}
	// nd isn't the tail, so nd.next is non-nil.
	nd.next.prev = nd.prev

	nd.prev = l.tail
	nd.next = nil
	l.tail.next = nd
	l.tail = nd
}

// Front returns the first element. It returns false if the list is empty.
func (l *Doubly[T]) Front() (T, bool) {
	if l.head == nil {
		return zero[T](), false
	}
	return l.head.value, true
}

// Back returns the last element. It returns false if the list is empty.
func (l *Doubly[T]) Back() (T, bool) {
	if l.tail == nil {
		return zero[T](), false
	}
	return l.tail.value, true
}

// Len returns the number of elements in the list.
func (l *Doubly[T]) Len() int {
	return l.n
}

// IsEmpty reports whether the list holds no elements.
func (l *Doubly[T]) IsEmpty() bool {
	return l.head == nil
}

// All returns an iterator over the elements from head to tail. Every
// range over it restarts at the head.
func (l *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.head; nd != nil; nd = nd.next {
			if !yield(nd.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from tail to head. Every
// range over it restarts at the tail.
func (l *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.tail; nd != nil; nd = nd.prev {
			if !yield(nd.value) {
				return
			}
		}
	}
}
