// Package list provides generic singly and doubly linked lists. A list
// owns its nodes exclusively: unlinking severs a node's pointers so that a
// removed node cannot pin the remainder of the list. All operations are
// total; removal from an empty list is a no-op. Lists are not safe for
// concurrent use.
package list

import "iter"

// snode is a node of a [Singly] list.
type snode[T comparable] struct {
	value T
	next  *snode[T]
}

// A Singly is a singly linked list tracking only its head. The zero value
// is an empty list ready for use.
//
// Without a tail pointer PushBack must walk the whole list, so it is
// O(n). [Doubly] tracks both ends and works in O(1) at either one.
type Singly[T comparable] struct {
	head *snode[T]
	n    int
}

// PushFront inserts x before the current head. O(1).
func (l *Singly[T]) PushFront(x T) {
	l.head = &snode[T]{value: x, next: l.head}
	l.n++
}

// PushBack inserts x after the last node. O(n).
func (l *Singly[T]) PushBack(x T) {
	if l.head == nil {
		l.PushFront(x)
		return
	}

	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = &snode[T]{value: x}
	l.n++
}

// PopFront unlinks the head node. It is a no-op on an empty list.
func (l *Singly[T]) PopFront() {
	if l.head == nil {
		return
	}
	nd := l.head
	l.head = nd.next
	nd.next = nil
	l.n--
}

// Front returns the first element. It returns false if the list is empty.
func (l *Singly[T]) Front() (T, bool) {
	if l.head == nil {
		return zero[T](), false
	}
	return l.head.value, true
}

// Find reports whether any element equals x. O(n).
func (l *Singly[T]) Find(x T) bool {
	for nd := l.head; nd != nil; nd = nd.next {
		if nd.value == x {
			return true
		}
	}
	return false
}

// Len returns the number of elements in the list.
func (l *Singly[T]) Len() int {
	return l.n
}

// IsEmpty reports whether the list holds no elements.
func (l *Singly[T]) IsEmpty() bool {
	return l.head == nil
}

// All returns an iterator over the elements from front to back. Every
// range over it restarts at the head.
func (l *Singly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.head; nd != nil; nd = nd.next {
			if !yield(nd.value) {
				return
			}
		}
	}
}

func zero[T any]() (z T) { return }
