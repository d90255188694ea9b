package queue

import "iter"

// A node holds one queued value. The queue owns its nodes exclusively;
// Dequeue severs the outgoing link so an unlinked node cannot pin its
// successors.
type node[T any] struct {
	value T
	next  *node[T]
}

// A Linked is a FIFO queue backed by singly-linked nodes with head and
// tail tracking, giving O(1) Enqueue and Dequeue. The zero value is an
// empty queue ready for use.
//
// Invariant: head == nil iff tail == nil iff n == 0, and the tail is
// reachable from the head in exactly n-1 steps.
type Linked[T any] struct {
	head *node[T]
	tail *node[T]
	n    int
}

// Enqueue appends x to the back of the queue.
func (q *Linked[T]) Enqueue(x T) {
	nd := &node[T]{value: x}
	if q.tail == nil {
		q.head = nd
	} else {
		q.tail.next = nd
	}
	q.tail = nd
	q.n++
}

// Dequeue removes and returns the front element. It returns false if the
// queue is empty.
func (q *Linked[T]) Dequeue() (T, bool) {
	if q.head == nil {
		return zero[T](), false
	}
	nd := q.head
	q.head = nd.next
	if q.head == nil {
		// Last element removed. A stale tail here would silently
		// resurrect nd on the next Enqueue.
		q.tail = nil
	}
	nd.next = nil
	q.n--
	return nd.value, true
}

// Peek returns the front element without removing it. It returns false if
// the queue is empty.
func (q *Linked[T]) Peek() (T, bool) {
	if q.head == nil {
		return zero[T](), false
	}
	return q.head.value, true
}

// Len returns the number of elements in the queue.
func (q *Linked[T]) Len() int {
	return q.n
}

// IsEmpty reports whether the queue holds no elements.
func (q *Linked[T]) IsEmpty() bool {
	return q.head == nil
}

// All returns an iterator over the queued elements, front to back,
// without removing them. Every range over it restarts at the front.
func (q *Linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := q.head; nd != nil; nd = nd.next {
			if !yield(nd.value) {
				return
			}
		}
	}
}
