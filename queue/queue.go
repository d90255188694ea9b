// Package queue provides generic FIFO containers. All operations are
// total: inspecting or removing from an empty queue returns a zero value
// and false instead of panicking. Queues are not safe for concurrent use;
// callers needing that must wrap them with their own synchronization.
package queue

import (
	"iter"
	"slices"
)

// A Slice is a FIFO queue backed by a plain slice. The zero value is an
// empty queue ready for use.
//
// Enqueue is amortised O(1) but Dequeue is O(n) because the remaining
// elements shift one position towards the front. This is the naive
// baseline kept for contrast with [Linked], which does both in O(1).
type Slice[T any] struct {
	items []T
}

// Enqueue appends x to the back of the queue.
func (q *Slice[T]) Enqueue(x T) {
	q.items = append(q.items, x)
}

// Dequeue removes and returns the front element. It returns false if the
// queue is empty. O(n).
func (q *Slice[T]) Dequeue() (T, bool) {
	if len(q.items) == 0 {
		return zero[T](), false
	}
	x := q.items[0]
	// slices.Delete shifts the remainder left and zeroes the vacated
	// slot so the queue doesn't pin the dequeued value.
	q.items = slices.Delete(q.items, 0, 1)
	return x, true
}

// Peek returns the front element without removing it. It returns false if
// the queue is empty.
func (q *Slice[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		return zero[T](), false
	}
	return q.items[0], true
}

// Len returns the number of elements in the queue.
func (q *Slice[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Slice[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// All returns an iterator over the queued elements, front to back,
// without removing them. Every range over it restarts at the front.
func (q *Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range q.items {
			if !yield(x) {
				return
			}
		}
	}
}

func zero[T any]() (z T) { return }
