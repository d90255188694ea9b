package queue

import "iter"

// A Deque is a double-ended queue over a circular buffer. Pushes and pops
// at either end are O(1), amortised for pushes that trigger growth. The
// zero value is an empty deque ready for use.
type Deque[T any] struct {
	r ring[T]
}

// PushBack appends x after the last element.
func (d *Deque[T]) PushBack(x T) {
	d.r.append(x)
}

// PushFront inserts x before the first element.
func (d *Deque[T]) PushFront(x T) {
	d.r.prepend(x)
}

// PopFront removes and returns the first element. It returns false if the
// deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	return d.r.popFront()
}

// PopBack removes and returns the last element. It returns false if the
// deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	return d.r.popBack()
}

// PeekFront returns the first element without removing it. It returns
// false if the deque is empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	if d.r.len() == 0 {
		return zero[T](), false
	}
	return d.r.at(0), true
}

// PeekBack returns the last element without removing it. It returns false
// if the deque is empty.
func (d *Deque[T]) PeekBack() (T, bool) {
	if d.r.len() == 0 {
		return zero[T](), false
	}
	return d.r.at(d.r.len() - 1), true
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.r.len()
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.r.len() == 0
}

// Grow increases the deque's allocated buffer to hold up to n elements.
// This does not place a limit on the size of the deque, but pre-allocates
// memory.
func (d *Deque[T]) Grow(n int) {
	d.r.grow(n)
}

// All returns an iterator over the elements, front to back, without
// removing them. Every range over it restarts at the front.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range d.r.len() {
			if !yield(d.r.at(i)) {
				return
			}
		}
	}
}
