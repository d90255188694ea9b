package queue

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// A LessThan implementation has a strict ordering.
type LessThan[T any] interface {
	LessThan(T) bool
}

// Ordered adapts a naturally ordered type to [LessThan] so it can be held
// in a [Priority] without a wrapper type of its own.
type Ordered[T constraints.Ordered] struct{ V T }

// LessThan compares the wrapped values with <.
func (o Ordered[T]) LessThan(p Ordered[T]) bool {
	return o.V < p.V
}

// A Priority is a priority queue over a binary heap; Pop returns the
// least item under the type's LessThan ordering. The zero value is valid.
type Priority[T LessThan[T]] struct {
	p priority[T]
}

// Len returns the number of items in the queue.
func (p *Priority[T]) Len() int {
	return p.p.Len()
}

// IsEmpty reports whether the queue holds no items.
func (p *Priority[T]) IsEmpty() bool {
	return p.p.Len() == 0
}

// Push adds an item to the queue.
func (p *Priority[T]) Push(x T) {
	heap.Push(&p.p, x)
}

// Peek returns the least item without removing it. It returns false if
// the queue is empty.
func (p *Priority[T]) Peek() (T, bool) {
	if p.p.Len() == 0 {
		return zero[T](), false
	}
	return p.p.at(0), true
}

// Pop removes and returns the least item. It returns false if the queue
// is empty.
func (p *Priority[T]) Pop() (T, bool) {
	if p.p.Len() == 0 {
		return zero[T](), false
	}
	return heap.Pop(&p.p).(T), true
}

// Fix reestablishes the queue's ordering if the i'th item's priority
// changes.
func (p *Priority[T]) Fix(i int) {
	heap.Fix(&p.p, i)
}

// Grow increases the queue's allocated buffer to hold up to n items. This
// does not place a limit on the size of the queue, but pre-allocates
// memory.
func (p *Priority[T]) Grow(n int) {
	p.p.grow(n)
}

// priority implements [heap.Interface] over a ring.
type priority[T LessThan[T]] struct {
	ring[T]
}

func (p *priority[T]) Len() int {
	return p.len()
}

func (p *priority[T]) Less(i, j int) bool {
	return p.at(i).LessThan(p.at(j))
}

func (p *priority[T]) Pop() any {
	x, _ := p.popBack() // the heap only pops what it pushed
	return x
}

func (p *priority[T]) Push(x any) {
	p.append(x.(T))
}

func (p *priority[T]) Swap(i, j int) {
	i = p.index(i)
	j = p.index(j)
	p.buf[i], p.buf[j] = p.buf[j], p.buf[i]
}
