package queue

// A ring is a circular buffer with constant-time access at both ends and
// amortised constant-time insertion. It backs [Deque] and [Priority].
type ring[T any] struct {
	buf   []T // len(buf) MUST == cap(buf)
	start int // 0 <= start < len(buf)
	n     int // 0 <= n <= len(buf)
}

// cap returns the capacity of the ring.
func (r *ring[T]) cap() int {
	return len(r.buf)
}

// len returns the number of elements in the ring.
func (r *ring[T]) len() int {
	return r.n
}

func (r *ring[T]) mod(i int) int {
	return i % r.cap()
}

// index maps a logical position in [0,r.len()) to its buffer index.
func (r *ring[T]) index(i int) int {
	return r.mod(r.start + i)
}

// next returns the buffer index at which an appended element lands. If
// the ring is at capacity it always returns (0, false) and [ring.grow]
// should be called.
func (r *ring[T]) next() (_ int, hasCap bool) {
	if r.len() == r.cap() {
		return 0, false
	}
	return r.index(r.n), true
}

// append places x after the last element. If the ring is full, its
// capacity is doubled, or set to 1 if there is no current capacity.
func (r *ring[T]) append(x T) {
	for {
		if idx, ok := r.next(); ok {
			r.buf[idx] = x
			r.n++
			return
		}

		grow := 2 * r.cap()
		if grow == 0 {
			grow = 1
		}
		r.grow(grow)
	}
}

// prepend places x before the first element, growing as [ring.append]
// does.
func (r *ring[T]) prepend(x T) {
	for {
		if _, ok := r.next(); ok {
			r.start = r.mod(r.start + r.cap() - 1)
			r.buf[r.start] = x
			r.n++
			return
		}

		grow := 2 * r.cap()
		if grow == 0 {
			grow = 1
		}
		r.grow(grow)
	}
}

// at returns the i'th element without removing it. The returned value is
// undefined if i is not in [0,r.len()).
func (r *ring[T]) at(i int) T {
	return r.buf[r.index(i)]
}

// clearAt zeroes the i'th slot so the ring doesn't pin a removed value.
func (r *ring[T]) clearAt(i int) {
	r.buf[r.index(i)] = zero[T]()
}

// popFront removes and returns the first element, or false when the ring
// is empty.
func (r *ring[T]) popFront() (T, bool) {
	if r.n == 0 {
		return zero[T](), false
	}

	x := r.at(0)
	r.clearAt(0)
	r.start = r.mod(r.start + 1)
	r.n--
	return x, true
}

// popBack removes and returns the last element, or false when the ring is
// empty.
func (r *ring[T]) popBack() (T, bool) {
	if r.n == 0 {
		return zero[T](), false
	}

	i := r.n - 1
	x := r.at(i)
	r.clearAt(i)
	r.n--
	return x, true
}

// grow increases the ring's capacity to n, if necessary, unwinding the
// wrap-around so start returns to 0. It is O(r.cap()).
func (r *ring[T]) grow(n int) {
	if n <= r.cap() {
		return
	}
	b := make([]T, n)
	copy(b, r.buf[r.start:])
	copy(b[len(r.buf)-r.start:], r.buf[:r.start])

	r.buf = b
	r.start = 0
}
