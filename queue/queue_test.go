package queue

import (
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// A fifo is the contract shared by [Slice] and [Linked], letting one
// suite cover both.
type fifo[T any] interface {
	Enqueue(T)
	Dequeue() (T, bool)
	Peek() (T, bool)
	Len() int
	IsEmpty() bool
	All() iter.Seq[T]
}

func drain[T any](q fifo[T]) []T {
	var got []T
	for {
		x, ok := q.Dequeue()
		if !ok {
			return got
		}
		got = append(got, x)
	}
}

func diff(t *testing.T, got, want []int) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("dequeued values; diff (-want +got):\n%s", diff)
	}
}

func TestSlice(t *testing.T)  { testFIFO(t, func() fifo[int] { return new(Slice[int]) }) }
func TestLinked(t *testing.T) { testFIFO(t, func() fifo[int] { return new(Linked[int]) }) }

func testFIFO(t *testing.T, newQueue func() fifo[int]) {
	t.Run("disjoint_enqueue_dequeue", func(t *testing.T) {
		q := newQueue()

		var want []int
		for i := range 5 {
			q.Enqueue(i)
			want = append(want, i)
		}
		diff(t, drain(q), want)
	})

	t.Run("interleaved_enqueue_dequeue", func(t *testing.T) {
		q := newQueue()

		rng := rand.New(rand.NewPCG(0, 0))

		var got, want []int
		for i := range 1000 {
			q.Enqueue(i)
			want = append(want, i)

			if rng.IntN(4) == 0 {
				x, ok := q.Dequeue()
				if ok {
					got = append(got, x)
				}
			}
		}

		got = append(got, drain(q)...)
		diff(t, got, want)
	})

	t.Run("dequeue_empty", func(t *testing.T) {
		q := newQueue()

		x, ok := q.Dequeue()
		require.False(t, ok, "Dequeue() on empty queue")
		require.Zero(t, x, "Dequeue() on empty queue")
		require.Equal(t, 0, q.Len(), "Len() after empty Dequeue()")
		require.True(t, q.IsEmpty(), "IsEmpty() after empty Dequeue()")
	})

	t.Run("peek_does_not_mutate", func(t *testing.T) {
		q := newQueue()

		if _, ok := q.Peek(); ok {
			t.Error("Peek() on empty queue got ok")
		}

		q.Enqueue(42)
		q.Enqueue(43)
		for range 3 {
			x, ok := q.Peek()
			require.True(t, ok, "Peek() on non-empty queue")
			require.Equal(t, 42, x, "Peek()")
			require.Equal(t, 2, q.Len(), "Len() after Peek()")
		}
		diff(t, drain(q), []int{42, 43})
	})

	t.Run("enqueue_1_2_3", func(t *testing.T) {
		q := newQueue()
		q.Enqueue(1)
		q.Enqueue(2)
		q.Enqueue(3)

		x, ok := q.Dequeue()
		require.True(t, ok, "Dequeue()")
		require.Equal(t, 1, x, "Dequeue()")
		require.Equal(t, 2, q.Len(), "Len() after Dequeue()")

		x, ok = q.Peek()
		require.True(t, ok, "Peek()")
		require.Equal(t, 2, x, "Peek() after Dequeue()")
	})

	t.Run("empty_iff_len_zero", func(t *testing.T) {
		q := newQueue()

		check := func() {
			t.Helper()
			if got, want := q.IsEmpty(), q.Len() == 0; got != want {
				t.Errorf("IsEmpty() got %t with Len() == %d", got, q.Len())
			}
		}

		check()
		for i := range 3 {
			q.Enqueue(i)
			check()
		}
		for !q.IsEmpty() {
			q.Dequeue()
			check()
		}
	})

	t.Run("all_is_restartable", func(t *testing.T) {
		q := newQueue()
		for i := range 4 {
			q.Enqueue(i)
		}

		want := []int{0, 1, 2, 3}
		for range 2 {
			diff(t, slices.Collect(q.All()), want)
		}
		// Breaking out of the loop must not corrupt later iterations.
		for range q.All() {
			break
		}
		diff(t, slices.Collect(q.All()), want)
		diff(t, drain(q), want)
	})

	t.Run("reusable_after_drained", func(t *testing.T) {
		q := newQueue()
		for i := range 3 {
			q.Enqueue(i)
		}
		drain(q)
		require.True(t, q.IsEmpty(), "IsEmpty() after drain")

		q.Enqueue(7)
		diff(t, slices.Collect(q.All()), []int{7})
		diff(t, drain(q), []int{7})
	})
}
