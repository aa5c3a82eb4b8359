package splitstream

import "iter"

// queue is a FIFO buffer holding elements that were pulled from a shared
// source on behalf of a consumer that has not asked for them yet.
type queue[T any] struct {
	elems []T
	head  int
}

func (q *queue[T]) push(elem T) {
	q.elems = append(q.elems, elem)
}

func (q *queue[T]) pop() (T, bool) {
	var zero T

	if q.head == len(q.elems) {
		return zero, false
	}

	elem := q.elems[q.head]
	q.elems[q.head] = zero
	q.head++

	if q.head == len(q.elems) {
		q.elems = q.elems[:0]
		q.head = 0
	}

	return elem, true
}

func (q *queue[T]) empty() bool {
	return q.head == len(q.elems)
}

// cursor is a single-use pull cursor over a sequence. The underlying iterator
// is created on first use, so constructing an operation never consumes its
// source. After the source is exhausted, pull keeps reporting false.
type cursor[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	done bool
}

func newCursor[T any](seq iter.Seq[T]) *cursor[T] {
	return &cursor[T]{seq: seq}
}

// pull advances the source by one element. Callers sharing a cursor must not
// call pull concurrently; the operations in this package serialize their
// pulls with a mutex.
func (c *cursor[T]) pull() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}

	if c.next == nil {
		c.next, c.stop = iter.Pull(c.seq)
	}

	elem, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
	}

	return elem, ok
}
