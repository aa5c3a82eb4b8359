package splitstream

import (
	"iter"
	"sync"
)

// fork owns the shared source cursor and the two buffers behind Partition.
// Whichever side is being drained advances the source; elements that belong
// to the other side are routed into that side's buffer.
type fork[T any] struct {
	mu   sync.Mutex
	src  *cursor[T]
	pred func(T) bool
	bufs [2]queue[T]
}

// Partition splits seq into the lazy subsequence of elements for which pred
// returns true and the lazy subsequence of elements for which it returns
// false, reading seq exactly once. Each returned sequence produces its
// elements in their original relative order.
//
// The two sequences may be consumed in any order and at any skew; elements
// encountered for the side not currently being drained are buffered. pred is
// called exactly once per element, in source order.
func Partition[T any](seq iter.Seq[T], pred func(T) bool) (iter.Seq[T], iter.Seq[T]) {
	f := &fork[T]{
		src:  newCursor(seq),
		pred: pred,
	}

	return f.side(true), f.side(false)
}

func (f *fork[T]) side(want bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := f.pull(want)
			if !ok {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// pull returns the next element belonging to the given side, draining that
// side's buffer before advancing the shared source. The predicate result
// routes each pulled element: a match for the asking side is returned
// directly, anything else goes to the other side's buffer.
func (f *fork[T]) pull(want bool) (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for {
		if elem, ok := f.buf(want).pop(); ok {
			return elem, true
		}

		elem, ok := f.src.pull()
		if !ok {
			var zero T
			return zero, false
		}

		if f.pred(elem) == want {
			return elem, true
		}

		f.buf(!want).push(elem)
	}
}

func (f *fork[T]) buf(side bool) *queue[T] {
	if side {
		return &f.bufs[0]
	}

	return &f.bufs[1]
}
