package splitstream

import "iter"

// Map returns a sequence that applies mapp to each element of seq, in order.
func Map[T any, U any](seq iter.Seq[T], mapp func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := range seq {
			if !yield(mapp(elem)) {
				return
			}
		}
	}
}

// Filter returns a sequence of the elements of seq for which filter returns
// true, in order.
func Filter[T any](seq iter.Seq[T], filter func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			if !filter(elem) {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Limit returns a sequence producing the same elements as seq, in order, up
// to max elements.
func Limit[T any](seq iter.Seq[T], max int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if max <= 0 {
			return
		}

		done := 0

		for elem := range seq {
			if !yield(elem) {
				return
			}

			done++
			if done == max {
				return
			}
		}
	}
}

// Skip returns a sequence producing the same elements as seq, in order,
// skipping the first num elements.
func Skip[T any](seq iter.Seq[T], num int) iter.Seq[T] {
	return func(yield func(T) bool) {
		done := 0

		for elem := range seq {
			done++
			if done <= num {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Peek returns a sequence that calls peek for each element of seq, in order,
// and produces the same elements.
func Peek[T any](seq iter.Seq[T], peek func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			peek(elem)

			if !yield(elem) {
				return
			}
		}
	}
}

// Chunks returns a sequence of consecutive chunks of n elements of seq.
// If the number of elements is not a multiple of n, the final chunk is padded
// with fill to length n. An empty source produces no chunks. Every yielded
// slice is freshly allocated and has length exactly n.
//
// Chunks panics if n is less than 1.
func Chunks[T any](seq iter.Seq[T], n int, fill T) iter.Seq[[]T] {
	if n < 1 {
		panic("splitstream: chunk size must be at least 1")
	}

	return func(yield func([]T) bool) {
		chunk := make([]T, 0, n)

		for elem := range seq {
			chunk = append(chunk, elem)

			if len(chunk) < n {
				continue
			}

			if !yield(chunk) {
				return
			}

			chunk = make([]T, 0, n)
		}

		if len(chunk) == 0 {
			return
		}

		for len(chunk) < n {
			chunk = append(chunk, fill)
		}

		yield(chunk)
	}
}

// Concat returns a sequence producing the elements of the given sequences,
// in order.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for elem := range seq {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Flatten returns a sequence producing the elements of each inner sequence of
// seqs, in order.
func Flatten[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for seq := range seqs {
			for elem := range seq {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Identity returns the same element it receives. It is the conventional key
// function for GroupBy when equal elements should form a group.
func Identity[T any](elem T) T {
	return elem
}
