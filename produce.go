package splitstream

import (
	"context"
	"iter"

	"golang.org/x/exp/constraints"
)

// FromSlice returns a sequence of the elements of the given slices, in order.
func FromSlice[T any](slices ...[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, slice := range slices {
			for _, elem := range slice {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// FromChannel returns a sequence of the elements received through the given
// channels, in order. The sequence ends once all channels are closed, or
// early when ctx is canceled.
func FromChannel[T any](ctx context.Context, channels ...<-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ch := range channels {
		recv:
			for {
				select {
				case elem, ok := <-ch:
					if !ok {
						break recv
					}

					if !yield(elem) {
						return
					}

				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// Range returns a sequence of the integers from start (inclusive) up to end
// (exclusive).
func Range[I constraints.Integer](start, end I) iter.Seq[I] {
	return func(yield func(I) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Count returns an endless sequence of the integers counting up from start.
// Use Limit to make it finite.
func Count[I constraints.Integer](start I) iter.Seq[I] {
	return func(yield func(I) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat returns a sequence that produces elem the given number of times.
func Repeat[T any](elem T, times int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < times; i++ {
			if !yield(elem) {
				return
			}
		}
	}
}
