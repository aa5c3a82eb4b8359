package splitstream

import (
	"context"
	"iter"
)

// Collect consumes seq and returns its elements as a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T

	for elem := range seq {
		out = append(out, elem)
	}

	return out
}

// CollectN consumes up to n elements of seq and returns them as a slice.
// It stops pulling from seq as soon as n elements have been collected, so it
// is safe to use on endless sequences.
func CollectN[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, max(n, 0))

	if n <= 0 {
		return out
	}

	for elem := range seq {
		out = append(out, elem)

		if len(out) == n {
			break
		}
	}

	return out
}

// Reduce folds each element of seq into the accumulator acc using reduce,
// returning the final accumulator.
func Reduce[T any, A any](seq iter.Seq[T], acc A, reduce func(A, T) A) A {
	for elem := range seq {
		acc = reduce(acc, elem)
	}

	return acc
}

// Each calls each for every element of seq, in order.
func Each[T any](seq iter.Seq[T], each func(T)) {
	for elem := range seq {
		each(elem)
	}
}

// Length consumes seq and returns the number of elements it produced.
func Length[T any](seq iter.Seq[T]) int {
	count := 0

	for range seq {
		count++
	}

	return count
}

// AnyMatch returns true as soon as pred returns true for an element of seq,
// that is, an element matches. It stops pulling from seq once a match is
// found.
func AnyMatch[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for elem := range seq {
		if pred(elem) {
			return true
		}
	}

	return false
}

// AllMatch returns true if pred returns true for all elements of seq, that
// is, all elements match. It stops pulling from seq once a mismatch is found.
func AllMatch[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for elem := range seq {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// ToChannel returns a channel through which the elements of seq are sent, in
// order. The channel is closed once seq is exhausted or ctx is canceled.
func ToChannel[T any](ctx context.Context, seq iter.Seq[T]) <-chan T {
	outCh := make(chan T)

	go func() {
		defer close(outCh)

		for elem := range seq {
			select {
			case outCh <- elem:

			case <-ctx.Done():
				return
			}
		}
	}()

	return outCh
}
