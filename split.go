package splitstream

import (
	"iter"
	"sync"
)

// segment is one run of elements between delimiters. A segment starts out
// open, accepting elements routed to it; the next delimiter retires it, after
// which it only drains what is already buffered.
type segment[T any] struct {
	buf     queue[T]
	retired bool
}

// splitter owns the shared source cursor and the table of segments. Exactly
// one segment is open at any time once the first element has been seen: a
// delimiter retires the open segment and opens its follower in the same step,
// so a routed element always lands in the oldest segment still accepting.
type splitter[T any] struct {
	mu      sync.Mutex
	src     *cursor[T]
	delim   func(T) bool
	open    *segment[T]   // segment currently accepting elements, nil before the first
	pending []*segment[T] // segments created but not yet handed out, in creation order
	created uint64
}

// Split breaks seq on elements equal to delim. It is shorthand for SplitFunc
// with an equality predicate.
func Split[T comparable](seq iter.Seq[T], delim T) iter.Seq[iter.Seq[T]] {
	return SplitFunc(seq, func(elem T) bool {
		return elem == delim
	})
}

// SplitFunc breaks seq into the runs of elements between delimiters,
// returning a lazy sequence of lazy segments. Elements for which delim
// returns true separate the segments and appear in none of them.
//
// The segmentation matches the way strings.Split breaks a string: the number
// of segments is always the number of delimiter elements plus one. An empty
// source yields a single empty segment, a source holding only one delimiter
// yields two empty segments, consecutive delimiters yield an empty segment
// between them, and a leading or trailing delimiter yields an empty segment
// at that end.
//
// The source is read exactly once. Segments may be consumed in any order and
// at any skew: an element pulled on behalf of one consumer but belonging to
// an earlier, still-open segment is buffered there. Joining all segments with
// one delimiter between each consecutive pair reconstructs the source.
func SplitFunc[T any](seq iter.Seq[T], delim func(T) bool) iter.Seq[iter.Seq[T]] {
	s := &splitter[T]{
		src:   newCursor(seq),
		delim: delim,
	}

	return s.segments
}

func (s *splitter[T]) segments(yield func(iter.Seq[T]) bool) {
	for {
		seg, ok := s.nextSegment()
		if !ok {
			return
		}

		if !yield(s.view(seg)) {
			return
		}
	}
}

// nextSegment returns the next segment in creation order, advancing the
// shared source only while no created segment is waiting to be handed out.
func (s *splitter[T]) nextSegment() (*segment[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		if len(s.pending) > 0 {
			seg := s.pending[0]
			s.pending = s.pending[1:]
			return seg, true
		}

		if s.route() {
			continue
		}

		// A source that ended before producing anything still splits into
		// one empty segment.
		if s.created == 0 {
			s.newSegment()
			continue
		}

		return nil, false
	}
}

// route advances the shared source by one element. A delimiter retires the
// open segment and opens its follower; any other element is appended to the
// open segment's buffer, opening the first segment if none exists yet. It
// reports false once the source is exhausted. The delimiter predicate runs
// before any bookkeeping changes, so a panic in it leaves every segment
// consistent.
func (s *splitter[T]) route() bool {
	elem, ok := s.src.pull()
	if !ok {
		return false
	}

	if s.delim(elem) {
		if s.open == nil {
			// The delimiter is the first element: the segment it terminates
			// is empty.
			s.open = s.newSegment()
		}

		s.open.retired = true
		s.open = s.newSegment()

		return true
	}

	if s.open == nil {
		s.open = s.newSegment()
	}

	s.open.buf.push(elem)

	return true
}

// newSegment creates the next segment and appends it to the pending table.
func (s *splitter[T]) newSegment() *segment[T] {
	s.created++

	seg := &segment[T]{}
	s.pending = append(s.pending, seg)

	return seg
}

// view returns the lazy sequence draining seg.
func (s *splitter[T]) view(seg *segment[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := s.pullFor(seg)
			if !ok {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// pullFor returns the next element of seg, draining its buffer first and
// advancing the shared source only while seg is still accepting elements.
// A retired segment with an empty buffer is done; an open segment keeps
// routing until its own next element arrives, a delimiter retires it, or the
// source ends.
func (s *splitter[T]) pullFor(seg *segment[T]) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		if elem, ok := seg.buf.pop(); ok {
			return elem, true
		}

		if seg.retired || !s.route() {
			var zero T
			return zero, false
		}
	}
}
