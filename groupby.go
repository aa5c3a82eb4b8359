package splitstream

import (
	"iter"
	"sync"
)

// grouper owns the shared source cursor and one buffer per key, in
// first-occurrence order.
type grouper[T any, K comparable] struct {
	mu      sync.Mutex
	src     *cursor[T]
	key     func(T) K
	bufs    map[K]*queue[T]
	order   []K
	yielded map[K]bool
}

// GroupBy collects the elements of seq into equivalence classes identified by
// key, reading seq exactly once. It returns a lazy sequence of (key, group)
// pairs in order of each key's first occurrence; each group is itself a lazy
// sequence producing that key's elements in their original relative order.
//
// Unlike consecutive-run grouping, a recurring key is folded into the group
// already emitted for it rather than starting a new one. Pulling from a group
// may advance the source past elements of other keys; those are routed into
// their own groups' buffers. After the source is exhausted, keys that were
// discovered only through such routing are still yielded as pairs, again in
// first-occurrence order. Use Identity as the key function to group equal
// elements.
//
// Keys are compared the way map keys are. A key that is not equal to itself
// (a floating-point NaN) starts a new group on every occurrence, and such
// groups drain empty: their elements cannot be looked up again.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq2[K, iter.Seq[T]] {
	g := &grouper[T, K]{
		src:     newCursor(seq),
		key:     key,
		bufs:    make(map[K]*queue[T]),
		yielded: make(map[K]bool),
	}

	return g.pairs
}

func (g *grouper[T, K]) pairs(yield func(K, iter.Seq[T]) bool) {
	for {
		k, ok := g.nextFresh()
		if !ok {
			break
		}

		if !yield(k, g.group(k)) {
			return
		}
	}

	// Source exhausted: groups whose keys were only ever seen while routing
	// on behalf of other groups still have to be handed out.
	for _, k := range g.leftovers() {
		if !yield(k, g.group(k)) {
			return
		}
	}
}

// nextFresh advances the shared source until an element of a key not yet
// handed out arrives, and marks that key as handed out.
func (g *grouper[T, K]) nextFresh() (K, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		k, ok := g.route()
		if !ok {
			var zero K
			return zero, false
		}

		if !g.yielded[k] {
			g.yielded[k] = true
			return k, true
		}
	}
}

// route advances the shared source by one element and appends it to its
// key's buffer, recording the key on first sight. It reports the key the
// element was routed to. The key function runs before any buffer is touched,
// so a panic in it leaves every group consistent.
func (g *grouper[T, K]) route() (K, bool) {
	elem, ok := g.src.pull()
	if !ok {
		var zero K
		return zero, false
	}

	k := g.key(elem)

	buf, known := g.bufs[k]
	if !known {
		buf = &queue[T]{}
		g.bufs[k] = buf
		g.order = append(g.order, k)
	}

	buf.push(elem)

	return k, true
}

// leftovers returns, in first-occurrence order, the keys that have buffered
// elements but were never handed out as a pair, marking them handed out.
func (g *grouper[T, K]) leftovers() []K {
	g.mu.Lock()
	defer g.mu.Unlock()

	var keys []K

	for _, k := range g.order {
		buf := g.bufs[k]
		if buf == nil || g.yielded[k] || buf.empty() {
			continue
		}

		g.yielded[k] = true
		keys = append(keys, k)
	}

	return keys
}

// group returns the lazy sequence draining key k's buffer.
func (g *grouper[T, K]) group(k K) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := g.pullFor(k)
			if !ok {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// pullFor returns the next element of key k's group, advancing the shared
// source past elements of other keys until k's next element arrives or the
// source ends. A key that cannot be looked up again (NaN) has no reachable
// buffer; its group drains empty.
func (g *grouper[T, K]) pullFor(k K) (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		if buf := g.bufs[k]; buf != nil {
			if elem, ok := buf.pop(); ok {
				return elem, true
			}
		}

		if _, ok := g.route(); !ok {
			var zero T
			return zero, false
		}
	}
}
