// Package splitstream provides operations that split one sequence of elements
// into several derived sequences in a single pass: partitioning a sequence
// into two predicate-based subsequences, grouping recurring elements by a key
// function, breaking a sequence into fixed-size chunks, and splitting a
// sequence into variable-length segments on delimiter elements.
//
// Sequences are ordinary Go iterators (iter.Seq). All operations are lazy:
// constructing an operation never reads its source, and elements are pulled
// from the source only when a derived sequence is asked for its next element.
//
// Partition, GroupBy and Split read their source exactly once while handing
// out several derived sequences. The derived sequences may be consumed in any
// order and advanced to any skew; an element pulled on behalf of one consumer
// but belonging to another is buffered for its owner, never lost or
// duplicated. Memory use grows with the skew between consumers: a derived
// sequence that is never drained while its siblings are consumed accumulates
// everything routed to it.
//
// Derived sequences may be consumed from different goroutines; the shared
// source is still advanced by one logical pull at a time. Reaching the end of
// a derived sequence is normal termination, and iterating a drained derived
// sequence again simply yields nothing.
package splitstream
