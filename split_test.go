package splitstream

import (
	"iter"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// splitJoin splits s on the first byte of delim and joins each segment back
// into a string, mirroring strings.Split.
func splitJoin(s string, delim byte) []string {
	var out []string

	for seg := range Split(FromSlice([]byte(s)), delim) {
		out = append(out, string(Collect(seg)))
	}

	return out
}

func TestSplit_MatchesStringSplit(t *testing.T) {
	is := is.New(t)

	for _, s := range []string{
		"", "a", "b", "ab", "ba", "aa", "aaa",
		"aab", "baa", "bab", "abba", "xaybzc", "banana",
	} {
		is.Equal(splitJoin(s, 'a'), strings.Split(s, "a"))
	}
}

func TestSplit_MatchesStringSplitExhaustive(t *testing.T) {
	is := is.New(t)

	// every string over the alphabet {a, b} up to length 8
	for length := 0; length <= 8; length++ {
		for bits := 0; bits < 1<<length; bits++ {
			buf := make([]byte, length)
			for i := range buf {
				if bits&(1<<i) != 0 {
					buf[i] = 'a'
				} else {
					buf[i] = 'b'
				}
			}

			s := string(buf)
			is.Equal(splitJoin(s, 'a'), strings.Split(s, "a"))
		}
	}
}

func TestSplit_Reconstruct(t *testing.T) {
	is := is.New(t)

	for _, s := range []string{"", "a", "aa", "ab", "ba", "abba", "xaybzc", "banana"} {
		is.Equal(strings.Join(splitJoin(s, 'a'), "a"), s)
	}
}

func TestSplitFunc(t *testing.T) {
	is := is.New(t)

	ints := FromSlice([]int{1, 2, -1, 3, -1, -1, 4})

	var got [][]int
	for seg := range SplitFunc(ints, func(elem int) bool { return elem < 0 }) {
		got = append(got, Collect(seg))
	}

	is.Equal(got, [][]int{{1, 2}, {3}, nil, {4}})
}

func TestSplit_EmptySource(t *testing.T) {
	is := is.New(t)

	segments := Collect(Split(FromSlice([]int{}), 0))

	is.Equal(len(segments), 1)
	is.Equal(len(Collect(segments[0])), 0)
}

func TestSplit_OnlyDelimiter(t *testing.T) {
	is := is.New(t)

	segments := Collect(Split(FromSlice([]int{0}), 0))

	is.Equal(len(segments), 2)
	is.Equal(len(Collect(segments[0])), 0)
	is.Equal(len(Collect(segments[1])), 0)
}

func TestSplit_OutOfOrderConsumption(t *testing.T) {
	is := is.New(t)

	next, stop := iter.Pull(Split(FromSlice([]byte("one,two,three")), byte(',')))
	defer stop()

	first, ok := next()
	is.True(ok)
	second, ok := next()
	is.True(ok)
	third, ok := next()
	is.True(ok)

	_, ok = next()
	is.True(!ok)

	// draining in reverse order must still see every element
	is.Equal(string(Collect(third)), "three")
	is.Equal(string(Collect(second)), "two")
	is.Equal(string(Collect(first)), "one")
}

func TestSplit_SkewedConsumption(t *testing.T) {
	is := is.New(t)

	next, stop := iter.Pull(Split(FromSlice([]byte("abandoned,consumed")), byte(',')))
	defer stop()

	first, _ := next()
	second, _ := next()

	// consuming the second segment routes the first segment's elements into
	// its buffer
	is.Equal(string(Collect(second)), "consumed")
	is.Equal(string(Collect(first)), "abandoned")
}

func TestSplit_Lazy(t *testing.T) {
	is := is.New(t)

	pulls := 0
	src := Peek(Count(0), func(int) { pulls++ })

	next, stop := iter.Pull(SplitFunc(src, func(elem int) bool { return elem%5 == 4 }))
	defer stop()

	// asking for the first segment pulls exactly one element
	seg, ok := next()
	is.True(ok)
	is.Equal(pulls, 1)

	is.Equal(CollectN(seg, 3), []int{0, 1, 2})
	is.Equal(pulls, 3)
}

func TestSplitFunc_DelimiterPanics(t *testing.T) {
	is := is.New(t)

	segments := SplitFunc(FromSlice([]int{1, 2, -1, 3, 4}), func(elem int) bool {
		if elem == 3 {
			panic("delimiter failure")
		}
		return elem < 0
	})

	next, stop := iter.Pull(segments)
	defer stop()

	first, ok := next()
	is.True(ok)
	second, ok := next()
	is.True(ok)

	got, recovered := collectUntilPanic(second)
	is.Equal(recovered, "delimiter failure")
	is.Equal(len(got), 0)

	// the retired segment keeps everything routed to it before the failure
	is.Equal(Collect(first), []int{1, 2})

	// only the in-flight element is gone; the open segment keeps draining
	is.Equal(Collect(second), []int{4})
}

func TestSplit_IdempotentExhaustion(t *testing.T) {
	is := is.New(t)

	next, stop := iter.Pull(Split(FromSlice([]byte("x,y")), byte(',')))
	defer stop()

	seg, _ := next()

	is.Equal(string(Collect(seg)), "x")
	is.Equal(len(Collect(seg)), 0)
}
