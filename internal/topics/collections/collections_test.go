package collections

import (
	"bytes"
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/internal/demo"
)

func TestDemos(t *testing.T) {
	var buf bytes.Buffer
	assert.Zero(t, demo.Run(&buf, "Collections", Demos()))

	out := buf.String()
	for _, want := range []string{
		"nil=true len=0 | literal=[1 2 3] | make len=0 cap=8",
		"there is no element 100",
		"copy(dst[3], src[5]) = 3  dst=[1 2 3]",
		"delete index 2: [10 20 40 50]",
		"swap-delete index 2: [10 20 50 40]",
		"insert 3 at index 2: [1 2 3 4 5]",
		"in-place filter evens: [2 4 6 8]",
		"slices.Insert: [1 2 3 4]",
		"pop: 5 rest: [1 2 3 4]",
		"after += 50: [150 82 107]",
		"text: blue",
		`"Hello, " + "world!" = "Hello, world!"`,
		"strings.Builder: tic-tac-toe",
		"Здравствуйте: len=24 bytes, 12 runes",
		`hello[0:4] = "Зд"`,
		`Cut: "key" "value" true`,
		"Red is not present",
		"zipped: map[Blue:10 Yellow:50]",
		"  Blue: 10\n  Green: 30\n  Yellow: 50\n",
		"insert-if-absent: map[Blue:25 Yellow:50]",
		"word count: map[hello:1 wonderful:1 world:2]",
		"copy changed, map unchanged: 1",
		"after storing back: 2",
		"through a pointer value: 5",
		"list: 1 2 3",
		"heap pops: 1 2 5 8",
		"ring: 1 2 3",
		"set: [go rust zig]",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, wordCount(" a b\ta\n"))
	assert.Empty(t, wordCount(""))
}

func TestIntHeap(t *testing.T) {
	h := &intHeap{}
	for _, v := range []int{9, 4, 7, 1} {
		heap.Push(h, v)
	}
	var got []int
	for h.Len() > 0 {
		got = append(got, heap.Pop(h).(int))
	}
	assert.Equal(t, []int{1, 4, 7, 9}, got)
}
