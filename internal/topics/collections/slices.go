// Package collections covers the three workhorse containers, slices, strings
// and maps, plus the container/ packages for the rest.
package collections

import (
	"fmt"
	"io"
	"slices"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "Slices — make, literals, indexing", Run: demoSliceBasics},
		{Title: "Slice operations — append, insert, delete, filter, stdlib slices", Run: demoSliceOperations},
		{Title: "Iterating — by value, by index", Run: demoSliceIteration},
		{Title: "Slices of variants — a spreadsheet row", Run: demoVariants},
		{Title: "Strings — building and concatenating", Run: demoStrings},
		{Title: "Bytes vs runes — indexing UTF-8", Run: demoStringIndexing},
		{Title: "String operations — strings package", Run: demoStringOperations},
		{Title: "Maps — create, read, comma-ok", Run: demoMapBasics},
		{Title: "Map iteration — random order, sorted keys", Run: demoMapIteration},
		{Title: "Updating maps — overwrite, insert-if-absent, counters", Run: demoMapUpdating},
		{Title: "Map values — copies and addressability", Run: demoMapValues},
		{Title: "Other containers — list, heap, ring, sets", Run: demoOtherContainers},
	}
}

// ── Slices ───────────────────────────────────────────────────────────────────

func demoSliceBasics(w io.Writer) {
	var empty []int // nil slice: len 0, append works
	v := []int{1, 2, 3}
	buf := make([]int, 0, 8)
	fmt.Fprintf(w, "  nil=%v len=%d | literal=%v | make len=%d cap=%d\n",
		empty == nil, len(empty), v, len(buf), cap(buf))

	fmt.Fprintln(w, "  third element:", v[2])

	// Out-of-range indexing panics; check the length first.
	if i := 100; i < len(v) {
		fmt.Fprintln(w, "  element 100:", v[i])
	} else {
		fmt.Fprintln(w, "  there is no element 100")
	}

	// A slice aliasing another sees appends only while capacity lasts.
	first := v[0]
	v = append(v, 6)
	fmt.Fprintln(w, "  first is a copy, still:", first, "after append:", v)
}

func demoSliceOperations(w io.Writer) {
	// copy(dst, src) copies min(len(dst), len(src)) elements.
	src := []int{1, 2, 3, 4, 5}
	dst := make([]int, 3)
	n := copy(dst, src)
	fmt.Fprintf(w, "  copy(dst[3], src[5]) = %d  dst=%v\n", n, dst)

	// Delete, order preserved: O(n).
	d1 := []int{10, 20, 30, 40, 50}
	d1 = append(d1[:2], d1[3:]...)
	fmt.Fprintln(w, "  delete index 2:", d1)

	// Delete by swapping with the last element: O(1), order changes.
	d2 := []int{10, 20, 30, 40, 50}
	d2[2] = d2[len(d2)-1]
	d2 = d2[:len(d2)-1]
	fmt.Fprintln(w, "  swap-delete index 2:", d2)

	ins := []int{1, 2, 4, 5}
	ins = append(ins, 0)
	copy(ins[3:], ins[2:]) // copy handles the overlap
	ins[2] = 3
	fmt.Fprintln(w, "  insert 3 at index 2:", ins)

	// Filter in place: result shares the backing array with vals.
	vals := []int{1, 2, 3, 4, 5, 6, 7, 8}
	evens := vals[:0]
	for _, x := range vals {
		if x%2 == 0 {
			evens = append(evens, x)
		}
	}
	fmt.Fprintln(w, "  in-place filter evens:", evens)

	s := []int{5, 3, 1, 4, 2}
	slices.Sort(s)
	fmt.Fprintln(w, "  slices.Sort:", s, "Contains 3:", slices.Contains(s, 3), "Index 4:", slices.Index(s, 4))
	fmt.Fprintln(w, "  slices.Compact:", slices.Compact([]int{1, 1, 2, 3, 3}))
	fmt.Fprintln(w, "  slices.Insert:", slices.Insert([]int{1, 4}, 1, 2, 3))
	last, s := s[len(s)-1], s[:len(s)-1]
	fmt.Fprintln(w, "  pop:", last, "rest:", s)
}

func demoSliceIteration(w io.Writer) {
	v := []int{100, 32, 57}
	for _, x := range v {
		fmt.Fprint(w, "  ", x)
	}
	fmt.Fprintln(w)

	// range yields copies; write through the index to mutate.
	for i := range v {
		v[i] += 50
	}
	fmt.Fprintln(w, "  after += 50:", v)
}

// ── Slices of variants ───────────────────────────────────────────────────────

// Cell is one spreadsheet cell; the concrete types are the variants.
type Cell interface{ cell() }

type (
	IntCell   int
	FloatCell float64
	TextCell  string
)

func (IntCell) cell()   {}
func (FloatCell) cell() {}
func (TextCell) cell()  {}

func demoVariants(w io.Writer) {
	row := []Cell{IntCell(3), TextCell("blue"), FloatCell(10.12)}
	for _, c := range row {
		switch v := c.(type) {
		case IntCell:
			fmt.Fprintln(w, "  int:", int(v))
		case FloatCell:
			fmt.Fprintln(w, "  float:", float64(v))
		case TextCell:
			fmt.Fprintln(w, "  text:", string(v))
		}
	}
}
