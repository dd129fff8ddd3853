package collections

import (
	"container/heap"
	"container/list"
	"container/ring"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// ── Strings ──────────────────────────────────────────────────────────────────

func demoStrings(w io.Writer) {
	s1 := "Hello, "
	s2 := "world!"
	s3 := s1 + s2 // a new string; s1 and s2 are unchanged
	fmt.Fprintf(w, "  %q + %q = %q\n", s1, s2, s3)

	var b strings.Builder
	for i, part := range []string{"tic", "tac", "toe"} {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(part)
	}
	fmt.Fprintln(w, "  strings.Builder:", b.String())

	fmt.Fprintln(w, "  fmt.Sprintf:", fmt.Sprintf("%s-%s-%s", "tic", "tac", "toe"))
	fmt.Fprintln(w, "  strings.Join:", strings.Join([]string{"tic", "tac", "toe"}, "-"))
}

func demoStringIndexing(w io.Writer) {
	hello := "Здравствуйте"
	fmt.Fprintf(w, "  %s: len=%d bytes, %d runes\n", hello, len(hello), utf8.RuneCountInString(hello))
	fmt.Fprintf(w, "  hello[0] = %d (a byte, not a character)\n", hello[0])
	fmt.Fprintf(w, "  hello[0:4] = %q (slice on rune boundaries)\n", hello[0:4])

	fmt.Fprint(w, "  runes:")
	for _, r := range "Зд" {
		fmt.Fprintf(w, " %c(U+%04X)", r, r)
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "  bytes:")
	for _, c := range []byte("Зд") {
		fmt.Fprintf(w, " %d", c)
	}
	fmt.Fprintln(w)

	runes := []rune(hello)
	fmt.Fprintf(w, "  []rune(hello)[1] = %c\n", runes[1])
}

func demoStringOperations(w io.Writer) {
	s := "  The quick brown fox  "
	fmt.Fprintf(w, "  TrimSpace: %q\n", strings.TrimSpace(s))
	fmt.Fprintf(w, "  Fields:    %q\n", strings.Fields(s))
	fmt.Fprintf(w, "  Split:     %q\n", strings.Split("a,b,c", ","))
	fmt.Fprintf(w, "  Replace:   %q\n", strings.ReplaceAll("I like dogs", "dogs", "gophers"))
	fmt.Fprintf(w, "  ToUpper:   %q\n", strings.ToUpper("gopher"))
	fmt.Fprintln(w, "  Contains \"quick\":", strings.Contains(s, "quick"))
	fmt.Fprintln(w, "  HasPrefix \"  The\":", strings.HasPrefix(s, "  The"))

	before, after, found := strings.Cut("key=value", "=")
	fmt.Fprintf(w, "  Cut: %q %q %v\n", before, after, found)

	lines := "first\nsecond\nthird"
	for i, line := range strings.Split(lines, "\n") {
		fmt.Fprintf(w, "  line %d: %s\n", i+1, line)
	}
}

// ── Maps ─────────────────────────────────────────────────────────────────────

func demoMapBasics(w io.Writer) {
	scores := make(map[string]int)
	scores["Blue"] = 10
	scores["Yellow"] = 50

	fmt.Fprintln(w, "  Blue:", scores["Blue"])
	fmt.Fprintln(w, "  Red (missing → zero value):", scores["Red"])
	if _, ok := scores["Red"]; !ok {
		fmt.Fprintln(w, "  Red is not present")
	}

	teams := []string{"Blue", "Yellow"}
	initial := []int{10, 50}
	zipped := make(map[string]int, len(teams))
	for i, t := range teams {
		zipped[t] = initial[i]
	}
	fmt.Fprintln(w, "  zipped:", zipped) // fmt prints maps with sorted keys

	delete(scores, "Blue")
	fmt.Fprintln(w, "  after delete:", scores, "len", len(scores))
}

func demoMapIteration(w io.Writer) {
	scores := map[string]int{"Blue": 10, "Yellow": 50, "Green": 30}

	// Iteration order is randomized on purpose; sort keys for stable output.
	for _, k := range slices.Sorted(maps.Keys(scores)) {
		fmt.Fprintf(w, "  %s: %d\n", k, scores[k])
	}
}

// wordCount counts the whitespace-separated words of text.
func wordCount(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.Fields(text) {
		counts[word]++ // the zero value makes the first increment work
	}
	return counts
}

func demoMapUpdating(w io.Writer) {
	scores := map[string]int{"Blue": 10}
	scores["Blue"] = 25 // overwrite
	fmt.Fprintln(w, "  overwritten:", scores)

	for _, team := range []string{"Yellow", "Blue"} {
		if _, ok := scores[team]; !ok {
			scores[team] = 50 // insert only if absent
		}
	}
	fmt.Fprintln(w, "  insert-if-absent:", scores)

	fmt.Fprintln(w, "  word count:", wordCount("hello world wonderful world"))
}

type player struct {
	Name  string
	Score int
}

func demoMapValues(w io.Writer) {
	byName := map[string]player{"ana": {Name: "ana", Score: 1}}

	// Map elements are not addressable: byName["ana"].Score++ does not compile.
	p := byName["ana"]
	p.Score++
	fmt.Fprintln(w, "  copy changed, map unchanged:", byName["ana"].Score)
	byName["ana"] = p
	fmt.Fprintln(w, "  after storing back:", byName["ana"].Score)

	byPtr := map[string]*player{"bo": {Name: "bo"}}
	byPtr["bo"].Score += 5
	fmt.Fprintln(w, "  through a pointer value:", byPtr["bo"].Score)

	// The map owns copies of keys and values inserted by value.
	name := "cy"
	owned := map[string]int{name: 1}
	name = "changed"
	_, stillCy := owned["cy"]
	fmt.Fprintln(w, "  key copied on insert:", stillCy, name)
}

// ── Other containers ─────────────────────────────────────────────────────────

// intHeap is a min-heap for container/heap.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func demoOtherContainers(w io.Writer) {
	// Queue as a slice: append at the back, reslice at the front.
	queue := []string{"a", "b"}
	queue = append(queue, "c")
	front, queue := queue[0], queue[1:]
	fmt.Fprintln(w, "  queue front:", front, "rest:", queue)

	l := list.New()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	fmt.Fprint(w, "  list:")
	for e := l.Front(); e != nil; e = e.Next() {
		fmt.Fprint(w, " ", e.Value)
	}
	fmt.Fprintln(w)

	h := &intHeap{5, 2, 8}
	heap.Init(h)
	heap.Push(h, 1)
	fmt.Fprint(w, "  heap pops:")
	for h.Len() > 0 {
		fmt.Fprint(w, " ", heap.Pop(h))
	}
	fmt.Fprintln(w)

	r := ring.New(3)
	for i := 1; i <= 3; i++ {
		r.Value = i
		r = r.Next()
	}
	fmt.Fprint(w, "  ring:")
	r.Do(func(v any) { fmt.Fprint(w, " ", v) })
	fmt.Fprintln(w)

	set := map[string]struct{}{}
	for _, s := range []string{"go", "rust", "go", "zig"} {
		set[s] = struct{}{}
	}
	fmt.Fprintln(w, "  set:", slices.Sorted(maps.Keys(set)))
}
