// Package closures covers function values that capture their environment
// and the iterator protocol built on them: range-over-func with iter.Seq.
package closures

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "Closures — function literals and inference", Run: demoClosureBasics},
		{Title: "Capture — closures share variables, not values", Run: demoCapture},
		{Title: "Closures as parameters — sorting, strategies, memoize", Run: demoAsParameters},
		{Title: "Iterators — range over func, iter.Seq", Run: demoIteratorBasics},
		{Title: "Adapters — Map, Filter, Take, Skip, Zip", Run: demoAdapters},
		{Title: "Consumers — Sum, Collect, Reduce, Any", Run: demoConsumers},
		{Title: "Custom iterator — Counter", Run: demoCustomIterator},
		{Title: "Practical examples", Run: demoPractical},
	}
}

// ── Closures ─────────────────────────────────────────────────────────────────

func demoClosureBasics(w io.Writer) {
	addOne := func(x int) int { return x + 1 }
	fmt.Fprintln(w, "  addOne(5) =", addOne(5))

	// A closure over a local counter.
	counter := func() func() int {
		count := 0
		return func() int {
			count++
			return count
		}
	}()
	fmt.Fprintln(w, "  counter:", counter(), counter(), counter())

	// Immediately invoked.
	greeting := func(name string) string { return "hello, " + name }("gopher")
	fmt.Fprintln(w, " ", greeting)
}

// ── Capture ──────────────────────────────────────────────────────────────────

func demoCapture(w io.Writer) {
	// Read-only capture.
	list := []int{1, 2, 3}
	onlyBorrows := func() string { return fmt.Sprint(list) }
	fmt.Fprintln(w, "  read:", onlyBorrows())

	// Mutating capture: the closure and the enclosing function share list.
	appendSeven := func() { list = append(list, 7) }
	appendSeven()
	fmt.Fprintln(w, "  after closure append:", list)

	// Since Go 1.22 each loop iteration has its own variable, so every
	// closure sees its own i.
	var funcs []func() int
	for i := 0; i < 3; i++ {
		funcs = append(funcs, func() int { return i })
	}
	fmt.Fprint(w, "  per-iteration capture:")
	for _, f := range funcs {
		fmt.Fprint(w, " ", f())
	}
	fmt.Fprintln(w)

	// Sharing one variable on purpose.
	shared := 0
	var incs []func()
	for range 3 {
		incs = append(incs, func() { shared++ })
	}
	for _, inc := range incs {
		inc()
	}
	fmt.Fprintln(w, "  shared variable:", shared)

	// Passing the value as an argument snapshots it.
	x := 10
	snapshot := func(v int) func() int { return func() int { return v } }(x)
	x = 20
	fmt.Fprintln(w, "  snapshot:", snapshot(), "current:", x)
}

// ── Closures as parameters ───────────────────────────────────────────────────

type Rectangle struct {
	Width, Height int
}

// applyTwice calls f on x twice.
func applyTwice(f func(int) int, x int) int { return f(f(x)) }

// makeAdder returns a closure that adds n.
func makeAdder(n int) func(int) int {
	return func(x int) int { return x + n }
}

// memoize caches f's results by argument.
func memoize(f func(int) int) (cached func(int) int, calls *int) {
	cache := make(map[int]int)
	n := 0
	return func(x int) int {
		if v, ok := cache[x]; ok {
			return v
		}
		n++
		v := f(x)
		cache[x] = v
		return v
	}, &n
}

func demoAsParameters(w io.Writer) {
	rects := []Rectangle{{10, 1}, {3, 5}, {7, 12}}

	sortOperations := 0
	sort.Slice(rects, func(i, j int) bool {
		sortOperations++
		return rects[i].Width < rects[j].Width
	})
	fmt.Fprintf(w, "  sorted by width: %v (comparisons > 0: %v)\n", rects, sortOperations > 0)

	slices.SortFunc(rects, func(a, b Rectangle) int { return a.Height - b.Height })
	fmt.Fprintln(w, "  sorted by height:", rects)

	fmt.Fprintln(w, "  applyTwice(makeAdder(3), 10) =", applyTwice(makeAdder(3), 10))

	square, calls := memoize(func(x int) int { return x * x })
	square(4)
	square(4)
	square(5)
	fmt.Fprintf(w, "  memoized square: 3 calls, %d computed\n", *calls)

	// Strategy selection.
	ops := map[string]func(a, b int) int{
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b int) int { return a * b },
	}
	fmt.Fprintln(w, "  ops[mul](6, 7) =", ops["mul"](6, 7))

	// Named functions are values too.
	shout := strings.ToUpper
	fmt.Fprintln(w, "  function value strings.ToUpper:", shout("go"))
}
