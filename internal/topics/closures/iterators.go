package closures

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"
)

// ── Iterators ────────────────────────────────────────────────────────────────

// Values yields the elements of s.
func Values[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

func demoIteratorBasics(w io.Writer) {
	v1 := []int{1, 2, 3}

	fmt.Fprint(w, "  range over func:")
	for v := range Values(v1) {
		fmt.Fprint(w, " ", v)
	}
	fmt.Fprintln(w)

	// Pull-style: ask for values one at a time.
	next, stop := iter.Pull(Values(v1))
	defer stop()
	a, ok1 := next()
	b, ok2 := next()
	fmt.Fprintln(w, "  pulled:", a, ok1, b, ok2)

	fmt.Fprint(w, "  slices.All:")
	for i, s := range slices.All([]string{"x", "y"}) {
		fmt.Fprintf(w, " %d=%s", i, s)
	}
	fmt.Fprintln(w)

	// Iterators are lazy: nothing runs until the range loop pulls.
	calls := 0
	lazy := Map(Values(v1), func(x int) int { calls++; return x })
	fmt.Fprintln(w, "  before ranging, calls =", calls)
	for range lazy {
	}
	fmt.Fprintln(w, "  after ranging, calls =", calls)
}

// ── Adapters ─────────────────────────────────────────────────────────────────

func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Zip pairs elements of a and b until either runs out.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextB, stop := iter.Pull(b)
		defer stop()
		for va := range a {
			vb, ok := nextB()
			if !ok || !yield(va, vb) {
				return
			}
		}
	}
}

func demoAdapters(w io.Writer) {
	v1 := []int{1, 2, 3}
	plusOne := slices.Collect(Map(Values(v1), func(x int) int { return x + 1 }))
	fmt.Fprintln(w, "  Map +1:", plusOne)

	evens := slices.Collect(Filter(Values([]int{1, 2, 3, 4, 5, 6}), func(x int) bool { return x%2 == 0 }))
	fmt.Fprintln(w, "  Filter even:", evens)

	fmt.Fprintln(w, "  Take 2:", slices.Collect(Take(Values(v1), 2)))
	fmt.Fprintln(w, "  Skip 1:", slices.Collect(Skip(Values(v1), 1)))

	fmt.Fprint(w, "  Zip:")
	for n, s := range Zip(Values(v1), Values([]string{"a", "b"})) {
		fmt.Fprintf(w, " (%d,%s)", n, s)
	}
	fmt.Fprintln(w)
}

// ── Consumers ────────────────────────────────────────────────────────────────

type Number interface {
	~int | ~int64 | ~float64
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

func Reduce[T, A any](seq iter.Seq[T], init A, f func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

func Any[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true // stops the producer early
		}
	}
	return false
}

func demoConsumers(w io.Writer) {
	v := []int{1, 2, 3, 4, 5}
	fmt.Fprintln(w, "  Sum:", Sum(Values(v)))
	fmt.Fprintln(w, "  Collect:", slices.Collect(Values(v)))
	fmt.Fprintln(w, "  Reduce product:", Reduce(Values(v), 1, func(acc, x int) int { return acc * x }))
	fmt.Fprintln(w, "  Any > 4:", Any(Values(v), func(x int) bool { return x > 4 }))
	fmt.Fprintln(w, "  slices.Max:", slices.Max(v), "slices.Index(3):", slices.Index(v, 3))

	m := maps.Collect(Zip(Values([]string{"a", "b"}), Values([]int{1, 2})))
	fmt.Fprintln(w, "  maps.Collect(Zip):", m)
}

// ── Custom iterator ──────────────────────────────────────────────────────────

// Counter yields 1 through 5.
func Counter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for count := 1; count <= 5; count++ {
			if !yield(count) {
				return
			}
		}
	}
}

func demoCustomIterator(w io.Writer) {
	fmt.Fprintln(w, "  Counter:", slices.Collect(Counter()))

	// Zip with itself shifted by one, multiply, keep multiples of 3, sum.
	products := Map2(Zip(Counter(), Skip(Counter(), 1)), func(a, b int) int { return a * b })
	sum := Sum(Filter(products, func(x int) bool { return x%3 == 0 }))
	fmt.Fprintln(w, "  zip/skip/map/filter/sum =", sum)
}

// Map2 folds each pair of seq into one value.
func Map2[A, B, U any](seq iter.Seq2[A, B], f func(A, B) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for a, b := range seq {
			if !yield(f(a, b)) {
				return
			}
		}
	}
}

// ── Practical examples ───────────────────────────────────────────────────────

type Shoe struct {
	Size  int
	Style string
}

func shoesInSize(shoes []Shoe, size int) []Shoe {
	return slices.Collect(Filter(Values(shoes), func(s Shoe) bool { return s.Size == size }))
}

func demoPractical(w io.Writer) {
	shoes := []Shoe{{10, "sneaker"}, {13, "sandal"}, {10, "boot"}}
	fmt.Fprintln(w, "  shoes in size 10:", shoesInSize(shoes, 10))

	text := "the quick brown fox jumps over the lazy dog the end"
	words := strings.Fields(text)
	long := slices.Collect(Filter(Values(words), func(s string) bool { return len(s) > 4 }))
	fmt.Fprintln(w, "  words longer than 4:", long)

	upper := slices.Collect(Map(Values(words[:3]), strings.ToUpper))
	fmt.Fprintln(w, "  first three upper:", upper)

	squaresOfOdds := Sum(Map(Filter(Values([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
		func(x int) bool { return x%2 == 1 }), func(x int) int { return x * x }))
	fmt.Fprintln(w, "  sum of squares of odds 1..10 =", squaresOfOdds)
}
