// Package generics pairs interfaces, Go's shared-behavior mechanism, with
// type parameters and their constraints.
package generics

import (
	"cmp"
	"fmt"
	"io"
	"math"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "Generic functions — Largest[T cmp.Ordered]", Run: demoFunctions},
		{Title: "Generic structs — Point[T], Pair[T, U]", Run: demoStructs},
		{Title: "Generic sum types — Result[T]", Run: demoResult},
		{Title: "Generic containers — Stack[T], Set[T], GroupBy", Run: demoContainers},
		{Title: "Interfaces — Summary with a default via embedding", Run: demoInterfaces},
		{Title: "Constraints — any, comparable, ~T, unions, methods", Run: demoConstraints},
		{Title: "Returning interfaces", Run: demoReturning},
		{Title: "Constraint-gated functions — only when T is Ordered", Run: demoGated},
		{Title: "Associated types — Iterator[T]", Run: demoAssociated},
		{Title: "Operator methods — Add on Point and units", Run: demoOperators},
		{Title: "Interface composition — OutlinePrint needs fmt.Stringer", Run: demoComposition},
	}
}

// ── Generic functions ────────────────────────────────────────────────────────

// Largest returns the maximum element of a non-empty slice.
func Largest[T cmp.Ordered](list []T) T {
	largest := list[0]
	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest
}

// Map transforms every element of s using f.
// T → input type, U → output type (can differ).
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter returns elements of s for which f returns true.
func Filter[T any](s []T, f func(T) bool) []T {
	var out []T
	for _, v := range s {
		if f(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s into a single value, applying f left-to-right.
func Reduce[T, U any](s []T, init U, f func(U, T) U) U {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

func demoFunctions(w io.Writer) {
	fmt.Fprintln(w, "  Largest([34 50 25 100 65]) =", Largest([]int{34, 50, 25, 100, 65}))
	fmt.Fprintf(w, "  Largest([y m a q])          = %q\n", Largest([]rune{'y', 'm', 'a', 'q'}))
	fmt.Fprintln(w, "  Largest([1.5 0.2])          =", Largest([]float64{1.5, 0.2}))

	nums := []int{1, 2, 3, 4, 5}
	squares := Map(nums, func(n int) int { return n * n })
	evens := Filter(nums, func(n int) bool { return n%2 == 0 })
	labels := Map(nums[:3], func(n int) string { return fmt.Sprintf("#%d", n) })
	total := Reduce(nums, 0, func(acc, n int) int { return acc + n })
	fmt.Fprintln(w, "  Map squares:", squares, "Filter evens:", evens, "labels:", labels, "Reduce sum:", total)
}

// ── Generic structs ──────────────────────────────────────────────────────────

type Point[T any] struct {
	X, Y T
}

func (p Point[T]) GetX() T { return p.X }

// DistanceFromOrigin is only defined for float points; Go expresses that
// with a function over a concrete instantiation.
func DistanceFromOrigin(p Point[float64]) float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

type Pair[T, U any] struct {
	First  T
	Second U
}

// Mixup takes First from a and Second from b.
func Mixup[T1, U1, T2, U2 any](a Pair[T1, U1], b Pair[T2, U2]) Pair[T1, U2] {
	return Pair[T1, U2]{First: a.First, Second: b.Second}
}

func demoStructs(w io.Writer) {
	integer := Point[int]{X: 5, Y: 10}
	float := Point[float64]{X: 3, Y: 4}
	fmt.Fprintf(w, "  integer=%+v float=%+v\n", integer, float)
	fmt.Fprintln(w, "  integer.GetX() =", integer.GetX())
	fmt.Fprintln(w, "  DistanceFromOrigin(float) =", DistanceFromOrigin(float))

	p1 := Pair[int, float64]{First: 5, Second: 10.4}
	p2 := Pair[string, rune]{First: "Hello", Second: 'c'}
	p3 := Mixup(p1, p2)
	fmt.Fprintf(w, "  Mixup → First=%v Second=%q\n", p3.First, p3.Second)
}

// ── Generic sum types ────────────────────────────────────────────────────────

// Result holds either a value or an error.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T]        { return Result[T]{Value: v} }
func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

func (r Result[T]) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Err(%v)", r.Err)
	}
	return fmt.Sprintf("Ok(%v)", r.Value)
}

func demoResult(w io.Writer) {
	results := []Result[int]{Ok(42), Fail[int](fmt.Errorf("not a number"))}
	for _, r := range results {
		fmt.Fprintln(w, " ", r)
	}
}
