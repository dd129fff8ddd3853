package generics

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
)

// ── Generic containers ───────────────────────────────────────────────────────

// Stack is a LIFO backed by a slice. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes the top element; ok is false on an empty stack.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	last := len(s.items) - 1
	v = s.items[last]
	var zero T
	s.items[last] = zero // drop the reference for the GC
	s.items = s.items[:last]
	return v, true
}

func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

// Set is an unordered collection of distinct values.
type Set[T comparable] struct {
	m map[T]struct{}
}

func NewSet[T comparable](vals ...T) Set[T] {
	s := Set[T]{m: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.m[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Contains(v T) bool { _, ok := s.m[v]; return ok }
func (s Set[T]) Len() int          { return len(s.m) }

func (s Set[T]) Union(o Set[T]) Set[T] {
	out := NewSet[T]()
	maps.Copy(out.m, s.m)
	maps.Copy(out.m, o.m)
	return out
}

func (s Set[T]) Intersection(o Set[T]) Set[T] {
	out := NewSet[T]()
	for v := range s.m {
		if o.Contains(v) {
			out.m[v] = struct{}{}
		}
	}
	return out
}

// Sorted lists the members of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s.m))
}

// GroupBy buckets s by key, keeping the input order inside each bucket.
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range s {
		k := key(v)
		out[k] = append(out[k], v)
	}
	return out
}

func demoContainers(w io.Writer) {
	var st Stack[string]
	for _, v := range []string{"a", "b", "c"} {
		st.Push(v)
	}
	top, _ := st.Peek()
	fmt.Fprintf(w, "  Stack[string]: peek=%s len=%d\n", top, st.Len())
	fmt.Fprint(w, "  pops:")
	for {
		v, ok := st.Pop()
		if !ok {
			break
		}
		fmt.Fprint(w, " ", v)
	}
	fmt.Fprintln(w)

	a := NewSet(1, 2, 3, 4)
	b := NewSet(3, 4, 5)
	fmt.Fprintln(w, "  union:", Sorted(a.Union(b)), "intersection:", Sorted(a.Intersection(b)))

	words := []string{"go", "rust", "zig", "c", "java"}
	byLen := GroupBy(words, func(s string) int { return len(s) })
	for _, n := range slices.Sorted(maps.Keys(byLen)) {
		fmt.Fprintf(w, "  len %d: %v\n", n, byLen[n])
	}
}
