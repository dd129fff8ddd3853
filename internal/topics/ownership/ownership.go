// Package ownership shows who holds a value in Go: assignment and calls copy,
// pointers, slices and maps share, and the garbage collector keeps shared
// values alive for as long as anything can reach them.
package ownership

import (
	"fmt"
	"io"
	"strings"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "Copy semantics — assignment copies the value", Run: demoCopy},
		{Title: "Functions — pass by value, pass a pointer to mutate", Run: demoFunctions},
		{Title: "Borrowing — read-only values vs mutable pointers", Run: demoBorrowing},
		{Title: "Slices — views that share a backing array", Run: demoSlices},
		{Title: "No dangling pointers — stack vs heap", Run: demoNoDangling},
		{Title: "Summary", Run: demoSummary},
	}
}

// ── Copy semantics ───────────────────────────────────────────────────────────

type point struct{ X, Y int }

func demoCopy(w io.Writer) {
	x := 5
	y := x
	y++
	fmt.Fprintf(w, "  int:    x=%d y=%d (independent copies)\n", x, y)

	a := [3]int{1, 2, 3}
	b := a // arrays are values: the whole array is copied
	b[0] = 100
	fmt.Fprintf(w, "  array:  a=%v b=%v\n", a, b)

	p1 := point{1, 2}
	p2 := p1
	p2.X = 9
	fmt.Fprintf(w, "  struct: p1=%+v p2=%+v\n", p1, p2)

	// A slice header is copied, the elements it points to are not.
	s1 := []int{1, 2, 3}
	s2 := s1
	s2[0] = 100
	fmt.Fprintf(w, "  slice:  s1=%v s2=%v (same backing array)\n", s1, s2)

	m1 := map[string]int{"a": 1}
	m2 := m1
	m2["a"] = 2
	fmt.Fprintf(w, "  map:    m1[a]=%d m2[a]=%d (same map)\n", m1["a"], m2["a"])

	// Explicit deep copy.
	s3 := append([]int(nil), s1...)
	s3[0] = -1
	fmt.Fprintf(w, "  clone:  s1=%v s3=%v\n", s1, s3)
}

// ── Functions ────────────────────────────────────────────────────────────────

// takesValue receives its own copy; the caller's variable is untouched.
func takesValue(s string) string {
	s += ", world"
	return s
}

// takesPointer mutates the caller's variable through the pointer.
func takesPointer(s *string) {
	*s += ", world"
}

// givesBack returns a newly built value; the caller now holds it.
func givesBack() []string {
	return []string{"yours"}
}

func demoFunctions(w io.Writer) {
	s := "hello"
	out := takesValue(s)
	fmt.Fprintf(w, "  takesValue:   s=%q result=%q\n", s, out)

	takesPointer(&s)
	fmt.Fprintf(w, "  takesPointer: s=%q\n", s)

	g := givesBack()
	fmt.Fprintf(w, "  givesBack:    %v\n", g)

	// Structs are copied into the callee unless a pointer is passed.
	p := point{1, 1}
	moveByValue(p)
	fmt.Fprintf(w, "  moveByValue(p)   → %+v\n", p)
	moveByPointer(&p)
	fmt.Fprintf(w, "  moveByPointer(&p) → %+v\n", p)
}

func moveByValue(p point)    { p.X += 10 }
func moveByPointer(p *point) { p.X += 10 }

// ── Borrowing ────────────────────────────────────────────────────────────────

// calculateLength only reads; a string argument is a cheap header copy.
func calculateLength(s string) int { return len(s) }

// appendWorld needs to change the caller's slice header, so it takes a pointer.
func appendWorld(words *[]string) {
	*words = append(*words, "world")
}

func demoBorrowing(w io.Writer) {
	s := "hello"
	fmt.Fprintf(w, "  calculateLength(%q) = %d, s still usable: %q\n", s, calculateLength(s), s)

	words := []string{"hello"}
	appendWorld(&words)
	fmt.Fprintln(w, "  appendWorld(&words) →", words)

	// Two pointers to the same value see each other's writes. Go allows any
	// number of them; keeping writers from racing is the programmer's job.
	v := 1
	r1, r2 := &v, &v
	*r1 = 10
	fmt.Fprintf(w, "  r1 and r2 alias v: *r2=%d same=%v\n", *r2, r1 == r2)
}

// ── Slices ───────────────────────────────────────────────────────────────────

// firstWord returns a substring of s. No bytes are copied: the result
// shares s's storage.
func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func demoSlices(w io.Writer) {
	s := "hello world"
	fmt.Fprintf(w, "  firstWord(%q) = %q\n", s, firstWord(s))
	fmt.Fprintf(w, "  s[0:5]=%q s[6:]=%q s[:]=%q\n", s[0:5], s[6:], s[:])

	// Strings are immutable, so a shared substring can never change. Slices
	// are mutable views: writes through one view show up in the other.
	nums := []int{1, 2, 3, 4, 5}
	view := nums[1:3]
	view[0] = 20
	fmt.Fprintf(w, "  nums=%v view=%v len=%d cap=%d\n", nums, view, len(view), cap(view))

	arr := [5]int{1, 2, 3, 4, 5}
	part := arr[1:3]
	fmt.Fprintf(w, "  array slice arr[1:3] = %v\n", part)
}

// ── No dangling pointers ─────────────────────────────────────────────────────

// returnValue devuelve una copia del valor.
// El compilador mantiene x en el stack frame de esta función.
//
// Escape analysis: x does NOT escape.
func returnValue() int {
	x := 42
	return x
}

// returnPointer devuelve la dirección de una variable local.
// La dirección debe seguir siendo válida después de que la función retorne,
// así que el compilador mueve x al heap.
//
// Escape analysis: x escapes to heap.
func returnPointer() *int {
	x := 42
	return &x
}

// sumArray trabaja con un array de tamaño fijo; cabe entero en el stack.
func sumArray() int {
	arr := [5]int{1, 2, 3, 4, 5}
	total := 0
	for _, v := range arr {
		total += v
	}
	return total
}

func demoNoDangling(w io.Writer) {
	fmt.Fprintf(w, "  returnValue()   → %d  (copia en stack)\n", returnValue())
	fmt.Fprintf(w, "  sumArray()      → %d  (array fijo en stack)\n", sumArray())

	p := returnPointer()
	fmt.Fprintf(w, "  returnPointer() → %d  (x escapó al heap; el puntero sigue siendo válido)\n", *p)
	fmt.Fprintln(w, "  inspect with: go build -gcflags=-m ./...")
}

// ── Summary ──────────────────────────────────────────────────────────────────

func demoSummary(w io.Writer) {
	fmt.Fprintln(w, "  • Assignment and calls copy the value: ints, arrays, structs, headers.")
	fmt.Fprintln(w, "  • Slices, maps, channels and pointers copy a reference to shared data.")
	fmt.Fprintln(w, "  • Pass a pointer when the callee must mutate the caller's value.")
	fmt.Fprintln(w, "  • The GC frees a value once nothing can reach it; pointers never dangle.")
}
