// Package lifetimes looks at how long values live in Go. There are no
// lifetime annotations: a value lives while it is reachable, and the
// compiler's escape analysis decides whether it sits on the stack or the
// heap.
package lifetimes

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "Why lifetimes — scope vs reachability", Run: demoWhy},
		{Title: "Returning views — longest", Run: demoReturningViews},
		{Title: "Substring retention — strings.Clone", Run: demoRetention},
		{Title: "Structs holding views", Run: demoStructViews},
		{Title: "Escape analysis — stack or heap", Run: demoEscape},
		{Title: "Package-level values", Run: demoPackageLevel},
		{Title: "Closures extend lifetimes", Run: demoClosures},
		{Title: "Weak pointers and cleanups", Run: demoWeak},
		{Title: "Practical patterns — lazy cache, word views", Run: demoPractical},
		{Title: "Best practices", Run: demoBestPractices},
	}
}

// ── Why lifetimes ────────────────────────────────────────────────────────────

func demoWhy(w io.Writer) {
	var r *int
	{
		x := 5
		r = &x // legal: x moves to the heap because r outlives the block
	}
	fmt.Fprintln(w, "  r points at", *r, "after x's block ended")
	fmt.Fprintln(w, "  scope limits the name x, reachability keeps the value alive")
}

// ── Returning views ──────────────────────────────────────────────────────────

// longest returns whichever argument is longer; y wins ties.
func longest(x, y string) string {
	if len(x) > len(y) {
		return x
	}
	return y
}

// longestWithAnnouncement prints ann before comparing.
func longestWithAnnouncement(w io.Writer, x, y string, ann fmt.Stringer) string {
	fmt.Fprintln(w, "  announcement:", ann)
	return longest(x, y)
}

type notice string

func (n notice) String() string { return string(n) }

func demoReturningViews(w io.Writer) {
	string1 := "long string is long"
	string2 := "xyz"
	fmt.Fprintln(w, "  longest:", longest(string1, string2))

	var result string
	{
		inner := strings.Repeat("x", 3)
		result = longest("abcd", inner)
	}
	// No borrow checker: result stays valid outside the block.
	fmt.Fprintln(w, "  longest outside inner block:", result)

	fmt.Fprintln(w, "  longest:", longestWithAnnouncement(w, "abcd", "xyz", notice("comparing now")))
}

// ── Substring retention ──────────────────────────────────────────────────────

// header returns the first line of doc. The result shares doc's storage.
func header(doc string) string {
	line, _, _ := strings.Cut(doc, "\n")
	return line
}

// detachedHeader copies the first line so doc can be collected.
func detachedHeader(doc string) string {
	return strings.Clone(header(doc))
}

func demoRetention(w io.Writer) {
	doc := "title: report\n" + strings.Repeat("body ", 1<<12)
	h := header(doc)
	d := detachedHeader(doc)
	fmt.Fprintf(w, "  header %q keeps all %d bytes of doc reachable\n", h, len(doc))
	fmt.Fprintf(w, "  clone %q holds only its own %d bytes\n", d, len(d))

	// Subslices of a slice behave the same way; copy out what you keep.
	big := make([]byte, 1<<16)
	small := append([]byte(nil), big[:8]...)
	fmt.Fprintf(w, "  small=%d bytes cap=%d, independent of big\n", len(small), cap(small))
}

// ── Structs holding views ────────────────────────────────────────────────────

// ImportantExcerpt holds part of a larger text.
type ImportantExcerpt struct {
	Part string
}

func (ImportantExcerpt) Level() int { return 3 }

func (e ImportantExcerpt) AnnounceAndReturnPart(w io.Writer, announcement string) string {
	fmt.Fprintln(w, "  attention please:", announcement)
	return e.Part
}

// Context wraps the input a Parser reads.
type Context struct {
	input string
}

type Parser struct {
	ctx *Context
}

var errEmptyInput = errors.New("empty input")

func (p Parser) Parse() (string, error) {
	if p.ctx.input == "" {
		return "", errEmptyInput
	}
	return p.ctx.input, nil
}

func demoStructViews(w io.Writer) {
	novel := "Call me Ishmael. Some years ago..."
	first, _, _ := strings.Cut(novel, ".")
	excerpt := ImportantExcerpt{Part: first}
	fmt.Fprintf(w, "  excerpt: %+v\n", excerpt)
	fmt.Fprintln(w, "  level:", excerpt.Level())
	fmt.Fprintln(w, "  part:", excerpt.AnnounceAndReturnPart(w, "important news"))

	for _, in := range []string{"hello", ""} {
		p := Parser{ctx: &Context{input: in}}
		if got, err := p.Parse(); err != nil {
			fmt.Fprintln(w, "  parse error:", err)
		} else {
			fmt.Fprintln(w, "  parsed:", got)
		}
	}
}

// ── Escape analysis ──────────────────────────────────────────────────────────

// closureCapture devuelve un closure que captura x.
// x debe sobrevivir al frame que lo creó → escapa al heap.
//
// Escape analysis: x escapes to heap.
func closureCapture() func() int {
	x := 0
	return func() int {
		x++
		return x
	}
}

// interfaceBox recibe un valor concreto como `any`.
// Para satisfacer la interfaz, Go guarda el valor en el heap
// junto con un puntero a su tipo.
//
// Escape analysis: v escapes to heap.
func interfaceBox(v any) string {
	return fmt.Sprintf("%v", v)
}

// makeSlice crea un slice con make; su tamaño no se conoce
// en tiempo de compilación.
//
// Escape analysis: slice escapes to heap.
func makeSlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i * 2
	}
	return s
}

// sumLocal keeps its fixed-size array on the stack.
func sumLocal() int {
	arr := [4]int{1, 2, 3, 4}
	total := 0
	for _, v := range arr {
		total += v
	}
	return total
}

func demoEscape(w io.Writer) {
	fmt.Fprintln(w, "  sumLocal()        →", sumLocal(), "(array stays on the stack)")

	counter := closureCapture()
	a, b := counter(), counter()
	fmt.Fprintf(w, "  closureCapture()  → %d, %d (x captured on the heap)\n", a, b)
	fmt.Fprintf(w, "  interfaceBox(99)  → %q (boxed value)\n", interfaceBox(99))
	fmt.Fprintln(w, "  makeSlice(4)      →", makeSlice(4), "(runtime-sized slice)")
	fmt.Fprintln(w, "  inspect with: go build -gcflags=-m")
}

// ── Package-level values ─────────────────────────────────────────────────────

// Greeting lives for the whole program, like every string literal.
const Greeting = "I live as long as the program."

var visits int

func visit() int {
	visits++
	return visits
}

func demoPackageLevel(w io.Writer) {
	fmt.Fprintln(w, "  const:", Greeting)
	before := visits
	visit()
	visit()
	fmt.Fprintln(w, "  package variable grew by", visits-before)
	fmt.Fprintln(w, "  globals are never collected; keep them few and small")
}
