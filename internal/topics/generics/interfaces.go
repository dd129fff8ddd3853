package generics

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"strings"
)

// ── Interfaces ───────────────────────────────────────────────────────────────

// Summary is implemented by anything that can summarize itself.
type Summary interface {
	SummarizeAuthor() string
	Summarize() string
}

// DefaultSummary supplies Summarize in terms of SummarizeAuthor. Embedding
// it is Go's stand-in for a default method.
type DefaultSummary struct {
	author func() string
}

func (d DefaultSummary) Summarize() string {
	return fmt.Sprintf("(Read more from %s...)", d.author())
}

type Tweet struct {
	DefaultSummary
	Username string
	Content  string
	Reply    bool
	Retweet  bool
}

func NewTweet(username, content string) *Tweet {
	t := &Tweet{Username: username, Content: content}
	t.DefaultSummary = DefaultSummary{author: t.SummarizeAuthor}
	return t
}

func (t *Tweet) SummarizeAuthor() string { return "@" + t.Username }

type NewsArticle struct {
	Headline string
	Location string
	Author   string
	Content  string
}

func (a NewsArticle) SummarizeAuthor() string { return a.Author }

// Summarize overrides the default.
func (a NewsArticle) Summarize() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}

func demoInterfaces(w io.Writer) {
	tweet := NewTweet("horse_ebooks", "of course, as you probably already know, people")
	article := NewsArticle{
		Headline: "Penguins win the Stanley Cup Championship!",
		Location: "Pittsburgh, PA, USA",
		Author:   "Iceburgh",
		Content:  "The Pittsburgh Penguins once again are the best hockey team in the NHL.",
	}

	for _, s := range []Summary{tweet, article} {
		fmt.Fprintln(w, "  1 new item:", s.Summarize())
	}

	// Interfaces are satisfied implicitly; assert it at compile time.
	var _ Summary = (*Tweet)(nil)
	var _ Summary = NewsArticle{}
	fmt.Fprintln(w, "  implicit satisfaction checked with var _ Summary = ...")
}

// ── Constraints ──────────────────────────────────────────────────────────────

// comparable means T supports == and !=.
func Equal[T comparable](a, b T) bool { return a == b }

type Celsius float64
type Fahrenheit float64

// Temperature accepts any type whose underlying type is float64.
type Temperature interface{ ~float64 }

func AbsDiff[T Temperature](a, b T) T {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// Number combines types into a reusable union; usable only as a constraint.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Notify accepts any Summary; NotifyAll is the generic equivalent over a slice
// of one concrete type.
func Notify(item Summary) string { return "Breaking news! " + item.Summarize() }

func NotifyAll[T Summary](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, Notify(it))
	}
	return out
}

func demoConstraints(w io.Writer) {
	fmt.Fprintln(w, "  Equal(1, 1) =", Equal(1, 1), " Equal(\"a\", \"b\") =", Equal("a", "b"))
	fmt.Fprintln(w, "  AbsDiff(100°C, 20°C) =", AbsDiff(Celsius(100), Celsius(20)))
	fmt.Fprintln(w, "  AbsDiff(212°F, 32°F) =", AbsDiff(Fahrenheit(212), Fahrenheit(32)))
	fmt.Fprintln(w, "  Sum([1..5]) =", Sum([]int{1, 2, 3, 4, 5}))

	articles := []NewsArticle{{Headline: "Go 1.24 released", Author: "gopher", Location: "Internet"}}
	for _, line := range NotifyAll(articles) {
		fmt.Fprintln(w, " ", line)
	}
}

// ── Returning interfaces ─────────────────────────────────────────────────────

// Shape is an interface that any shape must implement.
type Shape interface {
	Area() float64
	Perimeter() float64
}

type Circle struct{ Radius float64 }

func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }

type Rectangle struct{ Width, Height float64 }

func (r Rectangle) Area() float64      { return r.Width * r.Height }
func (r Rectangle) Perimeter() float64 { return 2 * (r.Width + r.Height) }

// newShape hides the concrete type from the caller.
func newShape(kind string, size float64) (Shape, error) {
	switch kind {
	case "circle":
		return Circle{Radius: size}, nil
	case "square":
		return Rectangle{Width: size, Height: size}, nil
	default:
		return nil, fmt.Errorf("unknown shape %q", kind)
	}
}

func demoReturning(w io.Writer) {
	total := 0.0
	for _, kind := range []string{"circle", "square", "hexagon"} {
		s, err := newShape(kind, 2)
		if err != nil {
			fmt.Fprintln(w, "  error:", err)
			continue
		}
		total += s.Area()
		fmt.Fprintf(w, "  %-7s %T area=%.4f perimeter=%.4f\n", kind, s, s.Area(), s.Perimeter())
	}
	fmt.Fprintf(w, "  total area: %.4f\n", total)

	var nilShape Shape // zero value of an interface is nil
	fmt.Fprintln(w, "  nilShape == nil:", nilShape == nil)
}

// ── Constraint-gated functions ───────────────────────────────────────────────

// CmpDisplay only compiles for Pairs whose element type is ordered.
func CmpDisplay[T cmp.Ordered](p Pair[T, T]) string {
	if p.First >= p.Second {
		return fmt.Sprintf("the largest member is First = %v", p.First)
	}
	return fmt.Sprintf("the largest member is Second = %v", p.Second)
}

func demoGated(w io.Writer) {
	fmt.Fprintln(w, " ", CmpDisplay(Pair[int, int]{First: 3, Second: 7}))
	fmt.Fprintln(w, " ", CmpDisplay(Pair[string, string]{First: "zeta", Second: "alpha"}))
	fmt.Fprintln(w, "  CmpDisplay(Pair[[]int, []int]{}) would not compile")
}

// ── Associated types ─────────────────────────────────────────────────────────

// Iterator yields T values until Next reports false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Counter counts from 1 to 5.
type Counter struct{ count int }

func (c *Counter) Next() (int, bool) {
	if c.count < 5 {
		c.count++
		return c.count, true
	}
	return 0, false
}

func Drain[T any](it Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

func demoAssociated(w io.Writer) {
	fmt.Fprintln(w, "  Drain(&Counter{}) =", Drain[int](&Counter{}))
}

// ── Operator methods ─────────────────────────────────────────────────────────

type Vec struct{ X, Y int }

func (a Vec) Add(b Vec) Vec { return Vec{a.X + b.X, a.Y + b.Y} }

type Millimeters uint32
type Meters uint32

// AddMeters mixes units explicitly instead of through operator overloading.
func (mm Millimeters) AddMeters(m Meters) Millimeters {
	return mm + Millimeters(m*1000)
}

func demoOperators(w io.Writer) {
	fmt.Fprintf(w, "  Vec{1,0}.Add(Vec{2,3}) = %+v\n", Vec{1, 0}.Add(Vec{2, 3}))
	fmt.Fprintln(w, "  Millimeters(500).AddMeters(2) =", Millimeters(500).AddMeters(2))
}

// ── Interface composition ────────────────────────────────────────────────────

// OutlinePrinter requires fmt.Stringer as well as its own method.
type OutlinePrinter interface {
	fmt.Stringer
	OutlinePrint() string
}

type Point2 struct{ X, Y int }

func (p Point2) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

func (p Point2) OutlinePrint() string {
	s := p.String()
	border := strings.Repeat("*", len(s)+4)
	return strings.Join([]string{
		border,
		"*" + strings.Repeat(" ", len(s)+2) + "*",
		"* " + s + " *",
		"*" + strings.Repeat(" ", len(s)+2) + "*",
		border,
	}, "\n")
}

func demoComposition(w io.Writer) {
	var op OutlinePrinter = Point2{1, 3}
	for _, line := range strings.Split(op.OutlinePrint(), "\n") {
		fmt.Fprintln(w, " ", line)
	}
}
