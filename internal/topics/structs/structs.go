// Package structs covers structs, methods and the ways Go models enums:
// iota constants for plain variants and sealed interfaces for variants that
// carry data.
package structs

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "Structs — literals, field access, copies with changes", Run: demoStructs},
		{Title: "Named types — tuple-like structs and arrays", Run: demoNamedTypes},
		{Title: "Empty struct — zero-size markers", Run: demoEmptyStruct},
		{Title: "Methods — value vs pointer receivers, constructors", Run: demoMethods},
		{Title: "Enums with iota and String()", Run: demoIotaEnums},
		{Title: "Enums with data — sealed interfaces", Run: demoEnumsWithData},
		{Title: "Optional values — pointer, comma-ok, Option[T]", Run: demoOptional},
		{Title: "Results — (value, error)", Run: demoResult},
		{Title: "Printing and comparing — %v %+v %#v, ==", Run: demoFormatting},
	}
}

// ── Structs ──────────────────────────────────────────────────────────────────

type User struct {
	Active      bool
	Username    string
	Email       string
	SignInCount uint64
}

func buildUser(email, username string) User {
	return User{
		Active:      true,
		Username:    username,
		Email:       email,
		SignInCount: 1,
	}
}

func demoStructs(w io.Writer) {
	user1 := buildUser("someone@example.com", "someusername123")
	fmt.Fprintf(w, "  user1: %s <%s> active=%v\n", user1.Username, user1.Email, user1.Active)

	user1.Email = "another@example.com"
	fmt.Fprintln(w, "  updated email:", user1.Email)

	// A copy with one field changed.
	user2 := user1
	user2.Email = "second@example.com"
	fmt.Fprintf(w, "  user2: %s <%s> (user1 keeps %s)\n", user2.Username, user2.Email, user1.Email)

	// Omitted fields get their zero value.
	partial := User{Username: "ghost"}
	fmt.Fprintf(w, "  partial: %+v\n", partial)
}

// ── Named types ──────────────────────────────────────────────────────────────

type Color [3]uint8

type Point3 struct{ X, Y, Z int }

func demoNamedTypes(w io.Writer) {
	black := Color{0, 0, 0}
	origin := Point3{}
	fmt.Fprintf(w, "  black=%v origin=%+v\n", black, origin)

	// Distinct named types do not mix even with identical structure.
	type Celsius float64
	type Fahrenheit float64
	c := Celsius(100)
	f := Fahrenheit(c*9/5 + 32)
	fmt.Fprintf(w, "  %.0f°C = %.0f°F\n", c, f)

	// Anonymous structs for one-off groupings.
	pair := struct {
		Name string
		Age  int
	}{"gopher", 16}
	fmt.Fprintf(w, "  anonymous: %+v\n", pair)
}

// ── Empty struct ─────────────────────────────────────────────────────────────

type AlwaysEqual struct{}

func (AlwaysEqual) String() string { return "AlwaysEqual" }

func demoEmptyStruct(w io.Writer) {
	subject := AlwaysEqual{}
	fmt.Fprintln(w, "  subject:", subject, "equal:", subject == AlwaysEqual{})

	set := map[string]struct{}{"a": {}, "b": {}}
	_, hasA := set["a"]
	fmt.Fprintln(w, "  set with struct{} values: len", len(set), "has a:", hasA)
}

// ── Methods ──────────────────────────────────────────────────────────────────

type Rectangle struct {
	Width, Height uint32
}

// Square is the conventional constructor name for a special case.
func Square(size uint32) Rectangle {
	return Rectangle{Width: size, Height: size}
}

func (r Rectangle) Area() uint32 { return r.Width * r.Height }

func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Scale needs a pointer receiver to modify r.
func (r *Rectangle) Scale(k uint32) {
	r.Width *= k
	r.Height *= k
}

func demoMethods(w io.Writer) {
	rect1 := Rectangle{Width: 30, Height: 50}
	rect2 := Rectangle{Width: 10, Height: 40}
	rect3 := Rectangle{Width: 60, Height: 45}

	fmt.Fprintln(w, "  rect1 area:", rect1.Area())
	fmt.Fprintln(w, "  rect1 can hold rect2?", rect1.CanHold(rect2))
	fmt.Fprintln(w, "  rect1 can hold rect3?", rect1.CanHold(rect3))

	sq := Square(3)
	fmt.Fprintf(w, "  Square(3) = %+v\n", sq)

	sq.Scale(2) // Go takes &sq automatically
	fmt.Fprintf(w, "  after Scale(2) = %+v area=%d\n", sq, sq.Area())

	// Method values bind the receiver.
	area := rect2.Area
	fmt.Fprintln(w, "  method value rect2.Area() =", area())
}

// ── Enums with iota ──────────────────────────────────────────────────────────

type IPAddrKind int

const (
	V4 IPAddrKind = iota
	V6
)

func (k IPAddrKind) String() string {
	switch k {
	case V4:
		return "V4"
	case V6:
		return "V6"
	default:
		return fmt.Sprintf("IPAddrKind(%d)", int(k))
	}
}

type IPAddr struct {
	Kind    IPAddrKind
	Address string
}

func demoIotaEnums(w io.Writer) {
	home := IPAddr{Kind: V4, Address: "127.0.0.1"}
	loopback := IPAddr{Kind: V6, Address: "::1"}
	fmt.Fprintf(w, "  home=%v loopback=%v\n", home, loopback)
	fmt.Fprintln(w, "  out of range:", IPAddrKind(7))
}

// ── Enums with data ──────────────────────────────────────────────────────────

// Message is a closed set of variants. The unexported method keeps other
// packages from adding their own.
type Message interface {
	isMessage()
}

type (
	Quit        struct{}
	Move        struct{ X, Y int }
	Write       struct{ Text string }
	ChangeColor struct{ R, G, B int }
)

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

func describe(m Message) string {
	switch v := m.(type) {
	case Quit:
		return "quit"
	case Move:
		return fmt.Sprintf("move to (%d, %d)", v.X, v.Y)
	case Write:
		return fmt.Sprintf("write %q", v.Text)
	case ChangeColor:
		return fmt.Sprintf("change color to rgb(%d, %d, %d)", v.R, v.G, v.B)
	default:
		return "unknown message"
	}
}

func demoEnumsWithData(w io.Writer) {
	msgs := []Message{
		Quit{},
		Move{X: 10, Y: 20},
		Write{Text: "hello"},
		ChangeColor{R: 255, G: 0, B: 0},
	}
	for _, m := range msgs {
		fmt.Fprintf(w, "  %-18T → %s\n", m, describe(m))
	}
}

// ── Optional values ──────────────────────────────────────────────────────────

// Option holds a value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }
func None[T any]() Option[T]    { return Option[T]{} }

func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func plusOne(x Option[int]) Option[int] {
	if v, ok := x.Get(); ok {
		return Some(v + 1)
	}
	return None[int]()
}

func demoOptional(w io.Writer) {
	five := Some(5)
	fmt.Fprintln(w, "  plusOne(Some(5)) =", plusOne(five))
	fmt.Fprintln(w, "  plusOne(None)    =", plusOne(None[int]()))
	fmt.Fprintln(w, "  None.OrElse(0)   =", None[int]().OrElse(0))

	// The built-in idioms: nil pointers and comma-ok lookups.
	var nickname *string
	fmt.Fprintln(w, "  nil pointer means absent:", nickname == nil)

	ages := map[string]int{"alice": 30}
	if age, ok := ages["bob"]; !ok {
		fmt.Fprintln(w, "  bob not found; zero value age =", age)
	}
}

// ── Results ──────────────────────────────────────────────────────────────────

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("divide %v by zero", a)
	}
	return a / b, nil
}

func demoResult(w io.Writer) {
	for _, d := range []float64{2, 0} {
		q, err := divide(10, d)
		if err != nil {
			fmt.Fprintln(w, "  error:", err)
			continue
		}
		fmt.Fprintf(w, "  10 / %v = %v\n", d, q)
	}
}

// ── Printing and comparing ───────────────────────────────────────────────────

func demoFormatting(w io.Writer) {
	p := Point3{1, 2, 3}
	fmt.Fprintf(w, "  %%v  → %v\n", p)
	fmt.Fprintf(w, "  %%+v → %+v\n", p)
	fmt.Fprintf(w, "  %%#v → %#v\n", p)

	// Structs of comparable fields support == and can be map keys.
	q := Point3{1, 2, 3}
	fmt.Fprintln(w, "  p == q:", p == q)
	seen := map[Point3]bool{p: true}
	fmt.Fprintln(w, "  seen[q]:", seen[q])
}
