// Package basics covers the building blocks: variables, constants, the
// built-in types, functions and control flow.
package basics

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "Variables — var, :=, zero values, shadowing", Run: demoVariables},
		{Title: "Constants — typed, untyped, iota", Run: demoConstants},
		{Title: "Data types — integers, floats, bool, rune, string, arrays", Run: demoTypes},
		{Title: "Functions — multiple results, named results, variadic", Run: demoFunctions},
		{Title: "Control flow — if with init, for, switch, labels", Run: demoControlFlow},
	}
}

// ── Variables ────────────────────────────────────────────────────────────────

func demoVariables(w io.Writer) {
	var count int // zero value
	var name string
	var ready bool
	fmt.Fprintf(w, "  zero values: int=%d string=%q bool=%v\n", count, name, ready)

	x := 5 // short declaration, type inferred
	fmt.Fprintf(w, "  x := 5         → %d (%T)\n", x, x)
	x = 6 // plain assignment
	fmt.Fprintf(w, "  x = 6          → %d\n", x)

	// Shadowing: an inner scope can declare a new x.
	y := 5
	{
		y := y * 2
		fmt.Fprintf(w, "  inner y        → %d\n", y) // 10
	}
	fmt.Fprintf(w, "  outer y        → %d\n", y) // 5

	// Re-declaring with := in the same scope needs at least one new name.
	spaces := "   "
	n, err := strconv.Atoi("3")
	m, err := strconv.Atoi("4") // err is reused, m is new
	fmt.Fprintf(w, "  len(spaces)=%d n=%d m=%d err=%v\n", len(spaces), n, m, err)
}

// ── Constants ────────────────────────────────────────────────────────────────

const threeHoursInSeconds = 60 * 60 * 3

type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
)

// Untyped constants keep arbitrary precision until they are used.
const huge = 1 << 100

func demoConstants(w io.Writer) {
	fmt.Fprintln(w, "  threeHoursInSeconds =", threeHoursInSeconds)
	fmt.Fprintf(w, "  iota: Sunday=%d Monday=%d Tuesday=%d\n", Sunday, Monday, Tuesday)
	fmt.Fprintln(w, "  huge>>98 =", huge>>98) // fits once shifted back down
}

// ── Data types ───────────────────────────────────────────────────────────────

func demoTypes(w io.Writer) {
	var u8 uint8 = 255
	u8++ // wraps silently; Go has no overflow panic
	fmt.Fprintln(w, "  uint8(255)+1  =", u8)

	fmt.Fprintln(w, "  math.MaxInt64 =", int64(math.MaxInt64))
	fmt.Fprintf(w, "  float64 0.1+0.2 = %.17f\n", 0.1+0.2)
	fmt.Fprintln(w, "  integer division 7/2 =", 7/2, " remainder =", 7%2)

	t := true
	fmt.Fprintln(w, "  bool:", t, !t)

	heart := '♥' // rune = int32 Unicode code point
	fmt.Fprintf(w, "  rune %q = %d (%T)\n", heart, heart, heart)

	// Arrays have a fixed length that is part of the type.
	months := [3]string{"Jan", "Feb", "Mar"}
	fives := [5]int{}
	for i := range fives {
		fives[i] = 3
	}
	fmt.Fprintln(w, "  array:", months, "len", len(months), "| [5]int filled:", fives)

	// Multiple assignment plays the role of tuples.
	a, b, c := 500, 6.4, 1
	fmt.Fprintln(w, "  multi-assign:", a, b, c)

	var conv float64 = float64(a) / 3
	fmt.Fprintf(w, "  explicit conversion: float64(500)/3 = %.3f\n", conv)
}

// ── Functions ────────────────────────────────────────────────────────────────

func plusOne(x int) int { return x + 1 }

// divmod returns two results.
func divmod(a, b int) (int, int) { return a / b, a % b }

// rectangle uses named results and a bare return.
func rectangle(w, h float64) (area, perimeter float64) {
	area = w * h
	perimeter = 2 * (w + h)
	return
}

func sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

var errNegative = errors.New("negative input")

func sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, errNegative
	}
	return math.Sqrt(x), nil
}

func demoFunctions(w io.Writer) {
	fmt.Fprintln(w, "  plusOne(5) =", plusOne(5))

	q, r := divmod(17, 5)
	fmt.Fprintf(w, "  divmod(17, 5) = %d, %d\n", q, r)

	area, per := rectangle(3, 4)
	fmt.Fprintf(w, "  rectangle(3, 4) = area %.0f, perimeter %.0f\n", area, per)

	fmt.Fprintln(w, "  sum() =", sum(), " sum(1,2,3) =", sum(1, 2, 3))
	nums := []int{4, 5, 6}
	fmt.Fprintln(w, "  sum(nums...) =", sum(nums...))

	if _, err := sqrt(-1); err != nil {
		fmt.Fprintln(w, "  sqrt(-1) error:", err)
	}

	// Functions are values.
	op := plusOne
	fmt.Fprintf(w, "  op := plusOne; op(41) = %d (%T)\n", op(41), op)
}

// ── Control flow ─────────────────────────────────────────────────────────────

func demoControlFlow(w io.Writer) {
	number := 6
	if number%4 == 0 {
		fmt.Fprintln(w, "  divisible by 4")
	} else if number%3 == 0 {
		fmt.Fprintln(w, "  divisible by 3")
	} else {
		fmt.Fprintln(w, "  not divisible by 4 or 3")
	}

	// if with an init statement; v is scoped to the if/else.
	if v, err := strconv.Atoi("42"); err == nil {
		fmt.Fprintln(w, "  parsed", v)
	}

	// for is the only loop: condition form, three-part form, range form.
	counter := 0
	for counter < 10 {
		counter++
	}
	fmt.Fprintln(w, "  counted to", counter)

	fmt.Fprint(w, "  countdown:")
	for i := 3; i > 0; i-- {
		fmt.Fprint(w, " ", i)
	}
	fmt.Fprintln(w, " LIFTOFF!")

	for i, v := range []int{10, 20, 30} {
		fmt.Fprintf(w, "  a[%d] = %d\n", i, v)
	}

	for i := range 3 { // range over int, Go 1.22+
		fmt.Fprint(w, "  tick ", i, "\n")
	}

	// A loop with break can produce a value through a variable.
	result := 0
	for c := 0; ; c++ {
		if c == 10 {
			result = c * 2
			break
		}
	}
	fmt.Fprintln(w, "  loop result =", result)

	// Labels break out of nested loops.
	count := 0
counting:
	for {
		remaining := 10
		for {
			if remaining == 9 {
				break
			}
			if count == 2 {
				break counting
			}
			remaining--
		}
		count++
	}
	fmt.Fprintln(w, "  end count =", count)

	switch day := Tuesday; day {
	case Sunday, Weekday(6):
		fmt.Fprintln(w, "  weekend")
	default:
		fmt.Fprintln(w, "  weekday", int(day))
	}
}
