// Package patterns collects Go's answers to pattern matching: expression and
// type switches, comma-ok forms, multiple assignment, guards written as
// boolean cases, and regular expressions for matching text.
package patterns

import (
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "switch — values, multiple cases, fallthrough", Run: demoSwitch},
		{Title: "Type switch — binding the variant's data", Run: demoTypeSwitch},
		{Title: "Comma-ok — maps, type assertions, channels", Run: demoCommaOK},
		{Title: "Exhaustiveness — default as the catch-all", Run: demoDefault},
		{Title: "if with init — match one case", Run: demoIfInit},
		{Title: "Loop until empty — pop from a stack", Run: demoLoopUntilEmpty},
		{Title: "Multiple assignment — swaps and destructuring", Run: demoMultiAssign},
		{Title: "Ignoring values — the blank identifier", Run: demoIgnore},
		{Title: "Guards and ranges — switch true", Run: demoGuards},
		{Title: "Text patterns — regexp groups and path.Match", Run: demoText},
	}
}

// ── switch ───────────────────────────────────────────────────────────────────

type Coin int

const (
	Penny Coin = iota
	Nickel
	Dime
	Quarter
)

func valueInCents(c Coin) int {
	switch c {
	case Penny:
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		return 25
	}
	return 0
}

func demoSwitch(w io.Writer) {
	for _, c := range []Coin{Penny, Nickel, Dime, Quarter} {
		fmt.Fprintf(w, "  coin %d → %d cents\n", c, valueInCents(c))
	}

	x := 1
	switch x {
	case 1, 2:
		fmt.Fprintln(w, "  one or two")
	case 3:
		fmt.Fprintln(w, "  three")
	default:
		fmt.Fprintln(w, "  anything")
	}

	// Cases do not fall through unless asked to.
	switch n := 4; {
	case n > 3:
		fmt.Fprintln(w, "  n > 3")
		fallthrough
	case n > 1:
		fmt.Fprintln(w, "  n > 1 (reached by fallthrough)")
	}
}

// ── Type switch ──────────────────────────────────────────────────────────────

type UsState string

// Shape variants, each carrying its own data.
type (
	Circle    struct{ R float64 }
	Rect      struct{ W, H float64 }
	StateCoin struct{ State UsState }
)

func classify(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case int, int64:
		return fmt.Sprintf("integer %v", x)
	case string:
		return fmt.Sprintf("string of %d bytes", len(x))
	case Circle:
		return fmt.Sprintf("circle r=%.1f", x.R)
	case Rect:
		return fmt.Sprintf("rect %.0fx%.0f", x.W, x.H)
	case StateCoin:
		return fmt.Sprintf("state quarter from %s", x.State)
	case error:
		return "error: " + x.Error()
	default:
		return fmt.Sprintf("other %T", x)
	}
}

func demoTypeSwitch(w io.Writer) {
	values := []any{nil, 42, "gopher", Circle{R: 1.5}, Rect{W: 2, H: 3},
		StateCoin{State: "Alaska"}, fmt.Errorf("boom"), 3.14}
	for _, v := range values {
		fmt.Fprintf(w, "  %-22v → %s\n", v, classify(v))
	}
}

// ── Comma-ok ─────────────────────────────────────────────────────────────────

func demoCommaOK(w io.Writer) {
	scores := map[string]int{"blue": 10}
	if s, ok := scores["blue"]; ok {
		fmt.Fprintln(w, "  blue score:", s)
	}
	if _, ok := scores["yellow"]; !ok {
		fmt.Fprintln(w, "  yellow: no score")
	}

	var v any = "text"
	if s, ok := v.(string); ok {
		fmt.Fprintf(w, "  v.(string) = %q\n", s)
	}
	if _, ok := v.(int); !ok {
		fmt.Fprintln(w, "  v.(int) failed without panicking")
	}

	ch := make(chan int, 1)
	ch <- 7
	close(ch)
	for i := 0; i < 2; i++ {
		val, open := <-ch
		fmt.Fprintf(w, "  receive → val=%d open=%v\n", val, open)
	}
}

// ── Exhaustiveness ───────────────────────────────────────────────────────────

func describeRoll(roll int) string {
	switch roll {
	case 3:
		return "add fancy hat"
	case 7:
		return "remove fancy hat"
	default:
		return fmt.Sprintf("move %d spaces", roll)
	}
}

func demoDefault(w io.Writer) {
	for _, roll := range []int{3, 7, 9} {
		fmt.Fprintf(w, "  roll %d → %s\n", roll, describeRoll(roll))
	}
	fmt.Fprintln(w, "  a switch without default silently ignores the rest;")
	fmt.Fprintln(w, "  `go vet`-style linters (exhaustive) can enforce full coverage")
}

// ── if with init ─────────────────────────────────────────────────────────────

func demoIfInit(w io.Writer) {
	config := map[string]int{"max": 3}
	if limit, ok := config["max"]; ok {
		fmt.Fprintln(w, "  the maximum is configured to be", limit)
	} else {
		fmt.Fprintln(w, "  no maximum")
	}

	var coin any = StateCoin{State: "Texas"}
	if q, ok := coin.(StateCoin); ok {
		fmt.Fprintf(w, "  state quarter from %s!\n", q.State)
	}
}

// ── Loop until empty ─────────────────────────────────────────────────────────

func demoLoopUntilEmpty(w io.Writer) {
	stack := []int{1, 2, 3}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintln(w, "  popped", top)
	}
}

// ── Multiple assignment ──────────────────────────────────────────────────────

type Point struct{ X, Y int }

func coordinates(p Point) (int, int) { return p.X, p.Y }

func demoMultiAssign(w io.Writer) {
	a, b := 1, 2
	a, b = b, a
	fmt.Fprintf(w, "  swapped: a=%d b=%d\n", a, b)

	x, y := coordinates(Point{X: 3, Y: 5})
	fmt.Fprintf(w, "  current location: (%d, %d)\n", x, y)

	// Structs are destructured by field access; the switch then matches on them.
	for _, p := range []Point{{0, 7}, {3, 0}, {2, 2}} {
		switch {
		case p.Y == 0:
			fmt.Fprintf(w, "  %v on the x axis at %d\n", p, p.X)
		case p.X == 0:
			fmt.Fprintf(w, "  %v on the y axis at %d\n", p, p.Y)
		default:
			fmt.Fprintf(w, "  %v on neither axis\n", p)
		}
	}

	// Comparable structs match directly.
	switch (Point{0, 0}) {
	case Point{}:
		fmt.Fprintln(w, "  origin")
	}
}

// ── Ignoring values ──────────────────────────────────────────────────────────

func demoIgnore(w io.Writer) {
	numbers := []int{2, 4, 8, 16, 32}
	first, _, third, _, fifth := numbers[0], numbers[1], numbers[2], numbers[3], numbers[4]
	fmt.Fprintf(w, "  some numbers: %d, %d, %d\n", first, third, fifth)

	for _, n := range numbers[:2] {
		fmt.Fprintln(w, "  value only:", n)
	}

	settingValue, newValue := 5, 10
	var settingPtr *int = &settingValue
	if settingPtr != nil && newValue != 0 {
		fmt.Fprintln(w, "  can't overwrite an existing customized value")
	}
}

// ── Guards and ranges ────────────────────────────────────────────────────────

type Hello struct{ ID int }

func describeHello(h Hello) string {
	switch id := h.ID; {
	case id >= 3 && id <= 7:
		return fmt.Sprintf("found an id in range: %d", id)
	case id >= 10 && id <= 12:
		return "found an id in another range"
	default:
		return fmt.Sprintf("found some other id: %d", id)
	}
}

func demoGuards(w io.Writer) {
	num := 4
	switch {
	case num%2 == 0:
		fmt.Fprintf(w, "  the number %d is even\n", num)
	default:
		fmt.Fprintf(w, "  the number %d is odd\n", num)
	}

	for _, id := range []int{5, 11, 42} {
		fmt.Fprintln(w, " ", describeHello(Hello{ID: id}))
	}

	x, matched := 4, false
	for _, candidate := range []int{4, 5, 6} {
		if x == candidate {
			matched = true
		}
	}
	fmt.Fprintln(w, "  4 | 5 | 6 matched:", matched)

	letter := 'c'
	switch {
	case letter >= 'a' && letter <= 'j':
		fmt.Fprintln(w, "  early ASCII letter")
	case letter >= 'k' && letter <= 'z':
		fmt.Fprintln(w, "  late ASCII letter")
	}
}

// ── Text patterns ────────────────────────────────────────────────────────────

var versionRE = regexp.MustCompile(`^v(?P<major>\d+)\.(?P<minor>\d+)\.(?P<patch>\d+)$`)

// parseVersion destructures a semantic version into its named groups.
func parseVersion(s string) (map[string]string, bool) {
	m := versionRE.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	out := make(map[string]string, 3)
	for i, name := range versionRE.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out, true
}

func demoText(w io.Writer) {
	for _, s := range []string{"v1.22.3", "1.22", "v2.0.0"} {
		parts, ok := parseVersion(s)
		if !ok {
			fmt.Fprintf(w, "  %-8s → no match\n", s)
			continue
		}
		fmt.Fprintf(w, "  %-8s → major=%s minor=%s patch=%s\n", s, parts["major"], parts["minor"], parts["patch"])
	}

	for _, name := range []string{"main.go", "main_test.go", "README.md"} {
		isGo, _ := path.Match("*.go", name)
		isTest := strings.HasSuffix(name, "_test.go")
		fmt.Fprintf(w, "  %-12s go=%-5v test=%v\n", name, isGo, isTest)
	}
}
