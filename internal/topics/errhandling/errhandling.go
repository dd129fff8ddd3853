// Package errhandling covers the two failure channels in Go: panics for
// bugs that should stop the program, and error values for everything a
// caller can reasonably handle.
package errhandling

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/marcodamonte/concepts/internal/demo"
)

// Demos lists the sections in the order they are shown.
func Demos() []demo.Demo {
	return []demo.Demo{
		{Title: "panic and recover — unrecoverable errors", Run: demoPanic},
		{Title: "error values — the (T, error) convention", Run: demoErrorBasics},
		{Title: "Matching on error kinds — errors.Is with fs errors", Run: demoMatchingKinds},
		{Title: "Must helpers — panic on programmer error", Run: demoMust},
		{Title: "Propagation — return early, wrap with %w", Run: demoPropagation},
		{Title: "defer — named results, annotate, commit or roll back", Run: demoDefer},
		{Title: "Optional chains — comma-ok all the way down", Run: demoOptionalChain},
		{Title: "Custom error types — errors.As", Run: demoCustomTypes},
		{Title: "Combinators — errors.Join, fallbacks, mapping", Run: demoCombinators},
		{Title: "Validated constructors — Guess in 1..100", Run: demoValidation},
		{Title: "Best practices", Run: demoBestPractices},
	}
}

// ── panic and recover ────────────────────────────────────────────────────────

// safeIndex turns an out-of-range panic into an error.
// recover() only works when called directly inside a deferred function.
func safeIndex(s []int, i int) (v int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return s[i], nil
}

func demoPanic(w io.Writer) {
	v := []int{1, 2, 3}

	_, err := safeIndex(v, 99)
	fmt.Fprintln(w, " ", err)

	// The non-panicking way to probe a slice.
	if i := 99; i < len(v) {
		fmt.Fprintln(w, "  value:", v[i])
	} else {
		fmt.Fprintln(w, "  index 99 is out of range (checked, no panic)")
	}

	fmt.Fprintln(w, "  GOTRACEBACK=all prints every goroutine's stack on a crash")
}

// ── error values ─────────────────────────────────────────────────────────────

func demoErrorBasics(w io.Writer) {
	f, err := os.Open(filepath.Join(os.TempDir(), "concepts-definitely-missing.txt"))
	if err != nil {
		fmt.Fprintln(w, "  could not open file:", errors.Is(err, fs.ErrNotExist))
		return
	}
	defer f.Close()
	fmt.Fprintln(w, "  opened", f.Name())
}

// ── Matching on error kinds ──────────────────────────────────────────────────

// openOrCreate opens path, creating it when it does not exist yet.
func openOrCreate(path string) (f *os.File, created bool, err error) {
	f, err = os.Open(path)
	switch {
	case err == nil:
		return f, false, nil
	case errors.Is(err, fs.ErrNotExist):
		f, err = os.Create(path)
		if err != nil {
			return nil, false, fmt.Errorf("create %s: %w", path, err)
		}
		return f, true, nil
	default:
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
}

func demoMatchingKinds(w io.Writer) {
	dir, err := os.MkdirTemp("", "concepts-errors-")
	if err != nil {
		fmt.Fprintln(w, "  temp dir:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "hello.txt")
	for i := 0; i < 2; i++ {
		f, created, err := openOrCreate(path)
		if err != nil {
			fmt.Fprintln(w, "  error:", err)
			return
		}
		f.Close()
		if created {
			fmt.Fprintln(w, "  hello.txt not found, created it")
		} else {
			fmt.Fprintln(w, "  opened existing hello.txt")
		}
	}

	// A path under a regular file is neither "exists" nor "not exists".
	_, _, err = openOrCreate(filepath.Join(path, "child"))
	fmt.Fprintln(w, "  nested under a file → not-exist:", errors.Is(err, fs.ErrNotExist), "error:", err != nil)
}

// ── Must helpers ─────────────────────────────────────────────────────────────

// Must returns v or panics with err. Use it where an error means the
// program itself is wrong, like parsing a constant.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func demoMust(w io.Writer) {
	n := Must(strconv.Atoi("42"))
	fmt.Fprintln(w, "  Must(strconv.Atoi(\"42\")) =", n)

	_, err := safeMust("forty-two")
	fmt.Fprintln(w, "  Must(strconv.Atoi(\"forty-two\")) panicked:", err != nil)
}

func safeMust(s string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return Must(strconv.Atoi(s)), nil
}

// ── Propagation ──────────────────────────────────────────────────────────────

var ErrEmptyUsername = errors.New("empty username")

// readUsername reads the first line of r. Each failure returns early with
// context added.
func readUsername(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read username: %w", err)
	}
	name := strings.TrimSpace(strings.SplitN(string(b), "\n", 2)[0])
	if name == "" {
		return "", fmt.Errorf("read username: %w", ErrEmptyUsername)
	}
	return name, nil
}

func demoPropagation(w io.Writer) {
	inputs := []io.Reader{
		strings.NewReader("gopher\nsecond line"),
		strings.NewReader("\n"),
		errReader{errors.New("connection reset")},
	}
	for _, r := range inputs {
		name, err := readUsername(r)
		switch {
		case err == nil:
			fmt.Fprintf(w, "  username=%q\n", name)
		case errors.Is(err, ErrEmptyUsername):
			fmt.Fprintln(w, "  empty input:", err)
		default:
			fmt.Fprintln(w, "  failed:", err)
		}
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// ── Optional chains ──────────────────────────────────────────────────────────

// lastCharOfFirstLine reports false when there is no first line or it is empty.
func lastCharOfFirstLine(text string) (rune, bool) {
	line, _, _ := strings.Cut(text, "\n")
	if line == "" {
		return 0, false
	}
	r := []rune(line)
	return r[len(r)-1], true
}

func demoOptionalChain(w io.Writer) {
	for _, text := range []string{"Hello, world\nHow are you?", "\nhi", ""} {
		if c, ok := lastCharOfFirstLine(text); ok {
			fmt.Fprintf(w, "  %q → %q\n", text, c)
		} else {
			fmt.Fprintf(w, "  %q → none\n", text)
		}
	}
}

// ── Best practices ───────────────────────────────────────────────────────────

func demoBestPractices(w io.Writer) {
	fmt.Fprintln(w, "  • Return errors for conditions callers can handle.")
	fmt.Fprintln(w, "  • panic only for broken invariants; recover at API boundaries.")
	fmt.Fprintln(w, "  • Wrap with context: fmt.Errorf(\"op: %w\", err).")
	fmt.Fprintln(w, "  • Compare with errors.Is / errors.As, never by message text.")
	fmt.Fprintln(w, "  • Handle an error once: log it or return it, not both.")
}
