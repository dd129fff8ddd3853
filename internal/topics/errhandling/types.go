package errhandling

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ValidationError is a custom error type that carries structured data.
// Use a type instead of a sentinel when callers need the fields.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %q: %s", e.Field, e.Message)
}

// ParseError follows the stdlib *os.PathError shape: operation, input and
// cause, with Unwrap exposing the cause to errors.Is and errors.As.
type ParseError struct {
	Op    string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseAge validates s as a human age.
func parseAge(s string) (int, error) {
	if s == "" {
		return 0, &ValidationError{Field: "age", Message: "must not be empty"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Op: "parseAge", Input: s, Err: err}
	}
	if n < 0 || n > 150 {
		return 0, &ValidationError{Field: "age", Message: "must be between 0 and 150"}
	}
	return n, nil
}

func demoCustomTypes(w io.Writer) {
	for _, input := range []string{"", "abc", "200", "25"} {
		age, err := parseAge(input)
		if err == nil {
			fmt.Fprintf(w, "  parseAge(%q) → %d\n", input, age)
			continue
		}

		// errors.As walks the Unwrap chain looking for an assignable target.
		var valErr *ValidationError
		var parseErr *ParseError
		switch {
		case errors.As(err, &valErr):
			fmt.Fprintf(w, "  parseAge(%q) → field=%q msg=%q\n", input, valErr.Field, valErr.Message)
		case errors.As(err, &parseErr):
			fmt.Fprintf(w, "  parseAge(%q) → %v (syntax: %v)\n", input, parseErr, errors.Is(err, strconv.ErrSyntax))
		}
	}

	wrapped := fmt.Errorf("handler: %w", &ValidationError{Field: "email", Message: "invalid format"})
	var ve *ValidationError
	fmt.Fprintln(w, "  As through a wrap:", errors.As(wrapped, &ve), ve.Field)
}

// ── Combinators ──────────────────────────────────────────────────────────────

// orDefault maps an error to a fallback value.
func orDefault[T any](v T, err error, def T) T {
	if err != nil {
		return def
	}
	return v
}

// mapResult applies f only when there is no error.
func mapResult[T, U any](v T, err error, f func(T) U) (U, error) {
	if err != nil {
		var zero U
		return zero, err
	}
	return f(v), nil
}

func validateSignup(fields map[string]string) error {
	var errs []error
	for _, name := range []string{"username", "email", "age"} {
		v := fields[name]
		switch {
		case v == "":
			errs = append(errs, &ValidationError{Field: name, Message: "must not be empty"})
		case name == "age":
			if _, err := parseAge(v); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...) // nil when errs is empty
}

func demoCombinators(w io.Writer) {
	fmt.Fprintln(w, "  orDefault(Atoi(\"x\"), 0) =", orDefault(0, errOf(strconv.Atoi("x")), 0))

	doubled, err := mapResult(2, nil, func(n int) int { return n * 2 })
	fmt.Fprintln(w, "  mapResult(2, nil, double) =", doubled, err)

	_, err = mapResult(0, errors.New("upstream"), func(n int) int { return n * 2 })
	fmt.Fprintln(w, "  mapResult keeps the error:", err)

	err = validateSignup(map[string]string{"email": "a@b.c", "age": "abc"})
	fmt.Fprintln(w, "  validateSignup collected:")
	fmt.Fprintln(w, " ", err)
	fmt.Fprintln(w, "  Is(strconv.ErrSyntax):", errors.Is(err, strconv.ErrSyntax))
	fmt.Fprintln(w, "  all valid → nil:", validateSignup(map[string]string{"username": "g", "email": "e", "age": "3"}) == nil)
}

func errOf(_ int, err error) error { return err }
