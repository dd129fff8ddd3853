package errhandling

import (
	"fmt"
	"io"
)

// Guess is a number known to be in 1..100. The only way to build one is
// NewGuess, so every Guess value in the program is valid.
type Guess struct {
	value int
}

// NewGuess validates v.
func NewGuess(v int) (Guess, error) {
	if v < 1 || v > 100 {
		return Guess{}, &ValidationError{Field: "guess", Message: fmt.Sprintf("must be between 1 and 100, got %d", v)}
	}
	return Guess{value: v}, nil
}

// Value returns the validated number.
func (g Guess) Value() int { return g.value }

func demoValidation(w io.Writer) {
	for _, v := range []int{50, 0, 101} {
		g, err := NewGuess(v)
		if err != nil {
			fmt.Fprintln(w, "  error:", err)
			continue
		}
		fmt.Fprintln(w, "  valid guess:", g.Value())
	}
}
