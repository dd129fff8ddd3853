// Package demo runs the sections that make up one topic.
//
// Every topic package exposes an ordered list of Demos. Each Demo writes its
// illustrative output to the writer it receives, so the same code serves the
// interactive menu, the non-interactive CLI and the tests.
package demo

import (
	"fmt"
	"io"
)

// Demo is one titled section of a topic.
type Demo struct {
	Title string
	Run   func(w io.Writer)
}

// Section prints a section header.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

// Heading prints the banner that opens a topic.
func Heading(w io.Writer, heading string) {
	fmt.Fprintf(w, "\n▶ %s\n", heading)
}

// Run prints heading and then every demo in order.
//
// A demo that panics is reported on a single line and the remaining demos
// still run: a panic illustrated by one section never leaks into the caller.
// It returns the number of demos that panicked.
func Run(w io.Writer, heading string, demos []Demo) int {
	Heading(w, heading)
	failed := 0
	for _, d := range demos {
		Section(w, d.Title)
		if !runSafely(w, d) {
			failed++
		}
	}
	return failed
}

func runSafely(w io.Writer, d Demo) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "  ✗ %s panicked: %v\n", d.Title, r)
			ok = false
		}
	}()
	d.Run(w)
	return true
}
