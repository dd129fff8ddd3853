package demo_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/internal/demo"
)

func TestSection(t *testing.T) {
	var buf bytes.Buffer
	demo.Section(&buf, "Closures")
	assert.Equal(t, "\n━━━ Closures ━━━\n", buf.String())
}

// TestRunOrder verifies that demos run in the order they are listed, each
// under its own header.
func TestRunOrder(t *testing.T) {
	var buf bytes.Buffer
	var calls []string

	demos := []demo.Demo{
		{Title: "first", Run: func(w io.Writer) { calls = append(calls, "first"); fmt.Fprintln(w, "  one") }},
		{Title: "second", Run: func(w io.Writer) { calls = append(calls, "second"); fmt.Fprintln(w, "  two") }},
	}

	failed := demo.Run(&buf, "Topic", demos)
	require.Zero(t, failed)
	assert.Equal(t, []string{"first", "second"}, calls)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\n▶ Topic\n"))
	assert.Less(t, strings.Index(out, "━━━ first ━━━"), strings.Index(out, "━━━ second ━━━"))
	assert.Contains(t, out, "  one\n")
	assert.Contains(t, out, "  two\n")
}

// TestRunRecoversPanic verifies that a panicking demo is reported and the
// next demo still runs.
func TestRunRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	ran := false

	demos := []demo.Demo{
		{Title: "boom", Run: func(io.Writer) { panic("index out of range") }},
		{Title: "after", Run: func(io.Writer) { ran = true }},
	}

	failed := demo.Run(&buf, "Topic", demos)
	assert.Equal(t, 1, failed)
	assert.True(t, ran, "demo after the panic did not run")
	assert.Contains(t, buf.String(), "boom panicked: index out of range")
}
