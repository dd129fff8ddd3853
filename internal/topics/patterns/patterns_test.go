package patterns

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/internal/demo"
)

func TestDemos(t *testing.T) {
	var buf bytes.Buffer
	assert.Zero(t, demo.Run(&buf, "Patterns", Demos()))

	out := buf.String()
	for _, want := range []string{
		"coin 3 → 25 cents",
		"one or two",
		"n > 1 (reached by fallthrough)",
		"state quarter from Alaska",
		"v.(int) failed without panicking",
		"receive → val=7 open=true",
		"receive → val=0 open=false",
		"roll 9 → move 9 spaces",
		"the maximum is configured to be 3",
		"state quarter from Texas!",
		"popped 3\n  popped 2\n  popped 1\n",
		"swapped: a=2 b=1",
		"{3 0} on the x axis at 3",
		"origin",
		"some numbers: 2, 8, 32",
		"found an id in range: 5",
		"found an id in another range",
		"found some other id: 42",
		"4 | 5 | 6 matched: true",
		"early ASCII letter",
		"v1.22.3  → major=1 minor=22 patch=3",
		"1.22     → no match",
	} {
		assert.Contains(t, out, want)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "nil"},
		{7, "integer 7"},
		{int64(8), "integer 8"},
		{"abc", "string of 3 bytes"},
		{Rect{W: 2, H: 5}, "rect 2x5"},
		{errors.New("x"), "error: x"},
		{1.5, "other float64"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classify(c.in))
	}
}

func TestParseVersion(t *testing.T) {
	parts, ok := parseVersion("v10.0.7")
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"major": "10", "minor": "0", "patch": "7"}, parts)

	_, ok = parseVersion("v1.2")
	assert.False(t, ok)
}
