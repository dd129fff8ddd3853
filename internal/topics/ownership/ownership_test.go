package ownership

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/internal/demo"
)

func TestDemos(t *testing.T) {
	var buf bytes.Buffer
	assert.Zero(t, demo.Run(&buf, "Ownership", Demos()))

	out := buf.String()
	for _, want := range []string{
		"int:    x=5 y=6",
		"array:  a=[1 2 3] b=[100 2 3]",
		"struct: p1={X:1 Y:2} p2={X:9 Y:2}",
		"slice:  s1=[100 2 3] s2=[100 2 3]",
		"map:    m1[a]=2 m2[a]=2",
		"clone:  s1=[100 2 3] s3=[-1 2 3]",
		`takesValue:   s="hello" result="hello, world"`,
		`takesPointer: s="hello, world"`,
		"moveByValue(p)   → {X:1 Y:1}",
		"moveByPointer(&p) → {X:11 Y:1}",
		"appendWorld(&words) → [hello world]",
		"*r2=10 same=true",
		`firstWord("hello world") = "hello"`,
		"nums=[1 20 3 4 5] view=[20 3] len=2 cap=4",
		"returnPointer() → 42",
	} {
		assert.Contains(t, out, want)
	}
}

func TestFirstWord(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello world", "hello"},
		{"single", "single"},
		{"", ""},
		{" leading", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, firstWord(c.in), "firstWord(%q)", c.in)
	}
}

func TestReturnPointerIsFresh(t *testing.T) {
	a, b := returnPointer(), returnPointer()
	assert.NotSame(t, a, b)
	*a = 1
	assert.Equal(t, 42, *b)
}
