package structs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/internal/demo"
)

func TestDemos(t *testing.T) {
	var buf bytes.Buffer
	assert.Zero(t, demo.Run(&buf, "Structs", Demos()))

	out := buf.String()
	for _, want := range []string{
		"user2: someusername123 <second@example.com> (user1 keeps another@example.com)",
		"100°C = 212°F",
		"rect1 area: 1500",
		"rect1 can hold rect2? true",
		"rect1 can hold rect3? false",
		"after Scale(2) = {Width:6 Height:6} area=36",
		"home={V4 127.0.0.1} loopback={V6 ::1}",
		"out of range: IPAddrKind(7)",
		`write "hello"`,
		"change color to rgb(255, 0, 0)",
		"plusOne(Some(5)) = Some(6)",
		"plusOne(None)    = None",
		"error: divide 10 by zero",
		"%#v → structs.Point3{X:1, Y:2, Z:3}",
		"p == q: true",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		msg  Message
		want string
	}{
		{Quit{}, "quit"},
		{Move{X: 1, Y: -1}, "move to (1, -1)"},
		{Write{Text: "x"}, `write "x"`},
		{ChangeColor{R: 1, G: 2, B: 3}, "change color to rgb(1, 2, 3)"},
		{nil, "unknown message"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, describe(c.msg))
	}
}

func TestOption(t *testing.T) {
	v, ok := Some("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = None[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, 7, None[int]().OrElse(7))
	assert.Equal(t, "None", None[int]().String())
}

func TestRectangle(t *testing.T) {
	r := Square(4)
	assert.Equal(t, uint32(16), r.Area())
	assert.True(t, Rectangle{Width: 5, Height: 5}.CanHold(r))
	assert.False(t, r.CanHold(r))
}
