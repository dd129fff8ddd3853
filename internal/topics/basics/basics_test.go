package basics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/internal/demo"
)

func TestDemos(t *testing.T) {
	var buf bytes.Buffer
	failed := demo.Run(&buf, "Basics", Demos())
	assert.Zero(t, failed)

	out := buf.String()
	for _, want := range []string{
		"inner y        → 10",
		"outer y        → 5",
		"iota: Sunday=0 Monday=1 Tuesday=2",
		"huge>>98 = 4",
		"uint8(255)+1  = 0",
		"divmod(17, 5) = 3, 2",
		"rectangle(3, 4) = area 12, perimeter 14",
		"sum(nums...) = 15",
		"sqrt(-1) error: negative input",
		"divisible by 3",
		"countdown: 3 2 1 LIFTOFF!",
		"loop result = 20",
		"end count = 2",
		"weekday 2",
	} {
		assert.Contains(t, out, want)
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 0, sum())
	assert.Equal(t, 6, sum(1, 2, 3))

	area, per := rectangle(2, 5)
	assert.Equal(t, 10.0, area)
	assert.Equal(t, 14.0, per)

	_, err := sqrt(-4)
	assert.ErrorIs(t, err, errNegative)
}
