package options

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	out := Wrap("pack   the bags\nbefore the trip", 10)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 10, line)
	}
	assert.Equal(t, "pack the bags before the trip", strings.Join(strings.Fields(out), " "))
	assert.Equal(t, "  ", Wrap("  ", 10))
}
