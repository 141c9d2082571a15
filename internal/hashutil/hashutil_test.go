package hashutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var uidPattern = regexp.MustCompile(`^[0-9a-f]{16}@nickel$`)

func TestStableUIDFormat(t *testing.T) {
	assert.Regexp(t, uidPattern, StableUID("lunch", "FREQ=DAILY;COUNT=1"))
}

func TestStableUIDDeterministic(t *testing.T) {
	assert.Equal(t, StableUID("lunch", "a"), StableUID("lunch", "a"))
}

func TestStableUIDDifferentInputs(t *testing.T) {
	assert.NotEqual(t, StableUID("lunch", "a"), StableUID("lunch", "b"))
	assert.NotEqual(t, StableUID("ab", "c"), StableUID("a", "bc"), "parts are separated")
}

func TestUIDSequence(t *testing.T) {
	next := UIDSequence([]string{"one", "two"})

	first, second, third := next(), next(), next()

	assert.Equal(t, StableUID("one"), first)
	assert.Equal(t, StableUID("two"), second)
	assert.Regexp(t, uidPattern, third)
	assert.NotEqual(t, second, third)
}
