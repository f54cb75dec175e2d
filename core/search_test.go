package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	b := NewBuffer("alpha\n", "beta gamma\n", "gamma\n")

	line, col, ok := Find(b, "gamma")
	assert.True(t, ok)
	assert.Equal(t, 2, line)
	assert.Equal(t, 5, col)

	_, _, ok = Find(b, "delta")
	assert.False(t, ok)

	_, _, ok = Find(b, "")
	assert.False(t, ok)

	_, _, ok = Find(b, "Gamma")
	assert.False(t, ok, "matching is case-sensitive")
}

func TestFind_RuneOffset(t *testing.T) {
	b := NewBuffer("ääx")

	line, col, ok := Find(b, "x")
	assert.True(t, ok)
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, col)
}

func TestHighlights(t *testing.T) {
	b := NewBuffer("foo foo\n", "bar\n", "a foo\n", "foo")

	spans := Highlights(b, "foo", 1, 3)
	assert.Equal(t, []Span{
		{Line: 1, Start: 0, Length: 3},
		{Line: 3, Start: 2, Length: 3},
	}, spans)

	assert.Empty(t, Highlights(b, "", 1, 4))
	assert.Len(t, Highlights(b, "foo", 0, 99), 3)
}
