package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains a cursor, copying each tuple.
func collect(c *Cursor) [][]int64 {
	var out [][]int64
	for ; c.Valid(); c.Next() {
		out = append(out, append([]int64(nil), c.Subs()...))
	}
	return out
}

func TestCursorRowMajor(t *testing.T) {
	got := collect(NewCursor(nil, []int64{3, 1, 2}))
	assert.Equal(t, [][]int64{
		{0, 0, 0}, {0, 0, 1},
		{1, 0, 0}, {1, 0, 1},
		{2, 0, 0}, {2, 0, 1},
	}, got)
}

func TestCursorAxisFastest(t *testing.T) {
	// axis 1 steps fastest; the remaining axes carry most-significant first
	got := collect(NewCursorAxis(nil, []int64{3, 1, 2}, 1))
	assert.Equal(t, [][]int64{
		{0, 0, 0}, {0, 0, 1},
		{1, 0, 0}, {1, 0, 1},
		{2, 0, 0}, {2, 0, 1},
	}, got)

	// axis 0 fastest: the major axis moves to axis 1
	got = collect(NewCursorAxis(nil, []int64{3, 1, 2}, 0))
	assert.Equal(t, [][]int64{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
		{0, 0, 1}, {1, 0, 1}, {2, 0, 1},
	}, got)
}

func TestCursorOrder(t *testing.T) {
	// order {1, 0}: axis 0 steps fastest, axis 1 is the major axis
	got := collect(NewCursorOrder(nil, []int64{2, 3}, []int64{1, 0}))
	assert.Equal(t, [][]int64{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
		{0, 2}, {1, 2},
	}, got)
}

func TestCursorOrderTooShortFallsBack(t *testing.T) {
	got := collect(NewCursorOrder(nil, []int64{2, 2}, []int64{0}))
	assert.Equal(t, [][]int64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, got)
}

func TestCursorExplicitBounds(t *testing.T) {
	// bounds are exclusive on both sides
	got := collect(NewCursorBounds([]int64{1, 1}, []int64{0, 0}, []int64{3, 3}, 1))
	assert.Equal(t, [][]int64{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, got)
}

func TestCursorRankOne(t *testing.T) {
	got := collect(NewCursor(nil, []int64{4}))
	assert.Equal(t, [][]int64{{0}, {1}, {2}, {3}}, got)
}

func TestCursorMajorAxisSkipsDegenerateBounds(t *testing.T) {
	// axis 0 has a zero upper bound; the major axis scans forward past it
	c := NewCursorAxis(nil, []int64{0, 3}, 1)
	got := collect(c)
	assert.Equal(t, [][]int64{{0, 0}, {0, 1}, {0, 2}}, got)
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor(nil, nil)
	assert.False(t, c.Valid())
	c.Next() // must not panic
	c.Prev()
}

func TestCursorPrev(t *testing.T) {
	c := NewCursor(nil, []int64{3, 1, 2})
	c.Next()
	c.Next()
	require.Equal(t, []int64{1, 0, 0}, c.Subs())
	c.Prev()
	assert.Equal(t, []int64{0, 0, 1}, c.Subs())
	c.Prev()
	assert.Equal(t, []int64{0, 0, 0}, c.Subs())
}

func TestCursorStepAndReset(t *testing.T) {
	c := NewCursor(nil, []int64{3, 1, 2})
	c.Step(3)
	assert.Equal(t, []int64{1, 0, 1}, c.Subs())
	c.Step(-1)
	assert.Equal(t, []int64{1, 0, 0}, c.Subs())
	c.Reset()
	assert.Equal(t, []int64{0, 0, 0}, c.Subs())
	assert.True(t, c.Valid())
}

func TestCursorClone(t *testing.T) {
	c := NewCursor(nil, []int64{2, 2})
	c.Next()
	d := c.Clone()
	d.Next()
	assert.Equal(t, []int64{0, 1}, c.Subs())
	assert.Equal(t, []int64{1, 0}, d.Subs())
}

func TestCursorTerminatesOnMajorAxisOnly(t *testing.T) {
	// walking past the end leaves only the major axis out of range
	c := NewCursor(nil, []int64{2, 2})
	c.Step(4)
	require.False(t, c.Valid())
	assert.Equal(t, int64(2), c.Subs()[0])
}
