package array

import "github.com/ndkit/ndkit/shape"

// Cursor enumerates the subscript tuples of an N-dimensional index space,
// forward and backward. Per-axis bounds are exclusive on both sides: a
// subscript is in range while it lies strictly between the lower and upper
// bound of its axis.
//
// Carry propagation runs either along an explicit axis order, whose first
// entry is the major axis, or from a working axis through the remaining
// axes most-significant first. The major axis is the one that is never
// reset by a carry; once it reaches a bound the cursor turns invalid, which
// terminates a traversal.
type Cursor struct {
	subs  []int64
	start []int64
	minEx []int64
	maxEx []int64
	axis  int64
	order []int64
	major int64
}

// NewCursor returns the default row-major cursor from the start tuple
// (zeros when nil) to the exclusive upper bounds to.
func NewCursor(from, to []int64) *Cursor {
	return NewCursorBoundsOrder(from, nil, to, nil)
}

// NewCursorAxis returns a cursor from the start tuple (zeros when nil) to
// the exclusive upper bounds to, stepping the wrapped axis fastest.
func NewCursorAxis(from, to []int64, axis int64) *Cursor {
	return NewCursorBounds(from, nil, to, axis)
}

// NewCursorOrder returns a cursor whose carry follows the given axis order,
// the first entry being the major axis.
func NewCursorOrder(from, to, order []int64) *Cursor {
	return NewCursorBoundsOrder(from, nil, to, order)
}

// NewCursorBounds returns a cursor over explicit exclusive bounds whose
// carry begins at the wrapped working axis. A nil lower bound defaults to
// one below the start tuple; a nil upper bound defaults to ones.
func NewCursorBounds(start, minExcluded, maxExcluded []int64, axis int64) *Cursor {
	c := newCursor(start, minExcluded, maxExcluded)
	if len(c.subs) == 0 {
		return c
	}
	c.axis = shape.Modulo(axis, int64(len(c.subs)))
	c.major = c.findMajorAxis()
	return c
}

// NewCursorBoundsOrder returns a cursor over explicit exclusive bounds
// whose carry follows the given axis order. An order shorter than the rank
// is ignored and the cursor walks row-major with the last axis fastest.
func NewCursorBoundsOrder(start, minExcluded, maxExcluded, order []int64) *Cursor {
	c := newCursor(start, minExcluded, maxExcluded)
	n := int64(len(c.subs))
	if n == 0 {
		return c
	}
	if int64(len(order)) >= n {
		c.order = make([]int64, n)
		for i := range c.order {
			c.order[i] = shape.Modulo(order[i], n)
		}
	} else {
		c.axis = n - 1
	}
	c.major = c.findMajorAxis()
	return c
}

func newCursor(start, minExcluded, maxExcluded []int64) *Cursor {
	n := max(len(start), len(minExcluded), len(maxExcluded))
	c := &Cursor{}
	if n == 0 {
		return c
	}

	c.subs = make([]int64, n)
	c.start = make([]int64, n)
	copy(c.subs, start)
	copy(c.start, start)

	c.minEx = make([]int64, n)
	switch {
	case len(minExcluded) > 0:
		copy(c.minEx, minExcluded)
	case len(start) > 0:
		for i := range c.minEx {
			c.minEx[i] = c.start[i] - 1
		}
	default:
		for i := range c.minEx {
			c.minEx[i] = -1
		}
	}

	c.maxEx = make([]int64, n)
	if len(maxExcluded) > 0 {
		copy(c.maxEx, maxExcluded)
	} else {
		for i := range c.maxEx {
			c.maxEx[i] = 1
		}
	}
	return c
}

// findMajorAxis picks the axis whose exhaustion ends the traversal: the
// axis before the working axis when one exists, skipping forward past axes
// with degenerate bounds.
func (c *Cursor) findMajorAxis() int64 {
	n := int64(len(c.subs))
	var major int64
	if c.axis <= 0 && n > 1 {
		major = 1
	}
	if c.minEx[major] == -1 && c.maxEx[major] == 0 {
		found := false
		for i := major + 1; i < n && !found; i++ {
			if c.maxEx[i] != 0 {
				major = i
				found = true
			}
		}
		if !found {
			major = 0
		}
	}
	return major
}

// Valid reports whether the cursor still points at an in-range subscript
// tuple. Only the major axis decides: interior axes are kept in range by
// the carry itself.
func (c *Cursor) Valid() bool {
	if len(c.subs) == 0 {
		return false
	}
	m := c.major
	if len(c.order) > 0 {
		m = c.order[0]
	}
	return c.subs[m] > c.minEx[m] && c.subs[m] < c.maxEx[m]
}

// Next advances the cursor by one subscript tuple.
func (c *Cursor) Next() {
	if len(c.subs) == 0 {
		return
	}
	if len(c.order) > 0 {
		cont := true
		for i := len(c.order) - 1; i >= 0 && cont; i-- {
			cont = c.inc(c.order[i], c.order[0])
		}
		return
	}
	cont := c.inc(c.axis, c.major)
	for i := int64(len(c.subs)) - 1; i > c.axis && cont; i-- {
		cont = c.inc(i, c.major)
	}
	for i := c.axis - 1; i >= 0 && cont; i-- {
		cont = c.inc(i, c.major)
	}
}

// Prev retreats the cursor by one subscript tuple.
func (c *Cursor) Prev() {
	if len(c.subs) == 0 {
		return
	}
	if len(c.order) > 0 {
		cont := true
		for i := len(c.order) - 1; i >= 0 && cont; i-- {
			cont = c.dec(c.order[i], c.order[0])
		}
		return
	}
	cont := c.dec(c.axis, c.major)
	for i := int64(len(c.subs)) - 1; i > c.axis && cont; i-- {
		cont = c.dec(i, c.major)
	}
	for i := c.axis - 1; i >= 0 && cont; i-- {
		cont = c.dec(i, c.major)
	}
}

// inc bumps axis i and reports whether the bump carried. A carried axis is
// reset just above its lower bound unless it is the major axis, which stays
// put so Valid can observe the exhaustion.
func (c *Cursor) inc(i, major int64) bool {
	if c.subs[i] < c.maxEx[i] {
		c.subs[i]++
	}
	cont := c.subs[i] == c.maxEx[i]
	if cont && i != major {
		c.subs[i] = c.minEx[i] + 1
	}
	return cont
}

func (c *Cursor) dec(i, major int64) bool {
	if c.subs[i] > c.minEx[i] {
		c.subs[i]--
	}
	cont := c.subs[i] == c.minEx[i]
	if cont && i != major {
		if c.maxEx[i] != 0 {
			c.subs[i] = c.maxEx[i] - 1
		} else {
			c.subs[i] = 0
		}
	}
	return cont
}

// Step advances the cursor n times, or retreats -n times when n is
// negative.
func (c *Cursor) Step(n int64) {
	for ; n > 0; n-- {
		c.Next()
	}
	for ; n < 0; n++ {
		c.Prev()
	}
}

// Reset restores the cursor to its start tuple.
func (c *Cursor) Reset() {
	copy(c.subs, c.start)
}

// Subs returns the current subscript tuple. The slice is live: it changes
// as the cursor moves and must be copied to be retained.
func (c *Cursor) Subs() []int64 {
	return c.subs
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{
		subs:  append([]int64(nil), c.subs...),
		start: append([]int64(nil), c.start...),
		minEx: append([]int64(nil), c.minEx...),
		maxEx: append([]int64(nil), c.maxEx...),
		axis:  c.axis,
		order: append([]int64(nil), c.order...),
		major: c.major,
	}
}
