// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "iter"

// A Cursor enumerates the elements of an interval over a domain with a
// [Steps] capability, from either end. It keeps the not-yet-visited
// elements as an interval of its own, narrowing a bound per step, so
// arbitrary skips cost the same as single steps.
type Cursor[T any, D Domain[T], S Steps[T]] struct {
	iv    Interval[T, D]
	steps S
}

// NewCursor returns a cursor over the elements of iv.
func NewCursor[T any, D Domain[T], S Steps[T]](iv Interval[T, D], steps S) *Cursor[T, D, S] {
	return &Cursor[T, D, S]{iv: iv, steps: steps}
}

// Interval returns the interval of elements the cursor has not yet
// produced from either end.
func (c *Cursor[T, D, S]) Interval() Interval[T, D] { return c.iv }

// Next removes and returns the smallest remaining element.
func (c *Cursor[T, D, S]) Next() (T, bool) { return c.NextN(0) }

// NextN skips n elements from the low end, then removes and returns the
// following one. The skip is a single arithmetic step, not n of them.
func (c *Cursor[T, D, S]) NextN(n uint64) (T, bool) {
	var zero T
	if c.iv.IsEmpty() {
		return zero, false
	}
	var cur T
	ok := false
	switch c.iv.lower.kind {
	case leftUnbounded:
		cur, ok = c.steps.Forward(c.steps.Min(), n)
	case leftOf:
		cur, ok = c.steps.Forward(c.iv.lower.point, n)
	case rightOf:
		if cur, ok = c.steps.Forward(c.iv.lower.point, 1); ok {
			cur, ok = c.steps.Forward(cur, n)
		}
	default: // rightUnbounded: only possible for an empty interval
		panic("interval: corrupt cursor")
	}
	if !ok || !c.iv.Contains(cur) {
		// Walked past the domain or the upper bound; exhausted.
		c.iv = Empty[T, D]()
		return zero, false
	}
	if next, ok := c.steps.Forward(cur, 1); ok {
		c.iv.lower = leftOfBound(next)
	} else {
		c.iv.lower = unbounded[T](rightUnbounded)
	}
	return cur, true
}

// Prev removes and returns the largest remaining element.
func (c *Cursor[T, D, S]) Prev() (T, bool) { return c.PrevN(0) }

// PrevN skips n elements from the high end, then removes and returns the
// preceding one.
func (c *Cursor[T, D, S]) PrevN(n uint64) (T, bool) {
	var zero T
	if c.iv.IsEmpty() {
		return zero, false
	}
	var cur T
	ok := false
	switch c.iv.upper.kind {
	case rightUnbounded:
		cur, ok = c.steps.Backward(c.steps.Max(), n)
	case rightOf:
		cur, ok = c.steps.Backward(c.iv.upper.point, n)
	case leftOf:
		if cur, ok = c.steps.Backward(c.iv.upper.point, 1); ok {
			cur, ok = c.steps.Backward(cur, n)
		}
	default: // leftUnbounded: only possible for an empty interval
		panic("interval: corrupt cursor")
	}
	if !ok || !c.iv.Contains(cur) {
		c.iv = Empty[T, D]()
		return zero, false
	}
	if prev, ok := c.steps.Backward(cur, 1); ok {
		c.iv.upper = rightOfBound(prev)
	} else {
		c.iv.upper = unbounded[T](leftUnbounded)
	}
	return cur, true
}

// Remaining returns the number of elements the cursor has yet to produce.
// ok is false when the count does not fit in a uint64; the result is then
// a saturated lower estimate. The count is advisory, suitable for
// allocation hints.
func (c *Cursor[T, D, S]) Remaining() (uint64, bool) {
	if c.iv.IsEmpty() {
		return 0, true
	}
	var first, last T
	switch c.iv.lower.kind {
	case leftUnbounded:
		first = c.steps.Min()
	case leftOf:
		first = c.iv.lower.point
	case rightOf:
		f, ok := c.steps.Forward(c.iv.lower.point, 1)
		if !ok {
			return 0, true
		}
		first = f
	}
	switch c.iv.upper.kind {
	case rightUnbounded:
		last = c.steps.Max()
	case rightOf:
		last = c.iv.upper.point
	case leftOf:
		l, ok := c.steps.Backward(c.iv.upper.point, 1)
		if !ok {
			return 0, true
		}
		last = l
	}
	return c.steps.Count(first, last)
}

// Len returns the exact number of remaining elements. Unlike
// [Cursor.Remaining] it must produce an exact answer, so it panics when
// the count does not fit in an int.
func (c *Cursor[T, D, S]) Len() int {
	n, ok := c.Remaining()
	if !ok || n > uint64(maxInt) {
		panic("interval: cursor length overflows int")
	}
	return int(n)
}

const maxInt = int(^uint(0) >> 1)

// All returns an iterator draining the cursor from the low end.
func (c *Cursor[T, D, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator draining the cursor from the high end.
func (c *Cursor[T, D, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Prev()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
