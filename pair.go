// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "fmt"

// A Pair is the result of [Interval.Difference] or
// [Interval.SymmetricDifference]: one interval, or two disjoint ones in
// left-to-right order. Those operations never produce more pieces, so the
// result keeps a fixed shape instead of a slice.
//
// When the operation removes everything, the Pair holds a single empty
// interval.
type Pair[T any, D Domain[T]] struct {
	first, second Interval[T, D]
	two           bool
}

// newPair builds a Pair from two candidate intervals in left-to-right
// order, collapsing empty candidates.
func newPair[T any, D Domain[T]](a, b Interval[T, D]) Pair[T, D] {
	if a.IsEmpty() {
		return onePair(b)
	}
	if b.IsEmpty() {
		return onePair(a)
	}
	return Pair[T, D]{first: a, second: b, two: true}
}

func onePair[T any, D Domain[T]](iv Interval[T, D]) Pair[T, D] {
	return Pair[T, D]{first: iv}
}

// Len returns the number of intervals held: 1 or 2. The single held
// interval may itself be empty.
func (p Pair[T, D]) Len() int {
	if p.two {
		return 2
	}
	return 1
}

// First returns the left-most held interval.
func (p Pair[T, D]) First() Interval[T, D] { return p.first }

// Second returns the right-most held interval and true, or ok = false
// when the Pair holds a single interval.
func (p Pair[T, D]) Second() (Interval[T, D], bool) { return p.second, p.two }

// At returns the i'th held interval; i must be less than Len.
func (p Pair[T, D]) At(i int) Interval[T, D] {
	switch {
	case i == 0:
		return p.first
	case i == 1 && p.two:
		return p.second
	}
	panic("interval: Pair index out of range")
}

// Equal reports whether the two pairs hold equal intervals, per
// [Interval.Equal].
func (p Pair[T, D]) Equal(q Pair[T, D]) bool {
	if p.two != q.two {
		return false
	}
	if !p.first.Equal(q.first) {
		return false
	}
	return !p.two || p.second.Equal(q.second)
}

func (p Pair[T, D]) String() string {
	if !p.two {
		return p.first.String()
	}
	return fmt.Sprintf("(%v + %v)", p.first, p.second)
}
