// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

// A bound is one edge of an interval. A leftOf bound represents a
// conceptual point halfway between the value and its predecessor, and is
// used both as an inclusive lower bound and as an exclusive upper bound.
// Likewise rightOf sits halfway between the value and its successor.
//
// A bound is never equal to a point value; all comparisons against points
// are strict, through leftOfValue and rightOfValue.
type bound[T any] struct {
	point T
	kind  bkind
}

type bkind int8

const (
	leftUnbounded bkind = iota
	leftOf
	rightOf
	rightUnbounded
)

func leftOfBound[T any](p T) bound[T]  { return bound[T]{point: p, kind: leftOf} }
func rightOfBound[T any](p T) bound[T] { return bound[T]{point: p, kind: rightOf} }
func unbounded[T any](k bkind) bound[T] {
	return bound[T]{kind: k}
}

// value returns the bound's underlying point, which might or might not be
// part of the interval. ok is false for an unbounded bound.
func (b bound[T]) value() (T, bool) {
	var zero T
	if b.kind == leftUnbounded || b.kind == rightUnbounded {
		return zero, false
	}
	return b.point, true
}

// leftOfValue reports whether v lies to the right of the bound.
func leftOfValue[T any, D Domain[T]](b bound[T], v T) bool {
	var d D
	switch b.kind {
	case leftUnbounded:
		return true
	case leftOf:
		c, ok := d.Compare(b.point, v)
		return ok && c <= 0
	case rightOf:
		c, ok := d.Compare(b.point, v)
		return ok && c < 0
	default: // rightUnbounded
		return false
	}
}

// rightOfValue reports whether v lies to the left of the bound.
func rightOfValue[T any, D Domain[T]](b bound[T], v T) bool {
	var d D
	switch b.kind {
	case leftUnbounded:
		return false
	case leftOf:
		c, ok := d.Compare(v, b.point)
		return ok && c < 0
	case rightOf:
		c, ok := d.Compare(v, b.point)
		return ok && c <= 0
	default: // rightUnbounded
		return true
	}
}

// compareBounds is the partial order on bounds, and the single place where
// the domain's adjacency notion collapses distinct bound encodings into
// the same set. Two bounds around the same point compare by kind; a
// leftOf(a) against a rightOf(b) with a > b is nevertheless Equal when the
// domain has nothing between b and a. For instance over float32,
// rightOf(1.0) equals leftOf(1.0+eps), since no machine value lies
// between them; over mathematical reals the same bounds stay distinct.
//
// ok is false when the underlying points are incomparable.
func compareBounds[T any, D Domain[T]](a, b bound[T]) (int, bool) {
	var d D
	switch {
	case a.kind == leftUnbounded:
		if b.kind == leftUnbounded {
			return 0, true
		}
		return -1, true
	case b.kind == leftUnbounded:
		return 1, true
	case a.kind == rightUnbounded:
		if b.kind == rightUnbounded {
			return 0, true
		}
		return 1, true
	case b.kind == rightUnbounded:
		return -1, true
	case a.kind == b.kind:
		return d.Compare(a.point, b.point)
	case a.kind == leftOf: // b.kind == rightOf
		c, ok := d.Compare(a.point, b.point)
		switch {
		case !ok:
			return 0, false
		case c <= 0:
			return -1, true
		case d.NothingBetween(b.point, a.point):
			return 0, true
		default:
			return 1, true
		}
	default: // a.kind == rightOf, b.kind == leftOf
		c, ok := d.Compare(a.point, b.point)
		switch {
		case !ok:
			return 0, false
		case c >= 0:
			return 1, true
		case d.NothingBetween(a.point, b.point):
			return 0, true
		default:
			return -1, true
		}
	}
}

// minBound returns the smaller of a and b per compareBounds; when they are
// equal or incomparable it returns b.
func minBound[T any, D Domain[T]](a, b bound[T]) bound[T] {
	if c, ok := compareBounds[T, D](a, b); ok && c < 0 {
		return a
	}
	return b
}

// maxBound returns the larger of a and b per compareBounds; when they are
// equal or incomparable it returns b.
func maxBound[T any, D Domain[T]](a, b bound[T]) bound[T] {
	if c, ok := compareBounds[T, D](a, b); ok && c > 0 {
		return a
	}
	return b
}
