// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

// An Interval is a set of values of type T between two bounds, each of
// which can be open, closed, or unbounded. The domain D supplies the
// ordering of T and the adjacency notion that decides when two bound
// encodings denote the same set (see [Domain]).
//
// Interval is an immutable value type; its operations return new
// intervals. The zero Interval is not meaningful; use the constructors.
// Comparing intervals with == is structural and does not respect set
// equivalence: use [Interval.Equal], under which [1,10) and [1,9] over a
// [Discrete] domain are the same interval.
//
// There are several representations of the empty interval ([5,5) is one);
// every operation treats them all alike. [Empty] returns the canonical
// one.
type Interval[T any, D Domain[T]] struct {
	lower bound[T]
	upper bound[T]
}

// Closed returns the interval [lo, hi].
func Closed[T any, D Domain[T]](lo, hi T) Interval[T, D] {
	return Interval[T, D]{lower: leftOfBound(lo), upper: rightOfBound(hi)}
}

// ClosedOpen returns the interval [lo, hi).
func ClosedOpen[T any, D Domain[T]](lo, hi T) Interval[T, D] {
	return Interval[T, D]{lower: leftOfBound(lo), upper: leftOfBound(hi)}
}

// Open returns the interval (lo, hi).
func Open[T any, D Domain[T]](lo, hi T) Interval[T, D] {
	return Interval[T, D]{lower: rightOfBound(lo), upper: leftOfBound(hi)}
}

// OpenClosed returns the interval (lo, hi].
func OpenClosed[T any, D Domain[T]](lo, hi T) Interval[T, D] {
	return Interval[T, D]{lower: rightOfBound(lo), upper: rightOfBound(hi)}
}

// From returns the interval [lo, ), unbounded on the right.
func From[T any, D Domain[T]](lo T) Interval[T, D] {
	return Interval[T, D]{lower: leftOfBound(lo), upper: unbounded[T](rightUnbounded)}
}

// Above returns the interval (lo, ), unbounded on the right.
func Above[T any, D Domain[T]](lo T) Interval[T, D] {
	return Interval[T, D]{lower: rightOfBound(lo), upper: unbounded[T](rightUnbounded)}
}

// To returns the interval (, hi], unbounded on the left.
func To[T any, D Domain[T]](hi T) Interval[T, D] {
	return Interval[T, D]{lower: unbounded[T](leftUnbounded), upper: rightOfBound(hi)}
}

// Below returns the interval (, hi), unbounded on the left.
func Below[T any, D Domain[T]](hi T) Interval[T, D] {
	return Interval[T, D]{lower: unbounded[T](leftUnbounded), upper: leftOfBound(hi)}
}

// Full returns the doubly unbounded interval (,) containing every value.
func Full[T any, D Domain[T]]() Interval[T, D] {
	return Interval[T, D]{lower: unbounded[T](leftUnbounded), upper: unbounded[T](rightUnbounded)}
}

// Empty returns the canonical empty interval. Note that other bound pairs
// also denote the empty set; they are all Equal to this one.
func Empty[T any, D Domain[T]]() Interval[T, D] {
	// The bounds are inverted, so no value is both left of the upper bound
	// and right of the lower one.
	return Interval[T, D]{lower: unbounded[T](rightUnbounded), upper: unbounded[T](leftUnbounded)}
}

// Single returns the interval [v, v] containing exactly v.
func Single[T any, D Domain[T]](v T) Interval[T, D] {
	return Closed[T, D](v, v)
}

// Lower returns the finite lower bound value. ok is false when the lower
// bound is unbounded. For an empty interval the result is whatever the
// interval was built from and carries no meaning.
func (iv Interval[T, D]) Lower() (T, bool) { return iv.lower.value() }

// Upper returns the finite upper bound value. ok is false when the upper
// bound is unbounded. For an empty interval the result is whatever the
// interval was built from and carries no meaning.
func (iv Interval[T, D]) Upper() (T, bool) { return iv.upper.value() }

// LowerInclusive reports whether the lower bound value is part of the
// interval. It is false for an unbounded lower bound.
func (iv Interval[T, D]) LowerInclusive() bool { return iv.lower.kind == leftOf }

// LowerUnbounded reports whether the interval has no lower bound.
func (iv Interval[T, D]) LowerUnbounded() bool { return iv.lower.kind == leftUnbounded }

// UpperInclusive reports whether the upper bound value is part of the
// interval. It is false for an unbounded upper bound.
func (iv Interval[T, D]) UpperInclusive() bool { return iv.upper.kind == rightOf }

// UpperUnbounded reports whether the interval has no upper bound.
func (iv Interval[T, D]) UpperUnbounded() bool { return iv.upper.kind == rightUnbounded }

// IsEmpty reports whether the interval contains no value. An interval
// whose bounds are incomparable (a NaN endpoint, say) is empty.
//
// Emptiness depends on the domain: over [Float], [1.0, 1.0+eps) is empty
// since no machine value can be taken from it, while the same interval
// over a [Dense] domain is not.
func (iv Interval[T, D]) IsEmpty() bool {
	c, ok := compareBounds[T, D](iv.upper, iv.lower)
	return !ok || c <= 0
}

// IsSingle reports whether the interval has the form [A, A]. It is false
// for every other shape, even one that happens to contain exactly one
// value: Open(0, 2) over ints contains only 1 but is not single.
func (iv Interval[T, D]) IsSingle() bool {
	var d D
	if iv.lower.kind != leftOf || iv.upper.kind != rightOf {
		return false
	}
	c, ok := d.Compare(iv.lower.point, iv.upper.point)
	return ok && c == 0
}

// Canonical returns the interval itself if non-empty, and the canonical
// empty interval otherwise. It normalizes degenerate or inverted bound
// pairs such as ClosedOpen(5, 5), so that structurally distinct empty
// representations collapse to a single value.
func (iv Interval[T, D]) Canonical() Interval[T, D] {
	if iv.IsEmpty() {
		return Empty[T, D]()
	}
	return iv
}

// Contains reports whether v is in the interval.
func (iv Interval[T, D]) Contains(v T) bool {
	return leftOfValue[T, D](iv.lower, v) && rightOfValue[T, D](iv.upper, v)
}

// ContainsInterval reports whether every value of other is in iv.
// It is true for an empty other.
func (iv Interval[T, D]) ContainsInterval(other Interval[T, D]) bool {
	if other.IsEmpty() {
		return true
	}
	cl, okl := compareBounds[T, D](iv.lower, other.lower)
	cu, oku := compareBounds[T, D](other.upper, iv.upper)
	return okl && cl <= 0 && oku && cu <= 0
}

// Equal reports whether the two intervals contain the same set of values,
// even when their bounds differ syntactically: over a [Discrete] domain,
// ClosedOpen(1, 10) equals Closed(1, 9), and all empty representations
// are equal to each other.
func (iv Interval[T, D]) Equal(other Interval[T, D]) bool {
	if iv.IsEmpty() {
		return other.IsEmpty()
	}
	if other.IsEmpty() {
		return false
	}
	cl, okl := compareBounds[T, D](iv.lower, other.lower)
	cu, oku := compareBounds[T, D](iv.upper, other.upper)
	return okl && cl == 0 && oku && cu == 0
}

// StrictlyLeftOf reports whether every value in the interval is < x.
// It is vacuously true for an empty interval.
//
//	[------] .
//	         x
func (iv Interval[T, D]) StrictlyLeftOf(x T) bool {
	return iv.IsEmpty() || leftOfValue[T, D](iv.upper, x)
}

// LeftOf reports whether every value in the interval is <= x.
// It is vacuously true for an empty interval.
//
//	[------]
//	       x
func (iv Interval[T, D]) LeftOf(x T) bool {
	if iv.IsEmpty() {
		return true
	}
	c, ok := compareBounds[T, D](iv.upper, rightOfBound(x))
	return ok && c <= 0
}

// StrictlyRightOf reports whether x is < every value in the interval.
// It is vacuously true for an empty interval.
//
//	. [------]
//	x
func (iv Interval[T, D]) StrictlyRightOf(x T) bool {
	return iv.IsEmpty() || rightOfValue[T, D](iv.lower, x)
}

// RightOf reports whether x is <= every value in the interval.
// It is vacuously true for an empty interval.
//
//	[------]
//	x
func (iv Interval[T, D]) RightOf(x T) bool {
	if iv.IsEmpty() {
		return true
	}
	c, ok := compareBounds[T, D](iv.lower, leftOfBound(x))
	return ok && c >= 0
}

// StrictlyLeftOfInterval reports whether every value in iv is < every
// value in other. It is vacuously true when either interval is empty.
func (iv Interval[T, D]) StrictlyLeftOfInterval(other Interval[T, D]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	c, ok := compareBounds[T, D](iv.upper, other.lower)
	return ok && c <= 0
}

// StrictlyRightOfInterval reports whether every value in iv is > every
// value in other. It is vacuously true when either interval is empty.
func (iv Interval[T, D]) StrictlyRightOfInterval(other Interval[T, D]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	c, ok := compareBounds[T, D](other.upper, iv.lower)
	return ok && c <= 0
}

// LeftOfInterval reports whether every value in iv is <= every value in
// other, that is, the two may share at most their touching endpoint.
func (iv Interval[T, D]) LeftOfInterval(other Interval[T, D]) bool {
	return iv.StrictlyLeftOfInterval(other) || sameBoundValue[T, D](iv.upper, other.lower)
}

// RightOfInterval reports whether every value in iv is >= every value in
// other.
func (iv Interval[T, D]) RightOfInterval(other Interval[T, D]) bool {
	return iv.StrictlyRightOfInterval(other) || sameBoundValue[T, D](iv.lower, other.upper)
}

// sameBoundValue reports whether the two bounds carry equal underlying
// points, ignoring their kinds. Two unbounded bounds compare as same.
func sameBoundValue[T any, D Domain[T]](a, b bound[T]) bool {
	var d D
	av, aok := a.value()
	bv, bok := b.value()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	c, ok := d.Compare(av, bv)
	return ok && c == 0
}

// Intersects reports whether the two intervals have at least one value in
// common.
func (iv Interval[T, D]) Intersects(other Interval[T, D]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	c1, ok1 := compareBounds[T, D](iv.lower, other.upper)
	c2, ok2 := compareBounds[T, D](other.lower, iv.upper)
	return ok1 && c1 < 0 && ok2 && c2 < 0
}

// Intersection returns the values common to both intervals. The result is
// empty when the intervals do not intersect.
func (iv Interval[T, D]) Intersection(other Interval[T, D]) Interval[T, D] {
	return Interval[T, D]{
		lower: maxBound[T, D](iv.lower, other.lower),
		upper: minBound[T, D](iv.upper, other.upper),
	}
}

// ConvexHull returns the smallest interval containing the values of both
// intervals, including any gap between them. If one side is empty the
// other is returned unchanged.
func (iv Interval[T, D]) ConvexHull(other Interval[T, D]) Interval[T, D] {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	return Interval[T, D]{
		lower: minBound[T, D](iv.lower, other.lower),
		upper: maxBound[T, D](iv.upper, other.upper),
	}
}

// Between returns the largest interval lying inside the convex hull of
// the two intervals but disjoint from both: the gap between them. The
// result is empty when either interval is empty, or when the intervals
// overlap or touch.
func (iv Interval[T, D]) Between(other Interval[T, D]) Interval[T, D] {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty[T, D]()
	}
	return Interval[T, D]{
		lower: minBound[T, D](iv.upper, other.upper),
		upper: maxBound[T, D](iv.lower, other.lower),
	}
}

// Contiguous reports whether no value lies between the two intervals,
// that is, they overlap or touch. It is vacuously true when either
// interval is empty.
func (iv Interval[T, D]) Contiguous(other Interval[T, D]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	c1, ok1 := compareBounds[T, D](iv.lower, other.upper)
	c2, ok2 := compareBounds[T, D](other.lower, iv.upper)
	return ok1 && c1 <= 0 && ok2 && c2 <= 0
}

// Union returns the single interval holding the values of both intervals,
// and true, when the intervals are contiguous. Otherwise the union is not
// an interval and Union returns ok = false; callers that accept
// over-approximation use [Interval.ConvexHull] instead.
func (iv Interval[T, D]) Union(other Interval[T, D]) (Interval[T, D], bool) {
	if !iv.Contiguous(other) {
		return Empty[T, D](), false
	}
	return iv.ConvexHull(other), true
}

// Difference returns the values of iv not in other: zero, one or two
// intervals, left-to-right.
func (iv Interval[T, D]) Difference(other Interval[T, D]) Pair[T, D] {
	if iv.IsEmpty() || other.IsEmpty() {
		return onePair(iv)
	}
	return newPair(
		Interval[T, D]{lower: iv.lower, upper: minBound[T, D](other.lower, iv.upper)},
		Interval[T, D]{lower: maxBound[T, D](other.upper, iv.lower), upper: iv.upper},
	)
}

// SymmetricDifference returns the values in exactly one of the two
// intervals: zero, one or two intervals, left-to-right.
func (iv Interval[T, D]) SymmetricDifference(other Interval[T, D]) Pair[T, D] {
	if iv.IsEmpty() || other.IsEmpty() {
		return newPair(iv, other)
	}
	minUpper := minBound[T, D](iv.upper, other.upper)
	maxLower := maxBound[T, D](iv.lower, other.lower)
	return newPair(
		Interval[T, D]{
			lower: minBound[T, D](iv.lower, other.lower),
			upper: minBound[T, D](maxLower, minUpper),
		},
		Interval[T, D]{
			lower: maxBound[T, D](minUpper, maxLower),
			upper: maxBound[T, D](iv.upper, other.upper),
		},
	)
}

// Compare orders intervals by lower bound, then upper bound on a tie.
// Empty intervals sort after all non-empty intervals and compare equal to
// each other, which gives deterministic sort-then-merge behavior in [Set].
// ok is false when the bounds are incomparable; this cannot happen for
// non-empty intervals whose domain only reports NaN-like values as
// incomparable, since such an interval is already empty.
//
// The order has no geometric meaning: a Compare < 0 interval may still
// hold values to the right of every value of the other.
func (iv Interval[T, D]) Compare(other Interval[T, D]) (int, bool) {
	switch {
	case iv.IsEmpty():
		if other.IsEmpty() {
			return 0, true
		}
		return 1, true
	case other.IsEmpty():
		return -1, true
	}
	c, ok := compareBounds[T, D](iv.lower, other.lower)
	if !ok || c != 0 {
		return c, ok
	}
	return compareBounds[T, D](iv.upper, other.upper)
}
