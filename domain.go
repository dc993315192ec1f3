// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interval implements intervals over ordered domains and sorted
// sets of disjoint intervals.
//
// An [Interval] holds all values between two bounds, each of which may be
// open, closed, or unbounded:
//
//	 |Interval|Constructor      |Description
//	 |--------|-----------------|--------------
//	 | [A,B]  |[Closed]         |left-closed, right-closed
//	 | [A,B)  |[ClosedOpen]     |left-closed, right-open
//	 | (A,B)  |[Open]           |left-open, right-open
//	 | (A,B]  |[OpenClosed]     |left-open, right-closed
//	 | [A,)   |[From]           |left-closed, right-unbounded
//	 | (A,)   |[Above]          |left-open, right-unbounded
//	 | (,B]   |[To]             |left-unbounded, right-closed
//	 | (,B)   |[Below]          |left-unbounded, right-open
//	 | (,)    |[Full]           |doubly unbounded
//	 | empty  |[Empty]          |empty
//
// Given two intervals A and B over an ordered domain, the package computes:
//
//	       [------ A ------]
//	              [----- B -------]
//
//	       [----------------------]     Convex hull
//	       [------)                     Difference (A - B)
//	                       (------]     Difference (B - A)
//	       [------)        (------]     Symmetric difference
//	              [--------]            Intersection
//	                                    Between is empty
//	       [----------------------]     Union
//
// When the two intervals do not overlap:
//
//	     [---A---]   [----B----]
//
//	     [---------------------]    Convex hull
//	     [-------]                  Difference (A - B)
//	                 [---------]    Difference (B - A)
//	     [-------]   [---------]    Symmetric difference
//	                                Intersection is empty
//	             (---)              Between
//	                                Union does not exist, non contiguous
package interval

import (
	"cmp"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// A Domain supplies the ordering of a value type T, together with the
// adjacency notion that decides when two syntactically different bounds
// denote the same set of values.
//
// Domains are usually zero-sized struct types, selected as a type
// parameter of [Interval]; two intervals over different domains are
// different types.
type Domain[T any] interface {
	// Compare returns -1, 0 or +1 depending on whether a is less than,
	// equal to, or greater than b. ok is false when the two values are
	// incomparable (for instance a floating-point NaN); every operation in
	// this package treats an interval with an incomparable bound as empty.
	Compare(a, b T) (c int, ok bool)

	// NothingBetween reports whether the domain contains no value strictly
	// between a and b. It is only called with a < b per Compare.
	//
	// This is the per-domain modeling choice that makes, say, [1,10) and
	// [1,9] the same set of ints, while keeping them distinct sets of
	// mathematical reals.
	NothingBetween(a, b T) bool
}

// Discrete is the domain of any built-in integer type, including rune:
// values that differ by one have nothing between them, so (1,2) is empty
// and [1,10) equals [1,9].
type Discrete[T constraints.Integer] struct{}

func (Discrete[T]) Compare(a, b T) (int, bool) { return cmp.Compare(a, b), true }

// a < b always holds here, so a+1 cannot overflow, while b-a could.
func (Discrete[T]) NothingBetween(a, b T) bool { return a+1 == b }

// Float is the domain of machine floating-point values. Two values closer
// than the machine epsilon are considered to have nothing between them,
// so (1.0, 1.0+eps) is empty: the domain is the representable values,
// not the mathematical reals (use [Dense] for those).
//
// The epsilon heuristic is known to be approximate for large magnitudes,
// where adding the machine epsilon is a no-op; that behavior is kept
// deliberately, since equality of bounds is defined in terms of it.
// NaN compares as incomparable, which makes any interval with a NaN
// bound empty.
type Float[T constraints.Float] struct{}

func (Float[T]) Compare(a, b T) (int, bool) {
	if a != a || b != b {
		return 0, false
	}
	return cmp.Compare(a, b), true
}

func (Float[T]) NothingBetween(a, b T) bool { return a+floatEpsilon[T]() >= b }

// floatEpsilon returns the machine epsilon for T's width.
func floatEpsilon[T constraints.Float]() T {
	// Converting the largest float64 to a float32 overflows to +Inf;
	// in generic code the conversion is evaluated per instantiation.
	maxFloat64 := math.MaxFloat64
	if T(maxFloat64) == T(math.Inf(1)) {
		return T(0x1p-23) // float32
	}
	return T(0x1p-52) // float64
}

// Dense is the domain of an ordered type considered mathematically dense:
// between any two distinct values there is always another one. Open and
// closed bounds at the same point are never equivalent, and (A,A+eps) is
// never empty. It is the right domain for strings, and the analog of a
// "mathematical real" wrapper for float values.
type Dense[T cmp.Ordered] struct{}

func (Dense[T]) Compare(a, b T) (int, bool) {
	if a != a || b != b { // NaN when T is a float type
		return 0, false
	}
	return cmp.Compare(a, b), true
}

func (Dense[T]) NothingBetween(a, b T) bool { return false }

// Times is the domain of [time.Time] values at nanosecond granularity.
type Times struct{}

func (Times) Compare(a, b time.Time) (int, bool) { return a.Compare(b), true }

func (Times) NothingBetween(a, b time.Time) bool { return b.Sub(a) <= time.Nanosecond }

// Dates is the domain of [time.Time] values used at day granularity,
// such as the values produced by time.Date with zero clock fields:
// two consecutive days have nothing between them.
type Dates struct{}

func (Dates) Compare(a, b time.Time) (int, bool) { return a.Compare(b), true }

func (Dates) NothingBetween(a, b time.Time) bool { return b.Sub(a) <= 24*time.Hour }

// Durations is the domain of [time.Duration] values, discrete at one
// nanosecond.
type Durations struct{}

func (Durations) Compare(a, b time.Duration) (int, bool) { return cmp.Compare(a, b), true }

func (Durations) NothingBetween(a, b time.Duration) bool { return a+1 == b }

// Decimals is the domain of arbitrary-precision [decimal.Decimal] values,
// which is dense: there is always a decimal between two others.
type Decimals struct{}

func (Decimals) Compare(a, b decimal.Decimal) (int, bool) { return a.Cmp(b), true }

func (Decimals) NothingBetween(a, b decimal.Decimal) bool { return false }
