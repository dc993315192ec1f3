// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "golang.org/x/exp/constraints"

// Steps is the capability a bounded domain needs for materializing the
// elements of an interval with a [Cursor]. The interval algebra itself
// never requires it.
type Steps[T any] interface {
	// Min returns the smallest representable value of the domain.
	Min() T
	// Max returns the largest representable value of the domain.
	Max() T
	// Forward returns the value n steps after v; ok is false when that
	// value does not exist in the domain.
	Forward(v T, n uint64) (T, bool)
	// Backward returns the value n steps before v; ok is false when that
	// value does not exist in the domain.
	Backward(v T, n uint64) (T, bool)
	// Count returns the number of values from a to b inclusive, zero when
	// a > b. ok is false when the count does not fit in a uint64; the
	// returned count is then saturated.
	Count(a, b T) (uint64, bool)
}

// IntSteps implements [Steps] for any built-in integer type.
type IntSteps[T constraints.Integer] struct{}

func (IntSteps[T]) Min() T {
	m, _ := intRange[T]()
	return m
}

func (IntSteps[T]) Max() T {
	_, m := intRange[T]()
	return m
}

func (IntSteps[T]) Forward(v T, n uint64) (T, bool) {
	_, max := intRange[T]()
	if n > intDistance(v, max) {
		return 0, false
	}
	return v + T(n), true
}

func (IntSteps[T]) Backward(v T, n uint64) (T, bool) {
	min, _ := intRange[T]()
	if n > intDistance(min, v) {
		return 0, false
	}
	return v - T(n), true
}

func (IntSteps[T]) Count(a, b T) (uint64, bool) {
	if a > b {
		return 0, true
	}
	d := intDistance(a, b)
	if d == maxUint64 {
		// uint64 spans exactly 2^64-1 steps; the inclusive count 2^64
		// does not fit.
		return maxUint64, false
	}
	return d + 1, true
}

const maxUint64 = ^uint64(0)

// intRange returns the smallest and largest values of T.
func intRange[T constraints.Integer]() (min, max T) {
	if ^T(0) > 0 { // unsigned
		return 0, ^T(0)
	}
	bits := 0
	for v := T(1); v != 0; v <<= 1 {
		bits++
	}
	min = T(1) << (bits - 1) // wraps to the most negative value
	return min, ^min
}

// intDistance returns the number of steps from a to b, for a <= b.
// The result is exact even when b-a does not fit in T.
func intDistance[T constraints.Integer](a, b T) uint64 {
	if a >= 0 || b < 0 {
		// Same sign: the difference fits in T and is non-negative.
		return uint64(b - a)
	}
	return uint64(b) + uint64(-(a+1)) + 1
}
