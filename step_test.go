// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntRange(t *testing.T) {
	min8, max8 := intRange[int8]()
	require.Equal(t, int8(math.MinInt8), min8)
	require.Equal(t, int8(math.MaxInt8), max8)

	minU8, maxU8 := intRange[uint8]()
	require.Equal(t, uint8(0), minU8)
	require.Equal(t, uint8(math.MaxUint8), maxU8)

	min64, max64 := intRange[int64]()
	require.Equal(t, int64(math.MinInt64), min64)
	require.Equal(t, int64(math.MaxInt64), max64)

	minU64, maxU64 := intRange[uint64]()
	require.Equal(t, uint64(0), minU64)
	require.Equal(t, maxUint64, maxU64)
}

func TestIntDistance(t *testing.T) {
	require.Equal(t, uint64(0), intDistance(5, 5))
	require.Equal(t, uint64(9), intDistance(1, 10))
	require.Equal(t, uint64(9), intDistance(-10, -1))
	// Crossing zero: the difference does not fit in the signed type.
	require.Equal(t, uint64(math.MaxUint8), intDistance(int8(math.MinInt8), int8(math.MaxInt8)))
	require.Equal(t, maxUint64, intDistance(int64(math.MinInt64), int64(math.MaxInt64)))
	require.Equal(t, uint64(128), intDistance(int8(-128), int8(0)))
}

func TestIntStepsForwardBackward(t *testing.T) {
	var s IntSteps[int8]

	v, ok := s.Forward(0, 5)
	require.True(t, ok)
	require.Equal(t, int8(5), v)

	v, ok = s.Forward(120, 7)
	require.True(t, ok)
	require.Equal(t, int8(127), v)

	_, ok = s.Forward(120, 8)
	require.False(t, ok)
	_, ok = s.Forward(127, 1)
	require.False(t, ok)

	v, ok = s.Backward(-120, 8)
	require.True(t, ok)
	require.Equal(t, int8(-128), v)

	_, ok = s.Backward(-120, 9)
	require.False(t, ok)

	// Zero steps is the identity.
	v, ok = s.Forward(42, 0)
	require.True(t, ok)
	require.Equal(t, int8(42), v)
}

func TestIntStepsCount(t *testing.T) {
	var s IntSteps[int8]

	n, ok := s.Count(1, 10)
	require.True(t, ok)
	require.Equal(t, uint64(10), n)

	n, ok = s.Count(5, 5)
	require.True(t, ok)
	require.Equal(t, uint64(1), n)

	n, ok = s.Count(10, 1)
	require.True(t, ok)
	require.Equal(t, uint64(0), n)

	n, ok = s.Count(-128, 127)
	require.True(t, ok)
	require.Equal(t, uint64(256), n)

	// The full uint64 domain holds 2^64 values, one more than a uint64
	// can count.
	var u IntSteps[uint64]
	n, ok = u.Count(0, maxUint64)
	require.False(t, ok)
	require.Equal(t, maxUint64, n)

	var i64 IntSteps[int64]
	n, ok = i64.Count(math.MinInt64, math.MaxInt64)
	require.False(t, ok)
	require.Equal(t, maxUint64, n)
}
