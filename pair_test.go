// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairAccessors(t *testing.T) {
	two := iv(1, 20).Difference(iv(5, 10))
	require.Equal(t, 2, two.Len())
	require.True(t, two.At(0).Equal(iv(1, 5)))
	require.True(t, two.At(1).Equal(iv(10, 20)))
	require.Panics(t, func() { two.At(2) })
	require.Panics(t, func() { two.At(-1) })

	one := iv(1, 20).Difference(iv(10, 30))
	require.Equal(t, 1, one.Len())
	require.True(t, one.At(0).Equal(iv(1, 10)))
	_, ok := one.Second()
	require.False(t, ok)
	require.Panics(t, func() { one.At(1) })
}

func TestPairEqual(t *testing.T) {
	a := iv(1, 20).Difference(iv(5, 10))
	b := iv(1, 20).Difference(iv(5, 10))
	require.True(t, a.Equal(b))

	// Pieces compare by set equivalence, not structure.
	c := Closed[int, ints](1, 19).Difference(iv(5, 10))
	require.True(t, a.Equal(c))

	one := iv(1, 20).Difference(iv(10, 30))
	require.False(t, a.Equal(one))
	require.False(t, one.Equal(a))

	empty := iv(1, 5).Difference(iv(0, 10))
	require.True(t, empty.Equal(iv(2, 7).Difference(Full[int, ints]())))
}

func TestPairString(t *testing.T) {
	two := iv(1, 20).Difference(iv(5, 10))
	require.Equal(t, "([1, 5) + [10, 20))", two.String())

	one := iv(1, 20).Difference(iv(10, 30))
	require.Equal(t, "[1, 10)", one.String())

	empty := iv(1, 5).Difference(Full[int, ints]())
	require.Equal(t, "empty", empty.String())
}
