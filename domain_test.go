// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDiscreteDomain(t *testing.T) {
	var d Discrete[int]
	require.True(t, d.NothingBetween(1, 2))
	require.False(t, d.NothingBetween(1, 3))

	// Adjacency near the edges of the value range must not overflow.
	var d8 Discrete[int8]
	require.True(t, d8.NothingBetween(126, 127))
	require.False(t, d8.NothingBetween(-128, 127))

	// Runes are just integers.
	require.True(t, Open[rune, Discrete[rune]]('a', 'b').IsEmpty())
	require.False(t, Open[rune, Discrete[rune]]('a', 'c').IsEmpty())
	require.True(t, Open[rune, Discrete[rune]]('a', 'c').Contains('b'))
}

func TestFloatDomain(t *testing.T) {
	var d Float[float64]

	c, ok := d.Compare(1, 2)
	require.True(t, ok)
	require.Equal(t, -1, c)
	_, ok = d.Compare(math.NaN(), 2)
	require.False(t, ok)
	_, ok = d.Compare(1, math.NaN())
	require.False(t, ok)

	// Infinities are ordinary comparable values.
	c, ok = d.Compare(math.Inf(-1), math.Inf(1))
	require.True(t, ok)
	require.Equal(t, -1, c)

	// Around 1.0 the machine has no value inside (1.0, 1.0+eps).
	eps := math.Nextafter(1, 2) - 1
	type floats = Float[float64]
	require.True(t, Open[float64, floats](1, 1+eps).IsEmpty())
	require.False(t, Open[float64, floats](1, 1+3*eps).IsEmpty())
	require.False(t, Open[float64, floats](1, 2).IsEmpty())
	require.True(t, Closed[float64, floats](1, 1+eps).Contains(1+eps))

	var d32 Float[float32]
	require.True(t, d32.NothingBetween(1, 1+float32(0x1p-23)))
	require.False(t, d32.NothingBetween(1, 1.001))
}

func TestDenseDomain(t *testing.T) {
	// Over a dense domain no open interval collapses.
	type reals = Dense[float64]
	require.False(t, Open[float64, reals](1, 1+0x1p-52).IsEmpty())
	require.False(t, Closed[float64, reals](1, 10).Equal(ClosedOpen[float64, reals](1, 10)))

	// Strings are dense: between "a" and "b" lies "aa".
	type words = Dense[string]
	require.False(t, Open[string, words]("a", "b").IsEmpty())
	require.True(t, Open[string, words]("a", "b").Contains("aa"))
	require.True(t, ClosedOpen[string, words]("b", "a").IsEmpty())
}

func TestTimesDomain(t *testing.T) {
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	intv := ClosedOpen[time.Time, Times](t0, t0.Add(time.Hour))
	require.True(t, intv.Contains(t0))
	require.True(t, intv.Contains(t0.Add(59*time.Minute)))
	require.False(t, intv.Contains(t0.Add(time.Hour)))

	// Nanosecond adjacency: nothing lies strictly between consecutive
	// instants.
	require.True(t, Open[time.Time, Times](t0, t0.Add(time.Nanosecond)).IsEmpty())
	require.False(t, Open[time.Time, Times](t0, t0.Add(2*time.Nanosecond)).IsEmpty())
	require.True(t, ClosedOpen[time.Time, Times](t0, t0.Add(time.Nanosecond)).
		Equal(Single[time.Time, Times](t0)))
}

func TestDatesDomain(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}
	// At day granularity, consecutive days are adjacent: March [10,15)
	// equals March [10,14].
	require.True(t, ClosedOpen[time.Time, Dates](day(10), day(15)).
		Equal(Closed[time.Time, Dates](day(10), day(14))))
	require.True(t, Open[time.Time, Dates](day(10), day(11)).IsEmpty())
	require.False(t, Open[time.Time, Dates](day(10), day(12)).IsEmpty())
}

func TestDurationsDomain(t *testing.T) {
	intv := Closed[time.Duration, Durations](time.Second, time.Minute)
	require.True(t, intv.Contains(30*time.Second))
	require.False(t, intv.Contains(time.Hour))
	require.True(t, Open[time.Duration, Durations](5, 6).IsEmpty())
	require.True(t, ClosedOpen[time.Duration, Durations](time.Second, time.Minute).
		Equal(Closed[time.Duration, Durations](time.Second, time.Minute-time.Nanosecond)))
}

func TestDecimalsDomain(t *testing.T) {
	dec := decimal.RequireFromString
	intv := ClosedOpen[decimal.Decimal, Decimals](dec("1.5"), dec("10.25"))
	require.True(t, intv.Contains(dec("1.5")))
	require.True(t, intv.Contains(dec("10.2499999999")))
	require.False(t, intv.Contains(dec("10.25")))

	// Decimals are dense; bound encodings never collapse.
	require.False(t, Open[decimal.Decimal, Decimals](dec("1"), dec("1.000000001")).IsEmpty())
	require.False(t, intv.Equal(Closed[decimal.Decimal, Decimals](dec("1.5"), dec("10.25"))))

	// Distinct representations of the same number compare equal.
	require.True(t, Single[decimal.Decimal, Decimals](dec("1.50")).Contains(dec("1.5")))
}
