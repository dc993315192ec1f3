// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for _, test := range []struct {
		iv   Interval[int, ints]
		want string
	}{
		{Closed[int, ints](1, 10), "[1, 10]"},
		{ClosedOpen[int, ints](1, 10), "[1, 10)"},
		{Open[int, ints](1, 10), "(1, 10)"},
		{OpenClosed[int, ints](1, 10), "(1, 10]"},
		{From[int, ints](5), "[5,)"},
		{Above[int, ints](5), "(5,)"},
		{To[int, ints](5), "(, 5]"},
		{Below[int, ints](5), "(, 5)"},
		{Full[int, ints](), "(,)"},
		{Empty[int, ints](), "empty"},
		{ClosedOpen[int, ints](5, 5), "empty"},
		{Single[int, ints](-3), "[-3, -3]"},
	} {
		require.Equal(t, test.want, test.iv.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, orig := range []Interval[int, ints]{
		Closed[int, ints](1, 10),
		ClosedOpen[int, ints](1, 10),
		Open[int, ints](1, 10),
		OpenClosed[int, ints](1, 10),
		From[int, ints](5),
		Above[int, ints](5),
		To[int, ints](5),
		Below[int, ints](5),
		Full[int, ints](),
		Empty[int, ints](),
		Single[int, ints](-3),
	} {
		got, err := Parse[int, ints](orig.String(), strconv.Atoi)
		require.NoError(t, err, "input %q", orig.String())
		require.True(t, got.Equal(orig), "round trip of %q gave %v", orig.String(), got)
		// The round trip preserves the bound structure, not just the set.
		if !orig.IsEmpty() {
			require.Equal(t, orig, got)
		}
	}
}

func TestParseLenient(t *testing.T) {
	// Whitespace around values is ignored; the empty string is empty.
	got, err := Parse[int, ints]("[ 1 ,  10 )", strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, ClosedOpen[int, ints](1, 10), got)

	got, err = Parse[int, ints]("", strconv.Atoi)
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"1, 10",     // no brackets
		"[1, 10",    // no closing bracket
		"1, 10)",    // no opening bracket
		"[1 10)",    // no comma
		"[]",        // too short
		"[",         // too short
		"[1,]",      // unbounded upper bound must be ')'
		"(,5",       // no closing bracket
		"[,)",       // doubly unbounded must be '(,)'
		"(,]",       // doubly unbounded must be '(,)'
		"{1, 10}",   // wrong brackets
		"empty[1,)", // trailing garbage after a non-literal
	} {
		_, err := Parse[int, ints](input, strconv.Atoi)
		require.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}

	// A value the domain parser rejects surfaces as a BoundError wrapping
	// the parser's error.
	_, err := Parse[int, ints]("[1, abc)", strconv.Atoi)
	var be *BoundError
	require.ErrorAs(t, err, &be)
	var ne *strconv.NumError
	require.ErrorAs(t, err, &ne)
	require.False(t, errors.Is(err, ErrInvalidInput))

	_, err = Parse[int, ints]("[x, 10)", strconv.Atoi)
	require.ErrorAs(t, err, &be)
}
