// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval_test

import (
	"fmt"
	"strconv"

	"github.com/jba/interval"
)

type ints = interval.Discrete[int]

func ExampleInterval() {
	iv := interval.ClosedOpen[int, ints](1, 10)
	fmt.Println(iv)
	fmt.Println(iv.Contains(9), iv.Contains(10))
	// Over the ints, [1, 10) and [1, 9] hold the same values.
	fmt.Println(iv.Equal(interval.Closed[int, ints](1, 9)))
	// Output:
	// [1, 10)
	// true false
	// true
}

func ExampleInterval_Difference() {
	a := interval.ClosedOpen[int, ints](1, 20)
	b := interval.OpenClosed[int, ints](10, 15)
	fmt.Println(a.Difference(b))
	// Output:
	// ([1, 10] + (15, 20))
}

func ExampleSet() {
	var joining interval.Set[int, ints, interval.Joining[int, ints]]
	joining.Extend(
		interval.ClosedOpen[int, ints](1, 3),
		interval.ClosedOpen[int, ints](2, 4),
		interval.ClosedOpen[int, ints](4, 5),
	)
	fmt.Println(joining.String())

	// The same intervals under the separating policy: touching
	// intervals stay apart.
	var separating interval.Set[int, ints, interval.Separating[int, ints]]
	separating.Extend(
		interval.ClosedOpen[int, ints](1, 3),
		interval.ClosedOpen[int, ints](2, 4),
		interval.ClosedOpen[int, ints](4, 5),
	)
	fmt.Println(separating.String())
	// Output:
	// {[1, 5)}
	// {[1, 4), [4, 5)}
}

func ExampleParse() {
	iv, err := interval.Parse[int, ints]("[1, 10)", strconv.Atoi)
	if err != nil {
		panic(err)
	}
	fmt.Println(iv.Contains(5), iv.Contains(10))
	// Output:
	// true false
}

func ExampleCursor() {
	iv := interval.OpenClosed[int, ints](0, 5)
	for v := range interval.NewCursor(iv, interval.IntSteps[int]{}).All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 1 2 3 4 5
}
