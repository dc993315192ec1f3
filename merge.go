// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "iter"

// mergeLeftmost interleaves two interval sequences, each already sorted
// per [Interval.Compare], into one sorted sequence. The merge is stable
// with the second sequence winning ties, and [Set] relies on exactly that
// tie-break to re-establish sortedness in a single pass.
func mergeLeftmost[T any, D Domain[T]](xs, ys iter.Seq[Interval[T, D]]) iter.Seq[Interval[T, D]] {
	return func(yield func(Interval[T, D]) bool) {
		nextX, stopX := iter.Pull(xs)
		defer stopX()
		nextY, stopY := iter.Pull(ys)
		defer stopY()

		x, okX := nextX()
		y, okY := nextY()
		for okX || okY {
			emitY := !okX
			if okX && okY {
				c, _ := y.Compare(x)
				emitY = c <= 0
			}
			if emitY {
				if !yield(y) {
					return
				}
				y, okY = nextY()
			} else {
				if !yield(x) {
					return
				}
				x, okX = nextX()
			}
		}
	}
}
