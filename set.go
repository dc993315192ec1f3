// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"iter"
	"slices"
	"strings"
)

// A Policy decides how a [Set] combines intervals that meet during a
// merge. The two implementations are [Joining], which coalesces intervals
// that overlap or merely touch, and [Separating], which coalesces only
// true overlap and keeps touching intervals as two adjacent entries.
//
// Policies are zero-sized marker types selected as a type parameter of
// [Set]; the same values stored under different policies produce sets of
// different types.
type Policy[T any, D Domain[T]] interface {
	// coalesce combines acc with the next interval in sort order.
	// ok is false when next must start a new stored interval.
	coalesce(acc, next Interval[T, D]) (merged Interval[T, D], ok bool)

	// appendable reports whether a sorted batch starting at first can be
	// merged after a set ending at last without revisiting stored
	// intervals.
	appendable(last, first Interval[T, D]) bool
}

// Joining is the [Policy] under which intervals that overlap or touch
// coalesce into one stored interval:
//
//	  {[1      3)          }
//	+       [2      4)
//	+                 [4 5)
//	= {[1                5)}
type Joining[T any, D Domain[T]] struct{}

func (Joining[T, D]) coalesce(acc, next Interval[T, D]) (Interval[T, D], bool) {
	return acc.Union(next)
}

func (Joining[T, D]) appendable(last, first Interval[T, D]) bool {
	return last.StrictlyLeftOfInterval(first) && !last.Contiguous(first)
}

// Separating is the [Policy] under which overlapping intervals coalesce
// but touching ones stay separate:
//
//	  {[1      3)          }
//	+       [2      4)
//	+                 [4 5)
//	= {[1           4)[4 5)}
type Separating[T any, D Domain[T]] struct{}

func (Separating[T, D]) coalesce(acc, next Interval[T, D]) (Interval[T, D], bool) {
	if acc.StrictlyLeftOfInterval(next) {
		return acc, false
	}
	return acc.ConvexHull(next), true
}

func (Separating[T, D]) appendable(last, first Interval[T, D]) bool {
	return last.StrictlyLeftOfInterval(first)
}

// A Set is a sorted sequence of disjoint non-empty intervals,
// representing an arbitrary subset of the domain. After every operation:
//
//   - the stored intervals are sorted by lower bound;
//   - no two stored intervals overlap;
//   - under [Joining], no two stored intervals even touch;
//   - no stored interval is empty.
//
// The zero Set is an empty set ready to use.
type Set[T any, D Domain[T], P Policy[T, D]] struct {
	intervals []Interval[T, D]
}

// NewSet returns a set holding the values of the given intervals,
// combined under the set's policy.
func NewSet[T any, D Domain[T], P Policy[T, D]](ivs ...Interval[T, D]) Set[T, D, P] {
	var s Set[T, D, P]
	s.Extend(ivs...)
	return s
}

// Len returns the number of stored intervals. Note that the same values
// may be stored as a different number of intervals under a different
// policy.
func (s *Set[T, D, P]) Len() int { return len(s.intervals) }

// IsEmpty reports whether the set contains no value.
func (s *Set[T, D, P]) IsEmpty() bool { return len(s.intervals) == 0 }

// All returns an iterator over the stored intervals, left to right.
func (s *Set[T, D, P]) All() iter.Seq[Interval[T, D]] {
	return slices.Values(s.intervals)
}

// Clone returns a copy of s.
func (s *Set[T, D, P]) Clone() Set[T, D, P] {
	return Set[T, D, P]{intervals: slices.Clone(s.intervals)}
}

// Clear removes all values from s.
func (s *Set[T, D, P]) Clear() { s.intervals = nil }

// Add adds the values of iv to the set. To add several intervals, a
// single [Set.Extend] call is cheaper than repeated Adds.
func (s *Set[T, D, P]) Add(iv Interval[T, D]) {
	if iv.IsEmpty() {
		return
	}
	s.merge([]Interval[T, D]{iv})
}

// Extend adds the values of all the given intervals to the set. The
// intervals may be unsorted, overlapping, or empty; the set re-establishes
// its invariant in one merge pass after sorting the batch.
func (s *Set[T, D, P]) Extend(ivs ...Interval[T, D]) {
	batch := make([]Interval[T, D], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			batch = append(batch, iv)
		}
	}
	if len(batch) == 0 {
		return
	}
	slices.SortStableFunc(batch, func(a, b Interval[T, D]) int {
		c, _ := a.Compare(b)
		return c
	})
	s.merge(batch)
}

// merge folds a sorted batch of non-empty, possibly overlapping intervals
// into the stored sequence. When the whole batch lies past the last
// stored interval it is coalesced and appended in place; otherwise the
// storage is swapped out and rebuilt by draining both sequences through
// the leftmost merge, one allocation in total.
func (s *Set[T, D, P]) merge(batch []Interval[T, D]) {
	var p P
	if len(s.intervals) == 0 || p.appendable(s.intervals[len(s.intervals)-1], batch[0]) {
		s.intervals = coalesceInto[T, D, P](s.intervals, slices.Values(batch))
		return
	}
	old := s.intervals
	s.intervals = coalesceInto[T, D, P](
		make([]Interval[T, D], 0, len(old)+len(batch)),
		mergeLeftmost(slices.Values(old), slices.Values(batch)),
	)
}

// coalesceInto appends the sorted intervals of seq to dst, combining
// consecutive ones whenever the policy allows.
func coalesceInto[T any, D Domain[T], P Policy[T, D]](dst []Interval[T, D], seq iter.Seq[Interval[T, D]]) []Interval[T, D] {
	var p P
	var acc Interval[T, D]
	have := false
	for e := range seq {
		if !have {
			acc, have = e, true
			continue
		}
		if m, ok := p.coalesce(acc, e); ok {
			acc = m
		} else {
			dst = append(dst, acc)
			acc = e
		}
	}
	if have {
		dst = append(dst, acc)
	}
	return dst
}

// Remove removes the values of iv from the set. At most one stored
// interval can be split in two; everything to the right of the split is
// unaffected, so the scan stops there.
func (s *Set[T, D, P]) Remove(iv Interval[T, D]) {
	if iv.IsEmpty() || len(s.intervals) == 0 {
		return
	}
	out := make([]Interval[T, D], 0, len(s.intervals)+1)
	for i, stored := range s.intervals {
		if iv.StrictlyLeftOfInterval(stored) {
			// Everything from here on lies past iv.
			out = append(out, s.intervals[i:]...)
			break
		}
		d := stored.Difference(iv)
		if second, ok := d.Second(); ok {
			out = append(out, d.First(), second)
			out = append(out, s.intervals[i+1:]...)
			break
		}
		if rest := d.First(); !rest.IsEmpty() {
			out = append(out, rest)
		}
	}
	s.intervals = out
}

// Difference returns a new set holding the values of s without the
// values of iv.
func (s *Set[T, D, P]) Difference(iv Interval[T, D]) Set[T, D, P] {
	out := s.Clone()
	out.Remove(iv)
	return out
}

// DifferenceSet returns a new set holding the values of s without the
// values of other.
func (s *Set[T, D, P]) DifferenceSet(other *Set[T, D, P]) Set[T, D, P] {
	out := s.Clone()
	for _, iv := range other.intervals {
		out.Remove(iv)
	}
	return out
}

// Contains reports whether v is in the set.
func (s *Set[T, D, P]) Contains(v T) bool {
	for _, iv := range s.intervals {
		if iv.Contains(v) {
			return true
		}
		if iv.StrictlyRightOf(v) {
			// v lies before this interval, and the rest are further right.
			break
		}
	}
	return false
}

// ContainsInterval reports whether every value of iv is in the set. A
// single query interval may be covered by several stored intervals when
// they touch, so the walk keeps the not-yet-covered remainder of iv and
// fails as soon as a gap opens before the remainder's lower bound.
func (s *Set[T, D, P]) ContainsInterval(iv Interval[T, D]) bool {
	rem := iv
	for _, stored := range s.intervals {
		if rem.IsEmpty() {
			return true
		}
		if stored.StrictlyLeftOfInterval(rem) {
			continue
		}
		d := rem.Difference(stored)
		if _, ok := d.Second(); ok {
			// stored starts after rem's lower bound: the left piece can
			// never be covered by later intervals.
			return false
		}
		rem = d.First()
		if !rem.IsEmpty() && !stored.StrictlyLeftOfInterval(rem) {
			// The leftover lies left of stored, a gap.
			return false
		}
	}
	return rem.IsEmpty()
}

// ContainsSet reports whether every value of other is in s: subtracting
// each of s's intervals from a copy of other must leave nothing.
func (s *Set[T, D, P]) ContainsSet(other *Set[T, D, P]) bool {
	rest := other.Clone()
	for _, iv := range s.intervals {
		rest.Remove(iv)
	}
	return rest.IsEmpty()
}

// IntersectionInterval returns a new set holding the values common to s
// and iv.
func (s *Set[T, D, P]) IntersectionInterval(iv Interval[T, D]) Set[T, D, P] {
	return Set[T, D, P]{intervals: s.intersectionSlice(nil, iv)}
}

// IntersectionSet returns a new set holding the values common to s and
// other.
func (s *Set[T, D, P]) IntersectionSet(other *Set[T, D, P]) Set[T, D, P] {
	var out []Interval[T, D]
	// other's intervals are sorted and disjoint, so the pieces come out
	// already sorted.
	for _, iv := range other.intervals {
		out = s.intersectionSlice(out, iv)
	}
	return Set[T, D, P]{intervals: out}
}

func (s *Set[T, D, P]) intersectionSlice(dst []Interval[T, D], iv Interval[T, D]) []Interval[T, D] {
	for _, stored := range s.intervals {
		if iv.StrictlyLeftOfInterval(stored) {
			// stored lies entirely past iv; so does everything after it.
			break
		}
		if x := stored.Intersection(iv); !x.IsEmpty() {
			dst = append(dst, x)
		}
	}
	return dst
}

// ConvexHull returns the smallest single interval containing all values
// of the set.
func (s *Set[T, D, P]) ConvexHull() Interval[T, D] {
	if len(s.intervals) == 0 {
		return Empty[T, D]()
	}
	// First element holds the minimum lower bound, last the maximum upper.
	return s.intervals[0].ConvexHull(s.intervals[len(s.intervals)-1])
}

// Equal reports whether the two sets store the same intervals in the same
// order. Two sets built under the same policy from the same values always
// converge to the same stored form, so this is value equality for them.
func (s *Set[T, D, P]) Equal(other *Set[T, D, P]) bool {
	return slices.EqualFunc(s.intervals, other.intervals,
		func(a, b Interval[T, D]) bool { return a.Equal(b) })
}

// StrictlyLeftOf reports whether every value in the set is < x.
// Vacuously true for an empty set.
func (s *Set[T, D, P]) StrictlyLeftOf(x T) bool {
	return s.IsEmpty() || s.intervals[len(s.intervals)-1].StrictlyLeftOf(x)
}

// LeftOf reports whether every value in the set is <= x.
func (s *Set[T, D, P]) LeftOf(x T) bool {
	return s.IsEmpty() || s.intervals[len(s.intervals)-1].LeftOf(x)
}

// StrictlyRightOf reports whether x is < every value in the set.
func (s *Set[T, D, P]) StrictlyRightOf(x T) bool {
	return s.IsEmpty() || s.intervals[0].StrictlyRightOf(x)
}

// RightOf reports whether x is <= every value in the set.
func (s *Set[T, D, P]) RightOf(x T) bool {
	return s.IsEmpty() || s.intervals[0].RightOf(x)
}

// StrictlyLeftOfInterval reports whether every value in the set is < every
// value of iv.
func (s *Set[T, D, P]) StrictlyLeftOfInterval(iv Interval[T, D]) bool {
	return s.IsEmpty() || s.intervals[len(s.intervals)-1].StrictlyLeftOfInterval(iv)
}

// StrictlyRightOfInterval reports whether every value in the set is >
// every value of iv.
func (s *Set[T, D, P]) StrictlyRightOfInterval(iv Interval[T, D]) bool {
	return s.IsEmpty() || s.intervals[0].StrictlyRightOfInterval(iv)
}

// StrictlyLeftOfSet reports whether every value in s is < every value in
// other.
func (s *Set[T, D, P]) StrictlyLeftOfSet(other *Set[T, D, P]) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return true
	}
	return s.intervals[len(s.intervals)-1].StrictlyLeftOfInterval(other.intervals[0])
}

// StrictlyRightOfSet reports whether every value in s is > every value in
// other.
func (s *Set[T, D, P]) StrictlyRightOfSet(other *Set[T, D, P]) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return true
	}
	return s.intervals[0].StrictlyRightOfInterval(other.intervals[len(other.intervals)-1])
}

// String renders the set as its stored intervals, such as
// "{[1, 3), [5, 7)}".
func (s *Set[T, D, P]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(iv.String())
	}
	b.WriteByte('}')
	return b.String()
}

// checkInvariants verifies the stored-sequence invariant: sorted,
// disjoint, nothing empty, and (depending on policy) nothing mergeable.
// The public operations preserve the invariant; this is a test hook.
func (s *Set[T, D, P]) checkInvariants() error {
	var p P
	for i, iv := range s.intervals {
		if iv.IsEmpty() {
			return errSetInvariant("empty interval stored", i)
		}
		if i == 0 {
			continue
		}
		prev := s.intervals[i-1]
		if !prev.StrictlyLeftOfInterval(iv) {
			return errSetInvariant("intervals out of order or overlapping", i)
		}
		if _, ok := p.coalesce(prev, iv); ok && !p.appendable(prev, iv) {
			return errSetInvariant("adjacent intervals not coalesced", i)
		}
	}
	return nil
}

type setInvariantError struct {
	msg   string
	index int
}

func errSetInvariant(msg string, index int) error {
	return &setInvariantError{msg: msg, index: index}
}

func (e *setInvariantError) Error() string {
	return "interval: set invariant broken: " + e.msg
}
