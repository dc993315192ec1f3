// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"errors"
	"fmt"
	"strings"
)

// String renders the interval in bracket form: "[1, 10)", "(, 5]" for an
// unbounded lower bound, "[5,)" for an unbounded upper one, and the
// literal "empty" for an empty interval. [Parse] accepts the output.
func (iv Interval[T, D]) String() string {
	if iv.IsEmpty() {
		return "empty"
	}
	var b strings.Builder
	switch iv.lower.kind {
	case leftUnbounded:
		b.WriteByte('(')
	case leftOf:
		fmt.Fprintf(&b, "[%v", iv.lower.point)
	case rightOf:
		fmt.Fprintf(&b, "(%v", iv.lower.point)
	}
	switch iv.upper.kind {
	case leftOf:
		fmt.Fprintf(&b, ", %v)", iv.upper.point)
	case rightOf:
		fmt.Fprintf(&b, ", %v]", iv.upper.point)
	case rightUnbounded:
		b.WriteString(",)")
	}
	return b.String()
}

// ErrInvalidInput reports that the bracket or comma structure of a parsed
// interval is malformed. It does not cover endpoint values the domain
// parser rejects; those surface as a [BoundError].
var ErrInvalidInput = errors.New("interval: invalid input")

// A BoundError wraps the error returned by the per-domain value parser
// for one of the endpoint substrings.
type BoundError struct {
	Err error
}

func (e *BoundError) Error() string { return "interval: parsing bound: " + e.Err.Error() }

func (e *BoundError) Unwrap() error { return e.Err }

// Parse parses the bracket grammar produced by [Interval.String]:
// a leading '[' or '(', an optional lower value, a comma, an optional
// upper value, and a trailing ']' or ')'. A blank side is unbounded, and
// whitespace around a value is trimmed before parseValue is applied.
// The literal "empty", or an empty string, parses to the empty interval.
//
// Structure errors are reported as [ErrInvalidInput]; endpoint values
// rejected by parseValue are wrapped in a [*BoundError].
func Parse[T any, D Domain[T]](s string, parseValue func(string) (T, error)) (Interval[T, D], error) {
	if s == "empty" || s == "" {
		return Empty[T, D](), nil
	}
	if len(s) < 3 {
		return Empty[T, D](), ErrInvalidInput
	}
	opening, closing := s[0], s[len(s)-1]
	if (opening != '[' && opening != '(') || (closing != ']' && closing != ')') {
		return Empty[T, D](), ErrInvalidInput
	}
	inner := s[1 : len(s)-1]
	// The first comma separates the two bounds; it cannot be part of the
	// rendering of a bound value.
	loText, hiText, found := strings.Cut(inner, ",")
	if !found {
		return Empty[T, D](), ErrInvalidInput
	}
	var (
		lo, hi       T
		hasLo, hasHi bool
		err          error
	)
	if t := strings.TrimSpace(loText); t != "" {
		if lo, err = parseValue(t); err != nil {
			return Empty[T, D](), &BoundError{Err: err}
		}
		hasLo = true
	}
	if t := strings.TrimSpace(hiText); t != "" {
		if hi, err = parseValue(t); err != nil {
			return Empty[T, D](), &BoundError{Err: err}
		}
		hasHi = true
	}

	switch {
	case hasLo && hasHi:
		switch {
		case opening == '[' && closing == ']':
			return Closed[T, D](lo, hi), nil
		case opening == '[':
			return ClosedOpen[T, D](lo, hi), nil
		case closing == ']':
			return OpenClosed[T, D](lo, hi), nil
		default:
			return Open[T, D](lo, hi), nil
		}
	case hasLo:
		// An unbounded upper side must use ')'.
		if closing != ')' {
			return Empty[T, D](), ErrInvalidInput
		}
		if opening == '[' {
			return From[T, D](lo), nil
		}
		return Above[T, D](lo), nil
	case hasHi:
		if opening != '(' {
			return Empty[T, D](), ErrInvalidInput
		}
		if closing == ']' {
			return To[T, D](hi), nil
		}
		return Below[T, D](hi), nil
	default:
		if opening != '(' || closing != ')' {
			return Empty[T, D](), ErrInvalidInput
		}
		return Full[T, D](), nil
	}
}
