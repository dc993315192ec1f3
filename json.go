// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"encoding/json"
	"fmt"
)

// jsonInterval is the wire form of an Interval: a tagged union with one
// kind per boundary combination, so the encoding is self-describing and
// round-trips exactly through the constructors.
type jsonInterval[T any] struct {
	Kind  string `json:"kind"`
	Lower *T     `json:"lower,omitempty"`
	Upper *T     `json:"upper,omitempty"`
}

const (
	kindClosedClosed    = "closedClosed"
	kindClosedOpen      = "closedOpen"
	kindOpenOpen        = "openOpen"
	kindOpenClosed      = "openClosed"
	kindClosedUnbounded = "closedUnbounded"
	kindOpenUnbounded   = "openUnbounded"
	kindUnboundedClosed = "unboundedClosed"
	kindUnboundedOpen   = "unboundedOpen"
	kindDoublyUnbounded = "doublyUnbounded"
	kindEmpty           = "empty"
)

// MarshalJSON encodes the interval as a tagged union such as
// {"kind":"closedOpen","lower":1,"upper":10}. Every empty representation
// encodes as {"kind":"empty"}.
func (iv Interval[T, D]) MarshalJSON() ([]byte, error) {
	if iv.IsEmpty() {
		return json.Marshal(jsonInterval[T]{Kind: kindEmpty})
	}
	var w jsonInterval[T]
	if v, ok := iv.lower.value(); ok {
		w.Lower = &v
	}
	if v, ok := iv.upper.value(); ok {
		w.Upper = &v
	}
	switch {
	case iv.lower.kind == leftOf && iv.upper.kind == leftOf:
		w.Kind = kindClosedOpen
	case iv.lower.kind == leftOf && iv.upper.kind == rightOf:
		w.Kind = kindClosedClosed
	case iv.lower.kind == leftOf && iv.upper.kind == rightUnbounded:
		w.Kind = kindClosedUnbounded
	case iv.lower.kind == rightOf && iv.upper.kind == leftOf:
		w.Kind = kindOpenOpen
	case iv.lower.kind == rightOf && iv.upper.kind == rightOf:
		w.Kind = kindOpenClosed
	case iv.lower.kind == rightOf && iv.upper.kind == rightUnbounded:
		w.Kind = kindOpenUnbounded
	case iv.lower.kind == leftUnbounded && iv.upper.kind == leftOf:
		w.Kind = kindUnboundedOpen
	case iv.lower.kind == leftUnbounded && iv.upper.kind == rightOf:
		w.Kind = kindUnboundedClosed
	default:
		w.Kind = kindDoublyUnbounded
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the tagged union produced by MarshalJSON.
func (iv *Interval[T, D]) UnmarshalJSON(data []byte) error {
	var w jsonInterval[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	need := func(side string, p *T) (T, error) {
		if p == nil {
			var zero T
			return zero, fmt.Errorf("interval: kind %q requires a %s bound", w.Kind, side)
		}
		return *p, nil
	}
	var err error
	var lo, hi T
	switch w.Kind {
	case kindEmpty:
		*iv = Empty[T, D]()
		return nil
	case kindDoublyUnbounded:
		*iv = Full[T, D]()
		return nil
	case kindClosedUnbounded, kindOpenUnbounded:
		if lo, err = need("lower", w.Lower); err != nil {
			return err
		}
		if w.Kind == kindClosedUnbounded {
			*iv = From[T, D](lo)
		} else {
			*iv = Above[T, D](lo)
		}
		return nil
	case kindUnboundedClosed, kindUnboundedOpen:
		if hi, err = need("upper", w.Upper); err != nil {
			return err
		}
		if w.Kind == kindUnboundedClosed {
			*iv = To[T, D](hi)
		} else {
			*iv = Below[T, D](hi)
		}
		return nil
	case kindClosedClosed, kindClosedOpen, kindOpenOpen, kindOpenClosed:
		if lo, err = need("lower", w.Lower); err != nil {
			return err
		}
		if hi, err = need("upper", w.Upper); err != nil {
			return err
		}
		switch w.Kind {
		case kindClosedClosed:
			*iv = Closed[T, D](lo, hi)
		case kindClosedOpen:
			*iv = ClosedOpen[T, D](lo, hi)
		case kindOpenOpen:
			*iv = Open[T, D](lo, hi)
		default:
			*iv = OpenClosed[T, D](lo, hi)
		}
		return nil
	default:
		return fmt.Errorf("interval: unknown interval kind %q", w.Kind)
	}
}
