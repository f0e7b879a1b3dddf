// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: The closed Index sum type (Position | Span) and Python-style
//       span normalization.
// Policy:
//   - Exhaustive dispatch over Index happens in resolve.go; this file
//     only defines the variants and their arithmetic.
//   - Span.Bounds mirrors Python's slice.indices exactly; implementers
//     must not tighten the documented clamping.

package core

import (
	"math"
	"strconv"
	"strings"
)

// Auto marks an unset Span bound, the analogue of Python's None inside
// a slice expression. Span{Auto, Auto, Auto} is the full view.
const Auto = math.MinInt

// Index is the closed sum of accepted index shapes: Position for a
// single element, Span for a sliced view. The set is sealed; Resolve
// dispatches exhaustively and rejects anything else with
// ErrUnsupportedIndex.
type Index interface {
	isIndex()
}

// Position selects a single element by integer position. Any integer is
// valid against a non-empty node: resolution wraps modulo the node's
// length (see WrapPosition).
type Position int

func (Position) isIndex() {}

// Span selects a contiguous (possibly strided, possibly reversed) view,
// with Python-slice semantics: negative bounds count from the end,
// out-of-range bounds clamp, Auto bounds take step-dependent defaults.
// A Step of Auto or 0 means 1; a negative Step reverses direction.
type Span struct {
	Start, Stop, Step int
}

func (Span) isIndex() {}

// NewSpan returns the view [start:stop] with implicit step 1.
func NewSpan(start, stop int) Span {
	return Span{Start: start, Stop: stop, Step: Auto}
}

// NewSpanStep returns the view [start:stop:step].
func NewSpanStep(start, stop, step int) Span {
	return Span{Start: start, Stop: stop, Step: step}
}

// FullSpan returns the identity view [:], covering every element.
func FullSpan() Span {
	return Span{Start: Auto, Stop: Auto, Step: Auto}
}

// SpanFrom returns the suffix view [start:].
func SpanFrom(start int) Span {
	return Span{Start: start, Stop: Auto, Step: Auto}
}

// SpanTo returns the prefix view [:stop].
func SpanTo(stop int) Span {
	return Span{Start: Auto, Stop: stop, Step: Auto}
}

// Bounds normalizes the span against a sequence of the given length,
// returning concrete start, stop and step values such that the selected
// positions are start, start+step, … while (step>0 && pos<stop) or
// (step<0 && pos>stop). Semantics match Python's slice.indices:
//
//   - step Auto/0 → 1; step < 0 walks backwards.
//   - Auto start/stop default to the step-appropriate sequence ends.
//   - Negative bounds are counted from the end, then clamped.
//   - Out-of-range bounds clamp to the sequence ends.
//
// Complexity: O(1). Bounds never fails: every Span is a valid (possibly
// empty) view of every length.
func (s Span) Bounds(length int) (start, stop, step int) {
	if length < 0 {
		length = 0
	}
	step = s.Step
	if step == Auto || step == 0 {
		step = 1
	}
	if step > 0 {
		start = adjustBound(s.Start, length, step, 0)
		stop = adjustBound(s.Stop, length, step, length)
	} else {
		start = adjustBound(s.Start, length, step, length-1)
		stop = adjustBound(s.Stop, length, step, -1)
	}

	return start, stop, step
}

// Count reports how many elements the span selects from a sequence of
// the given length. O(1).
func (s Span) Count(length int) int {
	start, stop, step := s.Bounds(length)
	if step > 0 {
		if start >= stop {
			return 0
		}
		return (stop-start-1)/step + 1
	}
	if start <= stop {
		return 0
	}

	return (start-stop-1)/(-step) + 1
}

// String renders the span in slice-expression notation, e.g. "[1:5]",
// "[::2]", "[:]", omitting Auto bounds.
func (s Span) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if s.Start != Auto {
		b.WriteString(strconv.Itoa(s.Start))
	}
	b.WriteByte(':')
	if s.Stop != Auto {
		b.WriteString(strconv.Itoa(s.Stop))
	}
	if s.Step != Auto && s.Step != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(s.Step))
	}
	b.WriteByte(']')

	return b.String()
}

// adjustBound resolves one span bound against length: Auto takes def,
// negative values count from the end, and everything clamps to the
// step-appropriate range ([0,length] forward, [-1,length-1] backward).
func adjustBound(v, length, step, def int) int {
	if v == Auto {
		return def
	}
	if v < 0 {
		v += length
		if v < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return v
	}
	if v >= length {
		if step < 0 {
			return length - 1
		}
		return length
	}

	return v
}
