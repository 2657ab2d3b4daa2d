// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package chop

import "iter"

// A Splitter describes how to divide a view into fields: a required field
// delimiter, an optional Open/Close pair marking nested regions within
// which the delimiter has no effect, and an optional Escape byte that
// neutralizes the special meaning of whatever byte follows it, at any
// nesting level. A zero Open disables nesting; a zero Escape disables
// escape processing.
type Splitter struct {
	Delim       byte
	Open, Close byte
	Escape      byte
}

// Next scans v for the next unquoted, unescaped delimiter and returns the
// field preceding it. On success v is advanced past the delimiter, which
// is consumed and discarded. If the input is exhausted without finding a
// delimiter, the field is the remainder of v and v becomes empty.
//
// If the input ends while an Open delimiter is unmatched, Next reports a
// *SyntaxError wrapping ErrUnbalanced whose offset points at the
// outermost unmatched opener, and v is unchanged.
//
// An Escape equal to Delim, Open, or Close would shield every occurrence
// of that byte from ever matching; Next reports ErrMalformed for such a
// configuration.
func (s Splitter) Next(v *View) (View, error) {
	if s.Escape != 0 && (s.Escape == s.Delim || s.Escape == s.Open || s.Escape == s.Close) {
		return View{}, Errorf(v.pos, ErrMalformed, "escape %q collides with a delimiter", s.Escape)
	}
	n := v.Len()
	level, openAt := 0, 0

	i := 0
	for i < n {
		b := v.At(i)
		switch {
		case s.Escape != 0 && b == s.Escape:
			// The escaped byte is skipped without interpretation, even if it
			// is the delimiter, the escape itself, or one of the pair.
			i += 2
			continue
		case level > 0:
			// Close is tested first so that Open == Close toggles.
			if b == s.Close {
				level--
			} else if b == s.Open {
				level++
			}
		case s.Open != 0 && b == s.Open:
			openAt = v.pos + i
			level = 1
		case b == s.Delim:
			field := View{src: v.src, pos: v.pos, end: v.pos + i}
			v.pos += i + 1
			return field, nil
		}
		i++
	}
	if level > 0 {
		return View{}, Errorf(openAt, ErrUnbalanced, "unmatched %q", s.Open)
	}
	field := *v
	v.pos = v.end
	return field, nil
}

// Split returns a lazy iterator over the fields of v, produced by
// repeatedly applying Next to a private cursor. The sequence is finite,
// single-pass, and not restartable; because splitting never modifies the
// buffer, a fresh call to Split walks the same input again.
//
// Leading whitespace is trimmed from the cursor before each field unless
// Open is itself a whitespace byte, and trailing whitespace is trimmed
// from each field unless Close is a whitespace byte. This permits
// whitespace-significant nested blocks while trimming ordinary fields.
//
// Iteration stops when the cursor is empty. If a scan fails, the iterator
// yields a zero View with the error and stops; the fields yielded before
// the failure are unaffected.
func (s Splitter) Split(v View) iter.Seq2[View, error] {
	return func(yield func(View, error) bool) {
		cur := v
		for {
			if !IsSpace(s.Open) {
				cur = cur.TrimLeft()
			}
			if cur.IsEmpty() {
				return
			}
			field, err := s.Next(&cur)
			if err != nil {
				yield(View{}, err)
				return
			}
			if !IsSpace(s.Close) {
				field = field.TrimRight()
			}
			if !yield(field, nil) {
				return
			}
		}
	}
}

// Fields returns an iterator over the fields of v separated by delim,
// with surrounding whitespace trimmed from each field. With no nesting
// pair and no escape byte a scan cannot fail, so no error is reported.
func Fields(v View, delim byte) iter.Seq[View] {
	return func(yield func(View) bool) {
		for field := range (Splitter{Delim: delim}).Split(v) {
			if !yield(field) {
				return
			}
		}
	}
}

// Chop extracts one balanced open...close token from the front of v,
// honoring escape within it, and advances v past the closing delimiter.
// The returned view spans the token contents, exclusive of the pair.
//
// Chop reports ErrMalformed if escape collides with either delimiter,
// ErrMismatch if v does not begin with open, and ErrUnbalanced if the
// input ends before the pair is rebalanced. On failure v is unchanged.
func Chop(v *View, open, close, escape byte) (View, error) {
	if escape != 0 && (open == escape || close == escape) {
		return View{}, Errorf(v.pos, ErrMalformed, "escape %q collides with a delimiter", escape)
	}
	save := *v
	if err := v.Eat(open); err != nil {
		return View{}, err
	}

	level := 1
	n := v.Len()
	i := 0
	for i < n {
		b := v.At(i)
		if escape != 0 && b == escape {
			i += 2
			continue
		}
		// Close is tested first in case open == close.
		if b == close {
			level--
			if level == 0 {
				tok := View{src: v.src, pos: v.pos, end: v.pos + i}
				v.pos += i + 1
				return tok, nil
			}
		} else if b == open {
			level++
		}
		i++
	}
	*v = save
	return View{}, Errorf(save.pos, ErrUnbalanced, "unmatched %q", open)
}
