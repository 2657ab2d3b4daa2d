// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package chop

import "go4.org/mem"

// IsSpace reports whether b is a whitespace byte. The whitespace set is
// the JSON-compatible one: space, tab, newline, carriage return, form
// feed, and vertical tab.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// TrimLeft returns v with leading whitespace removed.
func (v View) TrimLeft() View {
	for !v.IsEmpty() && IsSpace(v.Front()) {
		v.pos++
	}
	return v
}

// TrimRight returns v with trailing whitespace removed.
func (v View) TrimRight() View {
	for !v.IsEmpty() && IsSpace(v.Back()) {
		v.end--
	}
	return v
}

// TrimSpace returns v with leading and trailing whitespace removed.
func (v View) TrimSpace() View { return v.TrimLeft().TrimRight() }

// HasPrefix reports whether the window begins with s.
func (v View) HasPrefix(s string) bool { return mem.HasPrefix(v.RO(), mem.S(s)) }

// Eat consumes c from the front of v and advances v past it. If v is
// empty or begins with a different byte, Eat reports a *SyntaxError
// wrapping ErrMismatch and v is unchanged.
func (v *View) Eat(c byte) error {
	if v.IsEmpty() {
		return Errorf(v.pos, ErrMismatch, "want %q, got end of input", c)
	} else if got := v.Front(); got != c {
		return Errorf(v.pos, ErrMismatch, "want %q, got %q", c, got)
	}
	v.pos++
	return nil
}

// EatString consumes the literal s from the front of v and advances v
// past it. Consumption is all-or-nothing: on any mismatch, even after a
// matching proper prefix, v is unchanged and EatString reports a
// *SyntaxError wrapping ErrMismatch.
func (v *View) EatString(s string) error {
	if !v.HasPrefix(s) {
		return Errorf(v.pos, ErrMismatch, "want %q, got %q", s, v.Take(len(s)).Text())
	}
	v.pos += len(s)
	return nil
}
