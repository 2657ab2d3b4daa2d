// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package chop

import "go4.org/mem"

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// Int consumes an optionally-signed decimal integer from the front of v
// and advances v past it, leaving any trailing input in place. If v does
// not begin with an integer, or the value overflows int64, Int reports a
// *SyntaxError wrapping ErrMalformed and v is unchanged.
func Int(v *View) (int64, error) {
	n := 0
	if n < v.Len() && (v.At(n) == '-' || v.At(n) == '+') {
		n++
	}
	start := n
	for n < v.Len() && isDigit(v.At(n)) {
		n++
	}
	if n == start {
		return 0, Errorf(v.pos+n, ErrMalformed, "want digits, got %q", v.Drop(n).Take(1).Text())
	}
	z, err := mem.ParseInt(v.Take(n).RO(), 10, 64)
	if err != nil {
		return 0, Errorf(v.pos, ErrMalformed, "integer: %v", err)
	}
	*v = v.Drop(n)
	return z, nil
}

// Float consumes an optionally-signed decimal floating-point number from
// the front of v and advances v past it, leaving any trailing input in
// place. The accepted syntax is digits with an optional fraction and an
// optional decimal exponent; an exponent marker not followed by digits is
// not consumed. If v does not begin with a number, Float reports a
// *SyntaxError wrapping ErrMalformed and v is unchanged.
func Float(v *View) (float64, error) {
	n := 0
	if n < v.Len() && (v.At(n) == '-' || v.At(n) == '+') {
		n++
	}
	start := n
	for n < v.Len() && isDigit(v.At(n)) {
		n++
	}
	if n < v.Len() && v.At(n) == '.' {
		n++
		for n < v.Len() && isDigit(v.At(n)) {
			n++
		}
	}
	if n == start || (n == start+1 && v.At(start) == '.') {
		return 0, Errorf(v.pos+n, ErrMalformed, "want digits, got %q", v.Drop(n).Take(1).Text())
	}
	if n < v.Len() && (v.At(n) == 'e' || v.At(n) == 'E') {
		m := n + 1
		if m < v.Len() && (v.At(m) == '-' || v.At(m) == '+') {
			m++
		}
		if m < v.Len() && isDigit(v.At(m)) {
			for m < v.Len() && isDigit(v.At(m)) {
				m++
			}
			n = m
		}
	}
	x, err := mem.ParseFloat(v.Take(n).RO(), 64)
	if err != nil {
		return 0, Errorf(v.pos, ErrMalformed, "number: %v", err)
	}
	*v = v.Drop(n)
	return x, nil
}
