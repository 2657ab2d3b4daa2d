// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"errors"

	"github.com/creachadair/chop"
)

// ErrExtraInput is reported by ParseString and ParseBytes when non-blank
// input remains after the first complete value.
var ErrExtraInput = errors.New("extra input after value")

// maxDepth bounds object and array nesting to keep the recursive parser
// within a sane stack budget.
const maxDepth = 200

// ParseString parses s as a complete JSON document. If non-blank input
// follows the first value, ParseString returns the value along with
// ErrExtraInput.
func ParseString(s string) (Value, error) {
	v := chop.String(s)
	return parseDocument(&v)
}

// ParseBytes parses data as a complete JSON document. If non-blank input
// follows the first value, ParseBytes returns the value along with
// ErrExtraInput.
func ParseBytes(data []byte) (Value, error) {
	v := chop.Bytes(data)
	return parseDocument(&v)
}

// Parse parses a single JSON value from the front of v and advances v
// past it, leaving any trailing input in place. On failure v is
// unchanged and the error is a *chop.SyntaxError whose offset locates
// the failure in the original buffer.
func Parse(v *chop.View) (Value, error) { return parseValue(v, 0) }

func parseDocument(v *chop.View) (Value, error) {
	val, err := parseValue(v, 0)
	if err != nil {
		return nil, err
	}
	if rest := v.TrimLeft(); !rest.IsEmpty() {
		return val, ErrExtraInput
	}
	return val, nil
}

// parseValue dispatches on the first non-blank byte of v. On failure v
// is restored to its state before the call, including any leading
// whitespace trimmed ahead of dispatch.
func parseValue(v *chop.View, depth int) (Value, error) {
	save := *v
	val, err := parseToken(v, depth)
	if err != nil {
		*v = save
		return nil, err
	}
	return val, nil
}

func parseToken(v *chop.View, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, chop.Errorf(v.Span().Pos, chop.ErrMalformed, "exceeds maximum nesting depth")
	}
	*v = v.TrimLeft()
	if v.IsEmpty() {
		return nil, chop.Errorf(v.Span().Pos, chop.ErrMalformed, "unexpected end of input")
	}
	switch v.Front() {
	case '{':
		return parseObject(v, depth)
	case '[':
		return parseArray(v, depth)
	case '"':
		s, err := parseString(v)
		if err != nil {
			return nil, err
		}
		return s, nil
	case 'n':
		if err := eatLiteral(v, "null"); err != nil {
			return nil, err
		}
		return Null{}, nil
	case 't':
		if err := eatLiteral(v, "true"); err != nil {
			return nil, err
		}
		return Bool(true), nil
	case 'f':
		if err := eatLiteral(v, "false"); err != nil {
			return nil, err
		}
		return Bool(false), nil
	default:
		return parseNumber(v)
	}
}

// eatLiteral consumes lit from the front of v. The literal must be
// complete: a match followed by anything other than whitespace, end of
// input, or a structural byte is a mismatch, so "nullfoo" does not eat
// "null". On failure v is unchanged.
func eatLiteral(v *chop.View, lit string) error {
	save := *v
	if err := v.EatString(lit); err != nil {
		return err
	}
	if !v.IsEmpty() && !isTerminator(v.Front()) {
		*v = save
		return chop.Errorf(save.Span().Pos, chop.ErrMismatch, "%q is not a complete token", lit)
	}
	return nil
}

// isTerminator reports whether b may legitimately follow a scalar token.
func isTerminator(b byte) bool {
	return chop.IsSpace(b) || b == ',' || b == ']' || b == '}' || b == ':'
}

// parseObject consumes a {...} object.
// Precondition: v begins with "{".
func parseObject(v *chop.View, depth int) (Value, error) {
	save := *v
	*v = v.Drop(1).TrimLeft()

	var obj Object
	if v.IsEmpty() {
		*v = save
		return nil, chop.Errorf(save.Span().Pos, chop.ErrUnbalanced, "unterminated object")
	}
	if v.Front() == '}' {
		*v = v.Drop(1)
		return obj, nil
	}
	for {
		*v = v.TrimLeft()
		if v.IsEmpty() || v.Front() != '"' {
			off := v.Span().Pos
			*v = save
			return nil, chop.Errorf(off, chop.ErrMalformed, "want object key")
		}
		key, err := parseString(v)
		if err != nil {
			*v = save
			return nil, err
		}
		*v = v.TrimLeft()
		if err := v.Eat(':'); err != nil {
			*v = save
			return nil, err
		}
		val, err := parseValue(v, depth+1)
		if err != nil {
			*v = save
			return nil, err
		}
		obj.Members = append(obj.Members, &Member{Key: key, Value: val})

		*v = v.TrimLeft()
		if v.IsEmpty() {
			*v = save
			return nil, chop.Errorf(save.Span().Pos, chop.ErrUnbalanced, "unterminated object")
		}
		switch c := v.Front(); c {
		case ',':
			*v = v.Drop(1)
		case '}':
			*v = v.Drop(1)
			return obj, nil
		default:
			off := v.Span().Pos
			*v = save
			return nil, chop.Errorf(off, chop.ErrMalformed, `want "," or "}" in object, got %q`, c)
		}
	}
}

// parseArray consumes a [...] array.
// Precondition: v begins with "[".
func parseArray(v *chop.View, depth int) (Value, error) {
	save := *v
	*v = v.Drop(1).TrimLeft()

	arr := Array{}
	if v.IsEmpty() {
		*v = save
		return nil, chop.Errorf(save.Span().Pos, chop.ErrUnbalanced, "unterminated array")
	}
	if v.Front() == ']' {
		*v = v.Drop(1)
		return arr, nil
	}
	for {
		val, err := parseValue(v, depth+1)
		if err != nil {
			*v = save
			return nil, err
		}
		arr = append(arr, val)

		*v = v.TrimLeft()
		if v.IsEmpty() {
			*v = save
			return nil, chop.Errorf(save.Span().Pos, chop.ErrUnbalanced, "unterminated array")
		}
		switch c := v.Front(); c {
		case ',':
			*v = v.Drop(1)
		case ']':
			*v = v.Drop(1)
			return arr, nil
		default:
			off := v.Span().Pos
			*v = save
			return nil, chop.Errorf(off, chop.ErrMalformed, `want "," or "]" in array, got %q`, c)
		}
	}
}

// parseString consumes a quoted string and returns its raw content,
// escape sequences intact. A backslash shields the following byte from
// terminating the scan, so escaped quotation marks do not end the string.
// Precondition: v begins with a quotation mark.
func parseString(v *chop.View) (String, error) {
	save := *v
	*v = v.Drop(1)

	n := 0
	for n < v.Len() {
		switch v.At(n) {
		case '\\':
			n += 2
			continue
		case '"':
			body := v.Take(n).Text()
			*v = v.Drop(n + 1)
			return String{raw: body}, nil
		}
		n++
	}
	*v = save
	return String{}, chop.Errorf(save.Span().Pos, chop.ErrMalformed, "unterminated string")
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// parseNumber consumes a number token using the JSON grammar: an optional
// sign, an integer part that is either 0 or a nonzero digit followed by
// digits, an optional fraction with at least one digit, and an optional
// decimal exponent. The exponent is applied by stepwise multiplication or
// division by ten.
//
// The token must be followed by whitespace, end of input, or a structural
// byte; otherwise the number is malformed and v is left unchanged.
func parseNumber(v *chop.View) (Value, error) {
	save := *v

	sign := 1.0
	if v.Front() == '-' {
		sign = -1
		*v = v.Drop(1)
	}
	if v.IsEmpty() {
		*v = save
		return nil, chop.Errorf(save.Span().Pos, chop.ErrMalformed, "incomplete number")
	}

	var x float64
	switch c := v.Front(); {
	case c == '0':
		*v = v.Drop(1)
		// A leading zero must be the only integer digit: 0.12 is OK, 01.2
		// is not.
		if !v.IsEmpty() && isDigit(v.Front()) {
			off := v.Span().Pos
			*v = save
			return nil, chop.Errorf(off, chop.ErrMalformed, "extra leading zeroes")
		}
	case '1' <= c && c <= '9':
		x = integer(v)
	default:
		off := v.Span().Pos
		*v = save
		return nil, chop.Errorf(off, chop.ErrMalformed, "want digit, got %q", c)
	}

	if !v.IsEmpty() && v.Front() == '.' {
		*v = v.Drop(1)
		if v.IsEmpty() || !isDigit(v.Front()) {
			off := v.Span().Pos
			*v = save
			return nil, chop.Errorf(off, chop.ErrMalformed, "no digits after decimal point")
		}
		x += fraction(v)
	}

	esign, exp := 1, 0
	if !v.IsEmpty() && (v.Front() == 'e' || v.Front() == 'E') {
		*v = v.Drop(1)
		if !v.IsEmpty() && (v.Front() == '+' || v.Front() == '-') {
			if v.Front() == '-' {
				esign = -1
			}
			*v = v.Drop(1)
		}
		if v.IsEmpty() || !isDigit(v.Front()) {
			off := v.Span().Pos
			*v = save
			return nil, chop.Errorf(off, chop.ErrMalformed, "missing exponent digits")
		}
		for !v.IsEmpty() && isDigit(v.Front()) {
			exp = 10*exp + int(v.Front()-'0')
			if exp > 5000 {
				exp = 5000 // past this the result saturates to 0 or Inf anyway
			}
			*v = v.Drop(1)
		}
	}

	if !v.IsEmpty() && !isTerminator(v.Front()) {
		off := v.Span().Pos
		*v = save
		return nil, chop.Errorf(off, chop.ErrMalformed, "trailing garbage after number")
	}

	num := sign * x
	for ; exp > 0; exp-- {
		if esign > 0 {
			num *= 10
		} else {
			num /= 10
		}
	}
	return Number(num), nil
}

// integer accumulates a run of decimal digits as an integer value.
func integer(v *chop.View) float64 {
	var x float64
	for !v.IsEmpty() && isDigit(v.Front()) {
		x = 10*x + float64(v.Front()-'0')
		*v = v.Drop(1)
	}
	return x
}

// fraction accumulates a run of decimal digits as successively smaller
// decimal places.
func fraction(v *chop.View) float64 {
	var x float64
	e := 0.1
	for !v.IsEmpty() && isDigit(v.Front()) {
		x += float64(v.Front()-'0') * e
		e /= 10
		*v = v.Drop(1)
	}
	return x
}
