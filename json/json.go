// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package json defines a tree model for JSON values and a recursive
// descent parser that builds it from in-memory text, using the view and
// splitting primitives of the chop package.
//
// # Values
//
// A Value is one of the concrete types Object, Array, String, Number,
// Bool, or Null. Object members are kept in input order and duplicate
// keys are preserved; Find returns the first member with a given key.
//
// String values retain the raw (still escaped) text between the source
// quotation marks. Decoding is explicit: call Unquote for a checked
// decode or Unescape for the panicking convenience form.
//
// # Parsing
//
// ParseString and ParseBytes parse a complete document and report
// ErrExtraInput if non-blank input follows the first value. Parse
// consumes a single value from the front of a chop.View, advancing the
// view so that further input can be parsed by the caller. All parse
// failures are *chop.SyntaxError values; a failed parse leaves the input
// view unchanged.
package json

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/chop/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value. The concrete types are Object,
// Array, String, Number, Bool, and Null.
type Value interface {
	// JSON returns the value rendered as compact JSON text.
	JSON() string
}

// Null represents the JSON null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// A Bool is a JSON Boolean constant.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a JSON number, represented as an IEEE 754 double.
type Number float64

// JSON satisfies the Value interface.
func (n Number) JSON() string {
	if n.IsInt() {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// IsInt reports whether n is representable as an int64.
func (n Number) IsInt() bool {
	f := float64(n)
	// The upper bound is exclusive: 2^63 is exactly representable as a
	// float64 but is one past MaxInt64, and MaxInt64 itself rounds up to
	// it when converted.
	return f == math.Trunc(f) && f >= math.MinInt64 && f < 1<<63
}

// Int returns n as an int64. It panics if n is not representable as an
// int64; use IsInt to check.
func (n Number) Int() int64 {
	if !n.IsInt() {
		panic(fmt.Sprintf("number %v is not an integer", float64(n)))
	}
	return int64(n)
}

// A String is a JSON string value. It records the raw text between the
// source quotation marks, with escape sequences intact.
type String struct{ raw string }

// NewString constructs a String whose decoded content is s.
func NewString(s string) String { return String{raw: string(escape.Quote(mem.S(s)))} }

// Raw returns the undecoded content of s, without quotation marks.
func (s String) Raw() string { return s.raw }

// JSON satisfies the Value interface.
func (s String) JSON() string { return `"` + s.raw + `"` }

// Unquote returns the decoded content of s, replacing escape sequences
// with their unescaped equivalents.
func (s String) Unquote() (string, error) {
	dec, err := escape.Unquote(mem.S(s.raw))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Unescape returns the decoded content of s, and panics if the content
// cannot be decoded.
func (s String) Unescape() string {
	dec, err := s.Unquote()
	if err != nil {
		panic(err)
	}
	return dec
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   String
	Value Value
}

// JSON renders the member as "key":value.
func (m Member) JSON() string { return m.Key.JSON() + ":" + m.Value.JSON() }

// An Object is a collection of key-value members, in input order.
// Duplicate keys are preserved as distinct members.
type Object struct {
	Members []*Member
}

// Len reports the number of members of o.
func (o Object) Len() int { return len(o.Members) }

// Find returns the first member of o whose key decodes to key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key.raw == key {
			return m
		}
		if strings.ContainsRune(m.Key.raw, '\\') {
			if dec, err := m.Key.Unquote(); err == nil && dec == key {
				return m
			}
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ToValue converts a plain Go value into a Value. It panics if v does not
// have one of the supported types:
//
//	nil            Null
//	bool           Bool
//	string         String
//	int, int64     Number
//	float64        Number
//	[]any          Array
//	map[string]any Object, members sorted by key
//	Value          itself
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case string:
		return NewString(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		var out Object
		for _, key := range slices.Sorted(maps.Keys(t)) {
			out.Members = append(out.Members, &Member{
				Key:   NewString(key),
				Value: ToValue(t[key]),
			})
		}
		return out
	case Value:
		return t
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
