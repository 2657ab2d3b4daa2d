// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string bodies.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte region containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A valid
// surrogate pair of \uXXXX escapes decodes to the rune it denotes; invalid
// escapes and unpaired surrogates are replaced by the Unicode replacement
// rune. Unquote reports an error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		// Bytes up to the next escape have no encoded structure and can be
		// blitted verbatim.
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		var err error
		dec, src, err = decodeEscape(dec, src)
		if err != nil {
			return nil, err
		}
	}
}

// decodeEscape decodes one escape sequence from the front of src, whose
// leading backslash has already been removed, and appends the decoded
// bytes to dec.
func decodeEscape(dec []byte, src mem.RO) ([]byte, mem.RO, error) {
	r, n := mem.DecodeRune(src)
	if n == 0 {
		n++
	}
	src = src.SliceFrom(n)
	switch r {
	case '"', '\\', '/':
		return append(dec, byte(r)), src, nil
	case 'b':
		return append(dec, '\b'), src, nil
	case 'f':
		return append(dec, '\f'), src, nil
	case 'n':
		return append(dec, '\n'), src, nil
	case 'r':
		return append(dec, '\r'), src, nil
	case 't':
		return append(dec, '\t'), src, nil
	case 'u':
		if src.Len() < 4 {
			return nil, src, errors.New("incomplete Unicode escape")
		}
		v, err := parseHex(src.SliceTo(4))
		src = src.SliceFrom(4)
		if err != nil {
			return appendRune(dec, utf8.RuneError), src, nil
		}
		u := rune(v)
		if utf16.IsSurrogate(u) {
			// A high surrogate may combine with an immediately following
			// \uXXXX low surrogate. Anything else is replaced.
			if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
				if w, err := parseHex(src.Slice(2, 6)); err == nil {
					if c := utf16.DecodeRune(u, rune(w)); c != utf8.RuneError {
						return appendRune(dec, c), src.SliceFrom(6), nil
					}
				}
			}
			u = utf8.RuneError
		}
		return appendRune(dec, u), src, nil
	default:
		return appendRune(dec, utf8.RuneError), src, nil
	}
}

func appendRune(dec []byte, r rune) []byte {
	var buf [6]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dec, buf[:n]...)
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int64(b - '0')
		case 'a' <= b && b <= 'f':
			v += int64(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int64(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
