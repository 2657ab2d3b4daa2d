// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// Quote encodes src as the body of a JSON string, escaping characters as
// required. The enclosing quotation marks are not added.
//
// Control characters with short escapes use them; other controls, the
// replacement rune, and the line and paragraph separators are written as
// \uXXXX escapes. Invalid UTF-8 decodes to the replacement rune and is
// escaped accordingly.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		switch {
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r == '\b':
			buf = append(buf, '\\', 'b')
		case r == '\f':
			buf = append(buf, '\\', 'f')
		case r == '\n':
			buf = append(buf, '\\', 'n')
		case r == '\r':
			buf = append(buf, '\\', 'r')
		case r == '\t':
			buf = append(buf, '\\', 't')
		case r < ' ', r == 0xfffd, r == 0x2028, r == 0x2029:
			buf = appendUnicode(buf, r)
		default:
			var rb [4]byte
			buf = append(buf, rb[:utf8.EncodeRune(rb[:], r)]...)
		}
	}
	return buf
}

// appendUnicode appends the \uXXXX escape of r, which must be in the
// basic multilingual plane.
func appendUnicode(buf []byte, r rune) []byte {
	const hex = "0123456789abcdef"
	return append(buf, '\\', 'u', hex[r>>12&15], hex[r>>8&15], hex[r>>4&15], hex[r&15])
}
