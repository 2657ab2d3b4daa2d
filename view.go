// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package chop

import (
	"iter"

	"go4.org/mem"
)

// A View is a non-owning window over a contiguous byte buffer. The zero
// value is an empty view. Views are cheap values; copying a view never
// copies buffer contents, and no View operation modifies the underlying
// buffer. The buffer must remain valid and unchanged for as long as any
// view derived from it is in use.
//
// A view remembers its position within the original buffer, so a sub-view
// produced by Take, Drop, or splitting can always report the byte offsets
// it spans via Span.
type View struct {
	src      mem.RO
	pos, end int
}

// String returns a view of the contents of s.
func String(s string) View { return View{src: mem.S(s), end: len(s)} }

// Bytes returns a view of the contents of b. The caller must not modify b
// while the view or any view derived from it is in use.
func Bytes(b []byte) View { return View{src: mem.B(b), end: len(b)} }

// Mem returns a view of the read-only memory region m.
func Mem(m mem.RO) View { return View{src: m, end: m.Len()} }

// Len reports the number of bytes in the window.
func (v View) Len() int { return v.end - v.pos }

// IsEmpty reports whether the window contains no bytes.
func (v View) IsEmpty() bool { return v.pos == v.end }

// Span reports the byte offsets of the window within the original buffer.
func (v View) Span() Span { return Span{Pos: v.pos, End: v.end} }

// RO returns the window as a read-only memory region, without copying.
func (v View) RO() mem.RO { return v.src.Slice(v.pos, v.end) }

// Text returns a copy of the window contents as a string.
func (v View) Text() string { return v.RO().StringCopy() }

// Append appends a copy of the window contents to dst.
func (v View) Append(dst []byte) []byte { return mem.Append(dst, v.RO()) }

// At returns the byte at offset i within the window.
// It panics if i is out of range.
func (v View) At(i int) byte { return v.src.At(v.pos + i) }

// Front returns the first byte of the window.
// The view must not be empty.
func (v View) Front() byte { return v.src.At(v.pos) }

// Back returns the last byte of the window.
// The view must not be empty.
func (v View) Back() byte { return v.src.At(v.end - 1) }

// Take returns a view of the first n bytes of v if n >= 0, or the last |n|
// bytes of v if n < 0. Counts beyond the window clamp to the whole window;
// Take never extends the view and never fails.
func (v View) Take(n int) View {
	switch {
	case n >= v.Len():
		return v
	case n >= 0:
		return View{src: v.src, pos: v.pos, end: v.pos + n}
	case n <= -v.Len():
		return v
	default:
		return View{src: v.src, pos: v.end + n, end: v.end}
	}
}

// Drop returns a view of v with the first n bytes removed if n >= 0, or
// the last |n| bytes removed if n < 0. Counts beyond the window clamp to
// the empty view at the corresponding end; Drop never fails.
func (v View) Drop(n int) View {
	switch {
	case n >= v.Len():
		return View{src: v.src, pos: v.end, end: v.end}
	case n >= 0:
		return View{src: v.src, pos: v.pos + n, end: v.end}
	case n <= -v.Len():
		return View{src: v.src, pos: v.pos, end: v.pos}
	default:
		return View{src: v.src, pos: v.pos, end: v.end + n}
	}
}

// Equal reports whether v and w have equal contents, regardless of whether
// they share a buffer.
func (v View) Equal(w View) bool { return v.RO().Equal(w.RO()) }

// EqualString reports whether the contents of v are equal to s.
// Views of differing length are never equal, even if one is a prefix of
// the other.
func (v View) EqualString(s string) bool { return v.RO().EqualString(s) }

// Same reports whether v and w are the identical window: the same offsets
// within the same buffer. Two views with equal contents at different
// positions are not the same. Same is only meaningful for views derived
// from a common original.
func (v View) Same(w View) bool { return v.pos == w.pos && v.end == w.end }

// All returns an iterator over the bytes of the window, front to back.
func (v View) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := v.pos; i < v.end; i++ {
			if !yield(v.src.At(i)) {
				return
			}
		}
	}
}

// A Span describes a contiguous range of the original buffer.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}
