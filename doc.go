// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package chop implements zero-copy parsing primitives over in-memory
// buffers: a non-owning View window, delimiter- and escape-aware splitting,
// and small lexical helpers that parsers compose.
//
// # Views
//
// A View is a window over a contiguous byte buffer, represented as a
// read-only go4.org/mem region plus window offsets. Views never copy or own
// buffer contents; the buffer must outlive every view derived from it.
// Construct a view with String or Bytes and navigate with Take and Drop,
// which are total: out-of-range counts clamp to the window.
//
//	v := chop.String("a,b,c")
//	first := v.Take(1)  // "a"
//	rest := v.Drop(2)   // "b,c"
//
// Consuming operations (Eat, EatString, Splitter.Next, Int, Float) take a
// *View, advance it past the consumed prefix on success, and leave it
// unchanged on failure so callers can retry an alternative production.
// Failures are reported as *SyntaxError values carrying a byte offset into
// the original buffer and one of the sentinel classes ErrMismatch,
// ErrUnbalanced, or ErrMalformed.
//
// # Splitting
//
// A Splitter scans for an unquoted, unescaped delimiter, honoring a nested
// Open/Close delimiter pair and an Escape byte that neutralizes whatever
// byte follows it:
//
//	s := chop.Splitter{Delim: ',', Open: '{', Close: '}'}
//	field, err := s.Next(&v) // "a{,}b" from "a{,}b,c"
//
// Splitter.Split returns a lazy, single-pass iterator over successive
// fields. The iterator mutates only its own cursor; the original view and
// buffer are untouched, so constructing a fresh iterator re-walks the same
// input. Fields from an outer split may themselves be split again, which is
// how record/field formats compose:
//
//	for rec := range chop.Fields(v, ';') {
//	    for field := range chop.Fields(rec, ',') {
//	        // ...
//	    }
//	}
//
// Splitting adjusts window boundaries only: concatenating the yielded
// fields with the delimiter reinserted between them reproduces the original
// (whitespace-trimmed) input.
//
// # JSON
//
// Package json in this module builds a recursive-descent JSON parser from
// these primitives; see its documentation for the value model and grammar.
package chop
