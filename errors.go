// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package chop

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying parse failures. Use errors.Is to test the
// class of a *SyntaxError.
var (
	// ErrMismatch reports that an expected byte or literal was not found.
	// The failed operation left its input view unchanged, so the caller may
	// retry an alternative production.
	ErrMismatch = errors.New("input mismatch")

	// ErrUnbalanced reports that a nested Open/Close delimiter pair never
	// returned to balance before the input was exhausted.
	ErrUnbalanced = errors.New("unbalanced delimiters")

	// ErrMalformed reports that a scalar token violated its grammar.
	ErrMalformed = errors.New("malformed token")
)

// SyntaxError is the concrete type of errors reported by parsing
// operations. Offset is a byte offset into the original buffer underlying
// the view being parsed.
type SyntaxError struct {
	Offset  int
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// Errorf constructs a *SyntaxError at the given offset wrapping the
// sentinel class err.
func Errorf(offset int, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(msg, args...), err: err}
}
