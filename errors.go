// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

package bencode

import (
	"errors"
	"io"
)

// Kind classifies the failure conditions surfaced by this package.
type Kind uint8

const (
	// KindSyntax covers structural violations: an invalid lead byte, a
	// dictionary entry missing its value, a failed typed conversion.
	KindSyntax Kind = iota

	// KindIO is an underlying read failure unrelated to the format.
	KindIO

	// KindEOF means the stream ended where a value or delimiter was still
	// expected, or cleanly at top level where a value was requested.
	KindEOF

	// KindParse means a numeric field was not valid decimal text.
	KindParse

	// KindLimit means the input exceeded a configured decode limit.
	KindLimit
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindIO:
		return "io"
	case KindEOF:
		return "eof"
	case KindParse:
		return "parse"
	case KindLimit:
		return "limit"
	}
	return "unknown"
}

// An Error is any failure produced by decoding or conversion.
type Error struct {
	kind    Kind
	message string
	cause   error
}

func newError(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func wrapError(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return "bencode: " + e.message + ": " + e.cause.Error()
	}
	return "bencode: " + e.message
}

// Kind returns the failure class.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var be *Error
	return errors.As(err, &be) && be.kind == kind
}

// readError maps a failure from the byte source into the error taxonomy.
// Mid-value end of input is distinguished from ordinary read failures.
func readError(err error) *Error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return wrapError(KindEOF, "unexpected end of stream", io.ErrUnexpectedEOF)
	}
	return wrapError(KindIO, "read failed", err)
}
