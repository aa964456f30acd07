// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

package bencode

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	err := newError(KindSyntax, "dictionary missing value for key")
	assert.Equal(t, "bencode: dictionary missing value for key", err.Error())

	wrapped := wrapError(KindEOF, "unexpected end of stream", io.ErrUnexpectedEOF)
	assert.Equal(t, "bencode: unexpected end of stream: unexpected EOF", wrapped.Error())
	assert.Equal(t, io.ErrUnexpectedEOF, wrapped.Unwrap())
}

func TestKindStrings(t *testing.T) {
	var kindTests = []struct {
		kind     Kind
		expected string
	}{
		{KindSyntax, "syntax"},
		{KindIO, "io"},
		{KindEOF, "eof"},
		{KindParse, "parse"},
		{KindLimit, "limit"},
		{Kind(255), "unknown"},
	}

	for _, tt := range kindTests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestIsKind(t *testing.T) {
	err := newError(KindParse, "invalid integer literal")

	assert.True(t, IsKind(err, KindParse))
	assert.False(t, IsKind(err, KindSyntax))
	assert.False(t, IsKind(io.EOF, KindEOF), "a bare io error carries no kind")

	// Kinds survive wrapping by callers.
	wrapped := errors.Wrap(err, "failed to decode input")
	assert.True(t, IsKind(wrapped, KindParse))
}
