// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

package bencode

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
)

// Limits bound what the decoder will accept from untrusted input.
// A zero field selects the corresponding default.
type Limits struct {
	// MaxDepth is the maximum container nesting depth.
	MaxDepth int `yaml:"max_depth"`

	// MaxStringLen is the maximum declared byte string length.
	MaxStringLen int64 `yaml:"max_string_len"`
}

const (
	defaultMaxDepth     = 64
	defaultMaxStringLen = 16 << 20
)

func (lim Limits) withDefaults() Limits {
	if lim.MaxDepth == 0 {
		lim.MaxDepth = defaultMaxDepth
	}
	if lim.MaxStringLen == 0 {
		lim.MaxStringLen = defaultMaxStringLen
	}
	return lim
}

// A Decoder reads bencoded values from an input stream.
type Decoder struct {
	r   *bufio.Reader
	lim Limits
}

// NewDecoder returns a new decoder that reads from r with default limits.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderLimits(r, Limits{})
}

// NewDecoderLimits returns a new decoder that reads from r, bounded by lim.
func NewDecoderLimits(r io.Reader, lim Limits) *Decoder {
	return &Decoder{r: bufio.NewReader(r), lim: lim.withDefaults()}
}

// Decode consumes exactly one value from the stream.
//
// A clean end of input before the first byte of a value returns an EOF-kind
// error wrapping io.EOF, so callers reading a sequence of top-level values
// can test errors.Is(err, io.EOF) to detect ordinary termination. Any other
// failure aborts the current value; partially built containers are never
// returned.
func (dec *Decoder) Decode() (Value, error) {
	v, end, err := dec.decodeOne(0)
	if err != nil {
		return nil, err
	}
	if end {
		return nil, newError(KindSyntax, "terminator outside list or dictionary")
	}
	return v, nil
}

// Unmarshal decodes the single value held in buf.
func Unmarshal(buf []byte) (Value, error) {
	return NewDecoder(bytes.NewReader(buf)).Decode()
}

// UnmarshalLimits is Unmarshal bounded by lim.
func UnmarshalLimits(buf []byte, lim Limits) (Value, error) {
	return NewDecoderLimits(bytes.NewReader(buf), lim).Decode()
}

// decodeOne reads one value, dispatching on the lead byte. A true second
// return means the container terminator 'e' was read in place of a value;
// list and dictionary loops check it explicitly to close themselves.
func (dec *Decoder) decodeOne(depth int) (Value, bool, error) {
	lead, err := dec.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			if depth == 0 {
				return nil, false, wrapError(KindEOF, "end of stream", io.EOF)
			}
			// A container must be explicitly closed.
			return nil, false, wrapError(KindEOF, "unterminated list or dictionary", io.ErrUnexpectedEOF)
		}
		return nil, false, wrapError(KindIO, "read failed", err)
	}

	switch {
	case lead == 'i':
		raw, err := dec.r.ReadBytes('e')
		if err != nil {
			return nil, false, readError(err)
		}
		n, err := strconv.ParseInt(string(raw[:len(raw)-1]), 10, 32)
		if err != nil {
			return nil, false, wrapError(KindParse, "invalid integer literal", err)
		}
		return Integer(n), false, nil

	case lead == 'l':
		if depth+1 > dec.lim.MaxDepth {
			return nil, false, newError(KindLimit, "nesting depth exceeds limit")
		}
		list := List{}
		for {
			v, end, err := dec.decodeOne(depth + 1)
			if err != nil {
				return nil, false, err
			}
			if end {
				return list, false, nil
			}
			list = append(list, v)
		}

	case lead == 'd':
		if depth+1 > dec.lim.MaxDepth {
			return nil, false, newError(KindLimit, "nesting depth exceeds limit")
		}
		d := NewDict()
		for {
			key, end, err := dec.decodeOne(depth + 1)
			if err != nil {
				return nil, false, err
			}
			if end {
				return d, false, nil
			}

			val, end, err := dec.decodeOne(depth + 1)
			if err != nil {
				return nil, false, err
			}
			if end {
				return nil, false, newError(KindSyntax, "dictionary missing value for key")
			}
			d.Set(key, val)
		}

	case lead == 'e':
		return nil, true, nil

	case lead == '0':
		// The zero-length string. A length may not carry leading zeros, so
		// the delimiter must follow immediately.
		sep, err := dec.r.ReadByte()
		if err != nil {
			return nil, false, readError(err)
		}
		if sep != ':' {
			return nil, false, newError(KindParse, "invalid string length")
		}
		return String{}, false, nil

	case lead >= '1' && lead <= '9':
		raw, err := dec.r.ReadBytes(':')
		if err != nil {
			return nil, false, readError(err)
		}
		digits := make([]byte, 0, len(raw))
		digits = append(digits, lead)
		digits = append(digits, raw[:len(raw)-1]...)

		n, err := strconv.ParseInt(string(digits), 10, 64)
		if err != nil {
			return nil, false, wrapError(KindParse, "invalid string length", err)
		}
		if n > dec.lim.MaxStringLen {
			return nil, false, newError(KindLimit, "string length exceeds limit")
		}

		buf := make([]byte, n)
		if _, err := io.ReadFull(dec.r, buf); err != nil {
			return nil, false, readError(err)
		}
		return String(buf), false, nil
	}

	return nil, false, newError(KindSyntax, "invalid character "+strconv.QuoteRune(rune(lead)))
}
