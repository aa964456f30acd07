// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

package bencode

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chihaya/bencode/internal/bufferpool"
)

var encodePool = bufferpool.New(32)

// An Encoder writes bencoded values to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the canonical encoding of v to the stream.
func (enc *Encoder) Encode(v Value) error {
	return marshal(enc.w, v)
}

// Marshal returns the canonical encoding of v: "i<n>e" for integers,
// "<len>:<raw>" for strings, "l...e" for lists and "d...e" for dictionaries,
// with dictionary entries ordered by lexicographically ascending key bytes.
func Marshal(v Value) []byte {
	buf := encodePool.Take()
	defer encodePool.Give(buf)

	// Writes to a bytes.Buffer cannot fail.
	_ = marshal(buf, v)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

func marshal(w io.Writer, v Value) error {
	switch v := v.(type) {
	case Integer:
		_, err := fmt.Fprintf(w, "i%de", int32(v))
		return err

	case String:
		if _, err := fmt.Fprintf(w, "%d:", len(v)); err != nil {
			return err
		}
		_, err := w.Write(v)
		return err

	case List:
		if _, err := io.WriteString(w, "l"); err != nil {
			return err
		}
		for _, elem := range v {
			if err := marshal(w, elem); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "e")
		return err

	case *Dict:
		if _, err := io.WriteString(w, "d"); err != nil {
			return err
		}

		// BEP 3 orders entries by their keys as raw strings. Non-string
		// keys sort by their canonical bytes instead.
		order := make([]int, len(v.keys))
		sortBytes := make([][]byte, len(v.keys))
		for i, k := range v.keys {
			order[i] = i
			if s, ok := k.(String); ok {
				sortBytes[i] = s
			} else {
				sortBytes[i] = Marshal(k)
			}
		}
		sort.Slice(order, func(a, b int) bool {
			return bytes.Compare(sortBytes[order[a]], sortBytes[order[b]]) < 0
		})

		for _, i := range order {
			if err := marshal(w, v.keys[i]); err != nil {
				return err
			}
			if err := marshal(w, v.vals[i]); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "e")
		return err
	}

	return newError(KindSyntax, "cannot marshal a nil value")
}
