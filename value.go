// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

// Package bencode implements bencoding of a generic value tree as defined in
// BEP 3, using a closed set of concrete types rather than reflection.
//
// The four value kinds are Integer, String, List and Dict. A tree is built
// either by the Decoder or directly by a caller and is re-encoded to its
// canonical bytes with Marshal or an Encoder.
package bencode

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
	"strconv"
	"strings"
)

// A Value is one bencoded value: an Integer, a String, a List or a *Dict.
//
// The String method renders a debug-oriented, non-canonical form meant for
// diagnostics; it is not guaranteed to be parseable. Use Marshal for wire
// bytes.
type Value interface {
	String() string

	// bencodeValue restricts the set of implementations to this package.
	bencodeValue()
}

// Integer is a bencoded integer.
//
// The wire format permits arbitrary precision; this implementation fixes the
// width at a signed 32 bits. Literals outside that range fail to decode with
// a Parse error rather than silently truncating.
type Integer int32

// String is a bencoded byte string. It may hold arbitrary bytes, including
// embedded delimiters and sequences that are not valid UTF-8.
type String []byte

// List is an ordered sequence of values. Order is significant and preserved.
type List []Value

// Dict is a set of key/value pairs with unique keys.
//
// Keys are conventionally strings but may be any Value. Entries are kept in
// insertion order; canonical encoding sorts them by key bytes regardless, so
// insertion order never leaks onto the wire.
type Dict struct {
	keys []Value
	vals []Value
}

func (v Integer) bencodeValue() {}
func (v String) bencodeValue()  {}
func (v List) bencodeValue()    {}
func (d *Dict) bencodeValue()   {}

// NewDict returns a new empty dictionary.
func NewDict() *Dict {
	return &Dict{}
}

// DictFromStrings returns a dictionary holding the entries of m as
// String-to-String pairs.
func DictFromStrings(m map[string]string) *Dict {
	d := NewDict()
	for k, v := range m {
		d.Set(String(k), String(v))
	}
	return d
}

// Set adds the pair (key, val) to the dictionary, replacing the value of an
// equal existing key.
func (d *Dict) Set(key, val Value) {
	for i, k := range d.keys {
		if Equal(k, key) {
			d.vals[i] = val
			return
		}
	}
	d.keys = append(d.keys, key)
	d.vals = append(d.vals, val)
}

// Get returns the value stored under an equal key and whether one exists.
func (d *Dict) Get(key Value) (Value, bool) {
	for i, k := range d.keys {
		if Equal(k, key) {
			return d.vals[i], true
		}
	}
	return nil, false
}

// GetString is Get with a native string key.
func (d *Dict) GetString(key string) (Value, bool) {
	return d.Get(String(key))
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []Value {
	keys := make([]Value, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Equal reports whether a and b are structurally equal: integers by numeric
// value, strings by byte content, lists element-wise in order, dictionaries
// by key set and per-key value regardless of entry order.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Integer:
		bv, ok := b.(Integer)
		return ok && av == bv

	case String:
		bv, ok := b.(String)
		return ok && bytes.Equal(av, bv)

	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true

	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i, k := range av.keys {
			bval, ok := bv.Get(k)
			if !ok || !Equal(av.vals[i], bval) {
				return false
			}
		}
		return true
	}

	return false
}

// Hash returns a hash that is equal for structurally equal values.
//
// Dictionary entries are combined by summation so that entry order does not
// affect the result; everything else hashes positionally.
func Hash(v Value) uint64 {
	h := fnv.New64a()

	switch v := v.(type) {
	case Integer:
		var buf [5]byte
		buf[0] = 'i'
		binary.BigEndian.PutUint32(buf[1:], uint32(v))
		h.Write(buf[:])

	case String:
		h.Write([]byte{'s'})
		h.Write(v)

	case List:
		h.Write([]byte{'l'})
		var buf [8]byte
		for _, elem := range v {
			binary.BigEndian.PutUint64(buf[:], Hash(elem))
			h.Write(buf[:])
		}

	case *Dict:
		var sum uint64
		for i, k := range v.keys {
			eh := fnv.New64a()
			var buf [16]byte
			binary.BigEndian.PutUint64(buf[:8], Hash(k))
			binary.BigEndian.PutUint64(buf[8:], Hash(v.vals[i]))
			eh.Write(buf[:])
			sum += eh.Sum64()
		}
		var buf [9]byte
		buf[0] = 'd'
		binary.BigEndian.PutUint64(buf[1:], sum)
		h.Write(buf[:])
	}

	return h.Sum64()
}

// StringMap converts a dictionary value into a flat map of rendered strings,
// for the common case of shallow metadata records.
//
// Every value kind has a text rendering, so conversion fails only when v is
// not a dictionary.
func StringMap(v Value) (map[string]string, error) {
	d, ok := v.(*Dict)
	if !ok {
		return nil, newError(KindSyntax, "expected dictionary value")
	}

	m := make(map[string]string, d.Len())
	for i, k := range d.keys {
		m[k.String()] = d.vals[i].String()
	}
	return m, nil
}

func (v Integer) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v String) String() string {
	return string(v)
}

func (v List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, elem := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (d *Dict) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k.String())
		b.WriteByte(' ')
		b.WriteString(d.vals[i].String())
	}
	b.WriteByte('}')
	return b.String()
}
