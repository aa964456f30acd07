// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

package bencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := NewDict()
	a.Set(String("one"), Integer(1))
	a.Set(String("two"), List{String("x"), String("y")})

	b := NewDict()
	b.Set(String("two"), List{String("x"), String("y")})
	b.Set(String("one"), Integer(1))

	assert.True(t, Equal(a, b), "dictionary equality should ignore entry order")
	assert.True(t, Equal(Integer(5), Integer(5)), "equal integers should compare equal")
	assert.True(t, Equal(String("s"), String("s")), "equal strings should compare equal")

	assert.False(t, Equal(Integer(1), String("1")), "values of different kinds should differ")
	assert.False(t, Equal(List{String("x"), String("y")}, List{String("y"), String("x")}), "list equality should be order-sensitive")
	assert.False(t, Equal(a, NewDict()), "dictionaries of different sizes should differ")

	c := NewDict()
	c.Set(String("one"), Integer(1))
	c.Set(String("two"), List{String("x"), String("z")})
	assert.False(t, Equal(a, c), "a differing nested value should break equality")
}

func TestHash(t *testing.T) {
	a := NewDict()
	a.Set(String("one"), Integer(1))
	a.Set(String("two"), Integer(2))

	b := NewDict()
	b.Set(String("two"), Integer(2))
	b.Set(String("one"), Integer(1))

	assert.Equal(t, Hash(a), Hash(b), "structurally equal dictionaries should hash equal")
	assert.Equal(t, Hash(List{Integer(1)}), Hash(List{Integer(1)}), "equal lists should hash equal")

	assert.NotEqual(t, Hash(Integer(1)), Hash(String("1")), "different kinds should not collide on the same payload")
	assert.NotEqual(t, Hash(List{Integer(1), Integer(2)}), Hash(List{Integer(2), Integer(1)}), "list hashing should be positional")
}

func TestRender(t *testing.T) {
	d := NewDict()
	d.Set(String("bar"), String("baz"))
	d.Set(String("n"), Integer(7))

	var renderTests = []struct {
		value    Value
		expected string
	}{
		{Integer(42), "42"},
		{Integer(-1), "-1"},
		{String("foo"), "foo"},
		{String(""), ""},
		{List{Integer(1), String("foo"), Integer(3)}, "[1, foo, 3]"},
		{List{}, "[]"},
		{NewDict(), "{}"},
		{d, "{bar baz n 7}"},
		{List{List{Integer(1)}, d}, "[[1], {bar baz n 7}]"},
	}

	for _, tt := range renderTests {
		assert.Equal(t, tt.expected, tt.value.String(), "rendering should match")
	}
}

func TestStringMap(t *testing.T) {
	d := NewDict()
	d.Set(String("op"), String("eval"))
	d.Set(String("code"), String("(+ 1 2)"))
	d.Set(String("n"), Integer(5))

	m, err := StringMap(d)
	require.Nil(t, err, "conversion of a dictionary should not fail")
	assert.Equal(t, map[string]string{
		"op":   "eval",
		"code": "(+ 1 2)",
		"n":    "5",
	}, m, "entries should convert to their rendered text")

	_, err = StringMap(Integer(1))
	require.NotNil(t, err, "conversion of a non-dictionary should fail")
	assert.True(t, IsKind(err, KindSyntax), "the failure should be a syntax kind")
}

func TestDictFromStrings(t *testing.T) {
	d := DictFromStrings(map[string]string{"a": "1", "b": "2"})
	assert.Equal(t, 2, d.Len(), "every entry should be inserted")

	v, ok := d.GetString("a")
	require.True(t, ok, "keys should be retrievable")
	assert.True(t, Equal(v, String("1")), "values should be stored as strings")

	manual := NewDict()
	manual.Set(String("b"), String("2"))
	manual.Set(String("a"), String("1"))
	assert.True(t, Equal(d, manual), "construction order should not matter")
}

func TestDictSetReplaces(t *testing.T) {
	d := NewDict()
	d.Set(String("k"), Integer(1))
	d.Set(String("k"), Integer(2))

	assert.Equal(t, 1, d.Len(), "setting an existing key should not grow the dictionary")
	v, _ := d.GetString("k")
	assert.True(t, Equal(v, Integer(2)), "the replacement value should be visible")
}

func TestDictKeysOrdered(t *testing.T) {
	d := NewDict()
	d.Set(String("z"), Integer(1))
	d.Set(String("a"), Integer(2))

	keys := d.Keys()
	require.Len(t, keys, 2, "both keys should be present")
	assert.True(t, Equal(keys[0], String("z")), "keys should iterate in insertion order")
	assert.True(t, Equal(keys[1], String("a")), "keys should iterate in insertion order")
}

func TestDigest(t *testing.T) {
	a := NewDict()
	a.Set(String("one"), Integer(1))
	a.Set(String("two"), Integer(2))

	b := NewDict()
	b.Set(String("two"), Integer(2))
	b.Set(String("one"), Integer(1))

	assert.Equal(t, Digest(a), Digest(b), "structurally equal values should share a digest")
	assert.NotEqual(t, Digest(a), Digest(NewDict()), "different values should not share a digest")

	decoded, err := Unmarshal(Marshal(a))
	require.Nil(t, err, "round-trip decode should not fail")
	assert.Equal(t, Digest(a), Digest(decoded), "a digest should survive a round trip")
}
