// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

package bencode

import (
	sha256 "github.com/minio/sha256-simd"
)

// Digest returns the SHA-256 of v's canonical encoding.
//
// Canonical encoding is deterministic (dictionary entries are sorted on
// encode), so structurally equal values produce equal digests regardless of
// how they were built.
func Digest(v Value) [sha256.Size]byte {
	return sha256.Sum256(Marshal(v))
}
