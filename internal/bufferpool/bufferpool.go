// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

// Package bufferpool implements a bounded pool of reusable byte buffers.
package bufferpool

import "bytes"

// A Pool holds a limited number of buffers for reuse. Taking from an empty
// pool allocates; giving to a full pool drops the buffer.
type Pool struct {
	pool chan *bytes.Buffer
}

// New returns a newly allocated Pool holding at most size buffers.
func New(size int) *Pool {
	return &Pool{pool: make(chan *bytes.Buffer, size)}
}

// Take returns a zeroed buffer, recycled from the pool when one is free.
func (p *Pool) Take() (buf *bytes.Buffer) {
	select {
	case buf = <-p.pool:
		buf.Reset()
	default:
		buf = new(bytes.Buffer)
	}
	return
}

// Give offers buf back to the pool for reuse.
func (p *Pool) Give(buf *bytes.Buffer) {
	select {
	case p.pool <- buf:
	default:
	}
}
