// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/icza/bitio"

	"github.com/dsnet/huffviz/internal/errors"
)

// Payload is an ordered sequence of bits. The bits are packed into bytes
// starting with the most-significant bit of each byte, and the final byte is
// padded with zero bits. A Payload is immutable.
type Payload struct {
	buf []byte
	n   int
}

// NewPayload returns a Payload holding the first n bits of buf.
func NewPayload(buf []byte, n int) (Payload, error) {
	if n < 0 || n > 8*len(buf) {
		return Payload{}, errorf(errors.Invalid, "%d bits do not fit in %d bytes", n, len(buf))
	}
	b := make([]byte, (n+7)/8)
	copy(b, buf)
	if pad := uint(8*len(b) - n); pad > 0 {
		b[len(b)-1] &= 0xff << pad
	}
	return Payload{buf: b, n: n}, nil
}

// ParsePayload parses a string of '0' and '1' characters.
// White space is ignored so that long payloads may be grouped for reading.
func ParsePayload(s string) (Payload, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	var n int
	for i, r := range s {
		switch {
		case r == '0' || r == '1':
			if err := w.WriteBool(r == '1'); err != nil {
				return Payload{}, errorf(errors.Internal, "%v", err)
			}
			n++
		case unicode.IsSpace(r):
		default:
			return Payload{}, errorf(errors.Invalid, "unexpected %q at offset %d", r, i)
		}
	}
	if err := w.Close(); err != nil {
		return Payload{}, errorf(errors.Internal, "%v", err)
	}
	return Payload{buf: buf.Bytes(), n: n}, nil
}

// Len reports the number of bits.
func (p Payload) Len() int { return p.n }

// Bit returns the bit at index i, which must be within [0, Len()).
func (p Payload) Bit(i int) uint8 {
	if i < 0 || i >= p.n {
		panic("huffman: bit index out of range")
	}
	return p.buf[i/8] >> uint(7-i%8) & 1
}

// Bytes returns a copy of the packed bits.
func (p Payload) Bytes() []byte {
	return append([]byte(nil), p.buf...)
}

// Prefix returns the first n bits of p.
// The count n is clamped to the range [0, Len()].
func (p Payload) Prefix(n int) Payload {
	switch {
	case n < 0:
		n = 0
	case n > p.n:
		n = p.n
	}
	q, _ := NewPayload(p.buf, n)
	return q
}

// Equal reports whether p and q hold the same bits.
func (p Payload) Equal(q Payload) bool {
	return p.n == q.n && bytes.Equal(p.buf, q.buf)
}

// String renders the payload as a string of '0' and '1' characters.
func (p Payload) String() string {
	var sb strings.Builder
	sb.Grow(p.n)
	for i := 0; i < p.n; i++ {
		sb.WriteByte('0' + p.Bit(i))
	}
	return sb.String()
}
