// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"

	"github.com/icza/bitio"

	"github.com/dsnet/huffviz/internal/errors"
)

// Encode concatenates the codes of syms in input order.
//
// It reports an error if a symbol has no entry in ct, which happens when the
// text and the code table did not come from the same input.
func Encode(syms []Symbol, ct CodeTable) (Payload, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	var n int
	for i, s := range syms {
		c, ok := ct.codes[s]
		if !ok {
			return Payload{}, errorf(errors.NotInTable, "symbol %v at position %d", s, i)
		}
		if err := w.WriteBits(c.Val, c.Len); err != nil {
			return Payload{}, errorf(errors.Internal, "%v", err)
		}
		n += int(c.Len)
	}
	if err := w.Close(); err != nil {
		return Payload{}, errorf(errors.Internal, "%v", err)
	}
	return Payload{buf: buf.Bytes(), n: n}, nil
}

// Decode walks t from the root for each bit of p, taking the left branch on
// a 0 bit and the right branch on a 1 bit, and emits the symbol of every leaf
// reached before starting over at the root.
//
// It reports a malformed payload error if p ends in the middle of a code or
// if a bit selects an absent branch. No symbols are returned on error.
func Decode(p Payload, t *Tree) ([]Symbol, error) {
	if t == nil {
		return nil, errorf(errors.EmptyInput, "no tree to decode with")
	}

	r := bitio.NewReader(bytes.NewReader(p.buf))
	var syms []Symbol
	cur := t.root
	for i := 0; i < p.n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, errorf(errors.Malformed, "bit %d of %d: %v", i, p.n, err)
		}
		next := t.nodes[cur].Left
		if bit {
			next = t.nodes[cur].Right
		}
		if next == Absent {
			return nil, errorf(errors.Malformed, "no branch for bit %d at offset %d", b2i(bit), i)
		}
		cur = next
		if t.nodes[cur].leaf {
			syms = append(syms, t.nodes[cur].Symbol)
			cur = t.root
		}
	}
	if cur != t.root {
		return nil, errorf(errors.Malformed, "payload truncated inside a code after %d symbols", len(syms))
	}
	return syms, nil
}

// DecodeString is like Decode, but joins the symbols into a string.
func DecodeString(p Payload, t *Tree) (string, error) {
	syms, err := Decode(p, t)
	if err != nil {
		return "", err
	}
	return Text(syms), nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
