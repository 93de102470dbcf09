// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/dsnet/huffviz/internal/errors"
)

// maxCodeBits is the longest code that fits in Code.Val.
const maxCodeBits = 64

// Code is a prefix code. The code bits are the Len least-significant bits of
// Val, where the most-significant of those is the first bit on the path from
// the root.
type Code struct {
	Val uint64
	Len uint8
}

// String renders the code as a string of '0' and '1' characters.
func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(c.Val>>uint(i))&1)
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	return p.Len <= c.Len && c.Val>>(c.Len-p.Len) == p.Val
}

// CodeTable maps each symbol of a tree to its code.
type CodeTable struct {
	codes map[Symbol]Code
}

// CodeRow is a single entry of a CodeTable.
type CodeRow struct {
	Symbol Symbol
	Code   Code
}

// Generate assigns a code to every leaf of t by walking down from the root,
// appending a 0 bit for each left branch and a 1 bit for each right branch.
func Generate(t *Tree) (CodeTable, error) {
	if t == nil {
		return CodeTable{}, errorf(errors.EmptyInput, "no tree to generate codes from")
	}

	ct := CodeTable{codes: make(map[Symbol]Code)}
	var walk func(i int, c Code) error
	walk = func(i int, c Code) error {
		if i == Absent {
			return nil
		}
		n := t.nodes[i]
		if n.leaf {
			ct.codes[n.Symbol] = c
			return nil
		}
		if c.Len == maxCodeBits {
			return errorf(errors.Invalid, "code exceeds %d bits", maxCodeBits)
		}
		if err := walk(n.Left, Code{Val: c.Val << 1, Len: c.Len + 1}); err != nil {
			return err
		}
		return walk(n.Right, Code{Val: c.Val<<1 | 1, Len: c.Len + 1})
	}
	if err := walk(t.root, Code{}); err != nil {
		return CodeTable{}, err
	}
	return ct, nil
}

// Len reports the number of symbols in the table.
func (ct CodeTable) Len() int { return len(ct.codes) }

// Lookup returns the code for s.
func (ct CodeTable) Lookup(s Symbol) (Code, bool) {
	c, ok := ct.codes[s]
	return c, ok
}

// Symbols returns the symbols in the table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(ct.codes))
	for s := range ct.codes {
		syms = append(syms, s)
	}
	slices.Sort(syms)
	return syms
}

// Rows returns the table ordered by code length, then by symbol.
func (ct CodeTable) Rows() []CodeRow {
	rows := make([]CodeRow, 0, len(ct.codes))
	for s, c := range ct.codes {
		rows = append(rows, CodeRow{s, c})
	}
	slices.SortFunc(rows, func(a, b CodeRow) int {
		switch {
		case a.Code.Len != b.Code.Len:
			return int(a.Code.Len) - int(b.Code.Len)
		case a.Symbol < b.Symbol:
			return -1
		case a.Symbol > b.Symbol:
			return +1
		}
		return 0
	})
	return rows
}

// EncodedLen reports the number of bits that encoding a text with the
// frequencies of ft would produce. Symbols missing from the table are ignored.
func (ct CodeTable) EncodedLen(ft FrequencyTable) (n int) {
	for s, cnt := range ft.counts {
		n += cnt * int(ct.codes[s].Len)
	}
	return n
}
