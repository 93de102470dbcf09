// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_hv_lib
// +build !no_hv_lib

package bench

import (
	"github.com/dsnet/huffviz/huffman"
)

// The hv codec emits only the packed payload. The code table is not part of
// the output, so there is no matching decoder.
func init() {
	RegisterEncoder(Primary,
		func(input []byte) ([]byte, error) {
			syms := huffman.Bytes(input)
			tree, _, err := huffman.Build(huffman.Count(syms))
			if huffman.IsEmptyInput(err) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			ct, err := huffman.Generate(tree)
			if err != nil {
				return nil, err
			}
			p, err := huffman.Encode(syms, ct)
			if err != nil {
				return nil, err
			}
			return p.Bytes(), nil
		})
}
