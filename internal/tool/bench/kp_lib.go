// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/huff0"
)

func init() {
	RegisterEncoder("kp", streamEncoder(
		func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.HuffmanOnly)
		}))
	RegisterDecoder("kp", streamDecoder(
		func(r io.Reader) (io.Reader, error) {
			return flate.NewReader(r), nil
		}))

	// The huff0 codec compresses a single block with one stream. It rejects
	// inputs that are too large, too small, or made of a single repeated byte.
	RegisterEncoder("huff0",
		func(input []byte) ([]byte, error) {
			out, _, err := huff0.Compress1X(input, nil)
			if err != nil {
				return nil, err
			}
			return append([]byte(nil), out...), nil
		})
	RegisterDecoder("huff0",
		func(output []byte) ([]byte, error) {
			s, rem, err := huff0.ReadTable(output, nil)
			if err != nil {
				return nil, err
			}
			return s.Decompress1X(rem)
		})
}
