// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_xz_lib
// +build !no_xz_lib

package bench

import (
	"io"

	"github.com/ulikunitz/xz"
)

// The xz codec is a full LZMA2 compressor, included to show how far ahead a
// dictionary coder is of entropy coding alone.
func init() {
	RegisterEncoder("xz", streamEncoder(
		func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		}))
	RegisterDecoder("xz", streamDecoder(
		func(r io.Reader) (io.Reader, error) {
			return xz.NewReader(r)
		}))
}
