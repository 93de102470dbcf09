// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_std_lib
// +build !no_std_lib

package bench

import (
	"compress/flate"
	"io"
)

func init() {
	RegisterEncoder("std", streamEncoder(
		func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.HuffmanOnly)
		}))
	RegisterDecoder("std", streamDecoder(
		func(r io.Reader) (io.Reader, error) {
			return flate.NewReader(r), nil
		}))
}
