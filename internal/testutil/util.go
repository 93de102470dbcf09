// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"io"
	"os"
	"strings"
)

// ResizeText resizes the input to n runes. If n < 0, then the original input
// will be returned as is. If n <= the rune count of input, then the input
// will be truncated. However, if n is larger, then the input will be
// replicated to fill in the missing runes.
//
// If n > 0, then input must not be empty.
func ResizeText(input string, n int) string {
	if n < 0 {
		return input
	}
	runes := []rune(input)
	if len(runes) >= n {
		return string(runes[:n])
	}
	if len(runes) == 0 {
		panic("unable to replicate an empty string")
	}
	return string([]rune(strings.Repeat(input, n/len(runes)+1))[:n])
}

// MustLoadFile must load a file or else panics.
// The input is resized to n runes as done by ResizeText.
func MustLoadFile(file string, n int) string {
	b, err := os.ReadFile(file)
	if err != nil {
		panic(err)
	}
	return ResizeText(string(b), n)
}

// BuggyWriter returns Err after N bytes have been written to W.
type BuggyWriter struct {
	W   io.Writer
	N   int64 // Number of valid bytes to write
	Err error // Return this error after N bytes
}

func (bw *BuggyWriter) Write(buf []byte) (int, error) {
	if int64(len(buf)) > bw.N {
		buf = buf[:bw.N]
	}
	n, err := bw.W.Write(buf)
	bw.N -= int64(n)
	if err == nil && bw.N <= 0 {
		return n, bw.Err
	}
	return n, err
}
