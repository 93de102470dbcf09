// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate Huffman errors.
//
// This package only exists to share the error type between the huffman
// package and the packages built on top of it. Callers outside this module
// use the predicates exported by the huffman package instead.
package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	// Users should file a issue report if this type of error is encountered.
	Internal

	// Invalid indicates that this error is due to the user misusing the API
	// and is indicative of a bug on the user's part.
	Invalid

	// EmptyInput indicates that there were no symbols to process.
	// It signals "nothing to visualize" rather than a failure.
	EmptyInput

	// NotInTable indicates that the text being encoded holds a symbol that
	// the code table has no entry for.
	NotInTable

	// Malformed indicates that an encoded payload was truncated or walked
	// off the tree during decoding.
	Malformed
)

var codeMap = map[int]string{
	Internal:   "internal error",
	Invalid:    "invalid argument",
	EmptyInput: "empty input",
	NotInTable: "symbol not in code table",
	Malformed:  "malformed payload",
}

type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	switch len(ss) {
	case 0:
		return "unknown error"
	case 1:
		return ss[0]
	}
	s := ss[0] + ": " + ss[1]
	for _, t := range ss[2:] {
		s += ", " + t
	}
	return s
}

// New returns an Error for pkg with the given code and formatted message.
func New(pkg string, code int, format string, args ...interface{}) error {
	return Error{Code: code, Pkg: pkg, Msg: fmt.Sprintf(format, args...)}
}

func IsInternal(err error) bool   { return isCode(err, Internal) }
func IsInvalid(err error) bool    { return isCode(err, Invalid) }
func IsEmptyInput(err error) bool { return isCode(err, EmptyInput) }
func IsNotInTable(err error) bool { return isCode(err, NotInTable) }
func IsMalformed(err error) bool  { return isCode(err, Malformed) }

func isCode(err error, code int) bool {
	var e Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}
