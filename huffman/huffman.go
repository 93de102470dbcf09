// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements Huffman coding as it is taught: counting symbol
// frequencies, repeatedly merging the two lightest nodes into a binary tree,
// reading codes off the root-to-leaf paths, and packing text into a bit
// sequence and back.
//
// Every operation is a pure function over its inputs. The merge order is
// fully determined: the node with the smaller frequency is taken first, and
// equal frequencies are resolved in favor of the node that entered the queue
// earlier. Leaves enter the queue in ascending Symbol order before any merge,
// and each internal node enters the queue when it is created. Thus identical
// frequency tables always produce identical trees, merge steps, and codes.
//
// When only one distinct symbol is present, the tree is an internal root
// whose left child is the lone leaf and whose right child is absent, so that
// the symbol is assigned the 1-bit code "0".
package huffman

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/dsnet/huffviz/internal/errors"
)

// Symbol is one atomic unit of the input text. It holds either a Unicode
// scalar value or a single byte value, depending on how the text was split.
type Symbol rune

// String returns a printable label for s. Graphic characters are returned as
// is, while whitespace and control characters are quoted.
func (s Symbol) String() string {
	r := rune(s)
	if r != ' ' && unicode.IsGraphic(r) && r != utf8.RuneError {
		return string(r)
	}
	return strconv.QuoteRune(r)
}

// Runes splits s into one Symbol per Unicode scalar value.
// Invalid UTF-8 bytes are each reported as utf8.RuneError.
func Runes(s string) []Symbol {
	syms := make([]Symbol, 0, len(s))
	for _, r := range s {
		syms = append(syms, Symbol(r))
	}
	return syms
}

// Bytes splits b into one Symbol per byte.
func Bytes(b []byte) []Symbol {
	syms := make([]Symbol, len(b))
	for i, c := range b {
		syms[i] = Symbol(c)
	}
	return syms
}

// Text joins syms back into a string, treating each Symbol as a rune.
func Text(syms []Symbol) string {
	b := make([]byte, 0, len(syms))
	for _, s := range syms {
		b = utf8.AppendRune(b, rune(s))
	}
	return string(b)
}

// ByteText joins syms back into bytes. It reports an error if any Symbol
// does not fit in a byte.
func ByteText(syms []Symbol) ([]byte, error) {
	b := make([]byte, len(syms))
	for i, s := range syms {
		if s < 0 || s > 0xff {
			return nil, errorf(errors.Invalid, "symbol %v at position %d is not a byte", s, i)
		}
		b[i] = byte(s)
	}
	return b, nil
}

func errorf(code int, format string, args ...interface{}) error {
	return errors.New("huffman", code, format, args...)
}

// IsEmptyInput reports whether err signals that there were no symbols to
// process. It is the "nothing to visualize" state rather than a failure.
func IsEmptyInput(err error) bool { return errors.IsEmptyInput(err) }

// IsSymbolNotInCodeTable reports whether err is the result of encoding text
// that holds a symbol the code table does not know about.
func IsSymbolNotInCodeTable(err error) bool { return errors.IsNotInTable(err) }

// IsMalformedPayload reports whether err is the result of decoding a
// truncated payload or one that leads off the tree.
func IsMalformedPayload(err error) bool { return errors.IsMalformed(err) }

// IsInvalid reports whether err is the result of misusing the API.
func IsInvalid(err error) bool { return errors.IsInvalid(err) }
