// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package errors

import (
	"fmt"
	"io"
	"testing"
)

func TestError(t *testing.T) {
	var vectors = []struct {
		err  error
		want string
	}{
		{Error{}, "unknown error"},
		{Error{Pkg: "huffman"}, "huffman"},
		{Error{Code: Malformed, Pkg: "huffman"}, "huffman: malformed payload"},
		{Error{Code: NotInTable, Pkg: "huffman", Msg: "symbol 'x' at 3"}, "huffman: symbol not in code table, symbol 'x' at 3"},
		{New("huffman", EmptyInput, "%d symbols", 0), "huffman: empty input, 0 symbols"},
	}

	for i, v := range vectors {
		if got := v.err.Error(); got != v.want {
			t.Errorf("test %d, Error() mismatch:\ngot  %q\nwant %q", i, got, v.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("visualize: %w", New("huffman", Malformed, "truncated"))
	var vectors = []struct {
		err                                             error
		internal, invalid, empty, notInTable, malformed bool
	}{
		{err: nil},
		{err: io.EOF},
		{err: Error{Code: Internal}, internal: true},
		{err: Error{Code: Invalid}, invalid: true},
		{err: Error{Code: EmptyInput}, empty: true},
		{err: Error{Code: NotInTable}, notInTable: true},
		{err: wrapped, malformed: true},
	}

	for i, v := range vectors {
		if got := IsInternal(v.err); got != v.internal {
			t.Errorf("test %d, IsInternal() = %v, want %v", i, got, v.internal)
		}
		if got := IsInvalid(v.err); got != v.invalid {
			t.Errorf("test %d, IsInvalid() = %v, want %v", i, got, v.invalid)
		}
		if got := IsEmptyInput(v.err); got != v.empty {
			t.Errorf("test %d, IsEmptyInput() = %v, want %v", i, got, v.empty)
		}
		if got := IsNotInTable(v.err); got != v.notInTable {
			t.Errorf("test %d, IsNotInTable() = %v, want %v", i, got, v.notInTable)
		}
		if got := IsMalformed(v.err); got != v.malformed {
			t.Errorf("test %d, IsMalformed() = %v, want %v", i, got, v.malformed)
		}
	}
}
