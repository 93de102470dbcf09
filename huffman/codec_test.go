// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dsnet/huffviz/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	rand := testutil.NewRand(3)
	var vectors = []struct{ input string }{
		{"a"},
		{"zzzz"},
		{"aaabb"},
		{"aaaabbbcc"},
		{"  \t\n\n  "},
		{"The quick brown fox jumped over the lazy dog."},
		{"Do not communicate by sharing memory; instead, share memory by communicating."},
		{testutil.MustLoadFile(twainFile, -1)},
		{testutil.MustLoadFile(unicodeFile, -1)},
		{testutil.MustLoadFile(twainFile, 1e4)},
		{rand.Text(1000, "ab")},
		{rand.SkewedText(1000, "☃★♞xyz")},
	}

	for _, v := range vectors {
		syms := Runes(v.input)
		_, tree, ct := mustGenerate(t, v.input)

		p, err := Encode(syms, ct)
		require.NoError(t, err)
		require.Equal(t, ct.EncodedLen(CountString(v.input)), p.Len())

		got, err := DecodeString(p, tree)
		require.NoError(t, err)
		require.Equal(t, v.input, got)
	}
}

func TestRoundTripBytes(t *testing.T) {
	input := testutil.NewRand(4).Bytes(2048)
	syms := Bytes(input)
	ft := Count(syms)
	tree, _, err := Build(ft)
	require.NoError(t, err)
	ct, err := Generate(tree)
	require.NoError(t, err)

	p, err := Encode(syms, ct)
	require.NoError(t, err)
	out, err := Decode(p, tree)
	require.NoError(t, err)
	got, err := ByteText(out)
	require.NoError(t, err)
	require.True(t, bytes.Equal(input, got), "byte round trip mismatch")
}

func TestEncode(t *testing.T) {
	var vectors = []struct {
		input string
		want  string
	}{
		{"aaabb", "11100"},
		{"aaaabbbcc", "0000" + "111111" + "1010"},
		{"abcabc", "10" + "11" + "0" + "10" + "11" + "0"},
		{"zzzz", "0000"},
	}

	for i, v := range vectors {
		_, _, ct := mustGenerate(t, v.input)
		p, err := Encode(Runes(v.input), ct)
		require.NoError(t, err, "test %d", i)
		require.Equal(t, v.want, p.String(), "test %d", i)
	}
}

func TestEncodeDesync(t *testing.T) {
	_, _, ct := mustGenerate(t, "aaabb")
	_, err := Encode(Runes("abc"), ct)
	require.Error(t, err)
	require.True(t, IsSymbolNotInCodeTable(err), "got %v, want symbol not in code table error", err)
	require.Contains(t, err.Error(), "position 2")
}

func TestDecodeMalformed(t *testing.T) {
	var vectors = []struct {
		input   string // Text to build the tree from
		payload string
	}{
		// One bit short of the code for b.
		{"aaaabbbcc", "0" + "1"},
		{"aaaabbbcc", "0000111111101"},
		// The right branch of the root is absent for a single symbol.
		{"zzzz", "001"},
		{"zzzz", "1"},
	}

	for i, v := range vectors {
		_, tree, _ := mustGenerate(t, v.input)
		p, err := ParsePayload(v.payload)
		require.NoError(t, err, "test %d", i)

		syms, err := Decode(p, tree)
		require.True(t, IsMalformedPayload(err), "test %d, got %v, want malformed payload error", i, err)
		require.Nil(t, syms, "test %d, partial output returned", i)
	}
}

func TestDecodeTruncated(t *testing.T) {
	input := testutil.MustLoadFile(twainFile, -1)
	syms := Runes(input)
	_, tree, ct := mustGenerate(t, input)
	p, err := Encode(syms, ct)
	require.NoError(t, err)

	// The last symbol has a multi-bit code, so dropping the final bit ends
	// inside of it.
	c, _ := ct.Lookup(syms[len(syms)-1])
	require.Greater(t, int(c.Len), 1)
	_, err = Decode(p.Prefix(p.Len()-1), tree)
	require.True(t, IsMalformedPayload(err), "got %v, want malformed payload error", err)

	// Cutting at a code boundary decodes the corresponding prefix of the text.
	got, err := Decode(p.Prefix(p.Len()-int(c.Len)), tree)
	require.NoError(t, err)
	require.Equal(t, syms[:len(syms)-1], got)
}

func TestDecodeEmpty(t *testing.T) {
	_, tree, _ := mustGenerate(t, "abc")
	got, err := Decode(Payload{}, tree)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = Decode(Payload{}, nil)
	require.True(t, IsEmptyInput(err), "got %v, want empty input error", err)
}

func BenchmarkEncode(b *testing.B) {
	input := testutil.MustLoadFile("../testdata/twain.txt", 1e5)
	syms := Runes(input)
	ft := Count(syms)
	tree, _, _ := Build(ft)
	ct, _ := Generate(tree)

	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(syms, ct)
	}
}

func BenchmarkDecode(b *testing.B) {
	input := testutil.MustLoadFile("../testdata/twain.txt", 1e5)
	syms := Runes(input)
	ft := Count(syms)
	tree, _, _ := Build(ft)
	ct, _ := Generate(tree)
	p, _ := Encode(syms, ct)

	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode(p, tree)
	}
}
