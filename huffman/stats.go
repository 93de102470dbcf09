// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"fmt"
	"strings"

	"github.com/dsnet/golib/unitconv"
)

// BitsPerSymbol is the width of the fixed-length baseline that encoded sizes
// are compared against.
const BitsPerSymbol = 8

// SizeStats compares the size of a text under the fixed-width baseline with
// the size of its encoded payload.
type SizeStats struct {
	Symbols        int
	OriginalBits   int
	CompressedBits int
	Saved          float64 // Percentage of the original bits saved
}

// Report computes the size statistics of encoding n symbols into p.
// The percentage saved is zero when n is zero.
func Report(n int, p Payload) SizeStats {
	s := SizeStats{
		Symbols:        n,
		OriginalBits:   n * BitsPerSymbol,
		CompressedBits: p.Len(),
	}
	if s.OriginalBits > 0 {
		s.Saved = (1 - float64(s.CompressedBits)/float64(s.OriginalBits)) * 100
	}
	return s
}

// Ratio reports the compressed size relative to the original size.
// It is zero when the original size is zero.
func (s SizeStats) Ratio() float64 {
	if s.OriginalBits == 0 {
		return 0
	}
	return float64(s.CompressedBits) / float64(s.OriginalBits)
}

// AvgBits reports the average code length per symbol.
func (s SizeStats) AvgBits() float64 {
	if s.Symbols == 0 {
		return 0
	}
	return float64(s.CompressedBits) / float64(s.Symbols)
}

func (s SizeStats) String() string {
	return fmt.Sprintf("original %d bits (%sB), compressed %d bits (%sB), %.2f%% saved",
		s.OriginalBits, FormatBytes((s.OriginalBits+7)/8),
		s.CompressedBits, FormatBytes((s.CompressedBits+7)/8), s.Saved)
}

// FormatBytes formats n using binary unit prefixes, such as "1.50Ki".
func FormatBytes(n int) string {
	s := unitconv.FormatPrefix(float64(n), unitconv.IEC, 2)
	return strings.Replace(s, ".00", "", -1)
}
