// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"golang.org/x/exp/slices"

	"github.com/dsnet/huffviz/internal/errors"
)

// FrequencyTable maps each distinct Symbol to its number of occurrences.
// Every count is positive. A FrequencyTable is immutable once constructed.
type FrequencyTable struct {
	counts map[Symbol]int
	total  int
}

// Row is a single entry of a FrequencyTable.
type Row struct {
	Symbol Symbol
	Count  int
}

// Count computes the frequency of every distinct symbol in syms.
// An empty input yields an empty table.
func Count(syms []Symbol) FrequencyTable {
	ft := FrequencyTable{counts: make(map[Symbol]int)}
	for _, s := range syms {
		ft.counts[s]++
	}
	ft.total = len(syms)
	return ft
}

// CountString computes the frequency of every Unicode scalar in s.
func CountString(s string) FrequencyTable {
	return Count(Runes(s))
}

// NewFrequencyTable constructs a table from explicit counts.
// Every count must be positive.
func NewFrequencyTable(counts map[Symbol]int) (FrequencyTable, error) {
	ft := FrequencyTable{counts: make(map[Symbol]int, len(counts))}
	for s, n := range counts {
		if n <= 0 {
			return FrequencyTable{}, errorf(errors.Invalid, "symbol %v has non-positive count %d", s, n)
		}
		ft.counts[s] = n
		ft.total += n
	}
	return ft, nil
}

// Len reports the number of distinct symbols.
func (ft FrequencyTable) Len() int { return len(ft.counts) }

// Total reports the number of symbols that were counted.
func (ft FrequencyTable) Total() int { return ft.total }

// Count reports the number of occurrences of s, which is zero if s is absent.
func (ft FrequencyTable) Count(s Symbol) int { return ft.counts[s] }

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(ft.counts))
	for s := range ft.counts {
		syms = append(syms, s)
	}
	slices.Sort(syms)
	return syms
}

// Rows returns the table ordered by descending count, where symbols with
// equal counts are in ascending order.
func (ft FrequencyTable) Rows() []Row {
	rows := make([]Row, 0, len(ft.counts))
	for s, n := range ft.counts {
		rows = append(rows, Row{s, n})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		switch {
		case a.Count != b.Count:
			return b.Count - a.Count
		case a.Symbol < b.Symbol:
			return -1
		case a.Symbol > b.Symbol:
			return +1
		}
		return 0
	})
	return rows
}
