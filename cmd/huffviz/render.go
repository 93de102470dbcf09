// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dsnet/huffviz"
	"github.com/dsnet/huffviz/huffman"
)

// bitsPerLine is the number of encoded bits shown per line.
const bitsPerLine = 64

func writeSection(w io.Writer, title string, body func(io.Writer)) {
	var bb bytes.Buffer
	body(&bb)
	fmt.Fprintln(w, title)
	for _, line := range strings.SplitAfter(bb.String(), "\n") {
		if line != "" {
			fmt.Fprint(w, "\t"+line)
		}
	}
	fmt.Fprintln(w)
}

// writeTable prints cells in aligned columns. The i-th byte of align is 'l'
// or 'r' to align the i-th column to the left or right.
func writeTable(w io.Writer, cells [][]string, align string) {
	var maxLens []int
	for _, row := range cells {
		for i, s := range row {
			if i >= len(maxLens) {
				maxLens = append(maxLens, 0)
			}
			if n := utf8.RuneCountInString(s); maxLens[i] < n {
				maxLens[i] = n
			}
		}
	}
	for _, row := range cells {
		var line string
		for i, s := range row {
			if i > 0 {
				line += "  "
			}
			pad := strings.Repeat(" ", maxLens[i]-utf8.RuneCountInString(s))
			if align[i] == 'l' {
				line += s + pad
			} else {
				line += pad + s
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func writeFreqs(w io.Writer, r *huffviz.Result) {
	cells := [][]string{{"symbol", "count", "share"}}
	total := float64(r.Freqs.Total())
	for _, row := range r.Freqs.Rows() {
		cells = append(cells, []string{
			row.Symbol.String(),
			fmt.Sprint(row.Count),
			fmt.Sprintf("%.2f%%", 100*float64(row.Count)/total),
		})
	}
	writeTable(w, cells, "lrr")
}

func writeCodes(w io.Writer, r *huffviz.Result) {
	cells := [][]string{{"symbol", "freq", "code", "bits"}}
	for _, row := range r.Codes.Rows() {
		cells = append(cells, []string{
			row.Symbol.String(),
			fmt.Sprint(r.Freqs.Count(row.Symbol)),
			row.Code.String(),
			fmt.Sprint(row.Code.Len),
		})
	}
	writeTable(w, cells, "lrrr")
}

// writeTree draws the tree sideways with the root on the first line. Each
// edge is labeled by the bit it contributes to the codes below it.
func writeTree(w io.Writer, t *huffman.Tree) {
	fmt.Fprintln(w, t.Label(t.Root()))
	var walk func(i int, prefix string)
	walk = func(i int, prefix string) {
		n := t.Node(i)
		type edge struct {
			bit byte
			idx int
		}
		var edges []edge
		if n.Left != huffman.Absent {
			edges = append(edges, edge{'0', n.Left})
		}
		if n.Right != huffman.Absent {
			edges = append(edges, edge{'1', n.Right})
		}
		for j, e := range edges {
			branch, next := "├── ", "│   "
			if j == len(edges)-1 {
				branch, next = "└── ", "    "
			}
			fmt.Fprintf(w, "%s%s%c: %s\n", prefix, branch, e.bit, t.Label(e.idx))
			walk(e.idx, prefix+next)
		}
	}
	walk(t.Root(), "")
}

func writeSteps(w io.Writer, r *huffviz.Result) {
	if len(r.Steps) == 0 {
		fmt.Fprintln(w, "single symbol, no merges")
		return
	}
	labels := func(idxs []int) string {
		var ss []string
		for _, i := range idxs {
			ss = append(ss, r.Tree.Label(i))
		}
		return strings.Join(ss, " ")
	}

	cells := [][]string{{"step", "merge", "forest"}}
	cells = append(cells, []string{"0", "", labels(r.Tree.Snapshot(r.Steps, 0))})
	for i, s := range r.Steps {
		cells = append(cells, []string{fmt.Sprint(i + 1), r.Tree.StepString(s), labels(s.Forest)})
	}
	writeTable(w, cells, "rll")
}

func writeEncoded(w io.Writer, p huffman.Payload) {
	s := p.String()
	for len(s) > 0 {
		n := bitsPerLine
		if n > len(s) {
			n = len(s)
		}
		var groups []string
		for line := s[:n]; len(line) > 0; {
			m := 8
			if m > len(line) {
				m = len(line)
			}
			groups = append(groups, line[:m])
			line = line[m:]
		}
		fmt.Fprintln(w, strings.Join(groups, " "))
		s = s[n:]
	}
}

func writeStats(w io.Writer, s huffman.SizeStats) {
	fmt.Fprintln(w, s)
	fmt.Fprintf(w, "%.2f bits per symbol on average\n", s.AvgBits())
}
