// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func lenBase10(n int) int { return len(fmt.Sprintf("%d", n)) }
func padLeft(s string, m int) string {
	if pad := m - utf8.RuneCountInString(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func (ft FrequencyTable) String() string {
	rows := ft.Rows()
	var maxSym, maxCnt int
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.Symbol.String()); maxSym < n {
			maxSym = n
		}
		if maxCnt < r.Count {
			maxCnt = r.Count
		}
	}
	maxCntStr := lenBase10(maxCnt)

	var ss []string
	ss = append(ss, "{")
	for _, r := range rows {
		ss = append(ss, fmt.Sprintf("\t%s:  %s,",
			padLeft(r.Symbol.String(), maxSym), padLeft(fmt.Sprint(r.Count), maxCntStr)))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

func (ct CodeTable) String() string {
	rows := ct.Rows()
	var maxSym, maxLen int
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.Symbol.String()); maxSym < n {
			maxSym = n
		}
		if maxLen < int(r.Code.Len) {
			maxLen = int(r.Code.Len)
		}
	}
	maxLenStr := lenBase10(maxLen)

	var ss []string
	ss = append(ss, "{")
	for _, r := range rows {
		ss = append(ss, fmt.Sprintf("\t%s:  {bits: %s, code: %s},",
			padLeft(r.Symbol.String(), maxSym),
			padLeft(fmt.Sprint(r.Code.Len), maxLenStr),
			padLeft(r.Code.String(), maxLen)))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

// StepString renders the merge as "left+right=merged" along with the
// frequency of each node. Leaves are labeled by symbol and internal nodes by
// index, as in "c(2)+b(3)=#3(5)".
func (t *Tree) StepString(s Step) string {
	return fmt.Sprintf("%s+%s=%s", t.Label(s.Left), t.Label(s.Right), t.Label(s.Merged))
}

// Label names node i by its symbol if it is a leaf or by its index otherwise,
// followed by its frequency in parentheses.
func (t *Tree) Label(i int) string {
	n := t.nodes[i]
	if n.leaf {
		return fmt.Sprintf("%v(%d)", n.Symbol, n.Freq)
	}
	return fmt.Sprintf("#%d(%d)", i, n.Freq)
}
