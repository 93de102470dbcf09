// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestResizeText(t *testing.T) {
	var vectors = []struct {
		input string
		n     int
		want  string
	}{
		{"", -1, ""},
		{"abc", -1, "abc"},
		{"abc", 0, ""},
		{"abc", 2, "ab"},
		{"abc", 7, "abcabca"},
		{"日本", 3, "日本日"},
	}

	for i, v := range vectors {
		if got := ResizeText(v.input, v.n); got != v.want {
			t.Errorf("test %d, ResizeText(%q, %d) = %q, want %q", i, v.input, v.n, got, v.want)
		}
	}
}

func TestRandText(t *testing.T) {
	r1, r2 := NewRand(0), NewRand(0)
	s1, s2 := r1.Text(100, "abc"), r2.Text(100, "abc")
	if s1 != s2 {
		t.Errorf("Text mismatch for identical seeds")
	}
	if strings.Trim(s1, "abc") != "" || utf8.RuneCountInString(s1) != 100 {
		t.Errorf("Text(100, %q) = %q", "abc", s1)
	}

	s := NewRand(1).SkewedText(1000, "xyz")
	if x, z := strings.Count(s, "x"), strings.Count(s, "z"); x <= z {
		t.Errorf("SkewedText counts: x=%d, z=%d, want x > z", x, z)
	}
}

func TestBuggyWriter(t *testing.T) {
	var buf bytes.Buffer
	bw := &BuggyWriter{W: &buf, N: 3, Err: io.ErrShortWrite}
	n, err := bw.Write([]byte("hello"))
	if n != 3 || err != io.ErrShortWrite {
		t.Errorf("Write() = (%d, %v), want (3, %v)", n, err, io.ErrShortWrite)
	}
	if got := buf.String(); got != "hel" {
		t.Errorf("written data = %q, want %q", got, "hel")
	}
}
