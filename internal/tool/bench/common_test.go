// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/huffviz/internal/testutil"
)

func loadFile(file string, n int) []byte {
	return []byte(testutil.MustLoadFile("../../../testdata/"+file, n))
}

// TestCodecs tests that the output of each registered encoder is a valid input
// for the decoder registered under the same name.
func TestCodecs(t *testing.T) {
	rand := testutil.NewRand(0)
	inputs := map[string][]byte{
		"twain.txt":   loadFile("twain.txt", 1e4),
		"unicode.txt": loadFile("unicode.txt", 1e4),
		"skewed":      []byte(rand.SkewedText(1e4, "abcdefgh")),
	}
	for name, input := range inputs {
		input := input
		t.Run(fmt.Sprintf("File:%v", name), func(t *testing.T) {
			for _, c := range Codecs() {
				output, err := Encoders[c](input)
				if err != nil {
					t.Errorf("codec %s, unexpected Encode error: %v", c, err)
					continue
				}
				if len(output) == 0 || len(output) >= len(input) {
					t.Errorf("codec %s, compressed %d bytes to %d bytes", c, len(input), len(output))
				}
				dec, ok := Decoders[c]
				if !ok {
					continue
				}
				got, err := dec(output)
				if err != nil {
					t.Errorf("codec %s, unexpected Decode error: %v", c, err)
					continue
				}
				if !bytes.Equal(got, input) {
					t.Errorf("codec %s, data mismatch", c)
				}
			}
		})
	}
}

func TestCodecsOrder(t *testing.T) {
	want := []string{"hv", "huff0", "kp", "std", "xz"}
	if diff := cmp.Diff(want, Codecs()); diff != "" {
		t.Errorf("Codecs() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareRatio(t *testing.T) {
	input := loadFile("twain.txt", -1)
	results := CompareRatio(input, []string{"hv", "std", "nope"})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	hv := results[0]
	if hv.Err != nil || hv.D != 1 {
		t.Errorf("primary result = %+v, want no error and delta 1", hv)
	}
	if got := float64(len(input)) / float64(hv.Size); got != hv.R {
		t.Errorf("ratio = %v, want %v", hv.R, got)
	}
	// Flate in Huffman-only mode adds block headers and limits code lengths,
	// but otherwise codes the same statistics.
	if std := results[1]; std.Err != nil || std.Size < hv.Size {
		t.Errorf("flate result = %+v, want at least %d bytes", std, hv.Size)
	}
	if results[2].Err == nil {
		t.Errorf("unknown codec reported no error")
	}
}

func TestCompareRatioRejected(t *testing.T) {
	// A single repeated byte is rejected by huff0 but not by the others.
	input := bytes.Repeat([]byte("z"), 1000)
	results := CompareRatio(input, []string{"hv", "huff0", "kp"})
	if results[0].Err != nil || results[0].Size != 125 {
		t.Errorf("hv result = %+v, want 125 bytes", results[0])
	}
	if results[1].Err == nil {
		t.Errorf("huff0 result = %+v, want error", results[1])
	}
	if results[2].Err != nil {
		t.Errorf("kp result error: %v", results[2].Err)
	}

	var bb bytes.Buffer
	if err := PrintResults(&bb, Name("zeros", len(input)), results, "ratio", "x"); err != nil {
		t.Fatalf("PrintResults error: %v", err)
	}
	out := bb.String()
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("got %d lines, want 4:\n%s", got, out)
	}
	for _, s := range []string{"ratio", "8.00x", "error: ", "1.00x"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestName(t *testing.T) {
	var vectors = []struct {
		file string
		n    int
		want string
	}{
		{"twain.txt", 1 << 10, "twain.txt:1Ki"},
		{"twain.txt", 64 << 10, "twain.txt:64Ki"},
		{"stdin", 1 << 20, "stdin:1Mi"},
	}
	for i, v := range vectors {
		if got := Name(v.file, v.n); got != v.want {
			t.Errorf("test %d, Name() = %q, want %q", i, got, v.want)
		}
	}
}

func BenchmarkCodecs(b *testing.B) {
	input := loadFile("twain.txt", 1e5)
	for _, c := range Codecs() {
		enc := Encoders[c]
		b.Run(c, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			for i := 0; i < b.N; i++ {
				enc(input)
			}
		})
	}
}

func TestCompareRate(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
	}
	input := loadFile("twain.txt", 1e4)
	results := CompareRate(input, []string{"hv", "kp"})
	for _, r := range results {
		if r.Err != nil || r.R <= 0 || r.Size == 0 {
			t.Errorf("codec %s, unexpected result: %+v", r.Codec, r)
		}
	}
	if results[0].D != 1 {
		t.Errorf("primary delta = %v, want 1", results[0].D)
	}
}
