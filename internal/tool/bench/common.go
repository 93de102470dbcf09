// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the Huffman coder against reference compression
// implementations with respect to encode speed and ratio.
//
// Individual implementations are referred to as codecs and register themselves
// from the init function of the file for their library. Building with the tag
// no_<name>_lib leaves out the corresponding codec.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/dsnet/golib/unitconv"
)

// Primary is the name of the codec that other codecs are compared against.
const Primary = "hv"

// Encoder compresses the entire input and returns the compressed form.
type Encoder func(input []byte) ([]byte, error)

// Decoder reverses the output of the Encoder registered under the same name.
type Decoder func(output []byte) ([]byte, error)

var (
	Encoders map[string]Encoder
	Decoders map[string]Decoder
)

func RegisterEncoder(name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[string]Encoder)
	}
	Encoders[name] = enc
}

func RegisterDecoder(name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[string]Decoder)
	}
	Decoders[name] = dec
}

// Codecs returns the names of all registered encoders in sorted order,
// except that Primary always appears first.
func Codecs() []string {
	var s []string
	for k := range Encoders {
		if k != Primary {
			s = append(s, k)
		}
	}
	sort.Strings(s)
	if _, ok := Encoders[Primary]; ok {
		s = append([]string{Primary}, s...)
	}
	return s
}

// streamEncoder adapts a streaming compressor to an Encoder.
func streamEncoder(newWriter func(io.Writer) (io.WriteCloser, error)) Encoder {
	return func(input []byte) ([]byte, error) {
		buf := new(bytes.Buffer)
		wr, err := newWriter(buf)
		if err != nil {
			return nil, err
		}
		_, cpErr := io.Copy(wr, bytes.NewReader(input))
		if err := wr.Close(); err != nil {
			return nil, err
		}
		if cpErr != nil {
			return nil, cpErr
		}
		return buf.Bytes(), nil
	}
}

// streamDecoder adapts a streaming decompressor to a Decoder.
func streamDecoder(newReader func(io.Reader) (io.Reader, error)) Decoder {
	return func(output []byte) ([]byte, error) {
		rd, err := newReader(bytes.NewReader(output))
		if err != nil {
			return nil, err
		}
		buf := new(bytes.Buffer)
		_, cpErr := io.Copy(buf, rd)
		if rc, ok := rd.(io.Closer); ok {
			if err := rc.Close(); err != nil {
				return nil, err
			}
		}
		if cpErr != nil {
			return nil, cpErr
		}
		return buf.Bytes(), nil
	}
}

// BenchmarkEncoder benchmarks a single encoder on the given input data and
// reports the result.
func BenchmarkEncoder(input []byte, enc Encoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := enc(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

type Result struct {
	Codec string
	Size  int     // Compressed size in bytes
	R     float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D     float64 // Delta ratio relative to the first codec
	Err   error   // Non-nil if the codec could not process the input
}

// CompareRatio compresses input with each of the named codecs.
// A codec that fails reports its error in its own Result.
func CompareRatio(input []byte, codecs []string) []Result {
	return compare(input, codecs, func(enc Encoder) Result {
		output, err := enc(input)
		if err != nil {
			return Result{Err: err}
		}
		ratio := float64(len(input)) / float64(len(output))
		return Result{Size: len(output), R: ratio}
	})
}

// CompareRate measures the encode speed of each of the named codecs.
func CompareRate(input []byte, codecs []string) []Result {
	return compare(input, codecs, func(enc Encoder) Result {
		// Codecs that reject the input would abort the benchmark.
		output, err := enc(input)
		if err != nil {
			return Result{Err: err}
		}
		result := BenchmarkEncoder(input, enc)
		if result.N == 0 {
			return Result{Size: len(output)}
		}
		us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
		rate := float64(result.Bytes) / us
		return Result{Size: len(output), R: rate}
	})
}

func compare(input []byte, codecs []string, run func(Encoder) Result) []Result {
	results := make([]Result, len(codecs))
	for i, c := range codecs {
		if enc, ok := Encoders[c]; ok {
			results[i] = run(enc)
		} else {
			results[i].Err = fmt.Errorf("unknown codec: %s", c)
		}
		results[i].Codec = c
		results[i].D = results[i].R / results[0].R
	}
	return results
}

// Name returns a label for an input of n bytes read from file.
func Name(file string, n int) string {
	s := unitconv.FormatPrefix(float64(n), unitconv.IEC, 2)
	return fmt.Sprintf("%s:%s", file, strings.Replace(s, ".00", "", -1))
}

// PrintResults writes results as a table with one row per codec.
// The title names the unit of R, and suffix is appended to every value of R.
func PrintResults(w io.Writer, name string, results []Result, title, suffix string) error {
	cells := [][]string{{name, "size", title, "delta"}}
	for _, r := range results {
		row := []string{r.Codec, "", "", ""}
		if r.Err != nil {
			row[1] = "error: " + r.Err.Error()
			cells = append(cells, row)
			continue
		}
		row[1] = unitconv.FormatPrefix(float64(r.Size), unitconv.IEC, 2) + "B"
		row[1] = strings.Replace(row[1], ".00", "", -1)
		if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
			row[2] = fmt.Sprintf("%.2f", r.R) + suffix
		}
		if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
			row[3] = fmt.Sprintf("%.2f", r.D) + "x"
		}
		cells = append(cells, row)
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 4)
	for _, row := range cells {
		for i, s := range row {
			if i > 0 && strings.HasPrefix(s, "error: ") {
				continue
			}
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	var bb strings.Builder
	for _, row := range cells {
		bb.WriteString("\t")
		for i, s := range row {
			switch {
			case i == 0:
				bb.WriteString(s + strings.Repeat(" ", maxLens[i]-len(s)))
			case strings.HasPrefix(s, "error: "):
				bb.WriteString("  " + s)
			case i == 3:
				bb.WriteString(strings.Repeat(" ", 2+maxLens[i]-len(s)) + s)
			default:
				bb.WriteString(strings.Repeat(" ", 6+maxLens[i]-len(s)) + s)
			}
		}
		bb.WriteString("\n")
	}
	_, err := io.WriteString(w, bb.String())
	return err
}
