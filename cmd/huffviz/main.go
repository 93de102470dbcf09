// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffviz shows how Huffman coding compresses a piece of text.
//
// Example usage:
//
//	$ huffviz --codes --tree aaaabbbcc
//	CODES
//		symbol  freq  code  bits
//		a          4     0     1
//		b          3    11     2
//		c          2    10     2
//
//	TREE
//		#4(9)
//		├── 0: a(4)
//		└── 1: #3(5)
//		    ├── 0: c(2)
//		    └── 1: b(3)
//
//	STATS
//		original 72 bits (9B), compressed 14 bits (2B), 80.56% saved
//		1.56 bits per symbol on average
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/golib/unitconv"
	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/sirupsen/logrus"

	"github.com/dsnet/huffviz"
	"github.com/dsnet/huffviz/huffman"
	"github.com/dsnet/huffviz/internal/errors"
	"github.com/dsnet/huffviz/internal/tool/bench"
)

const defaultMaxSize = "64Ki"

const usageStr = `Usage: %s [OPTION]... [TEXT]...
Show how Huffman coding compresses TEXT, which is the arguments joined by
spaces. With no TEXT and no --file, read standard input.

  -f, --file=FILE      read the text from FILE; use - for standard input
  -u, --unit=UNIT      split the text into "rune" or "byte" symbols
  -F, --freqs          show the frequency table
  -c, --codes          show the code table
  -t, --tree           show the Huffman tree
  -s, --steps          show the merge steps and the forest after each
  -e, --encoded        show the encoded bit string
  -C, --compare        compare sizes with reference compressors
      --dump           dump every computed artifact
  -m, --max-size=SIZE  refuse inputs larger than SIZE bytes; default 64Ki
  -v, --verbose        log each stage
  -q, --quiet          only log errors
  -h, --help           give this help

Options that take a value must be given as --option=VALUE.
Without any of the section options, all sections except the comparison and
the dump are shown.
`

type options struct {
	file    string
	unit    huffviz.Unit
	freqs   bool
	codes   bool
	tree    bool
	steps   bool
	encoded bool
	compare bool
	dump    bool
	maxSize int
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmdName := filepath.Base(args[0])
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	opts, texts, err := parseArgs(cmdName, args[1:], stderr, log)
	if err == pflag.ErrHelp {
		fmt.Fprintf(stdout, usageStr, cmdName)
		return 0
	}
	if err != nil {
		log.Error(err)
		return 1
	}

	text, err := readText(opts, texts, stdin)
	if err != nil {
		log.Error(err)
		return 1
	}
	log.WithFields(logrus.Fields{"bytes": len(text), "unit": opts.unit}).Debug("read input")

	bw := bufio.NewWriter(stdout)
	r, err := huffviz.Config{Unit: opts.unit, Logger: log}.Visualize(text)
	if huffman.IsEmptyInput(err) {
		fmt.Fprintln(bw, "nothing to visualize")
		return flush(bw, log)
	}
	if err != nil {
		log.Error(err)
		return 1
	}

	if opts.dump {
		pretty.Fprintf(bw, "%# v\n", r)
		return flush(bw, log)
	}
	show := opts.freqs || opts.codes || opts.tree || opts.steps || opts.encoded
	if !show || opts.freqs {
		writeSection(bw, "FREQUENCIES", func(w io.Writer) { writeFreqs(w, r) })
	}
	if !show || opts.codes {
		writeSection(bw, "CODES", func(w io.Writer) { writeCodes(w, r) })
	}
	if !show || opts.tree {
		writeSection(bw, "TREE", func(w io.Writer) { writeTree(w, r.Tree) })
	}
	if !show || opts.steps {
		writeSection(bw, "STEPS", func(w io.Writer) { writeSteps(w, r) })
	}
	if !show || opts.encoded {
		writeSection(bw, "ENCODED", func(w io.Writer) { writeEncoded(w, r.Payload) })
	}
	writeSection(bw, "STATS", func(w io.Writer) { writeStats(w, r.Stats) })
	if opts.compare {
		results := bench.CompareRatio([]byte(text), bench.Codecs())
		name := bench.Name(inputName(opts), len(text))
		writeSection(bw, "COMPARE", func(w io.Writer) { bench.PrintResults(w, name, results, "ratio", "x") })
	}
	return flush(bw, log)
}

func parseArgs(cmdName string, args []string, stderr io.Writer, log *logrus.Logger) (opts options, texts []string, err error) {
	fs := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	fs.SetInterspersed(true)
	fs.Usage = func() { fmt.Fprintf(stderr, usageStr, cmdName) }
	var (
		help    = fs.BoolP("help", "h", false, "")
		file    = fs.StringP("file", "f", "", "")
		unit    = fs.StringP("unit", "u", "rune", "")
		maxSize = fs.StringP("max-size", "m", defaultMaxSize, "")
		verbose = fs.BoolP("verbose", "v", false, "")
		quiet   = fs.BoolP("quiet", "q", false, "")
	)
	fs.BoolVarP(&opts.freqs, "freqs", "F", false, "")
	fs.BoolVarP(&opts.codes, "codes", "c", false, "")
	fs.BoolVarP(&opts.tree, "tree", "t", false, "")
	fs.BoolVarP(&opts.steps, "steps", "s", false, "")
	fs.BoolVarP(&opts.encoded, "encoded", "e", false, "")
	fs.BoolVarP(&opts.compare, "compare", "C", false, "")
	fs.BoolVar(&opts.dump, "dump", false, "")
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	if *help {
		return opts, nil, pflag.ErrHelp
	}

	switch {
	case *verbose && *quiet:
		return opts, nil, errors.New(cmdName, errors.Invalid, "--verbose and --quiet are mutually exclusive")
	case *verbose:
		log.SetLevel(logrus.DebugLevel)
	case *quiet:
		log.SetLevel(logrus.ErrorLevel)
	}
	if opts.unit, err = huffviz.ParseUnit(*unit); err != nil {
		return opts, nil, err
	}
	nf, err := unitconv.ParsePrefix(*maxSize, unitconv.AutoParse)
	if err != nil || nf < 1 {
		return opts, nil, errors.New(cmdName, errors.Invalid, "invalid max size: %q", *maxSize)
	}
	opts.maxSize = int(nf)
	opts.file = *file
	texts = fs.Args()
	if opts.file != "" && len(texts) > 0 {
		return opts, nil, errors.New(cmdName, errors.Invalid, "text arguments and --file are mutually exclusive")
	}
	return opts, texts, nil
}

// readText returns the text to visualize, reading at most opts.maxSize bytes.
func readText(opts options, texts []string, stdin io.Reader) (string, error) {
	var rd io.Reader
	switch {
	case len(texts) > 0:
		rd = strings.NewReader(strings.Join(texts, " "))
	case opts.file == "" || opts.file == "-":
		rd = stdin
	default:
		f, err := os.Open(opts.file)
		if err != nil {
			return "", err
		}
		defer f.Close()
		rd = f
	}
	b, err := io.ReadAll(io.LimitReader(rd, int64(opts.maxSize)+1))
	if err != nil {
		return "", err
	}
	if len(b) > opts.maxSize {
		return "", errors.New("huffviz", errors.Invalid, "input exceeds the maximum size of %sB", huffman.FormatBytes(opts.maxSize))
	}
	return string(b), nil
}

func inputName(opts options) string {
	if opts.file == "" || opts.file == "-" {
		return "input"
	}
	return filepath.Base(opts.file)
}

func flush(bw *bufio.Writer, log logrus.FieldLogger) int {
	if err := bw.Flush(); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
