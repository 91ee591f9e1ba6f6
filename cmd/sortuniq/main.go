package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	g "github.com/anacrolix/generics"
	"github.com/pkg/errors"

	"github.com/mibar/treeset/pkg/treeset"
)

type options struct {
	reverse     bool
	from, until string
	after       string
	head, tail  int
	file        string
}

func main() {
	var opts options
	flag.BoolVar(&opts.reverse, "reverse", false, "sort in descending order")
	flag.StringVar(&opts.from, "from", "", "keep only lines >= this value")
	flag.StringVar(&opts.until, "until", "", "keep only lines < this value")
	flag.StringVar(&opts.after, "after", "", "start printing at the first line >= this value")
	flag.IntVar(&opts.head, "head", 0, "print only the first N lines (0 = all)")
	flag.IntVar(&opts.tail, "tail", 0, "print only the last N lines (0 = all)")
	flag.StringVar(&opts.file, "file", "", "path to input file (default: read from stdin)")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sortuniq: %v\n", err)
		os.Exit(1)
	}
}

// run reads lines, folds them into a sorted set (deduplicating as it
// goes) and prints the selected view in order.
func run(stdin io.Reader, stdout io.Writer, opts options) error {
	r := stdin
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	compare := treeset.Natural[string]()
	if opts.reverse {
		forward := compare
		compare = func(a, b string) int { return forward(b, a) }
	}

	s := treeset.New(compare)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		s = s.Add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}

	// Bounds are interpreted under the active order, so with -reverse,
	// -from names the greatest line to keep.
	var lo, hi g.Option[string]
	if opts.from != "" {
		lo = g.Some(opts.from)
	}
	if opts.until != "" {
		hi = g.Some(opts.until)
	}
	if lo.Ok || hi.Ok {
		s = s.RangeOpt(lo, hi)
	}
	if opts.head > 0 {
		s = s.Take(opts.head)
	}
	if opts.tail > 0 {
		s = s.TakeRight(opts.tail)
	}

	seq := s.All()
	if opts.after != "" {
		seq = s.From(opts.after)
	}

	out := bufio.NewWriter(stdout)
	for line := range seq {
		fmt.Fprintln(out, line)
	}
	return errors.Wrap(out.Flush(), "write output")
}
