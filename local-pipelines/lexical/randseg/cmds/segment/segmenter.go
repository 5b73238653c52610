package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kiteco/randseg/kite-golib/errors"
	"github.com/kiteco/randseg/kite-golib/lexicalv0/randseg"
)

type lineSegmenter struct {
	seg    randseg.Segmenter
	model  *randseg.Model // traced when set
	marker string
	sep    string

	list  bool
	check bool
	trace bool
}

// run segments every line of in and writes the result to out. Whatever was
// produced before an error is flushed.
func (l lineSegmenter) run(in io.Reader, out io.Writer) (err error) {
	w := bufio.NewWriter(out)
	defer errors.Defer(&err, w.Flush)

	s := bufio.NewScanner(in)
	for s.Scan() {
		if err := l.line(w, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

func (l lineSegmenter) line(w io.Writer, line string) error {
	if l.trace && l.model != nil {
		steps, err := l.model.Trace(line)
		if err != nil {
			return err
		}
		for _, step := range steps {
			fmt.Fprintf(w, "# %s\n", step)
		}
	}

	toks, err := l.seg.Segment(line)
	if err != nil {
		return errors.Wrapf(err, "segmenting %q", line)
	}

	if l.check {
		rebuilt := strings.Join(toks, "")
		if l.marker != "" {
			rebuilt = randseg.Reconstruct(toks, l.marker)
		}
		if rebuilt != line {
			return errors.Errorf("segmentation of %q reconstructs to %q", line, rebuilt)
		}
	}

	if l.list {
		for _, tok := range toks {
			fmt.Fprintln(w, tok)
		}
		fmt.Fprintln(w)
		return nil
	}

	fmt.Fprintln(w, strings.Join(toks, l.sep))
	return nil
}
