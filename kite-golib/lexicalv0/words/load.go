package words

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/kiteco/randseg/kite-golib/errors"
	"github.com/kiteco/randseg/kite-golib/serialization"
	"golang.org/x/text/unicode/norm"
)

// LoadOptions specifies options wrt loading words
type LoadOptions struct {
	// Normalize applies unicode NFC normalization to every word.
	Normalize bool

	// MaxWords stops loading after this many words, 0 means no limit.
	MaxWords int
}

// ReadList reads a word list with one entry per line. A line is either
// "<count> <word>" or a bare "<word>"; blank lines are skipped. Everything after
// the count is the word, so entries may contain spaces.
func ReadList(r io.Reader, opts LoadOptions) ([]Count, error) {
	var counts []Count

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var lineno int
	for s.Scan() {
		lineno++
		line := strings.TrimRightFunc(s.Text(), unicode.IsSpace)
		if strings.TrimSpace(line) == "" {
			continue
		}

		c, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		counts = append(counts, opts.apply(c))
		if opts.MaxWords > 0 && len(counts) >= opts.MaxWords {
			return counts, nil
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func parseLine(line string) (Count, error) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	idx := strings.IndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return Count{Word: trimmed, Count: 1}, nil
	}

	n, err := strconv.Atoi(trimmed[:idx])
	if err != nil {
		// not count-qualified, the whole line is the entry
		return Count{Word: trimmed, Count: 1}, nil
	}
	if n < 0 {
		return Count{}, errors.Errorf("negative count %d", n)
	}

	word := strings.TrimLeftFunc(trimmed[idx:], unicode.IsSpace)
	return Count{Word: word, Count: n}, nil
}

// Load reads the word list at path. Paths ending in .json (optionally followed by a
// compression suffix) hold a JSON list of Count, anything else is read with ReadList.
func Load(path string, opts LoadOptions) (_ []Count, err error) {
	if strings.HasSuffix(serialization.Format(path), ".json") {
		return loadJSON(path, opts)
	}

	r, _, err := serialization.NewReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading words from %s", path)
	}
	defer errors.Defer(&err, r.Close)

	counts, err := ReadList(r, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading words from %s", path)
	}
	return counts, nil
}

func loadJSON(path string, opts LoadOptions) ([]Count, error) {
	var counts []Count
	if err := serialization.Decode(path, &counts); err != nil {
		return nil, err
	}
	for i, c := range counts {
		if c.Count < 0 {
			return nil, errors.Errorf("%s: entry %d (%q) has negative count %d", path, i, c.Word, c.Count)
		}
		counts[i] = opts.apply(c)
	}
	if opts.MaxWords > 0 && len(counts) > opts.MaxWords {
		counts = counts[:opts.MaxWords]
	}
	return counts, nil
}

func (o LoadOptions) apply(c Count) Count {
	if o.Normalize {
		c.Word = norm.NFC.String(c.Word)
	}
	return c
}
