package serialization

import (
	"compress/bzip2"
	"compress/gzip"
	"encoding/gob"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/kiteco/randseg/kite-golib/errors"
)

// Decoder is an interface that matches gob.Decoder and json.Decoder
type Decoder interface {
	// Decode extracts an object from the stream
	Decode(interface{}) error
}

// Decode loads a single object from a file into obj, which must be a pointer. If the
// path ends with .gz, .sz or .bz2 then the contents will be decompressed. The encoding
// is then determined by the remaining file extension, which can be .json or .gob.
//
//	var counts []words.Count
//	err := serialization.Decode("/tmp/counts.json.gz", &counts)
func Decode(path string, obj interface{}) (err error) {
	r, format, err := NewReader(path)
	if err != nil {
		return errors.Wrapf(err, "error loading %s", path)
	}
	defer errors.Defer(&err, r.Close)
	return decodeAs(r, format, path, obj)
}

// Format returns path with any compression suffix removed.
func Format(path string) string {
	for _, suffix := range []string{".gz", ".sz", ".bz2"} {
		if strings.HasSuffix(path, suffix) {
			return strings.TrimSuffix(path, suffix)
		}
	}
	return path
}

// NewReader opens path and transparently decompresses it according to its suffix
// (.gz, .sz or .bz2). It returns the path with the compression suffix removed so the
// caller can dispatch on the remaining extension.
func NewReader(path string) (io.ReadCloser, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		rd, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, "", err
		}
		return &readCloser{Reader: rd, closers: []io.Closer{rd, f}}, Format(path), nil
	case strings.HasSuffix(path, ".sz"):
		return &readCloser{Reader: snappy.NewReader(f), closers: []io.Closer{f}}, Format(path), nil
	case strings.HasSuffix(path, ".bz2"):
		return &readCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, Format(path), nil
	default:
		return f, path, nil
	}
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		err = errors.Combine(err, c.Close())
	}
	return err
}

// decodeAs is like Decode but reads from r and uses format to determine the encoding;
// inpath is only used in error messages.
func decodeAs(r io.Reader, format, inpath string, obj interface{}) error {
	var d Decoder
	switch {
	case strings.HasSuffix(format, ".json"):
		d = json.NewDecoder(r)
	case strings.HasSuffix(format, ".gob"):
		d = gob.NewDecoder(r)
	default:
		return errors.Errorf("could not find decoder for %s", inpath)
	}

	if err := d.Decode(obj); err != nil {
		return errors.Wrapf(err, "error decoding %s", inpath)
	}
	return nil
}
