package serialization

import (
	"compress/gzip"
	"encoding/gob"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/kiteco/randseg/kite-golib/errors"
)

// Encode writes the object to the path, using the format specified by the file
// extension, which can be .json or .gob. The path may additionally have a .gz or
// .sz suffix, in which case the stream will be gzip or snappy compressed.
func Encode(path string, obj interface{}) (err error) {
	enc, err := NewEncoder(path)
	if err != nil {
		return err
	}
	defer errors.Defer(&err, func() error {
		return errors.WrapfOrNil(enc.Close(), "error closing %s", path)
	})
	return enc.Encode(obj)
}

// Encoder is an interface that matches gob.Encoder and json.Encoder
type Encoder interface {
	// Encode adds an item to the stream
	Encode(interface{}) error
}

// EncodeCloser is an encoder that can also close its underlying stream
type EncodeCloser struct {
	encoder Encoder
	closers []io.Closer
}

// Encode writes an object to the underlying stream
func (e *EncodeCloser) Encode(x interface{}) error {
	return e.encoder.Encode(x)
}

// Close flushes and closes the underlying streams, innermost first. Every stream
// is closed; all errors are combined.
func (e *EncodeCloser) Close() error {
	var err error
	for i := len(e.closers) - 1; i >= 0; i-- {
		err = errors.Combine(err, e.closers[i].Close())
	}
	return err
}

// NewEncoder creates the file at path and returns an encoder that writes in the
// format specified by the file extension, see Encode.
func NewEncoder(path string) (*EncodeCloser, error) {
	w, format, closers, err := createCompressed(path)
	if err != nil {
		return nil, err
	}

	var e Encoder
	switch {
	case strings.HasSuffix(format, ".json"):
		e = json.NewEncoder(w)
	case strings.HasSuffix(format, ".gob"):
		e = gob.NewEncoder(w)
	default:
		closeAll(closers)
		os.Remove(path)
		return nil, errors.Errorf("could not find encoder for %s", path)
	}

	return &EncodeCloser{
		encoder: e,
		closers: closers,
	}, nil
}

// createCompressed creates path, wraps it according to its compression suffix and
// returns the writer, the path with the compression suffix removed, and the
// closers in the order they were opened.
func createCompressed(path string) (io.Writer, string, []io.Closer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, "", nil, err
	}

	var w io.WriteCloser = f
	closers := []io.Closer{f}

	format := path
	switch {
	case strings.HasSuffix(path, ".gz"):
		format = strings.TrimSuffix(path, ".gz")
		w = gzip.NewWriter(w)
		closers = append(closers, w)
	case strings.HasSuffix(path, ".sz"):
		format = strings.TrimSuffix(path, ".sz")
		w = snappy.NewBufferedWriter(w)
		closers = append(closers, w)
	}
	return w, format, closers, nil
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i].Close()
	}
}
