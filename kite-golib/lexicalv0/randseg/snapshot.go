package randseg

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	spooky "github.com/dgryski/go-spooky"
	"github.com/kiteco/randseg/kite-golib/errors"
	"github.com/kiteco/randseg/kite-golib/serialization"
)

const snapshotVersion = 1

// snapshot is the persisted form of a Model.
type snapshot struct {
	Version                int
	VocabSize              int
	Separator              string
	BoundaryMarker         string
	ExcludeOriginalSymbols bool
	Trained                bool
	Merges                 []Merge
	Checksum               uint64
}

func (m *Model) snapshot() snapshot {
	s := snapshot{
		Version:                snapshotVersion,
		VocabSize:              m.vocabSize,
		Separator:              m.separator,
		BoundaryMarker:         m.boundaryMarker,
		ExcludeOriginalSymbols: m.excludeOriginalSymbols,
		Trained:                m.trained,
		Merges:                 m.Merges(),
	}
	s.Checksum = s.checksum()
	return s
}

// checksum fingerprints every field but Checksum.
func (s snapshot) checksum() uint64 {
	var buf bytes.Buffer
	var num [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(num[:], uint64(v))
		buf.Write(num[:])
	}
	writeString := func(v string) {
		writeInt(len(v))
		buf.WriteString(v)
	}

	writeInt(s.Version)
	writeInt(s.VocabSize)
	writeString(s.Separator)
	writeString(s.BoundaryMarker)
	if s.ExcludeOriginalSymbols {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	if s.Trained {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	writeInt(len(s.Merges))
	for _, rule := range s.Merges {
		writeString(rule.Pattern)
		writeString(rule.Replacement)
	}
	return spooky.Hash64(buf.Bytes())
}

func (s snapshot) model() (*Model, error) {
	switch {
	case s.Version != snapshotVersion:
		return nil, errors.Errorf("unsupported snapshot version %d", s.Version)
	case s.Checksum != s.checksum():
		return nil, errors.Errorf("checksum mismatch: stored %x, computed %x", s.Checksum, s.checksum())
	case !s.Trained && len(s.Merges) > 0:
		return nil, errors.Errorf("untrained snapshot holds %d merges", len(s.Merges))
	case s.Trained && len(s.Merges) != s.VocabSize:
		return nil, errors.Errorf("snapshot holds %d merges, expected %d", len(s.Merges), s.VocabSize)
	}

	m, err := NewModel(Config{
		VocabSize:              s.VocabSize,
		Separator:              s.Separator,
		BoundaryMarker:         s.BoundaryMarker,
		ExcludeOriginalSymbols: s.ExcludeOriginalSymbols,
	})
	if err != nil {
		return nil, err
	}
	m.trained = s.Trained
	m.merges = append(m.merges, s.Merges...)
	return m, nil
}

// Save writes the model to path, encoded according to the extension: .gob or .json,
// optionally followed by .gz or .sz for compression.
func (m *Model) Save(path string) error {
	s := m.snapshot()
	if isJSON(path) {
		if err := s.checkUTF8(); err != nil {
			return &SerializationError{Op: "save", Path: path, Err: err}
		}
	}
	if err := serialization.Encode(path, s); err != nil {
		return &SerializationError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Load reads a model written by Save.
func Load(path string) (*Model, error) {
	var s snapshot
	if err := serialization.Decode(path, &s); err != nil {
		return nil, &SerializationError{Op: "load", Path: path, Err: err}
	}
	m, err := s.model()
	if err != nil {
		return nil, &SerializationError{Op: "load", Path: path, Err: err}
	}
	return m, nil
}

// WriteTo writes the model as indented JSON.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	s := m.snapshot()
	if err := s.checkUTF8(); err != nil {
		return 0, &SerializationError{Op: "write", Err: err}
	}

	// MarshalIndent to make it slightly easier to read
	buf, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return 0, &SerializationError{Op: "write", Err: err}
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), &SerializationError{Op: "write", Err: err}
	}
	return int64(n), nil
}

// ReadModel reads a model written by WriteTo.
func ReadModel(r io.Reader) (*Model, error) {
	var s snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, &SerializationError{Op: "read", Err: err}
	}
	m, err := s.model()
	if err != nil {
		return nil, &SerializationError{Op: "read", Err: err}
	}
	return m, nil
}

// SaveInventory writes inv to path so it can later be passed to Train, see Save
// for the supported extensions.
func SaveInventory(path string, inv Inventory) error {
	if inv == nil {
		inv = Inventory{}
	}
	if isJSON(path) {
		if err := inv.checkUTF8(); err != nil {
			return &SerializationError{Op: "save inventory", Path: path, Err: err}
		}
	}
	if err := serialization.Encode(path, inv); err != nil {
		return &SerializationError{Op: "save inventory", Path: path, Err: err}
	}
	return nil
}

// LoadInventory reads an inventory written by SaveInventory. The result is never nil.
func LoadInventory(path string) (Inventory, error) {
	var inv Inventory
	if err := serialization.Decode(path, &inv); err != nil {
		return nil, &SerializationError{Op: "load inventory", Path: path, Err: err}
	}
	if inv == nil {
		inv = Inventory{}
	}
	return inv, nil
}

// encoding/json replaces invalid UTF-8 with U+FFFD, so JSON targets are checked up
// front; gob stores strings byte for byte.
func isJSON(path string) bool {
	return strings.HasSuffix(serialization.Format(path), ".json")
}

func checkUTF8(field, v string) error {
	if utf8.ValidString(v) {
		return nil
	}
	return errors.Wrapf(ErrInvalidUTF8, "%s %q", field, v)
}

func (s snapshot) checkUTF8() error {
	if err := checkUTF8("separator", s.Separator); err != nil {
		return err
	}
	if err := checkUTF8("boundary marker", s.BoundaryMarker); err != nil {
		return err
	}
	for i, rule := range s.Merges {
		if err := checkUTF8(fmt.Sprintf("merge %d", i), rule.Pattern); err != nil {
			return err
		}
		if err := checkUTF8(fmt.Sprintf("merge %d", i), rule.Replacement); err != nil {
			return err
		}
	}
	return nil
}

func (inv Inventory) checkUTF8() error {
	for i, b := range inv {
		if err := checkUTF8(fmt.Sprintf("bigram %d", i), b.First+" "+b.Second); err != nil {
			return err
		}
	}
	return nil
}
