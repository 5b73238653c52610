package randseg

import (
	"strings"

	"github.com/kiteco/randseg/kite-golib/errors"
)

const (
	// DefaultSeparator joins tokens in SegmentJoined output.
	DefaultSeparator = "+"
	// DefaultBoundaryMarker stands in for literal spaces, "▁".
	DefaultBoundaryMarker = "▁"
)

// Segmenter splits words into subword tokens.
type Segmenter interface {
	// Segment returns the tokens of word in order.
	Segment(word string) ([]string, error)
	// SegmentJoined returns the tokens of word joined by the segmenter's separator.
	SegmentJoined(word string) (string, error)
}

// Merge is a learned rule: every occurrence of Pattern, two symbols separated by a
// space, is rewritten to Replacement, their concatenation.
type Merge struct {
	Pattern     string
	Replacement string
}

// Model is a vocabulary controlled random segmenter. It starts untrained and becomes
// trained, and from then on immutable, through Train or Load.
type Model struct {
	vocabSize              int
	separator              string
	boundaryMarker         string
	excludeOriginalSymbols bool

	trained bool
	merges  []Merge
}

// NewModel creates an untrained model. An empty boundary marker is replaced by
// DefaultBoundaryMarker; the separator is used as given.
func NewModel(cfg Config) (*Model, error) {
	if cfg.VocabSize < 0 {
		return nil, errors.Errorf("vocab size must be non-negative, got %d", cfg.VocabSize)
	}
	marker := cfg.BoundaryMarker
	if marker == "" {
		marker = DefaultBoundaryMarker
	}
	if strings.Contains(marker, " ") {
		return nil, errors.Errorf("boundary marker %q must not contain a space", marker)
	}

	return &Model{
		vocabSize:              cfg.VocabSize,
		separator:              cfg.Separator,
		boundaryMarker:         marker,
		excludeOriginalSymbols: cfg.ExcludeOriginalSymbols,
		merges:                 []Merge{},
	}, nil
}

// VocabSize is the number of merges the model learns.
func (m *Model) VocabSize() int { return m.vocabSize }

// Separator joins tokens in SegmentJoined.
func (m *Model) Separator() string { return m.separator }

// BoundaryMarker is the symbol that stands in for literal spaces.
func (m *Model) BoundaryMarker() string { return m.boundaryMarker }

// ExcludeOriginalSymbols reports the configured flag. It is carried and persisted
// but has no effect on training or segmentation.
func (m *Model) ExcludeOriginalSymbols() bool { return m.excludeOriginalSymbols }

// Trained reports whether the model holds a learned rule list.
func (m *Model) Trained() bool { return m.trained }

// Config returns the configuration the model was built with.
func (m *Model) Config() Config {
	return Config{
		VocabSize:              m.vocabSize,
		Separator:              m.separator,
		BoundaryMarker:         m.boundaryMarker,
		ExcludeOriginalSymbols: m.excludeOriginalSymbols,
	}
}

// Merges returns a copy of the learned rules in the order they were learned.
func (m *Model) Merges() []Merge {
	merges := make([]Merge, len(m.merges))
	copy(merges, m.merges)
	return merges
}
