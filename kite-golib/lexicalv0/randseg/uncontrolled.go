package randseg

import (
	"math/rand"
	"strings"
	"time"
)

// UncontrolledOptions configures an Uncontrolled segmenter.
type UncontrolledOptions struct {
	Separator string

	// SplitProbability is the chance of a split before each symbol but the first.
	SplitProbability float64

	// Rand defaults to a time seeded source.
	Rand *rand.Rand
}

// DefaultUncontrolledOptions splits every boundary with probability one half.
var DefaultUncontrolledOptions = UncontrolledOptions{
	Separator:        DefaultSeparator,
	SplitProbability: 0.5,
}

// Uncontrolled is the untrained baseline: it splits a word before each symbol but
// the first with an independent coin flip. It has no learned state.
type Uncontrolled struct {
	separator string
	p         float64
	rand      *rand.Rand
}

// NewUncontrolled ...
func NewUncontrolled(opts UncontrolledOptions) *Uncontrolled {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Uncontrolled{
		separator: opts.Separator,
		p:         opts.SplitProbability,
		rand:      rng,
	}
}

// Segment never fails.
func (u *Uncontrolled) Segment(word string) ([]string, error) {
	toks := []string{}
	for i, sym := range strings.Split(word, "") {
		if i == 0 || u.shouldSplit() {
			toks = append(toks, sym)
			continue
		}
		toks[len(toks)-1] += sym
	}
	return toks, nil
}

// SegmentJoined ...
func (u *Uncontrolled) SegmentJoined(word string) (string, error) {
	toks, err := u.Segment(word)
	if err != nil {
		return "", err
	}
	return strings.Join(toks, u.separator), nil
}

func (u *Uncontrolled) shouldSplit() bool {
	return u.rand.Float64() < u.p
}
