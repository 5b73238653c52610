package randseg

import (
	"math/rand"
	"time"

	"github.com/kiteco/randseg/kite-golib/errors"
	"github.com/kiteco/randseg/kite-golib/kitelog"
	"github.com/kiteco/randseg/kite-golib/lexicalv0/words"
	"github.com/sbwhitecap/tqdm"
	"github.com/sbwhitecap/tqdm/iterators"
	"go.uber.org/zap"
)

// TrainInput is what a model is trained on. If Inventory is non-nil it is used,
// otherwise the inventory is extracted from Words.
type TrainInput struct {
	Words     []words.Count
	Inventory Inventory
}

// TrainOptions ...
type TrainOptions struct {
	// Rand is the source pairs are sampled from, defaults to a time seeded source.
	Rand *rand.Rand

	// Logger receives per-iteration debug logs, defaults to a no-op logger.
	Logger *zap.Logger

	// Progress draws a progress bar over the merge iterations.
	Progress bool
}

// Train learns VocabSize merges. Each iteration samples a bigram uniformly from the
// current inventory, records its merge rule and rewrites the inventory with
// Inventory.Merge. Training either learns every merge and marks the model trained,
// or fails and leaves the model untouched.
func (m *Model) Train(in TrainInput, opts TrainOptions) error {
	if m.trained {
		return ErrAlreadyTrained
	}

	var inv Inventory
	switch {
	case in.Inventory != nil:
		inv = in.Inventory.Copy()
	case len(in.Words) > 0:
		inv = ExtractBigrams(in.Words, m.boundaryMarker)
	default:
		return ErrMissingTrainingInput
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := kitelog.OrNop(opts.Logger)

	logger.Info("starting random merges",
		zap.Int("vocab_size", m.vocabSize),
		zap.Int("bigrams", len(inv)))

	start := time.Now()
	merges := make([]Merge, 0, m.vocabSize)
	step := func(i int) error {
		if len(inv) == 0 {
			return errors.Wrapf(ErrBigramPoolExhausted, "no bigrams left after %d of %d merges", i, m.vocabSize)
		}

		pair := inv[rng.Intn(len(inv))]
		merges = append(merges, pair.Rule())
		inv = inv.Merge(pair)

		logger.Debug("merged",
			zap.Int("iter", i),
			zap.String("first", pair.First),
			zap.String("second", pair.Second),
			zap.Int("bigrams", len(inv)))
		return nil
	}

	var err error
	if opts.Progress && m.vocabSize > 0 {
		err = withProgress(m.vocabSize, step)
	} else {
		for i := 0; i < m.vocabSize && err == nil; i++ {
			err = step(i)
		}
	}
	if err != nil {
		logger.Warn("training failed", zap.Error(err), zap.Int("merges", len(merges)))
		return err
	}

	m.merges = merges
	m.trained = true

	logger.Info("finished random merges",
		zap.Int("merges", len(merges)),
		zap.Int("bigrams_left", len(inv)),
		zap.Duration("took", time.Since(start)))
	return nil
}

func withProgress(n int, step func(int) error) error {
	var stepErr error
	err := tqdm.With(iterators.Interval(0, n), "random merges", func(v interface{}) (brk bool) {
		stepErr = step(v.(int))
		return stepErr != nil
	})
	if stepErr != nil {
		return stepErr
	}
	return err
}
