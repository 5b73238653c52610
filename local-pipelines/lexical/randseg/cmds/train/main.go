package main

import (
	"math/rand"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/kiteco/randseg/kite-golib/errors"
	"github.com/kiteco/randseg/kite-golib/kitelog"
	"github.com/kiteco/randseg/kite-golib/lexicalv0/randseg"
	"github.com/kiteco/randseg/kite-golib/lexicalv0/words"
	"go.uber.org/zap"
)

func main() {
	args := struct {
		Words     string `help:"word list to train on, one '<count> <word>' or '<word>' per line, or a .json list"`
		Bigrams   string `help:"bigram inventory written by the bigrams command, used instead of --words"`
		Config    string `help:"YAML model config, flags below override it"`
		VocabSize int    `arg:"--vocab-size" help:"number of merges to learn"`
		Separator string `help:"separator used when joining tokens"`
		Marker    string `help:"symbol that stands in for literal spaces"`
		Output    string `arg:"-o" help:"where to write the model (.gob or .json, optionally .gz/.sz)"`
		Seed      int64  `arg:"env:RANDSEG_SEED" help:"random seed, 0 seeds from the clock"`
		Normalize bool   `help:"apply unicode NFC normalization to the words"`
		MinCount  int    `help:"drop words seen fewer times than this"`
		Progress  bool   `help:"show a progress bar while merging"`
		Verbose   bool   `arg:"-v" help:"log every merge"`
	}{
		VocabSize: -1,
		Output:    "randseg.gob",
	}
	arg.MustParse(&args)

	logger := kitelog.New(kitelog.Options{Debug: args.Verbose})
	defer logger.Sync()

	maybeQuit := func(err error) {
		if err != nil {
			logger.Fatal("training failed", zap.Error(err))
		}
	}

	cfg := randseg.DefaultConfig()
	if args.Config != "" {
		var err error
		cfg, err = randseg.LoadConfig(args.Config)
		maybeQuit(err)
	}
	if args.VocabSize >= 0 {
		cfg.VocabSize = args.VocabSize
	}
	if args.Separator != "" {
		cfg.Separator = args.Separator
	}
	if args.Marker != "" {
		cfg.BoundaryMarker = args.Marker
	}

	model, err := randseg.NewModel(cfg)
	maybeQuit(err)

	var in randseg.TrainInput
	switch {
	case args.Bigrams != "":
		in.Inventory, err = randseg.LoadInventory(args.Bigrams)
		maybeQuit(err)
		logger.Info("loaded bigrams", zap.String("path", args.Bigrams), zap.String("count", humanize.Comma(int64(len(in.Inventory)))))
	case args.Words != "":
		list, err := words.Load(args.Words, words.LoadOptions{Normalize: args.Normalize})
		maybeQuit(err)
		in.Words = words.Fold(list, args.MinCount)
		logger.Info("loaded words", zap.String("path", args.Words),
			zap.String("count", humanize.Comma(int64(len(list)))),
			zap.String("kept", humanize.Comma(int64(len(in.Words)))))
	default:
		maybeQuit(errors.Wrapf(randseg.ErrMissingTrainingInput, "pass --words or --bigrams"))
	}

	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("training", zap.Int("vocab_size", cfg.VocabSize), zap.Int64("seed", seed))

	start := time.Now()
	err = model.Train(in, randseg.TrainOptions{
		Rand:     rand.New(rand.NewSource(seed)),
		Logger:   logger,
		Progress: args.Progress,
	})
	maybeQuit(err)
	logger.Info("trained", zap.String("merges", humanize.Comma(int64(len(model.Merges())))), zap.Duration("took", time.Since(start)))

	maybeQuit(model.Save(args.Output))
	logger.Info("wrote model", zap.String("path", args.Output))
}
