package main

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/kiteco/randseg/kite-golib/kitelog"
	"github.com/kiteco/randseg/kite-golib/lexicalv0/randseg"
	"go.uber.org/zap"
)

func main() {
	args := struct {
		Model     string  `help:"model written by the train command"`
		Baseline  bool    `help:"use the untrained baseline instead of a model"`
		SplitProb float64 `arg:"--split-prob" help:"baseline split probability"`
		Separator string  `help:"baseline separator"`
		Seed      int64   `arg:"env:RANDSEG_SEED" help:"baseline random seed, 0 seeds from the clock"`
		Input     string  `arg:"-i" help:"file with one word or sentence per line, defaults to stdin"`
		List      bool    `help:"print tokens one per line with a blank line between inputs"`
		Check     bool    `help:"fail if a segmentation does not reconstruct its input"`
		Trace     bool    `help:"print the working string after each merge that changes it"`
		CacheSize int     `arg:"--cache-size" help:"number of segmentations to cache, 0 disables caching"`
		Verbose   bool    `arg:"-v"`
	}{
		SplitProb: randseg.DefaultUncontrolledOptions.SplitProbability,
		Separator: randseg.DefaultUncontrolledOptions.Separator,
		CacheSize: 10000,
	}
	p := arg.MustParse(&args)
	if args.Model == "" && !args.Baseline {
		p.Fail("one of --model or --baseline is required")
	}

	logger := kitelog.New(kitelog.Options{Debug: args.Verbose})
	defer logger.Sync()

	maybeQuit := func(err error) {
		if err != nil {
			logger.Fatal("segmentation failed", zap.Error(err))
		}
	}

	var seg randseg.Segmenter
	var model *randseg.Model
	var marker, sep string
	if args.Baseline {
		seed := args.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		seg = randseg.NewUncontrolled(randseg.UncontrolledOptions{
			Separator:        args.Separator,
			SplitProbability: args.SplitProb,
			Rand:             rand.New(rand.NewSource(seed)),
		})
		sep = args.Separator
	} else {
		var err error
		model, err = randseg.Load(args.Model)
		maybeQuit(err)
		logger.Debug("loaded model", zap.String("path", args.Model), zap.Int("merges", len(model.Merges())))

		seg = model
		marker = model.BoundaryMarker()
		sep = model.Separator()
		if args.CacheSize > 0 {
			seg, err = randseg.NewCachedSegmenter(model, model.Separator(), args.CacheSize)
			maybeQuit(err)
		}
	}

	var in io.Reader = os.Stdin
	if args.Input != "" {
		f, err := os.Open(args.Input)
		maybeQuit(err)
		defer f.Close()
		in = f
	}

	ls := lineSegmenter{
		seg:    seg,
		model:  model,
		marker: marker,
		sep:    sep,
		list:   args.List,
		check:  args.Check,
		trace:  args.Trace,
	}
	maybeQuit(ls.run(in, os.Stdout))
}
