package main

import (
	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/kiteco/randseg/kite-golib/kitelog"
	"github.com/kiteco/randseg/kite-golib/lexicalv0/randseg"
	"github.com/kiteco/randseg/kite-golib/lexicalv0/words"
	"go.uber.org/zap"
)

const topWords = 10

func main() {
	args := struct {
		Words     []string `arg:"positional,required" help:"word lists, one '<count> <word>' or '<word>' per line, or .json lists"`
		Output    string   `arg:"-o" help:"where to write the bigram inventory (.json or .gob, optionally .gz/.sz)"`
		Marker    string   `help:"symbol that stands in for literal spaces"`
		Normalize bool     `help:"apply unicode NFC normalization to the words"`
		MaxWords  int      `help:"only read this many words from each list, 0 for all"`
		MinCount  int      `help:"drop words seen fewer times than this across all lists"`
		Verbose   bool     `arg:"-v"`
	}{
		Output: "bigrams.json",
		Marker: randseg.DefaultBoundaryMarker,
	}
	arg.MustParse(&args)

	logger := kitelog.New(kitelog.Options{Debug: args.Verbose})
	defer logger.Sync()

	maybeQuit := func(err error) {
		if err != nil {
			logger.Fatal("bigrams failed", zap.Error(err))
		}
	}

	counts := make(words.Counts)
	for _, path := range args.Words {
		list, err := words.Load(path, words.LoadOptions{
			Normalize: args.Normalize,
			MaxWords:  args.MaxWords,
		})
		maybeQuit(err)
		logger.Info("loaded words", zap.String("path", path), zap.String("count", humanize.Comma(int64(len(list)))))
		counts.Add(words.NewCounts(list))
	}

	corpus := counts.Clean(args.MinCount).List()
	logger.Info("folded words",
		zap.String("unique", humanize.Comma(int64(len(counts)))),
		zap.String("kept", humanize.Comma(int64(len(corpus)))))
	if len(corpus) > topWords {
		logger.Debug("most frequent", zap.Strings("words", words.Strings(corpus[:topWords])))
	}

	inv := randseg.ExtractBigrams(corpus, args.Marker)
	logger.Info("extracted bigrams", zap.String("unique", humanize.Comma(int64(len(inv)))))

	maybeQuit(randseg.SaveInventory(args.Output, inv))
	logger.Info("wrote inventory", zap.String("path", args.Output))
}
