package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/golang/glog"

	"github.com/bobonovski/goibm/config"
	"github.com/bobonovski/goibm/corpus"
	"github.com/bobonovski/goibm/model"
	"github.com/bobonovski/goibm/phrase"
	"github.com/bobonovski/goibm/sstable"
	"github.com/bobonovski/goibm/table"
)

var (
	input         = flag.String("input_file", "", "training file, .json records or source<TAB>target lines")
	configFile    = flag.String("config", "", "yaml training config, flags set on the command line take precedence")
	iteration     = flag.Int("iter", 10, "number of EM iterations")
	estimator     = flag.String("estimator", config.Factored, "alignment estimator, exhaustive or factored")
	occurrence    = flag.String("occurrence", "first", "positions of repeated words counted, first or all")
	workers       = flag.Int("workers", 1, "goroutines running the expectation step")
	maxAlignments = flag.Int("max_alignments", 0, "largest alignment space per sentence pair for the exhaustive estimator, 0 for no bound")
	progress      = flag.Bool("progress", false, "show a progress bar")
	saveTable     = flag.String("save_table", "", "write the translation table to this file")
	phrases       = flag.Bool("phrases", false, "extract and score phrases from the trained alignments")
	maxPhraseLen  = flag.Int("max_phrase_len", 0, "longest extracted phrase, 0 for no bound")
)

func main() {
	flag.Parse()
	defer log.Flush()

	cfg, err := trainingConfig()
	if err != nil {
		log.Exitf("bad configuration: %v", err)
	}

	// read training data
	data := &corpus.Corpus{}
	if err := data.Load(*input); err != nil {
		log.Exitf("load training data: %v", err)
	}

	trainer, err := model.NewTrainer(data.Pairs, cfg)
	if err != nil {
		log.Exitf("init model: %v", err)
	}
	if err := trainer.Run(cfg.Iterations); err != nil {
		log.Exitf("train model: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, p := range trainer.Pairs() {
		printPair(out, p)
	}
	printTable(out, trainer.Table())

	if *saveTable != "" {
		if err := sstable.SaveTable(trainer.Table(), *saveTable); err != nil {
			log.Exitf("save table: %v", err)
		}
		log.Infof("translation table written to %s", *saveTable)
	}

	if *phrases {
		aligned := make([]phrase.Aligned, 0, len(trainer.Pairs()))
		for _, p := range trainer.Pairs() {
			aligned = append(aligned, p)
		}
		extracted := phrase.ExtractAll(aligned, *maxPhraseLen)
		log.Infof("extracted %d phrase pairs", len(extracted))
		for _, s := range phrase.Score(extracted, data.Pairs) {
			fmt.Fprintf(out, "%s ||| %s\t%g\n", s.SourceText, s.TargetText, s.Probability)
		}
	}
}

// defaults, then the config file, then the flags given explicitly
func trainingConfig() (config.Config, error) {
	cfg := config.Default()
	cfg.Estimator = *estimator
	cfg.Iterations = *iteration
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadFrom(*configFile, cfg); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iter":
			cfg.Iterations = *iteration
		case "estimator":
			cfg.Estimator = *estimator
		case "occurrence":
			cfg.Occurrence = *occurrence
		case "workers":
			cfg.Workers = *workers
		case "max_alignments":
			cfg.MaxAlignments = *maxAlignments
		case "progress":
			cfg.Progress = *progress
		}
	})
	return cfg, cfg.Validate()
}

func printPair(out *bufio.Writer, p model.PairState) {
	fmt.Fprintln(out, "* Sentence Pair *")
	fmt.Fprintf(out, "\t%s\n", strings.Join(p.Source(), " "))
	fmt.Fprintf(out, "\t%s\n", strings.Join(p.Target(), " "))
	fmt.Fprintf(out, "\t%s\n", p.MostLikelyAlignment())
}

func printTable(out *bufio.Writer, t *table.TranslationTable) {
	fmt.Fprintln(out, "* Translation Table *")
	source := t.Source().Words()
	for e, tw := range t.Target().Words() {
		cells := make([]string, 0, len(source))
		for f, sw := range source {
			cells = append(cells, fmt.Sprintf("%s=%g", sw, t.Get(e, f)))
		}
		fmt.Fprintf(out, "%s\t%s\n", tw, strings.Join(cells, " "))
	}
}
