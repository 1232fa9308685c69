package model

import (
	"github.com/pkg/errors"

	"github.com/bobonovski/goibm/alignment"
	"github.com/bobonovski/goibm/config"
	"github.com/bobonovski/goibm/corpus"
	"github.com/bobonovski/goibm/table"
)

// Option adjusts the configuration used by Train
type Option func(*config.Config)

func WithEstimator(name string) Option {
	return func(c *config.Config) { c.Estimator = name }
}

func WithOccurrence(occ alignment.Occurrence) Option {
	return func(c *config.Config) { c.Occurrence = occ.String() }
}

func WithWorkers(n int) Option {
	return func(c *config.Config) { c.Workers = n }
}

func WithMaxAlignments(n int) Option {
	return func(c *config.Config) { c.MaxAlignments = n }
}

func WithProgress() Option {
	return func(c *config.Config) { c.Progress = true }
}

// Train tokenizes texts and runs iterations EM rounds on them with the
// default configuration changed by opts. It returns the trained pairs in
// input order and the final translation table.
func Train(texts []corpus.TextPair, iterations int, opts ...Option) ([]PairState, *table.TranslationTable, error) {
	if iterations < 0 {
		return nil, nil, errors.Wrapf(ErrInvalidIterations, "%d", iterations)
	}

	cfg := config.Default()
	cfg.Iterations = iterations
	for _, opt := range opts {
		opt(&cfg)
	}

	trainer, err := NewTrainer(corpus.New(texts).Pairs, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := trainer.Run(iterations); err != nil {
		return nil, nil, err
	}
	return trainer.Pairs(), trainer.Table(), nil
}
