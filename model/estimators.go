package model

import (
	"github.com/bobonovski/goibm/alignment"
	"github.com/bobonovski/goibm/config"
)

func init() {
	Register(config.Exhaustive, newExhaustive)
	Register(config.Factored, newFactored)
}

// enumerates all l^m alignments of the pair
func newExhaustive(source, target []string, cfg config.Config) (PairState, error) {
	s, err := alignment.NewBoundedSpace(source, target, cfg.MaxAlignments)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// keeps the m x l position posteriors only
func newFactored(source, target []string, cfg config.Config) (PairState, error) {
	p, err := alignment.NewPosterior(source, target)
	if err != nil {
		return nil, err
	}
	return p, nil
}
