package model

import (
	"github.com/pkg/errors"

	"github.com/bobonovski/goibm/alignment"
	"github.com/bobonovski/goibm/config"
)

var estimators = make(map[string]EstimatorCtor)

// PairState is the alignment state a sentence pair carries between
// EM rounds
type PairState interface {
	Source() []string
	Target() []string
	// recompute the alignment posterior from the current table
	Expect(t alignment.Prober)
	// expected count of f linking to e under the current posterior
	Count(e, f string, occ alignment.Occurrence) float64
	// the best alignment under the current posterior
	MostLikelyAlignment() alignment.Alignment
}

// EstimatorCtor builds the state of one sentence pair
type EstimatorCtor func(source, target []string, cfg config.Config) (PairState, error)

// new estimators should register themselves using this function
func Register(name string, ctor EstimatorCtor) {
	estimators[name] = ctor
}

func GetEstimator(name string) (EstimatorCtor, error) {
	ctor, ok := estimators[name]
	if !ok {
		return nil, errors.Errorf("estimator %s not registered", name)
	}
	return ctor, nil
}
