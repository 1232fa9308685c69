package model

import (
	"math"

	"github.com/cheggaaa/pb/v3"
	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/bobonovski/goibm/alignment"
	"github.com/bobonovski/goibm/config"
	"github.com/bobonovski/goibm/corpus"
	"github.com/bobonovski/goibm/parallel"
	"github.com/bobonovski/goibm/table"
)

var (
	ErrEmptyCorpus       = errors.New("model: empty corpus")
	ErrInvalidIterations = errors.New("model: negative iteration count")
)

// Trainer runs IBM Model 1 EM over a corpus. It owns the translation
// table, every pair owns its alignment state.
type Trainer struct {
	cfg config.Config
	occ alignment.Occurrence

	pairs  []*corpus.SentencePair
	states []PairState
	// distinct source and target word ids of every pair
	sourceIds [][]int
	targetIds [][]int

	source *corpus.Vocabulary
	target *corpus.Vocabulary
	table  *table.TranslationTable
	rounds int
}

// NewTrainer builds the alignment state of every pair and a uniform
// translation table over the corpus vocabularies
func NewTrainer(pairs []*corpus.SentencePair, cfg config.Config) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, ErrEmptyCorpus
	}
	ctor, err := GetEstimator(cfg.Estimator)
	if err != nil {
		return nil, err
	}

	this := &Trainer{
		cfg:       cfg,
		occ:       cfg.OccurrenceStrategy(),
		pairs:     pairs,
		states:    make([]PairState, len(pairs)),
		sourceIds: make([][]int, len(pairs)),
		targetIds: make([][]int, len(pairs)),
	}
	for i, p := range pairs {
		state, err := ctor(p.Source, p.Target, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "sentence pair %d", i)
		}
		this.states[i] = state
	}

	this.source, this.target = corpus.Scan(pairs)
	for i, p := range pairs {
		for _, w := range corpus.Distinct(p.Source) {
			id, _ := this.source.Id(w)
			this.sourceIds[i] = append(this.sourceIds[i], id)
		}
		for _, w := range corpus.Distinct(p.Target) {
			id, _ := this.target.Id(w)
			this.targetIds[i] = append(this.targetIds[i], id)
		}
	}
	this.table = table.New(this.source, this.target)

	log.Infof("%s estimator, %s occurrence counting, %d sentence pairs",
		cfg.Estimator, this.occ, len(pairs))
	return this, nil
}

// Run executes iter EM rounds. Every round is an E-step over all pairs
// followed by an M-step over the whole table.
func (this *Trainer) Run(iter int) error {
	if iter < 0 {
		return errors.Wrapf(ErrInvalidIterations, "%d", iter)
	}

	var bar *pb.ProgressBar
	if this.cfg.Progress {
		bar = pb.StartNew(iter)
		defer bar.Finish()
	}

	for iterIdx := 0; iterIdx < iter; iterIdx += 1 {
		if iterIdx%10 == 0 {
			log.Infof("iter %5d, likelihood %f", this.rounds, this.Likelihood())
		}

		this.expect()
		this.maximize()
		this.rounds += 1

		if bar != nil {
			bar.Increment()
		}
	}

	if iter > 0 {
		log.V(1).Infof("finished %d rounds, likelihood %f", this.rounds, this.Likelihood())
	}
	return nil
}

// E-step, the table is only read until every pair is done
func (this *Trainer) expect() {
	parallel.ForEach(len(this.states), this.cfg.Workers, func(i int) {
		this.states[i].Expect(this.table)
	})
}

// M-step, the expected counts of every pair are summed in corpus order
// so the result does not depend on the number of workers
func (this *Trainer) maximize() {
	partial := make([][]float64, len(this.states))
	parallel.ForEach(len(this.states), this.cfg.Workers, func(i int) {
		partial[i] = this.pairCounts(i)
	})

	counts := this.table.NewCounts()
	for i, c := range partial {
		k := 0
		for _, e := range this.targetIds[i] {
			for _, f := range this.sourceIds[i] {
				counts.Incr(e, f, c[k])
				k += 1
			}
		}
	}
	this.table.Reestimate(counts)
}

// expected counts of pair i for every co-occurring word pair, target
// major
func (this *Trainer) pairCounts(i int) []float64 {
	state := this.states[i]
	c := make([]float64, 0, len(this.targetIds[i])*len(this.sourceIds[i]))
	for _, e := range this.targetIds[i] {
		for _, f := range this.sourceIds[i] {
			c = append(c, state.Count(this.target.Word(e), this.source.Word(f), this.occ))
		}
	}
	return c
}

// Likelihood returns the log probability of the source sentences given
// the target sentences under the current table, up to the constant
// alignment prior
func (this *Trainer) Likelihood() float64 {
	sum := 0.0
	for _, p := range this.pairs {
		for _, f := range p.Source {
			s := 0.0
			for _, e := range p.Target {
				s += this.table.Probability(e, f)
			}
			sum += math.Log(s)
		}
	}
	return sum
}

func (this *Trainer) Table() *table.TranslationTable { return this.table }

// the alignment state of every pair, in corpus order
func (this *Trainer) Pairs() []PairState {
	return append([]PairState(nil), this.states...)
}

func (this *Trainer) SourceVocabulary() *corpus.Vocabulary { return this.source }
func (this *Trainer) TargetVocabulary() *corpus.Vocabulary { return this.target }

// number of rounds run so far
func (this *Trainer) Rounds() int { return this.rounds }
