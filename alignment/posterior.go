package alignment

import (
	"github.com/bobonovski/goibm/matrix"
	"github.com/bobonovski/goibm/util"
)

// Posterior is the factored form of Space. Alignment positions are
// independent under Model 1, so the [i, j]-th element holds the
// probability that source position i links to target position j and
// the weight of a full alignment is the product of its links.
type Posterior struct {
	source []string
	target []string
	p      *matrix.Float64Matrix
}

func NewPosterior(source, target []string) (*Posterior, error) {
	if err := checkSentences(source, target); err != nil {
		return nil, err
	}
	p := matrix.NewFloat64Matrix(len(source), len(target))
	p.Fill(1)
	return &Posterior{
		source: source,
		target: target,
		p:      p,
	}, nil
}

func (s *Posterior) Source() []string { return s.source }
func (s *Posterior) Target() []string { return s.target }

// the position posterior matrix, rows are source positions
func (s *Posterior) Matrix() matrix.Matrix {
	return s.p
}

// Expect recomputes the position posteriors from t. A source position
// scoring zero against every target makes every alignment score zero,
// and the whole matrix is zeroed as the exhaustive weights would be.
func (s *Posterior) Expect(t Prober) {
	degenerate := false
	for i, f := range s.source {
		row := s.p.Row(i)
		for j, e := range s.target {
			row[j] = t.Probability(e, f)
		}
		if !util.Normalize(row) {
			degenerate = true
		}
	}
	if degenerate {
		s.p.Fill(0)
	}
}

// Count returns the posterior probability that f links to e
func (s *Posterior) Count(e, f string, occ Occurrence) float64 {
	is, js := occurrences(s.source, s.target, e, f, occ)
	if is == nil {
		return 0
	}
	if occ == FirstOccurrence {
		return s.p.Get(is[0], js[0])
	}

	// one minus the probability that no listed source position hits a
	// listed target position
	miss := 1.0
	for _, i := range is {
		hit := 0.0
		for _, j := range js {
			hit += s.p.Get(i, j)
		}
		miss *= 1 - hit
	}
	return 1 - miss
}

// MostLikelyAlignment picks the best target of every source position,
// the first one on ties
func (s *Posterior) MostLikelyAlignment() Alignment {
	a := make(Alignment, len(s.source))
	for i := range s.source {
		a[i] = Link{Source: i, Target: util.ArgMax(s.p.Row(i))}
	}
	return a
}
