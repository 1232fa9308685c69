package alignment

import (
	"math"

	"github.com/pkg/errors"

	"github.com/bobonovski/goibm/matrix"
	"github.com/bobonovski/goibm/util"
)

// Space enumerates every alignment of a sentence pair and keeps one
// weight per alignment. Its size is l^m for m source and l target words,
// so it is only usable for short sentences.
type Space struct {
	source []string
	target []string

	Alignments []Alignment
	Weights    []float64
}

// NewSpace builds the full alignment space of the pair
func NewSpace(source, target []string) (*Space, error) {
	return NewBoundedSpace(source, target, 0)
}

// NewBoundedSpace is NewSpace refusing to enumerate more than limit
// alignments, limit <= 0 means no bound
func NewBoundedSpace(source, target []string, limit int) (*Space, error) {
	if err := checkSentences(source, target); err != nil {
		return nil, err
	}
	m, l := len(source), len(target)

	size, ok := spaceSize(m, l)
	if !ok || (limit > 0 && size > limit) {
		return nil, errors.Wrapf(ErrSpaceTooLarge, "%d target words ^ %d source words", l, m)
	}

	// odometer over target positions, the last source position moving fastest
	alignments := make([]Alignment, 0, size)
	cur := make([]int, m)
	for {
		a := make(Alignment, m)
		for i, j := range cur {
			a[i] = Link{Source: i, Target: j}
		}
		alignments = append(alignments, a)

		i := m - 1
		for ; i >= 0; i -= 1 {
			cur[i] += 1
			if cur[i] < l {
				break
			}
			cur[i] = 0
		}
		if i < 0 {
			break
		}
	}

	weights := make([]float64, size)
	for k := range weights {
		weights[k] = 1
	}

	return &Space{
		source:     source,
		target:     target,
		Alignments: alignments,
		Weights:    weights,
	}, nil
}

// l^m, false on overflow
func spaceSize(m, l int) (int, bool) {
	size := 1
	for i := 0; i < m; i += 1 {
		if size > math.MaxInt32/l {
			return 0, false
		}
		size *= l
	}
	return size, true
}

func (s *Space) Source() []string { return s.source }
func (s *Space) Target() []string { return s.target }

// number of alignments
func (s *Space) Len() int {
	return len(s.Alignments)
}

// Expect scores every alignment with t and normalizes the weights. When
// every alignment scores zero the weights keep those zeros.
func (s *Space) Expect(t Prober) {
	probs := lookup(s.source, s.target, t)
	for k, a := range s.Alignments {
		p := 1.0
		for _, link := range a {
			p *= probs.Get(link.Source, link.Target)
		}
		s.Weights[k] = p
	}
	util.Normalize(s.Weights)
}

// Count returns the weight of the alignments linking f to e
func (s *Space) Count(e, f string, occ Occurrence) float64 {
	is, js := occurrences(s.source, s.target, e, f, occ)
	if is == nil {
		return 0
	}

	sum := 0.0
	for k, a := range s.Alignments {
		if links(a, is, js) {
			sum += s.Weights[k]
		}
	}
	return sum
}

func links(a Alignment, is, js []int) bool {
	for _, i := range is {
		for _, j := range js {
			if a[i].Target == j {
				return true
			}
		}
	}
	return false
}

// MostLikelyAlignment returns the alignment with the largest weight,
// the first one in enumeration order on ties
func (s *Space) MostLikelyAlignment() Alignment {
	best := util.ArgMax(s.Weights)
	return append(Alignment(nil), s.Alignments[best]...)
}

// t(source[i] | target[j]) for every position pair
func lookup(source, target []string, t Prober) *matrix.Float64Matrix {
	probs := matrix.NewFloat64Matrix(len(source), len(target))
	for i, f := range source {
		for j, e := range target {
			probs.Set(i, j, t.Probability(e, f))
		}
	}
	return probs
}
