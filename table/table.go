package table

import (
	"github.com/bobonovski/goibm/corpus"
	"github.com/bobonovski/goibm/matrix"
	"github.com/bobonovski/goibm/util"
)

// TranslationTable holds t(f | e) for every target word e and source
// word f. The [e, f]-th element of the underlying matrix is the
// probability of source word f given target word e, rows and columns
// follow the order of the vocabularies.
type TranslationTable struct {
	source *corpus.Vocabulary
	target *corpus.Vocabulary
	probs  *matrix.Float64Matrix
}

// New creates a table over the two vocabularies with every
// probability set to 1/|source|. It panics on an empty vocabulary.
func New(source, target *corpus.Vocabulary) *TranslationTable {
	t := Empty(source, target)
	t.probs.Fill(1 / float64(source.Len()))
	return t
}

// Empty creates an all zero table
func Empty(source, target *corpus.Vocabulary) *TranslationTable {
	return &TranslationTable{
		source: source,
		target: target,
		probs:  matrix.NewFloat64Matrix(target.Len(), source.Len()),
	}
}

func (t *TranslationTable) Source() *corpus.Vocabulary { return t.source }
func (t *TranslationTable) Target() *corpus.Vocabulary { return t.target }

// get t(source | target), zero for words outside the vocabularies
func (t *TranslationTable) Probability(target, source string) float64 {
	e, ok := t.target.Id(target)
	if !ok {
		return 0
	}
	f, ok := t.source.Id(source)
	if !ok {
		return 0
	}
	return t.probs.Get(e, f)
}

// get the [e, f]-th element
func (t *TranslationTable) Get(e, f int) float64 {
	return t.probs.Get(e, f)
}

// set the [e, f]-th element
func (t *TranslationTable) Set(e, f int, val float64) {
	t.probs.Set(e, f, val)
}

// get a copy of the distribution over source words of target word e
func (t *TranslationTable) Row(e int) []float64 {
	return append([]float64(nil), t.probs.Row(e)...)
}

// Reestimate replaces every row with the matching row of counts
// divided by its total. A row whose counts sum to zero keeps the zeros.
func (t *TranslationTable) Reestimate(counts *matrix.Float64Matrix) {
	r, c := counts.Shape()
	tr, tc := t.probs.Shape()
	if r != tr || c != tc {
		panic(matrix.ErrBadShape)
	}
	for e := 0; e < r; e += 1 {
		row := t.probs.Row(e)
		copy(row, counts.Row(e))
		util.Normalize(row)
	}
}

// NewCounts creates a zero matrix shaped like the table for collecting
// expected counts
func (t *TranslationTable) NewCounts() *matrix.Float64Matrix {
	r, c := t.probs.Shape()
	return matrix.NewFloat64Matrix(r, c)
}

// Clone returns a deep copy sharing the vocabularies
func (t *TranslationTable) Clone() *TranslationTable {
	return &TranslationTable{
		source: t.source,
		target: t.target,
		probs:  t.probs.Clone(),
	}
}

// Equal reports whether both tables hold the same words and every
// probability differs by at most tol
func (t *TranslationTable) Equal(o *TranslationTable, tol float64) bool {
	if t.source.Len() != o.source.Len() || t.target.Len() != o.target.Len() {
		return false
	}
	for e := 0; e < t.target.Len(); e += 1 {
		for f := 0; f < t.source.Len(); f += 1 {
			p := o.Probability(t.target.Word(e), t.source.Word(f))
			d := t.probs.Get(e, f) - p
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}
