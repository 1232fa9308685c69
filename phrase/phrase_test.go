package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobonovski/goibm/alignment"
	"github.com/bobonovski/goibm/corpus"
)

func links(targets ...int) alignment.Alignment {
	a := make(alignment.Alignment, len(targets))
	for i, j := range targets {
		a[i] = alignment.Link{Source: i, Target: j}
	}
	return a
}

func texts(phrases []Pair) [][2]string {
	var out [][2]string
	for _, p := range phrases {
		out = append(out, [2]string{p.SourceText, p.TargetText})
	}
	return out
}

type trained struct {
	source, target []string
	a              alignment.Alignment
}

func (t trained) Source() []string                         { return t.source }
func (t trained) Target() []string                         { return t.target }
func (t trained) MostLikelyAlignment() alignment.Alignment { return t.a }

func TestExtractReordered(t *testing.T) {
	phrases := Extract(
		corpus.Tokenize("la maison bleue"),
		corpus.Tokenize("the blue house"),
		links(0, 2, 1), 0)

	assert.Equal(t, [][2]string{
		{"la", "the"},
		{"la maison bleue", "the blue house"},
		{"maison", "house"},
		{"maison bleue", "blue house"},
		{"bleue", "blue"},
	}, texts(phrases))

	require.Len(t, phrases, 5)
	assert.Equal(t, Span{Start: 1, End: 3}, phrases[3].Source)
	assert.Equal(t, Span{Start: 1, End: 3}, phrases[3].Target)
	assert.Equal(t, 2, phrases[3].Target.Len())
}

func TestExtractUnalignedTarget(t *testing.T) {
	source := corpus.Tokenize("a b")
	target := corpus.Tokenize("x y z")

	assert.Equal(t, [][2]string{
		{"a", "x"},
		{"a", "x y"},
		{"a b", "x y z"},
		{"b", "y z"},
		{"b", "z"},
	}, texts(Extract(source, target, links(0, 2), 0)))

	assert.Equal(t, [][2]string{
		{"a", "x"},
		{"b", "z"},
	}, texts(Extract(source, target, links(0, 2), 1)))
}

func TestExtractAll(t *testing.T) {
	pairs := []Aligned{
		trained{corpus.Tokenize("la maison"), corpus.Tokenize("the house"), links(0, 1)},
		trained{corpus.Tokenize("la fleur"), corpus.Tokenize("the flower"), links(0, 1)},
	}
	assert.Equal(t, [][2]string{
		{"la", "the"},
		{"la fleur", "the flower"},
		{"la maison", "the house"},
		{"fleur", "flower"},
		{"maison", "house"},
	}, texts(ExtractAll(pairs, 0)))
}

func TestScore(t *testing.T) {
	c := corpus.New([]corpus.TextPair{
		{Source: "la maison", Target: "the house"},
		{Source: "la fleur", Target: "the flower"},
		{Source: "la maison bleue", Target: "the blue house"},
	})
	phrases := Extract(c.Pairs[0].Source, c.Pairs[0].Target, links(0, 1), 0)

	scored := Score(phrases, c.Pairs)
	require.Len(t, scored, 3)
	assert.Equal(t, "la", scored[0].SourceText)
	assert.Equal(t, 1.0, scored[0].Probability)
	assert.Equal(t, "maison", scored[1].SourceText)
	assert.Equal(t, 1.0, scored[1].Probability)
	assert.Equal(t, "la maison", scored[2].SourceText)
	assert.Equal(t, 0.5, scored[2].Probability)

	unseen := Score([]Pair{{SourceText: "chien", TargetText: "dog"}}, c.Pairs)
	assert.Equal(t, 0.0, unseen[0].Probability)
}
