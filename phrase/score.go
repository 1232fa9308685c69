package phrase

import (
	"sort"
	"strings"

	"github.com/bobonovski/goibm/corpus"
)

// Scored is a phrase pair with its estimated translation probability
type Scored struct {
	Pair
	Probability float64
}

// Score estimates p(target phrase | source phrase) as the share of the
// corpus pairs containing the source phrase whose target side also
// contains the target phrase. Containment is plain substring matching
// on the space joined sentences. The result is sorted by probability,
// highest first.
func Score(phrases []Pair, pairs []*corpus.SentencePair) []Scored {
	sources := make([]string, len(pairs))
	targets := make([]string, len(pairs))
	for i, p := range pairs {
		sources[i] = strings.Join(p.Source, " ")
		targets[i] = strings.Join(p.Target, " ")
	}

	scored := make([]Scored, 0, len(phrases))
	for _, ph := range phrases {
		num, denom := 0, 0
		for i := range pairs {
			if strings.Contains(sources[i], ph.SourceText) {
				denom += 1
				if strings.Contains(targets[i], ph.TargetText) {
					num += 1
				}
			}
		}
		s := Scored{Pair: ph}
		if denom > 0 {
			s.Probability = float64(num) / float64(denom)
		}
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Probability != scored[j].Probability {
			return scored[i].Probability > scored[j].Probability
		}
		if scored[i].SourceText != scored[j].SourceText {
			return scored[i].SourceText < scored[j].SourceText
		}
		return scored[i].TargetText < scored[j].TargetText
	})
	return scored
}
