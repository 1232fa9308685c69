// Package alignment holds the per sentence pair alignment state of IBM
// Model 1: the exhaustive alignment space and its factored counterpart.
package alignment

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInput  = errors.New("alignment: empty sentence")
	ErrSpaceTooLarge = errors.New("alignment: too many alignments to enumerate")
)

// Link connects the source word at position Source to the target word
// at position Target
type Link struct {
	Source int
	Target int
}

// Alignment maps every source position to exactly one target position,
// ordered by source position
type Alignment []Link

func (a Alignment) String() string {
	parts := make([]string, 0, len(a))
	for _, l := range a {
		parts = append(parts, fmt.Sprintf("(%d, %d)", l.Source, l.Target))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Targets returns the target position of every source position
func (a Alignment) Targets() []int {
	targets := make([]int, len(a))
	for i, l := range a {
		targets[i] = l.Target
	}
	return targets
}

// Prober gives the current translation probability t(source | target)
type Prober interface {
	Probability(target, source string) float64
}

// Occurrence selects which positions of a repeated word take part in
// the expected counts
type Occurrence int

const (
	// only the first position of each word
	FirstOccurrence Occurrence = iota
	// every position of each word
	AllOccurrences
)

func (o Occurrence) String() string {
	switch o {
	case FirstOccurrence:
		return "first"
	case AllOccurrences:
		return "all"
	}
	return fmt.Sprintf("Occurrence(%d)", int(o))
}

func ParseOccurrence(s string) (Occurrence, error) {
	switch s {
	case "first":
		return FirstOccurrence, nil
	case "all":
		return AllOccurrences, nil
	}
	return 0, errors.Errorf("unknown occurrence strategy %q", s)
}

// occurrences returns the positions of f in source and e in target that
// the strategy counts, nil when either word is absent
func occurrences(source, target []string, e, f string, occ Occurrence) ([]int, []int) {
	var is, js []int
	for i, w := range source {
		if w == f {
			is = append(is, i)
			if occ == FirstOccurrence {
				break
			}
		}
	}
	for j, w := range target {
		if w == e {
			js = append(js, j)
			if occ == FirstOccurrence {
				break
			}
		}
	}
	if len(is) == 0 || len(js) == 0 {
		return nil, nil
	}
	return is, js
}

func checkSentences(source, target []string) error {
	if len(source) == 0 || len(target) == 0 {
		return errors.Wrapf(ErrInvalidInput, "source has %d tokens, target has %d",
			len(source), len(target))
	}
	return nil
}
