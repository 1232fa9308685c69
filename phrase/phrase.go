// Package phrase extracts phrase pairs consistent with word alignments
// and scores them against the training corpus.
package phrase

import (
	"sort"
	"strings"

	"github.com/bobonovski/goibm/alignment"
)

// Span is the half open range [Start, End) of word positions
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Pair is a source phrase together with the target phrase it translates
type Pair struct {
	Source     Span
	Target     Span
	SourceText string
	TargetText string
}

// Aligned is a trained sentence pair
type Aligned interface {
	Source() []string
	Target() []string
	MostLikelyAlignment() alignment.Alignment
}

// Extract returns every phrase pair of the sentence pair consistent with
// a: no link leaves the pair of spans and at least one link lies inside.
// Target spans are widened over unaligned target words on both edges.
// Phrases longer than maxLen words on either side are dropped, maxLen <= 0
// allows any length.
func Extract(source, target []string, a alignment.Alignment, maxLen int) []Pair {
	if maxLen <= 0 {
		maxLen = len(source)
		if len(target) > maxLen {
			maxLen = len(target)
		}
	}

	aligned := make([]bool, len(target))
	for _, l := range a {
		aligned[l.Target] = true
	}

	seen := make(map[Pair]bool)
	var phrases []Pair
	for sStart := 0; sStart < len(source); sStart += 1 {
		for sEnd := sStart; sEnd < len(source) && sEnd-sStart < maxLen; sEnd += 1 {
			// smallest target span covering the links of the source span
			tStart, tEnd := len(target), -1
			for _, l := range a {
				if l.Source >= sStart && l.Source <= sEnd {
					if l.Target < tStart {
						tStart = l.Target
					}
					if l.Target > tEnd {
						tEnd = l.Target
					}
				}
			}
			if tEnd < 0 || !consistent(a, sStart, sEnd, tStart, tEnd) {
				continue
			}

			for ts := tStart; ; ts -= 1 {
				for te := tEnd; ; te += 1 {
					if te-ts < maxLen {
						p := Pair{
							Source:     Span{Start: sStart, End: sEnd + 1},
							Target:     Span{Start: ts, End: te + 1},
							SourceText: strings.Join(source[sStart:sEnd+1], " "),
							TargetText: strings.Join(target[ts:te+1], " "),
						}
						if !seen[p] {
							seen[p] = true
							phrases = append(phrases, p)
						}
					}
					if te+1 >= len(target) || aligned[te+1] {
						break
					}
				}
				if ts-1 < 0 || aligned[ts-1] {
					break
				}
			}
		}
	}

	sortPairs(phrases)
	return phrases
}

// no target word inside [tStart, tEnd] links outside [sStart, sEnd]
func consistent(a alignment.Alignment, sStart, sEnd, tStart, tEnd int) bool {
	for _, l := range a {
		if l.Target >= tStart && l.Target <= tEnd && (l.Source < sStart || l.Source > sEnd) {
			return false
		}
	}
	return true
}

// ExtractAll extracts the phrases of every pair under its most likely
// alignment. Equal phrase pairs from different sentences are kept once.
func ExtractAll(pairs []Aligned, maxLen int) []Pair {
	seen := make(map[Pair]bool)
	var phrases []Pair
	for _, p := range pairs {
		for _, ph := range Extract(p.Source(), p.Target(), p.MostLikelyAlignment(), maxLen) {
			if !seen[ph] {
				seen[ph] = true
				phrases = append(phrases, ph)
			}
		}
	}
	sortPairs(phrases)
	return phrases
}

func sortPairs(phrases []Pair) {
	sort.Slice(phrases, func(i, j int) bool {
		a, b := phrases[i], phrases[j]
		if a.Source != b.Source {
			if a.Source.Start != b.Source.Start {
				return a.Source.Start < b.Source.Start
			}
			return a.Source.End < b.Source.End
		}
		if a.Target != b.Target {
			if a.Target.Start != b.Target.Start {
				return a.Target.Start < b.Target.Start
			}
			return a.Target.End < b.Target.End
		}
		if a.SourceText != b.SourceText {
			return a.SourceText < b.SourceText
		}
		return a.TargetText < b.TargetText
	})
}
