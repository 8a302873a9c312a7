// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trends aggregates a cleaned corpus into per-topic period totals
// and classifies each topic's trajectory between two year windows.
package trends

import (
	"github.com/pdiddy/insight-engine/pkg/types"
)

// YearRange is an inclusive publication-year window. A zero bound leaves
// that side open.
type YearRange struct {
	From int `json:"from,omitempty" yaml:"from,omitempty"`
	To   int `json:"to,omitempty" yaml:"to,omitempty"`
}

// Contains reports whether year falls inside the range. Works without a
// year (zero) are never contained.
func (r YearRange) Contains(year int) bool {
	if year == 0 {
		return false
	}
	if r.From != 0 && year < r.From {
		return false
	}
	if r.To != 0 && year > r.To {
		return false
	}
	return true
}

// TopicWindow holds one topic's totals for one period.
type TopicWindow struct {
	Pubs  int
	Cites int
}

// Aggregate tallies per-topic publication counts and citation sums over
// the works whose year falls inside the range. A work counts once per
// distinct non-empty topic it lists, repeats notwithstanding. Topics with
// no included works are absent from the result rather than zero-valued.
func Aggregate(works []types.Work, yr YearRange) map[string]TopicWindow {
	totals := make(map[string]TopicWindow)
	for _, w := range works {
		if !yr.Contains(w.Year) {
			continue
		}
		seen := make(map[string]struct{}, len(w.Topics))
		for _, topic := range w.Topics {
			if topic == "" {
				continue
			}
			if _, dup := seen[topic]; dup {
				continue
			}
			seen[topic] = struct{}{}

			tw := totals[topic]
			tw.Pubs++
			tw.Cites += w.Citations
			totals[topic] = tw
		}
	}
	return totals
}
