// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"sort"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// TopicInsight is one topic's row in the period comparison. Topics seen
// in only one period still appear, with the absent period's counts at
// zero. In single-period mode the deltas are undefined and Label empty.
type TopicInsight struct {
	Topic      string `json:"topic" yaml:"topic"`
	PubsA      int    `json:"pubs_a" yaml:"pubs_a"`
	PubsB      int    `json:"pubs_b" yaml:"pubs_b"`
	CitesA     int    `json:"cites_a" yaml:"cites_a"`
	CitesB     int    `json:"cites_b" yaml:"cites_b"`
	PubsDelta  Delta  `json:"pubs_delta" yaml:"pubs_delta"`
	CitesDelta Delta  `json:"cites_delta" yaml:"cites_delta"`
	Label      Label  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Options parameterizes an insight build.
type Options struct {
	// PeriodA is the baseline window.
	PeriodA YearRange

	// PeriodB enables comparison mode when non-nil. When nil, only period
	// A counts are reported and no label is produced.
	PeriodB *YearRange

	// Thresholds parameterizes the classifier. Zero value means defaults.
	Thresholds Thresholds
}

// BuildInsights aggregates both periods over a cleaned corpus and
// classifies every topic seen in either. Rows come back sorted by topic
// name for a deterministic default order; callers re-sort with
// SortInsights.
func BuildInsights(works []types.Work, opts Options) []TopicInsight {
	th := opts.Thresholds
	if th == (Thresholds{}) {
		th = DefaultThresholds()
	}

	winA := Aggregate(works, opts.PeriodA)
	var winB map[string]TopicWindow
	if opts.PeriodB != nil {
		winB = Aggregate(works, *opts.PeriodB)
	}

	topics := make(map[string]struct{}, len(winA)+len(winB))
	for t := range winA {
		topics[t] = struct{}{}
	}
	for t := range winB {
		topics[t] = struct{}{}
	}

	rows := make([]TopicInsight, 0, len(topics))
	for topic := range topics {
		a := winA[topic]
		row := TopicInsight{
			Topic:      topic,
			PubsA:      a.Pubs,
			CitesA:     a.Cites,
			PubsDelta:  UndefinedDelta(),
			CitesDelta: UndefinedDelta(),
		}
		if opts.PeriodB != nil {
			b := winB[topic]
			row.PubsB = b.Pubs
			row.CitesB = b.Cites
			row.PubsDelta = PercentChange(a.Pubs, b.Pubs)
			row.CitesDelta = PercentChange(a.Cites, b.Cites)
			row.Label = Classify(a.Pubs, b.Pubs, a.Cites, b.Cites, th)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Topic < rows[j].Topic })
	return rows
}
