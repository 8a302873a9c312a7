// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"fmt"
	"sort"
	"strings"
)

// rank maps a delta onto a totally ordered key: a category for the
// sentinels plus the magnitude within the finite band. Undefined sorts
// below -Inf, so unknown values surface first in ascending order while
// staying distinguishable in display.
func (d Delta) rank() (int, float64) {
	switch d.State {
	case DeltaUndefined:
		return 0, 0
	case DeltaNegInf:
		return 1, 0
	case DeltaFinite:
		return 2, d.Value
	default:
		return 3, 0
	}
}

// CompareDeltas orders two deltas ascending: undefined, -Inf, finite by
// value, +Inf. Equal sentinels compare equal so stable sorts preserve
// input order for ties.
func CompareDeltas(a, b Delta) int {
	ca, va := a.rank()
	cb, vb := b.rank()
	if ca != cb {
		if ca < cb {
			return -1
		}
		return 1
	}
	if va < vb {
		return -1
	}
	if va > vb {
		return 1
	}
	return 0
}

// SortField names a sortable TopicInsight column.
type SortField string

const (
	SortTopic      SortField = "topic"
	SortPubsA      SortField = "pubsA"
	SortPubsB      SortField = "pubsB"
	SortCitesA     SortField = "citesA"
	SortCitesB     SortField = "citesB"
	SortPubsDelta  SortField = "pubsDelta"
	SortCitesDelta SortField = "citesDelta"
	SortLabel      SortField = "label"
)

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func insightCompare(field SortField) (func(a, b TopicInsight) int, error) {
	switch field {
	case SortTopic:
		return func(a, b TopicInsight) int { return strings.Compare(a.Topic, b.Topic) }, nil
	case SortPubsA:
		return func(a, b TopicInsight) int { return compareInts(a.PubsA, b.PubsA) }, nil
	case SortPubsB:
		return func(a, b TopicInsight) int { return compareInts(a.PubsB, b.PubsB) }, nil
	case SortCitesA:
		return func(a, b TopicInsight) int { return compareInts(a.CitesA, b.CitesA) }, nil
	case SortCitesB:
		return func(a, b TopicInsight) int { return compareInts(a.CitesB, b.CitesB) }, nil
	case SortPubsDelta:
		return func(a, b TopicInsight) int { return CompareDeltas(a.PubsDelta, b.PubsDelta) }, nil
	case SortCitesDelta:
		return func(a, b TopicInsight) int { return CompareDeltas(a.CitesDelta, b.CitesDelta) }, nil
	case SortLabel:
		return func(a, b TopicInsight) int { return strings.Compare(string(a.Label), string(b.Label)) }, nil
	default:
		return nil, fmt.Errorf("unknown sort field %q", field)
	}
}

// SortInsights stably sorts rows by the given field, ascending unless
// descending is set. Direction flips the established total order
// uniformly, so infinities and undefined values stay at the extremes
// instead of changing sign, and ties keep their input order either way.
func SortInsights(rows []TopicInsight, field SortField, descending bool) error {
	cmp, err := insightCompare(field)
	if err != nil {
		return err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return nil
}
