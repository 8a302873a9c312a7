// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"github.com/pdiddy/insight-engine/internal/exclusion"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// CleanSummary reports what Clean removed.
type CleanSummary struct {
	Excluded   int `json:"excluded"`
	Duplicates int `json:"duplicates"`
	Kept       int `json:"kept"`
}

// Clean filters deny-listed works and removes duplicate records, in that
// order. A nil engine skips the exclusion pass. The authorID is the
// viewing context for per-author deny-list rules; empty applies only
// global rules.
func Clean(works []types.Work, eng *exclusion.Engine, authorID string) ([]types.Work, CleanSummary) {
	var sum CleanSummary

	kept := make([]types.Work, 0, len(works))
	for _, w := range works {
		if eng != nil && eng.IsExcluded(w, authorID) {
			sum.Excluded++
			continue
		}
		kept = append(kept, w)
	}

	kept, sum.Duplicates = Dedupe(kept)
	sum.Kept = len(kept)
	return kept, sum
}
