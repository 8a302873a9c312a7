// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"github.com/pdiddy/insight-engine/internal/identity"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// Dedupe removes records sharing a logical identity, keeping the first
// occurrence. Two records are duplicates when any non-empty canonical key
// (identifier, DOI, or title slug) collides. Returns the kept works and
// the number removed.
func Dedupe(works []types.Work) ([]types.Work, int) {
	seen := make(map[string]struct{}, len(works))
	kept := make([]types.Work, 0, len(works))
	removed := 0

	for _, w := range works {
		keys := identityKeys(w)

		dup := false
		for _, k := range keys {
			if _, ok := seen[k]; ok {
				dup = true
				break
			}
		}
		if dup {
			removed++
			continue
		}

		for _, k := range keys {
			seen[k] = struct{}{}
		}
		kept = append(kept, w)
	}

	return kept, removed
}

// identityKeys returns the prefixed canonical keys of a work. Empty
// canonical values produce no key, so blank records never collide.
func identityKeys(w types.Work) []string {
	keys := make([]string, 0, 3)
	if id := identity.CanonicalID(w.ID); id != "" {
		keys = append(keys, "id:"+id)
	}
	if doi := identity.CanonicalDOI(w.DOI); doi != "" {
		keys = append(keys, "doi:"+doi)
	}
	if slug := identity.TitleSlug(w.Title, w.Year); slug != "" {
		keys = append(keys, "slug:"+slug)
	}
	return keys
}
