// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Work is one bibliographic record as ingested from a source corpus.
type Work struct {
	// ID is the source identifier. It may carry a registry URL prefix
	// (e.g. "https://openalex.org/W2741809807").
	ID string `json:"id" yaml:"id"`

	// DOI is the digital object identifier, possibly carrying a resolver
	// URL or "doi:" scheme prefix.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Title is the display title. It may contain markup.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year. Zero means unknown; works without a
	// year never enter windowed aggregation but can still match the
	// deny-list by identifier or DOI.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Citations is the citation count. Missing counts as zero.
	Citations int `json:"citations" yaml:"citations"`

	// Topics lists topic names attached to the work. A work contributes
	// at most once per distinct topic regardless of repeats.
	Topics []string `json:"topics,omitempty" yaml:"topics,omitempty"`

	// AuthorIDs lists author identifiers, used by per-author deny-list
	// scoping. Aggregation does not read them.
	AuthorIDs []string `json:"author_ids,omitempty" yaml:"author_ids,omitempty"`
}
