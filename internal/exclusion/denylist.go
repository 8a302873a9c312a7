// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exclusion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// denyListColumns is the fixed column layout of a deny-list file:
// scope, authorId, workIdentifier, doi, titleSlug.
const denyListColumns = 5

// ParseDenyList reads deny-list rows from r. The first row is a header.
// Rows with fewer than five columns, unparsable rows, and per-author rows
// missing an author key are skipped and counted, never fatal; the engine
// always gets the best-effort remainder.
func ParseDenyList(r io.Reader) ([]Entry, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var entries []Entry
	skipped := 0

	for row := 0; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, skipped, fmt.Errorf("reading deny-list: %w", err)
		}

		if row == 0 {
			continue
		}
		if len(record) < denyListColumns {
			skipped++
			continue
		}

		entry := Entry{
			Scope:     ParseScope(record[0]),
			AuthorID:  strings.TrimSpace(record[1]),
			WorkID:    strings.TrimSpace(record[2]),
			DOI:       strings.TrimSpace(record[3]),
			TitleSlug: strings.TrimSpace(record[4]),
		}

		// Per-author rows without an author key are inert: dropping them
		// here keeps them from being misread as global rules.
		if entry.Scope == ScopePerAuthor && entry.AuthorID == "" {
			skipped++
			continue
		}

		entries = append(entries, entry)
	}

	return entries, skipped, nil
}
