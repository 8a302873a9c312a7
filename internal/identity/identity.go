// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package identity normalizes work identifiers, DOIs, and titles into
// canonical forms suitable for set-membership comparison. All functions
// are pure and total: empty input yields an empty string, and every
// output is a fixed point of its own function.
package identity

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// registryPrefixPattern matches a leading registry URL prefix: scheme,
// optional www., host, and the first path separator.
var registryPrefixPattern = regexp.MustCompile(`^https?://(?:www\.)?[^/]+/`)

// doiPrefixPattern matches DOI resolver URL prefixes and the doi: scheme.
var doiPrefixPattern = regexp.MustCompile(`^(?:https?://(?:www\.)?(?:dx\.)?doi\.org/|doi:)`)

// stripMarks decomposes to NFD, drops combining marks, and recomposes,
// turning "é" into "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CanonicalID returns the canonical form of a work or author identifier:
// trimmed, lowercased, with any leading registry URL prefix removed
// ("https://openalex.org/W123" → "w123").
func CanonicalID(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))
	if s == "" {
		return ""
	}
	return registryPrefixPattern.ReplaceAllString(s, "")
}

// CanonicalDOI returns the bare DOI: trimmed, lowercased, with any
// resolver URL or "doi:" scheme prefix removed.
func CanonicalDOI(doi string) string {
	s := strings.ToLower(strings.TrimSpace(doi))
	if s == "" {
		return ""
	}
	return doiPrefixPattern.ReplaceAllString(s, "")
}

// TitleSlug derives a comparison slug from a title and optional year
// (zero = absent). The slug is stable against curly dashes, accents, and
// punctuation but remains sensitive to actual wording: title and year are
// joined, lowercased, stripped of diacritics, Unicode dashes become plain
// hyphens, any other non-alphanumeric character becomes a space, and the
// remaining words are joined with single hyphens.
func TitleSlug(title string, year int) string {
	s := strings.TrimSpace(title)
	if year > 0 {
		if s != "" {
			s += " "
		}
		s += strconv.Itoa(year)
	}
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Pd, r):
			b.WriteRune('-')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-':
			b.WriteRune('-')
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}
