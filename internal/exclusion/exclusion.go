// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package exclusion implements the deny-list matching engine. A deny-list
// is a set of entries identifying works to omit from analysis, either
// globally or for a single author. Lookup structures are built once per
// deny-list snapshot; queries are pure set lookups.
package exclusion

import (
	"strings"

	"github.com/pdiddy/insight-engine/internal/identity"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// Scope determines whether an entry applies to every query or only under
// a specific author context.
type Scope string

const (
	ScopeGlobal    Scope = "global"
	ScopePerAuthor Scope = "per-author"
)

// ParseScope maps a scope token to a Scope. Unrecognized tokens fall back
// to global.
func ParseScope(token string) Scope {
	if strings.EqualFold(strings.TrimSpace(token), string(ScopePerAuthor)) {
		return ScopePerAuthor
	}
	return ScopeGlobal
}

// Entry is one deny-list rule. Any non-empty subset of the three matchers
// may be set; matching any one of them excludes the work.
type Entry struct {
	Scope Scope `json:"scope" yaml:"scope"`

	// AuthorID is required for per-author entries. A per-author entry
	// without an author key is inert and dropped at load time.
	AuthorID string `json:"author_id,omitempty" yaml:"author_id,omitempty"`

	WorkID    string `json:"work_id,omitempty" yaml:"work_id,omitempty"`
	DOI       string `json:"doi,omitempty" yaml:"doi,omitempty"`
	TitleSlug string `json:"title_slug,omitempty" yaml:"title_slug,omitempty"`
}

type stringSet map[string]struct{}

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

// has never matches the empty string, even if a degenerate entry put one
// in the set.
func (s stringSet) has(v string) bool {
	if v == "" {
		return false
	}
	_, ok := s[v]
	return ok
}

type authorSets map[string]stringSet

func (a authorSets) add(author, v string) {
	if v == "" {
		return
	}
	set, ok := a[author]
	if !ok {
		set = make(stringSet)
		a[author] = set
	}
	set.add(v)
}

func (a authorSets) has(author, v string) bool {
	return a[author].has(v)
}

// Engine answers exclusion queries against a loaded deny-list. Global
// rules and per-author rules live in independent structures: a global
// rule never needs author context to fire.
type Engine struct {
	globalIDs   stringSet
	globalDOIs  stringSet
	globalSlugs stringSet

	authorIDs   authorSets
	authorDOIs  authorSets
	authorSlugs authorSets
}

// NewEngine partitions entries into the global and per-author lookup
// structures, canonicalizing every value once. The returned engine is
// immutable; swap in a freshly built one to apply a new deny-list.
func NewEngine(entries []Entry) *Engine {
	e := &Engine{
		globalIDs:   make(stringSet),
		globalDOIs:  make(stringSet),
		globalSlugs: make(stringSet),
		authorIDs:   make(authorSets),
		authorDOIs:  make(authorSets),
		authorSlugs: make(authorSets),
	}

	for _, entry := range entries {
		id := identity.CanonicalID(entry.WorkID)
		doi := identity.CanonicalDOI(entry.DOI)
		slug := identity.TitleSlug(entry.TitleSlug, 0)

		switch entry.Scope {
		case ScopePerAuthor:
			author := identity.CanonicalID(entry.AuthorID)
			if author == "" {
				continue
			}
			e.authorIDs.add(author, id)
			e.authorDOIs.add(author, doi)
			e.authorSlugs.add(author, slug)
		default:
			e.globalIDs.add(id)
			e.globalDOIs.add(doi)
			e.globalSlugs.add(slug)
		}
	}

	return e
}

// IsExcluded reports whether the work matches any deny-list rule, first
// against the global sets and then, when authorID is non-empty, against
// that author's bucket. Empty canonical values never match.
func (e *Engine) IsExcluded(w types.Work, authorID string) bool {
	id := identity.CanonicalID(w.ID)
	doi := identity.CanonicalDOI(w.DOI)
	slug := identity.TitleSlug(w.Title, w.Year)

	if e.globalIDs.has(id) || e.globalDOIs.has(doi) || e.globalSlugs.has(slug) {
		return true
	}

	author := identity.CanonicalID(authorID)
	if author == "" {
		return false
	}
	return e.authorIDs.has(author, id) ||
		e.authorDOIs.has(author, doi) ||
		e.authorSlugs.has(author, slug)
}
