// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/insight-engine/internal/exclusion"
	"github.com/pdiddy/insight-engine/pkg/types"
)

func sampleWorks() []types.Work {
	return []types.Work{
		{ID: "https://openalex.org/W1", DOI: "10.1/a", Title: "Paper One", Year: 2015, Citations: 3, Topics: []string{"X"}},
		{ID: "W2", DOI: "10.1/b", Title: "Paper Two", Year: 2016, Citations: 1, Topics: []string{"Y"}},
	}
}

func TestReadWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := WriteFile(path, sampleWorks()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	works, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(works) != 2 {
		t.Fatalf("len(works) = %d, want 2", len(works))
	}
	if works[0].Title != "Paper One" || works[0].Citations != 3 {
		t.Errorf("works[0] = %+v", works[0])
	}
}

func TestReadWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := WriteFile(path, sampleWorks()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	works, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(works) != 2 || works[1].ID != "W2" {
		t.Errorf("works = %+v", works)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDedupe(t *testing.T) {
	works := []types.Work{
		{ID: "https://openalex.org/W1", Title: "First"},
		{ID: "W1", Title: "Same work, bare identifier"},
		{ID: "W2", DOI: "https://doi.org/10.1/x", Title: "Second"},
		{ID: "W3", DOI: "doi:10.1/x", Title: "Same DOI as second"},
		{ID: "W4", Title: "Attention Is All You Need", Year: 2017},
		{ID: "W5", Title: "Attention is all you need!", Year: 2017},
		{ID: "W6", Title: "Genuinely different", Year: 2017},
	}

	kept, removed := Dedupe(works)
	if removed != 3 {
		t.Errorf("removed = %d, want 3", removed)
	}
	if len(kept) != 4 {
		t.Fatalf("len(kept) = %d, want 4", len(kept))
	}
	// First occurrence wins.
	if kept[0].Title != "First" || kept[1].Title != "Second" {
		t.Errorf("kept[0] = %q, kept[1] = %q", kept[0].Title, kept[1].Title)
	}
}

func TestDedupeBlankRecordsNeverCollide(t *testing.T) {
	works := []types.Work{
		{Citations: 1},
		{Citations: 2},
	}
	kept, removed := Dedupe(works)
	if removed != 0 || len(kept) != 2 {
		t.Errorf("blank records must not collide: kept %d, removed %d", len(kept), removed)
	}
}

func TestClean(t *testing.T) {
	eng := exclusion.NewEngine([]exclusion.Entry{
		{Scope: exclusion.ScopeGlobal, WorkID: "W1"},
		{Scope: exclusion.ScopePerAuthor, AuthorID: "A7", DOI: "10.1/b"},
	})

	works := []types.Work{
		{ID: "https://openalex.org/W1", Title: "Denied globally"},
		{ID: "W2", DOI: "10.1/b", Title: "Denied for author A7"},
		{ID: "W3", Title: "Kept"},
		{ID: "W3", Title: "Duplicate of kept"},
	}

	kept, sum := Clean(works, eng, "A7")
	if sum.Excluded != 2 || sum.Duplicates != 1 || sum.Kept != 1 {
		t.Errorf("summary = %+v, want 2 excluded, 1 duplicate, 1 kept", sum)
	}
	if len(kept) != 1 || kept[0].Title != "Kept" {
		t.Errorf("kept = %+v", kept)
	}

	// Without author context, the per-author rule stays dormant.
	kept, sum = Clean(works, eng, "")
	if sum.Excluded != 1 || sum.Kept != 2 {
		t.Errorf("summary without author = %+v, want 1 excluded, 2 kept", sum)
	}
	_ = kept
}

func TestCleanNilEngine(t *testing.T) {
	works := sampleWorks()
	kept, sum := Clean(works, nil, "")
	if sum.Excluded != 0 || len(kept) != 2 {
		t.Errorf("nil engine should only dedupe: %+v", sum)
	}
}
