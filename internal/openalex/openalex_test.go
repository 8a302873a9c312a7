// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/insight-engine/pkg/types"
)

const sampleWorksJSON = `{
  "meta": {"count": 2, "per_page": 100, "page": 1},
  "results": [
    {
      "id": "https://openalex.org/W2741809807",
      "title": "Attention Is All You Need",
      "doi": "https://doi.org/10.5555/3295222.3295349",
      "publication_year": 2017,
      "cited_by_count": 90000,
      "authorships": [
        {"author": {"id": "https://openalex.org/A1", "display_name": "Ashish Vaswani"}},
        {"author": {"id": "https://openalex.org/A2", "display_name": "Noam Shazeer"}}
      ],
      "topics": [
        {"id": "https://openalex.org/T1", "display_name": "Natural Language Processing"},
        {"id": "https://openalex.org/T2", "display_name": "Neural Networks"}
      ]
    },
    {
      "id": "https://openalex.org/W999",
      "display_name": "Untitled Legacy Record",
      "publication_year": 0,
      "cited_by_count": 3,
      "concepts": [
        {"id": "https://openalex.org/C1", "display_name": "Machine Learning"}
      ]
    }
  ]
}`

func testCfg() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "test/0.1"},
		MaxResults: 100,
	}
}

func TestFetchWorks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleWorksJSON)
	}))
	defer ts.Close()

	old := worksBase
	worksBase = ts.URL
	defer func() { worksBase = old }()

	c := &Client{HTTP: ts.Client(), Email: "user@example.com"}
	works, err := c.FetchWorks(context.Background(), "attention", 2010, 2020, testCfg())
	if err != nil {
		t.Fatalf("FetchWorks: %v", err)
	}
	if len(works) != 2 {
		t.Fatalf("len(works) = %d, want 2", len(works))
	}

	w := works[0]
	if w.ID != "https://openalex.org/W2741809807" {
		t.Errorf("ID = %q", w.ID)
	}
	if w.DOI != "https://doi.org/10.5555/3295222.3295349" {
		t.Errorf("DOI = %q", w.DOI)
	}
	if w.Year != 2017 || w.Citations != 90000 {
		t.Errorf("Year = %d, Citations = %d", w.Year, w.Citations)
	}
	if len(w.Topics) != 2 || w.Topics[0] != "Natural Language Processing" {
		t.Errorf("Topics = %v", w.Topics)
	}
	if len(w.AuthorIDs) != 2 {
		t.Errorf("AuthorIDs = %v", w.AuthorIDs)
	}

	// Legacy record: display_name fallback, concepts fallback, no year.
	legacy := works[1]
	if legacy.Title != "Untitled Legacy Record" {
		t.Errorf("legacy.Title = %q", legacy.Title)
	}
	if legacy.Year != 0 {
		t.Errorf("legacy.Year = %d, want 0", legacy.Year)
	}
	if len(legacy.Topics) != 1 || legacy.Topics[0] != "Machine Learning" {
		t.Errorf("legacy.Topics = %v", legacy.Topics)
	}
}

func TestFetchWorksRequestParameters(t *testing.T) {
	var gotURL string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		fmt.Fprint(w, `{"meta": {}, "results": []}`)
	}))
	defer ts.Close()

	old := worksBase
	worksBase = ts.URL
	defer func() { worksBase = old }()

	c := &Client{HTTP: ts.Client(), Email: "user@example.com", APIKey: "oa_key"}
	if _, err := c.FetchWorks(context.Background(), "topic models", 2015, 2020, testCfg()); err != nil {
		t.Fatalf("FetchWorks: %v", err)
	}

	for _, want := range []string{
		"search=topic+models",
		"from_publication_date%3A2015-01-01",
		"to_publication_date%3A2020-12-31",
		"mailto=user%40example.com",
		"api_key=oa_key",
	} {
		if !strings.Contains(gotURL, want) {
			t.Errorf("request URL %q missing %q", gotURL, want)
		}
	}
}

func TestFetchWorksEmptyQuery(t *testing.T) {
	c := &Client{HTTP: http.DefaultClient}
	if _, err := c.FetchWorks(context.Background(), "  ", 0, 0, testCfg()); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestFetchWorksHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	old := worksBase
	worksBase = ts.URL
	defer func() { worksBase = old }()

	c := &Client{HTTP: ts.Client()}
	if _, err := c.FetchWorks(context.Background(), "attention", 0, 0, testCfg()); err == nil {
		t.Error("expected error for HTTP 403")
	}
}
