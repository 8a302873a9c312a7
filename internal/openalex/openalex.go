// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex fetches work records from the OpenAlex API and maps
// them onto the corpus Work shape: identifier, DOI, title, year,
// citation count, topic names, and author identifiers.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/insight-engine/internal/httputil"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// worksBase is the OpenAlex Works endpoint. Declared as a var so tests
// can substitute an httptest server.
var worksBase = "https://api.openalex.org/works"

// Client queries the OpenAlex works API.
type Client struct {
	HTTP *http.Client

	// Email is sent as the mailto parameter for polite pool access.
	Email string

	// APIKey is an optional premium key sent as api_key.
	APIKey string
}

// FetchWorks retrieves up to cfg.MaxResults works matching the search
// text, optionally bounded to an inclusive publication-year window
// (zero bounds are open).
func (c *Client) FetchWorks(ctx context.Context, search string, fromYear, toYear int, cfg types.FetchConfig) ([]types.Work, error) {
	if strings.TrimSpace(search) == "" {
		return nil, fmt.Errorf("empty OpenAlex query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}
	if maxResults > 200 {
		maxResults = 200
	}

	params := url.Values{
		"search":   {search},
		"per_page": {strconv.Itoa(maxResults)},
		"page":     {"1"},
	}

	var filters []string
	if fromYear > 0 {
		filters = append(filters, fmt.Sprintf("from_publication_date:%d-01-01", fromYear))
	}
	if toYear > 0 {
		filters = append(filters, fmt.Sprintf("to_publication_date:%d-12-31", toYear))
	}
	if len(filters) > 0 {
		params.Set("filter", strings.Join(filters, ","))
	}

	if c.Email != "" {
		params.Set("mailto", c.Email)
	}
	if c.APIKey != "" {
		params.Set("api_key", c.APIKey)
	}

	reqURL := worksBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var oar worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&oar); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	works := make([]types.Work, 0, len(oar.Results))
	for _, raw := range oar.Results {
		works = append(works, mapWork(raw))
	}
	return works, nil
}

// mapWork converts one OpenAlex work into the corpus shape. OpenAlex
// returns identifiers and DOIs as full URLs; they are kept verbatim here
// and canonicalized downstream.
func mapWork(raw apiWork) types.Work {
	w := types.Work{
		ID:        raw.ID,
		DOI:       raw.DOI,
		Title:     raw.Title,
		Year:      raw.PublicationYear,
		Citations: raw.CitedByCount,
	}
	if w.Title == "" {
		w.Title = raw.DisplayName
	}

	for _, t := range raw.Topics {
		if t.DisplayName != "" {
			w.Topics = append(w.Topics, t.DisplayName)
		}
	}
	// Older records expose concepts instead of topics.
	if len(w.Topics) == 0 {
		for _, concept := range raw.Concepts {
			if concept.DisplayName != "" {
				w.Topics = append(w.Topics, concept.DisplayName)
			}
		}
	}

	for _, authorship := range raw.Authorships {
		if authorship.Author.ID != "" {
			w.AuthorIDs = append(w.AuthorIDs, authorship.Author.ID)
		}
	}
	return w
}

// OpenAlex API JSON structures.
type worksResponse struct {
	Meta    apiMeta   `json:"meta"`
	Results []apiWork `json:"results"`
}

type apiMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type apiWork struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	DisplayName     string          `json:"display_name"`
	DOI             string          `json:"doi"`
	PublicationYear int             `json:"publication_year"`
	CitedByCount    int             `json:"cited_by_count"`
	Authorships     []apiAuthorship `json:"authorships"`
	Topics          []apiTopic      `json:"topics"`
	Concepts        []apiTopic      `json:"concepts"`
}

type apiAuthorship struct {
	Author apiAuthor `json:"author"`
}

type apiAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type apiTopic struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
