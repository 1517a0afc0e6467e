// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query builds the date-windowed search expression sent to the
// arXiv API for one run.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

const (
	// DefaultMaxResults is the page size used when none is configured.
	DefaultMaxResults = 50

	// DefaultAPIBase is the arXiv search endpoint.
	DefaultAPIBase = "http://export.arxiv.org/api/query"
)

// ErrInvalidConfig is returned for an unusable category or paging
// configuration. It is detected before any network access.
var ErrInvalidConfig = errors.New("invalid configuration")

// Window returns the search window for a run on today: End is the day
// before today and Start the day before End, both at 20:00.
func Window(today time.Time) types.SearchWindow {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 20, 0, 0, 0, today.Location())
	return types.SearchWindow{
		Start: day.AddDate(0, 0, -2),
		End:   day.AddDate(0, 0, -1),
	}
}

// Build validates cfg and returns the encoded query string together with
// the window it covers. The result depends only on cfg and today.
func Build(cfg types.QueryConfig, today time.Time) (string, types.SearchWindow, error) {
	if err := Validate(cfg); err != nil {
		return "", types.SearchWindow{}, err
	}

	maxResults := cfg.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}

	w := Window(today)
	expr := fmt.Sprintf("cat:%s AND lastUpdatedDate:[%s TO %s]",
		cfg.BaseCategory, w.StartStamp(), w.EndStamp())

	q := fmt.Sprintf("search_query=%s&start=%d&max_results=%d",
		url.QueryEscape(expr), cfg.StartIndex, maxResults)
	return q, w, nil
}

// Validate checks the category and paging settings.
func Validate(cfg types.QueryConfig) error {
	if strings.TrimSpace(cfg.BaseCategory) == "" {
		return fmt.Errorf("%w: base category is empty", ErrInvalidConfig)
	}
	if len(cfg.CrossCategories) == 0 {
		return fmt.Errorf("%w: no cross-listing categories configured", ErrInvalidConfig)
	}
	for _, c := range cfg.CrossCategories {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: blank cross-listing category", ErrInvalidConfig)
		}
	}
	if cfg.MaxResults < 0 {
		return fmt.Errorf("%w: max_results must not be negative, got %d", ErrInvalidConfig, cfg.MaxResults)
	}
	if cfg.StartIndex < 0 {
		return fmt.Errorf("%w: start index must not be negative, got %d", ErrInvalidConfig, cfg.StartIndex)
	}
	return nil
}

// Categories returns the cross-listing set de-duplicated and sorted.
func Categories(cross []string) []string {
	seen := make(map[string]bool, len(cross))
	out := make([]string, 0, len(cross))
	for _, c := range cross {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// URL joins the API endpoint and an encoded query string.
func URL(apiBase, query string) string {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	return strings.TrimRight(apiBase, "?") + "?" + query
}
