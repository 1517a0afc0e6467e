// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records that flow through the digest pipeline:
// the feed entries handed over by the feed source, the entries extracted
// from them, and the assembled digest.
package types

import (
	"fmt"
	"time"
)

// searchStampSuffix is the fixed 20:00 time of day appended to both window
// bounds, in the API's clock.
const searchStampSuffix = "2000"

// SearchWindow is the lastUpdatedDate interval queried for one run.
// End is the day before the run date and Start the day before End.
type SearchWindow struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// StartStamp returns the lower bound in the API's YYYYMMDDHHMM form.
func (w SearchWindow) StartStamp() string {
	return w.Start.Format("20060102") + searchStampSuffix
}

// EndStamp returns the upper bound in the API's YYYYMMDDHHMM form.
func (w SearchWindow) EndStamp() string {
	return w.End.Format("20060102") + searchStampSuffix
}

// String renders the window as "[start TO end]".
func (w SearchWindow) String() string {
	return fmt.Sprintf("[%s TO %s]", w.StartStamp(), w.EndStamp())
}

// FeedMetadata holds the feed-level fields of a search response.
type FeedMetadata struct {
	// Updated is the feed's <updated> timestamp, verbatim.
	Updated string `json:"updated" yaml:"updated"`

	// TotalResults, StartIndex and ItemsPerPage come from the opensearch
	// namespace. Zero when absent.
	TotalResults int `json:"total_results" yaml:"total_results"`
	StartIndex   int `json:"start_index" yaml:"start_index"`
	ItemsPerPage int `json:"items_per_page" yaml:"items_per_page"`
}

// Author is one entry author.
type Author struct {
	Name string `json:"name" yaml:"name"`
}

// Tag is one category attached to an entry. The first tag of an entry is
// its primary category.
type Tag struct {
	Term string `json:"term" yaml:"term"`
}

// Link is one link element of an entry.
type Link struct {
	Rel   string `json:"rel" yaml:"rel"`
	Title string `json:"title" yaml:"title"`
	Href  string `json:"href" yaml:"href"`
}

// FeedEntry is one entry as produced by the feed source. It is read-only
// input to the filter.
type FeedEntry struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`

	// Authors is nil when the entry carried no author data at all. A
	// non-nil empty slice means the collection was present but empty;
	// the two states render differently.
	Authors []Author `json:"authors" yaml:"authors"`

	Tags  []Tag  `json:"tags" yaml:"tags"`
	Links []Link `json:"links" yaml:"links"`

	// Comment is nil when the entry has no comment field.
	Comment *string `json:"comment,omitempty" yaml:"comment,omitempty"`
}
