// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed fetches a search response and parses it into the entry
// records consumed by the digest pipeline.
package feed

import (
	"context"
	"fmt"

	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

// Source performs one fetch for an encoded query string and returns the
// feed metadata and entries in document order.
type Source interface {
	Fetch(ctx context.Context, query string) (types.FeedMetadata, []types.FeedEntry, error)
}

// FetchError reports a network or HTTP failure. It is fatal to the run.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a malformed feed payload. It is fatal to the run.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing feed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
