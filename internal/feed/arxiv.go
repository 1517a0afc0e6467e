// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-crosslist/internal/query"
	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

// ArxivSource queries the arXiv API with a single GET request.
type ArxivSource struct {
	Client *http.Client
	Config types.HTTPConfig
	Log    *zap.Logger
}

// NewArxivSource returns a source that uses an HTTP client with the
// configured timeout.
func NewArxivSource(cfg types.HTTPConfig, log *zap.Logger) *ArxivSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &ArxivSource{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Log:    log,
	}
}

// Fetch requests the query and parses the response. Transport failures and
// non-200 statuses yield a *FetchError, malformed payloads a *ParseError.
// Nothing is retried.
func (s *ArxivSource) Fetch(ctx context.Context, q string) (types.FeedMetadata, []types.FeedEntry, error) {
	url := query.URL(s.Config.APIBase, q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.FeedMetadata{}, nil, &FetchError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	if s.Config.UserAgent != "" {
		req.Header.Set("User-Agent", s.Config.UserAgent)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	s.logger().Debug("fetching feed", zap.String("url", url))
	resp, err := client.Do(req)
	if err != nil {
		return types.FeedMetadata{}, nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.FeedMetadata{}, nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	meta, entries, err := Parse(resp.Body)
	if err != nil {
		return types.FeedMetadata{}, nil, err
	}
	s.logger().Info("feed fetched",
		zap.Int("entries", len(entries)),
		zap.Int("total_results", meta.TotalResults),
		zap.String("updated", meta.Updated))
	return meta, entries, nil
}

func (s *ArxivSource) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// FileSource reads a previously saved Atom response from disk and ignores
// the query. Useful for offline runs against a captured payload.
type FileSource struct {
	Path string
}

// Fetch opens and parses the file.
func (s *FileSource) Fetch(_ context.Context, _ string) (types.FeedMetadata, []types.FeedEntry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return types.FeedMetadata{}, nil, &FetchError{URL: s.Path, Err: err}
	}
	defer f.Close()
	return Parse(f)
}
