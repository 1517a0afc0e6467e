// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the query, fetch, filter, and render stages
// into a single run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-crosslist/internal/digest"
	"github.com/pdiddy/arxiv-crosslist/internal/feed"
	"github.com/pdiddy/arxiv-crosslist/internal/query"
	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

// Run builds the query for today, fetches it from src, and assembles the
// digest. Configuration errors are returned before src is called; fetch
// and parse errors are returned wrapped but otherwise unchanged.
func Run(ctx context.Context, src feed.Source, cfg types.QueryConfig, today time.Time, log *zap.Logger) (types.Digest, error) {
	if log == nil {
		log = zap.NewNop()
	}

	q, window, err := query.Build(cfg, today)
	if err != nil {
		return types.Digest{}, err
	}
	log.Info("querying",
		zap.String("base", cfg.BaseCategory),
		zap.Strings("cross", query.Categories(cfg.CrossCategories)),
		zap.Stringer("window", window))

	meta, entries, err := src.Fetch(ctx, q)
	if err != nil {
		return types.Digest{}, fmt.Errorf("fetching feed: %w", err)
	}

	selected := digest.FilterAndExtract(entries, cfg.CrossCategories, log)
	log.Info("entries selected", zap.Int("fetched", len(entries)), zap.Int("selected", len(selected)))

	d, err := digest.Assemble(digest.Title(cfg.BaseCategory, cfg.CrossCategories), meta.Updated, selected)
	if err != nil {
		return types.Digest{}, err
	}
	return d, nil
}
